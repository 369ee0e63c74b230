package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/locksafe/internal/backend"
	"github.com/dmitrijs2005/locksafe/internal/common"
	"github.com/go-playground/validator/v10"
)

type State string

const (
	StateIdle        State = "idle"
	StateAwaitingOTP State = "awaiting_otp"
	StateCommitted   State = "committed"
)

type Kind string

const (
	KindCreateAccount Kind = "create_account"
	KindResetSecret   Kind = "reset_secret"
)

var (
	ErrOperationPending   = errors.New("another operation is awaiting OTP verification")
	ErrNoPendingOperation = errors.New("no operation is awaiting OTP verification")
)

// PendingOperation is an account write that commits only after the OTP sent
// to Email is verified.
type PendingOperation struct {
	Kind     Kind   `validate:"required,oneof=create_account reset_secret"`
	Platform string `validate:"required"`
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
	Secret   string `validate:"required"`
}

// Outcome is the result of the committed operation.
type Outcome struct {
	Kind   Kind
	Result backend.Result
	// Email is the address the reset was confirmed for.
	Email string
}

// Workflow binds at most one PendingOperation to an OTP challenge:
// Idle -> AwaitingOTP -> Committed -> Idle.
type Workflow struct {
	mu       sync.Mutex
	svc      backend.Service
	validate *validator.Validate
	state    State
	pending  *PendingOperation
}

func NewWorkflow(svc backend.Service) *Workflow {
	return &Workflow{svc: svc, validate: validator.New(), state: StateIdle}
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Pending returns a copy of the operation awaiting verification.
func (w *Workflow) Pending() (PendingOperation, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending == nil {
		return PendingOperation{}, false
	}
	return *w.pending, true
}

// Submit validates op, requests an OTP for op.Email and moves to
// AwaitingOTP. On any failure the workflow stays Idle.
func (w *Workflow) Submit(ctx context.Context, op PendingOperation) (*backend.SendOTPResponse, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateIdle {
		return nil, ErrOperationPending
	}

	op.Email = strings.TrimSpace(op.Email)
	if err := w.validate.Struct(op); err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrInvalidRequest)
	}

	resp, err := w.svc.SendOTP(ctx, &backend.SendOTPRequest{Email: op.Email})
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return resp, err
	}

	w.pending = &op
	w.state = StateAwaitingOTP
	return resp, nil
}

// Resend issues a fresh OTP for the pending operation, replacing the old
// challenge.
func (w *Workflow) Resend(ctx context.Context) (*backend.SendOTPResponse, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateAwaitingOTP {
		return nil, ErrNoPendingOperation
	}
	resp, err := w.svc.SendOTP(ctx, &backend.SendOTPRequest{Email: w.pending.Email})
	if err != nil {
		return nil, err
	}
	return resp, resp.Err()
}

// Resolve verifies code. A wrong or expired code keeps the operation
// pending and returns an error matching common.ErrOTPInvalid or
// common.ErrOTPExpired. On success the operation runs once and the workflow
// returns to Idle whatever the commit outcome.
func (w *Workflow) Resolve(ctx context.Context, code string) (*Outcome, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateAwaitingOTP {
		return nil, ErrNoPendingOperation
	}
	op := *w.pending

	ver, err := w.svc.VerifyOTP(ctx, &backend.VerifyOTPRequest{Email: op.Email, Code: strings.TrimSpace(code)})
	if err != nil {
		return nil, err
	}
	if err := ver.Err(); err != nil {
		return nil, err
	}

	w.state = StateCommitted
	defer w.reset()

	out := &Outcome{Kind: op.Kind}
	switch op.Kind {
	case KindCreateAccount:
		res, err := w.svc.CreateAccount(ctx, &backend.CreateAccountRequest{
			Platform: op.Platform,
			Username: op.Username,
			Email:    op.Email,
			Secret:   op.Secret,
			Grant:    ver.Grant,
		})
		if err != nil {
			return nil, err
		}
		out.Result = *res
	case KindResetSecret:
		res, err := w.svc.ResetAccountSecret(ctx, &backend.ResetAccountSecretRequest{
			Platform: op.Platform,
			Username: op.Username,
			Email:    op.Email,
			Secret:   op.Secret,
			Grant:    ver.Grant,
		})
		if err != nil {
			return nil, err
		}
		out.Result = res.Result
		out.Email = res.Email
	}
	return out, out.Result.Err()
}

// Cancel drops the pending operation and, when the backend supports it,
// withdraws its challenge. Otherwise the challenge lapses at its expiry.
func (w *Workflow) Cancel(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateAwaitingOTP {
		return ErrNoPendingOperation
	}
	email := w.pending.Email
	w.reset()

	if c, ok := w.svc.(backend.OTPCanceler); ok {
		if err := c.CancelOTP(ctx, email); err != nil {
			return fmt.Errorf("withdraw otp: %w", err)
		}
	}
	return nil
}

func (w *Workflow) reset() {
	if w.pending != nil {
		w.pending.Secret = ""
	}
	w.pending = nil
	w.state = StateIdle
}
