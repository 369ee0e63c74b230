package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/locksafe/internal/auth"
	"github.com/dmitrijs2005/locksafe/internal/common"
	"github.com/dmitrijs2005/locksafe/internal/logging"
	"github.com/dmitrijs2005/locksafe/internal/otp"
	"github.com/dmitrijs2005/locksafe/internal/vault"
	"github.com/go-playground/validator/v10"
)

// Engine implements Service over a vault and an OTP authority. The server
// exposes it through its transports; the client runs its own Engine over
// local storage as the fallback backend.
type Engine struct {
	vault        *vault.Vault
	otp          *otp.Authority
	sender       otp.Sender
	grants       *auth.Grants
	requireGrant bool
	validate     *validator.Validate
	logger       logging.Logger
}

type EngineOption func(*Engine)

// WithSender delivers codes out of band. Without a sender the code is
// returned in SendOTPResponse.DebugCode.
func WithSender(s otp.Sender) EngineOption {
	return func(e *Engine) { e.sender = s }
}

// WithGrants makes VerifyOTP return a grant; with require set, CreateAccount
// and ResetAccountSecret refuse requests without a valid one.
func WithGrants(g *auth.Grants, require bool) EngineOption {
	return func(e *Engine) {
		e.grants = g
		e.requireGrant = require && g != nil
	}
}

func WithLogger(l logging.Logger) EngineOption {
	return func(e *Engine) { e.logger = l.With("module", "engine") }
}

func NewEngine(v *vault.Vault, a *otp.Authority, opts ...EngineOption) *Engine {
	e := &Engine{
		vault:    v,
		otp:      a,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logging.Nop{},
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

var (
	_ Service     = (*Engine)(nil)
	_ OTPCanceler = (*Engine)(nil)
)

func (e *Engine) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (e *Engine) CheckMasterExists(ctx context.Context) (*ExistsResponse, error) {
	ok, err := e.vault.IsInitialized(ctx)
	if err != nil {
		return nil, e.internal(ctx, "check master", err)
	}
	return &ExistsResponse{Result: Success(""), Exists: ok}, nil
}

func (e *Engine) SetupMaster(ctx context.Context, req *PasswordRequest) (*Result, error) {
	if res, ok := e.invalid(req); !ok {
		return &res, nil
	}
	if err := e.vault.Setup(ctx, req.Password); err != nil {
		return e.fail(ctx, "setup master", err)
	}
	res := Success("Master password set successfully")
	return &res, nil
}

func (e *Engine) VerifyMaster(ctx context.Context, req *PasswordRequest) (*Result, error) {
	if res, ok := e.invalid(req); !ok {
		return &res, nil
	}
	if err := e.vault.Authenticate(ctx, req.Password); err != nil {
		return e.fail(ctx, "verify master", err)
	}
	res := Success("")
	return &res, nil
}

func (e *Engine) ChangeMaster(ctx context.Context, req *ChangeMasterRequest) (*Result, error) {
	if res, ok := e.invalid(req); !ok {
		return &res, nil
	}
	if err := e.vault.ChangeMasterPassword(ctx, req.CurrentPassword, req.NewPassword); err != nil {
		return e.fail(ctx, "change master", err)
	}
	res := Success("Master password changed successfully")
	return &res, nil
}

func (e *Engine) SendOTP(ctx context.Context, req *SendOTPRequest) (*SendOTPResponse, error) {
	if res, ok := e.invalid(req); !ok {
		return &SendOTPResponse{Result: res}, nil
	}

	ch, err := e.otp.Issue(req.Email)
	if err != nil {
		res, ferr := e.fail(ctx, "issue otp", err)
		if ferr != nil {
			return nil, ferr
		}
		return &SendOTPResponse{Result: *res}, nil
	}

	if e.sender == nil {
		e.logger.Info(ctx, "otp issued on debug channel", "email", ch.BoundEmail)
		return &SendOTPResponse{
			Result:    Success("OTP generated (local mode, no email sent)"),
			Channel:   ChannelDebug,
			DebugCode: ch.Code,
			ExpiresAt: ch.ExpiresAt,
		}, nil
	}

	if err := e.sender.Send(ctx, ch); err != nil {
		e.otp.Clear(ch.BoundEmail)
		e.logger.Error(ctx, "otp delivery failed", "email", ch.BoundEmail, "error", err)
		res, _ := Failure(ErrDeliveryFailed)
		return &SendOTPResponse{Result: res}, nil
	}

	e.logger.Info(ctx, "otp sent", "email", ch.BoundEmail)
	return &SendOTPResponse{
		Result:    Success("OTP sent to your email"),
		Channel:   ChannelEmail,
		ExpiresAt: ch.ExpiresAt,
	}, nil
}

func (e *Engine) VerifyOTP(ctx context.Context, req *VerifyOTPRequest) (*VerifyOTPResponse, error) {
	if res, ok := e.invalid(req); !ok {
		return &VerifyOTPResponse{Result: res}, nil
	}

	if err := e.otp.Verify(req.Email, req.Code); err != nil {
		res, ferr := e.fail(ctx, "verify otp", err)
		if ferr != nil {
			return nil, ferr
		}
		return &VerifyOTPResponse{Result: *res}, nil
	}

	out := &VerifyOTPResponse{Result: Success("OTP verified successfully")}
	if e.grants != nil {
		grant, err := e.grants.Issue(req.Email)
		if err != nil {
			return nil, e.internal(ctx, "issue grant", err)
		}
		out.Grant = grant
	}
	return out, nil
}

// CancelOTP withdraws the challenge outstanding for email so its code can no
// longer be verified.
func (e *Engine) CancelOTP(ctx context.Context, email string) error {
	e.otp.Clear(email)
	e.logger.Info(ctx, "otp cancelled", "email", strings.TrimSpace(email))
	return nil
}

func (e *Engine) CreateAccount(ctx context.Context, req *CreateAccountRequest) (*Result, error) {
	if res, ok := e.invalid(req); !ok {
		return &res, nil
	}
	if err := e.redeem(req.Grant, req.Email); err != nil {
		return e.fail(ctx, "create account", err)
	}

	err := e.vault.CreateAccount(ctx, vault.NewAccount{
		Platform: req.Platform,
		Username: req.Username,
		Email:    req.Email,
		Secret:   req.Secret,
	})
	if err != nil {
		return e.fail(ctx, "create account", err)
	}
	res := Success("Account created successfully")
	return &res, nil
}

func (e *Engine) ListAccounts(ctx context.Context, req *ListAccountsRequest) (*ListAccountsResponse, error) {
	if res, ok := e.invalid(req); !ok {
		return &ListAccountsResponse{Result: res}, nil
	}

	plain, err := e.vault.ListAccounts(ctx, req.MasterPassword)
	if err != nil {
		res, ferr := e.fail(ctx, "list accounts", err)
		if ferr != nil {
			return nil, ferr
		}
		return &ListAccountsResponse{Result: *res}, nil
	}

	out := &ListAccountsResponse{Result: Success(""), Accounts: make([]Account, 0, len(plain))}
	for _, p := range plain {
		out.Accounts = append(out.Accounts, Account(p))
	}
	return out, nil
}

func (e *Engine) ResetAccountSecret(ctx context.Context, req *ResetAccountSecretRequest) (*ResetAccountSecretResponse, error) {
	if res, ok := e.invalid(req); !ok {
		return &ResetAccountSecretResponse{Result: res}, nil
	}
	if err := e.redeem(req.Grant, req.Email); err != nil {
		res, ferr := e.fail(ctx, "reset secret", err)
		if ferr != nil {
			return nil, ferr
		}
		return &ResetAccountSecretResponse{Result: *res}, nil
	}

	if err := e.vault.ResetAccountSecret(ctx, req.Platform, req.Username, req.Email, req.Secret); err != nil {
		res, ferr := e.fail(ctx, "reset secret", err)
		if ferr != nil {
			return nil, ferr
		}
		return &ResetAccountSecretResponse{Result: *res}, nil
	}

	return &ResetAccountSecretResponse{
		Result: Success("Secret reset successfully"),
		Email:  strings.TrimSpace(req.Email),
	}, nil
}

func (e *Engine) redeem(grant, email string) error {
	if !e.requireGrant {
		return nil
	}
	if grant == "" {
		return fmt.Errorf("OTP verification required: %w", common.ErrInvalidGrant)
	}
	return e.grants.Redeem(grant, email)
}

// invalid validates req; ok is false when the request must be rejected.
func (e *Engine) invalid(req any) (Result, bool) {
	err := e.validate.Struct(req)
	if err == nil {
		return Result{}, true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		err = fmt.Errorf("invalid fields: %s: %w", strings.Join(fields, ", "), common.ErrInvalidRequest)
	} else {
		err = fmt.Errorf("%v: %w", err, common.ErrInvalidRequest)
	}
	res, _ := Failure(err)
	return res, false
}

// fail turns err into a failed Result, or into an internal error when it is
// not an application failure.
func (e *Engine) fail(ctx context.Context, op string, err error) (*Result, error) {
	res, ok := Failure(err)
	if !ok {
		return nil, e.internal(ctx, op, err)
	}
	e.logger.Info(ctx, "request rejected", "op", op, "code", res.Code)
	return &res, nil
}

func (e *Engine) internal(ctx context.Context, op string, err error) error {
	e.logger.Error(ctx, "internal error", "op", op, "error", err)
	return fmt.Errorf("%s: %w", op, common.ErrorInternal)
}
