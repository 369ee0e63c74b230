// Package services contains the client-side application services of the
// LockSafe CLI: the trust-mode controller that routes backend calls to a
// remote server or to the local fallback, and the OTP-gated workflow.
package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/locksafe/internal/backend"
	"github.com/dmitrijs2005/locksafe/internal/client/client"
	"github.com/dmitrijs2005/locksafe/internal/logging"
)

type Mode string

const (
	ModeConnected     Mode = "connected"
	ModeLocalFallback Mode = "local"
)

const defaultProbeTimeout = 3 * time.Second

// Remote is a backend reachable over the network.
type Remote interface {
	backend.Service
	Endpoint() string
	Close() error
}

// Notifier receives one notice per mode transition. cause is the error that
// triggered a fallback, or nil.
type Notifier func(ctx context.Context, mode Mode, cause error)

type TrustOption func(*TrustController)

func WithNotifier(n Notifier) TrustOption {
	return func(c *TrustController) { c.notify = n }
}

func WithProbeTimeout(d time.Duration) TrustOption {
	return func(c *TrustController) { c.probeTimeout = d }
}

func WithTrustLogger(l logging.Logger) TrustOption {
	return func(c *TrustController) { c.logger = l }
}

// TrustController implements backend.Service by dispatching each call to the
// remote while Connected. A transport failure (client.ErrUnavailable) flips
// it to LocalFallback and the same call is re-run against local. Only a
// successful probe promotes it back.
type TrustController struct {
	mu           sync.RWMutex
	remote       Remote
	local        backend.Service
	mode         Mode
	notify       Notifier
	logger       logging.Logger
	probeTimeout time.Duration
}

var (
	_ backend.Service     = (*TrustController)(nil)
	_ backend.OTPCanceler = (*TrustController)(nil)
)

// NewTrustController starts Connected when remote is set and LocalFallback
// otherwise.
func NewTrustController(remote Remote, local backend.Service, opts ...TrustOption) *TrustController {
	c := &TrustController{
		remote:       remote,
		local:        local,
		mode:         ModeConnected,
		logger:       logging.Nop{},
		probeTimeout: defaultProbeTimeout,
	}
	for _, o := range opts {
		o(c)
	}
	if remote == nil {
		c.mode = ModeLocalFallback
	}
	c.logger = c.logger.With("module", "trust_controller")
	return c
}

func (c *TrustController) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// Endpoint returns the remote address, or "" without a remote.
func (c *TrustController) Endpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.remote == nil {
		return ""
	}
	return c.remote.Endpoint()
}

func (c *TrustController) setMode(ctx context.Context, mode Mode, cause error) {
	c.mu.Lock()
	if c.mode == mode {
		c.mu.Unlock()
		return
	}
	c.mode = mode
	notify := c.notify
	c.mu.Unlock()

	c.logger.Info(ctx, "trust mode changed", "mode", string(mode))
	if notify != nil {
		notify(ctx, mode, cause)
	}
}

// TestConnection probes the remote and sets the mode from the outcome.
func (c *TrustController) TestConnection(ctx context.Context) Mode {
	c.mu.RLock()
	remote := c.remote
	c.mu.RUnlock()

	if remote == nil {
		c.setMode(ctx, ModeLocalFallback, nil)
		return ModeLocalFallback
	}

	pctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	err := remote.Ping(pctx)
	cancel()

	if err != nil {
		c.logger.Debug(ctx, "probe failed", "endpoint", remote.Endpoint(), "error", err)
		c.setMode(ctx, ModeLocalFallback, err)
		return ModeLocalFallback
	}
	c.setMode(ctx, ModeConnected, nil)
	return ModeConnected
}

// SetRemote swaps the remote, closes the previous one and probes the new
// one.
func (c *TrustController) SetRemote(ctx context.Context, remote Remote) Mode {
	c.mu.Lock()
	old := c.remote
	c.remote = remote
	c.mu.Unlock()

	if old != nil {
		if err := old.Close(); err != nil {
			c.logger.Error(ctx, "close previous remote", "error", err)
		}
	}
	return c.TestConnection(ctx)
}

// StartWatcher re-probes the remote every interval until ctx is done.
func (c *TrustController) StartWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.TestConnection(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (c *TrustController) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remote == nil {
		return nil
	}
	return c.remote.Close()
}

// dispatch runs fn against the active backend and re-runs it locally when
// the remote turns out to be unreachable.
func dispatch[T any](c *TrustController, ctx context.Context, fn func(backend.Service) (T, error)) (T, error) {
	c.mu.RLock()
	remote, mode := c.remote, c.mode
	c.mu.RUnlock()

	if remote != nil && mode == ModeConnected {
		out, err := fn(remote)
		if !errors.Is(err, client.ErrUnavailable) {
			return out, err
		}
		c.setMode(ctx, ModeLocalFallback, err)
	}
	return fn(c.local)
}

func (c *TrustController) Ping(ctx context.Context) error {
	_, err := dispatch(c, ctx, func(s backend.Service) (struct{}, error) {
		return struct{}{}, s.Ping(ctx)
	})
	return err
}

func (c *TrustController) CheckMasterExists(ctx context.Context) (*backend.ExistsResponse, error) {
	return dispatch(c, ctx, func(s backend.Service) (*backend.ExistsResponse, error) {
		return s.CheckMasterExists(ctx)
	})
}

func (c *TrustController) SetupMaster(ctx context.Context, req *backend.PasswordRequest) (*backend.Result, error) {
	return dispatch(c, ctx, func(s backend.Service) (*backend.Result, error) {
		return s.SetupMaster(ctx, req)
	})
}

func (c *TrustController) VerifyMaster(ctx context.Context, req *backend.PasswordRequest) (*backend.Result, error) {
	return dispatch(c, ctx, func(s backend.Service) (*backend.Result, error) {
		return s.VerifyMaster(ctx, req)
	})
}

func (c *TrustController) ChangeMaster(ctx context.Context, req *backend.ChangeMasterRequest) (*backend.Result, error) {
	return dispatch(c, ctx, func(s backend.Service) (*backend.Result, error) {
		return s.ChangeMaster(ctx, req)
	})
}

func (c *TrustController) SendOTP(ctx context.Context, req *backend.SendOTPRequest) (*backend.SendOTPResponse, error) {
	return dispatch(c, ctx, func(s backend.Service) (*backend.SendOTPResponse, error) {
		return s.SendOTP(ctx, req)
	})
}

func (c *TrustController) VerifyOTP(ctx context.Context, req *backend.VerifyOTPRequest) (*backend.VerifyOTPResponse, error) {
	return dispatch(c, ctx, func(s backend.Service) (*backend.VerifyOTPResponse, error) {
		return s.VerifyOTP(ctx, req)
	})
}

func (c *TrustController) CreateAccount(ctx context.Context, req *backend.CreateAccountRequest) (*backend.Result, error) {
	return dispatch(c, ctx, func(s backend.Service) (*backend.Result, error) {
		return s.CreateAccount(ctx, req)
	})
}

func (c *TrustController) ListAccounts(ctx context.Context, req *backend.ListAccountsRequest) (*backend.ListAccountsResponse, error) {
	return dispatch(c, ctx, func(s backend.Service) (*backend.ListAccountsResponse, error) {
		return s.ListAccounts(ctx, req)
	})
}

func (c *TrustController) ResetAccountSecret(ctx context.Context, req *backend.ResetAccountSecretRequest) (*backend.ResetAccountSecretResponse, error) {
	return dispatch(c, ctx, func(s backend.Service) (*backend.ResetAccountSecretResponse, error) {
		return s.ResetAccountSecret(ctx, req)
	})
}

// CancelOTP withdraws the local challenge for email. The remote API has no
// cancel operation, so a server-issued challenge lapses at its expiry.
func (c *TrustController) CancelOTP(ctx context.Context, email string) error {
	if lc, ok := c.local.(backend.OTPCanceler); ok {
		return lc.CancelOTP(ctx, email)
	}
	return nil
}
