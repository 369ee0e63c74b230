package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/locksafe/internal/backend"
	"github.com/dmitrijs2005/locksafe/internal/client/client"
	"github.com/dmitrijs2005/locksafe/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// fakeBackend answers every call from preset fields and counts calls.
type fakeBackend struct {
	backend.Service
	name     string
	mu       sync.Mutex
	pingErr  error
	err      error
	result   backend.Result
	calls    atomic.Int32
	closed   atomic.Bool
	pings    atomic.Int32
}

func (f *fakeBackend) Endpoint() string { return f.name }
func (f *fakeBackend) Close() error     { f.closed.Store(true); return nil }

func (f *fakeBackend) Ping(context.Context) error {
	f.pings.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pingErr
}

func (f *fakeBackend) setPingErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pingErr = err
}

func (f *fakeBackend) VerifyMaster(context.Context, *backend.PasswordRequest) (*backend.Result, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	r := f.result
	return &r, nil
}

func (f *fakeBackend) CheckMasterExists(context.Context) (*backend.ExistsResponse, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &backend.ExistsResponse{Result: f.result, Exists: f.name == "remote"}, nil
}

type notices struct {
	mu   sync.Mutex
	seen []Mode
}

func (n *notices) notify(_ context.Context, m Mode, _ error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seen = append(n.seen, m)
}

func (n *notices) list() []Mode {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Mode(nil), n.seen...)
}

func TestTrustController_ConnectedUsesRemote(t *testing.T) {
	remote := &fakeBackend{name: "remote", result: backend.Success("")}
	local := &fakeBackend{name: "local", result: backend.Success("")}
	c := NewTrustController(remote, local)

	assert.Equal(t, ModeConnected, c.Mode())
	ex, err := c.CheckMasterExists(context.Background())
	require.NoError(t, err)
	assert.True(t, ex.Exists)
	assert.EqualValues(t, 1, remote.calls.Load())
	assert.EqualValues(t, 0, local.calls.Load())
	assert.Equal(t, "remote", c.Endpoint())
}

func TestTrustController_TransportFailureFallsBackOnce(t *testing.T) {
	remote := &fakeBackend{name: "remote", err: client.ErrUnavailable}
	local := &fakeBackend{name: "local", result: backend.Success("")}
	n := &notices{}
	c := NewTrustController(remote, local, WithNotifier(n.notify))
	ctx := context.Background()

	res, err := c.VerifyMaster(ctx, &backend.PasswordRequest{Password: "x"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, ModeLocalFallback, c.Mode())

	_, err = c.VerifyMaster(ctx, &backend.PasswordRequest{Password: "x"})
	require.NoError(t, err)

	assert.EqualValues(t, 1, remote.calls.Load(), "no re-promotion without a probe")
	assert.EqualValues(t, 2, local.calls.Load())
	assert.Equal(t, []Mode{ModeLocalFallback}, n.list())
}

func TestTrustController_ApplicationFailureDoesNotFallBack(t *testing.T) {
	remote := &fakeBackend{name: "remote", result: backend.Result{Error: common.ErrWrongCredential.Error(), Code: backend.CodeWrongCredential}}
	local := &fakeBackend{name: "local"}
	c := NewTrustController(remote, local)

	res, err := c.VerifyMaster(context.Background(), &backend.PasswordRequest{Password: "x"})
	require.NoError(t, err)
	assert.ErrorIs(t, res.Err(), common.ErrWrongCredential)
	assert.Equal(t, ModeConnected, c.Mode())
	assert.EqualValues(t, 0, local.calls.Load())
}

func TestTrustController_InternalErrorDoesNotFallBack(t *testing.T) {
	remote := &fakeBackend{name: "remote", err: errors.New("rpc error: internal")}
	local := &fakeBackend{name: "local"}
	c := NewTrustController(remote, local)

	_, err := c.VerifyMaster(context.Background(), &backend.PasswordRequest{Password: "x"})
	require.Error(t, err)
	assert.Equal(t, ModeConnected, c.Mode())
	assert.EqualValues(t, 0, local.calls.Load())
}

func TestTrustController_TestConnectionPromotes(t *testing.T) {
	remote := &fakeBackend{name: "remote", pingErr: client.ErrUnavailable}
	local := &fakeBackend{name: "local"}
	n := &notices{}
	c := NewTrustController(remote, local, WithNotifier(n.notify), WithProbeTimeout(time.Second))
	ctx := context.Background()

	assert.Equal(t, ModeLocalFallback, c.TestConnection(ctx))
	assert.Equal(t, ModeLocalFallback, c.TestConnection(ctx))

	remote.setPingErr(nil)
	assert.Equal(t, ModeConnected, c.TestConnection(ctx))
	assert.Equal(t, []Mode{ModeLocalFallback, ModeConnected}, n.list())
}

func TestTrustController_NoRemoteIsLocal(t *testing.T) {
	local := &fakeBackend{name: "local", result: backend.Success("")}
	c := NewTrustController(nil, local)

	assert.Equal(t, ModeLocalFallback, c.Mode())
	assert.Equal(t, ModeLocalFallback, c.TestConnection(context.Background()))
	assert.Empty(t, c.Endpoint())
	assert.NoError(t, c.Close())

	_, err := c.VerifyMaster(context.Background(), &backend.PasswordRequest{Password: "x"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, local.calls.Load())
}

func TestTrustController_SetRemoteClosesOldAndProbes(t *testing.T) {
	old := &fakeBackend{name: "old", pingErr: client.ErrUnavailable}
	next := &fakeBackend{name: "next"}
	c := NewTrustController(old, &fakeBackend{name: "local"})
	c.TestConnection(context.Background())
	require.Equal(t, ModeLocalFallback, c.Mode())

	assert.Equal(t, ModeConnected, c.SetRemote(context.Background(), next))
	assert.True(t, old.closed.Load())
	assert.Equal(t, "next", c.Endpoint())

	require.NoError(t, c.Close())
	assert.True(t, next.closed.Load())
}

func TestTrustController_StartWatcher(t *testing.T) {
	defer goleak.VerifyNone(t)

	remote := &fakeBackend{name: "remote", pingErr: client.ErrUnavailable}
	c := NewTrustController(remote, &fakeBackend{name: "local"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.StartWatcher(ctx, 10*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return c.Mode() == ModeLocalFallback }, time.Second, 5*time.Millisecond)
	remote.setPingErr(nil)
	require.Eventually(t, func() bool { return c.Mode() == ModeConnected }, time.Second, 5*time.Millisecond)

	cancel()
	<-done
	assert.GreaterOrEqual(t, remote.pings.Load(), int32(2))
}

func TestTrustController_StartWatcherDisabled(t *testing.T) {
	defer goleak.VerifyNone(t)
	c := NewTrustController(nil, &fakeBackend{})
	c.StartWatcher(context.Background(), 0)
}

func TestTrustController_CancelOTPWithdrawsLocalChallenge(t *testing.T) {
	e, _ := newLocalEngine(t)
	c := NewTrustController(nil, e)
	ctx := context.Background()

	sent, err := c.SendOTP(ctx, &backend.SendOTPRequest{Email: "u@x.io"})
	require.NoError(t, err)
	require.NoError(t, c.CancelOTP(ctx, "u@x.io"))

	ver, err := c.VerifyOTP(ctx, &backend.VerifyOTPRequest{Email: "u@x.io", Code: sent.DebugCode})
	require.NoError(t, err)
	assert.Equal(t, backend.CodeOTPInvalid, ver.Code)

	// a local backend without cancel support is left alone
	plain := NewTrustController(nil, &fakeBackend{name: "local"})
	assert.NoError(t, plain.CancelOTP(ctx, "u@x.io"))
}
