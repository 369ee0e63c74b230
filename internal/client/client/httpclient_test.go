package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/locksafe/internal/backend"
	"github.com/dmitrijs2005/locksafe/internal/common"
	"github.com/dmitrijs2005/locksafe/internal/logging"
	"github.com/dmitrijs2005/locksafe/internal/requestid"
	"github.com/dmitrijs2005/locksafe/internal/server/httpapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHTTP(t *testing.T, svc backend.Service) *HTTPClient {
	t.Helper()
	ts := httptest.NewServer(httpapi.NewHTTPServer("", logging.Nop{}, svc).Handler())
	t.Cleanup(ts.Close)
	c := NewHTTPClient(ts.URL+"/", nil)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestHTTPClient_EndToEnd(t *testing.T) {
	c := startHTTP(t, newEngine(t))
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))

	ex, err := c.CheckMasterExists(ctx)
	require.NoError(t, err)
	assert.False(t, ex.Exists)

	res, err := c.SetupMaster(ctx, &backend.PasswordRequest{Password: "short"})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, backend.CodePolicyViolation, res.Code)
	assert.ErrorIs(t, res.Err(), common.ErrPolicyViolation)

	res, err = c.SetupMaster(ctx, &backend.PasswordRequest{Password: "Str0ng!Pass"})
	require.NoError(t, err)
	require.True(t, res.Success, res.Error)

	res, err = c.VerifyMaster(ctx, &backend.PasswordRequest{Password: "Wr0ng!Pass"})
	require.NoError(t, err)
	assert.ErrorIs(t, res.Err(), common.ErrWrongCredential)

	sent, err := c.SendOTP(ctx, &backend.SendOTPRequest{Email: "u@x.io"})
	require.NoError(t, err)
	require.True(t, sent.Success)

	ver, err := c.VerifyOTP(ctx, &backend.VerifyOTPRequest{Email: "u@x.io", Code: sent.DebugCode})
	require.NoError(t, err)
	require.True(t, ver.Success, ver.Error)

	ver, err = c.VerifyOTP(ctx, &backend.VerifyOTPRequest{Email: "u@x.io", Code: sent.DebugCode})
	require.NoError(t, err)
	assert.ErrorIs(t, ver.Err(), common.ErrOTPInvalid)

	res, err = c.CreateAccount(ctx, &backend.CreateAccountRequest{Platform: "github", Username: "alice", Email: "u@x.io", Secret: "secret1"})
	require.NoError(t, err)
	require.True(t, res.Success, res.Error)

	list, err := c.ListAccounts(ctx, &backend.ListAccountsRequest{MasterPassword: "Str0ng!Pass"})
	require.NoError(t, err)
	require.True(t, list.Success)
	assert.Equal(t, []backend.Account{{Platform: "github", Username: "alice", Email: "u@x.io", Secret: "secret1"}}, list.Accounts)

	res, err = c.ChangeMaster(ctx, &backend.ChangeMasterRequest{CurrentPassword: "Str0ng!Pass", NewPassword: "An0ther!Pass"})
	require.NoError(t, err)
	require.True(t, res.Success, res.Error)

	reset, err := c.ResetAccountSecret(ctx, &backend.ResetAccountSecretRequest{Platform: "github", Username: "alice", Email: "u@x.io", Secret: "secret2"})
	require.NoError(t, err)
	require.True(t, reset.Success, reset.Error)
}

func TestHTTPClient_ServerDownIsUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c := NewHTTPClient(url, nil)
	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)

	_, err := c.CheckMasterExists(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_GatewayStatusIsUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c := NewHTTPClient(ts.URL, ts.Client())
	_, err := c.SetupMaster(context.Background(), &backend.PasswordRequest{Password: "x"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_InternalErrorIsNotUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"internal error"}`))
	}))
	defer ts.Close()

	c := NewHTTPClient(ts.URL, ts.Client())
	_, err := c.VerifyMaster(context.Background(), &backend.PasswordRequest{Password: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorInternal)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_SendsRequestID(t *testing.T) {
	id := requestid.New()
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(common.RequestIDHeaderName)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := NewHTTPClient(ts.URL, ts.Client())
	require.NoError(t, c.Ping(requestid.WithContext(context.Background(), id)))
	assert.Equal(t, id, got)
	assert.Equal(t, ts.URL, c.Endpoint())
}
