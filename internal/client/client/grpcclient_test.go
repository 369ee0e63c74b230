package client

import (
	"context"
	"errors"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/locksafe/internal/backend"
	"github.com/dmitrijs2005/locksafe/internal/common"
	"github.com/dmitrijs2005/locksafe/internal/cryptox"
	"github.com/dmitrijs2005/locksafe/internal/logging"
	"github.com/dmitrijs2005/locksafe/internal/otp"
	pb "github.com/dmitrijs2005/locksafe/internal/proto"
	"github.com/dmitrijs2005/locksafe/internal/requestid"
	servergrpc "github.com/dmitrijs2005/locksafe/internal/server/grpc"
	"github.com/dmitrijs2005/locksafe/internal/storage"
	"github.com/dmitrijs2005/locksafe/internal/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"
)

/*************
 * Fake stub
 *************/

type fakePB struct {
	vaultClient

	lastSetupReq  *pb.PasswordRequest
	lastCreateReq *pb.CreateAccountRequest

	pingResp *pb.PingResponse
	pingErr  error

	setupResp *pb.Result
	setupErr  error

	createResp *pb.Result
	createErr  error

	listResp *pb.ListAccountsResponse
	listErr  error

	sendResp *pb.SendOTPResponse
}

func (f *fakePB) Ping(ctx context.Context, in *pb.Empty, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.pingErr
}

func (f *fakePB) SetupMaster(ctx context.Context, in *pb.PasswordRequest, opts ...grpc.CallOption) (*pb.Result, error) {
	f.lastSetupReq = in
	return f.setupResp, f.setupErr
}

func (f *fakePB) CreateAccount(ctx context.Context, in *pb.CreateAccountRequest, opts ...grpc.CallOption) (*pb.Result, error) {
	f.lastCreateReq = in
	return f.createResp, f.createErr
}

func (f *fakePB) ListAccounts(ctx context.Context, in *pb.ListAccountsRequest, opts ...grpc.CallOption) (*pb.ListAccountsResponse, error) {
	return f.listResp, f.listErr
}

func (f *fakePB) SendOTP(ctx context.Context, in *pb.SendOTPRequest, opts ...grpc.CallOption) (*pb.SendOTPResponse, error) {
	return f.sendResp, nil
}

/*************
 * requestIDInterceptor
 *************/

func TestInterceptor_GeneratesRequestID(t *testing.T) {
	var got []string
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		got = md.Get(common.RequestIDHeaderName)
		return nil
	}

	require.NoError(t, requestIDInterceptor(context.Background(), "/svc/M", nil, nil, nil, invoker))
	require.Len(t, got, 1)
	assert.True(t, requestid.Valid(got[0]))
}

func TestInterceptor_PropagatesRequestIDFromContext(t *testing.T) {
	id := requestid.New()
	ctx := requestid.WithContext(context.Background(), id)
	ctx = metadata.AppendToOutgoingContext(ctx, "other", "kept")

	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		assert.Equal(t, []string{id}, md.Get(common.RequestIDHeaderName))
		assert.Equal(t, []string{"kept"}, md.Get("other"))
		return nil
	}

	require.NoError(t, requestIDInterceptor(ctx, "/svc/M", nil, nil, nil, invoker))
}

/*************
 * mapError
 *************/

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"unavailable", status.Error(codes.Unavailable, "down"), ErrUnavailable},
		{"deadline", status.Error(codes.DeadlineExceeded, "slow"), ErrUnavailable},
		{"unauthenticated", status.Error(codes.Unauthenticated, "no"), ErrUnauthorized},
		{"permission denied", status.Error(codes.PermissionDenied, "no"), ErrUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, c.mapError(tt.in), tt.want)
		})
	}

	assert.NoError(t, c.mapError(nil))

	err := c.mapError(status.Error(codes.Internal, "internal error"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "rpc error")
}

/*************
 * Methods over the fake
 *************/

func TestGRPCClient_Ping(t *testing.T) {
	f := &fakePB{pingResp: &pb.PingResponse{Status: "OK"}}
	c := &GRPCClient{client: f}
	require.NoError(t, c.Ping(context.Background()))

	f.pingResp = &pb.PingResponse{Status: "DEGRADED"}
	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)

	f.pingErr = status.Error(codes.Unavailable, "down")
	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestGRPCClient_ApplicationFailurePassesThrough(t *testing.T) {
	f := &fakePB{setupResp: &pb.Result{Error: "exists", Code: string(backend.CodeAlreadyInitialized)}}
	c := &GRPCClient{client: f}

	res, err := c.SetupMaster(context.Background(), &backend.PasswordRequest{Password: "Str0ng!Pass"})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, backend.CodeAlreadyInitialized, res.Code)
	assert.Equal(t, "Str0ng!Pass", f.lastSetupReq.GetPassword())
	assert.ErrorIs(t, res.Err(), common.ErrAlreadyInitialized)
}

func TestGRPCClient_MapsProtobufResponses(t *testing.T) {
	expires := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	f := &fakePB{
		listResp: &pb.ListAccountsResponse{
			Result:   &pb.Result{Success: true},
			Accounts: []*pb.Account{{Platform: "github", Username: "alice", Email: "a@x.io", Secret: "s"}},
		},
		sendResp: &pb.SendOTPResponse{
			Result:    &pb.Result{Success: true},
			Channel:   backend.ChannelDebug,
			DebugCode: "1234",
			ExpiresAt: timestamppb.New(expires),
		},
	}
	c := &GRPCClient{client: f}
	ctx := context.Background()

	list, err := c.ListAccounts(ctx, &backend.ListAccountsRequest{MasterPassword: "m"})
	require.NoError(t, err)
	assert.Equal(t, []backend.Account{{Platform: "github", Username: "alice", Email: "a@x.io", Secret: "s"}}, list.Accounts)

	sent, err := c.SendOTP(ctx, &backend.SendOTPRequest{Email: "a@x.io"})
	require.NoError(t, err)
	assert.Equal(t, "1234", sent.DebugCode)
	assert.True(t, sent.ExpiresAt.Equal(expires))

	f.sendResp = &pb.SendOTPResponse{}
	sent, err = c.SendOTP(ctx, &backend.SendOTPRequest{Email: "a@x.io"})
	require.NoError(t, err)
	assert.False(t, sent.Success)
	assert.True(t, sent.ExpiresAt.IsZero())
}

func TestGRPCClient_TransportErrorsAreMapped(t *testing.T) {
	f := &fakePB{
		createErr: status.Error(codes.Unavailable, "down"),
		listErr:   status.Error(codes.Internal, "internal error"),
	}
	c := &GRPCClient{client: f}
	ctx := context.Background()

	_, err := c.CreateAccount(ctx, &backend.CreateAccountRequest{Platform: "p"})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, "p", f.lastCreateReq.GetPlatform())

	_, err = c.ListAccounts(ctx, &backend.ListAccountsRequest{MasterPassword: "x"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnavailable))
}

func TestGRPCClient_CloseWithoutConn(t *testing.T) {
	assert.NoError(t, (&GRPCClient{}).Close())
}

/*************
 * End to end over bufconn
 *************/

func newEngine(t *testing.T, opts ...backend.EngineOption) *backend.Engine {
	t.Helper()
	db, err := storage.Open(context.Background(), "sqlite://"+filepath.Join(t.TempDir(), "vault.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	v := vault.New(db.Store, vault.WithKDFParams(cryptox.KDFParams{Time: 1, Memory: 64, Threads: 1}))
	return backend.NewEngine(v, otp.NewAuthority(), opts...)
}

func startServer(t *testing.T, svc backend.Service) *GRPCClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- servergrpc.NewGRPCServer("bufnet", logging.Nop{}, svc).Serve(ctx, lis) }()

	c, err := NewGRPCClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
		cancel()
		<-done
	})
	return c
}

func TestGRPCClient_EndToEnd(t *testing.T) {
	c := startServer(t, newEngine(t))
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))
	assert.Equal(t, "passthrough:///bufnet", c.Endpoint())

	ex, err := c.CheckMasterExists(ctx)
	require.NoError(t, err)
	assert.False(t, ex.Exists)

	res, err := c.SetupMaster(ctx, &backend.PasswordRequest{Password: "Str0ng!Pass"})
	require.NoError(t, err)
	require.True(t, res.Success, res.Error)

	res, err = c.VerifyMaster(ctx, &backend.PasswordRequest{Password: "Wr0ng!Pass"})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, backend.CodeWrongCredential, res.Code)

	sent, err := c.SendOTP(ctx, &backend.SendOTPRequest{Email: "u@x.io"})
	require.NoError(t, err)
	require.True(t, sent.Success)
	require.Equal(t, backend.ChannelDebug, sent.Channel)

	ver, err := c.VerifyOTP(ctx, &backend.VerifyOTPRequest{Email: "u@x.io", Code: sent.DebugCode})
	require.NoError(t, err)
	require.True(t, ver.Success, ver.Error)

	res, err = c.CreateAccount(ctx, &backend.CreateAccountRequest{Platform: "GitHub", Username: "alice", Email: "u@x.io", Secret: "s3cret"})
	require.NoError(t, err)
	require.True(t, res.Success, res.Error)

	list, err := c.ListAccounts(ctx, &backend.ListAccountsRequest{MasterPassword: "Str0ng!Pass"})
	require.NoError(t, err)
	require.True(t, list.Success)
	require.Len(t, list.Accounts, 1)
	assert.Equal(t, "s3cret", list.Accounts[0].Secret)

	res, err = c.ChangeMaster(ctx, &backend.ChangeMasterRequest{CurrentPassword: "Str0ng!Pass", NewPassword: "N3w!Passw0rd"})
	require.NoError(t, err)
	require.True(t, res.Success, res.Error)

	reset, err := c.ResetAccountSecret(ctx, &backend.ResetAccountSecretRequest{Platform: "github", Username: "alice", Email: "u@x.io", Secret: "n3w"})
	require.NoError(t, err)
	require.True(t, reset.Success, reset.Error)
	assert.Equal(t, "u@x.io", reset.Email)

	list, err = c.ListAccounts(ctx, &backend.ListAccountsRequest{MasterPassword: "N3w!Passw0rd"})
	require.NoError(t, err)
	require.Len(t, list.Accounts, 1)
	assert.Equal(t, "n3w", list.Accounts[0].Secret)
}

func TestGRPCClient_ServerGoneIsUnavailable(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	require.NoError(t, lis.Close())

	c, err := NewGRPCClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
	)
	require.NoError(t, err)
	defer c.Close()

	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}
