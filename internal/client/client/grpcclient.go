package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/locksafe/internal/backend"
	"github.com/dmitrijs2005/locksafe/internal/common"
	pb "github.com/dmitrijs2005/locksafe/internal/proto"
	"github.com/dmitrijs2005/locksafe/internal/requestid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// vaultClient is the subset of pb.VaultServiceClient the client uses.
type vaultClient interface {
	Ping(ctx context.Context, in *pb.Empty, opts ...grpc.CallOption) (*pb.PingResponse, error)
	CheckMasterExists(ctx context.Context, in *pb.Empty, opts ...grpc.CallOption) (*pb.ExistsResponse, error)
	SetupMaster(ctx context.Context, in *pb.PasswordRequest, opts ...grpc.CallOption) (*pb.Result, error)
	VerifyMaster(ctx context.Context, in *pb.PasswordRequest, opts ...grpc.CallOption) (*pb.Result, error)
	ChangeMaster(ctx context.Context, in *pb.ChangeMasterRequest, opts ...grpc.CallOption) (*pb.Result, error)
	SendOTP(ctx context.Context, in *pb.SendOTPRequest, opts ...grpc.CallOption) (*pb.SendOTPResponse, error)
	VerifyOTP(ctx context.Context, in *pb.VerifyOTPRequest, opts ...grpc.CallOption) (*pb.VerifyOTPResponse, error)
	CreateAccount(ctx context.Context, in *pb.CreateAccountRequest, opts ...grpc.CallOption) (*pb.Result, error)
	ListAccounts(ctx context.Context, in *pb.ListAccountsRequest, opts ...grpc.CallOption) (*pb.ListAccountsResponse, error)
	ResetAccountSecret(ctx context.Context, in *pb.ResetAccountSecretRequest, opts ...grpc.CallOption) (*pb.ResetAccountSecretResponse, error)
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      vaultClient
}

var _ backend.Service = (*GRPCClient)(nil)

// withRequestID puts the id from ctx (or a fresh one) into outgoing metadata.
func withRequestID(ctx context.Context) context.Context {
	id := requestid.FromContext(ctx)
	if id == "" {
		id = requestid.New()
	}
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.RequestIDHeaderName, id)
	return metadata.NewOutgoingContext(ctx, md)
}

func requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withRequestID(ctx), method, req, reply, cc, opts...)
}

// NewGRPCClient creates a lazily connecting client for endpointURL. Extra
// dial options are appended after the defaults, so tests can swap the dialer.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(requestIDInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", endpointURL, err)
	}

	return &GRPCClient{
		endpointURL: endpointURL,
		conn:        conn,
		client:      pb.NewVaultServiceClient(conn),
	}, nil
}

func (s *GRPCClient) Endpoint() string {
	return s.endpointURL
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

// fromPBResult tolerates a nil result, which a peer sends as an absent field.
func fromPBResult(r *pb.Result) backend.Result {
	return backend.Result{
		Success:    r.GetSuccess(),
		Message:    r.GetMessage(),
		Error:      r.GetError(),
		Code:       backend.Code(r.GetCode()),
		Violations: r.GetViolations(),
	}
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.Empty{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return fmt.Errorf("unexpected ping status %q: %w", resp.GetStatus(), ErrUnavailable)
	}
	return nil
}

func (s *GRPCClient) CheckMasterExists(ctx context.Context) (*backend.ExistsResponse, error) {
	resp, err := s.client.CheckMasterExists(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &backend.ExistsResponse{Result: fromPBResult(resp.GetResult()), Exists: resp.GetExists()}, nil
}

func (s *GRPCClient) SetupMaster(ctx context.Context, req *backend.PasswordRequest) (*backend.Result, error) {
	resp, err := s.client.SetupMaster(ctx, &pb.PasswordRequest{Password: req.Password})
	if err != nil {
		return nil, s.mapError(err)
	}
	res := fromPBResult(resp)
	return &res, nil
}

func (s *GRPCClient) VerifyMaster(ctx context.Context, req *backend.PasswordRequest) (*backend.Result, error) {
	resp, err := s.client.VerifyMaster(ctx, &pb.PasswordRequest{Password: req.Password})
	if err != nil {
		return nil, s.mapError(err)
	}
	res := fromPBResult(resp)
	return &res, nil
}

func (s *GRPCClient) ChangeMaster(ctx context.Context, req *backend.ChangeMasterRequest) (*backend.Result, error) {
	resp, err := s.client.ChangeMaster(ctx, &pb.ChangeMasterRequest{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return nil, s.mapError(err)
	}
	res := fromPBResult(resp)
	return &res, nil
}

func (s *GRPCClient) SendOTP(ctx context.Context, req *backend.SendOTPRequest) (*backend.SendOTPResponse, error) {
	resp, err := s.client.SendOTP(ctx, &pb.SendOTPRequest{Email: req.Email})
	if err != nil {
		return nil, s.mapError(err)
	}
	out := &backend.SendOTPResponse{
		Result:    fromPBResult(resp.GetResult()),
		Channel:   resp.GetChannel(),
		DebugCode: resp.GetDebugCode(),
	}
	if resp.GetExpiresAt() != nil {
		out.ExpiresAt = resp.GetExpiresAt().AsTime()
	}
	return out, nil
}

func (s *GRPCClient) VerifyOTP(ctx context.Context, req *backend.VerifyOTPRequest) (*backend.VerifyOTPResponse, error) {
	resp, err := s.client.VerifyOTP(ctx, &pb.VerifyOTPRequest{Email: req.Email, Code: req.Code})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &backend.VerifyOTPResponse{Result: fromPBResult(resp.GetResult()), Grant: resp.GetGrant()}, nil
}

func (s *GRPCClient) CreateAccount(ctx context.Context, req *backend.CreateAccountRequest) (*backend.Result, error) {
	resp, err := s.client.CreateAccount(ctx, &pb.CreateAccountRequest{
		Platform: req.Platform,
		Username: req.Username,
		Email:    req.Email,
		Secret:   req.Secret,
		Grant:    req.Grant,
	})
	if err != nil {
		return nil, s.mapError(err)
	}
	res := fromPBResult(resp)
	return &res, nil
}

func (s *GRPCClient) ListAccounts(ctx context.Context, req *backend.ListAccountsRequest) (*backend.ListAccountsResponse, error) {
	resp, err := s.client.ListAccounts(ctx, &pb.ListAccountsRequest{MasterPassword: req.MasterPassword})
	if err != nil {
		return nil, s.mapError(err)
	}
	out := &backend.ListAccountsResponse{
		Result:   fromPBResult(resp.GetResult()),
		Accounts: make([]backend.Account, 0, len(resp.GetAccounts())),
	}
	for _, a := range resp.GetAccounts() {
		out.Accounts = append(out.Accounts, backend.Account{
			Platform: a.GetPlatform(),
			Username: a.GetUsername(),
			Email:    a.GetEmail(),
			Secret:   a.GetSecret(),
		})
	}
	return out, nil
}

func (s *GRPCClient) ResetAccountSecret(ctx context.Context, req *backend.ResetAccountSecretRequest) (*backend.ResetAccountSecretResponse, error) {
	resp, err := s.client.ResetAccountSecret(ctx, &pb.ResetAccountSecretRequest{
		Platform: req.Platform,
		Username: req.Username,
		Email:    req.Email,
		Secret:   req.Secret,
		Grant:    req.Grant,
	})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &backend.ResetAccountSecretResponse{Result: fromPBResult(resp.GetResult()), Email: resp.GetEmail()}, nil
}
