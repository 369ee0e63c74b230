package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/locksafe/internal/backend"
	"github.com/dmitrijs2005/locksafe/internal/logging"
	pb "github.com/dmitrijs2005/locksafe/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// handler adapts backend.Service to pb.VaultServiceServer. Application
// failures ride inside the response; only internal errors become gRPC
// statuses.
type handler struct {
	pb.UnimplementedVaultServiceServer

	svc    backend.Service
	logger logging.Logger
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func toPBResult(r backend.Result) *pb.Result {
	return &pb.Result{
		Success:    r.Success,
		Message:    r.Message,
		Error:      r.Error,
		Code:       string(r.Code),
		Violations: r.Violations,
	}
}

func (h *handler) Ping(ctx context.Context, _ *pb.Empty) (*pb.PingResponse, error) {
	if err := h.svc.Ping(ctx); err != nil {
		return nil, toStatus(err)
	}
	return &pb.PingResponse{Status: "OK"}, nil
}

func (h *handler) CheckMasterExists(ctx context.Context, _ *pb.Empty) (*pb.ExistsResponse, error) {
	resp, err := h.svc.CheckMasterExists(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ExistsResponse{Result: toPBResult(resp.Result), Exists: resp.Exists}, nil
}

func (h *handler) SetupMaster(ctx context.Context, req *pb.PasswordRequest) (*pb.Result, error) {
	resp, err := h.svc.SetupMaster(ctx, &backend.PasswordRequest{Password: req.GetPassword()})
	if err != nil {
		return nil, toStatus(err)
	}
	return toPBResult(*resp), nil
}

func (h *handler) VerifyMaster(ctx context.Context, req *pb.PasswordRequest) (*pb.Result, error) {
	resp, err := h.svc.VerifyMaster(ctx, &backend.PasswordRequest{Password: req.GetPassword()})
	if err != nil {
		return nil, toStatus(err)
	}
	return toPBResult(*resp), nil
}

func (h *handler) ChangeMaster(ctx context.Context, req *pb.ChangeMasterRequest) (*pb.Result, error) {
	resp, err := h.svc.ChangeMaster(ctx, &backend.ChangeMasterRequest{
		CurrentPassword: req.GetCurrentPassword(),
		NewPassword:     req.GetNewPassword(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return toPBResult(*resp), nil
}

func (h *handler) SendOTP(ctx context.Context, req *pb.SendOTPRequest) (*pb.SendOTPResponse, error) {
	resp, err := h.svc.SendOTP(ctx, &backend.SendOTPRequest{Email: req.GetEmail()})
	if err != nil {
		return nil, toStatus(err)
	}
	out := &pb.SendOTPResponse{
		Result:    toPBResult(resp.Result),
		Channel:   resp.Channel,
		DebugCode: resp.DebugCode,
	}
	if !resp.ExpiresAt.IsZero() {
		out.ExpiresAt = timestamppb.New(resp.ExpiresAt)
	}
	return out, nil
}

func (h *handler) VerifyOTP(ctx context.Context, req *pb.VerifyOTPRequest) (*pb.VerifyOTPResponse, error) {
	resp, err := h.svc.VerifyOTP(ctx, &backend.VerifyOTPRequest{Email: req.GetEmail(), Code: req.GetCode()})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.VerifyOTPResponse{Result: toPBResult(resp.Result), Grant: resp.Grant}, nil
}

func (h *handler) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.Result, error) {
	resp, err := h.svc.CreateAccount(ctx, &backend.CreateAccountRequest{
		Platform: req.GetPlatform(),
		Username: req.GetUsername(),
		Email:    req.GetEmail(),
		Secret:   req.GetSecret(),
		Grant:    req.GetGrant(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return toPBResult(*resp), nil
}

func (h *handler) ListAccounts(ctx context.Context, req *pb.ListAccountsRequest) (*pb.ListAccountsResponse, error) {
	resp, err := h.svc.ListAccounts(ctx, &backend.ListAccountsRequest{MasterPassword: req.GetMasterPassword()})
	if err != nil {
		return nil, toStatus(err)
	}
	out := &pb.ListAccountsResponse{
		Result:   toPBResult(resp.Result),
		Accounts: make([]*pb.Account, 0, len(resp.Accounts)),
	}
	for _, a := range resp.Accounts {
		out.Accounts = append(out.Accounts, &pb.Account{
			Platform: a.Platform,
			Username: a.Username,
			Email:    a.Email,
			Secret:   a.Secret,
		})
	}
	return out, nil
}

func (h *handler) ResetAccountSecret(ctx context.Context, req *pb.ResetAccountSecretRequest) (*pb.ResetAccountSecretResponse, error) {
	resp, err := h.svc.ResetAccountSecret(ctx, &backend.ResetAccountSecretRequest{
		Platform: req.GetPlatform(),
		Username: req.GetUsername(),
		Email:    req.GetEmail(),
		Secret:   req.GetSecret(),
		Grant:    req.GetGrant(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ResetAccountSecretResponse{Result: toPBResult(resp.Result), Email: resp.Email}, nil
}
