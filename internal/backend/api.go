// Package backend defines the logical Backend Service contract shared by
// every transport, and Engine, its in-process implementation.
//
// Every response embeds Result: application failures travel as
// Success=false with a human-readable Error and a machine Code, while Go
// errors returned next to a response are reserved for transport or internal
// failures. Callers therefore never fall back to local mode on an
// application failure.
package backend

import (
	"context"
	"time"
)

// Service is the set of operations a client can call.
type Service interface {
	CheckMasterExists(ctx context.Context) (*ExistsResponse, error)
	SetupMaster(ctx context.Context, req *PasswordRequest) (*Result, error)
	VerifyMaster(ctx context.Context, req *PasswordRequest) (*Result, error)
	ChangeMaster(ctx context.Context, req *ChangeMasterRequest) (*Result, error)
	SendOTP(ctx context.Context, req *SendOTPRequest) (*SendOTPResponse, error)
	VerifyOTP(ctx context.Context, req *VerifyOTPRequest) (*VerifyOTPResponse, error)
	CreateAccount(ctx context.Context, req *CreateAccountRequest) (*Result, error)
	ListAccounts(ctx context.Context, req *ListAccountsRequest) (*ListAccountsResponse, error)
	ResetAccountSecret(ctx context.Context, req *ResetAccountSecretRequest) (*ResetAccountSecretResponse, error)
	Ping(ctx context.Context) error
}

// OTPCanceler is implemented by services that can withdraw an outstanding
// challenge before it expires.
type OTPCanceler interface {
	CancelOTP(ctx context.Context, email string) error
}

// Result is the success discriminator carried by every response.
type Result struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message,omitempty"`
	Error      string   `json:"error,omitempty"`
	Code       Code     `json:"code,omitempty"`
	Violations []string `json:"violations,omitempty"`
}

type ExistsResponse struct {
	Result
	Exists bool `json:"exists"`
}

type PasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

type ChangeMasterRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// OTP delivery channels.
const (
	ChannelEmail = "email"
	ChannelDebug = "debug"
)

// SendOTPResponse tells the caller how the code was delivered. DebugCode is
// only ever filled on the debug channel.
type SendOTPResponse struct {
	Result
	Channel   string    `json:"channel,omitempty"`
	DebugCode string    `json:"debugCode,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitzero"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"otp" validate:"required,numeric"`
}

// VerifyOTPResponse carries a one-shot grant for the operation the OTP
// authorized.
type VerifyOTPResponse struct {
	Result
	Grant string `json:"grant,omitempty"`
}

type CreateAccountRequest struct {
	Platform string `json:"platform" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Secret   string `json:"secret" validate:"required"`
	Grant    string `json:"grant,omitempty"`
}

type ListAccountsRequest struct {
	MasterPassword string `json:"masterPassword" validate:"required"`
}

type Account struct {
	Platform string `json:"platform"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Secret   string `json:"secret"`
}

type ListAccountsResponse struct {
	Result
	Accounts []Account `json:"accounts"`
}

type ResetAccountSecretRequest struct {
	Platform string `json:"platform" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Secret   string `json:"secret" validate:"required"`
	Grant    string `json:"grant,omitempty"`
}

type ResetAccountSecretResponse struct {
	Result
	Email string `json:"email,omitempty"`
}
