package backend

import (
	"errors"

	"github.com/dmitrijs2005/locksafe/internal/common"
	"github.com/dmitrijs2005/locksafe/internal/policy"
)

// Code names an application failure on the wire.
type Code string

const (
	CodePolicyViolation    Code = "policy_violation"
	CodeWrongCredential    Code = "wrong_credential"
	CodeNotInitialized     Code = "not_initialized"
	CodeAlreadyInitialized Code = "already_initialized"
	CodeDuplicateAccount   Code = "duplicate_account"
	CodeAccountNotFound    Code = "account_not_found"
	CodeOTPInvalid         Code = "otp_invalid"
	CodeOTPExpired         Code = "otp_expired"
	CodeInvalidGrant       Code = "invalid_grant"
	CodeRateLimited        Code = "rate_limited"
	CodeInvalidRequest     Code = "invalid_request"
	CodeDeliveryFailed     Code = "delivery_failed"
)

var codes = []struct {
	code Code
	err  error
}{
	{CodePolicyViolation, common.ErrPolicyViolation},
	{CodeWrongCredential, common.ErrWrongCredential},
	{CodeNotInitialized, common.ErrNotInitialized},
	{CodeAlreadyInitialized, common.ErrAlreadyInitialized},
	{CodeDuplicateAccount, common.ErrDuplicateAccount},
	{CodeAccountNotFound, common.ErrAccountNotFound},
	{CodeOTPInvalid, common.ErrOTPInvalid},
	{CodeOTPExpired, common.ErrOTPExpired},
	{CodeInvalidGrant, common.ErrInvalidGrant},
	{CodeRateLimited, common.ErrRateLimited},
	{CodeInvalidRequest, common.ErrInvalidRequest},
}

// ErrDeliveryFailed is reported when an OTP could not be sent.
var ErrDeliveryFailed = errors.New("failed to send OTP email")

// Success builds a successful Result.
func Success(msg string) Result {
	return Result{Success: true, Message: msg}
}

// Failure converts a known application error into a failed Result. ok is
// false for anything else, which callers treat as an internal error.
func Failure(err error) (res Result, ok bool) {
	if errors.Is(err, ErrDeliveryFailed) {
		return Result{Error: ErrDeliveryFailed.Error(), Code: CodeDeliveryFailed}, true
	}
	for _, c := range codes {
		if !errors.Is(err, c.err) {
			continue
		}
		res = Result{Error: c.err.Error(), Code: c.code}
		var ve *policy.ViolationError
		if errors.As(err, &ve) {
			res.Error = ve.Error()
			res.Violations = ve.Result.Messages
		}
		if c.code == CodeInvalidRequest {
			res.Error = err.Error()
		}
		return res, true
	}
	return Result{}, false
}

// Err returns nil on success and a *ResponseError otherwise.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return &ResponseError{Code: r.Code, Message: r.Error, Violations: r.Violations}
}

// ResponseError is an application failure received from a backend. It
// unwraps to the matching sentinel in package common so errors.Is works
// across transports.
type ResponseError struct {
	Code       Code
	Message    string
	Violations []string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return e.Message
}

func (e *ResponseError) Unwrap() error {
	if e.Code == CodeDeliveryFailed {
		return ErrDeliveryFailed
	}
	for _, c := range codes {
		if c.code == e.Code {
			return c.err
		}
	}
	return nil
}
