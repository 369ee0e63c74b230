// Package common defines shared constants and sentinel errors used across
// client and server layers of LockSafe. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Master credential errors.
	ErrPolicyViolation    = errors.New("password does not satisfy policy")
	ErrWrongCredential    = errors.New("incorrect master password")
	ErrNotInitialized     = errors.New("master password is not set")
	ErrAlreadyInitialized = errors.New("master password already exists")

	// Account errors.
	ErrDuplicateAccount = errors.New("this username is already registered on this platform")
	ErrAccountNotFound  = errors.New("account not found")
	ErrDecodeFailure    = errors.New("decryption failed")

	// OTP errors.
	ErrOTPInvalid  = errors.New("incorrect OTP")
	ErrOTPExpired  = errors.New("OTP has expired")
	ErrRateLimited = errors.New("too many requests")

	// Grant errors (OTP proof attached to a sensitive operation).
	ErrInvalidGrant = errors.New("invalid grant")

	// Request validation.
	ErrInvalidRequest = errors.New("invalid request")
)
