package client

import "errors"

var (
	// ErrUnavailable marks a transport failure: the server could not be
	// reached or did not answer in time. It is the only error that makes the
	// trust controller fall back to the local vault.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is returned when the server rejects the caller itself,
	// as opposed to an application failure carried in a Result.
	ErrUnauthorized = errors.New("unauthorized")
)
