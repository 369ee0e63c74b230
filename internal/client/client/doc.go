// Package client contains the remote implementations of backend.Service
// used by the LockSafe CLI.
//
// # Overview
//
// Two transports are provided:
//  1. GRPCClient talks to locksafe.v1.VaultService over gRPC with the JSON
//     codec and stamps every call with an x-request-id.
//  2. HTTPClient talks to the JSON REST surface served under /api.
//
// # Error Handling
//
// Application failures (wrong master password, policy violations, invalid
// OTPs) are returned inside the response Result with a nil error. A non-nil
// error means the call did not complete. Connectivity problems are reported
// as ErrUnavailable so the trust controller can fall back to local mode;
// callers match it with errors.Is.
//
// Concurrency & Contexts
//
// Both clients are safe for concurrent use. All operations accept
// context.Context and honor cancellation and timeouts.
package client
