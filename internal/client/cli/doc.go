// Package cli provides the interactive LockSafe command-line client.
//
// App wires the client configuration, the local fallback vault (SQLite), the
// remote backend client and the trust-mode controller that chooses between
// them. Run probes the server, starts the background connectivity watcher
// and then blocks in a small REPL.
//
// Account writes (create, reset-secret) go through the OTP workflow: the
// operation is held until "otp <code>" confirms it. In local mode the code is
// printed on the debug channel instead of being emailed.
package cli
