// Package logging defines the structured-logging interface used by the
// server, the vault and the CLI, with slog and zap implementations.
//
// Both implementations add the request id carried by ctx (see package
// requestid) as the "request_id" attribute, so handlers never pass it by hand.
package logging

import (
	"context"

	"github.com/dmitrijs2005/locksafe/internal/requestid"
)

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs:
//
//	log.Info(ctx, "account created", "platform", p, "id", id)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}

const requestIDKey = "request_id"

// withRequestID prepends the request id from ctx to args, if there is one.
func withRequestID(ctx context.Context, args []any) []any {
	if ctx == nil {
		return args
	}
	id := requestid.FromContext(ctx)
	if id == "" {
		return args
	}
	return append([]any{requestIDKey, id}, args...)
}
