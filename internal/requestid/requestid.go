// Package requestid assigns ULID request ids at the edge and carries them
// through a context.
package requestid

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

type ctxKey struct{}

// New returns a fresh, time-ordered id.
func New() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the id stored in ctx, or "".
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Valid reports whether s parses as a ULID. Ids supplied by callers that
// fail this check are replaced.
func Valid(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
