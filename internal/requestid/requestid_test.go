package requestid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsValidAndUnique(t *testing.T) {
	a, b := New(), New()
	assert.True(t, Valid(a))
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
	assert.False(t, Valid("not-a-ulid"))
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, FromContext(ctx))

	ctx = WithContext(ctx, "01HZY")
	assert.Equal(t, "01HZY", FromContext(ctx))
}
