package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContext_RoundTrip(t *testing.T) {
	m := NewManager()
	ctx := NewContext(context.Background(), m)
	assert.Same(t, m, FromContext(ctx))
}

func TestContext_BareContextGetsFreshManager(t *testing.T) {
	first := FromContext(context.Background())
	second := FromContext(context.Background())
	assert.NotNil(t, first)
	assert.NotSame(t, first, second, "an unadorned context must never yield a shared singleton")
}
