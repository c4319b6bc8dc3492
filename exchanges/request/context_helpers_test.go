package request

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsVerbose(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	assert.False(t, IsVerbose(ctx, false))
	assert.True(t, IsVerbose(ctx, true))
	assert.True(t, IsVerbose(WithVerbose(ctx), false))
}

func TestDelayNotAllowed(t *testing.T) {
	t.Parallel()
	assert.False(t, hasDelayNotAllowed(context.Background()))
	assert.True(t, hasDelayNotAllowed(WithDelayNotAllowed(context.Background())))
}
