package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithLoggerAndFromContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	// No logger attached yet
	_, ok := FromContext(ctx)
	assert.False(t, ok)

	attached := slog.Default().With("component", "test")
	ctx = WithLogger(ctx, attached)

	got, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Same(t, attached, got)
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fallback := slog.Default().With("component", "fallback")

	// Falls back when nothing is attached
	assert.Same(t, fallback, FromContextOrDefault(ctx, fallback))

	// Nil fallback falls through to slog.Default
	assert.Same(t, slog.Default(), FromContextOrDefault(ctx, nil))

	// Attached logger wins over the fallback
	attached := slog.Default().With("component", "attached")
	ctx = WithLogger(ctx, attached)
	assert.Same(t, attached, FromContextOrDefault(ctx, fallback))
}
