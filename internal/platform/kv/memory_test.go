package kv_test

import (
	"context"
	"testing"

	"github.com/espacios/espacios-api/internal/platform/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := kv.NewMemoryStore()

	// Missing key
	_, err := store.Get(ctx, "espacios:users")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)

	// Round trip
	require.NoError(t, store.Set(ctx, "espacios:users", `[{"id":"1"}]`))
	value, err := store.Get(ctx, "espacios:users")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, value)

	// Overwrite
	require.NoError(t, store.Set(ctx, "espacios:users", `[]`))
	value, err = store.Get(ctx, "espacios:users")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)

	// Keys are independent
	_, err = store.Get(ctx, "espacios:spaces")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)
}
