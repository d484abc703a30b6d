package kv_test

import (
	"context"
	"testing"

	"github.com/espacios/espacios-api/internal/platform/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	store, err := kv.NewFileStore(dir)
	require.NoError(t, err)

	// Missing key
	_, err = store.Get(ctx, "espacios:rentals")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)

	// Round trip; the colon in the key must not break the file mapping
	require.NoError(t, store.Set(ctx, "espacios:rentals", `[{"id":"1"}]`))
	value, err := store.Get(ctx, "espacios:rentals")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, value)

	// Values survive a fresh store over the same directory
	reopened, err := kv.NewFileStore(dir)
	require.NoError(t, err)
	value, err = reopened.Get(ctx, "espacios:rentals")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, value)

	// Overwrite
	require.NoError(t, store.Set(ctx, "espacios:rentals", `[]`))
	value, err = store.Get(ctx, "espacios:rentals")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)
}
