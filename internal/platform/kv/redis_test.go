package kv_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/espacios/espacios-api/internal/platform/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockRedisServer(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func TestRedisStore(t *testing.T) {
	s := mockRedisServer(t)
	ctx := context.Background()

	store, err := kv.NewRedisStore(ctx, kv.RedisConfig{Addr: s.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	// Missing key
	_, err = store.Get(ctx, "espacios:reviews")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)

	// Round trip
	require.NoError(t, store.Set(ctx, "espacios:reviews", `[{"id":"1"}]`))
	value, err := store.Get(ctx, "espacios:reviews")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, value)

	// The value lands under the exact key with no TTL
	got, err := s.Get("espacios:reviews")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, got)
	assert.Equal(t, time.Duration(0), s.TTL("espacios:reviews"))
}

func TestNewRedisStore_ConnectionFailure(t *testing.T) {
	ctx := context.Background()

	store, err := kv.NewRedisStore(ctx, kv.RedisConfig{
		Addr:    "127.0.0.1:1",
		Timeout: 100 * time.Millisecond,
	})

	assert.Error(t, err)
	assert.Nil(t, store)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}
