package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore(t *testing.T) {
	store := NewKVStore()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "categories")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "categories", "[]"))
	v, ok, err := store.Get(ctx, "categories")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)

	require.NoError(t, store.Set(ctx, "categories", `[{"id":1}]`))
	v, _, _ = store.Get(ctx, "categories")
	assert.Equal(t, `[{"id":1}]`, v)

	require.NoError(t, store.Delete(ctx, "categories"))
	_, ok, _ = store.Get(ctx, "categories")
	assert.False(t, ok)
}

func TestKVStore_CancelledContext(t *testing.T) {
	store := NewKVStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Set(ctx, "k", "v"), context.Canceled)
	assert.ErrorIs(t, store.Delete(ctx, "k"), context.Canceled)
}
