package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*DB, func()) {
	// create temp db file
	tmpFile, err := os.CreateTemp("", "taskboard_test_*.db")
	require.NoError(t, err)
	tmpFile.Close()

	dbPath := tmpFile.Name()

	db, err := NewDB(Config{Path: dbPath})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return db, cleanup
}

func TestKVStore_GetMissing(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewKVStore(db)

	value, ok, err := store.Get(context.Background(), "categories")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestKVStore_SetAndOverwrite(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewKVStore(db)
	ctx := context.Background()

	t.Run("insert", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "categories", `[{"id":1,"name":"Work"}]`))

		value, ok, err := store.Get(ctx, "categories")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":1,"name":"Work"}]`, value)
	})

	t.Run("overwrite keeps a single row", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "categories", "[]"))

		value, ok, err := store.Get(ctx, "categories")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "[]", value)

		var count int
		require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM kv_store"))
		assert.Equal(t, 1, count)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		assert.Error(t, store.Set(ctx, "", "x"))
	})
}

func TestKVStore_Delete(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewKVStore(db)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "categories", "[]"))
	require.NoError(t, store.Delete(ctx, "categories"))

	_, ok, err := store.Get(ctx, "categories")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting a missing key is not an error
	assert.NoError(t, store.Delete(ctx, "categories"))
}

func TestKVStore_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "taskboard.db")
	ctx := context.Background()

	db, err := NewDB(Config{Path: dbPath})
	require.NoError(t, err)
	require.NoError(t, NewKVStore(db).Set(ctx, "categories", `[{"id":9}]`))
	require.NoError(t, db.Close())

	db, err = NewDB(Config{Path: dbPath})
	require.NoError(t, err)
	defer db.Close()

	value, ok, err := NewKVStore(db).Get(ctx, "categories")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":9}]`, value)
}

func TestNewDB_InMemory(t *testing.T) {
	db, err := NewDB(Config{Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	store := NewKVStore(db)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v"))
	value, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)
}
