package sqlite_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "layout.db")
	lazy := sqlite.NewLazyDB(dbPath)

	assert.False(t, lazy.IsInitialized())
	assert.Equal(t, dbPath, lazy.Path())
	_, err := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err), "file must not exist before first access")
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_ConcurrentAccessSharesConnection(t *testing.T) {
	ctx := testContext()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "layout.db"))
	defer func() { require.NoError(t, lazy.Close()) }()

	const goroutines = 8
	dbs := make([]*sql.DB, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
	assert.True(t, lazy.IsInitialized())
}

func TestLazyKVStore_OpensOnFirstUse(t *testing.T) {
	ctx := testContext()
	dbPath := filepath.Join(t.TempDir(), "layout.db")
	lazy := sqlite.NewLazyDB(dbPath)
	store := sqlite.NewLazyKVStore(lazy)

	assert.False(t, lazy.IsInitialized())

	require.NoError(t, store.Set(ctx, "panel.leading.width", "30"))
	assert.True(t, lazy.IsInitialized())

	value, found, err := store.Get(ctx, "panel.leading.width")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "30", value)

	require.NoError(t, lazy.Close())
}

func TestLazyKVStore_OpenFailureIsReturnedByEveryCall(t *testing.T) {
	ctx := testContext()
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	// The parent of the database path is a regular file.
	store := sqlite.NewLazyKVStore(sqlite.NewLazyDB(filepath.Join(blocker, "layout.db")))

	_, _, err := store.Get(ctx, "panel.leading.open")
	require.Error(t, err)
	require.Error(t, store.Set(ctx, "panel.leading.open", "true"))
	require.Error(t, store.Delete(ctx, "panel.leading.open"))
	_, err = store.List(ctx, "panel.")
	require.Error(t, err)
}
