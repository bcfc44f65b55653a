package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/workbench/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/workbench/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestKVStore_RoundTripSurvivesReopen(t *testing.T) {
	ctx := testContext()
	path := filepath.Join(t.TempDir(), "nested", "workbench.db")

	db, err := sqlite.NewConnection(ctx, path)
	require.NoError(t, err)
	store := sqlite.NewKVStore(db)

	require.NoError(t, store.Set(ctx, "panel.leading.open", "false"))
	require.NoError(t, store.Set(ctx, "panel.leading.width", "300"))
	require.NoError(t, store.Set(ctx, "panel.leading.width", "310"))
	require.NoError(t, sqlite.Close(db))

	db, err = sqlite.NewConnection(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	store = sqlite.NewKVStore(db)

	v, found, err := store.Get(ctx, "panel.leading.width")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "310", v)

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestKVStore_MissingAndDelete(t *testing.T) {
	ctx := testContext()
	db, err := sqlite.NewConnection(ctx, sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	store := sqlite.NewKVStore(db)

	_, found, err := store.Get(ctx, "panel.trailing.open")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "panel.trailing.open", "true"))
	require.NoError(t, store.Delete(ctx, "panel.trailing.open"))
	require.NoError(t, store.Delete(ctx, "never-set"))

	_, found, err = store.Get(ctx, "panel.trailing.open")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKVStore_ListByPrefix(t *testing.T) {
	ctx := testContext()
	db, err := sqlite.NewConnection(ctx, sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	store := sqlite.NewKVStore(db)

	require.NoError(t, store.Set(ctx, "panel.leading.width", "30"))
	require.NoError(t, store.Set(ctx, "panel.trailing.width", "34"))
	require.NoError(t, store.Set(ctx, "panelx", "nope"))

	got, err := store.List(ctx, "panel.")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"panel.leading.width":  "30",
		"panel.trailing.width": "34",
	}, got)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testContext(), "")
	require.Error(t, err)
}
