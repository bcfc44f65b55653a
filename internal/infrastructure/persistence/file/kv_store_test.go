package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/workbench/internal/infrastructure/persistence/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "layout.yaml")

	store := file.NewKVStore(path)
	require.NoError(t, store.Set(ctx, "panel.leading.open", "false"))
	require.NoError(t, store.Set(ctx, "panel.leading.width", "300"))

	reopened := file.NewKVStore(path)
	v, found, err := reopened.Get(ctx, "panel.leading.width")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "300", v)

	all, err := reopened.List(ctx, "panel.leading.")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestKVStore_MissingFileIsEmpty(t *testing.T) {
	store := file.NewKVStore(filepath.Join(t.TempDir(), "absent.yaml"))

	_, found, err := store.Get(context.Background(), "panel.trailing.open")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKVStore_CorruptFileStartsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("::: not yaml [\n"), 0o600))

	store := file.NewKVStore(path)
	_, found, err := store.Get(ctx, "panel.leading.width")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "panel.leading.width", "280"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "panel.leading.width")
}

func TestKVStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := file.NewKVStore(filepath.Join(t.TempDir(), "layout.yaml"))

	require.NoError(t, store.Set(ctx, "a", "1"))
	require.NoError(t, store.Delete(ctx, "a"))
	require.NoError(t, store.Delete(ctx, "a"))

	_, found, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, found)
}
