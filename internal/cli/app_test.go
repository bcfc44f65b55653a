package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/cli"
	"github.com/bnema/workbench/internal/domain/build"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/infrastructure/config"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func newApp(t *testing.T) *cli.App {
	t.Helper()
	app, err := cli.NewApp()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestNewApp_DefaultsToSQLite(t *testing.T) {
	root := isolateXDG(t)
	app := newApp(t)

	assert.Equal(t, config.StorageSQLite, app.Config.Storage.Backend)
	dbPath := filepath.Join(root, "data", "workbench", "workbench.sqlite")
	_, err := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err), "database opens on first use")

	_, err = app.LayoutReport(app.Ctx())
	require.NoError(t, err)
	_, err = os.Stat(dbPath)
	require.NoError(t, err)
}

func TestNewApp_InvalidConfigFails(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", "workbench")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[panels.leading]
min_width = 50
max_width = 10
`), 0o644))

	_, err := cli.NewApp()
	require.Error(t, err)
}

func TestLayout_FileBackendSurvivesRestart(t *testing.T) {
	isolateXDG(t)
	t.Setenv("WORKBENCH_STORAGE_BACKEND", "file")

	first := newApp(t)
	leading, _ := first.Panels()
	ctx := first.Ctx()
	leading.Load(ctx)
	leading.SetWidth(ctx, 42)
	leading.SetOpen(ctx, false)
	require.NoError(t, first.Close())

	second := newApp(t)
	reports, err := second.LayoutReport(second.Ctx())
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, entity.SideLeading, reports[0].State.Side)
	assert.False(t, reports[0].State.IsOpen)
	assert.Equal(t, 42, reports[0].State.Width)
	assert.Equal(t, map[string]string{"open": "false", "width": "42"}, reports[0].Stored)

	assert.Equal(t, entity.SideTrailing, reports[1].State.Side)
	assert.Empty(t, reports[1].Stored)
}

func TestLayout_ResetClearsStoredKeys(t *testing.T) {
	isolateXDG(t)
	app := newApp(t)
	ctx := app.Ctx()

	_, trailing := app.Panels()
	trailing.SetWidth(ctx, 50)

	require.NoError(t, app.ResetLayout(ctx))

	stored, err := app.Store.List(ctx, "panel.")
	require.NoError(t, err)
	assert.Empty(t, stored)

	reports, err := app.LayoutReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, app.Config.Panels.Trailing.DefaultWidth, reports[1].State.Width)
}

func TestResolveProjects(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()

	t.Run("arguments win over config", func(t *testing.T) {
		projects, err := cli.ResolveProjects([]string{a}, []string{b})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, a, projects[0].Root)
	})

	t.Run("config when no arguments", func(t *testing.T) {
		projects, err := cli.ResolveProjects(nil, []string{b, a})
		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, b, projects[0].Root)
	})

	t.Run("duplicates dropped", func(t *testing.T) {
		projects, err := cli.ResolveProjects([]string{a, a + "/."}, nil)
		require.NoError(t, err)
		assert.Len(t, projects, 1)
	})

	t.Run("working directory fallback", func(t *testing.T) {
		t.Chdir(b)
		projects, err := cli.ResolveProjects(nil, nil)
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, filepath.Base(b), projects[0].Name)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := cli.ResolveProjects([]string{filepath.Join(a, "nope")}, nil)
		require.Error(t, err)
	})

	t.Run("file is not a project", func(t *testing.T) {
		path := filepath.Join(a, "file.txt")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		_, err := cli.ResolveProjects([]string{path}, nil)
		require.ErrorContains(t, err, "not a directory")
	})
}

func TestNewShell_RendersWorkspace(t *testing.T) {
	isolateXDG(t)
	t.Setenv("WORKBENCH_STORAGE_BACKEND", "memory")
	app := newApp(t)

	projects, err := cli.ResolveProjects([]string{t.TempDir()}, nil)
	require.NoError(t, err)

	m := app.NewShell(app.Ctx(), projects)
	defer m.Unmount()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})

	view := ansi.Strip(m.View())
	assert.Contains(t, view, app.Config.Workspace.DefaultTabTitle)
	assert.Contains(t, view, projects[0].Name)
}

func TestRenderer(t *testing.T) {
	isolateXDG(t)
	t.Setenv("WORKBENCH_STORAGE_BACKEND", "memory")
	app := newApp(t)
	r := cli.NewRenderer(app.Theme)

	t.Run("layout", func(t *testing.T) {
		reports := []cli.PanelReport{{
			State:  entity.PanelState{Side: entity.SideLeading, IsOpen: true, Width: 30},
			Bounds: entity.PanelBounds{Min: 18, Max: 60, Default: 30},
			Stored: map[string]string{"width": "30", "open": "true"},
		}}
		out := ansi.Strip(r.Layout(reports, "memory", ""))
		assert.Contains(t, out, "memory store")
		assert.Contains(t, out, "leading")
		assert.Contains(t, out, "18..60 (default 30)")
		assert.Contains(t, out, "open=true width=30")
	})

	t.Run("version", func(t *testing.T) {
		out := ansi.Strip(r.Version(build.Info{Version: "1.2.3", Commit: "abc"}))
		assert.Contains(t, out, "1.2.3")
		assert.Contains(t, out, build.RepoURL())
	})

	t.Run("paths", func(t *testing.T) {
		out := ansi.Strip(r.Paths(app.Paths()))
		assert.Contains(t, out, "config.toml")
		assert.Contains(t, out, "storage  -")
	})
}
