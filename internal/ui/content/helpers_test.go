package content_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/infrastructure/config"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/styles"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func testTheme() *styles.Theme {
	return styles.NewThemeFromPalette(config.DefaultPalette())
}

// writeProject creates files under a temp root and returns the project.
func writeProject(t *testing.T, files map[string]string) entity.Project {
	t.Helper()
	root := t.TempDir()
	for rel, body := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
	return entity.Project{ID: entity.ProjectID(root), Name: "demo", Root: root}
}

func request(project entity.Project, desc entity.TabDescriptor, w, h int) port.RenderRequest {
	return port.RenderRequest{
		Tab:     desc,
		Project: project,
		Width:   w,
		Height:  h,
	}
}

type dirtyCall struct {
	ID    entity.TabID
	Dirty bool
}

type recordingSink struct {
	calls []dirtyCall
}

func (s *recordingSink) SetDirty(_ context.Context, id entity.TabID, dirty bool) {
	s.calls = append(s.calls, dirtyCall{ID: id, Dirty: dirty})
}
