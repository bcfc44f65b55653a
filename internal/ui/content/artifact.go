package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/ui/styles"
)

// Artifact describes binary targets that cannot be shown as text.
type Artifact struct {
	theme *styles.Theme
}

// NewArtifact creates the artifact renderer.
func NewArtifact(theme *styles.Theme) *Artifact {
	return &Artifact{theme: theme}
}

// Render implements port.ContentRenderer.
func (a *Artifact) Render(_ context.Context, req port.RenderRequest) string {
	target, ok := req.Tab.Payload.(entity.Target)
	if !ok {
		return failure(a.theme, req, errNoTarget)
	}

	info, err := os.Stat(filepath.Join(req.Project.Root, filepath.FromSlash(target.Path)))
	if err != nil {
		return failure(a.theme, req, fmt.Errorf("stat %s: %w", target.Path, err))
	}

	label := a.theme.Subtle.Width(8)
	row := func(k, v string) string {
		return label.Render(k) + a.theme.Normal.Render(v)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		a.theme.Title.Render(target.Title),
		"",
		row("path", target.Path),
		row("type", target.MIME),
		row("size", humanize.Bytes(uint64(info.Size()))),
		row("changed", humanize.Time(info.ModTime())),
	)
	return lipgloss.Place(req.Width, req.Height, lipgloss.Center, lipgloss.Center, body)
}
