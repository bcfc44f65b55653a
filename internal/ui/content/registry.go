// Package content renders the body of the active tab.
//
// The workspace only hands a port.RenderRequest to the Registry and prints
// whatever comes back; every renderer expresses its own failures inline.
package content

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/styles"
)

// Registry dispatches render requests by tab kind.
type Registry struct {
	theme     *styles.Theme
	renderers map[entity.TabKind]port.ContentRenderer
}

var _ port.ContentRenderer = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry(theme *styles.Theme) *Registry {
	return &Registry{
		theme:     theme,
		renderers: make(map[entity.TabKind]port.ContentRenderer),
	}
}

// Register binds a renderer to a tab kind, replacing any previous one.
func (r *Registry) Register(kind entity.TabKind, renderer port.ContentRenderer) {
	r.renderers[kind] = renderer
}

// Render implements port.ContentRenderer.
func (r *Registry) Render(ctx context.Context, req port.RenderRequest) string {
	if req.Width <= 0 || req.Height <= 0 {
		return ""
	}
	if req.Tab.ID == "" {
		return placeholder(r.theme, req, "No tab open")
	}

	renderer, ok := r.renderers[req.Tab.Kind]
	if !ok {
		logging.FromContext(ctx).Debug().
			Str("kind", string(req.Tab.Kind)).
			Msg("no renderer registered for tab kind")
		return placeholder(r.theme, req, fmt.Sprintf("Nothing can display %q tabs", req.Tab.Kind))
	}
	return renderer.Render(ctx, req)
}

// placeholder centers a muted message in the content area.
func placeholder(theme *styles.Theme, req port.RenderRequest, msg string) string {
	return lipgloss.Place(req.Width, req.Height, lipgloss.Center, lipgloss.Center,
		theme.Subtle.Render(msg))
}

// failure renders an inline error for a tab that could not be displayed.
func failure(theme *styles.Theme, req port.RenderRequest, err error) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.WarningStyle.Render("Cannot display "+req.Tab.Title),
		theme.Subtle.Render(err.Error()),
	)
	return lipgloss.Place(req.Width, req.Height, lipgloss.Left, lipgloss.Top,
		lipgloss.NewStyle().Width(req.Width).Padding(1, 2).Render(body))
}
