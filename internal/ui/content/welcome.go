package content

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/ui/styles"
)

var welcomeHints = [][2]string{
	{"/", "filter project files"},
	{"enter", "open the selected file"},
	{"tab / shift+tab", "cycle tabs"},
	{"1-9", "jump to a tab"},
	{"ctrl+w", "close the active tab"},
	{"ctrl+n", "new scratch note"},
	{"ctrl+b / ctrl+p", "toggle side panels"},
	{"ctrl+o", "switch project"},
	{"?", "all shortcuts"},
}

// Welcome is the landing view of a fresh workspace.
type Welcome struct {
	theme *styles.Theme
}

// NewWelcome creates the welcome renderer.
func NewWelcome(theme *styles.Theme) *Welcome {
	return &Welcome{theme: theme}
}

// Render implements port.ContentRenderer.
func (w *Welcome) Render(_ context.Context, req port.RenderRequest) string {
	var b strings.Builder
	b.WriteString(w.theme.Title.Render("workbench"))
	b.WriteString("\n")
	if req.Project.Name != "" {
		b.WriteString(w.theme.Subtle.Render(req.Project.Name + "  " + req.Project.Root))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	keyWidth := 0
	for _, h := range welcomeHints {
		keyWidth = max(keyWidth, lipgloss.Width(h[0]))
	}
	keyStyle := w.theme.HelpKey.Width(keyWidth + 2)
	for _, h := range welcomeHints {
		b.WriteString(keyStyle.Render(h[0]))
		b.WriteString(w.theme.HelpDesc.Render(h[1]))
		b.WriteString("\n")
	}

	return lipgloss.Place(req.Width, req.Height, lipgloss.Center, lipgloss.Center,
		strings.TrimRight(b.String(), "\n"))
}
