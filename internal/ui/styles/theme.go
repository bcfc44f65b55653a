// Package styles provides the lipgloss theme and tab bar of the workspace.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/workbench/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Warning    lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	WarningStyle lipgloss.Style

	ActiveTab     lipgloss.Style
	InactiveTab   lipgloss.Style
	DropTargetTab lipgloss.Style
	DraggedTab    lipgloss.Style
	TabBar        lipgloss.Style
	DirtyMarker   lipgloss.Style
	PinMarker     lipgloss.Style

	PanelTitle     lipgloss.Style
	Handle         lipgloss.Style
	HandleActive   lipgloss.Style
	CollapsedStrip lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	ListMatch        lipgloss.Style

	StatusBar lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
}

// NewTheme creates a Theme from config, falling back to the default palette.
func NewTheme(cfg *config.Config) *Theme {
	p := config.DefaultPalette()
	if cfg != nil && cfg.Appearance.Palette.Background != "" {
		p = cfg.Appearance.Palette
	}
	return NewThemeFromPalette(p)
}

// NewThemeFromPalette creates a Theme from a palette.
func NewThemeFromPalette(p config.Palette) *Theme {
	t := &Theme{
		Background: lipgloss.Color(p.Background),
		Surface:    lipgloss.Color(p.Surface),
		Text:       lipgloss.Color(p.Text),
		Muted:      lipgloss.Color(p.Muted),
		Accent:     lipgloss.Color(p.Accent),
		Border:     lipgloss.Color(p.Border),
		Warning:    lipgloss.Color(p.Warning),
	}
	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	// Tabs carry no horizontal padding; the tab bar pads labels itself so
	// hit regions match rendered cells exactly.
	t.ActiveTab = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true)

	t.InactiveTab = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface)

	t.DropTargetTab = lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Underline(true)

	t.DraggedTab = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Border).
		Italic(true)

	t.TabBar = lipgloss.NewStyle().
		Background(t.Surface)

	t.DirtyMarker = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.PinMarker = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.PanelTitle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.Handle = lipgloss.NewStyle().
		Foreground(t.Border)

	t.HandleActive = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.CollapsedStrip = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface)

	t.ListItem = lipgloss.NewStyle().
		Foreground(t.Text).
		PaddingLeft(1)

	t.ListItemSelected = lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		PaddingLeft(1).
		Bold(true)

	t.ListMatch = lipgloss.NewStyle().
		Foreground(t.Accent).
		Underline(true)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)
}
