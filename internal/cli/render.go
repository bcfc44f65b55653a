package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/workbench/internal/domain/build"
	"github.com/bnema/workbench/internal/ui/styles"
)

// Renderer formats command output with the configured palette.
type Renderer struct {
	theme *styles.Theme
}

// NewRenderer creates a renderer for the given theme.
func NewRenderer(theme *styles.Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Version renders build info next to a small logo.
func (r *Renderer) Version(info build.Info) string {
	logo := lipgloss.NewStyle().
		Foreground(r.theme.Accent).
		Bold(true).
		MarginTop(1).
		MarginLeft(2).
		Render("▛▀▀▀▜\n▌ ▪ ▐\n▙▄▄▄▟")

	key := r.theme.Subtle
	val := r.theme.Highlight
	lines := []string{
		key.Render("Version ") + val.Render(info.Version),
		key.Render("Commit  ") + val.Render(info.Commit),
		key.Render("Built   ") + val.Render(info.BuildDate),
		key.Render("Go      ") + val.Render(info.GoVersion),
		"",
		key.Render(build.RepoURL()),
		key.Render("by ") + val.Render(strings.Join(build.Contributors(), ", ")),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", strings.Join(lines, "\n"))
}

// Layout renders the effective and stored layout of both panels.
func (r *Renderer) Layout(reports []PanelReport, backend, path string) string {
	rows := make([]table.Row, 0, len(reports))
	for _, rep := range reports {
		rows = append(rows, table.Row{
			string(rep.State.Side),
			strconv.FormatBool(rep.State.IsOpen),
			strconv.Itoa(rep.State.Width),
			fmt.Sprintf("%d..%d (default %d)", rep.Bounds.Min, rep.Bounds.Max, rep.Bounds.DefaultWidth()),
			storedSummary(rep.Stored),
		})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "PANEL", Width: 9},
			{Title: "OPEN", Width: 6},
			{Title: "WIDTH", Width: 6},
			{Title: "BOUNDS", Width: 22},
			{Title: "STORED", Width: 26},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(r.theme.Border).
		BorderBottom(true).
		Foreground(r.theme.Accent).
		Bold(true)
	s.Cell = s.Cell.Foreground(r.theme.Text)
	// Nothing is selectable in printed output.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	header := r.theme.Subtle.Render(fmt.Sprintf("%s store", backend))
	if path != "" {
		header += " " + r.theme.Highlight.Render(path)
	}
	return header + "\n" + t.View()
}

func storedSummary(stored map[string]string) string {
	if len(stored) == 0 {
		return "-"
	}
	fields := make([]string, 0, len(stored))
	for k, v := range stored {
		fields = append(fields, k+"="+v)
	}
	sort.Strings(fields)
	return strings.Join(fields, " ")
}

// Path is a labelled filesystem location.
type Path struct {
	Label string
	Value string
}

// Paths renders aligned label/path pairs.
func (r *Renderer) Paths(paths []Path) string {
	width := 0
	for _, p := range paths {
		width = max(width, len(p.Label))
	}
	lines := make([]string, 0, len(paths))
	for _, p := range paths {
		value := p.Value
		if value == "" {
			value = "-"
		}
		lines = append(lines, r.theme.Subtle.Render(fmt.Sprintf("%-*s", width, p.Label))+"  "+r.theme.Highlight.Render(value))
	}
	return strings.Join(lines, "\n")
}
