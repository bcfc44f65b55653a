package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/ui/styles"
)

// View implements tea.Model. It also records the tab hit regions of the
// frame it draws so mouse input is tested against what the user sees.
func (m *Model) View() string {
	g := m.geo
	if !m.mounted || g.Width <= 0 || g.Height <= 0 {
		return ""
	}

	tabs := m.tabs.Snapshot()
	bar, regions := m.tabBar.Render(tabs, g.Width, styles.DragState{
		Source: m.drag.Source(),
		Target: m.drag.Target(),
	})
	m.regions = regions

	rows := []string{bar}
	if g.BodyHeight > 0 {
		rows = append(rows, m.viewBody())
	}
	if g.Height > tabBarRows {
		rows = append(rows, m.viewStatus())
	}
	return strings.Join(rows, "\n")
}

func (m *Model) viewBody() string {
	g := m.geo
	h := g.BodyHeight
	active, hasActive := m.tabs.Snapshot().Active()
	parts := make([]string, 0, 5)

	if g.Leading.Open {
		parts = append(parts,
			m.nav.view(m.theme, g.Leading.Width, h, active.ID),
			m.handleColumn(h, m.resizeLeading.Active()),
		)
	} else {
		parts = append(parts, m.stripColumn(h, "›"))
	}

	parts = append(parts, m.viewContent(g.ContentWidth, h))

	if g.Trailing.Open {
		parts = append(parts,
			m.handleColumn(h, m.resizeTrailing.Active()),
			m.insp.view(m.theme, g.Trailing.Width, h, active, hasActive),
		)
	} else {
		parts = append(parts, m.stripColumn(h, "‹"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) viewContent(width, height int) string {
	if width <= 0 {
		return ""
	}
	box := lipgloss.NewStyle().Width(width).Height(height).MaxWidth(width).MaxHeight(height)

	if m.showHelp {
		full := m.help
		full.ShowAll = true
		full.Width = width
		view := full.View(m.keys)
		return box.Render(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, view))
	}

	req := port.RenderRequest{
		Width:   width,
		Height:  height,
		Focused: m.noteFocused(),
	}
	if project, ok := m.currentProject(); ok {
		req.Project = project
	}
	if active, ok := m.tabs.Snapshot().Active(); ok {
		req.Tab = active.Descriptor()
	}
	return box.Render(m.content.Render(m.ctx, req))
}

func (m *Model) handleColumn(height int, active bool) string {
	style := m.theme.Handle
	if active {
		style = m.theme.HandleActive
	}
	return style.Render(strings.TrimSuffix(strings.Repeat("│\n", height), "\n"))
}

func (m *Model) stripColumn(height int, glyph string) string {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = " "
	}
	if height > 0 {
		lines[0] = glyph
	}
	return m.theme.CollapsedStrip.Render(strings.Join(lines, "\n"))
}

func (m *Model) viewStatus() string {
	left := ""
	if project, ok := m.currentProject(); ok {
		left = project.Name
	}
	switch {
	case m.status != "":
		left += "  " + m.status
	case m.nav.focused():
		left += "  filtering, esc to leave"
	case m.noteFocused():
		left += "  editing note, esc to leave"
	}

	right := m.help.View(m.keys)
	gap := m.geo.Width - ansi.StringWidth(left) - lipgloss.Width(right) - 2
	line := " " + left
	if gap > 0 {
		line += strings.Repeat(" ", gap) + right
	}
	return m.theme.StatusBar.Width(m.geo.Width).MaxWidth(m.geo.Width).Render(ansi.Truncate(line, m.geo.Width, "…"))
}
