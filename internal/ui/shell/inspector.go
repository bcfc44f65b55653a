package shell

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/ui/styles"
)

// inspector is the trailing panel: metadata of the active tab and, for
// markdown documents, its heading outline.
type inspector struct {
	outline port.OutlineProvider
	cacheID entity.TabID
	entries []port.OutlineEntry
}

// refresh recomputes the outline when the active tab changed.
func (i *inspector) refresh(ctx context.Context, project entity.Project, tab entity.Tab, ok bool) {
	if !ok {
		i.cacheID, i.entries = "", nil
		return
	}
	if tab.ID == i.cacheID {
		return
	}
	i.cacheID = tab.ID
	i.entries = nil
	if target, isTarget := tab.Payload.(entity.Target); isTarget && i.outline != nil {
		i.entries = i.outline.Outline(ctx, project, target)
	}
}

// invalidate forces the next refresh to reload.
func (i *inspector) invalidate() {
	i.cacheID = ""
}

func (i *inspector) view(theme *styles.Theme, width, height int, tab entity.Tab, ok bool) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := []string{theme.PanelTitle.Render("INSPECTOR")}

	if !ok {
		rows = append(rows, theme.Subtle.Render("no active tab"))
	} else {
		label := theme.Subtle.Width(8)
		field := func(k, v string) {
			rows = append(rows, ansi.Truncate(label.Render(k)+theme.Normal.Render(v), width, "…"))
		}
		field("title", tab.Title)
		field("kind", string(tab.Kind))
		field("group", string(tab.Group))
		field("pinned", yesNo(tab.Pinned))
		field("dirty", yesNo(tab.Dirty))
		if target, isTarget := tab.Payload.(entity.Target); isTarget {
			field("path", target.Path)
			field("type", target.MIME)
		}

		if len(i.entries) > 0 {
			rows = append(rows, "", theme.PanelTitle.Render("OUTLINE"))
			for _, e := range i.entries {
				indent := strings.Repeat("  ", max(0, e.Level-1))
				rows = append(rows, ansi.Truncate(theme.Normal.Render(indent+e.Text), width, "…"))
			}
		}
	}

	if len(rows) > height {
		rows = rows[:height]
	}
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Height(height).MaxHeight(height).
		Render(strings.Join(rows, "\n"))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
