package styles

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/workbench/internal/domain/entity"
)

const (
	// DirtyMarker flags unsaved content.
	DirtyMarker = "●"
	// PinMarker flags a pinned tab.
	PinMarker = "^"

	defaultMaxTitleWidth = 24
	tabSeparator         = "│"
)

// TabRegion is the cell span [Start, End) a tab occupies in the bar.
type TabRegion struct {
	ID    entity.TabID
	Start int
	End   int
}

// Contains reports whether column x falls inside the region.
func (r TabRegion) Contains(x int) bool {
	return x >= r.Start && x < r.End
}

// HitTest returns the tab under column x.
func HitTest(regions []TabRegion, x int) (entity.TabID, bool) {
	for _, r := range regions {
		if r.Contains(x) {
			return r.ID, true
		}
	}
	return "", false
}

// DragState is the drag feedback shown by the tab bar.
type DragState struct {
	Source entity.TabID
	Target entity.TabID
}

// TabBar renders a TabList on one row and reports where each tab landed.
type TabBar struct {
	theme         *Theme
	MaxTitleWidth int
}

// NewTabBar creates a tab bar.
func NewTabBar(theme *Theme) *TabBar {
	return &TabBar{theme: theme, MaxTitleWidth: defaultMaxTitleWidth}
}

type tabSegment struct {
	tab    entity.Tab
	pos    int
	prefix string
	title  string
	width  int
}

// Render draws tabs into width cells. When the tabs do not fit, the window
// slides so the active tab stays visible.
func (b *TabBar) Render(tabs entity.TabList, width int, drag DragState) (string, []TabRegion) {
	if width <= 0 {
		return "", nil
	}

	segs := b.segments(tabs)
	start, end := visibleRange(segs, tabs.IndexOf(tabs.ActiveID()), width)

	var (
		row     strings.Builder
		regions []TabRegion
		x       int
	)
	for i := start; i < end; i++ {
		if i > start {
			row.WriteString(b.theme.Handle.Render(tabSeparator))
			x++
		}
		seg := segs[i]
		row.WriteString(b.renderSegment(seg, tabs.ActiveID(), drag))
		regions = append(regions, TabRegion{ID: seg.tab.ID, Start: x, End: x + seg.width})
		x += seg.width
	}

	return b.theme.TabBar.Width(width).MaxWidth(width).Render(row.String()), regions
}

func (b *TabBar) segments(tabs entity.TabList) []tabSegment {
	list := tabs.Tabs()
	segs := make([]tabSegment, len(list))
	for i, tab := range list {
		prefix := ""
		if i < 9 {
			prefix = strconv.Itoa(i+1) + " "
		}
		title := tab.Title
		if title == "" {
			title = string(tab.ID)
		}
		title = ansi.Truncate(title, b.MaxTitleWidth, "…")

		// " [^ ]N title[ ●] "
		w := 1 + ansi.StringWidth(prefix) + ansi.StringWidth(title) + 1
		if tab.Pinned {
			w += ansi.StringWidth(PinMarker) + 1
		}
		if tab.Dirty {
			w += 1 + ansi.StringWidth(DirtyMarker)
		}
		segs[i] = tabSegment{tab: tab, pos: i, prefix: prefix, title: title, width: w}
	}
	return segs
}

// visibleRange picks [start, end) so the active tab is shown and as many
// neighbours to its right as fit.
func visibleRange(segs []tabSegment, active, width int) (int, int) {
	if len(segs) == 0 {
		return 0, 0
	}
	if active < 0 {
		active = 0
	}

	span := func(from, to int) int {
		total := 0
		for i := from; i <= to; i++ {
			total += segs[i].width
		}
		return total + (to - from) // separators
	}

	start := 0
	for start < active && span(start, active) > width {
		start++
	}
	end := active + 1
	for end < len(segs) && span(start, end) <= width {
		end++
	}
	return start, end
}

func (b *TabBar) renderSegment(seg tabSegment, active entity.TabID, drag DragState) string {
	base := b.theme.InactiveTab
	switch seg.tab.ID {
	case drag.Target:
		if drag.Source != "" && drag.Target != drag.Source {
			base = b.theme.DropTargetTab
		}
	case drag.Source:
		base = b.theme.DraggedTab
	}
	if seg.tab.ID == active && (drag.Source == "" || seg.tab.ID != drag.Target) {
		base = b.theme.ActiveTab
	}

	var s strings.Builder
	s.WriteString(base.Render(" "))
	if seg.tab.Pinned {
		s.WriteString(b.theme.PinMarker.Inherit(base).Render(PinMarker))
		s.WriteString(base.Render(" "))
	}
	s.WriteString(base.Render(seg.prefix + seg.title))
	if seg.tab.Dirty {
		s.WriteString(base.Render(" "))
		s.WriteString(b.theme.DirtyMarker.Inherit(base).Render(DirtyMarker))
	}
	s.WriteString(base.Render(" "))
	return s.String()
}
