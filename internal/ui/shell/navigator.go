package shell

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/ui/styles"
)

// navigatorHeaderRows is the title and filter rows above the list.
const navigatorHeaderRows = 2

// targetSource adapts targets to fuzzy.Source.
type targetSource []entity.Target

func (s targetSource) String(i int) string { return s[i].Path }
func (s targetSource) Len() int            { return len(s) }

type navItem struct {
	index   int   // Into targets
	matched []int // Byte offsets of matched characters in Path
}

// navigator is the leading panel: a fuzzy-filtered list of project targets.
type navigator struct {
	filter  textinput.Model
	targets []entity.Target
	items   []navItem
	cursor  int
	offset  int
	loading bool
	err     error
}

func newNavigator(theme *styles.Theme) navigator {
	return navigator{filter: styles.NewFilterInput(theme), loading: true}
}

// setTargets replaces the list and re-applies the current filter.
func (n *navigator) setTargets(targets []entity.Target, err error) {
	n.targets = targets
	n.err = err
	n.loading = false
	n.refilter()
}

// reset clears everything for a project switch.
func (n *navigator) reset() {
	n.targets = nil
	n.items = nil
	n.err = nil
	n.loading = true
	n.filter.SetValue("")
	n.filter.Blur()
	n.cursor, n.offset = 0, 0
}

func (n *navigator) focus() tea.Cmd {
	return n.filter.Focus()
}

func (n *navigator) blur() {
	n.filter.Blur()
}

func (n *navigator) focused() bool {
	return n.filter.Focused()
}

// update forwards a key to the filter input and refilters on change.
func (n *navigator) update(msg tea.Msg) tea.Cmd {
	before := n.filter.Value()
	var cmd tea.Cmd
	n.filter, cmd = n.filter.Update(msg)
	if n.filter.Value() != before {
		n.refilter()
	}
	return cmd
}

func (n *navigator) refilter() {
	pattern := strings.TrimSpace(n.filter.Value())
	n.items = n.items[:0]
	if pattern == "" {
		for i := range n.targets {
			n.items = append(n.items, navItem{index: i})
		}
	} else {
		for _, m := range fuzzy.FindFrom(pattern, targetSource(n.targets)) {
			n.items = append(n.items, navItem{index: m.Index, matched: m.MatchedIndexes})
		}
	}
	n.cursor, n.offset = 0, 0
}

func (n *navigator) move(delta int) {
	if len(n.items) == 0 {
		return
	}
	n.cursor = min(max(n.cursor+delta, 0), len(n.items)-1)
}

// selectRow points the cursor at a visible list row.
func (n *navigator) selectRow(row int) bool {
	i := n.offset + row
	if row < 0 || i >= len(n.items) {
		return false
	}
	n.cursor = i
	return true
}

func (n *navigator) selected() (entity.Target, bool) {
	if n.cursor < 0 || n.cursor >= len(n.items) {
		return entity.Target{}, false
	}
	return n.targets[n.items[n.cursor].index], true
}

// scrollIntoView keeps the cursor inside a list of rows lines.
func (n *navigator) scrollIntoView(rows int) {
	if rows <= 0 {
		return
	}
	if n.cursor < n.offset {
		n.offset = n.cursor
	}
	if n.cursor >= n.offset+rows {
		n.offset = n.cursor - rows + 1
	}
}

func (n *navigator) view(theme *styles.Theme, width, height int, activeID entity.TabID) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, height)

	title := "FILES"
	if !n.loading && n.err == nil {
		title = "FILES " + theme.Subtle.Render(strconv.Itoa(len(n.items))+"/"+strconv.Itoa(len(n.targets)))
	}
	rows = append(rows, theme.PanelTitle.Render(title))

	n.filter.Width = max(1, width-lipgloss.Width(n.filter.Prompt)-1)
	rows = append(rows, n.filter.View())

	listRows := height - navigatorHeaderRows
	n.scrollIntoView(listRows)

	switch {
	case n.loading:
		rows = append(rows, theme.Subtle.Render("loading…"))
	case n.err != nil:
		rows = append(rows, theme.WarningStyle.Render(ansi.Truncate(n.err.Error(), width, "…")))
	case len(n.items) == 0:
		rows = append(rows, theme.Subtle.Render("no matches"))
	default:
		end := min(len(n.items), n.offset+listRows)
		for i := n.offset; i < end; i++ {
			rows = append(rows, n.renderItem(theme, i, width, activeID))
		}
	}

	for len(rows) < height {
		rows = append(rows, "")
	}
	return lipgloss.NewStyle().Width(width).MaxWidth(width).MaxHeight(height).
		Render(strings.Join(rows[:height], "\n"))
}

func (n *navigator) renderItem(theme *styles.Theme, i, width int, activeID entity.TabID) string {
	item := n.items[i]
	target := n.targets[item.index]

	marker := " "
	if target.ID == activeID {
		marker = "▸"
	}
	if target.Kind == entity.KindArtifact {
		marker += "◇"
	} else {
		marker += " "
	}

	base := theme.ListItem
	if i == n.cursor {
		base = theme.ListItemSelected
	}

	var b strings.Builder
	matched := make(map[int]bool, len(item.matched))
	for _, idx := range item.matched {
		matched[idx] = true
	}
	for idx, r := range target.Path {
		s := string(r)
		if matched[idx] {
			b.WriteString(theme.ListMatch.Inherit(base).Render(s))
		} else {
			b.WriteString(base.Render(s))
		}
	}

	line := base.Render(marker) + b.String()
	return ansi.Truncate(line, width, "…")
}
