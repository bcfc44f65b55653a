package content

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/styles"
)

// NoteIDPrefix namespaces scratch note tab ids.
const NoteIDPrefix = "note:"

// Notes owns the scratch note editors. It is the dirty source for note
// tabs: every edit and save reports buffer != saved to the sink.
// Notes live in memory only; saving marks the current buffer as the
// reference point.
type Notes struct {
	theme   *styles.Theme
	sink    port.DirtySink
	notes   map[entity.TabID]*note
	focused entity.TabID
	created int
}

type note struct {
	area  textarea.Model
	saved string
	dirty bool
}

// NewNotes creates the note store reporting dirty state to sink.
func NewNotes(theme *styles.Theme, sink port.DirtySink) *Notes {
	return &Notes{
		theme: theme,
		sink:  sink,
		notes: make(map[entity.TabID]*note),
	}
}

// New creates an empty note and returns the descriptor of its tab.
func (n *Notes) New() entity.TabDescriptor {
	n.created++
	id := entity.TabID(NoteIDPrefix + uuid.NewString())
	n.notes[id] = n.newNote()
	return entity.TabDescriptor{
		ID:    id,
		Kind:  entity.KindNote,
		Title: fmt.Sprintf("scratch %d", n.created),
		Group: entity.GroupPrimary,
	}
}

func (n *Notes) newNote() *note {
	area := textarea.New()
	area.Placeholder = "Type a note. ctrl+s saves, esc leaves the editor."
	area.ShowLineNumbers = false
	area.CharLimit = 0
	area.MaxHeight = 0
	area.Prompt = ""
	return &note{area: area}
}

// Render implements port.ContentRenderer.
func (n *Notes) Render(_ context.Context, req port.RenderRequest) string {
	nt, ok := n.notes[req.Tab.ID]
	if !ok {
		nt = n.newNote()
		n.notes[req.Tab.ID] = nt
	}
	nt.area.SetWidth(req.Width)
	nt.area.SetHeight(req.Height)
	return nt.area.View()
}

// Has reports whether id is a known note.
func (n *Notes) Has(id entity.TabID) bool {
	_, ok := n.notes[id]
	return ok
}

// Focus moves keyboard input into a note editor.
func (n *Notes) Focus(id entity.TabID) tea.Cmd {
	nt, ok := n.notes[id]
	if !ok {
		return nil
	}
	n.Blur()
	n.focused = id
	return nt.area.Focus()
}

// Blur leaves the focused editor, if any.
func (n *Notes) Blur() {
	if nt, ok := n.notes[n.focused]; ok {
		nt.area.Blur()
	}
	n.focused = ""
}

// Focused returns the note holding keyboard input.
func (n *Notes) Focused() (entity.TabID, bool) {
	return n.focused, n.focused != ""
}

// Update forwards a message to the focused editor and reports any change
// of dirty state.
func (n *Notes) Update(ctx context.Context, msg tea.Msg) tea.Cmd {
	nt, ok := n.notes[n.focused]
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	nt.area, cmd = nt.area.Update(msg)
	n.report(ctx, n.focused, nt)
	return cmd
}

// Save marks the current buffer of a note as saved.
func (n *Notes) Save(ctx context.Context, id entity.TabID) bool {
	nt, ok := n.notes[id]
	if !ok {
		return false
	}
	nt.saved = nt.area.Value()
	n.report(ctx, id, nt)
	logging.FromContext(logging.WithTabID(ctx, string(id))).Debug().
		Int("length", len(nt.saved)).
		Msg("note saved")
	return true
}

// Value returns the current buffer of a note.
func (n *Notes) Value(id entity.TabID) string {
	if nt, ok := n.notes[id]; ok {
		return nt.area.Value()
	}
	return ""
}

// SetValue replaces the buffer of a note, as typing would.
func (n *Notes) SetValue(ctx context.Context, id entity.TabID, value string) {
	nt, ok := n.notes[id]
	if !ok {
		return
	}
	nt.area.SetValue(value)
	n.report(ctx, id, nt)
}

// Forget drops a note whose tab was closed.
func (n *Notes) Forget(id entity.TabID) {
	if n.focused == id {
		n.Blur()
	}
	delete(n.notes, id)
}

// Retain drops every note whose tab is gone.
func (n *Notes) Retain(keep entity.TabList) {
	for id := range n.notes {
		if keep.IndexOf(id) < 0 {
			n.Forget(id)
		}
	}
}

func (n *Notes) report(ctx context.Context, id entity.TabID, nt *note) {
	dirty := nt.area.Value() != nt.saved
	if dirty == nt.dirty {
		return
	}
	nt.dirty = dirty
	if n.sink != nil {
		n.sink.SetDirty(ctx, id, dirty)
	}
}
