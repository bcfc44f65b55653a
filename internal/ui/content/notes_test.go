package content_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/ui/content"
)

func typeRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNotes_NewAssignsDistinctIDs(t *testing.T) {
	notes := content.NewNotes(testTheme(), nil)

	a, b := notes.New(), notes.New()

	assert.NotEqual(t, a.ID, b.ID)
	assert.True(t, strings.HasPrefix(string(a.ID), content.NoteIDPrefix))
	assert.Equal(t, entity.KindNote, a.Kind)
	assert.Equal(t, "scratch 1", a.Title)
	assert.Equal(t, "scratch 2", b.Title)
	assert.True(t, notes.Has(a.ID))
}

func TestNotes_DirtyFollowsBufferAgainstSaved(t *testing.T) {
	ctx := testContext()
	sink := &recordingSink{}
	notes := content.NewNotes(testTheme(), sink)
	desc := notes.New()

	notes.Focus(desc.ID)
	notes.Update(ctx, typeRunes("hi"))
	assert.Equal(t, "hi", notes.Value(desc.ID))
	require.Equal(t, []dirtyCall{{ID: desc.ID, Dirty: true}}, sink.calls)

	// Further edits while dirty do not repeat the report.
	notes.Update(ctx, typeRunes("!"))
	assert.Len(t, sink.calls, 1)

	require.True(t, notes.Save(ctx, desc.ID))
	assert.Equal(t, dirtyCall{ID: desc.ID, Dirty: false}, sink.calls[len(sink.calls)-1])

	notes.SetValue(ctx, desc.ID, "hi! more")
	notes.SetValue(ctx, desc.ID, "hi!")
	assert.Equal(t, []dirtyCall{
		{ID: desc.ID, Dirty: true},
		{ID: desc.ID, Dirty: false},
		{ID: desc.ID, Dirty: true},
		{ID: desc.ID, Dirty: false},
	}, sink.calls)
}

func TestNotes_UpdateWithoutFocusIsIgnored(t *testing.T) {
	ctx := testContext()
	sink := &recordingSink{}
	notes := content.NewNotes(testTheme(), sink)
	desc := notes.New()

	notes.Update(ctx, typeRunes("x"))

	assert.Empty(t, notes.Value(desc.ID))
	assert.Empty(t, sink.calls)
	_, focused := notes.Focused()
	assert.False(t, focused)
}

func TestNotes_FocusBlurAndForget(t *testing.T) {
	notes := content.NewNotes(testTheme(), nil)
	a, b := notes.New(), notes.New()

	notes.Focus(a.ID)
	notes.Focus(b.ID)
	id, ok := notes.Focused()
	require.True(t, ok)
	assert.Equal(t, b.ID, id)

	notes.Forget(b.ID)
	_, ok = notes.Focused()
	assert.False(t, ok)
	assert.False(t, notes.Has(b.ID))

	assert.Nil(t, notes.Focus("note:unknown"))
	assert.False(t, notes.Save(testContext(), "note:unknown"))

	notes.Retain(entity.NewTabList())
	assert.False(t, notes.Has(a.ID))
}

func TestNotes_RenderShowsBuffer(t *testing.T) {
	ctx := testContext()
	notes := content.NewNotes(testTheme(), nil)
	desc := notes.New()
	notes.SetValue(ctx, desc.ID, "remember the milk")

	out := ansi.Strip(notes.Render(ctx, request(entity.Project{}, desc, 40, 5)))

	assert.Contains(t, out, "remember the milk")
}
