package shell

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/input"
	"github.com/bnema/workbench/internal/ui/styles"
)

// handleKey routes a key press. The router sees it first so the keyboard
// controller can claim tab navigation; a text-entry target suppresses it
// there and the key falls through to the focused widget.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.status = ""

	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	if m.router.DispatchKey(m.ctx, input.FromKeyMsg(msg, m.textEntry())) {
		m.showHelp = false
		return nil
	}

	switch {
	case m.nav.focused():
		return m.handleFilterKey(msg)
	case m.noteFocused():
		return m.handleNoteKey(msg)
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Leave) {
			m.showHelp = false
		}
		return nil
	}

	return m.handleShortcut(msg)
}

func (m *Model) handleShortcut(msg tea.KeyMsg) tea.Cmd {
	active, hasActive := m.tabs.Snapshot().Active()

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.ToggleLeading):
		m.leading.Toggle(m.ctx)
	case key.Matches(msg, m.keys.ToggleTrailing):
		m.trailing.Toggle(m.ctx)
	case key.Matches(msg, m.keys.NewNote):
		desc := m.notes.New()
		m.tabs.Open(m.ctx, desc)
		return m.notes.Focus(desc.ID)
	case key.Matches(msg, m.keys.TogglePin):
		if hasActive {
			m.tabs.TogglePin(m.ctx, active.ID)
		}
	case key.Matches(msg, m.keys.NextProject):
		return m.switchProject(1)
	case key.Matches(msg, m.keys.Save):
		if hasActive && m.notes.Save(m.ctx, active.ID) {
			m.status = "saved " + active.Title
		}
	case key.Matches(msg, m.keys.Filter):
		if !m.leading.State().IsOpen {
			m.leading.SetOpen(m.ctx, true)
		}
		return m.nav.focus()
	case key.Matches(msg, m.keys.Open):
		if hasActive && active.Kind == entity.KindNote {
			return m.notes.Focus(active.ID)
		}
		if target, ok := m.nav.selected(); ok {
			m.openTarget(target)
		}
	case key.Matches(msg, m.keys.Up):
		m.nav.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.nav.move(1)
	case key.Matches(msg, m.keys.PageUp):
		if hasActive {
			m.documents.Scroll(active.ID, -max(1, m.geo.BodyHeight-1))
		}
	case key.Matches(msg, m.keys.PageDown):
		if hasActive {
			m.documents.Scroll(active.ID, max(1, m.geo.BodyHeight-1))
		}
	}
	return nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.nav.blur()
	case tea.KeyEnter:
		m.nav.blur()
		if target, ok := m.nav.selected(); ok {
			m.openTarget(target)
		}
	case tea.KeyUp:
		m.nav.move(-1)
	case tea.KeyDown:
		m.nav.move(1)
	default:
		return m.nav.update(msg)
	}
	return nil
}

func (m *Model) handleNoteKey(msg tea.KeyMsg) tea.Cmd {
	id, _ := m.notes.Focused()
	switch {
	case msg.Type == tea.KeyEsc:
		m.notes.Blur()
	case key.Matches(msg, m.keys.Save):
		if m.notes.Save(m.ctx, id) {
			if tab, ok := m.tabs.Snapshot().Find(id); ok {
				m.status = "saved " + tab.Title
			}
		}
	default:
		return m.notes.Update(m.ctx, msg)
	}
	return nil
}

// handleMouse converts mouse messages into pointer events. A captured
// pointer belongs to the resize gesture holding it; everything else is
// hit-tested against the last drawn frame.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionPress && tea.MouseEvent(msg).IsWheel() {
		m.handleWheel(msg)
		return nil
	}

	ev, ok := input.FromMouseMsg(msg)
	if !ok {
		return nil
	}
	if m.router.DispatchPointer(m.ctx, ev) {
		return nil
	}

	switch ev.Kind {
	case input.PointerDown:
		return m.pointerDown(ev)
	case input.PointerMove:
		m.pointerMove(ev)
	case input.PointerUp, input.PointerCancel:
		m.pointerUp(ev)
	}
	return nil
}

func (m *Model) handleWheel(msg tea.MouseMsg) {
	delta := 3
	if msg.Button == tea.MouseButtonWheelUp {
		delta = -3
	}
	switch m.geo.regionAt(msg.X, msg.Y) {
	case regionLeadingPanel:
		m.nav.move(delta)
	case regionContent:
		if active, ok := m.tabs.Snapshot().Active(); ok {
			m.documents.Scroll(active.ID, delta)
		}
	}
}

func (m *Model) tabAt(ev input.PointerEvent) (entity.TabID, bool) {
	if ev.Y != 0 {
		return "", false
	}
	return styles.HitTest(m.regions, ev.X)
}

func (m *Model) pointerDown(ev input.PointerEvent) tea.Cmd {
	if id, ok := m.tabAt(ev); ok {
		m.tabs.Activate(m.ctx, id)
		m.drag.Start(m.ctx, id)
		return nil
	}

	switch m.geo.regionAt(ev.X, ev.Y) {
	case regionLeadingHandle:
		m.resizeLeading.PointerDown(m.ctx)
	case regionTrailingHandle:
		m.resizeTrailing.PointerDown(m.ctx)
	case regionLeadingStrip:
		m.leading.SetOpen(m.ctx, true)
	case regionTrailingStrip:
		m.trailing.SetOpen(m.ctx, true)
	case regionLeadingPanel:
		return m.clickNavigator(ev.Y - m.geo.BodyTop)
	case regionContent:
		if active, ok := m.tabs.Snapshot().Active(); ok && active.Kind == entity.KindNote {
			return m.notes.Focus(active.ID)
		}
		m.nav.blur()
		m.notes.Blur()
	}
	return nil
}

func (m *Model) clickNavigator(row int) tea.Cmd {
	switch {
	case row == navigatorHeaderRows-1:
		m.notes.Blur()
		return m.nav.focus()
	case row >= navigatorHeaderRows:
		if m.nav.selectRow(row - navigatorHeaderRows) {
			if target, ok := m.nav.selected(); ok {
				m.openTarget(target)
			}
		}
	}
	return nil
}

func (m *Model) pointerMove(ev input.PointerEvent) {
	if !m.drag.Dragging() {
		return
	}
	id, _ := m.tabAt(ev)
	m.drag.Over(id)
}

func (m *Model) pointerUp(ev input.PointerEvent) {
	if !m.drag.Dragging() {
		return
	}
	if id, ok := m.tabAt(ev); ok && ev.Kind == input.PointerUp {
		m.drag.Drop(m.ctx, id)
		return
	}
	logging.FromContext(m.ctx).Debug().Str("tab_id", string(m.drag.Source())).Msg("tab drag cancelled")
	m.drag.Cancel()
}
