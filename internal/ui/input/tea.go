package input

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// FromKeyMsg converts a Bubble Tea key message. textEntry marks whether a
// text-accepting widget holds focus.
func FromKeyMsg(msg tea.KeyMsg, textEntry bool) *KeyEvent {
	s := msg.String()
	var mods Modifier

	for {
		switch {
		case strings.HasPrefix(s, "ctrl+") && len(s) > len("ctrl+"):
			mods |= ModCtrl
			s = s[len("ctrl+"):]
			continue
		case strings.HasPrefix(s, "alt+") && len(s) > len("alt+"):
			mods |= ModAlt
			s = s[len("alt+"):]
			continue
		case strings.HasPrefix(s, "shift+") && len(s) > len("shift+"):
			mods |= ModShift
			s = s[len("shift+"):]
			continue
		}
		break
	}

	// Terminals report Shift through the rune case only.
	if len(msg.Runes) == 1 && msg.Type == tea.KeyRunes {
		r := msg.Runes[0]
		if r >= 'A' && r <= 'Z' {
			mods |= ModShift
			s = strings.ToLower(s)
		}
	}

	ev := NewKeyEvent(s, mods)
	ev.TextEntry = textEntry
	return ev
}

// FromMouseMsg converts a left-button press, motion or release. Other
// buttons and wheel events report ok=false.
func FromMouseMsg(msg tea.MouseMsg) (PointerEvent, bool) {
	ev := PointerEvent{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		ev.Kind = PointerDown
	case tea.MouseActionMotion:
		ev.Kind = PointerMove
	case tea.MouseActionRelease:
		ev.Kind = PointerUp
	default:
		return ev, false
	}
	return ev, true
}
