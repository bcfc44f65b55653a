// Package input turns host input events into workspace operations.
//
// Events are host-neutral values: the terminal adapter in tea.go builds
// them from Bubble Tea messages, tests build them directly.
package input

import "strings"

// Modifier represents keyboard modifier flags.
type Modifier uint

const (
	// ModNone indicates no modifier is pressed.
	ModNone Modifier = 0
	// ModShift indicates the Shift key is pressed.
	ModShift Modifier = 1 << iota
	// ModCtrl indicates the Control key is pressed.
	ModCtrl
	// ModAlt indicates the Alt key is pressed.
	ModAlt
	// ModMeta indicates the Command/Super key is pressed.
	ModMeta
)

// KeyEvent is a single key press.
type KeyEvent struct {
	// Key is the lower-case key name: "w", "1", "tab", "enter", "esc".
	Key       string
	Modifiers Modifier
	// TextEntry is set when the focused element accepts typed text.
	TextEntry bool

	prevented bool
}

// NewKeyEvent creates a key event. The key name is lower-cased.
func NewKeyEvent(key string, mods Modifier) *KeyEvent {
	if len(key) > 1 {
		key = strings.ToLower(key)
	}
	return &KeyEvent{Key: key, Modifiers: mods}
}

// Has reports whether all given modifiers are pressed.
func (e *KeyEvent) Has(mods Modifier) bool {
	return e.Modifiers&mods == mods
}

// Command reports whether Ctrl or Cmd is pressed.
func (e *KeyEvent) Command() bool {
	return e.Modifiers&(ModCtrl|ModMeta) != 0
}

// PreventDefault marks the event as handled.
func (e *KeyEvent) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether a listener handled the event.
func (e *KeyEvent) DefaultPrevented() bool {
	return e.prevented
}

// PointerKind is the phase of a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer sample in cell coordinates.
type PointerEvent struct {
	Kind PointerKind
	X    int
	Y    int
}
