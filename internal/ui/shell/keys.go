package shell

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the shell-level bindings. Tab navigation (tab, shift+tab,
// 1-9, ctrl+w) belongs to the keyboard controller and is listed here for
// help only.
type KeyMap struct {
	NextTab        key.Binding
	PrevTab        key.Binding
	JumpTab        key.Binding
	CloseTab       key.Binding
	ToggleLeading  key.Binding
	ToggleTrailing key.Binding
	NewNote        key.Binding
	TogglePin      key.Binding
	NextProject    key.Binding
	Save           key.Binding
	Filter         key.Binding
	Open           key.Binding
	Up             key.Binding
	Down           key.Binding
	PageUp         key.Binding
	PageDown       key.Binding
	Leave          key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Filter, k.Open, k.NextTab, k.CloseTab, k.NewNote, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.JumpTab, k.CloseTab, k.TogglePin},
		{k.Filter, k.Up, k.Down, k.Open, k.Leave},
		{k.ToggleLeading, k.ToggleTrailing, k.PageUp, k.PageDown},
		{k.NewNote, k.Save, k.NextProject, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default shell keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:        key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-tab", "prev tab")),
		JumpTab:        key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump to tab")),
		CloseTab:       key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "close tab")),
		ToggleLeading:  key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "files panel")),
		ToggleTrailing: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "inspector")),
		NewNote:        key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new note")),
		TogglePin:      key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "pin tab")),
		NextProject:    key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "next project")),
		Save:           key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save note")),
		Filter:         key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Open:           key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open / edit")),
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:         key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown:       key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Leave:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave input")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:           key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}
