package entity

// PanelSide identifies which edge of the viewport a panel is anchored to.
type PanelSide string

const (
	SideLeading  PanelSide = "leading"
	SideTrailing PanelSide = "trailing"
)

// Valid reports whether the side is one of the known sides.
func (s PanelSide) Valid() bool {
	return s == SideLeading || s == SideTrailing
}

// PanelBounds holds the width constraints of a panel.
type PanelBounds struct {
	Min     int
	Max     int
	Default int
}

// Clamp constrains a raw width to [Min, Max].
func (b PanelBounds) Clamp(width int) int {
	if width < b.Min {
		return b.Min
	}
	if width > b.Max {
		return b.Max
	}
	return width
}

// DefaultWidth returns the default width, clamped in case the bounds moved.
func (b PanelBounds) DefaultWidth() int {
	return b.Clamp(b.Default)
}

// PanelState is the open flag and width of one side panel.
// Width is preserved while the panel is collapsed.
type PanelState struct {
	Side   PanelSide
	IsOpen bool
	Width  int
}

// NewPanelState creates a panel with default width.
func NewPanelState(side PanelSide, bounds PanelBounds, open bool) PanelState {
	return PanelState{
		Side:   side,
		IsOpen: open,
		Width:  bounds.DefaultWidth(),
	}
}

// WithWidth returns the state with a clamped width.
func (p PanelState) WithWidth(width int, bounds PanelBounds) PanelState {
	p.Width = bounds.Clamp(width)
	return p
}

// WithOpen returns the state with the open flag set.
func (p PanelState) WithOpen(open bool) PanelState {
	p.IsOpen = open
	return p
}

// Toggled flips the open flag. Width is untouched.
func (p PanelState) Toggled() PanelState {
	p.IsOpen = !p.IsOpen
	return p
}

// Viewport is the horizontal extent panels are measured against.
type Viewport struct {
	Left  int
	Width int
}

// Right returns the trailing edge of the viewport.
func (v Viewport) Right() int {
	return v.Left + v.Width
}

// RawWidthAt computes the unclamped panel width for a pointer position.
// A leading panel grows from the viewport's leading edge to the pointer,
// a trailing panel from the pointer to the trailing edge.
func (s PanelSide) RawWidthAt(pointerX int, vp Viewport) int {
	if s == SideTrailing {
		return vp.Right() - pointerX
	}
	return pointerX - vp.Left
}
