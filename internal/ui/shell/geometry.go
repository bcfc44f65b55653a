package shell

import "github.com/bnema/workbench/internal/domain/entity"

const (
	tabBarRows    = 1
	statusRows    = 1
	minContentCol = 20
)

// panelGeometry is where one side panel sits on screen.
//
// An open leading panel occupies [0, Width) with its handle at Edge == Width.
// An open trailing panel occupies [Edge+1, total) with its handle at Edge.
// A collapsed panel is a one-cell strip at Edge.
type panelGeometry struct {
	Open  bool
	Width int // Shown width, may be squeezed below the stored width
	Edge  int // Handle or strip column
}

// Columns returns the cells the panel and its handle take.
func (p panelGeometry) Columns() int {
	if !p.Open {
		return 1
	}
	return p.Width + 1
}

type geometry struct {
	Width        int
	Height       int
	BodyTop      int
	BodyHeight   int
	Leading      panelGeometry
	Trailing     panelGeometry
	ContentX     int
	ContentWidth int
}

// computeGeometry lays out the screen for a terminal of w×h cells.
// When both panels do not fit next to minContentCol columns of content the
// shown widths shrink, trailing first; the stored widths are untouched.
func computeGeometry(w, h int, leading, trailing entity.PanelState) geometry {
	g := geometry{
		Width:      w,
		Height:     h,
		BodyTop:    tabBarRows,
		BodyHeight: max(0, h-tabBarRows-statusRows),
	}

	lw, tw := 0, 0
	if leading.IsOpen {
		lw = leading.Width
	}
	if trailing.IsOpen {
		tw = trailing.Width
	}

	cols := func() int {
		c := 2
		if leading.IsOpen {
			c += lw
		}
		if trailing.IsOpen {
			c += tw
		}
		return c
	}
	if excess := cols() + minContentCol - w; excess > 0 && trailing.IsOpen {
		tw = max(1, tw-excess)
	}
	if excess := cols() + minContentCol - w; excess > 0 && leading.IsOpen {
		lw = max(1, lw-excess)
	}

	g.Leading = panelGeometry{Open: leading.IsOpen, Width: lw, Edge: 0}
	if leading.IsOpen {
		g.Leading.Edge = lw
	}

	g.Trailing = panelGeometry{Open: trailing.IsOpen, Width: tw, Edge: w - 1}
	if trailing.IsOpen {
		g.Trailing.Edge = w - tw - 1
	}

	g.ContentX = g.Leading.Columns()
	g.ContentWidth = max(0, w-g.Leading.Columns()-g.Trailing.Columns())
	return g
}

// resizeViewport is what pointer positions are measured against during a
// panel resize. The trailing edge is the last column so that a handle at
// column x yields the width it visually borders.
func (g geometry) resizeViewport() entity.Viewport {
	return entity.Viewport{Left: 0, Width: max(0, g.Width-1)}
}

// inBody reports whether row y is between the tab bar and status row.
func (g geometry) inBody(y int) bool {
	return y >= g.BodyTop && y < g.BodyTop+g.BodyHeight
}

// region names what sits under a body cell.
type region int

const (
	regionNone region = iota
	regionLeadingPanel
	regionLeadingHandle
	regionLeadingStrip
	regionContent
	regionTrailingHandle
	regionTrailingStrip
	regionTrailingPanel
)

func (g geometry) regionAt(x, y int) region {
	if !g.inBody(y) || x < 0 || x >= g.Width {
		return regionNone
	}
	switch {
	case x == g.Leading.Edge && g.Leading.Open:
		return regionLeadingHandle
	case x == g.Leading.Edge:
		return regionLeadingStrip
	case g.Leading.Open && x < g.Leading.Edge:
		return regionLeadingPanel
	case x == g.Trailing.Edge && g.Trailing.Open:
		return regionTrailingHandle
	case x == g.Trailing.Edge:
		return regionTrailingStrip
	case g.Trailing.Open && x > g.Trailing.Edge:
		return regionTrailingPanel
	}
	return regionContent
}
