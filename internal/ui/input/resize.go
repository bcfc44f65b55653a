package input

import (
	"context"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

// PanelResizer applies clamped widths to one panel.
type PanelResizer interface {
	Side() entity.PanelSide
	SetWidth(ctx context.Context, width int) entity.PanelState
}

// ResizeController drives a panel width from a captured pointer gesture.
// Every move is applied immediately; the gesture ends on pointer up,
// cancel or lost capture, keeping the last applied width.
type ResizeController struct {
	router   *Router
	panel    PanelResizer
	viewport func() entity.Viewport
	active   bool
}

var _ PointerCapturer = (*ResizeController)(nil)

// NewResizeController creates a controller. viewport is read on every move
// so window resizes during a drag are honoured.
func NewResizeController(router *Router, panel PanelResizer, viewport func() entity.Viewport) *ResizeController {
	return &ResizeController{router: router, panel: panel, viewport: viewport}
}

// PointerDown starts the gesture and captures the pointer.
func (c *ResizeController) PointerDown(ctx context.Context) {
	if c.active {
		return
	}
	c.router.SetPointerCapture(ctx, c)
	c.active = true
	logging.FromContext(logging.WithPanelSide(ctx, string(c.panel.Side()))).
		Debug().Msg("panel resize started")
}

// Active reports whether a gesture is in progress.
func (c *ResizeController) Active() bool {
	return c.active
}

// HandlePointer implements PointerCapturer.
func (c *ResizeController) HandlePointer(ctx context.Context, ev PointerEvent) {
	if !c.active {
		return
	}
	switch ev.Kind {
	case PointerMove:
		raw := c.panel.Side().RawWidthAt(ev.X, c.viewport())
		c.panel.SetWidth(ctx, raw)
	case PointerUp, PointerCancel:
		c.end(ctx)
	}
}

// LostPointerCapture implements PointerCapturer.
func (c *ResizeController) LostPointerCapture(ctx context.Context) {
	c.end(ctx)
}

func (c *ResizeController) end(ctx context.Context) {
	if !c.active {
		return
	}
	c.active = false
	c.router.ReleasePointerCapture(c)
	logging.FromContext(logging.WithPanelSide(ctx, string(c.panel.Side()))).
		Debug().Msg("panel resize ended")
}
