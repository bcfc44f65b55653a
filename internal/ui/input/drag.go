package input

import (
	"context"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

// TabReorderer moves a tab onto another tab's position.
type TabReorderer interface {
	Reorder(ctx context.Context, sourceID, targetID entity.TabID)
}

// DragController tracks one in-flight tab drag.
type DragController struct {
	tabs   TabReorderer
	source entity.TabID
	over   entity.TabID
}

// NewDragController creates an idle controller.
func NewDragController(tabs TabReorderer) *DragController {
	return &DragController{tabs: tabs}
}

// Start records the dragged tab.
func (d *DragController) Start(ctx context.Context, id entity.TabID) {
	d.source = id
	d.over = ""
	logging.FromContext(ctx).Debug().Str("tab_id", string(id)).Msg("tab drag started")
}

// Over marks id as the candidate drop target. Reports whether the drop
// would be accepted, which is the case whenever a drag is in flight.
func (d *DragController) Over(id entity.TabID) bool {
	if d.source == "" {
		return false
	}
	d.over = id
	return true
}

// Drop reorders the source onto id and ends the drag. Dropping on the
// source itself is a no-op.
func (d *DragController) Drop(ctx context.Context, id entity.TabID) {
	source := d.source
	d.source, d.over = "", ""
	if source == "" {
		return
	}
	d.tabs.Reorder(ctx, source, id)
}

// Cancel ends the drag without reordering.
func (d *DragController) Cancel() {
	d.source, d.over = "", ""
}

// Dragging reports whether a drag is in flight.
func (d *DragController) Dragging() bool {
	return d.source != ""
}

// Source returns the dragged tab id.
func (d *DragController) Source() entity.TabID {
	return d.source
}

// Target returns the tab currently hovered as drop target.
func (d *DragController) Target() entity.TabID {
	return d.over
}
