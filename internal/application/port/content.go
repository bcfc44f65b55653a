package port

import (
	"context"

	"github.com/bnema/workbench/internal/domain/entity"
)

// RenderRequest is everything the content renderer gets for one frame.
type RenderRequest struct {
	Tab     entity.TabDescriptor
	Project entity.Project
	Width   int
	Height  int
	Focused bool // Content currently owns keyboard input
}

// ContentRenderer produces the view for the active tab.
// The workspace never inspects the result; rendering failures are the
// renderer's business and must be expressed in the returned view.
type ContentRenderer interface {
	Render(ctx context.Context, req RenderRequest) string
}

// DirtySink receives unsaved-state notifications from content owners.
type DirtySink interface {
	SetDirty(ctx context.Context, id entity.TabID, dirty bool)
}
