package port

import (
	"context"

	"github.com/bnema/workbench/internal/domain/entity"
)

// ProjectSource lists the documents and artifacts of a project.
type ProjectSource interface {
	Targets(ctx context.Context, project entity.Project) ([]entity.Target, error)
}

// OutlineEntry is one heading of a document outline.
type OutlineEntry struct {
	Level int
	Text  string
}

// OutlineProvider extracts a heading outline from a target, if it has one.
type OutlineProvider interface {
	Outline(ctx context.Context, project entity.Project, target entity.Target) []OutlineEntry
}
