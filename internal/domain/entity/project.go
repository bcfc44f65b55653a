package entity

import (
	"path"
	"strings"
)

// ProjectID uniquely identifies a project.
type ProjectID string

// Project is the externally-owned data a workspace is bound to.
// Switching project resets the tab collection.
type Project struct {
	ID   ProjectID
	Name string
	Root string // Directory the project's targets live in
}

// Target is something that can be opened as a tab: a document or an artifact.
type Target struct {
	ID    TabID
	Kind  TabKind
	Title string
	Path  string // Slash-separated, relative to the project root
	MIME  string
}

// NewTarget derives a target whose id is stable for the same project and
// path, so reopening lands on the existing tab.
func NewTarget(project ProjectID, relPath string, kind TabKind, mime string) Target {
	relPath = path.Clean(strings.ReplaceAll(relPath, "\\", "/"))
	return Target{
		ID:    TabID(string(project) + ":" + relPath),
		Kind:  kind,
		Title: path.Base(relPath),
		Path:  relPath,
		MIME:  mime,
	}
}

// Descriptor turns the target into a tab descriptor. The target itself is
// the payload handed to the content renderer.
func (t Target) Descriptor() TabDescriptor {
	return TabDescriptor{
		ID:      t.ID,
		Kind:    t.Kind,
		Title:   t.Title,
		Group:   GroupPrimary,
		Payload: t,
	}
}
