// Package project lists the documents and artifacts of a project directory.
package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"github.com/gabriel-vasile/mimetype"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

// FSSource walks a project root on the local filesystem.
type FSSource struct {
	ignore     []string
	maxTargets int
}

var _ port.ProjectSource = (*FSSource)(nil)

// NewFSSource creates a source. Invalid ignore patterns are dropped.
func NewFSSource(ctx context.Context, ignore []string, maxTargets int) *FSSource {
	log := logging.FromContext(ctx)

	valid := make([]string, 0, len(ignore))
	for _, p := range ignore {
		if !doublestar.ValidatePattern(p) {
			log.Warn().Str("pattern", p).Msg("invalid ignore pattern, skipping")
			continue
		}
		valid = append(valid, p)
	}
	return &FSSource{ignore: valid, maxTargets: maxTargets}
}

// Targets lists regular files under the project root, sorted by path.
// Text files become documents, everything else artifacts.
func (s *FSSource) Targets(ctx context.Context, project entity.Project) ([]entity.Target, error) {
	log := logging.FromContext(logging.WithProject(ctx, string(project.ID)))

	root, err := filepath.Abs(project.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat project root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", root)
	}

	var (
		mu    sync.Mutex
		paths []string
	)

	conf := fastwalk.Config{Follow: false}
	err = fastwalk.Walk(&conf, root, func(p string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err != nil {
			// Unreadable entries are skipped, not fatal
			return nil
		}
		if p == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if s.ignored(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || s.ignored(rel, false) {
			return nil
		}

		mu.Lock()
		paths = append(paths, rel)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk project %s: %w", root, err)
	}

	// Sort before truncating: the walk is concurrent.
	sort.Strings(paths)
	if s.maxTargets > 0 && len(paths) > s.maxTargets {
		log.Warn().
			Int("max_targets", s.maxTargets).
			Int("found", len(paths)).
			Msg("project listing truncated")
		paths = paths[:s.maxTargets]
	}

	targets := make([]entity.Target, 0, len(paths))
	for _, rel := range paths {
		kind, mime := detectKind(filepath.Join(root, filepath.FromSlash(rel)))
		targets = append(targets, entity.NewTarget(project.ID, rel, kind, mime))
	}

	log.Debug().Int("targets", len(targets)).Str("root", root).Msg("project listed")
	return targets, nil
}

// FromDir builds a project for a directory. The id is the absolute path so
// two invocations on the same directory agree.
func FromDir(dir string) (entity.Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return entity.Project{}, fmt.Errorf("resolve project dir %s: %w", dir, err)
	}
	return entity.Project{
		ID:   entity.ProjectID(abs),
		Name: filepath.Base(abs),
		Root: abs,
	}, nil
}

func (s *FSSource) ignored(rel string, dir bool) bool {
	for _, pattern := range s.ignore {
		if doublestar.MatchUnvalidated(pattern, rel) {
			return true
		}
		if dir && doublestar.MatchUnvalidated(pattern, rel+"/") {
			return true
		}
	}
	return false
}

// detectKind sniffs the file header. Anything in the text/plain family
// (source, markdown, json, ...) is a document.
func detectKind(path string) (entity.TabKind, string) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return entity.KindArtifact, ""
	}
	for m := mt; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return entity.KindDocument, mt.String()
		}
	}
	return entity.KindArtifact, mt.String()
}
