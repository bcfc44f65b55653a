package content

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

// The parser configuration never changes; Parse keeps per-call state.
var (
	markdownOnce   sync.Once
	markdownParser goldmark.Markdown
)

func getMarkdownParser() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownParser = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdownParser
}

var markdownExts = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
	".mkd":      true,
}

// IsMarkdown reports whether a target path looks like markdown.
func IsMarkdown(p string) bool {
	return markdownExts[strings.ToLower(path.Ext(p))]
}

// MarkdownOutline extracts the heading outline of markdown documents.
type MarkdownOutline struct {
	maxSize int64
}

var _ port.OutlineProvider = (*MarkdownOutline)(nil)

// NewMarkdownOutline creates the outline provider.
func NewMarkdownOutline() *MarkdownOutline {
	return &MarkdownOutline{maxSize: DefaultMaxDocumentSize}
}

// Outline implements port.OutlineProvider. Non-markdown targets and
// unreadable files have no outline.
func (o *MarkdownOutline) Outline(ctx context.Context, project entity.Project, target entity.Target) []port.OutlineEntry {
	if target.Kind != entity.KindDocument || !IsMarkdown(target.Path) {
		return nil
	}

	f, err := os.Open(filepath.Join(project.Root, filepath.FromSlash(target.Path)))
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("path", target.Path).Msg("outline unavailable")
		return nil
	}
	defer f.Close()

	source, err := io.ReadAll(io.LimitReader(f, o.maxSize))
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("path", target.Path).Msg("outline unavailable")
		return nil
	}
	return ParseOutline(source)
}

// ParseOutline returns the headings of a markdown source in order.
func ParseOutline(source []byte) []port.OutlineEntry {
	doc := getMarkdownParser().Parser().Parse(text.NewReader(source))

	var entries []port.OutlineEntry
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || node.Kind() != ast.KindHeading {
			return ast.WalkContinue, nil
		}
		heading := node.(*ast.Heading)
		title := strings.TrimSpace(inlineText(heading, source))
		if title != "" {
			entries = append(entries, port.OutlineEntry{Level: heading.Level, Text: title})
		}
		return ast.WalkSkipChildren, nil
	})
	return entries
}

// inlineText concatenates the text segments below node.
func inlineText(node ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
