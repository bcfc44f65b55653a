package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/styles"
)

// DefaultMaxDocumentSize caps how much of a file is read for display.
const DefaultMaxDocumentSize = 1 << 20

const tabWidth = 4

var errNoTarget = errors.New("tab has no target payload")

// Document renders text files with syntax highlighting. Each tab keeps its
// own scroll offset for as long as the renderer knows about it.
type Document struct {
	theme   *styles.Theme
	style   string
	maxSize int64
	docs    map[entity.TabID]*document
}

type document struct {
	path    string
	modTime time.Time
	size    int64
	view    viewport.Model
}

// NewDocument creates a document renderer using a chroma style name.
func NewDocument(theme *styles.Theme, codeStyle string) *Document {
	return &Document{
		theme:   theme,
		style:   codeStyle,
		maxSize: DefaultMaxDocumentSize,
		docs:    make(map[entity.TabID]*document),
	}
}

// SetCodeStyle switches the chroma style and drops cached renders.
func (d *Document) SetCodeStyle(style string) {
	if style == d.style {
		return
	}
	d.style = style
	for _, doc := range d.docs {
		doc.modTime = time.Time{}
	}
}

// Render implements port.ContentRenderer.
func (d *Document) Render(ctx context.Context, req port.RenderRequest) string {
	target, ok := req.Tab.Payload.(entity.Target)
	if !ok {
		return failure(d.theme, req, errNoTarget)
	}

	doc, err := d.load(ctx, req.Tab.ID, req.Project, target)
	if err != nil {
		logging.FromContext(logging.WithTabID(ctx, string(req.Tab.ID))).Warn().
			Err(err).
			Str("path", target.Path).
			Msg("failed to render document")
		return failure(d.theme, req, err)
	}

	doc.view.Width = req.Width
	doc.view.Height = req.Height
	// Re-apply the offset so a taller view never leaves blank rows below
	// the last line.
	doc.view.SetYOffset(doc.view.YOffset)
	return doc.view.View()
}

// Scroll moves a document's view by delta lines.
func (d *Document) Scroll(id entity.TabID, delta int) {
	doc, ok := d.docs[id]
	if !ok {
		return
	}
	doc.view.SetYOffset(doc.view.YOffset + delta)
}

// Offset returns the scroll offset of a document tab.
func (d *Document) Offset(id entity.TabID) int {
	if doc, ok := d.docs[id]; ok {
		return doc.view.YOffset
	}
	return 0
}

// Forget drops the cached state of a closed tab.
func (d *Document) Forget(id entity.TabID) {
	delete(d.docs, id)
}

// Retain drops the cached state of every tab not in keep.
func (d *Document) Retain(keep entity.TabList) {
	for id := range d.docs {
		if keep.IndexOf(id) < 0 {
			delete(d.docs, id)
		}
	}
}

func (d *Document) load(ctx context.Context, id entity.TabID, project entity.Project, target entity.Target) (*document, error) {
	path := filepath.Join(project.Root, filepath.FromSlash(target.Path))
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", target.Path, err)
	}

	doc, ok := d.docs[id]
	if ok && doc.path == path && doc.modTime.Equal(info.ModTime()) && doc.size == info.Size() {
		return doc, nil
	}

	body, err := d.highlight(path, target)
	if err != nil {
		return nil, err
	}

	if !ok {
		doc = &document{view: viewport.New(0, 0)}
		d.docs[id] = doc
	}
	doc.path = path
	doc.modTime = info.ModTime()
	doc.size = info.Size()
	doc.view.SetContent(body)

	logging.FromContext(ctx).Debug().
		Str("path", target.Path).
		Int64("size", info.Size()).
		Msg("document loaded")
	return doc, nil
}

func (d *Document) highlight(path string, target entity.Target) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", target.Path, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, d.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", target.Path, err)
	}
	truncated := int64(len(raw)) > d.maxSize
	source := string(raw[:min(int64(len(raw)), d.maxSize)])
	source = strings.ReplaceAll(source, "\t", strings.Repeat(" ", tabWidth))

	lexer := ""
	if l := lexers.Match(filepath.Base(path)); l != nil {
		lexer = l.Config().Name
	}

	var out strings.Builder
	if err := quick.Highlight(&out, source, lexer, "terminal256", d.style); err != nil {
		out.Reset()
		out.WriteString(source)
	}

	body := strings.TrimRight(out.String(), "\n")
	if truncated {
		body += "\n" + d.theme.WarningStyle.Render(
			fmt.Sprintf("… truncated at %d bytes", d.maxSize))
	}
	return body, nil
}
