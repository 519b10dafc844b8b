package preview

import (
	"context"

	"github.com/0010capacity/oxinot/internal/logging"
	"github.com/0010capacity/oxinot/pkg/document"
	"github.com/0010capacity/oxinot/pkg/syntax"
)

// SyntaxProvider supplies the parse tree over the current document.
// The provider is an external collaborator; the engine only reads the
// returned tree.
type SyntaxProvider interface {
	Tree(ctx context.Context, doc *document.Snapshot) (*syntax.Node, error)
}

// LineScanner produces synthetic nodes for constructs the syntax
// provider does not index. It runs once per document line per rebuild.
// prevText is the text of the preceding line ("" on the first line);
// table separator detection needs it.
type LineScanner interface {
	ScanLine(line document.LineInfo, prevText string) []*syntax.Node
}

// Range is a half-open byte range, used for the visible viewport.
type Range struct {
	From int
	To   int
}

// UpdateInfo describes what changed in the host since the last rebuild.
type UpdateInfo struct {
	DocChanged       bool
	ViewportChanged  bool
	SelectionChanged bool
}

// ShouldRebuild reports whether the update warrants a decoration rebuild.
func (u UpdateInfo) ShouldRebuild() bool {
	return u.DocChanged || u.ViewportChanged || u.SelectionChanged
}

// State captures the host inputs a rebuild depends on. Rebuilding twice
// with the same State yields an identical RangeSet.
type State struct {
	// CursorPos is the primary selection head offset.
	CursorPos int

	// EditorFocused reports host editor focus.
	EditorFocused bool

	// Viewport is the visible byte range the tree walk is scoped to.
	// A zero Viewport means the whole document.
	Viewport Range
}

// Engine orchestrates a rebuild: context creation, the tree walk over
// the visible range, the line scanner pass over the whole document,
// and the merge into a RangeSet.
//
// Rebuilds are synchronous; asynchronous work lives entirely inside
// widgets and is never awaited here.
type Engine struct {
	provider SyntaxProvider
	registry *Registry
	scanner  LineScanner
	builder  *Builder
}

// NewEngine creates an engine. scanner may be nil when only tree-driven
// constructs are wanted (some tests do this).
func NewEngine(provider SyntaxProvider, registry *Registry, scanner LineScanner) *Engine {
	return &Engine{
		provider: provider,
		registry: registry,
		scanner:  scanner,
		builder:  NewBuilder(),
	}
}

// Registry exposes the engine's handler registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Rebuild computes the full decoration set for the given document and
// host state. The returned set replaces the surface's previous set
// atomically; it is never patched incrementally.
//
// Decoration computation is pure: no engine state is mutated, and a
// second Rebuild with unchanged inputs returns an equal set.
func (e *Engine) Rebuild(ctx context.Context, doc *document.Snapshot, st State) (*RangeSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cursor := doc.CursorAt(st.CursorPos)
	rctx := NewContext(doc, cursor, st.EditorFocused)

	viewport := st.Viewport
	if viewport.From == 0 && viewport.To == 0 {
		viewport.To = doc.Len()
	}

	// Tree walk over the visible range. A provider failure degrades to
	// scanner-only output; the rebuild still produces a usable set.
	root, err := e.provider.Tree(ctx, doc)
	if err != nil {
		logging.FromContextFor(ctx, "engine").Warn("syntax provider failed, line scan only",
			logging.FieldError, err)
	} else {
		syntax.WalkRange(root, viewport.From, viewport.To, func(n *syntax.Node) bool {
			if n.TypeName == syntax.TypeDocument {
				return true
			}
			rctx.Push(e.registry.HandleNode(n, rctx)...)
			// Dispatch continues into children so constructs nested
			// inside a claimed node (a link inside a heading) still
			// render.
			return true
		})
	}

	// Line scanner pass over the whole document: these constructs are
	// not indexed by the parser, so they cannot be scoped to the
	// viewport.
	if e.scanner != nil {
		prevText := ""
		for num := 1; num <= doc.LineCount(); num++ {
			line := doc.Line(num)
			for _, n := range e.scanner.ScanLine(line, prevText) {
				rctx.Push(e.registry.HandleNode(n, rctx)...)
			}
			prevText = line.Text
		}
	}

	return e.builder.Build(rctx.Decorations(), doc.Len()), nil
}
