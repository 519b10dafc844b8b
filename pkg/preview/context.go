package preview

import (
	"github.com/0010capacity/oxinot/pkg/document"
)

// Context is the per-rebuild bundle handed to every handler: the current
// document snapshot, cursor info, editor focus, and the output decoration
// list being assembled. A Context is created fresh for each rebuild and
// discarded after the decorations are extracted.
type Context struct {
	// Doc is the document snapshot for this rebuild.
	Doc *document.Snapshot

	// Cursor is the primary selection head.
	Cursor document.Cursor

	// EditorFocused reports whether the host editor has focus. An
	// unfocused editor renders every line in preview form.
	EditorFocused bool

	decorations []Decoration
}

// NewContext creates a rebuild context.
func NewContext(doc *document.Snapshot, cursor document.Cursor, focused bool) *Context {
	return &Context{
		Doc:           doc,
		Cursor:        cursor,
		EditorFocused: focused,
	}
}

// EditMode reports whether the given 1-based line is in edit mode:
// the cursor sits on it and the editor has focus. This is the single
// authoritative hide-vs-dim derivation; handlers must not recompute it
// from raw cursor state.
func (c *Context) EditMode(lineNumber int) bool {
	return c.EditorFocused && c.Cursor.OnLine(lineNumber)
}

// EditModeAt reports edit mode for the line containing the given offset.
func (c *Context) EditModeAt(offset int) bool {
	if !c.EditorFocused {
		return false
	}
	return c.Doc.LineAt(offset).Number == c.Cursor.Line.Number
}

// Push appends decorations to the rebuild output.
func (c *Context) Push(decs ...Decoration) {
	c.decorations = append(c.decorations, decs...)
}

// Decorations returns the accumulated decoration list.
func (c *Context) Decorations() []Decoration {
	return c.decorations
}
