package preview

import (
	"github.com/0010capacity/oxinot/pkg/syntax"
)

// Handler recognizes one markdown construct and emits its decorations.
//
// Handlers are stateless except for static construct tables (e.g. the
// callout type table); they are created once at startup and shared
// across every rebuild.
type Handler interface {
	// Name identifies the handler in logs and the CLI listing.
	Name() string

	// CanHandle reports whether this handler claims the node.
	CanHandle(node *syntax.Node) bool

	// Handle emits the decorations for a claimed node. The second
	// return distinguishes "claimed, possibly with zero decorations"
	// (true) from "continue dispatch to the next handler" (false):
	// the registry returns the first non-continuing match's output.
	// Shape-check failures that no later handler could render return
	// (nil, true); malformed input is raw text, never an error.
	Handle(node *syntax.Node, ctx *Context) ([]Decoration, bool)
}

// BaseHandler carries the handler name. Embed it and override CanHandle
// and Handle.
type BaseHandler struct {
	name string
}

// NewBaseHandler creates a BaseHandler with the given name.
func NewBaseHandler(name string) BaseHandler {
	return BaseHandler{name: name}
}

// Name returns the handler name.
func (h *BaseHandler) Name() string {
	return h.name
}

// CanHandle claims nothing by default.
func (h *BaseHandler) CanHandle(_ *syntax.Node) bool {
	return false
}

// Handle continues dispatch by default.
func (h *BaseHandler) Handle(_ *syntax.Node, _ *Context) ([]Decoration, bool) {
	return nil, false
}
