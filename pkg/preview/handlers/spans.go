package handlers

import (
	"github.com/0010capacity/oxinot/pkg/preview"
	"github.com/0010capacity/oxinot/pkg/syntax"
	"github.com/0010capacity/oxinot/pkg/theme"
)

// CommentHandler renders %%comment%% spans: hidden entirely in preview,
// dimmed whole on the cursor line. Comments never show their content in
// rendered form.
type CommentHandler struct {
	preview.BaseHandler
}

// NewCommentHandler creates the comment handler.
func NewCommentHandler() *CommentHandler {
	return &CommentHandler{BaseHandler: preview.NewBaseHandler("comment")}
}

// CanHandle claims synthetic comment nodes.
func (h *CommentHandler) CanHandle(node *syntax.Node) bool {
	return node.TypeName == syntax.TypeCommentSpan
}

// Handle hides or dims the whole comment span.
func (h *CommentHandler) Handle(node *syntax.Node, ctx *preview.Context) ([]preview.Decoration, bool) {
	if ctx.EditModeAt(node.From) {
		return []preview.Decoration{
			preview.Dimmed(node.From, node.To, theme.ClassComment),
		}, true
	}
	return []preview.Decoration{preview.Hidden(node.From, node.To)}, true
}

// HighlightHandler renders ==highlight== spans.
type HighlightHandler struct {
	preview.BaseHandler
}

// NewHighlightHandler creates the highlight handler.
func NewHighlightHandler() *HighlightHandler {
	return &HighlightHandler{BaseHandler: preview.NewBaseHandler("highlight")}
}

// CanHandle claims synthetic highlight nodes.
func (h *HighlightHandler) CanHandle(node *syntax.Node) bool {
	return node.TypeName == syntax.TypeHighlightSpan
}

// Handle emits the symmetric two-character marker pattern.
func (h *HighlightHandler) Handle(node *syntax.Node, ctx *preview.Context) ([]preview.Decoration, bool) {
	return doubleMarker(node, ctx, theme.ClassHighlight)
}

// StrikethroughHandler renders ~~struck~~ spans.
type StrikethroughHandler struct {
	preview.BaseHandler
}

// NewStrikethroughHandler creates the strikethrough handler.
func NewStrikethroughHandler() *StrikethroughHandler {
	return &StrikethroughHandler{BaseHandler: preview.NewBaseHandler("strikethrough")}
}

// CanHandle claims synthetic strikethrough nodes.
func (h *StrikethroughHandler) CanHandle(node *syntax.Node) bool {
	return node.TypeName == syntax.TypeStrikethrough
}

// Handle emits the symmetric two-character marker pattern.
func (h *StrikethroughHandler) Handle(node *syntax.Node, ctx *preview.Context) ([]preview.Decoration, bool) {
	return doubleMarker(node, ctx, theme.ClassStrikethrough)
}

// doubleMarker hides two-character markers on each end and styles the
// inner span.
func doubleMarker(node *syntax.Node, ctx *preview.Context, class string) ([]preview.Decoration, bool) {
	if node.Len() <= 4 {
		return nil, true
	}
	editMode := ctx.EditModeAt(node.From)
	return []preview.Decoration{
		preview.Marker(node.From, node.From+2, editMode, theme.ClassDim),
		preview.Styled(node.From+2, node.To-2, class),
		preview.Marker(node.To-2, node.To, editMode, theme.ClassDim),
	}, true
}
