package handlers

import (
	"github.com/0010capacity/oxinot/pkg/preview"
	"github.com/0010capacity/oxinot/pkg/syntax"
	"github.com/0010capacity/oxinot/pkg/theme"
)

// markerSpan emits the symmetric marker-hiding pattern shared by
// emphasis, strong, and inline code: hide (or dim) the opening and
// closing markers and style the inner span.
func markerSpan(node *syntax.Node, ctx *preview.Context, class string) ([]preview.Decoration, bool) {
	textFrom := node.AttrInt(syntax.AttrTextFrom)
	textTo := node.AttrInt(syntax.AttrTextTo)
	if textFrom <= node.From || textTo >= node.To || textFrom > textTo {
		// No recovered markers; render raw.
		return nil, true
	}

	editMode := ctx.EditModeAt(node.From)
	return []preview.Decoration{
		preview.Marker(node.From, textFrom, editMode, theme.ClassDim),
		preview.Styled(textFrom, textTo, class),
		preview.Marker(textTo, node.To, editMode, theme.ClassDim),
	}, true
}

// StrongHandler renders **bold** spans. Registered before the emphasis
// handler so a "**" run is never partially consumed as "*".
type StrongHandler struct {
	preview.BaseHandler
}

// NewStrongHandler creates the strong handler.
func NewStrongHandler() *StrongHandler {
	return &StrongHandler{BaseHandler: preview.NewBaseHandler("strong")}
}

// CanHandle claims strong nodes.
func (h *StrongHandler) CanHandle(node *syntax.Node) bool {
	return node.TypeName == syntax.TypeStrong
}

// Handle emits the marker and body decorations.
func (h *StrongHandler) Handle(node *syntax.Node, ctx *preview.Context) ([]preview.Decoration, bool) {
	return markerSpan(node, ctx, theme.ClassStrong)
}

// EmphasisHandler renders *italic* spans.
type EmphasisHandler struct {
	preview.BaseHandler
}

// NewEmphasisHandler creates the emphasis handler.
func NewEmphasisHandler() *EmphasisHandler {
	return &EmphasisHandler{BaseHandler: preview.NewBaseHandler("emphasis")}
}

// CanHandle claims emphasis nodes.
func (h *EmphasisHandler) CanHandle(node *syntax.Node) bool {
	return node.TypeName == syntax.TypeEmphasis
}

// Handle emits the marker and body decorations.
func (h *EmphasisHandler) Handle(node *syntax.Node, ctx *preview.Context) ([]preview.Decoration, bool) {
	return markerSpan(node, ctx, theme.ClassEmphasis)
}

// InlineCodeHandler renders `code` spans.
type InlineCodeHandler struct {
	preview.BaseHandler
}

// NewInlineCodeHandler creates the inline code handler.
func NewInlineCodeHandler() *InlineCodeHandler {
	return &InlineCodeHandler{BaseHandler: preview.NewBaseHandler("inline-code")}
}

// CanHandle claims code span nodes.
func (h *InlineCodeHandler) CanHandle(node *syntax.Node) bool {
	return node.TypeName == syntax.TypeCodeSpan
}

// Handle emits the marker and body decorations.
func (h *InlineCodeHandler) Handle(node *syntax.Node, ctx *preview.Context) ([]preview.Decoration, bool) {
	return markerSpan(node, ctx, theme.ClassInlineCode)
}
