package handlers

import (
	"strings"

	"github.com/0010capacity/oxinot/pkg/preview"
	"github.com/0010capacity/oxinot/pkg/syntax"
	"github.com/0010capacity/oxinot/pkg/theme"
)

// LinkHandler renders [text](url): the opening bracket, the "](", the
// URL, and the trailing ")" are hidden independently while the text is
// styled, producing up to five decorations per link.
type LinkHandler struct {
	preview.BaseHandler
}

// NewLinkHandler creates the link handler.
func NewLinkHandler() *LinkHandler {
	return &LinkHandler{BaseHandler: preview.NewBaseHandler("link")}
}

// CanHandle claims link nodes.
func (h *LinkHandler) CanHandle(node *syntax.Node) bool {
	return node.TypeName == syntax.TypeLink
}

// Handle emits the five-part link decoration.
func (h *LinkHandler) Handle(node *syntax.Node, ctx *preview.Context) ([]preview.Decoration, bool) {
	textFrom := node.AttrInt(syntax.AttrTextFrom)
	textTo := node.AttrInt(syntax.AttrTextTo)

	text := ctx.Doc.Slice(node.From, node.To)
	// Shape check: reference-style links and autolinks have no inline
	// destination and render raw.
	if textFrom != node.From+1 || !strings.HasPrefix(text, "[") ||
		!strings.HasSuffix(text, ")") {
		return nil, true
	}
	urlFrom := textTo + 2
	urlTo := node.To - 1
	if ctx.Doc.Slice(textTo, urlFrom) != "](" || urlFrom > urlTo {
		return nil, true
	}

	editMode := ctx.EditModeAt(node.From)

	body := preview.Styled(textFrom, textTo, theme.ClassLink)
	body.Data = node.AttrString(syntax.AttrURL)

	decs := []preview.Decoration{
		preview.Marker(node.From, textFrom, editMode, theme.ClassDim),
		body,
		preview.Marker(textTo, urlFrom, editMode, theme.ClassDim),
	}
	if urlFrom < urlTo {
		decs = append(decs, preview.Marker(urlFrom, urlTo, editMode, theme.ClassDim))
	}
	decs = append(decs, preview.Marker(urlTo, node.To, editMode, theme.ClassDim))
	return decs, true
}
