package handlers

import (
	"fmt"
	"regexp"

	"github.com/0010capacity/oxinot/pkg/preview"
	"github.com/0010capacity/oxinot/pkg/syntax"
	"github.com/0010capacity/oxinot/pkg/theme"
)

// headingPattern recognizes an ATX heading at the start of the node
// text. Seven or more hashes are not a heading.
var headingPattern = regexp.MustCompile(`^(#{1,6})(\s)?(.*)$`)

// HeadingHandler hides (or dims) the "# " marker and applies a
// level-scaled style to the remainder of the heading line.
type HeadingHandler struct {
	preview.BaseHandler
	theme *theme.Theme
}

// NewHeadingHandler creates the heading handler.
func NewHeadingHandler(t *theme.Theme) *HeadingHandler {
	return &HeadingHandler{
		BaseHandler: preview.NewBaseHandler("heading"),
		theme:       t,
	}
}

// CanHandle claims heading nodes.
func (h *HeadingHandler) CanHandle(node *syntax.Node) bool {
	return node.TypeName == syntax.TypeHeading
}

// Handle emits the marker and body decorations for a heading.
func (h *HeadingHandler) Handle(node *syntax.Node, ctx *preview.Context) ([]preview.Decoration, bool) {
	text := ctx.Doc.Slice(node.From, node.To)
	match := headingPattern.FindStringSubmatch(text)
	if match == nil {
		return nil, true
	}

	level := len(match[1])
	markerLen := level + len(match[2])
	editMode := ctx.EditModeAt(node.From)

	decs := []preview.Decoration{
		preview.Marker(node.From, node.From+markerLen, editMode, theme.ClassDim),
	}

	if len(match[3]) > 0 {
		body := preview.Styled(node.From+markerLen, node.To, theme.HeadingClass(level))
		body.Style = fmt.Sprintf("font-scale: %.2f", h.theme.Scale(level))
		decs = append(decs, body)
	}
	return decs, true
}
