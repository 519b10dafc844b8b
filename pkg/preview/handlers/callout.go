package handlers

import (
	"strings"

	"github.com/0010capacity/oxinot/pkg/preview"
	"github.com/0010capacity/oxinot/pkg/syntax"
	"github.com/0010capacity/oxinot/pkg/theme"
)

// CalloutHandler renders the first line of a `> [!type] Title` callout:
// the marker hides behind the type's icon, the title styles in the
// type's color. Unknown types fall back to the "note" style; an absent
// title defaults to the capitalized type name.
type CalloutHandler struct {
	preview.BaseHandler
	theme *theme.Theme
}

// NewCalloutHandler creates the callout handler.
func NewCalloutHandler(t *theme.Theme) *CalloutHandler {
	return &CalloutHandler{
		BaseHandler: preview.NewBaseHandler("callout"),
		theme:       t,
	}
}

// CanHandle claims synthetic callout nodes.
func (h *CalloutHandler) CanHandle(node *syntax.Node) bool {
	return node.TypeName == syntax.TypeCalloutLine
}

// Handle emits the marker and title decorations.
func (h *CalloutHandler) Handle(node *syntax.Node, ctx *preview.Context) ([]preview.Decoration, bool) {
	typ := node.AttrString(syntax.AttrCalloutType)
	if typ == "" {
		return nil, true
	}

	style := h.theme.Callout(typ)
	title := node.AttrString(syntax.AttrTitle)
	if title == "" {
		title = capitalize(typ)
	}

	titleFrom := node.AttrInt(syntax.AttrTitleFrom)
	if titleFrom <= node.From || titleFrom > node.To {
		titleFrom = node.To
	}

	editMode := ctx.EditModeAt(node.From)

	// The marker decoration carries the resolved icon and title so the
	// surface can paint the callout header even when no title text
	// exists to restyle.
	head := preview.Marker(node.From, titleFrom, editMode, theme.ClassDim)
	head.Data = style.Icon + " " + title

	decs := []preview.Decoration{head}
	if titleFrom < node.To {
		body := preview.Styled(titleFrom, node.To, theme.ClassCalloutTitle)
		body.Style = "color: " + style.Color
		decs = append(decs, body)
	}
	return decs, true
}

// capitalize upper-cases the first ASCII letter of a callout type.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
