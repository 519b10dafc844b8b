package handlers

import (
	"github.com/0010capacity/oxinot/pkg/preview"
	"github.com/0010capacity/oxinot/pkg/syntax"
	"github.com/0010capacity/oxinot/pkg/theme"
)

// FootnoteHandler renders [^id] references and `[^id]: def` definition
// lines. References hide their bracket syntax and style the label;
// definitions keep their text and dim the leading marker.
type FootnoteHandler struct {
	preview.BaseHandler
}

// NewFootnoteHandler creates the footnote handler.
func NewFootnoteHandler() *FootnoteHandler {
	return &FootnoteHandler{BaseHandler: preview.NewBaseHandler("footnote")}
}

// CanHandle claims synthetic footnote nodes.
func (h *FootnoteHandler) CanHandle(node *syntax.Node) bool {
	return node.TypeName == syntax.TypeFootnoteRef ||
		node.TypeName == syntax.TypeFootnoteDef
}

// Handle emits reference or definition decorations.
func (h *FootnoteHandler) Handle(node *syntax.Node, ctx *preview.Context) ([]preview.Decoration, bool) {
	label := node.AttrString(syntax.AttrLabel)
	if label == "" {
		return nil, true
	}
	editMode := ctx.EditModeAt(node.From)

	// Label sits after "[^".
	labelFrom := node.From + 2
	labelTo := labelFrom + len(label)

	if node.TypeName == syntax.TypeFootnoteRef {
		body := preview.Styled(labelFrom, labelTo, theme.ClassFootnote)
		body.Data = label
		return []preview.Decoration{
			preview.Marker(node.From, labelFrom, editMode, theme.ClassDim),
			body,
			preview.Marker(labelTo, node.To, editMode, theme.ClassDim),
		}, true
	}

	// Definition: "[^id]:" dims as one marker run; the text keeps its
	// raw form so the definition stays editable at a glance.
	markerTo := labelTo + 2
	if markerTo > node.To {
		markerTo = node.To
	}
	return []preview.Decoration{
		preview.Dimmed(node.From, markerTo, theme.ClassFootnote),
	}, true
}
