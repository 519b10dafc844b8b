package handlers

import (
	"github.com/0010capacity/oxinot/pkg/preview"
	"github.com/0010capacity/oxinot/pkg/syntax"
	"github.com/0010capacity/oxinot/pkg/theme"
)

// TableHandler renders pipe table rows and separator lines. Pipes on a
// row become markers and cell contents are styled; the separator line
// under the header collapses entirely when the cursor is elsewhere.
type TableHandler struct {
	preview.BaseHandler
}

// NewTableHandler creates the table handler.
func NewTableHandler() *TableHandler {
	return &TableHandler{BaseHandler: preview.NewBaseHandler("table")}
}

// CanHandle claims synthetic table nodes.
func (h *TableHandler) CanHandle(node *syntax.Node) bool {
	return node.TypeName == syntax.TypeTableRow ||
		node.TypeName == syntax.TypeTableSeparator
}

// Handle emits row or separator decorations.
func (h *TableHandler) Handle(node *syntax.Node, ctx *preview.Context) ([]preview.Decoration, bool) {
	editMode := ctx.EditModeAt(node.From)

	if node.TypeName == syntax.TypeTableSeparator {
		// The separator carries no content worth keeping; dim it only
		// while the cursor sits on it.
		return []preview.Decoration{
			preview.Marker(node.From, node.To, editMode, theme.ClassDim),
		}, true
	}

	text := ctx.Doc.Slice(node.From, node.To)
	var decs []preview.Decoration
	cellFrom := -1
	flushCell := func(to int) {
		if cellFrom < 0 || cellFrom >= to {
			cellFrom = -1
			return
		}
		// Trim surrounding padding so the style hugs the content.
		from := cellFrom
		for from < to && text[from-node.From] == ' ' {
			from++
		}
		for to > from && text[to-node.From-1] == ' ' {
			to--
		}
		if from < to {
			decs = append(decs, preview.Styled(from, to, theme.ClassTableCell))
		}
		cellFrom = -1
	}
	for i := 0; i < len(text); i++ {
		if text[i] != '|' {
			if cellFrom < 0 {
				cellFrom = node.From + i
			}
			continue
		}
		flushCell(node.From + i)
		decs = append(decs, preview.Marker(node.From+i, node.From+i+1, editMode, theme.ClassDim))
	}
	flushCell(node.To)

	return decs, true
}
