package handlers

import (
	"github.com/0010capacity/oxinot/pkg/preview"
	"github.com/0010capacity/oxinot/pkg/syntax"
	"github.com/0010capacity/oxinot/pkg/theme"
)

// BlockquoteHandler hides the leading '>' markers of every quoted line
// and styles the quoted content.
type BlockquoteHandler struct {
	preview.BaseHandler
}

// NewBlockquoteHandler creates the blockquote handler.
func NewBlockquoteHandler() *BlockquoteHandler {
	return &BlockquoteHandler{BaseHandler: preview.NewBaseHandler("blockquote")}
}

// CanHandle claims blockquote nodes.
func (h *BlockquoteHandler) CanHandle(node *syntax.Node) bool {
	return node.TypeName == syntax.TypeBlockquote
}

// Handle emits per-line marker decorations across the quoted block.
func (h *BlockquoteHandler) Handle(node *syntax.Node, ctx *preview.Context) ([]preview.Decoration, bool) {
	var decs []preview.Decoration

	lineNum := ctx.Doc.LineAt(node.From).Number
	lastLine := ctx.Doc.LineAt(node.To - 1).Number
	if node.To <= node.From {
		return nil, true
	}

	for num := lineNum; num <= lastLine; num++ {
		line := ctx.Doc.Line(num)

		// A quote line may stack markers (">> nested"). Hide the whole
		// marker run including one trailing space.
		markerEnd := line.From
		i := 0
		for i < len(line.Text) {
			ch := line.Text[i]
			if ch == '>' || ch == ' ' || ch == '\t' {
				if ch == '>' {
					markerEnd = line.From + i + 1
				}
				i++
				continue
			}
			break
		}
		if markerEnd == line.From {
			// Lazy continuation line without a marker.
			continue
		}
		if markerEnd < line.To && ctx.Doc.Slice(markerEnd, markerEnd+1) == " " {
			markerEnd++
		}

		decs = append(decs, preview.Marker(line.From, markerEnd, ctx.EditMode(num), theme.ClassDim))
		if markerEnd < line.To {
			decs = append(decs, preview.Styled(markerEnd, line.To, theme.ClassBlockquote))
		}
	}
	return decs, true
}
