package handlers

import (
	"regexp"
	"strings"

	"github.com/0010capacity/oxinot/pkg/preview"
	"github.com/0010capacity/oxinot/pkg/preview/widget"
	"github.com/0010capacity/oxinot/pkg/syntax"
)

// Fence-only line shapes. The opening fence may carry an info token;
// the closing fence may not.
var (
	openFencePattern  = regexp.MustCompile("^\\s*(`{3,}|~{3,})[ \t]*[^`\\s]*[ \t]*$")
	closeFencePattern = regexp.MustCompile("^\\s*(`{3,}|~{3,})[ \t]*$")
)

// FencedCodeHandler replaces a closed, unfocused fenced code block with
// a code card widget.
//
// The widget only renders when the block has at least two lines, the
// closing fence exists, the cursor is outside the node span, and the
// fences are the only content on their lines. Any other shape degrades
// silently to raw text: raw-markdown editing of a fence must never
// render the widget concurrently with the raw text.
type FencedCodeHandler struct {
	preview.BaseHandler
	delegate preview.RenderDelegate
}

// NewFencedCodeHandler creates the fenced code handler.
func NewFencedCodeHandler(delegate preview.RenderDelegate) *FencedCodeHandler {
	return &FencedCodeHandler{
		BaseHandler: preview.NewBaseHandler("fenced-code"),
		delegate:    delegate,
	}
}

// CanHandle claims fenced code nodes.
func (h *FencedCodeHandler) CanHandle(node *syntax.Node) bool {
	return node.TypeName == syntax.TypeFencedCode
}

// Handle emits the single widget decoration, or nothing.
func (h *FencedCodeHandler) Handle(node *syntax.Node, ctx *preview.Context) ([]preview.Decoration, bool) {
	if !node.AttrBool(syntax.AttrClosed) {
		return nil, true
	}

	startLine := ctx.Doc.LineAt(node.From)
	endLine := ctx.Doc.LineAt(node.To - 1)
	if endLine.Number-startLine.Number < 1 {
		return nil, true
	}

	// Exclusivity: cursor inside the span keeps the raw text visible.
	if ctx.EditorFocused && ctx.Cursor.Pos >= node.From && ctx.Cursor.Pos <= node.To {
		return nil, true
	}

	if !openFencePattern.MatchString(startLine.Text) ||
		!closeFencePattern.MatchString(endLine.Text) {
		return nil, true
	}

	code := ctx.Doc.Slice(node.AttrInt(syntax.AttrCodeFrom), node.AttrInt(syntax.AttrCodeTo))
	lang := infoLanguage(node.AttrString(syntax.AttrInfo))

	card := widget.NewCodeCard(h.delegate, code, lang)
	return []preview.Decoration{
		preview.BlockWidgetAt(node.From, node.To, card),
	}, true
}

// infoLanguage extracts the language token from a fence info string.
func infoLanguage(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}
