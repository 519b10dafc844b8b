package handlers

import (
	"github.com/0010capacity/oxinot/pkg/blockstore"
	"github.com/0010capacity/oxinot/pkg/preview"
	"github.com/0010capacity/oxinot/pkg/preview/widget"
	"github.com/0010capacity/oxinot/pkg/syntax"
	"github.com/0010capacity/oxinot/pkg/theme"
)

// BlockEmbedHandler renders !((id)) as a block-level subtree widget.
// Registered before the inline block ref handler.
//
// Exclusivity mirrors the fenced-code rule: the embed only renders when
// nothing but whitespace shares its line, and never while the cursor is
// on that line. Anything else leaves the raw text visible.
type BlockEmbedHandler struct {
	preview.BaseHandler
	delegate preview.RenderDelegate
	fetcher  blockstore.Fetcher
	nav      preview.Navigator
}

// NewBlockEmbedHandler creates the embed handler.
func NewBlockEmbedHandler(delegate preview.RenderDelegate, fetcher blockstore.Fetcher, nav preview.Navigator) *BlockEmbedHandler {
	return &BlockEmbedHandler{
		BaseHandler: preview.NewBaseHandler("block-embed"),
		delegate:    delegate,
		fetcher:     fetcher,
		nav:         nav,
	}
}

// CanHandle claims synthetic block embed nodes.
func (h *BlockEmbedHandler) CanHandle(node *syntax.Node) bool {
	return node.TypeName == syntax.TypeBlockEmbed
}

// Handle emits the block widget, or nothing when exclusivity fails.
func (h *BlockEmbedHandler) Handle(node *syntax.Node, ctx *preview.Context) ([]preview.Decoration, bool) {
	id := node.AttrString(syntax.AttrBlockID)
	if id == "" || !node.AttrBool(syntax.AttrAlone) {
		return nil, true
	}
	if ctx.EditModeAt(node.From) {
		return nil, true
	}

	embed := widget.NewBlockEmbed(h.delegate, h.fetcher, h.nav, id)
	return []preview.Decoration{
		preview.BlockWidgetAt(node.From, node.To, embed),
	}, true
}

// BlockRefHandler renders ((id)) as an inline preview of the referenced
// block: the raw id hides behind a widget showing the block's first
// content line.
type BlockRefHandler struct {
	preview.BaseHandler
	delegate preview.RenderDelegate
	fetcher  blockstore.Fetcher
	nav      preview.Navigator
}

// NewBlockRefHandler creates the inline ref handler.
func NewBlockRefHandler(delegate preview.RenderDelegate, fetcher blockstore.Fetcher, nav preview.Navigator) *BlockRefHandler {
	return &BlockRefHandler{
		BaseHandler: preview.NewBaseHandler("block-ref"),
		delegate:    delegate,
		fetcher:     fetcher,
		nav:         nav,
	}
}

// CanHandle claims synthetic block ref nodes.
func (h *BlockRefHandler) CanHandle(node *syntax.Node) bool {
	return node.TypeName == syntax.TypeBlockRef
}

// Handle emits the hide plus inline widget pair, or a dimmed raw form
// on the cursor line.
func (h *BlockRefHandler) Handle(node *syntax.Node, ctx *preview.Context) ([]preview.Decoration, bool) {
	id := node.AttrString(syntax.AttrBlockID)
	if id == "" {
		return nil, true
	}

	if ctx.EditModeAt(node.From) {
		return []preview.Decoration{
			preview.Dimmed(node.From, node.To, theme.ClassBlockRef),
		}, true
	}

	ref := widget.NewRefPreview(h.delegate, h.fetcher, h.nav, id)
	return []preview.Decoration{
		preview.Hidden(node.From, node.To),
		preview.WidgetAt(node.To, node.To, ref),
	}, true
}
