// Package handlers holds the per-construct decoration handlers, both
// tree-driven (heading, emphasis, code, link, blockquote, task list) and
// line-driven via the scanner's synthetic nodes (wiki-link, block ref,
// callout, comment, highlight, strikethrough, footnote, table).
package handlers

import (
	"github.com/0010capacity/oxinot/pkg/blockstore"
	"github.com/0010capacity/oxinot/pkg/preview"
	"github.com/0010capacity/oxinot/pkg/theme"
)

// Deps bundles the collaborators handlers and their widgets need.
// Everything here is read-only after startup.
type Deps struct {
	// Theme provides the per-construct style tables.
	Theme *theme.Theme

	// Delegate produces host elements for widgets.
	Delegate preview.RenderDelegate

	// Editor applies the checkbox widget's single-character rewrites.
	Editor preview.TextEditor

	// Fetcher resolves block ids for ref and embed widgets.
	Fetcher blockstore.Fetcher

	// Navigator receives widget navigation intents.
	Navigator preview.Navigator
}

// withTheme returns the deps theme, defaulting when unset.
func (d Deps) withTheme() *theme.Theme {
	if d.Theme != nil {
		return d.Theme
	}
	return theme.Default()
}

// RegisterAll registers every built-in handler in dispatch order.
//
// The order is part of the engine contract:
//   - task list before generic list item, so `- [ ]` is never consumed
//     as a plain bullet;
//   - strong before emphasis, so a run of "**" is never partially
//     consumed as "*";
//   - block embed before inline block ref, so `!((id))` is never
//     claimed as `((id))`.
func RegisterAll(reg *preview.Registry, deps Deps) {
	t := deps.withTheme()

	// Tree-driven constructs.
	reg.Register(NewHeadingHandler(t))
	reg.Register(NewFencedCodeHandler(deps.Delegate))
	reg.Register(NewTaskListHandler(deps.Delegate, deps.Editor))
	reg.Register(NewListItemHandler())
	reg.Register(NewBlockquoteHandler())
	reg.Register(NewStrongHandler())
	reg.Register(NewEmphasisHandler())
	reg.Register(NewInlineCodeHandler())
	reg.Register(NewLinkHandler())

	// Line-driven constructs (synthetic nodes from the scanner).
	reg.Register(NewWikiLinkHandler())
	reg.Register(NewBlockEmbedHandler(deps.Delegate, deps.Fetcher, deps.Navigator))
	reg.Register(NewBlockRefHandler(deps.Delegate, deps.Fetcher, deps.Navigator))
	reg.Register(NewCalloutHandler(t))
	reg.Register(NewCommentHandler())
	reg.Register(NewHighlightHandler())
	reg.Register(NewStrikethroughHandler())
	reg.Register(NewFootnoteHandler())
	reg.Register(NewTableHandler())
}
