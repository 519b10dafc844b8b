package widget

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/0010capacity/oxinot/internal/logging"
	"github.com/0010capacity/oxinot/pkg/blockstore"
	"github.com/0010capacity/oxinot/pkg/preview"
)

// BlockEmbed renders `!((id))` as a block-level, read-only view of the
// referenced block and its descendant subtree.
//
// The subtree fetch starts at mount and resolves in the background; the
// widget shows a placeholder synchronously and mutates its mounted
// element in place when the fetch lands. There is no cancellation token:
// destroying the widget makes a late result a no-op.
type BlockEmbed struct {
	base

	id      string
	fetcher blockstore.Fetcher
	nav     preview.Navigator
	logger  *log.Logger
}

// NewBlockEmbed creates an embed widget for the given block id.
func NewBlockEmbed(delegate preview.RenderDelegate, fetcher blockstore.Fetcher, nav preview.Navigator, id string) *BlockEmbed {
	w := &BlockEmbed{
		id:      id,
		fetcher: fetcher,
		nav:     nav,
		logger:  logging.ForComponent("block-embed"),
	}
	w.delegate = delegate
	return w
}

// BlockID returns the embedded block's id.
func (w *BlockEmbed) BlockID() string {
	return w.id
}

// Eq compares by the embedded block id.
func (w *BlockEmbed) Eq(other preview.Widget) bool {
	o, ok := other.(*BlockEmbed)
	return ok && o.id == w.id
}

// Mount shows a placeholder and kicks off the subtree fetch.
func (w *BlockEmbed) Mount() (preview.Element, error) {
	if w.delegate == nil {
		return nil, fmt.Errorf("block embed %s: no render delegate", w.id)
	}

	host := w.delegate.CreateElement("block-embed")
	host.SetClass("cm-block-embed")
	host.SetText("…")

	if !w.markMounted(host) {
		host.Remove()
		return nil, fmt.Errorf("block embed %s: mount in state %s", w.id, w.State())
	}

	go w.load()
	return host, nil
}

// load fetches the subtree and applies it to the mounted element.
// Collaborator faults degrade to an inline state; they never propagate
// to the rebuild.
func (w *BlockEmbed) load() {
	if w.fetcher == nil {
		w.applyText("no workspace", "cm-embed-missing")
		return
	}

	blocks, err := w.fetcher.FetchSubtree(context.Background(), w.id)
	if err != nil {
		if !errors.Is(err, blockstore.ErrNotFound) {
			w.logger.Warn("subtree fetch failed",
				logging.FieldBlockID, w.id,
				logging.FieldError, err)
		}
		w.applyText("missing", "cm-embed-missing")
		return
	}

	w.whileMounted(func(host preview.Element) {
		host.Clear()
		host.SetClass("cm-block-embed")

		depth := subtreeDepths(blocks)
		hidden := collapsedDescendants(blocks)
		for _, b := range blocks {
			if hidden[b.ID] {
				continue
			}
			line := host.AppendChild("embed-line")
			line.SetText(strings.Repeat("  ", depth[b.ID]) + firstLine(b.Content))
		}
	})
}

func (w *BlockEmbed) applyText(text, class string) {
	w.whileMounted(func(host preview.Element) {
		host.Clear()
		host.SetText(text)
		host.SetClass(class)
	})
}

// Activate emits the navigation intent for the embedded block.
func (w *BlockEmbed) Activate() {
	if w.nav != nil {
		w.nav.NavigateToBlock(w.id)
	}
}

// Destroy defers teardown of the embedded sub-render.
func (w *BlockEmbed) Destroy() {
	w.destroy(func(host preview.Element) {
		if host != nil {
			host.Clear()
			host.Remove()
		}
	})
}

// subtreeDepths maps block id to its depth below the subtree root.
func subtreeDepths(blocks []blockstore.Block) map[string]int {
	depth := make(map[string]int, len(blocks))
	if len(blocks) == 0 {
		return depth
	}
	depth[blocks[0].ID] = 0
	for _, b := range blocks[1:] {
		if d, ok := depth[b.ParentID]; ok {
			depth[b.ID] = d + 1
		}
	}
	return depth
}

// collapsedDescendants marks every block hidden under a collapsed
// ancestor. The collapsed block itself stays visible.
func collapsedDescendants(blocks []blockstore.Block) map[string]bool {
	collapsed := make(map[string]bool, len(blocks))
	hidden := make(map[string]bool)
	for _, b := range blocks {
		if b.Collapsed {
			collapsed[b.ID] = true
		}
	}
	for _, b := range blocks {
		if collapsed[b.ParentID] || hidden[b.ParentID] {
			hidden[b.ID] = true
		}
	}
	return hidden
}

// firstLine returns the block content up to its first newline.
func firstLine(content string) string {
	if idx := strings.IndexByte(content, '\n'); idx >= 0 {
		return content[:idx]
	}
	return content
}
