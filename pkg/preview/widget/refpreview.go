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

// RefPreview renders `((id))` as an inline preview of the referenced
// block's first content line. Like BlockEmbed, the fetch is
// fire-and-forget: the rebuild never waits on it.
type RefPreview struct {
	base

	id      string
	fetcher blockstore.Fetcher
	nav     preview.Navigator
	logger  *log.Logger
}

// NewRefPreview creates an inline reference preview widget.
func NewRefPreview(delegate preview.RenderDelegate, fetcher blockstore.Fetcher, nav preview.Navigator, id string) *RefPreview {
	w := &RefPreview{
		id:      id,
		fetcher: fetcher,
		nav:     nav,
		logger:  logging.ForComponent("ref-preview"),
	}
	w.delegate = delegate
	return w
}

// BlockID returns the referenced block's id.
func (w *RefPreview) BlockID() string {
	return w.id
}

// Eq compares by the referenced block id.
func (w *RefPreview) Eq(other preview.Widget) bool {
	o, ok := other.(*RefPreview)
	return ok && o.id == w.id
}

// Mount shows a placeholder and starts the block fetch.
func (w *RefPreview) Mount() (preview.Element, error) {
	if w.delegate == nil {
		return nil, fmt.Errorf("ref preview %s: no render delegate", w.id)
	}

	host := w.delegate.CreateElement("block-ref")
	host.SetClass("cm-blockref")
	host.SetText("…")

	if !w.markMounted(host) {
		host.Remove()
		return nil, fmt.Errorf("ref preview %s: mount in state %s", w.id, w.State())
	}

	go w.load()
	return host, nil
}

func (w *RefPreview) load() {
	if w.fetcher == nil {
		w.apply("no workspace", "cm-ref-missing")
		return
	}

	block, err := w.fetcher.FetchBlock(context.Background(), w.id)
	if err != nil {
		if !errors.Is(err, blockstore.ErrNotFound) {
			w.logger.Warn("block fetch failed",
				logging.FieldBlockID, w.id,
				logging.FieldError, err)
		}
		w.apply("missing", "cm-ref-missing")
		return
	}

	text := firstLine(block.Content)
	if strings.TrimSpace(text) == "" {
		text = "untitled"
	}
	w.apply(text, "cm-blockref")
}

func (w *RefPreview) apply(text, class string) {
	w.whileMounted(func(host preview.Element) {
		host.SetText(text)
		host.SetClass(class)
	})
}

// Activate emits the navigation intent for the referenced block.
func (w *RefPreview) Activate() {
	if w.nav != nil {
		w.nav.NavigateToBlock(w.id)
	}
}

// Destroy implements preview.Widget.
func (w *RefPreview) Destroy() {
	w.destroy(func(host preview.Element) {
		if host != nil {
			host.Remove()
		}
	})
}
