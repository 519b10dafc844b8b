// Package widget implements the stateful, mountable units embedded in
// the document flow: checkbox, fenced-code card, block-embed subtree
// viewer, and inline block-reference preview.
//
// Widgets own their asynchronous data fetch and sub-rendering; the
// engine owns only their placement. All sub-render teardown is deferred
// through the render delegate so it never runs while the host surface is
// still unwinding its own render pass.
package widget

import (
	"sync"

	"github.com/0010capacity/oxinot/pkg/preview"
)

// State is a widget's lifecycle phase.
type State uint8

// Lifecycle states, in order.
const (
	StateCreated State = iota
	StateMounted
	StateDestroying
	StateDestroyed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateMounted:
		return "mounted"
	case StateDestroying:
		return "destroying"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// base carries the shared lifecycle machinery. Concrete widgets embed it
// and drive transitions through the helpers below.
type base struct {
	mu       sync.Mutex
	state    State
	delegate preview.RenderDelegate
	host     preview.Element
}

// State returns the current lifecycle state.
func (b *base) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// markMounted transitions Created -> Mounted and records the host
// element. Returns false when the widget is past Created.
func (b *base) markMounted(host preview.Element) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != StateCreated {
		return false
	}
	b.state = StateMounted
	b.host = host
	return true
}

// whileMounted runs fn under the lock only if the widget is still
// mounted, handing it the host element. Late async results call this so
// a fetch resolving after Destroy is ignored instead of touching a
// dismantled element.
func (b *base) whileMounted(fn func(host preview.Element)) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != StateMounted || b.host == nil {
		return false
	}
	fn(b.host)
	return true
}

// destroy drives Mounted -> Destroying -> Destroyed. The Destroying
// window lasts until the deferred teardown runs; teardown receives the
// host element (may be nil when the widget was never mounted).
func (b *base) destroy(teardown func(host preview.Element)) {
	b.mu.Lock()
	if b.state == StateDestroying || b.state == StateDestroyed {
		b.mu.Unlock()
		return
	}
	host := b.host
	delegate := b.delegate
	b.state = StateDestroying
	b.mu.Unlock()

	finish := func() {
		if teardown != nil {
			teardown(host)
		}
		b.mu.Lock()
		b.state = StateDestroyed
		b.host = nil
		b.mu.Unlock()
	}

	// Sub-render teardown must not run synchronously inside the
	// surface's destroy callback.
	if delegate != nil {
		delegate.Defer(finish)
		return
	}
	finish()
}
