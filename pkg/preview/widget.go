package preview

// Element is the engine's abstraction of a host-surface element. The
// engine never talks to a concrete UI layer; widgets build their output
// through elements produced by the surface's RenderDelegate.
type Element interface {
	// SetText replaces the element's text content.
	SetText(text string)

	// SetClass sets the element's style class.
	SetClass(class string)

	// AppendChild creates and attaches a child element of the given
	// kind (e.g. "span", "line", "card").
	AppendChild(kind string) Element

	// Clear removes all children and text.
	Clear()

	// Remove detaches the element from its parent.
	Remove()
}

// RenderDelegate is provided by the rendering surface. It produces host
// elements from declarative requests and owns teardown scheduling.
type RenderDelegate interface {
	// CreateElement produces a detached host element of the given kind.
	CreateElement(kind string) Element

	// Defer schedules fn to run after the surface's current render
	// pass has unwound. Widget sub-render teardown must go through
	// Defer: destroying a mounted sub-render synchronously inside the
	// surface's destroy callback fails while the host is still
	// unwinding its own render pass.
	Defer(fn func())
}

// Widget is a stateful, mountable unit embedded in the document flow.
//
// Lifecycle: Created -> Mounted -> Destroying -> Destroyed. Mount is
// called when the surface needs the widget's host element; a widget
// needing external data starts its asynchronous load there and returns
// a placeholder synchronously. Destroy begins teardown; deferred work
// runs through the delegate.
type Widget interface {
	// Eq reports whether this widget renders the same content as
	// other. The surface uses it to reuse the mounted element across
	// rebuilds, so equality must be content identity (block id, code
	// text plus language), never instance identity.
	Eq(other Widget) bool

	// Mount produces the widget's host element.
	Mount() (Element, error)

	// Destroy tears the widget down. Safe to call more than once.
	Destroy()
}
