package pretty

import (
	"strings"
	"sync"

	"github.com/0010capacity/oxinot/pkg/preview"
)

// Delegate is the terminal-backed render delegate. It produces Element
// trees widgets render into, and queues deferred teardown callbacks
// until the paint pass has unwound.
type Delegate struct {
	mu       sync.Mutex
	deferred []func()
}

// NewDelegate creates a terminal render delegate.
func NewDelegate() *Delegate {
	return &Delegate{}
}

// CreateElement produces a detached element of the given kind.
func (d *Delegate) CreateElement(kind string) preview.Element {
	return &Element{kind: kind}
}

// Defer queues fn until Flush. Widget teardown goes through here so a
// destroy triggered during a paint pass never mutates an element tree
// the painter is still reading.
func (d *Delegate) Defer(fn func()) {
	d.mu.Lock()
	d.deferred = append(d.deferred, fn)
	d.mu.Unlock()
}

// Flush runs and clears queued deferred callbacks. The surface calls it
// after each paint pass.
func (d *Delegate) Flush() {
	d.mu.Lock()
	fns := d.deferred
	d.deferred = nil
	d.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Element is a terminal host element: a kind tag, text, a style class,
// and children. Widgets mutate elements from their own goroutines, so
// all access is locked.
type Element struct {
	mu       sync.Mutex
	kind     string
	text     string
	class    string
	children []*Element
	removed  bool
}

// SetText replaces the element's text content.
func (e *Element) SetText(text string) {
	e.mu.Lock()
	e.text = text
	e.mu.Unlock()
}

// SetClass sets the element's style class.
func (e *Element) SetClass(class string) {
	e.mu.Lock()
	e.class = class
	e.mu.Unlock()
}

// AppendChild creates and attaches a child element.
func (e *Element) AppendChild(kind string) preview.Element {
	child := &Element{kind: kind}
	e.mu.Lock()
	e.children = append(e.children, child)
	e.mu.Unlock()
	return child
}

// Clear removes all children and text.
func (e *Element) Clear() {
	e.mu.Lock()
	e.children = nil
	e.text = ""
	e.mu.Unlock()
}

// Remove detaches the element; a removed element renders nothing.
func (e *Element) Remove() {
	e.mu.Lock()
	e.removed = true
	e.mu.Unlock()
}

// Render paints the element tree as terminal text. Line-shaped kinds
// terminate with a newline so stacked children form rows.
func (e *Element) Render(styles *Styles) string {
	e.mu.Lock()
	if e.removed {
		e.mu.Unlock()
		return ""
	}
	kind := e.kind
	text := e.text
	class := e.class
	children := make([]*Element, len(e.children))
	copy(children, e.children)
	e.mu.Unlock()

	var b strings.Builder
	if text != "" {
		if class != "" {
			b.WriteString(styles.ClassStyle(class).Render(text))
		} else {
			b.WriteString(text)
		}
	}
	for _, child := range children {
		b.WriteString(child.Render(styles))
	}
	out := b.String()
	if lineKind(kind) && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

func lineKind(kind string) bool {
	return kind == "header" || strings.HasSuffix(kind, "line")
}
