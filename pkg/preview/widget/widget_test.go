package widget

import (
	"sync"

	"github.com/0010capacity/oxinot/pkg/preview"
)

// fakeElement records the element mutations widgets perform.
type fakeElement struct {
	mu       sync.Mutex
	kind     string
	text     string
	class    string
	children []*fakeElement
	removed  bool
	cleared  int
}

func (e *fakeElement) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.text = text
}

func (e *fakeElement) SetClass(class string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.class = class
}

func (e *fakeElement) AppendChild(kind string) preview.Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	child := &fakeElement{kind: kind}
	e.children = append(e.children, child)
	return child
}

func (e *fakeElement) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.children = nil
	e.text = ""
	e.cleared++
}

func (e *fakeElement) Remove() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removed = true
}

func (e *fakeElement) snapshot() (text, class string, removed bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text, e.class, e.removed
}

func (e *fakeElement) childTexts() []string {
	e.mu.Lock()
	children := make([]*fakeElement, len(e.children))
	copy(children, e.children)
	e.mu.Unlock()

	out := make([]string, len(children))
	for i, c := range children {
		text, _, _ := c.snapshot()
		out[i] = text
	}
	return out
}

// fakeDelegate queues deferred callbacks unless immediate is set, so
// tests can observe the Destroying window.
type fakeDelegate struct {
	mu        sync.Mutex
	immediate bool
	deferred  []func()
	created   []*fakeElement
}

func (d *fakeDelegate) CreateElement(kind string) preview.Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	el := &fakeElement{kind: kind}
	d.created = append(d.created, el)
	return el
}

func (d *fakeDelegate) Defer(fn func()) {
	d.mu.Lock()
	if d.immediate {
		d.mu.Unlock()
		fn()
		return
	}
	d.deferred = append(d.deferred, fn)
	d.mu.Unlock()
}

func (d *fakeDelegate) flush() {
	d.mu.Lock()
	fns := d.deferred
	d.deferred = nil
	d.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (d *fakeDelegate) pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.deferred)
}

// fakeEditor records text replacements.
type fakeEditor struct {
	mu    sync.Mutex
	from  int
	to    int
	text  string
	calls int
}

func (e *fakeEditor) ReplaceRange(from, to int, text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.from, e.to, e.text = from, to, text
	e.calls++
	return nil
}

// fakeNav records navigation intents.
type fakeNav struct {
	mu  sync.Mutex
	ids []string
}

func (n *fakeNav) NavigateToBlock(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.ids = append(n.ids, id)
}
