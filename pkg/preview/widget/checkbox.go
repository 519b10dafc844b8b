package widget

import (
	"fmt"

	"github.com/0010capacity/oxinot/pkg/preview"
)

// Checkbox renders a task-list marker as a toggleable box. Toggling
// rewrites only the single character inside the brackets; the document
// edit then triggers a fresh rebuild that re-creates the widget.
type Checkbox struct {
	base

	checked bool

	// markerPos is the offset of the character between the brackets.
	markerPos int

	editor preview.TextEditor
}

// NewCheckbox creates a checkbox widget for the marker character at
// markerPos.
func NewCheckbox(delegate preview.RenderDelegate, editor preview.TextEditor, markerPos int, checked bool) *Checkbox {
	w := &Checkbox{
		checked:   checked,
		markerPos: markerPos,
		editor:    editor,
	}
	w.delegate = delegate
	return w
}

// Checked reports the rendered state.
func (w *Checkbox) Checked() bool {
	return w.checked
}

// Eq compares by content identity: same marker position and state.
func (w *Checkbox) Eq(other preview.Widget) bool {
	o, ok := other.(*Checkbox)
	return ok && o.checked == w.checked && o.markerPos == w.markerPos
}

// Mount produces the checkbox element.
func (w *Checkbox) Mount() (preview.Element, error) {
	if w.delegate == nil {
		return nil, fmt.Errorf("checkbox at %d: no render delegate", w.markerPos)
	}

	host := w.delegate.CreateElement("checkbox")
	if w.checked {
		host.SetText("☑")
		host.SetClass("cm-task-checked")
	} else {
		host.SetText("☐")
		host.SetClass("cm-task-unchecked")
	}

	if !w.markMounted(host) {
		host.Remove()
		return nil, fmt.Errorf("checkbox at %d: mount in state %s", w.markerPos, w.State())
	}
	return host, nil
}

// Toggle flips the task state by rewriting the bracketed character.
func (w *Checkbox) Toggle() error {
	if w.editor == nil {
		return fmt.Errorf("checkbox at %d: no text editor", w.markerPos)
	}
	next := "x"
	if w.checked {
		next = " "
	}
	return w.editor.ReplaceRange(w.markerPos, w.markerPos+1, next)
}

// Destroy implements preview.Widget. The checkbox has no sub-render, but
// teardown still goes through the delegate's deferral.
func (w *Checkbox) Destroy() {
	w.destroy(func(host preview.Element) {
		if host != nil {
			host.Remove()
		}
	})
}
