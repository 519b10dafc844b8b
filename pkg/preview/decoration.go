// Package preview implements the hybrid live-preview rendering engine:
// it recomputes, on every qualifying host update, which spans of a
// markdown buffer should be hidden, dimmed, restyled, or replaced by
// widgets, based on cursor position and a parsed syntax tree.
package preview

// Kind classifies what a decoration instructs the rendering surface to do.
type Kind uint8

// Decoration kinds.
const (
	// KindHidden removes the span from the rendered view. The text is
	// still present in the buffer; cursor entry restores it.
	KindHidden Kind = iota

	// KindDimmed renders the span at reduced emphasis. Used instead of
	// KindHidden when the span's line is in edit mode.
	KindDimmed

	// KindStyledText applies a class or inline style to the span.
	KindStyledText

	// KindWidget replaces the span with a mounted widget. A zero-width
	// widget decoration inserts at a point without consuming text.
	KindWidget
)

// String returns the kind name for logs and debug dumps.
func (k Kind) String() string {
	switch k {
	case KindHidden:
		return "hidden"
	case KindDimmed:
		return "dimmed"
	case KindStyledText:
		return "styled"
	case KindWidget:
		return "widget"
	default:
		return "unknown"
	}
}

// Decoration is the atomic output unit of the engine: a half-open byte
// range [From, To) tagged with a kind and rendering metadata.
//
// Invariant: From <= To. Zero-width decorations are permitted only for
// KindWidget; the builder drops everything else.
type Decoration struct {
	From int
	To   int
	Kind Kind

	// Class names the style class applied by the surface (styled and
	// dimmed decorations).
	Class string

	// Style is an optional inline style string.
	Style string

	// Data carries construct metadata the surface needs beyond
	// styling: a link URL, a wiki-link's full navigation target, a
	// callout's resolved icon and title.
	Data string

	// Widget is the widget instance for KindWidget decorations.
	Widget Widget

	// Block marks a widget decoration that replaces whole lines rather
	// than flowing inline.
	Block bool
}

// Width returns the decorated span length in bytes.
func (d Decoration) Width() int {
	return d.To - d.From
}

// Hidden builds a hide decoration for [from, to).
func Hidden(from, to int) Decoration {
	return Decoration{From: from, To: to, Kind: KindHidden}
}

// Dimmed builds a dim decoration for [from, to).
func Dimmed(from, to int, class string) Decoration {
	return Decoration{From: from, To: to, Kind: KindDimmed, Class: class}
}

// Styled builds a styled-text decoration for [from, to).
func Styled(from, to int, class string) Decoration {
	return Decoration{From: from, To: to, Kind: KindStyledText, Class: class}
}

// WidgetAt builds an inline widget decoration for [from, to).
// from == to inserts the widget at a point.
func WidgetAt(from, to int, w Widget) Decoration {
	return Decoration{From: from, To: to, Kind: KindWidget, Widget: w}
}

// BlockWidgetAt builds a block-level widget decoration for [from, to).
func BlockWidgetAt(from, to int, w Widget) Decoration {
	return Decoration{From: from, To: to, Kind: KindWidget, Widget: w, Block: true}
}

// Marker resolves the hide-vs-dim policy for syntax markers: markers on
// an edit-mode line stay visible at reduced emphasis, elsewhere they are
// hidden outright. Never drops the decoration entirely.
func Marker(from, to int, editMode bool, dimClass string) Decoration {
	if editMode {
		return Dimmed(from, to, dimClass)
	}
	return Hidden(from, to)
}
