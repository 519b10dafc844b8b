package preview

import (
	"errors"
	"fmt"
)

// RangeSet is the materialized, ordered decoration set consumed by the
// rendering surface's paint step. It is replaced atomically on each
// rebuild, never patched incrementally.
type RangeSet struct {
	docLen int
	decs   []Decoration
}

// Structural insertion errors.
var (
	// ErrInvertedRange reports from > to.
	ErrInvertedRange = errors.New("decoration range inverted")

	// ErrZeroWidth reports a zero-width non-widget decoration.
	ErrZeroWidth = errors.New("zero-width decoration is not a widget")

	// ErrOutOfBounds reports a range outside the document.
	ErrOutOfBounds = errors.New("decoration range out of document bounds")

	// ErrUnordered reports an insert that violates the sort order.
	ErrUnordered = errors.New("decoration inserted out of order")
)

// NewRangeSet creates an empty set for a document of the given length.
func NewRangeSet(docLen int) *RangeSet {
	return &RangeSet{docLen: docLen}
}

// Insert appends a decoration, enforcing the structural invariants:
// From <= To, zero-width only for widgets, range inside the document,
// and (From asc, width desc) order relative to the previous insert.
func (rs *RangeSet) Insert(d Decoration) error {
	if d.From > d.To {
		return fmt.Errorf("%w: [%d, %d)", ErrInvertedRange, d.From, d.To)
	}
	if d.From == d.To && d.Kind != KindWidget {
		return fmt.Errorf("%w: %s at %d", ErrZeroWidth, d.Kind, d.From)
	}
	if d.From < 0 || d.To > rs.docLen {
		return fmt.Errorf("%w: [%d, %d) in doc of %d", ErrOutOfBounds, d.From, d.To, rs.docLen)
	}
	if n := len(rs.decs); n > 0 {
		prev := rs.decs[n-1]
		if d.From < prev.From || (d.From == prev.From && d.Width() > prev.Width()) {
			return fmt.Errorf("%w: [%d, %d) after [%d, %d)", ErrUnordered,
				d.From, d.To, prev.From, prev.To)
		}
	}
	rs.decs = append(rs.decs, d)
	return nil
}

// Len returns the number of decorations in the set.
func (rs *RangeSet) Len() int {
	return len(rs.decs)
}

// Decorations returns the ordered decoration list. Callers must not
// mutate the returned slice.
func (rs *RangeSet) Decorations() []Decoration {
	return rs.decs
}

// DecorationsInRange returns every decoration intersecting [from, to).
func (rs *RangeSet) DecorationsInRange(from, to int) []Decoration {
	var out []Decoration
	for _, d := range rs.decs {
		if d.From >= to {
			// Sorted by From; nothing later can intersect.
			break
		}
		if d.From == d.To {
			// A point widget at p intersects when from <= p < to.
			if d.From >= from {
				out = append(out, d)
			}
			continue
		}
		if d.To > from {
			out = append(out, d)
		}
	}
	return out
}

// At returns the decorations whose range contains the offset.
func (rs *RangeSet) At(offset int) []Decoration {
	var out []Decoration
	for _, d := range rs.decs {
		if d.From > offset {
			break
		}
		if offset >= d.From && (offset < d.To || d.From == d.To && offset == d.From) {
			out = append(out, d)
		}
	}
	return out
}

// Equal reports whether two sets hold identical decorations. Widget
// payloads compare by content identity (Widget.Eq), so two rebuilds of
// an unchanged document compare equal even though widget instances are
// fresh.
func (rs *RangeSet) Equal(other *RangeSet) bool {
	if other == nil || len(rs.decs) != len(other.decs) {
		return false
	}
	for i, d := range rs.decs {
		o := other.decs[i]
		if d.From != o.From || d.To != o.To || d.Kind != o.Kind ||
			d.Class != o.Class || d.Style != o.Style ||
			d.Data != o.Data || d.Block != o.Block {
			return false
		}
		switch {
		case d.Widget == nil && o.Widget == nil:
		case d.Widget == nil || o.Widget == nil:
			return false
		case !d.Widget.Eq(o.Widget):
			return false
		}
	}
	return true
}
