package document

// Cursor reduces the host's selection to the single primary head
// position used for marker-visibility decisions.
// Invariant: Line.From <= Pos <= Line.To.
type Cursor struct {
	// Pos is the absolute byte offset of the selection head.
	Pos int

	// Line is the line containing Pos.
	Line LineInfo
}

// CursorAt derives a Cursor for the given offset.
// The offset is clamped into the document so the invariant always holds.
func (s *Snapshot) CursorAt(pos int) Cursor {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s.content) {
		pos = len(s.content)
	}

	ln := s.LineAt(pos)

	// An offset pointing at a newline byte belongs to the line it
	// terminates, not the next one.
	if pos > ln.To {
		pos = ln.To
	}

	return Cursor{Pos: pos, Line: ln}
}

// OnLine reports whether the cursor sits on the given 1-based line number.
func (c Cursor) OnLine(number int) bool {
	return c.Line.Number == number
}
