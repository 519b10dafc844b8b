// Package document provides the immutable text snapshot the rendering
// engine reads: content addressable by absolute byte offset and by line
// number, plus cursor derivation.
package document

import "sort"

// LineInfo describes a single line of a snapshot.
// From/To are absolute byte offsets; To excludes the line terminator.
type LineInfo struct {
	// From is the byte offset of the first character of the line.
	From int

	// To is the byte offset just past the last character, excluding
	// the newline.
	To int

	// Text is the line content without the terminator.
	Text string

	// Number is the 1-based line number.
	Number int
}

// Len returns the line length in bytes, excluding the terminator.
func (l LineInfo) Len() int {
	return l.To - l.From
}

// Contains reports whether the offset falls on this line.
// The end-of-line position is considered part of the line so a cursor
// sitting after the last character still belongs to it.
func (l LineInfo) Contains(offset int) bool {
	return offset >= l.From && offset <= l.To
}

// line is the internal index entry. endOffset includes the terminator.
type line struct {
	start        int
	newlineStart int
	endOffset    int
}

// Snapshot is an immutable view of the document text.
// The engine only ever reads a Snapshot; edits are owned by the host
// text surface, which produces a fresh Snapshot per change.
type Snapshot struct {
	content []byte
	lines   []line
}

// New builds a Snapshot with a full line index over content.
// Both LF and CRLF terminators are handled.
func New(content []byte) *Snapshot {
	buf := make([]byte, len(content))
	copy(buf, content)

	s := &Snapshot{content: buf}

	lineStart := 0
	for idx, ch := range buf {
		if ch == '\n' {
			newlineStart := idx
			if idx > 0 && buf[idx-1] == '\r' {
				newlineStart = idx - 1
			}
			s.lines = append(s.lines, line{
				start:        lineStart,
				newlineStart: newlineStart,
				endOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Last line may not end with a newline. An empty document still
	// has one (empty) line so cursor derivation always succeeds.
	if lineStart <= len(buf) {
		s.lines = append(s.lines, line{
			start:        lineStart,
			newlineStart: len(buf),
			endOffset:    len(buf),
		})
	}

	return s
}

// Len returns the document length in bytes.
func (s *Snapshot) Len() int {
	return len(s.content)
}

// Text returns the full document text.
func (s *Snapshot) Text() string {
	return string(s.content)
}

// Slice returns the text in [from, to). Out-of-range bounds are clamped.
func (s *Snapshot) Slice(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(s.content) {
		to = len(s.content)
	}
	if from >= to {
		return ""
	}
	return string(s.content[from:to])
}

// LineCount returns the number of lines in the snapshot.
func (s *Snapshot) LineCount() int {
	return len(s.lines)
}

// Line returns the LineInfo for a 1-based line number.
// Returns a zero LineInfo if the number is out of range.
func (s *Snapshot) Line(number int) LineInfo {
	if number < 1 || number > len(s.lines) {
		return LineInfo{}
	}
	return s.lineInfo(number - 1)
}

// LineAt returns the LineInfo containing the given byte offset.
// Offsets past the end of the document resolve to the last line.
func (s *Snapshot) LineAt(offset int) LineInfo {
	if len(s.lines) == 0 {
		return LineInfo{}
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.content) {
		return s.lineInfo(len(s.lines) - 1)
	}

	idx := sort.Search(len(s.lines), func(i int) bool {
		return s.lines[i].endOffset > offset
	})
	if idx >= len(s.lines) {
		idx = len(s.lines) - 1
	}
	return s.lineInfo(idx)
}

func (s *Snapshot) lineInfo(idx int) LineInfo {
	ln := s.lines[idx]
	return LineInfo{
		From:   ln.start,
		To:     ln.newlineStart,
		Text:   string(s.content[ln.start:ln.newlineStart]),
		Number: idx + 1,
	}
}
