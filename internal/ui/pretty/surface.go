package pretty

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/0010capacity/oxinot/pkg/document"
	"github.com/0010capacity/oxinot/pkg/preview"
)

// Surface paints a document and its decoration set into terminal text.
// It approximates the live-preview rendering: hidden spans vanish,
// dimmed and styled spans pick up their class styles, widgets render
// their element trees in place of the covered text.
type Surface struct {
	styles   *Styles
	delegate *Delegate
	width    int
}

// NewSurface creates a paint surface backed by the given delegate.
func NewSurface(styles *Styles, delegate *Delegate) *Surface {
	return &Surface{styles: styles, delegate: delegate, width: terminalWidth()}
}

// terminalWidth returns the stdout width, or 80 off-terminal. Block
// widget cards clip to it.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// Delegate exposes the surface's render delegate for engine wiring.
func (s *Surface) Delegate() *Delegate {
	return s.delegate
}

// Paint applies the decoration set to the document text. Decorations
// nested under an already painted span are skipped; the outermost one
// wins, matching the set's (From asc, width desc) order.
func (s *Surface) Paint(doc *document.Snapshot, set *preview.RangeSet) string {
	text := doc.Text()
	decs := set.Decorations()

	var b strings.Builder
	pos := 0
	for i, d := range decs {
		if d.From < pos {
			continue
		}
		b.WriteString(text[pos:d.From])
		switch d.Kind {
		case preview.KindHidden:
			s.paintHiddenData(&b, decs, i)
		case preview.KindDimmed:
			b.WriteString(s.styles.Dim.Render(text[d.From:d.To]))
		case preview.KindStyledText:
			b.WriteString(s.styles.ClassStyle(d.Class).Render(text[d.From:d.To]))
		case preview.KindWidget:
			s.paintWidget(&b, text, d)
		}
		pos = d.To
	}
	b.WriteString(text[pos:])

	s.delegate.Flush()
	return b.String()
}

// paintHiddenData renders replacement content a hide decoration
// carries, like a callout's resolved icon and title. When styled title
// text follows directly, only the icon shows to avoid doubling it.
func (s *Surface) paintHiddenData(b *strings.Builder, decs []preview.Decoration, i int) {
	d := decs[i]
	if d.Data == "" {
		return
	}
	head := d.Data
	if i+1 < len(decs) && decs[i+1].From == d.To && decs[i+1].Kind == preview.KindStyledText {
		if sp := strings.IndexByte(head, ' '); sp >= 0 {
			head = head[:sp]
		}
	}
	b.WriteString(s.styles.CalloutTitle.Render(head))
	b.WriteString(" ")
}

// paintWidget mounts the widget and renders its element tree. A mount
// failure leaves the covered text raw.
func (s *Surface) paintWidget(b *strings.Builder, text string, d preview.Decoration) {
	el, err := d.Widget.Mount()
	if err != nil {
		b.WriteString(text[d.From:d.To])
		return
	}
	host, ok := el.(*Element)
	if !ok {
		b.WriteString(text[d.From:d.To])
		return
	}
	out := host.Render(s.styles)
	if d.Block {
		out = s.clipBlock(out)
		if out != "" && !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
	}
	b.WriteString(out)
}

// clipBlock truncates block widget lines to the terminal width.
func (s *Surface) clipBlock(out string) string {
	if s.width <= 0 {
		return out
	}
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		// Styled lines carry escape sequences; clipping those would cut
		// a sequence in half, so only plain lines clip.
		if len(line) > s.width && !strings.ContainsRune(line, '\x1b') {
			lines[i] = line[:s.width]
		}
	}
	return strings.Join(lines, "\n")
}

// FormatDecorations renders a debug dump of the set, one entry per
// line: span, kind, class, and any carried metadata.
func (s *Surface) FormatDecorations(set *preview.RangeSet) string {
	var b strings.Builder
	for _, d := range set.Decorations() {
		b.WriteString(fmt.Sprintf("  %5d-%-5d  %-8s", d.From, d.To, d.Kind))
		if d.Class != "" {
			b.WriteString("  " + s.styles.Dim.Render(d.Class))
		}
		if d.Style != "" {
			b.WriteString("  " + s.styles.Dim.Render(d.Style))
		}
		if d.Data != "" {
			b.WriteString("  " + d.Data)
		}
		if d.Widget != nil {
			kind := "inline widget"
			if d.Block {
				kind = "block widget"
			}
			b.WriteString("  " + s.styles.Dim.Render(kind))
		}
		b.WriteString("\n")
	}
	return b.String()
}
