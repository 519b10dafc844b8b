// Package pretty renders a decorated document for terminal output: it
// provides the Lipgloss style table for the engine's style classes, a
// terminal-backed render delegate for widgets, and a painter that
// applies a decoration set to document text.
package pretty

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/0010capacity/oxinot/pkg/theme"
)

// Styles maps the engine's style classes to terminal renderers.
type Styles struct {
	// Span classes
	Dim           lipgloss.Style
	Emphasis      lipgloss.Style
	Strong        lipgloss.Style
	InlineCode    lipgloss.Style
	Link          lipgloss.Style
	Blockquote    lipgloss.Style
	Highlight     lipgloss.Style
	Strikethrough lipgloss.Style
	Comment       lipgloss.Style
	Footnote      lipgloss.Style
	WikiLink      lipgloss.Style
	BlockRef      lipgloss.Style
	CalloutTitle  lipgloss.Style
	TableCell     lipgloss.Style
	TaskDone      lipgloss.Style
	ListBullet    lipgloss.Style
	Heading       lipgloss.Style

	// Widget chrome
	CardBorder  lipgloss.Style
	CardHeader  lipgloss.Style
	TaskChecked lipgloss.Style
	TaskPending lipgloss.Style

	byClass map[string]lipgloss.Style
}

// NewStyles creates a style table with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	var s *Styles
	if colorEnabled {
		s = newColorStyles()
	} else {
		s = newNoColorStyles()
	}
	s.byClass = map[string]lipgloss.Style{
		theme.ClassDim:           s.Dim,
		theme.ClassEmphasis:      s.Emphasis,
		theme.ClassStrong:        s.Strong,
		theme.ClassInlineCode:    s.InlineCode,
		theme.ClassLink:          s.Link,
		theme.ClassBlockquote:    s.Blockquote,
		theme.ClassHighlight:     s.Highlight,
		theme.ClassStrikethrough: s.Strikethrough,
		theme.ClassComment:       s.Comment,
		theme.ClassFootnote:      s.Footnote,
		theme.ClassWikiLink:      s.WikiLink,
		theme.ClassBlockRef:      s.BlockRef,
		theme.ClassCalloutTitle:  s.CalloutTitle,
		theme.ClassTableCell:     s.TableCell,
		theme.ClassTaskDone:      s.TaskDone,
		"cm-list-bullet":         s.ListBullet,
		"cm-task-checked":        s.TaskChecked,
		"cm-task-unchecked":      s.TaskPending,
	}
	return s
}

func newColorStyles() *Styles {
	return &Styles{
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Emphasis:      lipgloss.NewStyle().Italic(true),
		Strong:        lipgloss.NewStyle().Bold(true),
		InlineCode:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Link:          lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true),
		Blockquote:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Italic(true),
		Highlight:     lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0")),
		Strikethrough: lipgloss.NewStyle().Strikethrough(true),
		Comment:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		Footnote:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		WikiLink:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true),
		BlockRef:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		CalloutTitle:  lipgloss.NewStyle().Bold(true),
		TableCell:     lipgloss.NewStyle(),
		TaskDone:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true),
		ListBullet:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Heading:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),

		CardBorder:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		CardHeader:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		TaskChecked: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		TaskPending: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Dim:           plain,
		Emphasis:      plain,
		Strong:        plain,
		InlineCode:    plain,
		Link:          plain,
		Blockquote:    plain,
		Highlight:     plain,
		Strikethrough: plain,
		Comment:       plain,
		Footnote:      plain,
		WikiLink:      plain,
		BlockRef:      plain,
		CalloutTitle:  plain,
		TableCell:     plain,
		TaskDone:      plain,
		ListBullet:    plain,
		Heading:       plain,
		CardBorder:    plain,
		CardHeader:    plain,
		TaskChecked:   plain,
		TaskPending:   plain,
	}
}

// ClassStyle resolves a style class name. Heading classes share one
// style; unknown classes render plain.
func (s *Styles) ClassStyle(class string) lipgloss.Style {
	if st, ok := s.byClass[class]; ok {
		return st
	}
	if strings.HasPrefix(class, "cm-heading-") {
		return s.Heading
	}
	return lipgloss.NewStyle()
}

// IsColorEnabled determines if color should be enabled based on mode
// and writer. Mode values: "auto" (default), "always", "never". In auto
// mode, color is enabled only if the writer is a TTY and NO_COLOR is
// not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
