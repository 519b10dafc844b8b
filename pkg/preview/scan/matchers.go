package scan

import (
	"regexp"
	"strings"

	"github.com/0010capacity/oxinot/pkg/syntax"
)

var (
	commentPattern = regexp.MustCompile(`%%(.+?)%%`)
	wikiPattern    = regexp.MustCompile(`\[\[([^\[\]|]+)(?:\|([^\[\]|]+))?\]\]`)
	embedPattern   = regexp.MustCompile(`!\(\(([^()\s]+)\)\)`)
	refPattern     = regexp.MustCompile(`\(\(([^()\s]+)\)\)`)

	// Callout types match case-insensitively and are lowercased before
	// the theme lookup, so "[!WARNING]" and "[!warning]" name the same
	// callout. Unknown types still fall back to the note style.
	calloutPattern = regexp.MustCompile(`^>\s*\[!([A-Za-z]+)\]([+-])?\s*(.*)$`)

	highlightPattern = regexp.MustCompile(`==(.+?)==`)
	strikePattern    = regexp.MustCompile(`~~(.+?)~~`)

	footnoteDefPattern = regexp.MustCompile(`^\[\^([A-Za-z0-9_-]+)\]:[ \t]*(.*)$`)
	footnoteRefPattern = regexp.MustCompile(`\[\^([A-Za-z0-9_-]+)\]`)

	rowPattern       = regexp.MustCompile(`^\s*\|.*\|`)
	separatorPattern = regexp.MustCompile(`^\s*\|(?:\s*:?-+:?\s*\|)+\s*$`)

	uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

// validBlockID gates block reference identifiers so hide and widget
// decorations never fire on an in-progress, still-being-typed id:
// at least 8 chars, and either UUID-shaped or at least 16 chars opaque.
// The patterns already exclude whitespace and parens.
func validBlockID(id string) bool {
	if len(id) < 8 {
		return false
	}
	return uuidPattern.MatchString(id) || len(id) >= 16
}

// spans tracks claimed ranges so nested constructs don't double-match
// (refs inside embeds, inline spans inside comments).
type spans [][2]int

func (s spans) covers(from, to int) bool {
	for _, sp := range s {
		if from < sp[1] && to > sp[0] {
			return true
		}
	}
	return false
}

// scanText finds every construct occurrence in one line of text.
// Offsets in the returned matches are relative to the line start.
func scanText(text string, prevRow bool) []match {
	var out []match

	// Line-shaped constructs first. A separator only counts directly
	// under a row; otherwise the same text is an ordinary row.
	if trimmed := strings.TrimSpace(text); trimmed != "" {
		from := strings.Index(text, trimmed)
		to := from + len(trimmed)
		switch {
		case prevRow && separatorPattern.MatchString(text):
			out = append(out, match{
				typeName: syntax.TypeTableSeparator,
				from:     from,
				to:       to,
			})
			return out
		case rowPattern.MatchString(text):
			out = append(out, match{
				typeName: syntax.TypeTableRow,
				from:     from,
				to:       to,
				attrs: map[string]any{
					syntax.AttrColumns: strings.Count(trimmed, "|") - 1,
				},
			})
		}
	}

	if m := calloutPattern.FindStringSubmatchIndex(text); m != nil {
		attrs := map[string]any{
			syntax.AttrCalloutType: strings.ToLower(text[m[2]:m[3]]),
			syntax.AttrCalloutFold: submatch(text, m, 2),
			syntax.AttrTitle:       submatch(text, m, 3),
		}
		titleFrom := len(text)
		if m[6] >= 0 && m[6] < m[7] {
			titleFrom = m[6]
		}
		out = append(out, match{
			typeName: syntax.TypeCalloutLine,
			from:     0,
			to:       len(text),
			attrs:    attrs,
			offsets:  map[string]int{syntax.AttrTitleFrom: titleFrom},
		})
	}

	if m := footnoteDefPattern.FindStringSubmatchIndex(text); m != nil {
		out = append(out, match{
			typeName: syntax.TypeFootnoteDef,
			from:     0,
			to:       len(text),
			attrs:    map[string]any{syntax.AttrLabel: text[m[2]:m[3]]},
		})
	}

	// Comments claim their spans outright: nothing inside a comment
	// renders, so nested constructs are suppressed.
	var claimed spans
	for _, m := range commentPattern.FindAllStringIndex(text, -1) {
		out = append(out, match{
			typeName: syntax.TypeCommentSpan,
			from:     m[0],
			to:       m[1],
		})
		claimed = append(claimed, [2]int{m[0], m[1]})
	}

	for _, m := range wikiPattern.FindAllStringSubmatchIndex(text, -1) {
		if claimed.covers(m[0], m[1]) {
			continue
		}
		out = append(out, match{
			typeName: syntax.TypeWikiLink,
			from:     m[0],
			to:       m[1],
			attrs: map[string]any{
				syntax.AttrTarget: text[m[2]:m[3]],
				syntax.AttrAlias:  submatch(text, m, 2),
			},
		})
		claimed = append(claimed, [2]int{m[0], m[1]})
	}

	// Embeds before refs: the ref pattern also matches inside !((id)).
	for _, m := range embedPattern.FindAllStringSubmatchIndex(text, -1) {
		if claimed.covers(m[0], m[1]) || !validBlockID(text[m[2]:m[3]]) {
			continue
		}
		out = append(out, match{
			typeName: syntax.TypeBlockEmbed,
			from:     m[0],
			to:       m[1],
			attrs: map[string]any{
				syntax.AttrBlockID: text[m[2]:m[3]],
				syntax.AttrAlone:   strings.TrimSpace(text) == text[m[0]:m[1]],
			},
		})
		claimed = append(claimed, [2]int{m[0], m[1]})
	}
	for _, m := range refPattern.FindAllStringSubmatchIndex(text, -1) {
		if claimed.covers(m[0], m[1]) || !validBlockID(text[m[2]:m[3]]) {
			continue
		}
		if m[0] > 0 && text[m[0]-1] == '!' {
			continue
		}
		out = append(out, match{
			typeName: syntax.TypeBlockRef,
			from:     m[0],
			to:       m[1],
			attrs:    map[string]any{syntax.AttrBlockID: text[m[2]:m[3]]},
		})
		claimed = append(claimed, [2]int{m[0], m[1]})
	}

	for _, m := range highlightPattern.FindAllStringIndex(text, -1) {
		if claimed.covers(m[0], m[1]) {
			continue
		}
		out = append(out, match{typeName: syntax.TypeHighlightSpan, from: m[0], to: m[1]})
		claimed = append(claimed, [2]int{m[0], m[1]})
	}
	for _, m := range strikePattern.FindAllStringIndex(text, -1) {
		if claimed.covers(m[0], m[1]) {
			continue
		}
		out = append(out, match{typeName: syntax.TypeStrikethrough, from: m[0], to: m[1]})
		claimed = append(claimed, [2]int{m[0], m[1]})
	}

	defTo := 0
	if m := footnoteDefPattern.FindStringIndex(text); m != nil {
		// Skip the leading "[^id]" of a definition line.
		defTo = strings.IndexByte(text, ':') + 1
	}
	for _, m := range footnoteRefPattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] < defTo || claimed.covers(m[0], m[1]) {
			continue
		}
		out = append(out, match{
			typeName: syntax.TypeFootnoteRef,
			from:     m[0],
			to:       m[1],
			attrs:    map[string]any{syntax.AttrLabel: text[m[2]:m[3]]},
		})
		claimed = append(claimed, [2]int{m[0], m[1]})
	}

	return out
}

// submatch returns the nth submatch of a FindStringSubmatchIndex
// result, or "" when the group did not participate.
func submatch(text string, m []int, n int) string {
	if 2*n+1 >= len(m) || m[2*n] < 0 {
		return ""
	}
	return text[m[2*n]:m[2*n+1]]
}
