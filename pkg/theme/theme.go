// Package theme holds the per-construct style tables used by decoration
// handlers: heading scale, callout type table, and the class names the
// rendering surface maps to concrete styles. Tables are read-only after
// startup and shared across rebuilds.
package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Style class names emitted on decorations. The rendering surface owns
// their concrete appearance.
const (
	ClassDim           = "cm-dim"
	ClassEmphasis      = "cm-emphasis"
	ClassStrong        = "cm-strong"
	ClassInlineCode    = "cm-inline-code"
	ClassLink          = "cm-link"
	ClassBlockquote    = "cm-blockquote"
	ClassHighlight     = "cm-highlight"
	ClassStrikethrough = "cm-strikethrough"
	ClassComment       = "cm-comment"
	ClassFootnote      = "cm-footnote"
	ClassWikiLink      = "cm-wikilink"
	ClassBlockRef      = "cm-blockref"
	ClassCalloutTitle  = "cm-callout-title"
	ClassTableCell     = "cm-table-cell"
	ClassTaskDone      = "cm-task-done"
)

// HeadingClass returns the level-scaled heading class, "cm-heading-1"
// through "cm-heading-6".
func HeadingClass(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return fmt.Sprintf("cm-heading-%d", level)
}

// CalloutStyle describes one callout type's appearance.
type CalloutStyle struct {
	// Color is an ANSI-256 or hex color understood by the surface.
	Color string `yaml:"color"`

	// Icon is the glyph shown before the callout title.
	Icon string `yaml:"icon"`
}

// Theme bundles the configurable style tables.
type Theme struct {
	// HeadingScale maps heading level (index 0 = H1) to a relative
	// font scale hint for the surface.
	HeadingScale []float64 `yaml:"heading_scale"`

	// Callouts maps lowercase callout type to its style. Unknown types
	// fall back to the "note" entry.
	Callouts map[string]CalloutStyle `yaml:"callouts"`
}

// Default returns the built-in theme.
func Default() *Theme {
	return &Theme{
		HeadingScale: []float64{1.6, 1.4, 1.25, 1.15, 1.05, 1.0},
		Callouts: map[string]CalloutStyle{
			"note":      {Color: "12", Icon: "ℹ"},
			"info":      {Color: "12", Icon: "ℹ"},
			"tip":       {Color: "14", Icon: "✦"},
			"success":   {Color: "10", Icon: "✓"},
			"question":  {Color: "11", Icon: "?"},
			"warning":   {Color: "11", Icon: "⚠"},
			"caution":   {Color: "11", Icon: "⚠"},
			"danger":    {Color: "9", Icon: "✗"},
			"error":     {Color: "9", Icon: "✗"},
			"bug":       {Color: "9", Icon: "◉"},
			"example":   {Color: "13", Icon: "▸"},
			"quote":     {Color: "8", Icon: "❝"},
			"abstract":  {Color: "14", Icon: "✱"},
			"todo":      {Color: "12", Icon: "☐"},
			"important": {Color: "13", Icon: "!"},
		},
	}
}

// Load reads a YAML theme file layered over the defaults: entries in the
// file replace or extend the built-in tables.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}

	var overlay Theme
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}

	t := Default()
	if len(overlay.HeadingScale) > 0 {
		t.HeadingScale = overlay.HeadingScale
	}
	for name, style := range overlay.Callouts {
		t.Callouts[name] = style
	}
	return t, nil
}

// Callout resolves a callout type to its style, falling back to "note"
// for unknown types.
func (t *Theme) Callout(typ string) CalloutStyle {
	if style, ok := t.Callouts[typ]; ok {
		return style
	}
	return t.Callouts["note"]
}

// Scale returns the font scale hint for a heading level.
func (t *Theme) Scale(level int) float64 {
	if level < 1 || level > len(t.HeadingScale) {
		return 1.0
	}
	return t.HeadingScale[level-1]
}

// Known reports whether the callout type is in the table.
func (t *Theme) Known(typ string) bool {
	_, ok := t.Callouts[typ]
	return ok
}
