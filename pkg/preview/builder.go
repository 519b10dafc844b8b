package preview

import (
	"sort"

	"github.com/charmbracelet/log"

	"github.com/0010capacity/oxinot/internal/logging"
)

// Builder merges tree-driven and line-driven decorations into one
// ordered sequence and materializes them into a RangeSet. It is the sole
// point where the two dispatch paths are unified; no handler may assume
// a global order relative to another handler's output.
type Builder struct {
	logger *log.Logger
}

// NewBuilder creates a builder.
func NewBuilder() *Builder {
	return &Builder{logger: logging.ForComponent("builder")}
}

// SetLogger replaces the builder's warning logger. Test hook.
func (b *Builder) SetLogger(logger *log.Logger) {
	b.logger = logger
}

// Build sorts the specs and inserts them into a fresh RangeSet.
//
// Sort order is From ascending, then wider range first at equal From:
// when an inner and an outer marker start at the same offset (an opening
// "[[" and the wiki-link it starts), the outer range must precede the
// inner for correct nesting. The sort is stable so equal-width specs
// keep emission order.
//
// A spec that fails insertion is dropped with a warning, never
// propagated: a single bad decoration must not blank the editor.
func (b *Builder) Build(specs []Decoration, docLen int) *RangeSet {
	sorted := make([]Decoration, len(specs))
	copy(sorted, specs)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].From != sorted[j].From {
			return sorted[i].From < sorted[j].From
		}
		return sorted[i].Width() > sorted[j].Width()
	})

	set := NewRangeSet(docLen)
	for _, spec := range sorted {
		if err := set.Insert(spec); err != nil {
			b.logger.Warn("dropping invalid decoration",
				logging.FieldFrom, spec.From,
				logging.FieldTo, spec.To,
				logging.FieldKind, spec.Kind.String(),
				logging.FieldError, err)
		}
	}
	return set
}
