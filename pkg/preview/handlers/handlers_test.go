package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0010capacity/oxinot/pkg/document"
	"github.com/0010capacity/oxinot/pkg/preview"
	"github.com/0010capacity/oxinot/pkg/preview/scan"
	"github.com/0010capacity/oxinot/pkg/preview/widget"
	gm "github.com/0010capacity/oxinot/pkg/syntax/goldmark"
	"github.com/0010capacity/oxinot/pkg/theme"
)

// buildSet runs the full pipeline (parser, scanner, registry, builder)
// over src and returns the decoration set.
func buildSet(t *testing.T, src string, cursor int, focused bool) *preview.RangeSet {
	t.Helper()

	doc := document.New([]byte(src))
	reg := preview.NewRegistry()
	RegisterAll(reg, Deps{Theme: theme.Default()})
	engine := preview.NewEngine(gm.NewProvider(), reg, scan.New())

	set, err := engine.Rebuild(context.Background(), doc, preview.State{
		CursorPos:     cursor,
		EditorFocused: focused,
	})
	require.NoError(t, err)
	return set
}

// newCtx builds a rebuild context over src for direct handler calls.
func newCtx(t *testing.T, src string, cursor int, focused bool) *preview.Context {
	t.Helper()
	doc := document.New([]byte(src))
	return preview.NewContext(doc, doc.CursorAt(cursor), focused)
}

func TestRegisterAll_Order(t *testing.T) {
	reg := preview.NewRegistry()
	RegisterAll(reg, Deps{})

	names := make([]string, 0, reg.Len())
	for _, h := range reg.Handlers() {
		names = append(names, h.Name())
	}

	idx := func(name string) int {
		for i, n := range names {
			if n == name {
				return i
			}
		}
		t.Fatalf("handler %q not registered", name)
		return -1
	}

	assert.Less(t, idx("task-list"), idx("list-item"),
		"task detection must run before the generic bullet")
	assert.Less(t, idx("strong"), idx("emphasis"))
	assert.Less(t, idx("block-embed"), idx("block-ref"))
	assert.Equal(t, 18, reg.Len())
}

func TestPipeline_HeadingPreview(t *testing.T) {
	set := buildSet(t, "# Hello\n", 0, false)

	require.Equal(t, 2, set.Len())
	decs := set.Decorations()

	assert.Equal(t, preview.Hidden(0, 2), decs[0])
	assert.Equal(t, preview.KindStyledText, decs[1].Kind)
	assert.Equal(t, 2, decs[1].From)
	assert.Equal(t, 7, decs[1].To)
	assert.Equal(t, "cm-heading-1", decs[1].Class)
}

func TestPipeline_HeadingEditMode(t *testing.T) {
	set := buildSet(t, "# Hello\n", 3, true)

	require.Equal(t, 2, set.Len())
	decs := set.Decorations()

	// The marker dims instead of hiding; the body style is unchanged.
	assert.Equal(t, preview.Dimmed(0, 2, theme.ClassDim), decs[0])
	assert.Equal(t, "cm-heading-1", decs[1].Class)
}

func TestPipeline_FencedCodeWidget(t *testing.T) {
	set := buildSet(t, "```js\ncode\n```\n", 0, false)

	require.Equal(t, 1, set.Len())
	d := set.Decorations()[0]

	assert.Equal(t, preview.KindWidget, d.Kind)
	assert.True(t, d.Block)
	assert.Equal(t, 0, d.From)
	assert.Equal(t, 14, d.To)

	card, ok := d.Widget.(*widget.CodeCard)
	require.True(t, ok)
	assert.Equal(t, "code", card.Code())
	assert.Equal(t, "js", card.Language())
}

func TestPipeline_FencedCodeCursorInside(t *testing.T) {
	// Cursor inside the span keeps the raw fence visible.
	set := buildSet(t, "```js\ncode\n```\n", 7, true)
	assert.Equal(t, 0, set.Len())
}

func TestPipeline_TaskItem(t *testing.T) {
	set := buildSet(t, "- [ ] task\n", 0, false)

	require.Equal(t, 2, set.Len())
	decs := set.Decorations()

	assert.Equal(t, preview.KindWidget, decs[0].Kind)
	assert.Equal(t, 0, decs[0].From)
	assert.Equal(t, 0, decs[0].To)
	box, ok := decs[0].Widget.(*widget.Checkbox)
	require.True(t, ok)
	assert.False(t, box.Checked())

	assert.Equal(t, preview.Hidden(2, 5), decs[1])
}

func TestPipeline_EmbedNotAloneStaysRaw(t *testing.T) {
	src := "Some !((abc12345-aaaa-bbbb-cccc-ddddeeeeffff)) text\n"
	set := buildSet(t, src, 0, false)

	for _, d := range set.Decorations() {
		assert.NotEqual(t, preview.KindWidget, d.Kind)
	}
}

func TestPipeline_WikiLinkPathPrefix(t *testing.T) {
	set := buildSet(t, "[[Folder/Note]]\n", 0, false)

	require.Equal(t, 4, set.Len())
	decs := set.Decorations()

	assert.Equal(t, preview.Hidden(0, 2), decs[0])
	assert.Equal(t, preview.Hidden(2, 9), decs[1])

	body := decs[2]
	assert.Equal(t, preview.KindStyledText, body.Kind)
	assert.Equal(t, 9, body.From)
	assert.Equal(t, 13, body.To)
	assert.Equal(t, "Folder/Note", body.Data, "navigation keeps the full target")

	assert.Equal(t, preview.Hidden(13, 15), decs[3])
}

func TestPipeline_Idempotent(t *testing.T) {
	src := "# Title\n\n- [x] done\n\nsee [[a/b]] and ==this==\n"

	first := buildSet(t, src, 3, true)
	second := buildSet(t, src, 3, true)

	assert.True(t, first.Equal(second))
}
