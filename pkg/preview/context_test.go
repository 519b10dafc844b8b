package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/0010capacity/oxinot/pkg/document"
)

func TestContext_EditMode(t *testing.T) {
	doc := document.New([]byte("alpha\nbeta\ngamma"))

	tests := []struct {
		name    string
		cursor  int
		focused bool
		line    int
		want    bool
	}{
		{"focused cursor line", 7, true, 2, true},
		{"focused other line", 7, true, 1, false},
		{"unfocused cursor line", 7, false, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext(doc, doc.CursorAt(tt.cursor), tt.focused)
			assert.Equal(t, tt.want, ctx.EditMode(tt.line))
		})
	}
}

func TestContext_EditModeAt(t *testing.T) {
	doc := document.New([]byte("alpha\nbeta\ngamma"))
	ctx := NewContext(doc, doc.CursorAt(8), true)

	assert.True(t, ctx.EditModeAt(6), "offset on the cursor line")
	assert.True(t, ctx.EditModeAt(10), "line end still counts")
	assert.False(t, ctx.EditModeAt(0))
	assert.False(t, ctx.EditModeAt(12))
}

func TestContext_Push(t *testing.T) {
	doc := document.New([]byte("x"))
	ctx := NewContext(doc, doc.CursorAt(0), false)

	assert.Empty(t, ctx.Decorations())

	ctx.Push(Hidden(0, 1))
	ctx.Push(Styled(0, 1, "cm-strong"), Dimmed(0, 1, "cm-dim"))

	assert.Len(t, ctx.Decorations(), 3)
}

func TestMarker(t *testing.T) {
	m := Marker(2, 4, false, "cm-dim")
	assert.Equal(t, KindHidden, m.Kind)

	m = Marker(2, 4, true, "cm-dim")
	assert.Equal(t, KindDimmed, m.Kind)
	assert.Equal(t, "cm-dim", m.Class)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "hidden", KindHidden.String())
	assert.Equal(t, "dimmed", KindDimmed.String())
	assert.Equal(t, "styled", KindStyledText.String())
	assert.Equal(t, "widget", KindWidget.String())
}
