package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0010capacity/oxinot/pkg/preview"
	"github.com/0010capacity/oxinot/pkg/syntax"
	"github.com/0010capacity/oxinot/pkg/theme"
)

func TestTableHandler_Row(t *testing.T) {
	h := NewTableHandler()
	src := "| one | two |\n"
	ctx := newCtx(t, src, 0, false)

	node := &syntax.Node{TypeName: syntax.TypeTableRow, From: 0, To: 13}
	decs, handled := h.Handle(node, ctx)
	require.True(t, handled)

	var pipes, cells []preview.Decoration
	for _, d := range decs {
		switch d.Kind {
		case preview.KindStyledText:
			cells = append(cells, d)
		default:
			pipes = append(pipes, d)
		}
	}

	require.Len(t, pipes, 3)
	for _, p := range pipes {
		assert.Equal(t, preview.KindHidden, p.Kind)
		assert.Equal(t, 1, p.Width())
		assert.Equal(t, "|", src[p.From:p.To])
	}

	require.Len(t, cells, 2)
	assert.Equal(t, "one", src[cells[0].From:cells[0].To], "padding trimmed")
	assert.Equal(t, "two", src[cells[1].From:cells[1].To])
	assert.Equal(t, theme.ClassTableCell, cells[0].Class)
}

func TestTableHandler_RowEditModeDimsPipes(t *testing.T) {
	h := NewTableHandler()
	ctx := newCtx(t, "| a | b |\n", 2, true)

	node := &syntax.Node{TypeName: syntax.TypeTableRow, From: 0, To: 9}
	decs, handled := h.Handle(node, ctx)
	require.True(t, handled)

	for _, d := range decs {
		if d.Kind != preview.KindStyledText {
			assert.Equal(t, preview.KindDimmed, d.Kind)
		}
	}
}

func TestTableHandler_Separator(t *testing.T) {
	h := NewTableHandler()
	src := "| --- | :-: |\n"
	ctx := newCtx(t, src, 0, false)

	node := &syntax.Node{TypeName: syntax.TypeTableSeparator, From: 0, To: 13}
	decs, handled := h.Handle(node, ctx)
	require.True(t, handled)
	require.Len(t, decs, 1)
	assert.Equal(t, preview.Hidden(0, 13), decs[0])
}
