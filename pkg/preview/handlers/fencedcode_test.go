package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0010capacity/oxinot/pkg/preview"
	"github.com/0010capacity/oxinot/pkg/preview/widget"
	"github.com/0010capacity/oxinot/pkg/syntax"
)

func fenceNode(from, to int, closed bool, codeFrom, codeTo int, info string) *syntax.Node {
	n := &syntax.Node{TypeName: syntax.TypeFencedCode, From: from, To: to}
	n.SetAttr(syntax.AttrClosed, closed)
	n.SetAttr(syntax.AttrCodeFrom, codeFrom)
	n.SetAttr(syntax.AttrCodeTo, codeTo)
	n.SetAttr(syntax.AttrInfo, info)
	return n
}

func TestFencedCodeHandler_ClosedBlock(t *testing.T) {
	h := NewFencedCodeHandler(nil)
	src := "```go\nfmt.Println()\n```\n"
	ctx := newCtx(t, src, 0, false)

	decs, handled := h.Handle(fenceNode(0, 23, true, 6, 19, "go"), ctx)
	require.True(t, handled)
	require.Len(t, decs, 1)

	d := decs[0]
	assert.Equal(t, preview.KindWidget, d.Kind)
	assert.True(t, d.Block)

	card, ok := d.Widget.(*widget.CodeCard)
	require.True(t, ok)
	assert.Equal(t, "fmt.Println()", card.Code())
	assert.Equal(t, "go", card.Language())
}

func TestFencedCodeHandler_UnclosedStaysRaw(t *testing.T) {
	h := NewFencedCodeHandler(nil)
	src := "```go\nfmt.Println()\n"
	ctx := newCtx(t, src, 0, false)

	decs, handled := h.Handle(fenceNode(0, 19, false, 6, 19, "go"), ctx)
	assert.True(t, handled)
	assert.Nil(t, decs)
}

func TestFencedCodeHandler_CursorAtBoundaryStaysRaw(t *testing.T) {
	h := NewFencedCodeHandler(nil)
	src := "```go\ncode\n```\n"
	ctx := newCtx(t, src, 14, true)

	// Exclusivity includes the span end.
	decs, handled := h.Handle(fenceNode(0, 14, true, 6, 10, "go"), ctx)
	assert.True(t, handled)
	assert.Nil(t, decs)
}

func TestFencedCodeHandler_SharedFenceLineStaysRaw(t *testing.T) {
	h := NewFencedCodeHandler(nil)
	src := "```go\ncode\n``` trailing\n"
	ctx := newCtx(t, src, 0, false)

	decs, handled := h.Handle(fenceNode(0, 23, true, 6, 10, "go"), ctx)
	assert.True(t, handled)
	assert.Nil(t, decs)
}

func TestInfoLanguage(t *testing.T) {
	assert.Equal(t, "go", infoLanguage("go"))
	assert.Equal(t, "js", infoLanguage("JS {highlight}"))
	assert.Equal(t, "", infoLanguage("   "))
}
