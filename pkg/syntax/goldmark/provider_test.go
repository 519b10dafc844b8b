package goldmark

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0010capacity/oxinot/pkg/document"
	"github.com/0010capacity/oxinot/pkg/syntax"
)

func parse(t *testing.T, src string) *syntax.Node {
	t.Helper()
	root, err := NewProvider().Tree(context.Background(), document.New([]byte(src)))
	require.NoError(t, err)
	require.Equal(t, syntax.TypeDocument, root.TypeName)
	return root
}

// firstOfType returns the first node of the given type in pre-order.
func firstOfType(root *syntax.Node, typeName string) *syntax.Node {
	var found *syntax.Node
	syntax.Walk(root, func(n *syntax.Node) bool {
		if found == nil && n.TypeName == typeName {
			found = n
		}
		return found == nil
	})
	return found
}

func TestTree_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider().Tree(ctx, document.New([]byte("# x")))
	assert.Error(t, err)
}

func TestTree_DocumentSpan(t *testing.T) {
	src := "# Title\n\nbody\n"
	root := parse(t, src)

	assert.Equal(t, 0, root.From)
	assert.Equal(t, len(src), root.To)
}

func TestMapper_Heading(t *testing.T) {
	root := parse(t, "## Title\n")

	h := firstOfType(root, syntax.TypeHeading)
	require.NotNil(t, h)
	assert.Equal(t, 0, h.From, "span starts at the marker, not the text")
	assert.Equal(t, 8, h.To)
	assert.Equal(t, 2, h.AttrInt(syntax.AttrLevel))
}

func TestMapper_Paragraph(t *testing.T) {
	root := parse(t, "hello world\n")

	p := firstOfType(root, syntax.TypeParagraph)
	require.NotNil(t, p)
	assert.Equal(t, 0, p.From)
	assert.Equal(t, 11, p.To, "span excludes the trailing newline")
}

func TestMapper_EmphasisAndStrong(t *testing.T) {
	root := parse(t, "*one* and **two**\n")

	em := firstOfType(root, syntax.TypeEmphasis)
	require.NotNil(t, em)
	assert.Equal(t, 0, em.From)
	assert.Equal(t, 5, em.To, "span includes both markers")
	assert.Equal(t, 1, em.AttrInt(syntax.AttrTextFrom))
	assert.Equal(t, 4, em.AttrInt(syntax.AttrTextTo))

	st := firstOfType(root, syntax.TypeStrong)
	require.NotNil(t, st)
	assert.Equal(t, 10, st.From)
	assert.Equal(t, 17, st.To)
	assert.Equal(t, 12, st.AttrInt(syntax.AttrTextFrom))
	assert.Equal(t, 15, st.AttrInt(syntax.AttrTextTo))
}

func TestMapper_CodeSpan(t *testing.T) {
	root := parse(t, "run `go vet` now\n")

	cs := firstOfType(root, syntax.TypeCodeSpan)
	require.NotNil(t, cs)
	assert.Equal(t, 4, cs.From)
	assert.Equal(t, 12, cs.To)
	assert.Equal(t, 5, cs.AttrInt(syntax.AttrTextFrom))
	assert.Equal(t, 11, cs.AttrInt(syntax.AttrTextTo))
}

func TestMapper_Link(t *testing.T) {
	src := "see [docs](https://example.com) here\n"
	root := parse(t, src)

	link := firstOfType(root, syntax.TypeLink)
	require.NotNil(t, link)
	assert.Equal(t, 4, link.From)
	assert.Equal(t, 31, link.To)
	assert.Equal(t, "https://example.com", link.AttrString(syntax.AttrURL))
	assert.Equal(t, 5, link.AttrInt(syntax.AttrTextFrom))
	assert.Equal(t, 9, link.AttrInt(syntax.AttrTextTo))
}

func TestMapper_FencedCode_Closed(t *testing.T) {
	src := "```go\ncode\n```\n"
	root := parse(t, src)

	fc := firstOfType(root, syntax.TypeFencedCode)
	require.NotNil(t, fc)
	assert.Equal(t, 0, fc.From)
	assert.Equal(t, 14, fc.To, "span ends at the closing fence")
	assert.True(t, fc.AttrBool(syntax.AttrClosed))
	assert.Equal(t, "go", fc.AttrString(syntax.AttrInfo))
	assert.Equal(t, 6, fc.AttrInt(syntax.AttrCodeFrom))
	assert.Equal(t, 10, fc.AttrInt(syntax.AttrCodeTo))
}

func TestMapper_FencedCode_Unclosed(t *testing.T) {
	src := "```go\ncode"
	root := parse(t, src)

	fc := firstOfType(root, syntax.TypeFencedCode)
	require.NotNil(t, fc)
	assert.False(t, fc.AttrBool(syntax.AttrClosed))
	assert.Equal(t, 0, fc.From)
	assert.Equal(t, 10, fc.To)
}

func TestMapper_ListAndItems(t *testing.T) {
	src := "- alpha\n- beta\n"
	root := parse(t, src)

	list := firstOfType(root, syntax.TypeList)
	require.NotNil(t, list)
	assert.False(t, list.AttrBool(syntax.AttrOrdered))

	item := firstOfType(list, syntax.TypeListItem)
	require.NotNil(t, item)
	assert.Equal(t, 0, item.From, "item span includes the bullet")
}

func TestMapper_OrderedList(t *testing.T) {
	root := parse(t, "1. first\n2. second\n")

	list := firstOfType(root, syntax.TypeList)
	require.NotNil(t, list)
	assert.True(t, list.AttrBool(syntax.AttrOrdered))
}

func TestMapper_Blockquote(t *testing.T) {
	root := parse(t, "> quoted text\n")

	bq := firstOfType(root, syntax.TypeBlockquote)
	require.NotNil(t, bq)
	assert.Equal(t, 0, bq.From, "span includes the '>' marker")
	assert.Equal(t, 13, bq.To)
}

func TestMapper_ThematicBreakDropped(t *testing.T) {
	root := parse(t, "a\n\n---\n\nb\n")

	assert.Nil(t, firstOfType(root, syntax.TypeThematicBreak),
		"constructs with no usable position map to nothing")
}
