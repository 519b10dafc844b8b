package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0010capacity/oxinot/pkg/document"
	"github.com/0010capacity/oxinot/pkg/syntax"
)

const (
	uuidID   = "0f9c2d1e-4b5a-6c7d-8e9f-0a1b2c3d4e5f"
	opaqueID = "abcdefghijklmnop"
)

func scanOne(t *testing.T, text string) []*syntax.Node {
	t.Helper()
	doc := document.New([]byte(text))
	return New().ScanLine(doc.Line(1), "")
}

func typesOf(nodes []*syntax.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.TypeName)
	}
	return out
}

func TestScanLine_WikiLink(t *testing.T) {
	nodes := scanOne(t, "see [[projects/notes]] here")
	require.Len(t, nodes, 1)

	n := nodes[0]
	assert.Equal(t, syntax.TypeWikiLink, n.TypeName)
	assert.Equal(t, 4, n.From)
	assert.Equal(t, 22, n.To)
	assert.Equal(t, "projects/notes", n.AttrString(syntax.AttrTarget))
	assert.Equal(t, "", n.AttrString(syntax.AttrAlias))
}

func TestScanLine_WikiLinkAlias(t *testing.T) {
	nodes := scanOne(t, "[[a/b/c|shown]]")
	require.Len(t, nodes, 1)
	assert.Equal(t, "a/b/c", nodes[0].AttrString(syntax.AttrTarget))
	assert.Equal(t, "shown", nodes[0].AttrString(syntax.AttrAlias))
}

func TestScanLine_BlockRefIDGating(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"uuid shaped", uuidID, true},
		{"long opaque", opaqueID, true},
		{"exactly sixteen", "0123456789abcdef", true},
		{"too short", "abc", false},
		{"eight but not uuid", "abcdefgh", false},
		{"fifteen opaque", "abcdefghijklmno", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := scanOne(t, "ref (("+tt.id+")) end")
			if !tt.want {
				assert.Empty(t, nodes, "in-progress ids never fire")
				return
			}
			require.Len(t, nodes, 1)
			assert.Equal(t, syntax.TypeBlockRef, nodes[0].TypeName)
			assert.Equal(t, tt.id, nodes[0].AttrString(syntax.AttrBlockID))
		})
	}
}

func TestScanLine_BlockEmbed(t *testing.T) {
	nodes := scanOne(t, "!(("+uuidID+"))")
	require.Len(t, nodes, 1)

	n := nodes[0]
	assert.Equal(t, syntax.TypeBlockEmbed, n.TypeName)
	assert.Equal(t, uuidID, n.AttrString(syntax.AttrBlockID))
	assert.True(t, n.AttrBool(syntax.AttrAlone))
}

func TestScanLine_BlockEmbedNotAlone(t *testing.T) {
	nodes := scanOne(t, "text !(("+uuidID+")) more")
	require.Len(t, nodes, 1)
	assert.Equal(t, syntax.TypeBlockEmbed, nodes[0].TypeName)
	assert.False(t, nodes[0].AttrBool(syntax.AttrAlone))
}

func TestScanLine_EmbedNotDoubleMatchedAsRef(t *testing.T) {
	nodes := scanOne(t, "!(("+uuidID+"))")
	require.Len(t, nodes, 1, "the embed's inner ((id)) is not a second match")
}

func TestScanLine_Callout(t *testing.T) {
	nodes := scanOne(t, "> [!warning] Watch out")
	require.Len(t, nodes, 1)

	n := nodes[0]
	assert.Equal(t, syntax.TypeCalloutLine, n.TypeName)
	assert.Equal(t, "warning", n.AttrString(syntax.AttrCalloutType))
	assert.Equal(t, "", n.AttrString(syntax.AttrCalloutFold))
	assert.Equal(t, "Watch out", n.AttrString(syntax.AttrTitle))
	assert.Equal(t, 13, n.AttrInt(syntax.AttrTitleFrom))
}

func TestScanLine_CalloutFoldAndCase(t *testing.T) {
	nodes := scanOne(t, "> [!NOTE]- ")
	require.Len(t, nodes, 1)

	n := nodes[0]
	assert.Equal(t, "note", n.AttrString(syntax.AttrCalloutType), "type is lowercased")
	assert.Equal(t, "-", n.AttrString(syntax.AttrCalloutFold))
	assert.Equal(t, "", n.AttrString(syntax.AttrTitle))
}

func TestScanLine_Comment(t *testing.T) {
	nodes := scanOne(t, "keep %%secret%% keep")
	require.Len(t, nodes, 1)
	assert.Equal(t, syntax.TypeCommentSpan, nodes[0].TypeName)
	assert.Equal(t, 5, nodes[0].From)
	assert.Equal(t, 15, nodes[0].To)
}

func TestScanLine_CommentSuppressesInner(t *testing.T) {
	nodes := scanOne(t, "%% [[hidden]] ==x== %%")
	assert.Equal(t, []string{syntax.TypeCommentSpan}, typesOf(nodes),
		"constructs inside a comment never render")
}

func TestScanLine_HighlightAndStrikethrough(t *testing.T) {
	nodes := scanOne(t, "==bright== and ~~gone~~")
	require.Len(t, nodes, 2)
	assert.Equal(t, syntax.TypeHighlightSpan, nodes[0].TypeName)
	assert.Equal(t, 0, nodes[0].From)
	assert.Equal(t, 10, nodes[0].To)
	assert.Equal(t, syntax.TypeStrikethrough, nodes[1].TypeName)
	assert.Equal(t, 15, nodes[1].From)
	assert.Equal(t, 23, nodes[1].To)
}

func TestScanLine_FootnoteRef(t *testing.T) {
	nodes := scanOne(t, "claim[^src] made")
	require.Len(t, nodes, 1)
	assert.Equal(t, syntax.TypeFootnoteRef, nodes[0].TypeName)
	assert.Equal(t, "src", nodes[0].AttrString(syntax.AttrLabel))
	assert.Equal(t, 5, nodes[0].From)
	assert.Equal(t, 11, nodes[0].To)
}

func TestScanLine_FootnoteDef(t *testing.T) {
	nodes := scanOne(t, "[^src]: the source")
	require.Len(t, nodes, 1)
	assert.Equal(t, syntax.TypeFootnoteDef, nodes[0].TypeName)
	assert.Equal(t, "src", nodes[0].AttrString(syntax.AttrLabel))
	assert.Equal(t, 0, nodes[0].From)
	assert.Equal(t, 18, nodes[0].To)
}

func TestScanLine_TableRow(t *testing.T) {
	nodes := scanOne(t, "| one | two |")
	require.Len(t, nodes, 1)
	assert.Equal(t, syntax.TypeTableRow, nodes[0].TypeName)
	assert.Equal(t, 2, nodes[0].AttrInt(syntax.AttrColumns))
}

func TestScanLine_TableSeparatorNeedsRowAbove(t *testing.T) {
	doc := document.New([]byte("| a | b |\n| --- | :-: |"))
	s := New()

	sep := s.ScanLine(doc.Line(2), doc.Line(1).Text)
	require.Len(t, sep, 1)
	assert.Equal(t, syntax.TypeTableSeparator, sep[0].TypeName)

	// The same text with no row above is an ordinary row.
	alone := s.ScanLine(doc.Line(2), "")
	require.Len(t, alone, 1)
	assert.Equal(t, syntax.TypeTableRow, alone[0].TypeName)
}

func TestScanLine_PlainText(t *testing.T) {
	assert.Empty(t, scanOne(t, "nothing special here"))
	assert.Empty(t, scanOne(t, ""))
}

func TestScanLine_OffsetsRebaseToLine(t *testing.T) {
	doc := document.New([]byte("first\nsee [[note-a]]"))
	s := New()

	nodes := s.ScanLine(doc.Line(2), doc.Line(1).Text)
	require.Len(t, nodes, 1)
	assert.Equal(t, 10, nodes[0].From, "offsets are absolute, not line-relative")
	assert.Equal(t, 20, nodes[0].To)
}

func TestScanLine_CacheHitsAreCursorIndependent(t *testing.T) {
	s := New()

	docA := document.New([]byte("see [[note]]"))
	docB := document.New([]byte("prefix\nsee [[note]]"))

	first := s.ScanLine(docA.Line(1), "")
	require.Len(t, first, 1)
	assert.Equal(t, 1, s.CacheLen())

	// Same line text at a different document position reuses the cache
	// entry and rebases spans.
	second := s.ScanLine(docB.Line(2), docB.Line(1).Text)
	require.Len(t, second, 1)
	assert.Equal(t, 1, s.CacheLen())
	assert.Equal(t, first[0].To-first[0].From, second[0].To-second[0].From)
	assert.Equal(t, docB.Line(2).From+first[0].From, second[0].From)
}

func TestScanner_Reset(t *testing.T) {
	s := New()
	doc := document.New([]byte("[[a-note-x]]"))

	s.ScanLine(doc.Line(1), "")
	require.Equal(t, 1, s.CacheLen())

	s.Reset()
	assert.Equal(t, 0, s.CacheLen())
}
