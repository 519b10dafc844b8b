package goldmark

import (
	"github.com/yuin/goldmark/ast"

	"github.com/0010capacity/oxinot/pkg/syntax"
)

// mapper converts a goldmark AST into a syntax.Node tree with absolute
// byte spans. goldmark only records source segments for text and block
// lines, so marker spans (emphasis asterisks, link brackets, code fences)
// are recovered from the source content around the recorded segments.
type mapper struct {
	content []byte
}

// mapDocument converts the goldmark document node into the root node.
func (m *mapper) mapDocument(gmDoc ast.Node) *syntax.Node {
	root := &syntax.Node{
		TypeName: syntax.TypeDocument,
		From:     0,
		To:       len(m.content),
	}
	m.mapChildren(gmDoc, root)
	return root
}

func (m *mapper) mapChildren(gmParent ast.Node, parent *syntax.Node) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		if node := m.mapNode(child); node != nil {
			syntax.AppendChild(parent, node)
		}
	}
}

// mapNode converts a single goldmark node. Nodes whose source span cannot
// be recovered are dropped; a missing node only means no decorations for
// that construct.
func (m *mapper) mapNode(gmNode ast.Node) *syntax.Node {
	switch gmn := gmNode.(type) {
	case *ast.Heading:
		return m.mapHeading(gmn)

	case *ast.Paragraph:
		return m.mapLinesContainer(gmn, syntax.TypeParagraph)

	case *ast.TextBlock:
		return m.mapLinesContainer(gmn, syntax.TypeParagraph)

	case *ast.List:
		node := m.mapFromChildren(gmn, syntax.TypeList)
		if node != nil {
			node.SetAttr(syntax.AttrOrdered, gmn.IsOrdered())
		}
		return node

	case *ast.ListItem:
		node := m.mapFromChildren(gmn, syntax.TypeListItem)
		if node != nil {
			// Include the bullet marker and indentation.
			node.From = m.lineStart(node.From)
		}
		return node

	case *ast.Blockquote:
		node := m.mapFromChildren(gmn, syntax.TypeBlockquote)
		if node != nil {
			// Include the '>' markers.
			node.From = m.lineStart(node.From)
		}
		return node

	case *ast.FencedCodeBlock:
		return m.mapFencedCode(gmn)

	case *ast.CodeBlock:
		return m.mapLinesContainer(gmn, syntax.TypeCodeBlock)

	case *ast.HTMLBlock:
		return m.mapLinesContainer(gmn, syntax.TypeHTMLBlock)

	case *ast.Text:
		return m.mapText(gmn)

	case *ast.Emphasis:
		return m.mapEmphasis(gmn)

	case *ast.CodeSpan:
		return m.mapCodeSpan(gmn)

	case *ast.Link:
		return m.mapLink(gmn)

	case *ast.Image:
		return m.mapImage(gmn)

	case *ast.RawHTML:
		return m.mapRawHTML(gmn)

	default:
		// Constructs with no usable source position (thematic breaks,
		// autolinks, raw strings) carry no decorations.
		return nil
	}
}

func (m *mapper) mapHeading(gmn *ast.Heading) *syntax.Node {
	node := &syntax.Node{TypeName: syntax.TypeHeading}
	m.mapChildren(gmn, node)

	from, to, ok := m.blockLinesSpan(gmn)
	if !ok {
		var cok bool
		from, to, cok = childrenSpan(node)
		if !cok {
			return nil
		}
	}

	// Extend backwards over the '#' marker to the start of the line.
	node.From = m.lineStart(from)
	node.To = m.trimNewline(node.From, to)
	node.SetAttr(syntax.AttrLevel, gmn.Level)
	return node
}

func (m *mapper) mapLinesContainer(gmn ast.Node, typeName string) *syntax.Node {
	node := &syntax.Node{TypeName: typeName}
	m.mapChildren(gmn, node)

	from, to, ok := m.blockLinesSpan(gmn)
	if !ok {
		var cok bool
		from, to, cok = childrenSpan(node)
		if !cok {
			return nil
		}
	}
	node.From = from
	node.To = m.trimNewline(from, to)
	return node
}

func (m *mapper) mapFromChildren(gmn ast.Node, typeName string) *syntax.Node {
	node := &syntax.Node{TypeName: typeName}
	m.mapChildren(gmn, node)

	from, to, ok := childrenSpan(node)
	if !ok {
		return nil
	}
	node.From = from
	node.To = to
	return node
}

func (m *mapper) mapFencedCode(gmn *ast.FencedCodeBlock) *syntax.Node {
	lines := gmn.Lines()
	if lines == nil || lines.Len() == 0 {
		// An empty fence has no recorded position; it renders raw.
		return nil
	}

	codeFrom := lines.At(0).Start
	codeTo := lines.At(lines.Len() - 1).Stop

	contentLineStart := m.lineStart(codeFrom)
	if contentLineStart == 0 {
		// No room for an opening fence line; treat as unmapped.
		return nil
	}
	openStart := m.lineStart(contentLineStart - 1)

	node := &syntax.Node{TypeName: syntax.TypeFencedCode, From: openStart}

	info := ""
	if gmn.Info != nil {
		info = string(gmn.Info.Value(m.content))
	}
	node.SetAttr(syntax.AttrInfo, info)
	node.SetAttr(syntax.AttrCodeFrom, codeFrom)
	node.SetAttr(syntax.AttrCodeTo, m.trimNewline(codeFrom, codeTo))

	// Locate the closing fence on the line after the last code line.
	closeLineStart := codeTo
	if closeLineStart > 0 && closeLineStart <= len(m.content) &&
		m.content[closeLineStart-1] != '\n' {
		end := m.lineEnd(closeLineStart)
		if end < len(m.content) {
			closeLineStart = end + 1
		} else {
			closeLineStart = len(m.content)
		}
	}

	if closeLineStart < len(m.content) && m.isClosingFence(closeLineStart) {
		node.SetAttr(syntax.AttrClosed, true)
		node.To = m.lineEnd(closeLineStart)
	} else {
		node.SetAttr(syntax.AttrClosed, false)
		node.To = m.trimNewline(openStart, codeTo)
	}

	return node
}

// isClosingFence reports whether the line starting at offset consists of
// optional indentation, a run of at least three fence characters, and
// nothing else but trailing whitespace.
func (m *mapper) isClosingFence(lineStart int) bool {
	end := m.lineEnd(lineStart)
	i := lineStart
	for i < end && (m.content[i] == ' ' || m.content[i] == '\t') {
		i++
	}
	if i >= end {
		return false
	}
	fence := m.content[i]
	if fence != '`' && fence != '~' {
		return false
	}
	count := 0
	for i < end && m.content[i] == fence {
		i++
		count++
	}
	if count < 3 {
		return false
	}
	for i < end {
		if m.content[i] != ' ' && m.content[i] != '\t' && m.content[i] != '\r' {
			return false
		}
		i++
	}
	return true
}

func (m *mapper) mapText(gmn *ast.Text) *syntax.Node {
	seg := gmn.Segment
	if seg.Start >= seg.Stop {
		return nil
	}
	return &syntax.Node{
		TypeName: syntax.TypeText,
		From:     seg.Start,
		To:       m.trimNewline(seg.Start, seg.Stop),
	}
}

func (m *mapper) mapEmphasis(gmn *ast.Emphasis) *syntax.Node {
	typeName := syntax.TypeEmphasis
	if gmn.Level >= 2 {
		typeName = syntax.TypeStrong
	}

	node := &syntax.Node{TypeName: typeName}
	m.mapChildren(gmn, node)

	textFrom, textTo, ok := childrenSpan(node)
	if !ok {
		return nil
	}

	from, to := textFrom, textTo
	if m.markersMatch(textFrom-gmn.Level, gmn.Level) &&
		m.markersMatch(textTo, gmn.Level) {
		from = textFrom - gmn.Level
		to = textTo + gmn.Level
	}

	node.From = from
	node.To = to
	node.SetAttr(syntax.AttrTextFrom, textFrom)
	node.SetAttr(syntax.AttrTextTo, textTo)
	return node
}

// markersMatch reports whether count emphasis marker bytes start at offset.
func (m *mapper) markersMatch(offset, count int) bool {
	if offset < 0 || offset+count > len(m.content) {
		return false
	}
	for i := range count {
		ch := m.content[offset+i]
		if ch != '*' && ch != '_' {
			return false
		}
	}
	return true
}

func (m *mapper) mapCodeSpan(gmn *ast.CodeSpan) *syntax.Node {
	node := &syntax.Node{TypeName: syntax.TypeCodeSpan}
	m.mapChildren(gmn, node)

	textFrom, textTo, ok := childrenSpan(node)
	if !ok {
		return nil
	}

	from := textFrom
	for from > 0 && m.content[from-1] == '`' {
		from--
	}
	to := textTo
	for to < len(m.content) && m.content[to] == '`' {
		to++
	}

	node.From = from
	node.To = to
	node.SetAttr(syntax.AttrTextFrom, textFrom)
	node.SetAttr(syntax.AttrTextTo, textTo)
	return node
}

func (m *mapper) mapLink(gmn *ast.Link) *syntax.Node {
	node := m.mapBracketed(gmn, syntax.TypeLink, 1)
	if node != nil {
		node.SetAttr(syntax.AttrURL, string(gmn.Destination))
	}
	return node
}

func (m *mapper) mapImage(gmn *ast.Image) *syntax.Node {
	node := m.mapBracketed(gmn, syntax.TypeImage, 2)
	if node != nil {
		node.SetAttr(syntax.AttrURL, string(gmn.Destination))
	}
	return node
}

// mapBracketed recovers the span of [text](url) style constructs.
// markerLen is 1 for links and 2 for images (the leading "![").
// Reference-style links without an inline destination fall back to the
// inner text span; the handler's own shape check then yields nothing.
func (m *mapper) mapBracketed(gmn ast.Node, typeName string, markerLen int) *syntax.Node {
	node := &syntax.Node{TypeName: typeName}
	m.mapChildren(gmn, node)

	textFrom, textTo, ok := childrenSpan(node)
	if !ok {
		return nil
	}

	node.SetAttr(syntax.AttrTextFrom, textFrom)
	node.SetAttr(syntax.AttrTextTo, textTo)

	from := textFrom
	if textFrom >= markerLen && m.content[textFrom-1] == '[' {
		from = textFrom - 1
		if markerLen == 2 && m.content[textFrom-2] == '!' {
			from = textFrom - 2
		}
	}

	to := textTo
	if textTo+1 < len(m.content) && m.content[textTo] == ']' &&
		m.content[textTo+1] == '(' {
		i := textTo + 2
		for i < len(m.content) && m.content[i] != ')' && m.content[i] != '\n' {
			i++
		}
		if i < len(m.content) && m.content[i] == ')' {
			to = i + 1
		}
	}

	node.From = from
	node.To = to
	return node
}

func (m *mapper) mapRawHTML(gmn *ast.RawHTML) *syntax.Node {
	if gmn.Segments == nil || gmn.Segments.Len() == 0 {
		return nil
	}
	from := gmn.Segments.At(0).Start
	to := gmn.Segments.At(gmn.Segments.Len() - 1).Stop
	return &syntax.Node{
		TypeName: syntax.TypeRawHTML,
		From:     from,
		To:       m.trimNewline(from, to),
	}
}

// blockLinesSpan returns the span covered by a block node's recorded
// source lines.
func (m *mapper) blockLinesSpan(gmn ast.Node) (int, int, bool) {
	if gmn.Type() != ast.TypeBlock {
		return 0, 0, false
	}
	lines := gmn.Lines()
	if lines == nil || lines.Len() == 0 {
		return 0, 0, false
	}
	return lines.At(0).Start, lines.At(lines.Len() - 1).Stop, true
}

// childrenSpan returns the union span of a node's mapped children.
func childrenSpan(node *syntax.Node) (int, int, bool) {
	if len(node.Children) == 0 {
		return 0, 0, false
	}
	from := node.Children[0].From
	to := node.Children[0].To
	for _, child := range node.Children[1:] {
		if child.From < from {
			from = child.From
		}
		if child.To > to {
			to = child.To
		}
	}
	return from, to, true
}

// lineStart returns the offset of the first byte of the line containing
// offset.
func (m *mapper) lineStart(offset int) int {
	if offset > len(m.content) {
		offset = len(m.content)
	}
	for offset > 0 && m.content[offset-1] != '\n' {
		offset--
	}
	return offset
}

// lineEnd returns the offset of the newline terminating the line that
// starts at or contains offset, or the content length for the last line.
func (m *mapper) lineEnd(offset int) int {
	for offset < len(m.content) && m.content[offset] != '\n' {
		offset++
	}
	return offset
}

// trimNewline shrinks to so the span excludes any trailing terminator.
func (m *mapper) trimNewline(from, to int) int {
	for to > from && (m.content[to-1] == '\n' || m.content[to-1] == '\r') {
		to--
	}
	return to
}
