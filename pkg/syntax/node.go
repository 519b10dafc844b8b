// Package syntax models the parse tree consumed by the rendering engine.
//
// Tree nodes come from the goldmark-backed Provider; constructs the parser
// does not index (wiki-links, block refs, callouts, ...) enter the same
// model as synthetic line-scoped nodes so there is a single dispatch path.
package syntax

// Common type names produced by the Provider.
const (
	TypeDocument      = "Document"
	TypeParagraph     = "Paragraph"
	TypeHeading       = "Heading"
	TypeList          = "List"
	TypeListItem      = "ListItem"
	TypeBlockquote    = "Blockquote"
	TypeFencedCode    = "FencedCode"
	TypeCodeBlock     = "CodeBlock"
	TypeThematicBreak = "ThematicBreak"
	TypeHTMLBlock     = "HTMLBlock"
	TypeText          = "Text"
	TypeEmphasis      = "Emphasis"
	TypeStrong        = "Strong"
	TypeCodeSpan      = "CodeSpan"
	TypeLink          = "Link"
	TypeImage         = "Image"
	TypeRawHTML       = "RawHTML"
)

// Synthetic type names produced by the line scanner.
const (
	TypeWikiLink       = "WikiLink"
	TypeBlockRef       = "BlockRef"
	TypeBlockEmbed     = "BlockEmbed"
	TypeCalloutLine    = "CalloutLine"
	TypeCommentSpan    = "CommentSpan"
	TypeHighlightSpan  = "HighlightSpan"
	TypeStrikethrough  = "StrikethroughSpan"
	TypeFootnoteRef    = "FootnoteRef"
	TypeFootnoteDef    = "FootnoteDef"
	TypeTableRow       = "TableRow"
	TypeTableSeparator = "TableSeparator"
)

// Node is a single parse-tree node with an absolute byte span.
// Nodes are read-only to the rendering engine.
type Node struct {
	// TypeName identifies the construct.
	TypeName string

	// From is the inclusive start offset of the node in the document.
	From int

	// To is the exclusive end offset.
	To int

	// Children holds child nodes in document order.
	Children []*Node

	// Attrs carries construct-specific attributes set by the Provider
	// or the line scanner (e.g. heading level, fence info string,
	// wiki-link target). May be nil.
	Attrs map[string]any
}

// Len returns the span length in bytes.
func (n *Node) Len() int {
	return n.To - n.From
}

// Synthetic reports whether this node was produced by the line scanner
// rather than the tree parser.
func (n *Node) Synthetic() bool {
	switch n.TypeName {
	case TypeWikiLink, TypeBlockRef, TypeBlockEmbed, TypeCalloutLine,
		TypeCommentSpan, TypeHighlightSpan, TypeStrikethrough,
		TypeFootnoteRef, TypeFootnoteDef, TypeTableRow, TypeTableSeparator:
		return true
	default:
		return false
	}
}

// Attr returns a construct attribute, or nil when absent.
func (n *Node) Attr(key string) any {
	if n.Attrs == nil {
		return nil
	}
	return n.Attrs[key]
}

// AttrString returns a string attribute, or the empty string.
func (n *Node) AttrString(key string) string {
	if s, ok := n.Attr(key).(string); ok {
		return s
	}
	return ""
}

// AttrInt returns an integer attribute, or zero.
func (n *Node) AttrInt(key string) int {
	if v, ok := n.Attr(key).(int); ok {
		return v
	}
	return 0
}

// AttrBool returns a boolean attribute, or false.
func (n *Node) AttrBool(key string) bool {
	if b, ok := n.Attr(key).(bool); ok {
		return b
	}
	return false
}

// SetAttr records a construct attribute, allocating the map lazily.
func (n *Node) SetAttr(key string, value any) {
	if n.Attrs == nil {
		n.Attrs = make(map[string]any)
	}
	n.Attrs[key] = value
}

// Overlaps reports whether the node span intersects [from, to).
func (n *Node) Overlaps(from, to int) bool {
	return n.From < to && n.To > from
}

// WalkFunc is the callback signature for Walk.
// Returning false stops descent into the node's children.
type WalkFunc func(n *Node) bool

// Walk performs a pre-order traversal starting at root.
func Walk(root *Node, fn WalkFunc) {
	if root == nil {
		return
	}
	if !fn(root) {
		return
	}
	for _, child := range root.Children {
		Walk(child, fn)
	}
}

// WalkRange walks only nodes whose span intersects [from, to).
// The document root is always entered.
func WalkRange(root *Node, from, to int, fn WalkFunc) {
	if root == nil {
		return
	}
	if root.TypeName != TypeDocument && !root.Overlaps(from, to) {
		return
	}
	if !fn(root) {
		return
	}
	for _, child := range root.Children {
		WalkRange(child, from, to, fn)
	}
}

// AppendChild adds a child node, keeping document order responsibility
// with the caller.
func AppendChild(parent, child *Node) {
	parent.Children = append(parent.Children, child)
}
