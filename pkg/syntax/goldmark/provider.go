// Package goldmark provides a syntax.Node tree using the goldmark library.
//
// The provider is configured as plain CommonMark on purpose: constructs the
// engine renders beyond CommonMark (wiki-links, block refs, callouts,
// highlights, strikethrough, footnotes, tables) are covered by the line
// scanner, which feeds the same handler registry with synthetic nodes.
package goldmark

import (
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/0010capacity/oxinot/pkg/document"
	"github.com/0010capacity/oxinot/pkg/syntax"
)

// Provider parses document snapshots into syntax trees.
type Provider struct {
	md goldmark.Markdown
}

// NewProvider creates a CommonMark provider.
func NewProvider() *Provider {
	return &Provider{
		md: goldmark.New(),
	}
}

// Tree parses the snapshot and returns the document root node with
// absolute byte spans assigned throughout.
func (p *Provider) Tree(ctx context.Context, doc *document.Snapshot) (*syntax.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	content := []byte(doc.Text())
	reader := text.NewReader(content)
	gmDoc := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	m := &mapper{content: content}
	root := m.mapDocument(gmDoc)
	return root, nil
}
