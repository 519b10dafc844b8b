// Package scan implements the regex line pass for constructs the syntax
// provider does not index: wiki-links, block refs and embeds, callouts,
// comments, highlights, strikethrough, footnotes, and pipe tables.
//
// The scanner emits synthetic syntax.Node values so line constructs flow
// through the same handler registry as tree nodes. Scan results are
// cached per line content hash; since matches are cursor-independent,
// a cache entry survives selection changes and only edited lines pay
// the regex cost again.
package scan

import (
	"hash/fnv"
	"sync"

	"github.com/0010capacity/oxinot/pkg/document"
	"github.com/0010capacity/oxinot/pkg/syntax"
)

// maxCacheEntries bounds the line cache. The cache resets wholesale
// when full; typical documents refill it within one rebuild.
const maxCacheEntries = 4096

// match is one construct occurrence with offsets relative to the line
// start. Offset-valued attributes live in offsets so they can be
// rebased when the line moves within the document.
type match struct {
	typeName string
	from, to int
	attrs    map[string]any
	offsets  map[string]int
}

// Scanner runs the per-line construct pass. Safe for concurrent use.
type Scanner struct {
	mu    sync.Mutex
	cache map[uint64][]match
}

// New creates a scanner with an empty cache.
func New() *Scanner {
	return &Scanner{cache: make(map[uint64][]match)}
}

// ScanLine returns the synthetic nodes for one document line. prevText
// is the text of the preceding line; table separator detection depends
// on it, so it participates in the cache key.
func (s *Scanner) ScanLine(line document.LineInfo, prevText string) []*syntax.Node {
	prevRow := rowPattern.MatchString(prevText)
	key := lineKey(line.Text, prevRow)

	s.mu.Lock()
	matches, ok := s.cache[key]
	s.mu.Unlock()

	if !ok {
		matches = scanText(line.Text, prevRow)
		s.mu.Lock()
		if len(s.cache) >= maxCacheEntries {
			s.cache = make(map[uint64][]match)
		}
		s.cache[key] = matches
		s.mu.Unlock()
	}

	if len(matches) == 0 {
		return nil
	}
	nodes := make([]*syntax.Node, 0, len(matches))
	for _, m := range matches {
		n := &syntax.Node{
			TypeName: m.typeName,
			From:     line.From + m.from,
			To:       line.From + m.to,
		}
		for k, v := range m.attrs {
			n.SetAttr(k, v)
		}
		for k, v := range m.offsets {
			n.SetAttr(k, line.From+v)
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// CacheLen reports the number of cached lines.
func (s *Scanner) CacheLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}

// Reset drops all cached scan results.
func (s *Scanner) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[uint64][]match)
}

func lineKey(text string, prevRow bool) uint64 {
	h := fnv.New64a()
	h.Write([]byte(text))
	if prevRow {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	return h.Sum64()
}
