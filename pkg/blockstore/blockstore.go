// Package blockstore defines the content-fetch collaborator used by
// block-reference and block-embed widgets, plus an in-memory
// implementation for tests and the CLI.
package blockstore

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrNotFound is returned when a block id does not resolve.
var ErrNotFound = errors.New("block not found")

// Block is one outliner block as seen by the rendering engine.
type Block struct {
	ID          string
	ParentID    string
	Content     string
	OrderWeight float64
	Collapsed   bool
}

// Fetcher resolves block identifiers to content. Implementations are
// asynchronous by contract: widgets call them from their own goroutine
// and must tolerate slow or failing fetches.
type Fetcher interface {
	// FetchBlock returns the block's own content.
	FetchBlock(ctx context.Context, id string) (Block, error)

	// FetchSubtree returns the block and its full descendant subtree
	// in document order (depth-first, siblings by OrderWeight).
	FetchSubtree(ctx context.Context, id string) ([]Block, error)
}

// MemoryStore is a Fetcher backed by an in-process map.
type MemoryStore struct {
	mu       sync.RWMutex
	blocks   map[string]Block
	children map[string][]string
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blocks:   make(map[string]Block),
		children: make(map[string][]string),
	}
}

// Put inserts or replaces a block.
func (s *MemoryStore) Put(b Block) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.blocks[b.ID]; ok && old.ParentID != b.ParentID {
		s.children[old.ParentID] = removeID(s.children[old.ParentID], b.ID)
	}
	if _, ok := s.blocks[b.ID]; !ok || s.blocks[b.ID].ParentID != b.ParentID {
		s.children[b.ParentID] = append(s.children[b.ParentID], b.ID)
	}
	s.blocks[b.ID] = b
}

// FetchBlock implements Fetcher.
func (s *MemoryStore) FetchBlock(ctx context.Context, id string) (Block, error) {
	if err := ctx.Err(); err != nil {
		return Block{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.blocks[id]
	if !ok {
		return Block{}, ErrNotFound
	}
	return b, nil
}

// FetchSubtree implements Fetcher.
func (s *MemoryStore) FetchSubtree(ctx context.Context, id string) ([]Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	root, ok := s.blocks[id]
	if !ok {
		return nil, ErrNotFound
	}

	var out []Block
	var walk func(b Block)
	walk = func(b Block) {
		out = append(out, b)
		ids := append([]string(nil), s.children[b.ID]...)
		sort.Slice(ids, func(i, j int) bool {
			return s.blocks[ids[i]].OrderWeight < s.blocks[ids[j]].OrderWeight
		})
		for _, childID := range ids {
			walk(s.blocks[childID])
		}
	}
	walk(root)
	return out, nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
