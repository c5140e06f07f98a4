package world

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// ChunkCoord identifies a chunk by its integer grid coordinates.
type ChunkCoord struct {
	CX, CY int
}

// Store memoizes generated chunks behind a bounded LRU cache.
//
// Eviction is correctness-neutral: generation is deterministic, so a chunk
// that falls out of the cache is rebuilt identically on the next request.
// A singleflight group guarantees at-most-one generation per coordinate even
// under concurrent readers, and chunks are immutable after generation, so a
// reader can never observe a partially written grid.
type Store struct {
	gen   *Generator
	cache *lru.Cache[ChunkCoord, *Chunk]
	group singleflight.Group
}

// NewStore creates a chunk store over the given generator.
// Capacity comes from the generator's Params; values below 1 fall back to
// the default.
func NewStore(gen *Generator) *Store {
	capacity := gen.Params().CacheChunks
	if capacity < 1 {
		capacity = DefaultParams().CacheChunks
	}
	// lru.New only fails on non-positive capacity, which is guarded above.
	cache, _ := lru.New[ChunkCoord, *Chunk](capacity)
	return &Store{
		gen:   gen,
		cache: cache,
	}
}

// Params returns the world constants of the underlying generator.
func (s *Store) Params() Params {
	return s.gen.Params()
}

// Chunk returns the chunk at (cx, cy), generating it on first access.
// The returned chunk is shared and read-only.
func (s *Store) Chunk(cx, cy int) *Chunk {
	key := ChunkCoord{CX: cx, CY: cy}
	if c, ok := s.cache.Get(key); ok {
		return c
	}

	v, _, _ := s.group.Do(fmt.Sprintf("%d:%d", cx, cy), func() (any, error) {
		if c, ok := s.cache.Get(key); ok {
			return c, nil
		}
		c := s.gen.GenerateChunk(cx, cy)
		s.cache.Add(key, c)
		return c, nil
	})
	return v.(*Chunk)
}

// Cached returns the number of chunks currently resident in the cache.
func (s *Store) Cached() int {
	return s.cache.Len()
}
