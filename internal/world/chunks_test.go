package world

import (
	"sync"
	"testing"
)

func TestStoreCachesChunks(t *testing.T) {
	s := NewStore(NewGenerator(DefaultParams()))

	a := s.Chunk(2, 3)
	b := s.Chunk(2, 3)
	if a != b {
		t.Error("second request for the same chunk returned a different instance")
	}
	if s.Cached() != 1 {
		t.Errorf("Cached() = %d, expected 1", s.Cached())
	}
}

func TestStoreEvictionRegeneratesIdentically(t *testing.T) {
	p := DefaultParams()
	p.CacheChunks = 2
	s := NewStore(NewGenerator(p))

	first := s.Chunk(0, 0)

	// Push (0,0) out of the two-entry cache.
	s.Chunk(1, 0)
	s.Chunk(2, 0)
	if s.Cached() != 2 {
		t.Fatalf("Cached() = %d, expected capacity 2", s.Cached())
	}

	again := s.Chunk(0, 0)
	if again == first {
		t.Fatal("expected regeneration after eviction, got the evicted instance")
	}
	for y := 0; y < first.Size(); y++ {
		for x := 0; x < first.Size(); x++ {
			if first.Tile(x, y) != again.Tile(x, y) {
				t.Fatalf("regenerated chunk differs at (%d,%d)", x, y)
			}
		}
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore(NewGenerator(DefaultParams()))

	var wg sync.WaitGroup
	results := make([]*Chunk, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.Chunk(4, -4)
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Fatal("concurrent readers observed different chunk instances for one key")
		}
	}
}

func TestStoreCapacityFallback(t *testing.T) {
	p := DefaultParams()
	p.CacheChunks = 0
	s := NewStore(NewGenerator(p))

	if s.Chunk(0, 0) == nil {
		t.Fatal("store with defaulted capacity failed to generate")
	}
}
