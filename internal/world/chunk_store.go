package world

import (
	"sync"
)

// ChunkStore holds the live chunks in creation order with a coordinate index.
type ChunkStore struct {
	mu       sync.RWMutex
	order    []*Chunk
	byCoord  map[ChunkCoord]*Chunk
	modCount uint64 // Increases on any chunk add/remove
}

// NewChunkStore creates an empty chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		byCoord: make(map[ChunkCoord]*Chunk),
	}
}

// Add appends a chunk. A chunk whose coordinate is already present is
// rejected and Add returns false.
func (cs *ChunkStore) Add(chunk *Chunk) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if _, ok := cs.byCoord[chunk.Coord]; ok {
		return false
	}
	cs.byCoord[chunk.Coord] = chunk
	cs.order = append(cs.order, chunk)
	cs.modCount++
	return true
}

// Get returns the chunk at coord, or nil.
func (cs *ChunkStore) Get(coord ChunkCoord) *Chunk {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.byCoord[coord]
}

// Has checks if a chunk exists at coord.
func (cs *ChunkStore) Has(coord ChunkCoord) bool {
	cs.mu.RLock()
	_, ok := cs.byCoord[coord]
	cs.mu.RUnlock()
	return ok
}

// All returns a copy of the chunks in creation order.
func (cs *ChunkStore) All() []*Chunk {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	result := make([]*Chunk, len(cs.order))
	copy(result, cs.order)
	return result
}

// Len returns the number of stored chunks.
func (cs *ChunkStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.order)
}

// Clear destroys and removes every chunk. Returns number of removed chunks.
func (cs *ChunkStore) Clear() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	removed := len(cs.order)
	for _, ch := range cs.order {
		ch.Destroy()
	}
	cs.order = nil
	clear(cs.byCoord)
	if removed > 0 {
		cs.modCount++
	}
	return removed
}

// ModCount returns the current modification count of the store.
func (cs *ChunkStore) ModCount() uint64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.modCount
}
