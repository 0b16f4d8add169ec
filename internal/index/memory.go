package index

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/showreel/internal/domain"
)

// MemoryIndex holds the current catalog, the about page and per-video play counters.
// It is the source of truth for rendering; Redis only mirrors it.
type MemoryIndex struct {
	mu         sync.RWMutex
	catalog    *domain.Catalog
	videoIDs   map[string]struct{} // ids present in catalog
	about      *domain.AboutPage
	plays      map[string]int64 // ExternalID -> opens
	source     string           // where the catalog came from
	lastReload time.Time        // Timestamp of last catalog reload
}

// NewMemoryIndex creates a new memory index
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		videoIDs: make(map[string]struct{}),
		plays:    make(map[string]int64),
	}
}

// UpdateCatalog replaces the catalog in the index.
// Play counters are kept; the garbage collector drops stale ones.
func (idx *MemoryIndex) UpdateCatalog(cat *domain.Catalog, source string) {
	ids := cat.VideoIDs()

	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.catalog = cat
	idx.videoIDs = ids
	idx.source = source
	idx.lastReload = time.Now()
}

// Catalog returns the current catalog, nil before the first load.
// The catalog is immutable once stored and must not be modified by callers.
func (idx *MemoryIndex) Catalog() *domain.Catalog {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.catalog
}

// Source returns where the current catalog was loaded from
func (idx *MemoryIndex) Source() string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.source
}

// UpdateAbout replaces the about page
func (idx *MemoryIndex) UpdateAbout(page *domain.AboutPage) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.about = page
}

// About returns the about page, nil before the first load
func (idx *MemoryIndex) About() *domain.AboutPage {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.about
}

// Count returns the number of entries in the catalog
func (idx *MemoryIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.catalog == nil {
		return 0
	}
	return idx.catalog.EntryCount()
}

// HasVideo reports whether the id belongs to the current catalog
func (idx *MemoryIndex) HasVideo(id string) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	_, ok := idx.videoIDs[id]
	return ok
}

// IncrementPlays increments the play counter of a catalog video and returns the new value.
// Unknown ids are ignored and return 0.
func (idx *MemoryIndex) IncrementPlays(id string) int64 {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, ok := idx.videoIDs[id]; !ok {
		return 0
	}
	idx.plays[id]++
	return idx.plays[id]
}

// SetPlays overwrites counters with the given values, keeping the highest one
func (idx *MemoryIndex) SetPlays(stats map[string]int64) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	for id, n := range stats {
		if n > idx.plays[id] {
			idx.plays[id] = n
		}
	}
}

// Plays returns the play counter of a video
func (idx *MemoryIndex) Plays(id string) int64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.plays[id]
}

// PlayStats returns a copy of all play counters
func (idx *MemoryIndex) PlayStats() map[string]int64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	stats := make(map[string]int64, len(idx.plays))
	for id, n := range idx.plays {
		stats[id] = n
	}
	return stats
}

// DeletePlays removes play counters
func (idx *MemoryIndex) DeletePlays(ids ...string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	for _, id := range ids {
		delete(idx.plays, id)
	}
}

// GetLastReload returns the timestamp of the last catalog reload
func (idx *MemoryIndex) GetLastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}
