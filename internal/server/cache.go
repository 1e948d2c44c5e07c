package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ironsheep/game-result-mcp/internal/extract"
)

// Entry is a cached extraction plus where its document came from.
type Entry struct {
	Result *extract.Result
	Source string
	Path   string
}

// ResultCache holds extraction results between tool calls, keyed by a
// generated id. It is safe for concurrent use.
//
// Cached results stay in memory until Evict or Clear. Each Result memoizes
// its own fields, so repeated tool calls on the same id never rescan.
type ResultCache struct {
	mu      sync.RWMutex
	results map[string]Entry
}

// NewResultCache creates an empty cache.
func NewResultCache() *ResultCache {
	return &ResultCache{
		results: make(map[string]Entry),
	}
}

// Put stores r and returns its new id.
func (c *ResultCache) Put(r *extract.Result, source, path string) string {
	id := uuid.New().String()
	c.mu.Lock()
	c.results[id] = Entry{Result: r, Source: source, Path: path}
	c.mu.Unlock()
	return id
}

// Get returns the entry stored under id.
func (c *ResultCache) Get(id string) (Entry, bool) {
	c.mu.RLock()
	entry, ok := c.results[id]
	c.mu.RUnlock()
	return entry, ok
}

// Len returns the number of cached results.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}

// Evict removes id from the cache and reports whether it was present.
func (c *ResultCache) Evict(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.results[id]
	delete(c.results, id)
	return ok
}

// Clear removes all results.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	c.results = make(map[string]Entry)
	c.mu.Unlock()
}
