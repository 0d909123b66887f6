package suggest

import (
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/log"
)

// Key derives the cache key of word from its lowercased content.
func Key(word string) uint64 {
	return xxhash.Sum64String(strings.ToLower(word))
}

// Cache memoizes full suggestion lists per word for the life of a session.
// It only grows; nothing is ever evicted.
type Cache struct {
	entries map[uint64][]string
	hits    int64
	misses  int64
	mu      sync.RWMutex
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[uint64][]string)}
}

// Get returns the list stored under key.
func (c *Cache) Get(key uint64) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	words, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return words, ok
}

// Put stores words under key. The cache keeps its own copy.
func (c *Cache) Put(key uint64, words []string) {
	owned := make([]string, len(words))
	copy(owned, words)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = owned
	log.Debugf("Cached %d suggestions under %x", len(owned), key)
}

// Len returns the number of cached words.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) Stats() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return map[string]int{
		"cacheEntries": len(c.entries),
		"cacheHits":    int(c.hits),
		"cacheMisses":  int(c.misses),
	}
}
