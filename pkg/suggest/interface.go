// Package suggest proposes corrections for unknown words by walking the
// dictionary tree along the word's leading runes and listing every word
// below the point reached. There is no similarity ranking.
package suggest

import "github.com/bastiangx/wordcheck/pkg/dictionary"

// Suggester proposes replacements for an unknown word.
type Suggester interface {
	// Suggest returns at most limit candidates for word.
	Suggest(word string, limit int) []string

	// Stats returns counters about the suggester's cache.
	Stats() map[string]int
}

// Engine binds a dictionary to a cache.
type Engine struct {
	dict  *dictionary.Tree
	cache *Cache
}

// NewEngine returns an engine over dict. A nil cache gets a fresh one.
func NewEngine(dict *dictionary.Tree, cache *Cache) *Engine {
	if cache == nil {
		cache = NewCache()
	}
	return &Engine{dict: dict, cache: cache}
}

func (e *Engine) Suggest(word string, limit int) []string {
	return Suggest(word, e.dict, e.cache, limit)
}

func (e *Engine) Stats() map[string]int {
	stats := e.cache.Stats()
	if e.dict != nil {
		stats["totalWords"] = e.dict.Len()
	}
	return stats
}
