package suggest

import (
	"strings"

	"github.com/bastiangx/wordcheck/pkg/dictionary"
)

// DefaultLimit is how many suggestions a report shows per mistake.
const DefaultLimit = 5

// Suggest returns up to limit dictionary words that share the longest
// prefix of word present in dict. A limit <= 0 returns everything.
//
// word is lowercased and walked down the tree for as long as edges exist;
// every word below the node reached is a candidate, in depth-first order.
// If not even the first rune matches there are no suggestions.
//
// The full list is memoized in cache (which may be nil); dict is never modified.
func Suggest(word string, dict *dictionary.Tree, cache *Cache, limit int) []string {
	if dict == nil {
		return []string{}
	}

	lower := strings.ToLower(word)
	key := Key(lower)

	var all []string
	if cache != nil {
		if cached, ok := cache.Get(key); ok {
			all = cached
		}
	}
	if all == nil {
		all = Enumerate(dict, lower)
		if cache != nil {
			cache.Put(key, all)
		}
	}

	return capped(all, limit)
}

// Enumerate lists every word under the longest prefix of lowerWord found in dict.
// An empty match yields nothing.
func Enumerate(dict *dictionary.Tree, lowerWord string) []string {
	matched, start := dict.Walk(lowerWord)
	if matched == "" {
		return []string{}
	}

	type frame struct {
		at   dictionary.Cursor
		path string
	}

	words := []string{}
	stack := []frame{{at: start}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.at.Terminal() {
			words = append(words, matched+f.path)
		}

		// Push children reversed so they pop in insertion order.
		var kids []frame
		f.at.Each(func(r rune, child dictionary.Cursor) {
			kids = append(kids, frame{at: child, path: f.path + string(r)})
		})
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
	return words
}

func capped(words []string, limit int) []string {
	n := len(words)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]string, n)
	copy(out, words)
	return out
}
