package check

import (
	"errors"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

var errPrefixFound = errors.New("prefix found")

// Allowlist holds words accepted on top of a dictionary: exact personal
// words and ignore prefixes (any token starting with one is skipped).
// Entries are case-folded. Safe for concurrent use.
type Allowlist struct {
	words    *patricia.Trie
	prefixes *patricia.Trie
	count    int
	mu       sync.RWMutex
}

// NewAllowlist returns an allowlist seeded with words and prefixes.
func NewAllowlist(words, prefixes []string) *Allowlist {
	a := &Allowlist{
		words:    patricia.NewTrie(),
		prefixes: patricia.NewTrie(),
	}
	for _, w := range words {
		a.AddWord(w)
	}
	for _, p := range prefixes {
		a.AddPrefix(p)
	}
	return a
}

// AddWord accepts word exactly (case-insensitively).
func (a *Allowlist) AddWord(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.words.Insert(patricia.Prefix(word), true) {
		a.count++
	}
}

// AddPrefix accepts every token that starts with prefix.
func (a *Allowlist) AddPrefix(prefix string) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		log.Warn("Ignoring empty allowlist prefix")
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.prefixes.Insert(patricia.Prefix(prefix), true) {
		a.count++
	}
}

// Allows reports whether the lowercased token is covered by the allowlist.
func (a *Allowlist) Allows(lowerToken string) bool {
	if a == nil {
		return false
	}
	a.mu.RLock()
	defer a.mu.RUnlock()

	key := patricia.Prefix(lowerToken)
	if a.words.Match(key) {
		return true
	}
	err := a.prefixes.VisitPrefixes(key, func(p patricia.Prefix, item patricia.Item) error {
		return errPrefixFound
	})
	return errors.Is(err, errPrefixFound)
}

// Len returns the number of entries, words and prefixes together.
func (a *Allowlist) Len() int {
	if a == nil {
		return 0
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.count
}
