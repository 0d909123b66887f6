// Package session owns the mutable state of one spell checking session:
// the dictionary tree, the suggestion cache and the allowlist.
// Front-ends hold a *Session and pass it around, there is no global state.
package session

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/bastiangx/wordcheck/pkg/check"
	"github.com/bastiangx/wordcheck/pkg/dictionary"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/charmbracelet/log"
)

// ErrNoDictionary is returned by checks run before any dictionary loaded.
var ErrNoDictionary = errors.New("dictionary is not built yet")

// Options configures a Session.
type Options struct {
	// Source is the word list path used by Refresh.
	Source string
	// Limit caps suggestions per mistake; <= 0 means suggest.DefaultLimit.
	Limit         int
	AllowWords    []string
	AllowPrefixes []string
}

// Entry is a mistake with its capped suggestions.
type Entry struct {
	check.Mistake
	Suggestions []string
}

// Report is the result of checking one text.
type Report struct {
	Entries []Entry
	Elapsed time.Duration
}

// Clean reports whether no mistakes were found.
func (r Report) Clean() bool {
	return len(r.Entries) == 0
}

// Session is safe for concurrent use. Checks run under a read lock,
// a refresh swaps tree and cache under the write lock only after the new
// tree loaded, so a failed refresh leaves the previous state untouched.
type Session struct {
	source    string
	limit     int
	tree      *dictionary.Tree
	cache     *suggest.Cache
	allow     *check.Allowlist
	loadedAt  time.Time
	refreshes int
	mu        sync.RWMutex
}

// New returns a session with no dictionary loaded.
func New(opts Options) *Session {
	limit := opts.Limit
	if limit <= 0 {
		limit = suggest.DefaultLimit
	}
	return &Session{
		source: opts.Source,
		limit:  limit,
		cache:  suggest.NewCache(),
		allow:  check.NewAllowlist(opts.AllowWords, opts.AllowPrefixes),
	}
}

// Open returns a session with the dictionary at opts.Source loaded.
func Open(opts Options) (*Session, error) {
	s := New(opts)
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// Refresh rebuilds the dictionary from the configured source.
func (s *Session) Refresh() error {
	s.mu.RLock()
	source := s.source
	s.mu.RUnlock()
	return s.RefreshFrom(source)
}

// RefreshFrom rebuilds the dictionary from path and makes path the
// configured source. On failure the current dictionary stays in place.
func (s *Session) RefreshFrom(path string) error {
	start := time.Now()
	tree, err := dictionary.LoadFile(path)
	if err != nil {
		log.Errorf("Refresh from %s failed, keeping current dictionary: %v", path, err)
		return err
	}
	s.install(tree, path)
	log.Debugf("Refreshed dictionary from %s: %d words in %v", path, tree.Len(), time.Since(start))
	return nil
}

// Load replaces the dictionary with one read from r.
// The configured source is left unchanged.
func (s *Session) Load(r io.Reader) error {
	tree, err := dictionary.Load(r)
	if err != nil {
		return err
	}
	s.mu.RLock()
	source := s.source
	s.mu.RUnlock()
	s.install(tree, source)
	return nil
}

func (s *Session) install(tree *dictionary.Tree, source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree = tree
	s.source = source
	s.cache = suggest.NewCache()
	s.loadedAt = time.Now()
	s.refreshes++
}

// Ready reports whether a dictionary is loaded.
func (s *Session) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree != nil
}

// Source returns the configured word list path.
func (s *Session) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// Limit returns the per-mistake suggestion cap.
func (s *Session) Limit() int {
	return s.limit
}

// Scan returns the unknown words of text.
func (s *Session) Scan(text string) ([]check.Mistake, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tree == nil {
		return nil, ErrNoDictionary
	}
	return check.NewScanner(s.tree, s.allow).Scan(text), nil
}

// Check scans text and attaches up to Limit suggestions to every mistake.
func (s *Session) Check(text string) (Report, error) {
	start := time.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tree == nil {
		return Report{}, ErrNoDictionary
	}

	mistakes := check.NewScanner(s.tree, s.allow).Scan(text)
	entries := make([]Entry, 0, len(mistakes))
	for _, m := range mistakes {
		entries = append(entries, Entry{
			Mistake:     m,
			Suggestions: suggest.Suggest(m.Word, s.tree, s.cache, s.limit),
		})
	}

	report := Report{Entries: entries, Elapsed: time.Since(start)}
	log.Debugf("Checked %d bytes: %d mistakes in %v", len(text), len(entries), report.Elapsed)
	return report, nil
}

// Suggest returns up to limit suggestions for word; limit <= 0 uses the session limit.
func (s *Session) Suggest(word string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = s.limit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tree == nil {
		return nil, ErrNoDictionary
	}
	return suggest.Suggest(word, s.tree, s.cache, limit), nil
}

// Contains reports whether word is known, case-insensitively,
// counting allowlisted words as known.
func (s *Session) Contains(word string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tree == nil {
		return false, ErrNoDictionary
	}
	if s.tree.ContainsFold(word) {
		return true, nil
	}
	return s.allow.Allows(strings.ToLower(word)), nil
}

// Allow adds word to the session allowlist.
func (s *Session) Allow(word string) {
	s.allow.AddWord(word)
}

// Dump writes an outline of the dictionary tree to w.
func (s *Session) Dump(w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tree == nil {
		return ErrNoDictionary
	}
	if err := s.tree.Dump(w); err != nil {
		return fmt.Errorf("failed to dump dictionary: %w", err)
	}
	return nil
}

// Stats returns counters about the session.
func (s *Session) Stats() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := s.cache.Stats()
	stats["refreshes"] = s.refreshes
	stats["allowEntries"] = s.allow.Len()
	stats["suggestLimit"] = s.limit
	if s.tree != nil {
		stats["totalWords"] = s.tree.Len()
	} else {
		stats["totalWords"] = 0
	}
	return stats
}
