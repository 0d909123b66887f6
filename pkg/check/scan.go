// Package check runs the tokenizer over text and collects the word-like
// tokens a dictionary does not know.
package check

import (
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/wordcheck/pkg/text"
)

// Mistake is an unknown word and the line it was found on.
// Word keeps the casing it had in the text.
type Mistake struct {
	Line int
	Word string
}

func (m Mistake) String() string {
	return fmt.Sprintf("Line %d: %s", m.Line, m.Word)
}

// Dictionary is the membership test a scan needs.
// *dictionary.Tree satisfies it.
type Dictionary interface {
	Contains(word string) bool
}

// Scanner checks text against a dictionary and an optional allowlist.
type Scanner struct {
	dict  Dictionary
	allow *Allowlist
}

// NewScanner returns a scanner over dict. allow may be nil.
func NewScanner(dict Dictionary, allow *Allowlist) *Scanner {
	return &Scanner{dict: dict, allow: allow}
}

// Scan returns every unknown word-like token of text in reading order.
// Punctuation is never reported and every occurrence of an unknown word
// gets its own entry. Empty text gives an empty slice.
func (s *Scanner) Scan(input string) []Mistake {
	mistakes := []Mistake{}
	for _, tok := range text.Tokenize(input) {
		if !text.IsWordLike(tok.Text) {
			continue
		}
		lower := strings.ToLower(tok.Text)
		if s.dict.Contains(lower) || s.allow.Allows(lower) {
			continue
		}
		mistakes = append(mistakes, Mistake{Line: tok.Line, Word: tok.Text})
	}
	return mistakes
}

// ScanReader reads r fully and scans its content.
func (s *Scanner) ScanReader(r io.Reader) ([]Mistake, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return s.Scan(string(data)), nil
}

// Scan checks input against dict with no allowlist.
func Scan(input string, dict Dictionary) []Mistake {
	return NewScanner(dict, nil).Scan(input)
}
