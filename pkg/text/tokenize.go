// Package text splits raw text into line-numbered tokens:
// words, single punctuation marks, never whitespace.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a piece of text and the 1-indexed line it came from.
type Token struct {
	Line int
	Text string
}

// IsWordRune reports whether r belongs to a word run: letters, digits and underscore.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// IsWordLike reports whether token starts with a word rune.
// Only word-like tokens are looked up in a dictionary.
func IsWordLike(token string) bool {
	r, _ := utf8.DecodeRuneInString(token)
	return token != "" && IsWordRune(r)
}

// Tokenize returns the tokens of text in reading order.
func Tokenize(text string) []Token {
	tokens := make([]Token, 0, len(text)/4)
	for i, line := range strings.Split(text, "\n") {
		tokens = appendLine(tokens, i+1, line)
	}
	return tokens
}

// TokenizeLine tokenizes a single line that is known to contain no newline.
func TokenizeLine(lineNumber int, line string) []Token {
	return appendLine(nil, lineNumber, line)
}

func appendLine(tokens []Token, lineNumber int, line string) []Token {
	start := -1
	for i, r := range line {
		if IsWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, Token{Line: lineNumber, Text: line[start:i]})
			start = -1
		}
		if unicode.IsSpace(r) {
			continue
		}
		tokens = append(tokens, Token{Line: lineNumber, Text: string(r)})
	}
	if start >= 0 {
		tokens = append(tokens, Token{Line: lineNumber, Text: line[start:]})
	}
	return tokens
}
