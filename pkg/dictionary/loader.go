package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrSourceUnavailable is returned when a word list cannot be opened or read.
var ErrSourceUnavailable = errors.New("dictionary source unavailable")

// maxWordBytes bounds a single word. Lines may be any length.
const maxWordBytes = 1024 * 1024

// Load builds a fresh tree from r. Every whitespace separated word is
// lowercased and inserted; duplicates collapse.
func Load(r io.Reader) (*Tree, error) {
	tree := NewTree()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxWordBytes)
	scanner.Split(bufio.ScanWords)

	words := 0
	for scanner.Scan() {
		words++
		tree.Insert(strings.ToLower(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read failed after %d words: %v", ErrSourceUnavailable, words, err)
	}

	log.Debugf("Loaded %d distinct words from %d read", tree.Len(), words)
	return tree, nil
}

// LoadFile validates and loads the word list at path.
func LoadFile(path string) (*Tree, error) {
	if err := ValidateSource(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer file.Close()

	tree, err := Load(file)
	if err != nil {
		log.Errorf("Failed to load dictionary %s: %v", path, err)
		return nil, err
	}
	log.Debugf("Dictionary %s ready", path)
	return tree, nil
}
