package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// SourceInfo describes a word list file that passed validation.
type SourceInfo struct {
	Path  string
	Size  int64
	Empty bool
}

// textExtensions are accepted without a warning. Any other extension still
// loads, word lists carry no required extension.
var textExtensions = []string{".txt", ".dic", ".words", ""}

// ValidateSource checks that path names a readable regular file.
// Failures wrap ErrSourceUnavailable.
func ValidateSource(path string) error {
	_, err := Inspect(path)
	return err
}

// Inspect stats and probes path the same way ValidateSource does and reports what it found.
func Inspect(path string) (SourceInfo, error) {
	if path == "" {
		return SourceInfo{}, fmt.Errorf("%w: empty path", ErrSourceUnavailable)
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return SourceInfo{}, fmt.Errorf("%w: failed to stat %s: %v", ErrSourceUnavailable, path, err)
	}
	if !fileInfo.Mode().IsRegular() {
		return SourceInfo{}, fmt.Errorf("%w: %s is not a regular file", ErrSourceUnavailable, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return SourceInfo{}, fmt.Errorf("%w: failed to open %s: %v", ErrSourceUnavailable, path, err)
	}
	defer file.Close()

	// Probe a byte so unreadable files fail here rather than halfway through a load.
	if fileInfo.Size() > 0 {
		probe := make([]byte, 1)
		if _, err := file.Read(probe); err != nil {
			return SourceInfo{}, fmt.Errorf("%w: failed to read %s: %v", ErrSourceUnavailable, path, err)
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	known := false
	for _, e := range textExtensions {
		if ext == e {
			known = true
			break
		}
	}
	if !known {
		log.Debugf("Word list %s has unusual extension %q, loading as plain text", path, ext)
	}

	if fileInfo.Size() == 0 {
		log.Warnf("Word list %s is empty", path)
	}

	return SourceInfo{
		Path:  path,
		Size:  fileInfo.Size(),
		Empty: fileInfo.Size() == 0,
	}, nil
}
