package check

import (
	"reflect"
	"strings"
	"testing"

	"github.com/bastiangx/wordcheck/pkg/dictionary"
)

func dict(t *testing.T, words string) *dictionary.Tree {
	t.Helper()
	tree, err := dictionary.Load(strings.NewReader(words))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return tree
}

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		words string
		input string
		want  []Mistake
	}{
		{
			name:  "scan order",
			words: "cat dog",
			input: "cat dog\nxq zz",
			want:  []Mistake{{2, "xq"}, {2, "zz"}},
		},
		{
			name:  "punctuation never flagged",
			words: "cat dog",
			input: "cat, dog!",
			want:  []Mistake{},
		},
		{
			name:  "original casing kept",
			words: "the quick brown fox",
			input: "The QUICK Brwn fox",
			want:  []Mistake{{1, "Brwn"}},
		},
		{
			name:  "duplicates each reported",
			words: "a",
			input: "teh a\nteh\na teh",
			want:  []Mistake{{1, "teh"}, {2, "teh"}, {3, "teh"}},
		},
		{
			name:  "empty text",
			words: "a",
			input: "",
			want:  []Mistake{},
		},
		{
			name:  "end to end",
			words: "the quick brown fox",
			input: "the qick brown fx",
			want:  []Mistake{{1, "qick"}, {1, "fx"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan(tt.input, dict(t, tt.words))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScannerAllowlist(t *testing.T) {
	allow := NewAllowlist([]string{"Golang"}, []string{"http"})
	s := NewScanner(dict(t, "see"), allow)

	got := s.Scan("see golang GOLANG https gopher")
	want := []Mistake{{1, "gopher"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan() = %v, want %v", got, want)
	}
}

func TestScanReader(t *testing.T) {
	s := NewScanner(dict(t, "one two"), nil)
	got, err := s.ScanReader(strings.NewReader("one\nthree two"))
	if err != nil {
		t.Fatalf("ScanReader: %v", err)
	}
	want := []Mistake{{2, "three"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ScanReader() = %v, want %v", got, want)
	}
}

func TestMistakeString(t *testing.T) {
	if got := (Mistake{Line: 3, Word: "teh"}).String(); got != "Line 3: teh" {
		t.Errorf("String() = %q", got)
	}
}
