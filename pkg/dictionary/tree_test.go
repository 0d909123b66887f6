package dictionary

import (
	"bytes"
	"testing"
)

func TestTreeInsertAndContains(t *testing.T) {
	tree := NewTree()
	for _, w := range []string{"cat", "car", "cart", "dog"} {
		tree.Insert(w)
	}

	tests := []struct {
		word string
		want bool
	}{
		{"cat", true},
		{"car", true},
		{"cart", true},
		{"dog", true},
		{"ca", false},    // prefix only
		{"carts", false}, // runs off the tree
		{"cow", false},
		{"", false},
		{"Cat", false}, // Contains does not fold
	}
	for _, tt := range tests {
		if got := tree.Contains(tt.word); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestTreeEmptyWord(t *testing.T) {
	tree := NewTree()
	if tree.Contains("") {
		t.Fatal("empty tree should not contain the empty word")
	}
	tree.Insert("")
	if !tree.Contains("") {
		t.Fatal("empty word should be found after inserting it")
	}
}

func TestTreeCaseInsensitiveMembership(t *testing.T) {
	for _, inserted := range []string{"Apple", "apple"} {
		tree, err := Load(bytes.NewBufferString(inserted))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if tree.ContainsFold("Apple") != tree.ContainsFold("apple") {
			t.Errorf("after loading %q: ContainsFold(Apple) != ContainsFold(apple)", inserted)
		}
		if !tree.ContainsFold("APPLE") {
			t.Errorf("after loading %q: APPLE not found", inserted)
		}
	}
}

func TestTreeInsertIdempotent(t *testing.T) {
	once := NewTree()
	once.Insert("hello")

	many := NewTree()
	for i := 0; i < 5; i++ {
		many.Insert("hello")
	}

	for _, w := range []string{"hello", "hell", "helloo", ""} {
		if once.Contains(w) != many.Contains(w) {
			t.Errorf("Contains(%q) differs between single and repeated insert", w)
		}
	}
	if many.Len() != 1 {
		t.Errorf("Len() = %d, want 1", many.Len())
	}
}

func TestTreeUnicode(t *testing.T) {
	tree := NewTree()
	tree.Insert("café")
	if !tree.Contains("café") {
		t.Error("café not found")
	}
	if tree.Contains("cafe") {
		t.Error("cafe should not match café")
	}

	matched, _ := tree.Walk("cafés")
	if matched != "café" {
		t.Errorf("Walk(cafés) matched %q, want café", matched)
	}
}

func TestTreeWalk(t *testing.T) {
	tree := NewTree()
	tree.Insert("fox")

	tests := []struct {
		prefix   string
		matched  string
		terminal bool
	}{
		{"fx", "f", false},
		{"fox", "fox", true},
		{"foxes", "fox", true},
		{"x", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		matched, cur := tree.Walk(tt.prefix)
		if matched != tt.matched {
			t.Errorf("Walk(%q) matched %q, want %q", tt.prefix, matched, tt.matched)
		}
		if cur.Terminal() != tt.terminal {
			t.Errorf("Walk(%q) terminal = %v, want %v", tt.prefix, cur.Terminal(), tt.terminal)
		}
	}
}

func TestCursorEachKeepsInsertionOrder(t *testing.T) {
	tree := NewTree()
	for _, w := range []string{"cz", "ca", "cm"} {
		tree.Insert(w)
	}
	_, cur := tree.Walk("c")

	var got []rune
	cur.Each(func(r rune, _ Cursor) {
		got = append(got, r)
	})
	if string(got) != "zam" {
		t.Errorf("children order = %q, want %q", string(got), "zam")
	}
}

func TestTreeDump(t *testing.T) {
	tree := NewTree()
	tree.Insert("a")
	tree.Insert("ab")

	var buf bytes.Buffer
	if err := tree.Dump(&buf); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	want := "-> a\n -> [end]\n -> b\n  -> [end]\n"
	if buf.String() != want {
		t.Errorf("Dump() =\n%q\nwant\n%q", buf.String(), want)
	}
}
