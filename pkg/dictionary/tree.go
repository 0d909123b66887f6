// Package dictionary builds the prefix tree that backs every lookup:
// exact membership for the scanner and subtree walks for suggestions.
package dictionary

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// node is one rune step below its parent.
// kids gives O(1) edge lookup, order keeps the edges in insertion order
// so that enumeration is deterministic.
type node struct {
	kids     map[rune]*node
	order    []rune
	terminal bool
}

func newNode() *node {
	return &node{kids: make(map[rune]*node)}
}

func (n *node) child(r rune) (*node, bool) {
	c, ok := n.kids[r]
	return c, ok
}

func (n *node) ensure(r rune) *node {
	if c, ok := n.kids[r]; ok {
		return c
	}
	c := newNode()
	n.kids[r] = c
	n.order = append(n.order, r)
	return c
}

// Tree is a rune-keyed prefix tree. The zero value is not usable, use NewTree.
type Tree struct {
	root  *node
	words int
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{root: newNode()}
}

// Insert adds word to the tree. Inserting the same word again is a no-op.
// No case folding happens here, callers lowercase beforehand.
func (t *Tree) Insert(word string) {
	cur := t.root
	for _, r := range word {
		cur = cur.ensure(r)
	}
	if !cur.terminal {
		cur.terminal = true
		t.words++
	}
}

// Contains reports whether word was inserted, compared rune for rune.
func (t *Tree) Contains(word string) bool {
	cur := t.root
	for _, r := range word {
		next, ok := cur.child(r)
		if !ok {
			return false
		}
		cur = next
	}
	return cur.terminal
}

// ContainsFold is Contains on the lowercased word.
func (t *Tree) ContainsFold(word string) bool {
	return t.Contains(strings.ToLower(word))
}

// Len returns the number of distinct words stored.
func (t *Tree) Len() int {
	return t.words
}

// Walk follows prefix from the root for as long as edges exist and returns
// the part of prefix that matched together with a cursor on the node reached.
// An empty match leaves the cursor on the root.
func (t *Tree) Walk(prefix string) (string, Cursor) {
	cur := t.root
	matched := 0
	for matched < len(prefix) {
		r, size := utf8.DecodeRuneInString(prefix[matched:])
		next, ok := cur.child(r)
		if !ok {
			break
		}
		cur = next
		matched += size
	}
	return prefix[:matched], Cursor{n: cur}
}

// Cursor points at a node inside a Tree. It is read-only.
type Cursor struct {
	n *node
}

// Terminal reports whether the path to the cursor spells a stored word.
func (c Cursor) Terminal() bool {
	return c.n != nil && c.n.terminal
}

// Each calls fn for every child edge in insertion order.
func (c Cursor) Each(fn func(r rune, child Cursor)) {
	if c.n == nil {
		return
	}
	for _, r := range c.n.order {
		fn(r, Cursor{n: c.n.kids[r]})
	}
}

// Dump writes an indented outline of the tree, one edge per line,
// with "-> [end]" marking terminal nodes.
func (t *Tree) Dump(w io.Writer) error {
	type frame struct {
		n     *node
		level int
		label rune
		edge  bool
	}
	stack := []frame{{n: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		indent := strings.Repeat(" ", f.level)
		if f.edge {
			if _, err := fmt.Fprintf(w, "%s-> %c\n", strings.Repeat(" ", f.level-1), f.label); err != nil {
				return err
			}
		}
		if f.n.terminal {
			if _, err := fmt.Fprintf(w, "%s-> [end]\n", indent); err != nil {
				return err
			}
		}
		for i := len(f.n.order) - 1; i >= 0; i-- {
			r := f.n.order[i]
			stack = append(stack, frame{n: f.n.kids[r], level: f.level + 1, label: r, edge: true})
		}
	}
	return nil
}
