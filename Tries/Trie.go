// Package Tries implements a prefix tree over strings. Strings are taken
// byte by byte, so any string is a word, valid UTF-8 or not.
package Tries

import (
	"slices"

	"github.com/g-m-twostay/go-trees/Queues"
)

// A node of the Trie. word is set when the path from the root to this node
// spells a stored word.
type node struct {
	children map[byte]*node
	word     bool
}

// child returns the child for b, creating it if needed.
func (n *node) child(b byte) *node {
	if c, ok := n.children[b]; ok {
		return c
	}
	if n.children == nil {
		n.children = make(map[byte]*node)
	}
	c := new(node)
	n.children[b] = c
	return c
}

// Trie is a prefix tree indexed by byte. The empty string is a valid word.
// The zero value is an empty Trie ready to use.
type Trie struct {
	root node
	sz   int
}

// Build returns a Trie holding words.
func Build(words []string) *Trie {
	u := new(Trie)
	for _, w := range words {
		u.Insert(w)
	}
	return u
}

// Insert word. Returns false if it was already present.
// Time: O(len(word))
func (u *Trie) Insert(word string) bool {
	cur := &u.root
	for i := 0; i < len(word); i++ {
		cur = cur.child(word[i])
	}
	if cur.word {
		return false
	}
	cur.word = true
	u.sz++
	return true
}

// find the node reached by spelling s, or nil.
func (u *Trie) find(s string) *node {
	cur := &u.root
	for i := 0; i < len(s); i++ {
		if cur = cur.children[s[i]]; cur == nil {
			return nil
		}
	}
	return cur
}

// Search reports whether word was inserted.
// Time: O(len(word))
func (u *Trie) Search(word string) bool {
	n := u.find(word)
	return n != nil && n.word
}

// StartsWith reports whether some inserted word starts with prefix.
// Time: O(len(prefix))
func (u *Trie) StartsWith(prefix string) bool {
	n := u.find(prefix)
	return n != nil && (n.word || len(n.children) > 0)
}

// Len is the number of words in the Trie.
func (u *Trie) Len() int {
	return u.sz
}

// visit is a node waiting in the breadth first walk with the string that
// leads to it.
type visit struct {
	n      *node
	prefix []byte
}

// WordsWithPrefix returns every inserted word starting with prefix, shortest
// first, and words of equal length in byte order. For valid UTF-8 byte
// order is rune order.
// Time: O(size of the subtree below prefix)
func (u *Trie) WordsWithPrefix(prefix string) []string {
	n := u.find(prefix)
	if n == nil {
		return nil
	}
	var res []string
	q := Queues.MakeRing[visit](16)
	for q.Push(visit{n, []byte(prefix)}); !q.Empty(); {
		v, _ := q.Pop()
		if v.n.word {
			res = append(res, string(v.prefix))
		}
		bs := make([]byte, 0, len(v.n.children))
		for b := range v.n.children {
			bs = append(bs, b)
		}
		slices.Sort(bs)
		for _, b := range bs {
			q.Push(visit{v.n.children[b], append(slices.Clip(v.prefix), b)})
		}
	}
	return res
}
