package Trees

import (
	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree that keeps, for every node, the heights of
// its two subtrees within one of each other. It restores the condition after
// each insertion or deletion through rotations, so the height D of the tree
// is less than 1.44*log2(n+2)-0.33.
// Every node holds a reference to its parent in addition to its children;
// the cached height of a node counts edges, so a leaf has height 0.
// By default the tree is a set: inserting a key that compares equal to a
// stored one fails. WithDuplicates turns it into a multiset.
// AVLTree shouldn't be created directly using struct literal.
type AVLTree[K any] struct {
	base[K, struct{}]
}

var _ Tree[int] = (*AVLTree[int])(nil)

// New returns an empty AVLTree ordering keys by their natural order.
func New[K constraints.Ordered](opts ...Option) *AVLTree[K] {
	return NewFunc(compare[K], opts...)
}

// NewFunc returns an empty AVLTree ordering keys by cmp, which returns a
// negative number when a < b, a positive number when a > b and 0 otherwise.
func NewFunc[K any](cmp func(a, b K) int, opts ...Option) *AVLTree[K] {
	return &AVLTree[K]{newBase[K, struct{}](cmp, nil, newConfig(opts))}
}

// Insert [Tree.Insert]. Returns false, leaving the tree untouched, when k is
// already present and duplicates aren't allowed.
// Time: O(D)
func (u *AVLTree[K]) Insert(k K) bool {
	return u.insert(k)
}

// Check verifies the order, parent links, heights and balance of every node
// and the node count. The returned error matches ErrCorrupt.
// Time: O(n). Recursive.
func (u *AVLTree[K]) Check() error {
	return checker[K, struct{}]{cmp: u.cmp, strict: !u.dups, balanced: true}.check(u.root, u.count)
}

// Corrupt [Tree.Corrupt]
func (u *AVLTree[K]) Corrupt() bool {
	return u.Check() != nil
}
