package Trees

import (
	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree with no balancing. Equal keys are kept as
// distinct nodes and descend to the right. Its height D depends on the
// insertion order and degrades to n-1 for sorted input, so use BuildBSTree
// with shuffling for bulk loads.
// Lookups and traversals are shared with AVLTree; insertion and deletion
// are the plain recursive algorithms.
type BSTree[K any] struct {
	base[K, struct{}]
}

var _ Tree[int] = (*BSTree[int])(nil)

// NewBSTree returns an empty BSTree ordering keys by their natural order.
func NewBSTree[K constraints.Ordered](opts ...Option) *BSTree[K] {
	return NewBSTreeFunc(compare[K], opts...)
}

// NewBSTreeFunc returns an empty BSTree ordering keys by cmp.
func NewBSTreeFunc[K any](cmp func(a, b K) int, opts ...Option) *BSTree[K] {
	c := newConfig(opts)
	c.duplicates = true
	return &BSTree[K]{newBase[K, struct{}](cmp, nil, c)}
}

// insert k into the subtree held by curPtr, whose owner is parent.
func (u *BSTree[K]) insert(curPtr **node[K, struct{}], parent *node[K, struct{}], k K) {
	if cur := *curPtr; cur == nil {
		n := newNode[K, struct{}](k)
		n.parent = parent
		*curPtr = n
	} else if u.cmp(k, cur.key) < 0 {
		u.insert(&cur.left, cur, k)
	} else {
		u.insert(&cur.right, cur, k)
	}
}

// Insert [Tree.Insert]. Always succeeds. Recursive.
// Time: O(D)
func (u *BSTree[K]) Insert(k K) bool {
	u.insert(&u.root, nil, k)
	u.count++
	return true
}

// remove k from the subtree held by curPtr. A node with two children takes
// the smallest key of its right subtree, which is then removed from there.
func (u *BSTree[K]) remove(curPtr **node[K, struct{}], k K) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	if c := u.cmp(k, cur.key); c < 0 {
		return u.remove(&cur.left, k)
	} else if c > 0 {
		return u.remove(&cur.right, k)
	}
	if cur.left != nil && cur.right != nil {
		m := cur.right.first()
		cur.key = m.key
		return u.remove(&cur.right, m.key)
	}
	c := cur.left
	if c == nil {
		c = cur.right
	}
	if c != nil {
		c.parent = cur.parent
	}
	*curPtr = c
	cur.detach()
	return true
}

// Delete [Tree.Delete]. Recursive.
// Time: O(D)
func (u *BSTree[K]) Delete(k K) bool {
	if !u.remove(&u.root, k) {
		return false
	}
	u.count--
	return true
}

// Depth [Tree.Depth]. Heights aren't cached, so this walks the whole tree.
// Time: O(n). Recursive.
func (u *BSTree[K]) Depth() int {
	return depthOf(u.root)
}

// Check verifies the order and parent links of every node and the node
// count. The returned error matches ErrCorrupt.
// Time: O(n). Recursive.
func (u *BSTree[K]) Check() error {
	return checker[K, struct{}]{cmp: u.cmp}.check(u.root, u.count)
}

// Corrupt [Tree.Corrupt]
func (u *BSTree[K]) Corrupt() bool {
	return u.Check() != nil
}
