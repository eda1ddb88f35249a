package Trees

// A node in the tree.
// left and right own their subtrees, parent is only a back-reference used
// to walk upwards. agg is the per-subtree aggregate and is only maintained
// when the owning tree has an augmenter.
type node[K, A any] struct {
	key                 K
	left, right, parent *node[K, A]
	height              int
	agg                 A
}

// newNode returns a detached leaf.
func newNode[K, A any](key K) *node[K, A] {
	return &node[K, A]{key: key}
}

// heightOf treats nil as the empty tree of height -1.
func heightOf[K, A any](n *node[K, A]) int {
	if n == nil {
		return -1
	}
	return n.height
}

// balance is height(left)-height(right).
func (n *node[K, A]) balance() int {
	return heightOf(n.left) - heightOf(n.right)
}

// updateHeight recomputes the cached height from the children and reports
// whether it changed.
func (n *node[K, A]) updateHeight() bool {
	h := max(heightOf(n.left), heightOf(n.right)) + 1
	if h == n.height {
		return false
	}
	n.height = h
	return true
}

// setLeft links c as the left child of n. The link and the back-reference
// are always assigned together.
func (n *node[K, A]) setLeft(c *node[K, A]) {
	n.left = c
	if c != nil {
		c.parent = n
	}
}

// setRight is the mirror of setLeft.
func (n *node[K, A]) setRight(c *node[K, A]) {
	n.right = c
	if c != nil {
		c.parent = n
	}
}

// detach clears every link of a node that has left the tree.
func (n *node[K, A]) detach() {
	n.left, n.right, n.parent = nil, nil, nil
}

// first is the lowest node of the subtree rooted at n.
func (n *node[K, A]) first() *node[K, A] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// last is the highest node of the subtree rooted at n.
func (n *node[K, A]) last() *node[K, A] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// next returns the in-order successor of n using parent links, or nil.
func (n *node[K, A]) next() *node[K, A] {
	if n.right != nil {
		return n.right.first()
	}
	for p := n.parent; p != nil; n, p = p, p.parent {
		if p.left == n {
			return p
		}
	}
	return nil
}

// prev returns the in-order predecessor of n using parent links, or nil.
func (n *node[K, A]) prev() *node[K, A] {
	if n.left != nil {
		return n.left.last()
	}
	for p := n.parent; p != nil; n, p = p, p.parent {
		if p.right == n {
			return p
		}
	}
	return nil
}

// depthOf computes the height of a subtree recursively, for trees that don't
// cache heights.
func depthOf[K, A any](n *node[K, A]) int {
	if n == nil {
		return -1
	}
	return max(depthOf(n.left), depthOf(n.right)) + 1
}
