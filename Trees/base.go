package Trees

import (
	"io"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// augmenter recomputes the aggregate of n from its own key and the
// aggregates of its children, which are already up to date when it is
// called. It reports whether the stored aggregate changed.
type augmenter[K, A any] func(n *node[K, A]) bool

// base is the AVL engine shared by AVLTree and IntervalTree. K is the key
// type ordered by cmp; A is the type of the per-subtree aggregate kept up to
// date by aug, which is nil for trees without augmentation.
// D below refers to the height of the tree, which never exceeds
// 1.44*log2(n+2)-0.33.
type base[K, A any] struct {
	root       *node[K, A]
	count      int
	rebalances int
	cmp        func(K, K) int
	aug        augmenter[K, A]
	dups       bool
	log        *zap.Logger
}

func newBase[K, A any](cmp func(K, K) int, aug augmenter[K, A], c config) base[K, A] {
	return base[K, A]{cmp: cmp, aug: aug, dups: c.duplicates, log: c.log}
}

// compare is the natural three-way comparison of ordered keys.
func compare[K constraints.Ordered](a, b K) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// assert stops the program when the engine reaches a state a correct
// implementation can't reach.
func (u *base[K, A]) assert(ok bool, msg string, fields ...zap.Field) {
	if !ok {
		u.log.Panic(msg, fields...)
	}
}

// fix recomputes the height and the aggregate of n from its children.
// Reports whether either of them changed.
func (u *base[K, A]) fix(n *node[K, A]) bool {
	changed := n.updateHeight()
	if u.aug != nil && u.aug(n) {
		changed = true
	}
	return changed
}

// replace puts n in the position old holds under its parent, or makes it the
// root. n may be nil.
func (u *base[K, A]) replace(old, n *node[K, A]) {
	p := old.parent
	switch {
	case p == nil:
		u.root = n
	case p.left == old:
		p.left = n
	default:
		u.assert(p.right == old, "parent does not link to its child")
		p.right = n
	}
	if n != nil {
		n.parent = p
	}
}

// rotateLeft lifts x.right into the position of x and returns it.
// Time: O(1)
func (u *base[K, A]) rotateLeft(x *node[K, A]) *node[K, A] {
	y := x.right
	u.replace(x, y)
	x.setRight(y.left)
	y.setLeft(x)
	u.fix(x)
	u.fix(y)
	return y
}

// rotateRight lifts x.left into the position of x and returns it.
// Time: O(1)
func (u *base[K, A]) rotateRight(x *node[K, A]) *node[K, A] {
	y := x.left
	u.replace(x, y)
	x.setLeft(y.right)
	y.setRight(x)
	u.fix(x)
	u.fix(y)
	return y
}

// rebalance restores the balance of a, whose balance factor is ±2, and
// returns the new root of the subtree. The four cases are named after the
// path from a to the heavy grandchild.
// Time: O(1)
func (u *base[K, A]) rebalance(a *node[K, A]) *node[K, A] {
	var r *node[K, A]
	var c string
	if b := a.balance(); b < -1 {
		u.assert(a.right != nil, "right heavy node without a right child")
		if a.right.balance() <= 0 {
			c, r = "RR", u.rotateLeft(a)
		} else {
			u.rotateRight(a.right)
			c, r = "RL", u.rotateLeft(a)
		}
	} else if b > 1 {
		u.assert(a.left != nil, "left heavy node without a left child")
		if a.left.balance() >= 0 {
			c, r = "LL", u.rotateRight(a)
		} else {
			u.rotateLeft(a.left)
			c, r = "LR", u.rotateRight(a)
		}
	} else {
		return a
	}
	u.rebalances++
	if ce := u.log.Check(zap.DebugLevel, "rebalance"); ce != nil {
		ce.Write(zap.String("case", c), zap.Int("height", r.height), zap.Int("rebalances", u.rebalances))
	}
	return r
}

// search returns the node holding k, or nil.
// Time: O(D); Space: O(1)
func (u *base[K, A]) search(k K) *node[K, A] {
	for cur := u.root; cur != nil; {
		if c := u.cmp(k, cur.key); c < 0 {
			cur = cur.left
		} else if c > 0 {
			cur = cur.right
		} else {
			return cur
		}
	}
	return nil
}

// insert k as a new leaf and rebalance. Returns false when k is already
// present and duplicates aren't allowed, in which case nothing changes.
// Time: O(D)
func (u *base[K, A]) insert(k K) bool {
	var p *node[K, A]
	left := false
	for cur := u.root; cur != nil; {
		c := u.cmp(k, cur.key)
		if c == 0 && !u.dups {
			return false
		}
		p, left = cur, c < 0
		if left {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	n := newNode[K, A](k)
	if u.aug != nil {
		u.aug(n)
	}
	if p == nil {
		u.root = n
	} else if left {
		p.setLeft(n)
	} else {
		p.setRight(n)
	}
	u.count++
	u.retraceInsert(p)
	return true
}

// retraceInsert walks from the parent of a new leaf towards the root. It
// stops at the first node whose height and aggregate are both unchanged.
// A single insertion unbalances at most one node, and rotating it brings the
// subtree back to its old height, so above it only aggregates can change.
func (u *base[K, A]) retraceInsert(p *node[K, A]) {
	for p != nil {
		if !u.fix(p) {
			return
		}
		if b := p.balance(); b > 1 || b < -1 {
			p = u.rebalance(p)
		}
		p = p.parent
	}
}

// remove the node holding k. Returns false if there is none.
// Time: O(D)
func (u *base[K, A]) remove(k K) bool {
	n := u.search(k)
	if n == nil {
		return false
	}
	u.removeNode(n)
	return true
}

// removeNode unlinks n. A node with two children takes the key of its
// in-order successor, and the successor, which has no left child, is
// unlinked instead.
func (u *base[K, A]) removeNode(n *node[K, A]) {
	if n.left != nil && n.right != nil {
		s := n.right.first()
		n.key = s.key
		n = s
	}
	c := n.left
	if c == nil {
		c = n.right
	}
	p := n.parent
	u.replace(n, c)
	n.detach()
	u.count--
	u.retraceDelete(p)
}

// retraceDelete walks from p up to the root. Unlike insertion a deletion can
// unbalance several ancestors, so every one of them is checked.
func (u *base[K, A]) retraceDelete(p *node[K, A]) {
	for p != nil {
		u.fix(p)
		if b := p.balance(); b > 1 || b < -1 {
			p = u.rebalance(p)
		}
		p = p.parent
	}
}

// Search for k. The second value is false when k isn't in the tree.
// Time: O(D); Space: O(1)
func (u *base[K, A]) Search(k K) (K, bool) {
	if n := u.search(k); n != nil {
		return n.key, true
	}
	return *new(K), false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *base[K, A]) Has(k K) bool {
	return u.search(k) != nil
}

// Delete [Tree.Delete]. Deleting an absent key is a no-op that returns false.
// Time: O(D)
func (u *base[K, A]) Delete(k K) bool {
	return u.remove(k)
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *base[K, A]) Minimum() (K, bool) {
	if n := u.root.first(); n != nil {
		return n.key, true
	}
	return *new(K), false
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *base[K, A]) Maximum() (K, bool) {
	if n := u.root.last(); n != nil {
		return n.key, true
	}
	return *new(K), false
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *base[K, A]) Predecessor(k K) (K, bool) {
	var p *node[K, A]
	for cur := u.root; cur != nil; {
		if u.cmp(k, cur.key) <= 0 {
			cur = cur.left
		} else {
			p = cur
			cur = cur.right
		}
	}
	if p == nil {
		return *new(K), false
	}
	return p.key, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *base[K, A]) Successor(k K) (K, bool) {
	var p *node[K, A]
	for cur := u.root; cur != nil; {
		if u.cmp(k, cur.key) < 0 {
			p = cur
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	if p == nil {
		return *new(K), false
	}
	return p.key, true
}

// Count of nodes in the tree.
// Time: O(1)
func (u *base[K, A]) Count() int {
	return u.count
}

// Depth is the height of the root, -1 for an empty tree.
// Time: O(1)
func (u *base[K, A]) Depth() int {
	return heightOf(u.root)
}

// RebalanceCount is the number of rebalancing operations performed since the
// tree was created. A double rotation counts once.
func (u *base[K, A]) RebalanceCount() int {
	return u.rebalances
}

// Clear drops every node. The rebalance count is kept.
func (u *base[K, A]) Clear() {
	u.root, u.count = nil, 0
}

// InOrder [Tree.InOrder]
// Time: O(n)
func (u *base[K, A]) InOrder() []K {
	return inOrder(u.root, make([]K, 0, u.count))
}

// PreOrder [Tree.PreOrder]
// Time: O(n)
func (u *base[K, A]) PreOrder() []K {
	return preOrder(u.root, make([]K, 0, u.count))
}

// PostOrder [Tree.PostOrder]
// Time: O(n)
func (u *base[K, A]) PostOrder() []K {
	return postOrder(u.root, make([]K, 0, u.count))
}

// LevelOrder returns the keys breadth first, left to right.
// Time: O(n)
func (u *base[K, A]) LevelOrder() []K {
	return levelOrder(u.root, make([]K, 0, u.count))
}

// Fprint draws the tree level by level to w, see fprintLevels. Trees deeper
// than MaxPictureDepth yield ErrTooDeep and nothing is written.
func (u *base[K, A]) Fprint(w io.Writer) error {
	return fprintLevels(w, u.root)
}
