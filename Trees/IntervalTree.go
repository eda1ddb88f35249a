package Trees

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// IntervalTree stores closed intervals in an AVL tree ordered by (Low, High).
// Every node is augmented with the greatest High in its subtree, which lets
// overlap queries skip subtrees that end before the query starts.
// Equal intervals are rejected unless the tree is built WithDuplicates.
// IntervalTree shouldn't be created directly using struct literal.
type IntervalTree[T constraints.Ordered] struct {
	base[Interval[T], T]
}

// NewIntervalTree returns an empty IntervalTree.
func NewIntervalTree[T constraints.Ordered](opts ...Option) *IntervalTree[T] {
	return &IntervalTree[T]{newBase[Interval[T], T](compareIntervals[T], maxHigh[T], newConfig(opts))}
}

// maxHigh is the augmenter of IntervalTree.
func maxHigh[T constraints.Ordered](n *node[Interval[T], T]) bool {
	m := subtreeHigh(n)
	if m == n.agg {
		return false
	}
	n.agg = m
	return true
}

// subtreeHigh computes max(n.key.High, n.left.agg, n.right.agg), with
// missing children ignored.
func subtreeHigh[T constraints.Ordered](n *node[Interval[T], T]) T {
	m := n.key.High
	if n.left != nil && n.left.agg > m {
		m = n.left.agg
	}
	if n.right != nil && n.right.agg > m {
		m = n.right.agg
	}
	return m
}

func validate[T constraints.Ordered](iv Interval[T]) error {
	if !iv.Valid() {
		return errors.WithStack(InvalidIntervalError[T]{iv})
	}
	return nil
}

// Insert iv. An invalid interval is rejected with an InvalidIntervalError
// before the tree is touched. Returns false when iv is already present and
// duplicates aren't allowed.
// Time: O(D)
func (u *IntervalTree[T]) Insert(iv Interval[T]) (bool, error) {
	if err := validate(iv); err != nil {
		return false, err
	}
	return u.insert(iv), nil
}

// QueryOverlap returns some stored interval overlapping iv. Which one is
// found depends on the shape of the tree; it isn't necessarily the lowest.
// The second value is false when nothing overlaps.
// Time: O(D); Space: O(1)
func (u *IntervalTree[T]) QueryOverlap(iv Interval[T]) (Interval[T], bool, error) {
	if err := validate(iv); err != nil {
		return Interval[T]{}, false, err
	}
	for cur := u.root; cur != nil; {
		if cur.key.Overlaps(iv) {
			return cur.key, true, nil
		}
		if iv.High < cur.key.Low {
			// everything on the right starts even later.
			cur = cur.left
		} else if cur.left != nil && cur.left.agg >= iv.Low {
			// some interval on the left reaches iv.Low. If none of those
			// overlap, they all start after iv.High, and so does the right.
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return Interval[T]{}, false, nil
}

// QueryAllOverlaps returns every stored interval overlapping iv, in
// ascending order. A subtree is skipped when its greatest High is below
// iv.Low, and a right subtree when iv ends before the node starts.
// Time: O(min(n, k*D)) for k results. Recursive.
func (u *IntervalTree[T]) QueryAllOverlaps(iv Interval[T]) ([]Interval[T], error) {
	if err := validate(iv); err != nil {
		return nil, err
	}
	return collectOverlaps(u.root, iv, nil), nil
}

func collectOverlaps[T constraints.Ordered](n *node[Interval[T], T], iv Interval[T], out []Interval[T]) []Interval[T] {
	if n == nil || n.agg < iv.Low {
		return out
	}
	out = collectOverlaps(n.left, iv, out)
	if n.key.Overlaps(iv) {
		out = append(out, n.key)
	}
	if iv.High >= n.key.Low {
		out = collectOverlaps(n.right, iv, out)
	}
	return out
}

// MaxHigh returns the greatest High stored in the tree.
// Time: O(1)
func (u *IntervalTree[T]) MaxHigh() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.agg, true
}

// Check verifies what AVLTree.Check does and, in addition, the greatest High
// cached at every node. The returned error matches ErrCorrupt.
// Time: O(n). Recursive.
func (u *IntervalTree[T]) Check() error {
	return checker[Interval[T], T]{
		cmp:      u.cmp,
		strict:   !u.dups,
		balanced: true,
		aggOK:    func(n *node[Interval[T], T]) bool { return n.agg == subtreeHigh(n) },
	}.check(u.root, u.count)
}

// Corrupt returns whether Check finds a violation.
func (u *IntervalTree[T]) Corrupt() bool {
	return u.Check() != nil
}
