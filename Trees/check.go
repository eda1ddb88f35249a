package Trees

import (
	"github.com/pkg/errors"
)

// ErrCorrupt is matched by every error returned from the Check methods.
var ErrCorrupt = errors.New("corrupt tree")

// checker walks a tree and reports the first structural violation it finds.
type checker[K, A any] struct {
	cmp func(K, K) int
	// strict forbids equal keys.
	strict bool
	// balanced checks cached heights and the AVL balance condition.
	balanced bool
	// aggOK reports whether the aggregate of a node is correct, given that
	// its children are. nil skips the aggregate check.
	aggOK func(*node[K, A]) bool
}

// check the whole tree rooted at root, which must hold count nodes.
func (c checker[K, A]) check(root *node[K, A], count int) error {
	if root != nil && root.parent != nil {
		return errors.Wrap(ErrCorrupt, "root has a parent")
	}
	n, err := c.walk(root, nil, nil)
	if err != nil {
		return err
	}
	if n != count {
		return errors.Wrapf(ErrCorrupt, "counted %d nodes, tree records %d", n, count)
	}
	return nil
}

// walk checks the subtree at n, whose keys must lie within the bounds lo and
// hi when they are present. Returns the number of nodes in the subtree.
func (c checker[K, A]) walk(n *node[K, A], lo, hi *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	for _, ch := range [2]*node[K, A]{n.left, n.right} {
		if ch != nil && ch.parent != n {
			return 0, errors.Wrapf(ErrCorrupt, "child %v of %v has the wrong parent", ch.key, n.key)
		}
	}
	if lo != nil && !c.inOrder(*lo, n.key) {
		return 0, errors.Wrapf(ErrCorrupt, "key %v out of order after %v", n.key, *lo)
	}
	if hi != nil && !c.inOrder(n.key, *hi) {
		return 0, errors.Wrapf(ErrCorrupt, "key %v out of order before %v", n.key, *hi)
	}
	l, err := c.walk(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	r, err := c.walk(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}
	if c.balanced {
		if h := max(heightOf(n.left), heightOf(n.right)) + 1; h != n.height {
			return 0, errors.Wrapf(ErrCorrupt, "node %v has height %d, want %d", n.key, n.height, h)
		}
		if b := n.balance(); b > 1 || b < -1 {
			return 0, errors.Wrapf(ErrCorrupt, "node %v has balance factor %d", n.key, b)
		}
	}
	if c.aggOK != nil && !c.aggOK(n) {
		return 0, errors.Wrapf(ErrCorrupt, "node %v has a stale aggregate %v", n.key, n.agg)
	}
	return l + r + 1, nil
}

// inOrder reports whether a may precede b.
func (c checker[K, A]) inOrder(a, b K) bool {
	if c.strict {
		return c.cmp(a, b) < 0
	}
	return c.cmp(a, b) <= 0
}
