package Trees

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/g-m-twostay/go-trees/Queues"
)

// Traversals are recursive: the balanced trees bound the recursion depth by
// O(log n). On a degenerate BSTree the depth is O(n).

func inOrder[K, A any](n *node[K, A], out []K) []K {
	if n == nil {
		return out
	}
	out = inOrder(n.left, out)
	out = append(out, n.key)
	return inOrder(n.right, out)
}

func preOrder[K, A any](n *node[K, A], out []K) []K {
	if n == nil {
		return out
	}
	out = append(out, n.key)
	out = preOrder(n.left, out)
	return preOrder(n.right, out)
}

func postOrder[K, A any](n *node[K, A], out []K) []K {
	if n == nil {
		return out
	}
	out = postOrder(n.left, out)
	out = postOrder(n.right, out)
	return append(out, n.key)
}

// levelOrder is breadth first, left to right.
func levelOrder[K, A any](root *node[K, A], out []K) []K {
	if root == nil {
		return out
	}
	q := Queues.MakeRing[*node[K, A]](16)
	for q.Push(root); !q.Empty(); {
		n, _ := q.Pop()
		out = append(out, n.key)
		if n.left != nil {
			q.Push(n.left)
		}
		if n.right != nil {
			q.Push(n.right)
		}
	}
	return out
}

// emptySlot stands for a missing node in fprintLevels.
const emptySlot = "·"

// MaxPictureDepth is the depth of the deepest tree Fprint draws. Level d of
// the picture has 2^d slots.
const MaxPictureDepth = 6

// ErrTooDeep is returned by Fprint for trees deeper than MaxPictureDepth.
var ErrTooDeep = errors.New("tree too deep to draw")

// fprintLevels writes one line per level of the tree. Level d has 2^d
// slots, missing nodes are drawn as emptySlot, and lines are indented so
// that deeper levels start further left. Empty slots after the last node of
// a level are left out. Nothing is written for trees deeper than
// MaxPictureDepth.
func fprintLevels[K, A any](w io.Writer, root *node[K, A]) error {
	if root == nil {
		_, err := fmt.Fprintln(w, "EMPTY TREE.")
		return err
	}
	depth := depthOf(root)
	if depth > MaxPictureDepth {
		return errors.Wrapf(ErrTooDeep, "depth %d, at most %d", depth, MaxPictureDepth)
	}
	q := Queues.MakeRing[*node[K, A]](16)
	q.Push(root)
	for d := depth; d >= 0; d-- {
		slots := make([]string, 0, q.Size())
		for i := q.Size(); i > 0; i-- {
			n, _ := q.Pop()
			if n == nil {
				slots = append(slots, emptySlot)
				q.Push(nil)
				q.Push(nil)
				continue
			}
			slots = append(slots, fmt.Sprint(n.key))
			q.Push(n.left)
			q.Push(n.right)
		}
		for slots[len(slots)-1] == emptySlot {
			slots = slots[:len(slots)-1]
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", d), strings.Join(slots, "  ")); err != nil {
			return err
		}
	}
	return nil
}
