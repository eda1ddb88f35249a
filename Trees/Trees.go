// Package Trees implements in-memory search trees: an AVL tree whose engine
// can carry a per-subtree aggregate, the interval tree built on that
// aggregate, a plain unbalanced binary search tree and a binary indexed tree.
//
// None of the trees are safe for concurrent use. Guard a tree shared between
// goroutines with a single lock; read-only methods may share a read lock.
package Trees

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Tree represents an ordered set implemented using linked nodes.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, calling Minimum on
// an empty tree returns (x T, false). In this case the value of x is the
// zero value of T and shouldn't be used.
// Methods implemented recursively are noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Insert v into the Tree. Returns true if a node was added.
	//Exact behavior on duplicates depends on implementation.
	Insert(v T) bool
	//Delete v from the Tree. Returns true if a node was removed, deleting
	//an absent value is a no-op.
	Delete(v T) bool
	//Search for v. Returns the stored value equal to v.
	Search(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Count of elements in the tree.
	Count() int
	//Depth of the tree: the number of edges on the longest path from the
	//root to a leaf. -1 for an empty tree.
	Depth() int
	//InOrder returns a new slice with the elements in in-order.
	InOrder() []T
	//PreOrder returns a new slice with the elements in pre-order.
	PreOrder() []T
	//PostOrder returns a new slice with the elements in post-order.
	PostOrder() []T
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
}

// ErrInvalidArgument is matched, through errors.Is, by errors reporting an
// argument no tree accepts.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidIntervalError reports an interval whose low end is above its high end.
type InvalidIntervalError[T constraints.Ordered] struct {
	Interval Interval[T]
}

func (e InvalidIntervalError[T]) Error() string {
	return fmt.Sprintf("invalid interval %v: low end %v is greater than high end %v", e.Interval, e.Interval.Low, e.Interval.High)
}

// Is makes the error match ErrInvalidArgument.
func (e InvalidIntervalError[T]) Is(target error) bool {
	return target == ErrInvalidArgument
}
