package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Interval is the closed interval [Low, High]. It is valid when Low <= High.
// Intervals are ordered by Low, then by High.
type Interval[T constraints.Ordered] struct {
	Low, High T
}

// Valid reports whether Low <= High.
func (iv Interval[T]) Valid() bool {
	return iv.Low <= iv.High
}

// Overlaps reports whether iv and o share at least one point.
func (iv Interval[T]) Overlaps(o Interval[T]) bool {
	return iv.Low <= o.High && o.Low <= iv.High
}

// Contains reports whether p lies within iv.
func (iv Interval[T]) Contains(p T) bool {
	return iv.Low <= p && p <= iv.High
}

// Compare orders iv against o by Low, then by High.
func (iv Interval[T]) Compare(o Interval[T]) int {
	if c := compare(iv.Low, o.Low); c != 0 {
		return c
	}
	return compare(iv.High, o.High)
}

func (iv Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v]", iv.Low, iv.High)
}

func compareIntervals[T constraints.Ordered](a, b Interval[T]) int {
	return a.Compare(b)
}
