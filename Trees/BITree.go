package Trees

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Number is a type BITree can sum.
type Number interface {
	constraints.Integer | constraints.Float
}

// IndexOutOfRangeError reports an index outside [0, Size()).
type IndexOutOfRangeError struct {
	Index, Size int
}

func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Size)
}

// Is makes the error match ErrInvalidArgument.
func (e IndexOutOfRangeError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// BITree is a binary indexed (Fenwick) tree over a fixed number of values.
// It updates a value and sums a prefix of the values in O(log n).
// sums[i] holds the sum of the values in (i-lsb(i), i], 1 based.
type BITree[T Number] struct {
	vs   []T
	sums []T
}

// BuildBITree returns a BITree over a copy of vs.
// Time: O(n)
func BuildBITree[T Number](vs []T) *BITree[T] {
	u := &BITree[T]{vs: append([]T(nil), vs...), sums: make([]T, len(vs)+1)}
	for i, v := range u.vs {
		j := i + 1
		u.sums[j] += v
		if p := j + j&-j; p < len(u.sums) {
			u.sums[p] += u.sums[j]
		}
	}
	return u
}

// Size is the number of values.
func (u *BITree[T]) Size() int {
	return len(u.vs)
}

// Values returns a copy of the values.
func (u *BITree[T]) Values() []T {
	return append([]T(nil), u.vs...)
}

func (u *BITree[T]) checkIndex(i int) error {
	if i < 0 || i >= len(u.vs) {
		return errors.WithStack(IndexOutOfRangeError{i, len(u.vs)})
	}
	return nil
}

// Add d to the value at index i.
// Time: O(log n)
func (u *BITree[T]) Add(i int, d T) error {
	if err := u.checkIndex(i); err != nil {
		return err
	}
	u.vs[i] += d
	for j := i + 1; j < len(u.sums); j += j & -j {
		u.sums[j] += d
	}
	return nil
}

// Update sets the value at index i to v.
// Time: O(log n)
func (u *BITree[T]) Update(i int, v T) error {
	if err := u.checkIndex(i); err != nil {
		return err
	}
	return u.Add(i, v-u.vs[i])
}

// PrefixSum returns the sum of the values at indexes 0 to i inclusive.
// Time: O(log n)
func (u *BITree[T]) PrefixSum(i int) (T, error) {
	if err := u.checkIndex(i); err != nil {
		return 0, err
	}
	var s T
	for j := i + 1; j > 0; j -= j & -j {
		s += u.sums[j]
	}
	return s, nil
}

// RangeSum returns the sum of the values at indexes i to j inclusive.
// Time: O(log n)
func (u *BITree[T]) RangeSum(i, j int) (T, error) {
	if i > j {
		return 0, errors.Wrapf(ErrInvalidArgument, "empty range [%d, %d]", i, j)
	}
	hi, err := u.PrefixSum(j)
	if err != nil {
		return 0, err
	}
	if i == 0 {
		return hi, nil
	}
	lo, err := u.PrefixSum(i - 1)
	if err != nil {
		return 0, err
	}
	return hi - lo, nil
}
