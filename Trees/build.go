package Trees

import (
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// shuffled returns a copy of keys, shuffled with the source of c if shuffle
// is true. The caller's slice is never reordered.
func shuffled[K any](keys []K, shuffle bool, c config) []K {
	ks := append([]K(nil), keys...)
	if shuffle {
		c.rng.Shuffle(len(ks), func(i, j int) { ks[i], ks[j] = ks[j], ks[i] })
	}
	return ks
}

// BuildAVL returns an AVLTree holding keys, inserted one at a time. With
// shuffle the keys are inserted in a random order drawn from the source set
// by WithRand. The final contents don't depend on the order, only the
// rotations performed on the way do.
// Time: O(n*log n)
func BuildAVL[K constraints.Ordered](keys []K, shuffle bool, opts ...Option) *AVLTree[K] {
	return BuildAVLFunc(compare[K], keys, shuffle, opts...)
}

// BuildAVLFunc is BuildAVL for keys ordered by cmp.
func BuildAVLFunc[K any](cmp func(a, b K) int, keys []K, shuffle bool, opts ...Option) *AVLTree[K] {
	c := newConfig(opts)
	u := &AVLTree[K]{newBase[K, struct{}](cmp, nil, c)}
	for _, k := range shuffled(keys, shuffle, c) {
		u.insert(k)
	}
	c.log.Debug("built avl tree", zap.Int("keys", len(keys)), zap.Int("count", u.count),
		zap.Int("depth", u.Depth()), zap.Int("rebalances", u.rebalances))
	return u
}

// BuildIntervalTree returns an IntervalTree holding ivs. Every interval is
// validated before anything is inserted, so an invalid one yields an
// InvalidIntervalError and no tree.
// Time: O(n*log n)
func BuildIntervalTree[T constraints.Ordered](ivs []Interval[T], shuffle bool, opts ...Option) (*IntervalTree[T], error) {
	for _, iv := range ivs {
		if err := validate(iv); err != nil {
			return nil, err
		}
	}
	c := newConfig(opts)
	u := &IntervalTree[T]{newBase[Interval[T], T](compareIntervals[T], maxHigh[T], c)}
	for _, iv := range shuffled(ivs, shuffle, c) {
		u.insert(iv)
	}
	c.log.Debug("built interval tree", zap.Int("intervals", len(ivs)), zap.Int("count", u.count),
		zap.Int("depth", u.Depth()), zap.Int("rebalances", u.rebalances))
	return u, nil
}

// BuildBSTree returns a BSTree holding keys. Shuffling matters here: sorted
// input builds a tree of height n-1.
// Time: O(n*D)
func BuildBSTree[K constraints.Ordered](keys []K, shuffle bool, opts ...Option) *BSTree[K] {
	c := newConfig(opts)
	u := NewBSTree[K](opts...)
	for _, k := range shuffled(keys, shuffle, c) {
		u.Insert(k)
	}
	if ce := c.log.Check(zap.DebugLevel, "built binary search tree"); ce != nil {
		ce.Write(zap.Int("keys", len(keys)), zap.Int("depth", u.Depth()))
	}
	return u
}
