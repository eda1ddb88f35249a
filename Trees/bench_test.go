package Trees

import (
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

var (
	bAddN = 1 << 16
	bQryN = bAddN / 2
)

func benchKeys() []int {
	all := make([]int, bAddN)
	for i := range all {
		all[i] = rg.Int()
	}
	return all
}

func BenchmarkAVLTree_Insert(b *testing.B) {
	all := benchKeys()
	b.ResetTimer()
	for range b.N {
		tree := New[int]()
		for _, k := range all {
			tree.Insert(k)
		}
	}
}

func BenchmarkAVLTree_InsertAscending(b *testing.B) {
	for range b.N {
		tree := New[int]()
		for k := range bAddN {
			tree.Insert(k)
		}
	}
}

func BenchmarkAVLTree_Delete(b *testing.B) {
	all := benchKeys()
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := BuildAVL(all, false)
		b.StartTimer()
		for _, k := range all {
			tree.Delete(k)
		}
	}
}

var sideEff bool

func BenchmarkAVLTree_Search(b *testing.B) {
	all := benchKeys()
	tree := BuildAVL(all, false)
	b.ResetTimer()
	for range b.N {
		for _, k := range all[:bQryN] {
			sideEff = tree.Has(k)
		}
	}
}

func BenchmarkIntervalTree_QueryOverlap(b *testing.B) {
	tree := NewIntervalTree[int]()
	for range bAddN {
		tree.Insert(randInterval(rg))
	}
	qs := make([]ivl, bQryN)
	for i := range qs {
		qs[i] = randInterval(rg)
	}
	b.ResetTimer()
	for range b.N {
		for _, q := range qs {
			_, sideEff, _ = tree.QueryOverlap(q)
		}
	}
}

// The baselines below do the same work with the ordered containers other
// libraries offer.

func BenchmarkLLRB_Insert(b *testing.B) {
	all := benchKeys()
	b.ResetTimer()
	for range b.N {
		tree := llrb.New()
		for _, k := range all {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

func BenchmarkLLRB_Delete(b *testing.B) {
	all := benchKeys()
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := llrb.New()
		for _, k := range all {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
		b.StartTimer()
		for _, k := range all {
			tree.Delete(llrb.Int(k))
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	all := benchKeys()
	b.ResetTimer()
	for range b.N {
		tree := btree.NewOrderedG[int](32)
		for _, k := range all {
			tree.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkBTree_Search(b *testing.B) {
	all := benchKeys()
	tree := btree.NewOrderedG[int](32)
	for _, k := range all {
		tree.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range all[:bQryN] {
			sideEff = tree.Has(k)
		}
	}
}

func BenchmarkGodsAVL_Insert(b *testing.B) {
	all := benchKeys()
	b.ResetTimer()
	for range b.N {
		tree := avltree.NewWithIntComparator()
		for _, k := range all {
			tree.Put(k, nil)
		}
	}
}
