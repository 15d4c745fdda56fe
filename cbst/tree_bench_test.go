package cbst_test

import (
	"math/rand"
	"testing"

	googbtree "github.com/google/btree"

	"github.com/npillmayer/cowtree/cbst"
)

const seed = 1

func randomKeys(n int) []int {
	rng := rand.New(rand.NewSource(seed))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = rng.Intn(2*n+1) - n
	}
	return keys
}

func BenchmarkTreeInsertRemove(b *testing.B) {
	keys := randomKeys(100000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := cbst.New[int]()
		for _, k := range keys {
			tree.Insert(k)
		}
		for _, k := range keys {
			tree.Remove(k)
		}
	}
}

func BenchmarkGoogleBtreeInsertRemove(b *testing.B) {
	keys := randomKeys(100000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		set := googbtree.NewOrderedG[int](32)
		for _, k := range keys {
			set.ReplaceOrInsert(k)
		}
		for _, k := range keys {
			set.Delete(k)
		}
	}
}

func BenchmarkTreeContains(b *testing.B) {
	keys := randomKeys(100000)
	tree := cbst.New[int]()
	for _, k := range keys {
		tree.Insert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Contains(keys[i%len(keys)])
	}
}
