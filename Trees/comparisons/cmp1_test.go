// Compares the intrusive tree against the common ordered containers:
// https://github.com/google/btree, https://github.com/petar/GoLLRB and the
// red-black tree from https://github.com/emirpasic/gods. Those store keys or
// interface items; the intrusive tree only links caller records, so the
// comparison includes the embedding overhead a real caller would pay.
package comparisons

import (
	"testing"
	"unsafe"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/go-rbtree/Trees"
)

const cmpItemCount = 65536

// ordNode embeds the intrusive linkage next to an ordered key, the way a
// caller record would.
type ordNode[T constraints.Ordered] struct {
	link Trees.Node
	key  T
}

func lessOf[T constraints.Ordered]() func(a, b *Trees.Node) bool {
	off := unsafe.Offsetof(ordNode[T]{}.link)
	return func(a, b *Trees.Node) bool {
		return Trees.Embedded[ordNode[T]](a, off).key < Trees.Embedded[ordNode[T]](b, off).key
	}
}

func setupRBTree(b *testing.B) (*Trees.RBTree, []ordNode[int]) {
	b.Helper()
	ns := make([]ordNode[int], cmpItemCount)
	t := Trees.New(lessOf[int]())
	for i := range ns {
		ns[i].key = i
		t.Insert(&ns[i].link)
	}
	return t, ns
}

func BenchmarkInsertRBTree(b *testing.B) {
	for range b.N {
		b.StopTimer()
		ns := make([]ordNode[int], cmpItemCount)
		for i := range ns {
			ns[i].key = i
		}
		b.StartTimer()
		t := Trees.New(lessOf[int]())
		for i := range ns {
			t.Insert(&ns[i].link)
		}
	}
}

func BenchmarkInsertGoogleBTree(b *testing.B) {
	for range b.N {
		t := btree.NewG[int](32, func(a, c int) bool { return a < c })
		for i := 0; i < cmpItemCount; i++ {
			t.ReplaceOrInsert(i)
		}
	}
}

func BenchmarkInsertLLRB(b *testing.B) {
	for range b.N {
		t := llrb.New()
		for i := 0; i < cmpItemCount; i++ {
			t.InsertNoReplace(llrb.Int(i))
		}
	}
}

func BenchmarkInsertGods(b *testing.B) {
	for range b.N {
		t := redblacktree.NewWithIntComparator()
		for i := 0; i < cmpItemCount; i++ {
			t.Put(i, i)
		}
	}
}

func BenchmarkSearchRBTree(b *testing.B) {
	t, ns := setupRBTree(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if !t.Has(&ns[n%cmpItemCount].link) {
			b.Fail()
		}
	}
}

func BenchmarkSearchGoogleBTree(b *testing.B) {
	t := btree.NewG[int](32, func(a, c int) bool { return a < c })
	for i := 0; i < cmpItemCount; i++ {
		t.ReplaceOrInsert(i)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if !t.Has(n % cmpItemCount) {
			b.Fail()
		}
	}
}

func BenchmarkSearchLLRB(b *testing.B) {
	t := llrb.New()
	for i := 0; i < cmpItemCount; i++ {
		t.InsertNoReplace(llrb.Int(i))
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if !t.Has(llrb.Int(n % cmpItemCount)) {
			b.Fail()
		}
	}
}

func BenchmarkSearchGods(b *testing.B) {
	t := redblacktree.NewWithIntComparator()
	for i := 0; i < cmpItemCount; i++ {
		t.Put(i, i)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, found := t.Get(n % cmpItemCount); !found {
			b.Fail()
		}
	}
}

func BenchmarkAscendRBTree(b *testing.B) {
	t, _ := setupRBTree(b)
	b.ResetTimer()
	for range b.N {
		it := t.Iter()
		for n := it.Next(); n != nil; n = it.Next() {
		}
	}
}

func BenchmarkAscendGoogleBTree(b *testing.B) {
	t := btree.NewG[int](32, func(a, c int) bool { return a < c })
	for i := 0; i < cmpItemCount; i++ {
		t.ReplaceOrInsert(i)
	}
	b.ResetTimer()
	for range b.N {
		t.Ascend(func(int) bool { return true })
	}
}

func BenchmarkAscendLLRB(b *testing.B) {
	t := llrb.New()
	for i := 0; i < cmpItemCount; i++ {
		t.InsertNoReplace(llrb.Int(i))
	}
	b.ResetTimer()
	for range b.N {
		t.AscendGreaterOrEqual(llrb.Int(0), func(llrb.Item) bool { return true })
	}
}

func BenchmarkAscendGods(b *testing.B) {
	t := redblacktree.NewWithIntComparator()
	for i := 0; i < cmpItemCount; i++ {
		t.Put(i, i)
	}
	b.ResetTimer()
	for range b.N {
		for it := t.Iterator(); it.Next(); {
		}
	}
}
