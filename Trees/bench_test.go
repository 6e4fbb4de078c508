package Trees

import (
	"testing"
)

const benchN = 100000

func fill(b *testing.B, ns []keyNode) *RBTree {
	b.Helper()
	tree := New(byKey)
	for i := range ns {
		tree.Insert(&ns[i].Node)
	}
	return tree
}

func BenchmarkInsert(b *testing.B) {
	for range b.N {
		b.StopTimer()
		ns := make([]keyNode, benchN)
		for i := range ns {
			ns[i].key = rg.Int()
		}
		b.StartTimer()
		tree := New(byKey)
		for i := range ns {
			tree.Insert(&ns[i].Node)
		}
	}
}

func BenchmarkInsertAscending(b *testing.B) {
	for range b.N {
		b.StopTimer()
		ns := make([]keyNode, benchN)
		for i := range ns {
			ns[i].key = i
		}
		b.StartTimer()
		tree := New(byKey)
		for i := range ns {
			tree.Insert(&ns[i].Node)
		}
	}
}

func BenchmarkBatchCommit(b *testing.B) {
	for range b.N {
		b.StopTimer()
		ns := make([]keyNode, benchN)
		batch := NewBatch(benchN)
		for i := range ns {
			ns[i].key = i
			batch.Add(&ns[i].Node)
		}
		b.StartTimer()
		tree := New(byKey)
		batch.Commit(tree)
	}
}

func BenchmarkRemove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		ns := make([]keyNode, benchN)
		for i := range ns {
			ns[i].key = i
		}
		tree := fill(b, ns)
		order := rg.Perm(benchN)
		b.StartTimer()
		for _, i := range order {
			tree.Remove(&ns[i].Node)
		}
	}
}

var sideEff bool

func BenchmarkHas(b *testing.B) {
	ns := make([]keyNode, benchN)
	for i := range ns {
		ns[i].key = i
	}
	tree := fill(b, ns)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		sideEff = tree.Has(&ns[n%benchN].Node)
	}
}

func BenchmarkIter(b *testing.B) {
	ns := make([]keyNode, benchN)
	for i := range ns {
		ns[i].key = i
	}
	tree := fill(b, ns)
	b.ResetTimer()
	for range b.N {
		it := tree.Iter()
		for n := it.Next(); n != nil; n = it.Next() {
		}
	}
}

func BenchmarkCachedMinimum(b *testing.B) {
	ns := make([]keyNode, benchN)
	tree := NewCached(byKey, true, false)
	for i := range ns {
		ns[i].key = i
		tree.Insert(&ns[i].Node)
	}
	var m *Node
	b.ResetTimer()
	for range b.N {
		m = tree.Minimum()
	}
	_ = m
}
