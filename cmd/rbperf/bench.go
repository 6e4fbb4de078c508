package main

import (
	"math/rand"
	"os"
	"time"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-rbtree/Trees"
)

type perfNode struct {
	link Trees.Node
	key  uint32
}

var perfOff = unsafe.Offsetof(perfNode{}.link)

func perfLess(a, b *Trees.Node) bool {
	return Embed(a).key < Embed(b).key
}

func Embed(n *Trees.Node) *perfNode {
	return Trees.Embedded[perfNode](n, perfOff)
}

// shuffledNodes returns count nodes keyed 0..count-1 in random order.
func shuffledNodes(rg *rand.Rand, count int) []perfNode {
	ns := make([]perfNode, count)
	for i := range ns {
		ns[i].key = uint32(i)
	}
	rg.Shuffle(count, func(i, j int) {
		ns[i].key, ns[j].key = ns[j].key, ns[i].key
	})
	return ns
}

type timing struct {
	name    string
	ops     int
	elapsed time.Duration
}

func (t timing) row() table.Row {
	perOp := t.elapsed / time.Duration(t.ops)
	rate := float64(t.ops) / t.elapsed.Seconds()
	return table.Row{
		t.name,
		humanize.Comma(int64(t.ops)),
		t.elapsed.Round(time.Microsecond),
		perOp,
		humanize.CommafWithDigits(rate, 0) + " ops/s",
	}
}

func timed(name string, ops int, f func()) timing {
	start := time.Now()
	f()
	return timing{name: name, ops: ops, elapsed: time.Since(start)}
}

func benchInsertion(rg *rand.Rand) timing {
	ns := shuffledNodes(rg, count)
	tree := Trees.New(perfLess)
	return timed("random insertion", count, func() {
		for i := range ns {
			tree.Insert(&ns[i].link)
		}
	})
}

func benchSearch(rg *rand.Rand) timing {
	ns := shuffledNodes(rg, count)
	tree := Trees.New(perfLess)
	for i := range ns {
		tree.Insert(&ns[i].link)
	}
	return timed("search existing", count, func() {
		for i := range ns {
			if !tree.Has(&ns[i].link) {
				panic("linked node reported absent")
			}
		}
	})
}

func benchDeletion(rg *rand.Rand) timing {
	ns := shuffledNodes(rg, count)
	tree := Trees.New(perfLess)
	for i := range ns {
		tree.Insert(&ns[i].link)
	}
	order := rg.Perm(count)
	return timed("random deletion", count, func() {
		for _, i := range order {
			tree.Remove(&ns[i].link)
		}
	})
}

func benchBatch(rg *rand.Rand) timing {
	ns := shuffledNodes(rg, count)
	batch := Trees.NewBatch(count)
	for i := range ns {
		batch.Add(&ns[i].link)
	}
	tree := Trees.New(perfLess)
	return timed("batch commit", count, func() {
		batch.Commit(tree)
	})
}

// benchMixed interleaves inserts, searches and deletes 2:1:1, the shape of
// a queue-like caller.
func benchMixed(rg *rand.Rand) timing {
	ns := shuffledNodes(rg, count)
	tree := Trees.New(perfLess)
	linked := make([]bool, count)
	ops := 2 * count
	return timed("mixed 2:1:1", ops, func() {
		for op := 0; op < ops; op++ {
			i := rg.Intn(count)
			switch {
			case !linked[i]:
				tree.Insert(&ns[i].link)
				linked[i] = true
			case op%2 == 0:
				tree.Has(&ns[i].link)
			default:
				tree.Remove(&ns[i].link)
				linked[i] = false
			}
		}
	})
}

func benchMinimum(rg *rand.Rand, cached bool) timing {
	ns := shuffledNodes(rg, count)
	var tree Trees.Set
	name := "minimum (descent)"
	if cached {
		tree = Trees.NewCached(perfLess, true, false)
		name = "minimum (cached)"
	} else {
		tree = Trees.New(perfLess)
	}
	for i := range ns {
		tree.Insert(&ns[i].link)
	}
	return timed(name, count, func() {
		for range count {
			if tree.Minimum() == nil {
				panic("populated tree has no minimum")
			}
		}
	})
}

func newBenchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Time tree workloads and print a summary table",
		RunE: func(_ *cobra.Command, _ []string) error {
			rg := rand.New(rand.NewSource(int64(seed)))

			rows := []timing{
				benchInsertion(rg),
				benchSearch(rg),
				benchDeletion(rg),
				benchBatch(rg),
				benchMixed(rg),
				benchMinimum(rg, false),
				benchMinimum(rg, true),
			}

			w := table.NewWriter()
			w.SetOutputMirror(os.Stdout)
			w.AppendHeader(table.Row{"operation", "ops", "total", "per op", "throughput"})
			for _, r := range rows {
				w.AppendRow(r.row())
			}
			w.Render()
			return nil
		},
	}
}
