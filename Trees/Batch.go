package Trees

import (
	"math/bits"
	"slices"
)

// Batch accumulates nodes for bulk insertion. The buffered nodes carry no
// tree linkage until Commit; the buffer itself is the only thing in this
// package that allocates beyond per-call scratch space.
type Batch struct {
	nodes []*Node
}

// NewBatch returns a buffer with room for hint nodes before regrowing.
func NewBatch(hint int) *Batch {
	return &Batch{nodes: make([]*Node, 0, hint)}
}

// Add buffers n for the next Commit. Growth is handled by the runtime and
// cannot be observed as an error.
func (b *Batch) Add(n *Node) {
	b.nodes = append(b.nodes, n)
}

func (b *Batch) Len() int {
	return len(b.nodes)
}

// Reset empties the buffer, keeping its storage for reuse.
func (b *Batch) Reset() {
	b.nodes = b.nodes[:0]
}

// Commit moves every buffered node into t and empties the buffer. Into an
// empty tree this sorts the buffer and links a median-balanced tree
// directly, O(n log n) for the sort plus O(n) linking, which beats the
// rotation churn of inserting sorted input one by one. Into a non-empty
// tree it falls back to per-node Insert.
func (b *Batch) Commit(t *RBTree) {
	defer b.Reset()

	if len(b.nodes) == 0 {
		return
	}
	if t.root != nil {
		for _, n := range b.nodes {
			t.Insert(n)
		}
		return
	}

	slices.SortFunc(b.nodes, func(x, y *Node) int {
		if t.less(x, y) {
			return -1
		}
		if t.less(y, x) {
			return 1
		}
		return 0
	})

	// The median build puts every leaf on the bottom two levels, so
	// coloring the deepest level red and the rest black satisfies the
	// black-height invariant for any n, not just perfect sizes.
	levels := bits.Len(uint(len(b.nodes)))
	t.root = buildMedian(b.nodes, 1, levels)
	t.root.setBlack()
	t.maxDepth = levels
}

// buildMedian links s into a balanced subtree rooted at its median. depth
// is 1-based; nodes at redLevel turn red, all others black.
func buildMedian(s []*Node, depth, redLevel int) *Node {
	if len(s) == 0 {
		return nil
	}
	mid := len(s) >> 1
	n := s[mid]
	n.children[left], n.children[right] = 0, 0
	n.setChild(left, buildMedian(s[:mid], depth+1, redLevel))
	n.setChild(right, buildMedian(s[mid+1:], depth+1, redLevel))
	n.paint(depth != redLevel)
	return n
}
