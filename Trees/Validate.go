package Trees

import "fmt"

// Validation is the report produced by Validate: the overall verdict, tree
// totals, one pass/fail flag per red-black invariant, and the first
// offending node with a description when something failed. Purely
// diagnostic; validation never repairs anything.
type Validation struct {
	Valid       bool
	NodeCount   int
	BlackHeight int // black nodes on any root-to-leaf path, nil leaves excluded

	NodeColors            bool // every node is red or black
	NullNodesBlack        bool // absent children count as black leaves
	RootBlack             bool
	RedChildrenBlack      bool // no red node has a red child
	BlackHeightConsistent bool // equal black count on every root-to-leaf path
	SingleChildRed        bool // a lone child is always red
	Ordered               bool // in-order traversal respects the comparator
	CachesCoherent        bool // cached extrema match the true ones (CRBTree only)

	Offender *Node
	Reason   string
}

func (v *Validation) fail(flag *bool, n *Node, format string, args ...any) {
	v.Valid = false
	*flag = false
	if v.Offender == nil {
		v.Offender = n
		v.Reason = fmt.Sprintf(format, args...)
	}
}

// Validate checks every structural invariant in O(n) and reports the
// findings. Intended for tests and debugging; it only reads the tree.
func (u *RBTree) Validate() Validation {
	v := Validation{
		Valid:                 true,
		NodeColors:            true, // one tag bit: no third state is representable
		NullNodesBlack:        true, // walk counts absent children as black
		RootBlack:             true,
		RedChildrenBlack:      true,
		BlackHeightConsistent: true,
		SingleChildRed:        true,
		Ordered:               true,
		CachesCoherent:        true,
	}
	if u.root == nil {
		return v
	}

	if !u.root.black() {
		v.fail(&v.RootBlack, u.root, "root is red")
	}
	count, bh := u.walk(u.root, 1, &v)
	v.NodeCount = count
	v.BlackHeight = bh - 1 // drop the implicit nil leaf
	return v
}

// walk validates the subtree rooted at n and returns its node count and
// black height (counting the nil leaf as one black). The depth cap keeps a
// corrupted, cyclic, or wildly unbalanced structure from recursing forever.
func (u *RBTree) walk(n *Node, depth int, v *Validation) (count, bh int) {
	if n == nil {
		return 0, 1
	}
	if depth > MaxStackDepth {
		v.fail(&v.BlackHeightConsistent, n, "depth exceeds bound %d, aborting walk", MaxStackDepth)
		return 0, 1
	}

	l, r := n.child(left), n.child(right)

	// Equal-key nodes are fine on either side, only inversions are not.
	if l != nil && u.less(n, l) {
		v.fail(&v.Ordered, n, "left child sorts after its parent")
	}
	if r != nil && u.less(r, n) {
		v.fail(&v.Ordered, n, "right child sorts before its parent")
	}

	if !n.black() {
		if l != nil && !l.black() {
			v.fail(&v.RedChildrenBlack, n, "red node has a red left child")
		}
		if r != nil && !r.black() {
			v.fail(&v.RedChildrenBlack, n, "red node has a red right child")
		}
	}

	if (l == nil) != (r == nil) {
		only := l
		if only == nil {
			only = r
		}
		if only.black() {
			v.fail(&v.SingleChildRed, n, "single child is black")
		}
	}

	lc, lbh := u.walk(l, depth+1, v)
	rc, rbh := u.walk(r, depth+1, v)
	if lbh != rbh {
		v.fail(&v.BlackHeightConsistent, n, "black height %d on the left, %d on the right", lbh, rbh)
	}

	bh = lbh
	if n.black() {
		bh++
	}
	return lc + rc + 1, bh
}

// Validate additionally checks that the enabled caches agree with the true
// extrema of the underlying tree.
func (u *CRBTree) Validate() Validation {
	v := u.RBTree.Validate()
	if u.cacheMin && u.leftmost != u.RBTree.Minimum() {
		v.fail(&v.CachesCoherent, u.leftmost, "cached minimum diverged from the leftmost node")
	}
	if u.cacheMax && u.rightmost != u.RBTree.Maximum() {
		v.fail(&v.CachesCoherent, u.rightmost, "cached maximum diverged from the rightmost node")
	}
	return v
}
