package Trees

import (
	"fmt"
	"math/bits"
)

// tagBits is how many low pointer bits the platform guarantees free on an
// allocation: 2 on 32-bit targets, 3 on 64-bit ones.
const tagBits = 2 + bits.UintSize/64

// MaxStackDepth bounds the length of any root-to-leaf path. It assumes the
// address space is packed with two-word nodes and that a red-black tree is
// at most twice as deep as a perfect one: 59 frames on 32-bit, 121 on
// 64-bit. A path longer than this means the tree is corrupt.
const MaxStackDepth = 2*(bits.UintSize-tagBits-1) + 1

// CorruptTreeError is the panic value raised when a mutation walks a path
// longer than MaxStackDepth.
type CorruptTreeError struct {
	Depth int
}

func (e CorruptTreeError) Error() string {
	return fmt.Sprintf("Trees: path depth %d exceeds bound %d, tree is corrupt", e.Depth, MaxStackDepth)
}

// RBTree is a red-black tree over caller-owned Nodes. It stores no keys and
// no values: less defines a strict weak order over node identities, and all
// lookups are by pointer equality. There are no parent pointers; mutations
// rebuild ancestry on a per-call path stack instead.
//
// During Insert the inserted node is always passed to less as the first
// argument, so a comparator can tie-break equal keys deterministically
// (for example "most recently inserted wins").
//
// An RBTree is not safe for concurrent use; exactly one goroutine may
// operate on it at a time.
type RBTree struct {
	root *Node
	less func(a, b *Node) bool
	// deepest path seen since the tree last became non-empty; sizes the
	// iterator stack.
	maxDepth int
}

// New returns an empty tree ordered by less.
func New(less func(a, b *Node) bool) *RBTree {
	return &RBTree{less: less}
}

// findAndStack walks from the root toward n, appending every visited node
// to stack. It stops on pointer equality with n or at the node whose child
// slot n would occupy. The returned stack is the full root-to-node path.
func (u *RBTree) findAndStack(n *Node, stack []*Node) []*Node {
	stack = append(stack, u.root)
	for top := u.root; top != n; top = stack[len(stack)-1] {
		s := right
		if u.less(n, top) {
			s = left
		}
		ch := top.child(s)
		if ch == nil {
			break
		}
		if len(stack) >= MaxStackDepth-2 {
			panic(CorruptTreeError{len(stack)})
		}
		stack = append(stack, ch)
	}
	return stack
}

// Insert links n into the tree as a red leaf and restores the red-black
// invariants, performing at most 2 rotations. n must be zeroed or unlinked;
// inserting a node twice corrupts the tree.
// Time: O(log n).
func (u *RBTree) Insert(n *Node) {
	n.children[left], n.children[right] = 0, 0

	if u.root == nil {
		u.root = n
		u.maxDepth = 1
		n.setBlack()
		return
	}

	stack := make([]*Node, 0, MaxStackDepth)
	stack = u.findAndStack(n, stack)
	parent := stack[len(stack)-1]

	s := right
	if u.less(n, parent) {
		s = left
	}
	parent.setChild(s, n)
	n.setRed()

	stack = append(stack, n)
	fixExtraRed(stack)

	if len(stack) > u.maxDepth {
		u.maxDepth = len(stack)
	}
	u.root = stack[0]
}

// fixExtraRed restores the no-red-red invariant after the node on top of
// stack was linked red. Either the aunt is red and the violation is
// recolored two levels up, or the aunt is black and at most two rotations
// finish the job.
func fixExtraRed(stack []*Node) {
	for sz := len(stack); sz > 1; {
		parent := stack[sz-2]
		if parent.black() {
			return
		}

		// The parent is red, so it cannot be the root and a grandparent
		// exists.
		grandparent := stack[sz-3]
		s := sideOf(grandparent, parent)
		aunt := grandparent.child(s.other())

		if aunt != nil && !aunt.black() {
			grandparent.setRed()
			parent.setBlack()
			aunt.setBlack()

			// The grandparent may now clash with its own parent; keep
			// going from there.
			sz -= 2
			continue
		}

		// Black aunt: align the node with the grandparent's side of the
		// parent, then rotate the parent into the grandparent's place and
		// swap their colors.
		if sideOf(parent, stack[sz-1]) != s {
			rotate(stack[:sz])
		}
		rotate(stack[:sz-1])
		stack[sz-3].setBlack()
		stack[sz-2].setRed()
		return
	}

	// Ran off the top: the node became the root, which must be black.
	stack[0].setBlack()
}

// Remove unlinks n from the tree, a no-op if n is not linked. A node with
// two children is first swapped with its in-order predecessor so the real
// removal always happens at a position with at most one child. At most 3
// rotations.
// Time: O(log n).
func (u *RBTree) Remove(n *Node) {
	if u.root == nil {
		return
	}

	stack := make([]*Node, 0, MaxStackDepth)
	stack = u.findAndStack(n, stack)
	if stack[len(stack)-1] != n {
		return
	}

	if n.child(left) != nil && n.child(right) != nil {
		// Swap n with the rightmost node of its left subtree. With the
		// linkage intrusive there is no payload to swap, so the nodes
		// exchange places structurally: child pointers, parent slots,
		// colors, and their stack entries.
		sz0 := len(stack)
		var hiparent *Node
		if len(stack) > 1 {
			hiparent = stack[len(stack)-2]
		}

		n2 := n.child(left)
		stack = append(stack, n2)
		for n2.child(right) != nil {
			if len(stack) >= MaxStackDepth {
				panic(CorruptTreeError{len(stack)})
			}
			n2 = n2.child(right)
			stack = append(stack, n2)
		}
		loparent := stack[len(stack)-2]

		if hiparent != nil {
			hiparent.setChild(sideOf(hiparent, n), n2)
		} else {
			u.root = n2
		}

		if loparent == n {
			// The predecessor is n's direct left child.
			n.setChild(left, n2.child(left))
			n2.setChild(left, n)
		} else {
			loparent.setChild(sideOf(loparent, n2), n)
			tmp := n.child(left)
			n.setChild(left, n2.child(left))
			n2.setChild(left, tmp)
		}

		n2.setChild(right, n.child(right))
		n.setChild(right, nil)

		stack[sz0-1], stack[len(stack)-1] = stack[len(stack)-1], stack[sz0-1]

		b := n.black()
		n.paint(n2.black())
		n2.paint(b)
	}

	// n now has at most one real child.
	child := n.child(left)
	if child == nil {
		child = n.child(right)
	}

	if len(stack) < 2 {
		// Removing the root.
		u.root = child
		if child != nil {
			child.setBlack()
		} else {
			u.maxDepth = 0
		}
		return
	}

	parent := stack[len(stack)-2]
	if child == nil {
		if n.black() {
			// A black leaf leaves a black deficit behind. n stays linked
			// as a placeholder until the fixup isolates it.
			stack = u.fixMissingBlack(stack, n)
		} else {
			// Red childless nodes unlink directly.
			parent.setChild(sideOf(parent, n), nil)
		}
	} else {
		parent.setChild(sideOf(parent, n), child)
		// Splicing out a black node above a red child (or a red node
		// above its child) keeps the black count if the child turns
		// black.
		if !n.black() || !child.black() {
			child.setBlack()
		}
	}

	u.root = stack[0]
}

// fixMissingBlack rebalances after a black node was (logically) removed
// from the top of stack. nullNode is the placeholder still linked where the
// removed leaf sat; it is replaced with nil once the deficit no longer
// needs it. Works bottom-up:
//
//  1. make the sibling black (one rotation),
//  2. sibling with two black children: recolor, resolve at the parent or
//     push the deficit up,
//  3. sibling with a red child: guarantee the far child is red (one extra
//     rotation), rotate the sibling up with a three-way recolor, done.
func (u *RBTree) fixMissingBlack(stack []*Node, nullNode *Node) []*Node {
	for sz := len(stack); sz > 1; {
		n := stack[sz-1]
		parent := stack[sz-2]
		ns := sideOf(parent, n)
		sib := parent.child(ns.other())

		// A deficit side always has a sibling subtree of positive black
		// height, so sib is never nil here.
		if !sib.black() {
			stack[sz-1] = sib
			rotate(stack[:sz])
			parent.setRed()
			sib.setBlack()

			// n moved down a level; push it back on top.
			if sz < len(stack) {
				stack[sz] = n
			} else {
				stack = append(stack, n)
			}
			sz++

			parent = stack[sz-2]
			sib = parent.child(ns.other())
		}

		c0, c1 := sib.child(left), sib.child(right)
		if (c0 == nil || c0.black()) && (c1 == nil || c1.black()) {
			if n == nullNode {
				parent.setChild(ns, nil)
			}

			sib.setRed()
			if parent.black() {
				// The sibling subtree gave up a black level; the whole
				// parent subtree is now deficient. Continue upward.
				sz--
				continue
			}
			// Recoloring the parent black absorbs the deficit.
			parent.setBlack()
			return stack
		}

		// The sibling has a red child. Make sure the far one (opposite n)
		// is red, rotating the sibling toward its inner child if not.
		outer := sib.child(ns.other())
		if outer == nil || outer.black() {
			inner := sib.child(ns)

			sib.setRed()
			inner.setBlack()

			innerChild := inner.child(ns.other())
			sib.setChild(ns, innerChild)
			inner.setChild(ns.other(), sib)
			parent.setChild(ns.other(), inner)

			sib = inner
			outer = sib.child(ns.other())
		}

		if n == nullNode {
			parent.setChild(ns, nil)
		}

		// Rotate the sibling into the parent's place; it inherits the
		// parent's color while the parent and the far child turn black.
		sib.paint(parent.black())
		parent.setBlack()
		outer.setBlack()

		stack[sz-1] = sib
		rotate(stack[:sz])
		return stack
	}
	return stack
}

// Has reports whether n itself is linked in the tree. Only pointer equality
// counts: a distinct node comparing equal to a linked one is not found,
// which is what lets the tree act as a set of identities.
// Time: O(log n); Space: O(1).
func (u *RBTree) Has(n *Node) bool {
	cur := u.root
	for cur != nil && cur != n {
		s := right
		if u.less(n, cur) {
			s = left
		}
		cur = cur.child(s)
	}
	return cur == n && cur != nil
}

func (u *RBTree) extreme(s side) *Node {
	n := u.root
	if n == nil {
		return nil
	}
	for n.child(s) != nil {
		n = n.child(s)
	}
	return n
}

// Minimum returns the least node, or nil on an empty tree.
// Time: O(log n); Space: O(1).
func (u *RBTree) Minimum() *Node {
	return u.extreme(left)
}

// Maximum returns the greatest node, or nil on an empty tree.
// Time: O(log n); Space: O(1).
func (u *RBTree) Maximum() *Node {
	return u.extreme(right)
}
