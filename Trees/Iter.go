package Trees

import (
	Go_RBTree "github.com/g-m-twostay/go-rbtree"
)

const (
	iterUninit int32 = -1
	iterDone   int32 = -2
)

// Iterator walks a tree in comparator order without recursion. The state is
// an explicit stack of pending nodes plus one bit per frame recording
// whether the frame still has to be visited (it was reached by descending
// left). A frame popped with its bit down has already been emitted and only
// unwinds the stack.
//
// An Iterator is one-shot: once Next returns nil it stays exhausted.
// Restart by calling Iter again. Mutating the tree while an Iterator is
// live leaves the traversal undefined, though it will not corrupt the tree.
type Iterator struct {
	tree    *RBTree
	stack   []*Node
	pending Go_RBTree.BitArray
	top     int32
}

// Iter returns an in-order iterator over the current tree contents. The
// stack is sized by the deepest path recorded on the tree, not the
// platform bound, so the allocation tracks the actual tree height.
func (u *RBTree) Iter() Iterator {
	d := u.maxDepth + 2
	return Iterator{tree: u, stack: make([]*Node, d), pending: Go_RBTree.New(d), top: iterUninit}
}

// push n and its leftmost descent onto the stack, all marked pending.
// Reports false if the stack would overflow, which means the tree is
// deeper than it ever reported and therefore corrupt; traversal ends
// rather than overrunning the buffer.
func (it *Iterator) push(n *Node) bool {
	for ; n != nil; n = n.child(left) {
		if int(it.top) >= len(it.stack) {
			it.top = iterDone
			return false
		}
		it.stack[it.top] = n
		it.pending.Up(int(it.top))
		it.top++
	}
	return true
}

// Next returns the next node in order, or nil when the traversal is
// exhausted. Amortized O(1) per call.
func (it *Iterator) Next() *Node {
	if it.top == iterDone || it.tree.root == nil {
		return nil
	}

	if it.top == iterUninit {
		it.top = 0
		if !it.push(it.tree.root) {
			return nil
		}
	}

	for it.top > 0 {
		it.top--
		n := it.stack[it.top]
		if !it.pending.Get(int(it.top)) {
			// Came back up from a right subtree; keep unwinding.
			continue
		}

		// Emit n, then queue its right subtree behind it.
		it.pending.Down(int(it.top))
		it.top++
		if !it.push(n.child(right)) {
			return nil
		}
		return n
	}

	it.top = iterDone
	return nil
}
