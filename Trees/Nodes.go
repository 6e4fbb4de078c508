package Trees

import (
	"unsafe"
)

type side uintptr

const (
	left  side = 0
	right side = 1
)

func (s side) other() side {
	return s ^ 1
}

const (
	colorMask uintptr = 1
	ptrMask           = ^colorMask
)

// Node is the linkage embedded in the caller's record. It holds the two
// child references and nothing else; the color bit lives in the lowest bit
// of the left slot, which is why Node storage must be at least 2-byte
// aligned (checked in init). A record is linked into at most one tree per
// Node it embeds.
//
// The zero value is an unlinked red node, which is exactly what Insert
// expects. The tree never allocates, copies, or frees a Node; the caller
// owns the enclosing record and must keep it reachable while it is linked,
// since the child slots are opaque to the garbage collector.
type Node struct {
	children [2]uintptr
}

func init() {
	if unsafe.Alignof(Node{}) < 2 {
		panic("Trees: Node alignment < 2, no room for the color tag")
	}
}

// Embedded recovers the record of type T enclosing n, where off is the byte
// offset of the Node field inside T (unsafe.Offsetof). This is how
// comparators and traversal consumers get back to their own data.
func Embedded[T any](n *Node, off uintptr) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(n), -int(off)))
}

// child reads a child slot, masking the color tag off the left one.
func (n *Node) child(s side) *Node {
	if s == right {
		return (*Node)(unsafe.Pointer(n.children[right]))
	}
	return (*Node)(unsafe.Pointer(n.children[left] & ptrMask))
}

// setChild writes a child slot, preserving the color tag on the left one.
func (n *Node) setChild(s side, c *Node) {
	if s == right {
		n.children[right] = uintptr(unsafe.Pointer(c))
	} else {
		n.children[left] = uintptr(unsafe.Pointer(c)) | n.children[left]&colorMask
	}
}

func (n *Node) black() bool {
	return n.children[left]&colorMask != 0
}

func (n *Node) setBlack() {
	n.children[left] |= colorMask
}

func (n *Node) setRed() {
	n.children[left] &= ptrMask
}

func (n *Node) paint(black bool) {
	if black {
		n.setBlack()
	} else {
		n.setRed()
	}
}

// sideOf tells which child of parent c is. c must be a child of parent.
func sideOf(parent, c *Node) side {
	if parent.child(right) == c {
		return right
	}
	return left
}

// rotate the top two stack frames (child beneath parent), relinking the
// grandparent if there is one. Colors are untouched. The two frames are
// swapped so the stack keeps describing a root-to-node path:
//
//	      P          N
//	     / \        / \
//	    N   c  ->  a   P
//	   / \            / \
//	  a   b          b   c
func rotate(stack []*Node) {
	parent, n := stack[len(stack)-2], stack[len(stack)-1]
	s := sideOf(parent, n)

	a, b := n.child(s), n.child(s.other())
	if len(stack) >= 3 {
		g := stack[len(stack)-3]
		g.setChild(sideOf(g, parent), n)
	}
	n.setChild(s, a)
	n.setChild(s.other(), parent)
	parent.setChild(s, b)

	stack[len(stack)-2], stack[len(stack)-1] = n, parent
}
