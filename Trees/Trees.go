// Package Trees implements an intrusive red-black tree tuned for minimal
// memory: each Node is exactly two words. There is no parent pointer, the
// color bit is packed into the low bit of a child slot, and rebalancing
// reconstructs ancestry on a per-call path stack instead. The tree orders
// node identities through a caller-supplied comparator and never touches
// payload, so one record can sit in several trees through several embedded
// Nodes.
package Trees

// Set is the node-identity interface shared by RBTree and CRBTree. Nodes
// are caller-owned: the tree links and unlinks them but never allocates or
// releases their storage, and a tree must not be used after a linked
// node's record becomes unreachable.
type Set interface {
	// Insert links an unlinked node. Inserting an already linked node
	// corrupts the tree.
	Insert(*Node)
	// Remove unlinks a node; a node that is not linked is a no-op.
	Remove(*Node)
	// Has reports whether this exact node is linked, by pointer equality.
	Has(*Node) bool
	// Minimum returns the least node or nil when empty.
	Minimum() *Node
	// Maximum returns the greatest node or nil when empty.
	Maximum() *Node
}

var (
	_ Set = (*RBTree)(nil)
	_ Set = (*CRBTree)(nil)
)
