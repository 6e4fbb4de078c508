package Trees

// CRBTree is an RBTree that additionally caches its minimum and/or maximum
// node, each independently enabled at construction. Insert keeps a cache
// current with one extra comparison; Remove recomputes a cache only when
// the cached node itself is removed. Everything else delegates to the
// embedded RBTree.
type CRBTree struct {
	RBTree
	leftmost, rightmost *Node
	cacheMin, cacheMax  bool
}

// NewCached returns an empty cached tree ordered by less. cacheMin and
// cacheMax select which extremum is tracked; with both false the wrapper
// degenerates to a plain RBTree.
func NewCached(less func(a, b *Node) bool, cacheMin, cacheMax bool) *CRBTree {
	return &CRBTree{RBTree: RBTree{less: less}, cacheMin: cacheMin, cacheMax: cacheMax}
}

func (u *CRBTree) Insert(n *Node) {
	u.RBTree.Insert(n)
	if u.cacheMin && (u.leftmost == nil || u.less(n, u.leftmost)) {
		u.leftmost = n
	}
	if u.cacheMax && (u.rightmost == nil || u.less(u.rightmost, n)) {
		u.rightmost = n
	}
}

func (u *CRBTree) Remove(n *Node) {
	u.RBTree.Remove(n)
	// Only the cached node's own removal invalidates a cache; anything
	// else cannot change the extremum.
	if u.cacheMin && u.leftmost == n {
		u.leftmost = u.RBTree.Minimum()
	}
	if u.cacheMax && u.rightmost == n {
		u.rightmost = u.RBTree.Maximum()
	}
}

// Minimum is O(1) when the minimum cache is enabled, otherwise it falls
// back to the leftmost descent.
func (u *CRBTree) Minimum() *Node {
	if u.cacheMin {
		return u.leftmost
	}
	return u.RBTree.Minimum()
}

// Maximum is O(1) when the maximum cache is enabled, otherwise it falls
// back to the rightmost descent.
func (u *CRBTree) Maximum() *Node {
	if u.cacheMax {
		return u.rightmost
	}
	return u.RBTree.Maximum()
}

// Has rejects in O(1) when n sorts outside the cached bounds, then falls
// back to the full descent.
func (u *CRBTree) Has(n *Node) bool {
	if u.cacheMin && u.leftmost != nil && u.less(n, u.leftmost) {
		return false
	}
	if u.cacheMax && u.rightmost != nil && u.less(u.rightmost, n) {
		return false
	}
	return u.RBTree.Has(n)
}
