package Trees

// depths returns the smallest depth of a leaf and the largest depth of any
// node in the subtree rooted at n, n being at depth d. Recursive.
func depths[K, V any](n *node[K, V], d uint) (minLeaf, maxNode uint) {
	switch {
	case n.l == nil && n.r == nil:
		return d, d
	case n.l == nil:
		return depths(n.r, d+1)
	case n.r == nil:
		return depths(n.l, d+1)
	}
	lmin, lmax := depths(n.l, d+1)
	rmin, rmax := depths(n.r, d+1)
	return min(lmin, rmin), max(lmax, rmax)
}

// MinDepth is the number of edges between the root and the shallowest leaf.
// 0 for an empty tree. Recursive.
// Time: O(n)
func (u *BST[K, V]) MinDepth() uint {
	if !u.root.occupied {
		return 0
	}
	d, _ := depths(u.root, 0)
	return d
}

// MaxDepth is the number of edges between the root and the deepest node.
// 0 for an empty tree. Recursive.
// Time: O(n)
func (u *BST[K, V]) MaxDepth() uint {
	if !u.root.occupied {
		return 0
	}
	_, d := depths(u.root, 0)
	return d
}

// FindHeight returns the largest Count of any key in t, which is the number of
// edges on the longest path from the root down to a leaf.
// Recursive.
// Time: O(n)
func FindHeight[K, V any](t *BST[K, V]) uint {
	return t.MaxDepth()
}

// ordered reports whether every key in the subtree rooted at n lies between
// the keys of lo and hi, either of which may be nil for an open bound.
// Recursive.
func (u *BST[K, V]) ordered(n, lo, hi *node[K, V]) bool {
	if n == nil {
		return true
	}
	if lo != nil && u.lt(n.k, lo.k) || hi != nil && u.lt(hi.k, n.k) {
		return false
	}
	return u.ordered(n.l, lo, n) && u.ordered(n.r, n, hi)
}

// IsBST reports whether every key in a node's left subtree is no greater than
// the node's key and every key in its right subtree is no less, checking each
// node against the bounds set by all of its ancestors. Recursive.
// Time: O(n)
func IsBST[K, V any](t *BST[K, V]) bool {
	return !t.root.occupied || t.ordered(t.root, nil, nil)
}

// IsLocallyOrdered only compares each node with its own children. It accepts
// trees where a key is out of order with respect to a grandparent or any
// ancestor further up, so it's weaker than IsBST. Recursive.
// Time: O(n)
func IsLocallyOrdered[K, V any](t *BST[K, V]) bool {
	var local func(n *node[K, V]) bool
	local = func(n *node[K, V]) bool {
		if n.l != nil && (t.lt(n.k, n.l.k) || !local(n.l)) {
			return false
		}
		if n.r != nil && (t.lt(n.r.k, n.k) || !local(n.r)) {
			return false
		}
		return true
	}
	return !t.root.occupied || local(t.root)
}

// IsBalanced reports whether the depths of the leaves of t differ by at most
// one. An empty tree is balanced, and so is a chain, having a single leaf.
// Recursive.
// Time: O(n)
func IsBalanced[K, V any](t *BST[K, V]) bool {
	if !t.root.occupied {
		return true
	}
	lo, hi := depths(t.root, 0)
	return hi-lo <= 1
}

// KLargestDistinct finds the k-th largest distinct key of t, so duplicates
// count once, and the value Find returns for it. 1<=k.
// Recursive.
// Time: O(D+k) plus the number of duplicates passed.
func KLargestDistinct[K, V any](t *BST[K, V], k uint) (rk K, rv V, found bool) {
	if k == 0 {
		return
	}
	var last *node[K, V]
	t.descend(t.root, func(n *node[K, V]) bool {
		if last != nil && t.eq(last.k, n.k) {
			return true
		}
		last = n
		if k--; k == 0 {
			rk, found = n.k, true
			return false
		}
		return true
	})
	if found {
		rv, _ = t.Lookup(rk)
	}
	return
}

// ThirdLargestNode returns the value belonging to the third largest distinct
// key of t, or false if t has fewer than three distinct keys.
func ThirdLargestNode[K, V any](t *BST[K, V]) (V, bool) {
	_, v, ok := KLargestDistinct(t, 3)
	return v, ok
}

// linked reports whether every child in the subtree rooted at n points back
// to its parent and is occupied. Returns the number of nodes checked.
func linked[K, V any](n *node[K, V]) (uint, bool) {
	var c uint = 1
	for _, ch := range [2]*node[K, V]{n.l, n.r} {
		if ch == nil {
			continue
		}
		if ch.p != n || !ch.occupied {
			return c, false
		}
		sub, ok := linked(ch)
		if c += sub; !ok {
			return c, false
		}
	}
	return c, true
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u *BST[K, V]) Corrupt() bool {
	if u.root.p != nil {
		return true
	}
	if !u.root.occupied {
		return u.root.l != nil || u.root.r != nil || u.sz != 0
	}
	c, ok := linked(u.root)
	return !ok || c != u.sz || !IsBST(u)
}
