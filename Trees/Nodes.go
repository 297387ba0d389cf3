package Trees

// A node in the BST.
// The zero value is an unoccupied node; only the root of an empty tree is
// ever unoccupied. l and r are owned by the node, p refers back to the owner
// and is nil for the root. p is never used to keep anything alive.
type node[K, V any] struct {
	k        K
	v        V
	occupied bool
	l, r     *node[K, V]
	p        *node[K, V]
}

// findMin returns the leftmost descendant of n, n itself when it has no left child.
// Recursive.
func (n *node[K, V]) findMin() *node[K, V] {
	if n.l == nil {
		return n
	}
	return n.l.findMin()
}

// findMax returns the rightmost descendant of n.
func (n *node[K, V]) findMax() *node[K, V] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// unlink n from its tree according to how many children it has. A node with
// two children takes the content of its in-order successor, and the successor,
// which has no left child, is unlinked instead.
// Recursive, at most one level deep.
func (n *node[K, V]) unlink() {
	switch {
	case n.l != nil && n.r != nil:
		s := n.r.findMin()
		n.k, n.v = s.k, s.v
		s.unlink()
	case n.l != nil:
		n.replaceWith(n.l)
	case n.r != nil:
		n.replaceWith(n.r)
	default:
		n.replaceWith(nil)
	}
}

// replaceWith puts c, which may be nil, into the slot n occupies in its parent.
// The root has no slot: it copies c's content and children instead, or is reset
// to the unoccupied state when c is nil, so the root node is never replaced.
func (n *node[K, V]) replaceWith(c *node[K, V]) {
	if p := n.p; p != nil {
		if n == p.l {
			p.l = c
		} else {
			p.r = c
		}
		if c != nil {
			c.p = p
		}
		n.l, n.r, n.p = nil, nil, nil
	} else if c != nil {
		n.k, n.v, n.l, n.r = c.k, c.v, c.l, c.r
		if n.l != nil {
			n.l.p = n
		}
		if n.r != nil {
			n.r.p = n
		}
	} else {
		*n = node[K, V]{}
	}
}
