package Trees

import (
	"cmp"
	"golang.org/x/exp/constraints"
)

// BST is an unbalanced binary search tree mapping keys of type K to values of
// type V. Keys smaller than a node's key go to its left subtree, all others,
// including equal keys, go to its right subtree. Nothing rebalances the tree,
// so its depth D depends only on the order of insertions and removals, and is
// n-1 in the worst case.
// The root node is allocated once by the constructor and stays the root for
// the lifetime of the tree; an empty tree is a single unoccupied root.
// BST is not safe for concurrent use.
// BST shouldn't be created directly using struct literal.
type BST[K, V any] struct {
	root *node[K, V]
	lt   func(K, K) bool
	sz   uint
}

// New returns an empty BST ordered by the natural order of K.
func New[K constraints.Ordered, V any]() *BST[K, V] {
	return NewFunc[K, V](cmp.Less[K])
}

// NewFunc returns an empty BST ordered by lessThan, which must be a strict weak
// ordering. Keys a and b are considered equal when neither is less than the other.
func NewFunc[K, V any](lessThan func(K, K) bool) *BST[K, V] {
	return &BST[K, V]{root: new(node[K, V]), lt: lessThan}
}

// Build a perfectly balanced BST from keys, which must be sorted in strictly
// ascending order, and vals, where vals[i] belongs to keys[i]. This is faster
// than repeatedly calling Insert and doesn't depend on the insertion order.
// The slices aren't retained. If safe==true, Build checks the order and panics
// with InvalidSliceError if it's broken. Otherwise the check is skipped, and it
// is up to the caller to ensure the order, otherwise the tree will be corrupt.
// Build panics if the slices differ in length.
// Time: O(n).
func Build[K constraints.Ordered, V any](keys []K, vals []V, safe bool) *BST[K, V] {
	if len(keys) != len(vals) {
		panic("Trees: Build called with keys and vals of different lengths")
	}
	if safe {
		for i := 1; i < len(keys); i++ {
			if !(keys[i-1] < keys[i]) {
				panic(InvalidSliceError{i, keys[i-1], keys[i]})
			}
		}
	}
	u := New[K, V]()
	var build func(lo, hi int, p *node[K, V]) *node[K, V]
	build = func(lo, hi int, p *node[K, V]) *node[K, V] {
		if lo >= hi {
			return nil
		}
		mid := int(uint(lo+hi) >> 1)
		n := &node[K, V]{k: keys[mid], v: vals[mid], occupied: true, p: p}
		n.l, n.r = build(lo, mid, n), build(mid+1, hi, n)
		return n
	}
	if r := build(0, len(keys), nil); r != nil {
		u.root, u.sz = r, uint(len(keys))
	}
	return u
}

// Size returns the number of entries in the tree.
// Time: O(1); Space: O(1)
func (u *BST[K, V]) Size() uint {
	return u.sz
}

// Empty returns whether the tree holds no entries.
func (u *BST[K, V]) Empty() bool {
	return !u.root.occupied
}

// Root returns the entry at the root of the tree.
// Time: O(1); Space: O(1)
func (u *BST[K, V]) Root() (K, V, bool) {
	return u.root.k, u.root.v, u.root.occupied
}

// Clear the tree. The root node is kept and reset.
// Time: O(1)
func (u *BST[K, V]) Clear() {
	*u.root = node[K, V]{}
	u.sz = 0
}

func (u *BST[K, V]) eq(a, b K) bool {
	return !u.lt(a, b) && !u.lt(b, a)
}

// insert k, v into the subtree rooted at cur recursively.
func (u *BST[K, V]) insert(cur *node[K, V], k K, v V) {
	if !cur.occupied {
		cur.k, cur.v, cur.occupied = k, v, true
	} else if u.lt(k, cur.k) {
		if cur.l == nil {
			cur.l = &node[K, V]{k: k, v: v, occupied: true, p: cur}
		} else {
			u.insert(cur.l, k, v)
		}
	} else {
		if cur.r == nil {
			cur.r = &node[K, V]{k: k, v: v, occupied: true, p: cur}
		} else {
			u.insert(cur.r, k, v)
		}
	}
}

// Insert [Tree.Insert]. Recursive.
// If the tree is empty, the root takes k. A key equal to an existing key goes
// to the right of it, so both occurrences coexist and Find keeps returning the
// value of the one closer to the root.
// Time: O(D)
func (u *BST[K, V]) Insert(k K, v V) {
	u.insert(u.root, k, v)
	u.sz++
}

// search for the occurrence of k closest to the root. Returns nil if there's none.
// Time: O(D); Space: O(1)
func (u *BST[K, V]) search(k K) *node[K, V] {
	for cur := u.root; cur != nil && cur.occupied; {
		if u.lt(k, cur.k) {
			cur = cur.l
		} else if u.lt(cur.k, k) {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *BST[K, V]) Find(k K) (V, error) {
	if n := u.search(k); n != nil {
		return n.v, nil
	}
	return *new(V), &KeyNotFoundError[K]{k}
}

// Lookup [Tree.Lookup]
// Time: O(D); Space: O(1)
func (u *BST[K, V]) Lookup(k K) (V, bool) {
	if n := u.search(k); n != nil {
		return n.v, true
	}
	return *new(V), false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BST[K, V]) Has(k K) bool {
	return u.search(k) != nil
}

// count the edges from cur down to k, acc being the edges already traversed
// above cur. Returns false if k isn't found. Recursive.
func (u *BST[K, V]) count(cur *node[K, V], k K, acc uint) (uint, bool) {
	if cur == nil || !cur.occupied {
		return 0, false
	} else if u.lt(k, cur.k) {
		return u.count(cur.l, k, acc+1)
	} else if u.lt(cur.k, k) {
		return u.count(cur.r, k, acc+1)
	}
	return acc, true
}

// Count [Tree.Count]. Recursive.
// Returns 0 when k is at the root. The error matches ErrKeyNotFound when k is absent.
// Time: O(D)
func (u *BST[K, V]) Count(k K) (uint, error) {
	if c, ok := u.count(u.root, k, 0); ok {
		return c, nil
	}
	return 0, &KeyNotFoundError[K]{k}
}

// Remove [Tree.Remove]
// Removes the occurrence of k closest to the root. If the tree has other
// occurrences of k, Find returns one of their values afterwards.
// Time: O(D); Space: O(1)
func (u *BST[K, V]) Remove(k K) error {
	n := u.search(k)
	if n == nil {
		return &KeyNotFoundError[K]{k}
	}
	n.unlink()
	u.sz--
	return nil
}

// Occurrences [Tree.Occurrences]
// All occurrences of a key lie on a single search path, since keys less than a
// node's key are only ever found to its left.
// Time: O(D); Space: O(1)
func (u *BST[K, V]) Occurrences(k K) (c uint) {
	for cur := u.search(k); cur != nil; {
		if u.lt(k, cur.k) {
			cur = cur.l
		} else if u.lt(cur.k, k) {
			cur = cur.r
		} else {
			c++
			cur = cur.r
		}
	}
	return c
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BST[K, V]) Minimum() (K, V, bool) {
	if !u.root.occupied {
		return *new(K), *new(V), false
	}
	n := u.root.findMin()
	return n.k, n.v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BST[K, V]) Maximum() (K, V, bool) {
	if !u.root.occupied {
		return *new(K), *new(V), false
	}
	n := u.root.findMax()
	return n.k, n.v, true
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BST[K, V]) Predecessor(k K) (K, bool) {
	var p *node[K, V]
	for cur := u.root; cur != nil && cur.occupied; {
		if u.lt(cur.k, k) {
			p = cur
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	if p == nil {
		return *new(K), false
	}
	return p.k, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *BST[K, V]) Successor(k K) (K, bool) {
	var p *node[K, V]
	for cur := u.root; cur != nil && cur.occupied; {
		if u.lt(k, cur.k) {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(K), false
	}
	return p.k, true
}

// KSmallest [Tree.KSmallest]
// Returns (k, v, true) if 1<=k<=Size(), otherwise false.
// Time: O(D+k)
func (u *BST[K, V]) KSmallest(k uint) (rk K, rv V, found bool) {
	if k == 0 || k > u.sz {
		return
	}
	next := u.InOrder()
	for ; k > 0; k-- {
		rk, rv, found = next()
	}
	return
}

// KLargest [Tree.KLargest]
// Returns (k, v, true) if 1<=k<=Size(), otherwise false.
// Recursive.
// Time: O(D+k)
func (u *BST[K, V]) KLargest(k uint) (rk K, rv V, found bool) {
	if k == 0 || k > u.sz {
		return
	}
	u.descend(u.root, func(n *node[K, V]) bool {
		if k--; k == 0 {
			rk, rv, found = n.k, n.v, true
			return false
		}
		return true
	})
	return
}

// RankOf [Tree.RankOf]
// The rank is one more than the number of keys less than k, so with
// duplicates it's the rank of the first occurrence in in-order.
// Time: O(n)
func (u *BST[K, V]) RankOf(k K) uint {
	if !u.Has(k) {
		return 0
	}
	var ra uint = 1
	u.Range(func(x K, _ V) bool {
		if u.lt(x, k) {
			ra++
			return true
		}
		return false
	})
	return ra
}
