package Trees

import "golang.org/x/exp/constraints"

// The Scan functions compute the structural statistics by probing every
// integer between the minimum and maximum key of the tree, which is O(r*D)
// for a key range of size r. They only make sense for densely populated
// integer keys and are kept to cross-check FindHeight, IsBalanced and
// ThirdLargestNode, which walk the tree instead.

// keyRange calls f for each integer from the minimum to the maximum key of t.
func keyRange[K constraints.Integer, V any](t *BST[K, V], f func(K)) {
	lo, _, ok := t.Minimum()
	if !ok {
		return
	}
	hi, _, _ := t.Maximum()
	for i := lo; ; i++ {
		f(i)
		if i == hi {
			return
		}
	}
}

// ScanHeight is FindHeight computed as the largest Count over the key range.
func ScanHeight[K constraints.Integer, V any](t *BST[K, V]) (highest uint) {
	keyRange(t, func(i K) {
		if c, ok := t.count(t.root, i, 0); ok && c > highest {
			highest = c
		}
	})
	return
}

// ScanBalanced is IsBalanced computed from the Count of every leaf key in the key range.
func ScanBalanced[K constraints.Integer, V any](t *BST[K, V]) bool {
	var lo, hi uint
	seen := false
	keyRange(t, func(i K) {
		n := t.search(i)
		if n == nil || n.l != nil || n.r != nil {
			return
		}
		c, _ := t.count(t.root, i, 0)
		if !seen {
			lo, hi, seen = c, c, true
		}
		lo, hi = min(lo, c), max(hi, c)
	})
	return hi-lo <= 1
}

// top3 holds the three largest values pushed so far, largest first.
type top3[V constraints.Ordered] struct {
	vs [3]V
	n  int
}

func (u *top3[V]) push(v V) {
	i := min(u.n, 2)
	if u.n == 3 && v <= u.vs[2] {
		return
	}
	for ; i > 0 && u.vs[i-1] < v; i-- {
		u.vs[i] = u.vs[i-1]
	}
	u.vs[i] = v
	u.n = min(u.n+1, 3)
}

// ScanThirdLargest returns the third largest value Find returns for any key in
// the key range, or false if fewer than three keys are present. Unlike
// ThirdLargestNode it orders by value, which agrees with it when values are
// ordered like their keys.
func ScanThirdLargest[K constraints.Integer, V constraints.Ordered](t *BST[K, V]) (V, bool) {
	var acc top3[V]
	keyRange(t, func(i K) {
		if v, ok := t.Lookup(i); ok {
			acc.push(v)
		}
	})
	return acc.vs[2], acc.n == 3
}
