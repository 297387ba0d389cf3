package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/go-bst/Queues"
)

// InOrder [Tree.InOrder]
// The iterator keeps the left spine of the unvisited part of the tree on a stack.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *BST[K, V]) InOrder() func() (K, V, bool) {
	st := arraystack.New()
	push := func(n *node[K, V]) {
		for ; n != nil; n = n.l {
			st.Push(n)
		}
	}
	if u.root.occupied {
		push(u.root)
	}
	return func() (k K, v V, has bool) {
		top, ok := st.Pop()
		if !ok {
			return
		}
		n := top.(*node[K, V])
		push(n.r)
		return n.k, n.v, true
	}
}

func (u *BST[K, V]) subrange(n *node[K, V], f func(K, V) bool) bool {
	return n == nil || (u.subrange(n.l, f) && f(n.k, n.v) && u.subrange(n.r, f))
}

// Range calls f for each entry in ascending key order until f returns false.
// Recursive.
// Time: O(n)
func (u *BST[K, V]) Range(f func(K, V) bool) {
	if u.root.occupied {
		u.subrange(u.root, f)
	}
}

// descend visits the nodes of the subtree rooted at n in descending key order
// until f returns false. Returns false if f stopped it. Recursive.
func (u *BST[K, V]) descend(n *node[K, V], f func(*node[K, V]) bool) bool {
	if n == nil || !n.occupied {
		return true
	}
	return u.descend(n.r, f) && f(n) && u.descend(n.l, f)
}

// Keys in ascending order. Duplicates appear once per occurrence.
func (u *BST[K, V]) Keys() []K {
	ks := make([]K, 0, u.sz)
	u.Range(func(k K, _ V) bool {
		ks = append(ks, k)
		return true
	})
	return ks
}

type leveled[K, V any] struct {
	n *node[K, V]
	d uint
}

// LevelOrder calls f for each entry breadth first, left to right within a
// level, together with the depth of its node, until f returns false.
// Time: O(n); Space: O(widest level)
func (u *BST[K, V]) LevelOrder(f func(k K, v V, depth uint) bool) {
	if !u.root.occupied {
		return
	}
	q := Queues.MakeArrayQueue[leveled[K, V]](16)
	q.Push(leveled[K, V]{u.root, 0})
	for !q.Empty() {
		cur, _ := q.Pop()
		if !f(cur.n.k, cur.n.v, cur.d) {
			return
		}
		if cur.n.l != nil {
			q.Push(leveled[K, V]{cur.n.l, cur.d + 1})
		}
		if cur.n.r != nil {
			q.Push(leveled[K, V]{cur.n.r, cur.d + 1})
		}
	}
}
