package Trees

import (
	"fmt"
	"github.com/xlab/treeprint"
)

func label[K, V any](n *node[K, V]) string {
	return fmt.Sprintf("%v: %v", n.k, n.v)
}

func render[K, V any](n *node[K, V], br treeprint.Tree) {
	if n.l != nil {
		render(n.l, br.AddMetaBranch("L", label(n.l)))
	}
	if n.r != nil {
		render(n.r, br.AddMetaBranch("R", label(n.r)))
	}
}

// Render the shape of the tree as text, one "key: value" line per node, children
// marked [L] or [R]. An empty tree renders as a lone "(empty)" root. Recursive.
func (u *BST[K, V]) Render() string {
	if !u.root.occupied {
		return treeprint.NewWithRoot("(empty)").String()
	}
	tr := treeprint.NewWithRoot(label(u.root))
	render(u.root, tr)
	return tr.String()
}
