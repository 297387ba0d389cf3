package Trees

// Tree represents an ordered key-value store implemented using nodes.
// Receivers that have a bool as the last return value indicate whether
// the other return values are defined. For example, calling Minimum on an
// empty tree returns (k K, v V, false), and k and v shouldn't be used.
// Keys need not be unique. Where an operation works on a single key and the
// key occurs more than once, it uses the occurrence closest to the root.
// Methods implemented recursively should be noted, otherwise they are
// implemented iteratively.
type Tree[K, V any] interface {
	//Insert k with value v. An existing occurrence of k is kept, not overwritten.
	Insert(k K, v V)
	//Find the value of k. The error matches ErrKeyNotFound when k is absent.
	Find(k K) (V, error)
	//Lookup is Find without the error.
	Lookup(k K) (V, bool)
	//Has key k.
	Has(k K) bool
	//Count the edges between the root and k.
	Count(k K) (uint, error)
	//Remove one occurrence of k.
	Remove(k K) error
	//Occurrences of k in the tree.
	Occurrences(k K) uint
	//Minimum key of the tree and its value.
	Minimum() (K, V, bool)
	//Maximum key of the tree and its value.
	Maximum() (K, V, bool)
	//Predecessor returns the greatest key less than k.
	Predecessor(k K) (K, bool)
	//Successor returns the smallest key greater than k.
	Successor(k K) (K, bool)
	//KSmallest finds the k-th smallest entry counting every occurrence.
	//1<=k<=Size().
	KSmallest(k uint) (K, V, bool)
	//KLargest finds the k-th largest entry counting every occurrence.
	//1<=k<=Size().
	KLargest(k uint) (K, V, bool)
	//RankOf k in the tree according to in-order, 0 if k is absent.
	//1<=r<=Size()
	RankOf(k K) uint
	//Size of the tree.
	Size() uint
	//InOrder returns a closure f acting like an iterator. f gives entries
	//in the in-order traversal of the tree: k, v, valid=f(). k and v are
	//meaningful only if valid is true. Once valid turns false, f is exhausted.
	//The tree mustn't be modified during the iteration of f.
	InOrder() func() (K, V, bool)
	//Corrupt returns whether the tree has corrupt structures: an ordering
	//violation anywhere in the tree, a broken parent link, or a size mismatch.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

var _ Tree[int, string] = (*BST[int, string])(nil)
