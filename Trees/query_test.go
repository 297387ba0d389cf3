package Trees

import "testing"

func chain(n int) *BST[int, int] {
	tree := New[int, int]()
	for i := range n {
		tree.Insert(i, i)
	}
	return tree
}

func TestFindHeight(t *testing.T) {
	tests := []struct {
		scenario string
		tree     *BST[int, int]
		want     uint
	}{
		{"empty tree", New[int, int](), 0},
		{"single node", chain(1), 0},
		{"chain of ten", chain(10), 9},
		{"example", example(), 4},
	}
	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			if h := FindHeight(test.tree); h != test.want {
				t.Errorf("height is %d, want %d", h, test.want)
			}
		})
	}
}

func TestIsBST(t *testing.T) {
	tree := example()
	if !IsBST(tree) || !IsLocallyOrdered(tree) {
		t.Fatalf("example tree isn't ordered")
	}
	// 7 sits left of 9, which sits right of 6.
	n := tree.search(7)
	n.k = 2
	if !IsLocallyOrdered(tree) {
		t.Errorf("a key ordered against its parent fails the local check")
	}
	if IsBST(tree) {
		t.Errorf("a key smaller than an ancestor to its left passes the global check")
	}
	if !tree.Corrupt() {
		t.Errorf("tree with a misplaced key isn't corrupt")
	}
	n.k = 7
	tree.root.l.k = 5
	if IsLocallyOrdered(tree) || IsBST(tree) {
		t.Errorf("a left child greater than its parent passes")
	}
	if !IsBST(New[int, int]()) || !IsLocallyOrdered(New[int, int]()) {
		t.Errorf("empty tree isn't ordered")
	}
}

func TestIsBalanced(t *testing.T) {
	keys := make([]int, 20)
	for i := range keys {
		keys[i] = i
	}
	tests := []struct {
		scenario string
		tree     *BST[int, int]
		want     bool
	}{
		{"empty tree", New[int, int](), true},
		{"single node", chain(1), true},
		{"built from sorted keys", Build(keys, keys, true), true},
		{"example", example(), false},
		// A chain has a single leaf, so its leaf depths can't differ.
		{"chain", chain(6), true},
	}
	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			if b := IsBalanced(test.tree); b != test.want {
				t.Errorf("balanced is %v, want %v", b, test.want)
			}
		})
	}
	tree := chain(4)
	tree.Insert(-1, -1)
	if IsBalanced(tree) {
		t.Errorf("leaves at depths 1 and 3 are balanced")
	}
}

func TestThirdLargestNode(t *testing.T) {
	tree := New[int, string]()
	for _, k := range []int{10, 10, 9, 10, 8, 1} {
		tree.Insert(k, string(rune('a'+k)))
	}
	if v, ok := ThirdLargestNode(tree); !ok || v != "i" {
		t.Errorf("third largest is %q, %v, want %q", v, ok, "i")
	}
	if k, _, ok := KLargestDistinct(tree, 4); !ok || k != 1 {
		t.Errorf("fourth largest distinct key is %d, want 1", k)
	}
	if _, _, ok := KLargestDistinct(tree, 5); ok {
		t.Errorf("fifth largest distinct key is defined")
	}
	if k, _, _ := tree.KLargest(3); k != 10 {
		t.Errorf("third largest key counting duplicates is %d, want 10", k)
	}
	if _, ok := ThirdLargestNode(chain(2)); ok {
		t.Errorf("two node tree has a third largest key")
	}
}

func TestScanParity(t *testing.T) {
	for range 50 {
		n := 1 + rg.Intn(64)
		tree := New[int, int]()
		for _, k := range rg.Perm(n) {
			tree.Insert(k+1, k+1)
		}
		if a, b := ScanHeight(tree), FindHeight(tree); a != b {
			t.Errorf("scanned height %d, walked height %d for %v", a, b, tree.Keys())
		}
		if a, b := ScanBalanced(tree), IsBalanced(tree); a != b {
			t.Errorf("scanned balance %v, walked balance %v", a, b)
		}
		a, aok := ScanThirdLargest(tree)
		b, bok := ThirdLargestNode(tree)
		if a != b || aok != bok {
			t.Errorf("scanned third largest %d, %v, walked %d, %v", a, aok, b, bok)
		}
	}
	if v, ok := ScanThirdLargest(example()); !ok || v != 7 {
		t.Errorf("scanned third largest of example is %d, want 7", v)
	}
	if ScanHeight(New[int, int]()) != 0 || !ScanBalanced(New[int, int]()) {
		t.Errorf("scanning an empty tree found something")
	}
}

func TestScan_Extremes(t *testing.T) {
	tree := New[int8, int8]()
	for _, k := range []int8{127, 126, 125} {
		tree.Insert(k, k)
	}
	if v, ok := ScanThirdLargest(tree); !ok || v != 125 {
		t.Errorf("third largest near the top of int8 is %d, %v", v, ok)
	}
}

func TestTop3(t *testing.T) {
	var acc top3[int]
	for _, v := range []int{4, 1, 9, 9, 3, 7, 2} {
		acc.push(v)
	}
	if acc.vs != [3]int{9, 9, 7} || acc.n != 3 {
		t.Errorf("top three are %v", acc.vs)
	}
}
