package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/g-m-twostay/go-bst/Trees"

	"github.com/urfave/cli/v2"
)

type report struct {
	size     uint
	root     int
	height   uint
	balanced bool
	valid    bool
	third    int
	hasThird bool
}

// buildTree inserts keys in order, each with itself as value, then removes the
// keys in remove. Keys that can't be removed are logged and skipped.
func buildTree(logger *slog.Logger, keys, remove []int) *Trees.BST[int, int] {
	tree := Trees.New[int, int]()
	for _, k := range keys {
		tree.Insert(k, k)
		logger.Debug("inserted key", "key", k, "size", tree.Size())
	}
	for _, k := range remove {
		if err := tree.Remove(k); err != nil {
			logger.Warn("failed to remove key", "key", k, "err", err)
			continue
		}
		logger.Debug("removed key", "key", k, "size", tree.Size())
	}
	return tree
}

func summarize(tree *Trees.BST[int, int]) report {
	r := report{
		size:     tree.Size(),
		height:   Trees.FindHeight(tree),
		balanced: Trees.IsBalanced(tree),
		valid:    Trees.IsBST(tree),
	}
	r.root, _, _ = tree.Root()
	r.third, r.hasThird = Trees.ThirdLargestNode(tree)
	return r
}

func (r report) print(w io.Writer) {
	fmt.Fprintf(w, "size: %d\n", r.size)
	if r.size > 0 {
		fmt.Fprintf(w, "root: %d\n", r.root)
	}
	fmt.Fprintf(w, "height: %d\n", r.height)
	fmt.Fprintf(w, "balanced: %v\n", r.balanced)
	fmt.Fprintf(w, "valid: %v\n", r.valid)
	if r.hasThird {
		fmt.Fprintf(w, "third largest: %d\n", r.third)
	} else {
		fmt.Fprintln(w, "third largest: none")
	}
}

func runDemo(cctx *cli.Context) error {
	logger := configLogger(cctx, cctx.App.ErrWriter)
	keys, remove := cctx.IntSlice("keys"), cctx.IntSlice("remove")
	logger.Info("building tree", "keys", len(keys), "remove", len(remove))

	tree := buildTree(logger, keys, remove)
	if tree.Corrupt() {
		return fmt.Errorf("tree of %d keys is corrupt", tree.Size())
	}
	summarize(tree).print(cctx.App.Writer)
	if cctx.Bool("render") {
		fmt.Fprint(cctx.App.Writer, tree.Render())
	}
	return nil
}
