package main

import (
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

var exampleKeys = []int{3, 1, 4, 6, 9, 10, 2, 5, 7}

func newApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "bstdemo",
		Usage:     "build an unbalanced binary search tree and print its statistics",
		Version:   versioninfo.Short(),
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.IntSliceFlag{
				Name:    "keys",
				Usage:   "keys to insert, in order; each key is also its value",
				Value:   cli.NewIntSlice(exampleKeys...),
				EnvVars: []string{"BST_KEYS"},
			},
			&cli.IntSliceFlag{
				Name:    "remove",
				Usage:   "keys to remove after inserting",
				EnvVars: []string{"BST_REMOVE"},
			},
			&cli.BoolFlag{
				Name:    "render",
				Usage:   "print the shape of the tree",
				EnvVars: []string{"BST_RENDER"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				Value:   "info",
				EnvVars: []string{"BST_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Action: runDemo,
	}
}

func run(args []string) error {
	return newApp(os.Stdout, os.Stderr).Run(args)
}
