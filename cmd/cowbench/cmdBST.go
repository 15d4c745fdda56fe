package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/btree"
	"github.com/google/subcommands"
	"github.com/npillmayer/cowtree/cbst"
	"github.com/npillmayer/cowtree/cbst/bstdbg"
)

type cmdBST struct {
	n      int
	seed   int64
	degree int
	print  bool
	out    io.Writer
}

func (cmd *cmdBST) Name() string     { return "bst" }
func (cmd *cmdBST) Synopsis() string { return "time insert/remove of random keys in a copy-on-write tree" }
func (cmd *cmdBST) Usage() string {
	return "bst [-n count] [-seed s] [-degree d] [-print]\n"
}

func (cmd *cmdBST) SetFlags(f *flag.FlagSet) {
	f.IntVar(&cmd.n, "n", 1000000, "number of random keys")
	f.Int64Var(&cmd.seed, "seed", 0, "random seed (0 = time based)")
	f.IntVar(&cmd.degree, "degree", 32, "degree of the B-tree used as baseline")
	f.BoolVar(&cmd.print, "print", false, "print the final tree")
}

func (cmd *cmdBST) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	if cmd.n < 0 || cmd.degree < 2 {
		fmt.Fprintln(os.Stderr, "bst: n must be ≥ 0 and degree ≥ 2")
		return subcommands.ExitUsageError
	}
	if cmd.out == nil {
		cmd.out = os.Stdout
	}
	keys := randomInts(newRand(cmd.seed), cmd.n)
	tree, elapsed := cmd.runTree(keys)
	fmt.Fprintf(cmd.out, "copy-on-write tree: %v\n", elapsed)
	fmt.Fprintf(cmd.out, "B-tree baseline:    %v\n", cmd.runBaseline(keys))
	if err := tree.Check(); err != nil {
		tracer().Errorf("tree is corrupt: %v", err)
		return subcommands.ExitFailure
	}
	if cmd.print {
		if err := bstdbg.Print(cmd.out, tree); err != nil {
			tracer().Errorf("cannot print tree: %v", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

// runTree inserts all keys into a copy-on-write tree, then removes them again.
func (cmd *cmdBST) runTree(keys []int) (*cbst.Tree[int], time.Duration) {
	tree := cbst.New[int]()
	start := time.Now()
	inserted := 0
	for _, k := range keys {
		if tree.Insert(k) {
			inserted++
		}
	}
	for _, k := range keys {
		tree.Remove(k)
	}
	elapsed := time.Since(start)
	tracer().Infof("cbst: %d keys, %d inserted, %d nodes left", len(keys), inserted, tree.Size())
	return tree, elapsed
}

// runBaseline does the same as runTree for an ordered set implemented by a B-tree.
func (cmd *cmdBST) runBaseline(keys []int) time.Duration {
	set := btree.NewOrderedG[int](cmd.degree)
	start := time.Now()
	for _, k := range keys {
		set.ReplaceOrInsert(k)
	}
	for _, k := range keys {
		set.Delete(k)
	}
	elapsed := time.Since(start)
	tracer().Infof("btree: %d keys, %d left", len(keys), set.Len())
	return elapsed
}
