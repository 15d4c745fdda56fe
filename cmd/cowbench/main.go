/*
Command cowbench times the algorithms of this module on random input.

    cowbench bst  -n 1000000 -seed 7 -print
    cowbench sort -n 10000000 -runs 5 -cutoff 1000 -chunk 1000

*/
package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cowtree.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("cowtree.cmd")
}

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&cmdBST{}, "")
	subcommands.Register(&cmdSort{}, "")
	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

// randomInts returns n integers uniformly distributed in [-n, n].
func randomInts(rng *rand.Rand, n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = rng.Intn(2*n+1) - n
	}
	return s
}

// newRand creates a random source for a seed. A seed of 0 selects the current time.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tracer().Debugf("random seed = %d", seed)
	return rand.New(rand.NewSource(seed))
}
