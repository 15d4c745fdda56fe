package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/npillmayer/cowtree/psort"
)

type cmdSort struct {
	n      int
	runs   int
	cutoff int
	chunk  int
	seed   int64
	out    io.Writer
}

func (cmd *cmdSort) Name() string     { return "sort" }
func (cmd *cmdSort) Synopsis() string { return "time sequential vs parallel sorting" }
func (cmd *cmdSort) Usage() string {
	return "sort [-n count] [-runs r] [-cutoff c] [-chunk k] [-seed s]\n"
}

func (cmd *cmdSort) SetFlags(f *flag.FlagSet) {
	f.IntVar(&cmd.n, "n", 10000000, "length of random sequences")
	f.IntVar(&cmd.runs, "runs", 5, "number of pre-generated sequences")
	f.IntVar(&cmd.cutoff, "cutoff", psort.DefaultCutoff, "partition size below which quicksort runs sequentially")
	f.IntVar(&cmd.chunk, "chunk", psort.DefaultChunk, "chunk size for chunk sort")
	f.Int64Var(&cmd.seed, "seed", 0, "random seed (0 = time based)")
}

type sorter struct {
	name string
	sort func([]int)
}

func (cmd *cmdSort) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	if cmd.n < 0 || cmd.runs < 1 {
		fmt.Fprintln(os.Stderr, "sort: n must be ≥ 0 and runs ≥ 1")
		return subcommands.ExitUsageError
	}
	if cmd.out == nil {
		cmd.out = os.Stdout
	}
	rng := newRand(cmd.seed)
	seqs := make([][]int, cmd.runs)
	for i := range seqs {
		seqs[i] = randomInts(rng, cmd.n)
	}
	sorters := []sorter{
		{"parallel quicksort", func(s []int) { psort.ParallelQuicksort(s, cmd.cutoff) }},
		{"sequential quicksort", func(s []int) { psort.Quicksort(s) }},
		{"chunk sort", func(s []int) { psort.ChunkSort(s, cmd.chunk) }},
	}
	avg := make([]time.Duration, len(sorters))
	for i, srt := range sorters {
		fmt.Fprintf(cmd.out, "%s:\n", srt.name)
		d, ok := cmd.timeRuns(srt, seqs)
		if !ok {
			return subcommands.ExitFailure
		}
		avg[i] = d
		fmt.Fprintf(cmd.out, "\taverage: %v\n", d)
	}
	if avg[0] > 0 {
		fmt.Fprintf(cmd.out, "speedup parallel vs sequential quicksort: %.2f\n", float64(avg[1])/float64(avg[0]))
	}
	return subcommands.ExitSuccess
}

// timeRuns sorts a copy of every sequence and returns the average duration. It reports
// false if a result is not sorted.
func (cmd *cmdSort) timeRuns(srt sorter, seqs [][]int) (time.Duration, bool) {
	var total time.Duration
	for i, seq := range seqs {
		s := append([]int(nil), seq...)
		start := time.Now()
		srt.sort(s)
		elapsed := time.Since(start)
		if !psort.IsSorted(s) {
			tracer().Errorf("%s: run %d: result is not sorted", srt.name, i+1)
			fmt.Fprintln(cmd.out, "NOT SORTED!")
			return 0, false
		}
		total += elapsed
		fmt.Fprintf(cmd.out, "\t%d. %v\n", i+1, elapsed)
	}
	return total / time.Duration(len(seqs)), true
}
