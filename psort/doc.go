/*
Package psort implements parallel sorting of slices.

ParallelQuicksort partitions a slice around its last element and sorts both partitions
in parallel, falling back to a sequential quicksort for partitions below a cutoff.
ChunkSort sorts fixed-size chunks in parallel and merges neighbouring runs level by level.

Both produce a sorted permutation of their input, in place.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package psort

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cowtree.psort'.
func tracer() tracing.Trace {
	return tracing.Select("cowtree.psort")
}
