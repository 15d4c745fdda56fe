package psort

import (
	"runtime"

	"github.com/exascience/pargo/parallel"
	"golang.org/x/exp/constraints"
)

// DefaultChunk is the chunk size ChunkSort uses if none is given.
const DefaultChunk = 1000

// ChunkSort sorts s in place. s is cut into chunks of the given size, which are sorted in
// parallel; then neighbouring runs are merged pairwise, doubling the run length on every
// level, until a single run is left. A chunk < 1 selects DefaultChunk.
func ChunkSort[T constraints.Ordered](s []T, chunk int) {
	if chunk < 1 {
		chunk = DefaultChunk
	}
	n := len(s)
	if n <= chunk {
		Quicksort(s)
		return
	}
	chunks := (n + chunk - 1) / chunk
	tracer().Debugf("chunk sort of %d elements in %d chunks", n, chunks)
	parallel.Range(0, chunks, batches(chunks), func(low, high int) {
		for c := low; c < high; c++ {
			Quicksort(s[c*chunk : min(n, (c+1)*chunk)])
		}
	})
	src, dst := s, make([]T, n)
	for width := chunk; width < n; width *= 2 {
		pairs := (n + 2*width - 1) / (2 * width)
		parallel.Range(0, pairs, batches(pairs), func(low, high int) {
			for p := low; p < high; p++ {
				lo := p * 2 * width
				mid, hi := min(n, lo+width), min(n, lo+2*width)
				merge(dst[lo:hi], src[lo:mid], src[mid:hi])
			}
		})
		src, dst = dst, src
	}
	if &src[0] != &s[0] {
		copy(s, src)
	}
}

// merge merges sorted runs a and b into out, which has room for both.
func merge[T constraints.Ordered](out, a, b []T) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if b[j] < a[i] {
			out[k] = b[j]
			j++
		} else {
			out[k] = a[i]
			i++
		}
		k++
	}
	k += copy(out[k:], a[i:])
	copy(out[k:], b[j:])
}

// batches returns the number of parallel batches for n work items.
func batches(n int) int {
	return min(n, runtime.GOMAXPROCS(0))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
