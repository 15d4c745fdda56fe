package psort

import (
	"github.com/exascience/pargo/parallel"
	"golang.org/x/exp/constraints"
)

// DefaultCutoff is the partition size below which ParallelQuicksort sorts sequentially.
const DefaultCutoff = 1000

// Quicksort sorts s in place, sequentially.
func Quicksort[T constraints.Ordered](s []T) {
	for len(s) > 1 {
		p := partition(s)
		// recurse into the smaller half, loop on the larger one
		if p < len(s)-p-1 {
			Quicksort(s[:p])
			s = s[p+1:]
		} else {
			Quicksort(s[p+1:])
			s = s[:p]
		}
	}
}

// ParallelQuicksort sorts s in place. Partitions are sorted in parallel as long as they
// hold at least cutoff elements. A cutoff < 2 selects DefaultCutoff.
func ParallelQuicksort[T constraints.Ordered](s []T, cutoff int) {
	if cutoff < 2 {
		cutoff = DefaultCutoff
	}
	tracer().Debugf("parallel quicksort of %d elements, cutoff %d", len(s), cutoff)
	parQuicksort(s, cutoff)
}

func parQuicksort[T constraints.Ordered](s []T, cutoff int) {
	if len(s) < cutoff {
		Quicksort(s)
		return
	}
	p := partition(s)
	parallel.Do(
		func() { parQuicksort(s[:p], cutoff) },
		func() { parQuicksort(s[p+1:], cutoff) },
	)
}

// partition moves the last element of s (the pivot) to its final position and returns
// that position. Elements ≤ pivot end up to the left of it.
func partition[T constraints.Ordered](s []T) int {
	last := len(s) - 1
	pivot := s[last]
	i := 0
	for j := 0; j < last; j++ {
		if s[j] <= pivot {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[last] = s[last], s[i]
	return i
}

// IsSorted reports whether s is sorted in ascending order.
func IsSorted[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}
