/*
Package cbst implements a copy-on-write binary search tree for integer-like keys.

Values live in the leafs of the tree. Inserting a key never overwrites the value of a
live node: the leaf where the search for the new key ends is split into two fresh leafs,
one of them a clone of the old leaf, the other one holding the new key. The old leaf
is re-used as an inner node and keeps its key for routing only. Removal is the inverse
operation: a leaf and its parent are dropped, and the sibling of the leaf takes the
parent's place (a “splice”).

    tree := cbst.New[int]()
    tree.Insert(5)           // true
    tree.Insert(3)           // true
    tree.Insert(3)           // false, already present
    tree.Contains(3)         // true
    tree.Remove(5)           // true

Duplicate detection is done along the single search path of a key only. The tree does
not infer multiset semantics for leafs of equal value on different paths.

Trees are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cbst

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cowtree.cbst'.
func tracer() tracing.Trace {
	return tracing.Select("cowtree.cbst")
}

// ErrBrokenInvariant is wrapped by every error signalling a corrupt tree structure.
// A tree in this state must not be operated on any further.
var ErrBrokenInvariant = errors.New("tree invariant violated")

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		panic(brokenf(msg, msgargs...))
	}
}
