package cbst

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// window is the result of a search: the leaf where a search ended, together with its
// parent and grand-parent. parent and grand are nil if the leaf sits at the top of the tree.
type window[K constraints.Ordered] struct {
	leaf   *Node[K]
	parent *Node[K]
	grand  *Node[K]
}

func (w window[K]) String() string {
	return fmt.Sprintf("⟨%s %s %s⟩", w.grand, w.parent, w.leaf)
}

// search descends from the root to the leaf responsible for key. Keys equal to the
// routing key of an inner node are sent left if the left child carries the key, right
// otherwise.
//
// search must not be called for an empty tree.
func (tree *Tree[K]) search(key K) window[K] {
	assertThat(tree.root != nil, "attempt to search empty tree")
	var w window[K]
	cursor := tree.root
	for !cursor.IsLeaf() {
		assertThat(cursor.left != nil && cursor.right != nil,
			"inner node %v has a single child", cursor)
		w.grand, w.parent = w.parent, cursor
		switch {
		case key > cursor.value:
			cursor = cursor.right
		case key < cursor.value:
			cursor = cursor.left
		case cursor.left.value == key:
			cursor = cursor.left
		default:
			cursor = cursor.right
		}
	}
	w.leaf = cursor
	tracer().Debugf("search(%v) -> %s", key, w)
	return w
}
