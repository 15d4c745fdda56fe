package cbst

import (
	"errors"

	"github.com/npillmayer/cowtree/result"
	"golang.org/x/exp/constraints"
)

/*
Remarks:
--------

- 'cow' is used for variables holding clones of leafs, created on insert.

- Insert allocates exactly two nodes, remove frees exactly two nodes, with the exception
  of the very first and the very last node of a tree. tree.size keeps track of this.

*/

// Tree is a copy-on-write binary search tree. The zero value is an empty tree ready to use.
type Tree[K constraints.Ordered] struct {
	root *Node[K]
	size int // number of live nodes
}

// New creates an empty tree.
func New[K constraints.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// --- API -------------------------------------------------------------------

// Insert adds key to the tree. It returns false if the search for key ends at a leaf
// already holding key; the tree remains unchanged in this case.
func (tree *Tree[K]) Insert(key K) bool {
	if tree.root == nil {
		tree.root = leaf(key)
		tree.size = 1
		return true
	}
	w := tree.search(key)
	if w.leaf.value == key {
		tracer().Debugf("insert: key %v already present", key)
		return false
	}
	w.leaf.split(key)
	tree.size += 2
	return true
}

// Remove deletes key from the tree. It returns false if the search for key does not end at
// a leaf holding key; the tree remains unchanged in this case.
//
// Remove panics with an error wrapping ErrBrokenInvariant if it detects a corrupt tree.
func (tree *Tree[K]) Remove(key K) bool {
	if tree.root == nil {
		return false
	}
	w := tree.search(key)
	if w.leaf.value != key {
		tracer().Debugf("remove: key %v not found", key)
		return false
	}
	switch {
	case w.parent == nil: // only the root left
		assertThat(w.leaf == tree.root, "expected to delete root, got %v", w.leaf)
		tree.root = nil
		tree.size--
	case w.grand == nil: // root with two leafs
		assertThat(w.parent == tree.root, "expected parent to be root, got %v", w.parent)
		tree.root = w.parent.sibling(w.leaf)
		w.parent.release()
		tree.size -= 2
	default: // splice sibling into the grand-parent's slot of parent
		sibling := w.parent.sibling(w.leaf)
		w.grand.replaceChild(w.parent, sibling)
		w.parent.release()
		tree.size -= 2
	}
	tracer().Debugf("remove: deleted %v, tree has %d nodes", key, tree.size)
	return true
}

// TryRemove is like Remove, but reports a corrupt tree by returning an error result
// wrapping ErrBrokenInvariant instead of panicking. The tree is not repaired.
func (tree *Tree[K]) TryRemove(key K) (r result.Result[bool]) {
	defer func() {
		if x := recover(); x != nil {
			err, ok := x.(error)
			if !ok || !errors.Is(err, ErrBrokenInvariant) {
				panic(x)
			}
			tracer().Errorf("remove %v: %v", key, err)
			r = result.Err[bool](err)
		}
	}()
	return result.Ok(tree.Remove(key))
}

// Contains checks if the search for key ends at a leaf holding key.
func (tree *Tree[K]) Contains(key K) bool {
	if tree.root == nil {
		return false
	}
	return tree.search(key).leaf.value == key
}

// Root returns the root node of the tree, or nil for an empty tree.
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Size returns the number of live nodes, inner nodes included.
func (tree *Tree[K]) Size() int {
	return tree.size
}

// Leaves returns the number of leafs of the tree.
func (tree *Tree[K]) Leaves() int {
	if tree.size == 0 {
		return 0
	}
	return (tree.size + 1) / 2
}

// Depth returns the number of levels of the tree, with 0 for an empty tree.
func (tree *Tree[K]) Depth() int {
	return depth(tree.root)
}

func depth[K constraints.Ordered](node *Node[K]) int {
	if node == nil {
		return 0
	}
	l, r := depth(node.left), depth(node.right)
	if l > r {
		return l + 1
	}
	return r + 1
}
