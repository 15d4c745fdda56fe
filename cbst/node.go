package cbst

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Node is a slot in a tree. Leafs carry the keys stored in the tree, inner nodes carry a
// routing key only (the key of the leaf they have been split from).
//
// Each node is owned by exactly one parent slot, or by the tree as its root.
// Clients get read-only access to nodes.
type Node[K constraints.Ordered] struct {
	value K
	left  *Node[K]
	right *Node[K]
}

func leaf[K constraints.Ordered](key K) *Node[K] {
	return &Node[K]{value: key}
}

// Value returns the key of a node. For inner nodes this is a routing key, which may or
// may not be contained in the tree.
func (node *Node[K]) Value() K {
	return node.value
}

// Left returns the left child of a node, or nil for leafs.
func (node *Node[K]) Left() *Node[K] {
	if node == nil {
		return nil
	}
	return node.left
}

// Right returns the right child of a node, or nil for leafs.
func (node *Node[K]) Right() *Node[K] {
	if node == nil {
		return nil
	}
	return node.right
}

// IsLeaf is true for nodes without children.
func (node *Node[K]) IsLeaf() bool {
	return node.left == nil && node.right == nil
}

func (node *Node[K]) String() string {
	if node == nil {
		return "⊥"
	}
	if node.IsLeaf() {
		return fmt.Sprintf("(%v)", node.value)
	}
	return fmt.Sprintf("[%v]", node.value)
}

// split turns a leaf into an inner node with a clone of the leaf and a new leaf for key
// as children. The node keeps its value, which from now on serves for routing only.
func (node *Node[K]) split(key K) {
	assertThat(node.IsLeaf(), "attempt to split inner node %v", node)
	cow := leaf(node.value)
	if key > node.value {
		node.left, node.right = cow, leaf(key)
	} else {
		node.left, node.right = leaf(key), cow
	}
}

// sibling returns the other child of node, given one of its children.
func (node *Node[K]) sibling(child *Node[K]) *Node[K] {
	if node.left == child {
		return node.right
	}
	assertThat(node.right == child, "node %v is not a child of %v", child, node)
	return node.left
}

// replaceChild puts ch into the slot of node currently holding old.
func (node *Node[K]) replaceChild(old, ch *Node[K]) {
	if node.left == old {
		node.left = ch
		return
	}
	assertThat(node.right == old, "node %v is not a child of %v", old, node)
	node.right = ch
}

// release unlinks a node which has been dropped from the tree.
func (node *Node[K]) release() {
	node.left, node.right = nil, nil
}
