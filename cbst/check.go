package cbst

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Check validates the structure of a tree:
//
//     - every node has either zero or two children
//     - leafs below the left child of an inner node v are ≤ v, leafs below the right child are ≥ v
//     - the number of reachable nodes matches the tree's bookkeeping
//
// Check returns an error wrapping ErrBrokenInvariant for the first violation found.
func (tree *Tree[K]) Check() error {
	if tree.root == nil {
		if tree.size != 0 {
			return brokenf("empty tree claims to have %d nodes", tree.size)
		}
		return nil
	}
	var count int
	if _, _, err := checkNode(tree.root, &count); err != nil {
		return err
	}
	if count != tree.size {
		return brokenf("tree has %d reachable nodes, expected %d", count, tree.size)
	}
	return nil
}

// checkNode returns the range of leaf values below node.
func checkNode[K constraints.Ordered](node *Node[K], count *int) (lo, hi K, err error) {
	*count++
	if node.IsLeaf() {
		return node.value, node.value, nil
	}
	if node.left == nil || node.right == nil {
		return lo, hi, brokenf("inner node %v has a single child", node)
	}
	var llo, lhi, rlo, rhi K
	if llo, lhi, err = checkNode(node.left, count); err != nil {
		return
	}
	if rlo, rhi, err = checkNode(node.right, count); err != nil {
		return
	}
	if lhi > node.value {
		return lo, hi, brokenf("left subtree of %v holds leaf %v", node, lhi)
	}
	if rlo < node.value {
		return lo, hi, brokenf("right subtree of %v holds leaf %v", node, rlo)
	}
	return llo, rhi, nil
}

func brokenf(msg string, args ...interface{}) error {
	return fmt.Errorf("cbst: %w: %s", ErrBrokenInvariant, fmt.Sprintf(msg, args...))
}
