package bstdbg

import (
	"strings"
	"testing"

	"github.com/npillmayer/cowtree/cbst"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestRowsEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cowtree.bstdbg")
	defer teardown()
	//
	tree := cbst.New[int]()
	if rows := Rows(tree); len(rows) != 0 {
		t.Errorf("expected no rows for empty tree, have %q", rows)
	}
	var sb strings.Builder
	require.NoError(t, Print(&sb, tree))
	require.Equal(t, " <empty tree>\n", sb.String())
}

func TestRowsSingleLeaf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cowtree.bstdbg")
	defer teardown()
	//
	tree := build(5)
	require.Equal(t, []string{"5 "}, Rows(tree))
}

func TestRowsThreeNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cowtree.bstdbg")
	defer teardown()
	//
	tree := build(5, 3)
	rows := Rows(tree)
	require.Equal(t, []string{
		"  5 ",
		" / \\",
		"3   5 ",
	}, rows)
	var sb strings.Builder
	require.NoError(t, Print(&sb, tree))
	require.Equal(t, "   5 \n  / \\\n 3   5 \n", sb.String())
}

func TestRowsWideValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cowtree.bstdbg")
	defer teardown()
	//
	tree := build(10, -7)
	require.Equal(t, []string{
		"  10",
		" / \\",
		"-7 10 ",
	}, Rows(tree))
}

func TestRowsMissingSlots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cowtree.bstdbg")
	defer teardown()
	//
	tree := build(5, 3, 8)
	rows := Rows(tree)
	t.Logf("tree =\n%s", strings.Join(rows, "\n"))
	require.Equal(t, []string{
		"    5 ",
		"   / \\",
		"  /   \\",
		" /     \\",
		"3       5 ",
		"       / \\",
		"      5   8 ",
	}, rows)
}

func TestOutline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cowtree.bstdbg")
	defer teardown()
	//
	out := Outline(build(5, 3, 8))
	t.Logf("outline =\n%s", out)
	for _, s := range []string{"[5]", "(3)", "(8)"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected outline to contain %s, doesn't", s)
		}
	}
	if strings.Contains(Outline(cbst.New[int]()), "(") {
		t.Error("expected outline of empty tree to contain no nodes")
	}
}

func TestCellWidth(t *testing.T) {
	c := []struct {
		keys  []int
		width int
	}{
		{[]int{1}, 3},
		{[]int{10, 20}, 3},
		{[]int{100}, 3},
		{[]int{1000, 1}, 5},
		{[]int{-1000}, 5},
	}
	for i, x := range c {
		cells := cellRows(build(x.keys...).Root())
		if w := cellWidth(cells); w != x.width {
			t.Errorf("%d: expected cell width for %v to be %d, is %d", i, x.keys, x.width, w)
		}
	}
}

// ---------------------------------------------------------------------------

func build(keys ...int) *cbst.Tree[int] {
	tree := cbst.New[int]()
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree
}
