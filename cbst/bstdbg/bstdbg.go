/*
Package bstdbg implements helpers to debug copy-on-write search trees.

Rows renders a tree as text, top down, connecting nodes with slashes:

      5
     / \
    3   5

Outline renders a tree as an indented outline, which is more suitable for large trees.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bstdbg

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/cowtree/cbst"
	"github.com/npillmayer/cowtree/maybe"
	"github.com/npillmayer/schuko/tracing"
	tp "github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
)

// tracer traces with key 'cowtree.bstdbg'.
func tracer() tracing.Trace {
	return tracing.Select("cowtree.bstdbg")
}

// EmptyTree is printed for trees without nodes.
const EmptyTree = " <empty tree>"

// Print writes the text representation of tree to w, one row per line, every line
// prefixed by a blank.
func Print[K constraints.Ordered](w io.Writer, tree *cbst.Tree[K]) error {
	rows := Rows(tree)
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, EmptyTree)
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, " %s\n", row); err != nil {
			return err
		}
	}
	return nil
}

// Rows returns the text representation of tree, top row first. An empty tree results
// in an empty slice.
func Rows[K constraints.Ordered](tree *cbst.Tree[K]) []string {
	if tree == nil || tree.Root() == nil {
		return nil
	}
	cells := cellRows(tree.Root())
	tracer().Debugf("rendering tree with %d rows of cells", len(cells))
	rows := formatRows(cells)
	trimLeft(rows)
	return rows
}

// Outline returns an indented outline of tree. Inner nodes are rendered as [v], leafs as (v).
func Outline[K constraints.Ordered](tree *cbst.Tree[K]) string {
	p := tp.New()
	if tree != nil && tree.Root() != nil {
		outline(p, tree.Root())
	}
	return p.String()
}

func outline[K constraints.Ordered](p tp.Tree, node *cbst.Node[K]) {
	if node.IsLeaf() {
		p.AddNode(node.String())
		return
	}
	branch := p.AddBranch(node.String())
	outline(branch, node.Left())
	outline(branch, node.Right())
}

// --- Layout ----------------------------------------------------------------

// cellRows lists the slots of a tree level by level. Row r has 2^r cells, cells without
// a node are Nothing.
func cellRows[K constraints.Ordered](root *cbst.Node[K]) [][]maybe.Maybe[string] {
	var rows [][]maybe.Maybe[string]
	level := []*cbst.Node[K]{root}
	for present(level) {
		row := make([]maybe.Maybe[string], len(level))
		next := make([]*cbst.Node[K], 0, 2*len(level))
		for i, node := range level {
			if node == nil {
				row[i] = maybe.Nothing[string]()
				next = append(next, nil, nil)
				continue
			}
			row[i] = maybe.Just(fmt.Sprintf("%v", node.Value()))
			next = append(next, node.Left(), node.Right())
		}
		rows = append(rows, row)
		level = next
	}
	return rows
}

func present[K constraints.Ordered](level []*cbst.Node[K]) bool {
	for _, node := range level {
		if node != nil {
			return true
		}
	}
	return false
}

// cellWidth is the width of the widest value, made odd, and at least 3.
func cellWidth(rows [][]maybe.Maybe[string]) int {
	width := 0
	strlen := func(s string) int { return len(s) }
	for _, row := range rows {
		for _, cell := range row {
			if w := maybe.Fold(strlen, 0, cell); w > width {
				width = w
			}
		}
	}
	if width%2 == 0 {
		width++
	}
	if width < 3 {
		width = 3
	}
	return width
}

// formatRows works bottom up, from the deepest row to the root, inserting rows of
// slashes between levels.
func formatRows(cells [][]maybe.Maybe[string]) []string {
	width := cellWidth(cells)
	rowCount := len(cells)
	elemCount := 1 << (rowCount - 1)
	leftPad := 0
	var lines []string
	for r := 0; r < rowCount; r++ {
		row := cells[rowCount-r-1]
		space := (1<<r)*(width+1)/2 - 1
		var sb strings.Builder
		for c := 0; c < elemCount; c++ {
			if c > 0 {
				sb.WriteString(blanks(2*leftPad + 1))
			} else {
				sb.WriteString(blanks(leftPad))
			}
			var val string
			switch m := row[c].Match(); m {
			case m.Just(&val):
				long := width - len(val)
				short := long / 2
				long -= short
				if c%2 == 1 { // right children lean right
					long, short = short, long
				}
				sb.WriteString(blanks(long))
				sb.WriteString(val)
				sb.WriteString(blanks(short))
			case m.Nothing():
				sb.WriteString(blanks(width))
			}
		}
		lines = append(lines, sb.String())
		if elemCount == 1 {
			break
		}
		lines = append(lines, slashRows(row, elemCount, space)...)
		leftPad += space + 1
		elemCount /= 2
	}
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines
}

// slashRows connects a row of cells to their parents. Rows are returned bottom up.
func slashRows(row []maybe.Maybe[string], elemCount, space int) []string {
	lines := make([]string, 0, space)
	leftSpace, rightSpace := space+1, space-1
	for sr := 0; sr < space; sr++ {
		var sb strings.Builder
		for c := 0; c < elemCount; c++ {
			if c%2 == 0 {
				if c > 0 {
					sb.WriteString(blanks(2*leftSpace + 1))
				} else {
					sb.WriteString(blanks(leftSpace))
				}
				sb.WriteByte(mark(row[c], '/'))
				sb.WriteString(blanks(rightSpace + 1))
			} else {
				sb.WriteString(blanks(rightSpace))
				sb.WriteByte(mark(row[c], '\\'))
			}
		}
		lines = append(lines, sb.String())
		leftSpace++
		rightSpace--
	}
	return lines
}

func mark(cell maybe.Maybe[string], m byte) byte {
	if cell.IsJust() {
		return m
	}
	return ' '
}

// trimLeft removes the common indentation of all rows.
func trimLeft(rows []string) {
	if len(rows) == 0 {
		return
	}
	indent := len(rows[0])
	for _, row := range rows {
		i := len(row) - len(strings.TrimLeft(row, " "))
		if i == 0 {
			return
		}
		if i < indent {
			indent = i
		}
	}
	for i := range rows {
		rows[i] = rows[i][indent:]
	}
}

func blanks(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
