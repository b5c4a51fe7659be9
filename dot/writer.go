package dot

import (
	"fmt"
	"io"
	"sort"

	"github.com/dechterlab/aomdd/pseudotree"
)

// WriteTree renders pt as Graphviz DOT source to w, one node per
// variable and one edge per parent/child pseudo-tree relation, DFS'd
// from the root so sibling order is deterministic.
func WriteTree(w io.Writer, pt pseudotree.PseudoTree) error {
	if _, err := fmt.Fprintln(w, "digraph pseudotree {"); err != nil {
		return err
	}

	var walk func(v int) error
	walk = func(v int) error {
		if _, err := fmt.Fprintf(w, "  %q;\n", nodeLabel(v)); err != nil {
			return err
		}
		children := append([]int(nil), pt.Children(v)...)
		sort.Ints(children)
		for _, c := range children {
			if _, err := fmt.Fprintf(w, "  %q -> %q;\n", nodeLabel(v), nodeLabel(c)); err != nil {
				return err
			}
		}
		for _, c := range children {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(pt.Root()); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

func nodeLabel(v int) string {
	return fmt.Sprintf("var%d", v)
}
