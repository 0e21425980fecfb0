// Package dot renders a binary search tree as a Graphviz digraph.
package dot

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/mvkdcrypto/mvkd/bstree/bst"
)

type config struct {
	name        string
	parentEdges bool
}

// Option tweaks the rendered graph.
type Option func(*config)

// WithName sets the graph name. Defaults to "BST".
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithParentEdges adds a dashed edge from every child back to its parent.
func WithParentEdges() Option {
	return func(c *config) { c.parentEdges = true }
}

// Write renders every node reachable from root to w. Missing children are
// drawn as invisible points so Graphviz keeps left and right apart. A nil
// root renders an empty graph.
func Write(w io.Writer, root *bst.Node, opts ...Option) error {
	cfg := config{name: "BST"}
	for _, opt := range opts {
		opt(&cfg)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %q {\n", cfg.name)
	fmt.Fprintf(bw, "\tnode [shape=circle];\n")

	ids := make(map[*bst.Node]int)
	id := func(nd *bst.Node) int {
		if i, ok := ids[nd]; ok {
			return i
		}
		ids[nd] = len(ids)
		return ids[nd]
	}
	nils := 0
	child := func(from int, c *bst.Node, label string) {
		if c == nil {
			fmt.Fprintf(bw, "\tnil%d [shape=point, style=invis];\n", nils)
			fmt.Fprintf(bw, "\tn%d -> nil%d [style=invis];\n", from, nils)
			nils++
			return
		}
		fmt.Fprintf(bw, "\tn%d -> n%d [label=%q];\n", from, id(c), label)
	}

	root.Walk(func(nd *bst.Node) bool {
		n := id(nd)
		fmt.Fprintf(bw, "\tn%d [label=\"%v\"];\n", n, nd.Key)
		if nd.IsLeaf() {
			return true
		}
		child(n, nd.Left, "L")
		child(n, nd.Right, "R")
		return true
	})
	if cfg.parentEdges {
		root.Walk(func(nd *bst.Node) bool {
			if p := nd.Parent(); p != nil {
				fmt.Fprintf(bw, "\tn%d -> n%d [style=dashed, color=gray, constraint=false];\n", ids[nd], ids[p])
			}
			return true
		})
	}
	fmt.Fprintf(bw, "}\n")
	return errors.Wrap(bw.Flush(), "write dot")
}

// WriteFile renders root into the file at path, replacing it.
func WriteFile(path string, root *bst.Node, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := Write(f, root, opts...); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
