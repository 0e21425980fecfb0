package bst

import (
	"github.com/pkg/errors"
)

// Check verifies the tree rooted at root: keys strictly increase in order,
// every child points back at its owner, and no node is reachable twice. It
// returns the first violation found.
func Check(root *Node) error {
	if root == nil {
		return nil
	}
	if root.parent != nil {
		return errors.Errorf("root %v has parent %v", root.Key, root.parent.Key)
	}

	type frame struct {
		nd     *Node
		lo, hi Interface
	}
	seen := make(map[*Node]bool)
	stack := []frame{{nd: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := f.nd

		if seen[nd] {
			return errors.Errorf("node %v reachable more than once", nd.Key)
		}
		seen[nd] = true

		if nd.Key == nil {
			return errors.New("placeholder node inside tree")
		}
		if f.lo != nil && !f.lo.Less(nd.Key) {
			if equal(f.lo, nd.Key) {
				return errors.Errorf("duplicate key %v", nd.Key)
			}
			return errors.Errorf("key %v not greater than ancestor %v", nd.Key, f.lo)
		}
		if f.hi != nil && !nd.Key.Less(f.hi) {
			if equal(f.hi, nd.Key) {
				return errors.Errorf("duplicate key %v", nd.Key)
			}
			return errors.Errorf("key %v not less than ancestor %v", nd.Key, f.hi)
		}

		for _, c := range []*Node{nd.Left, nd.Right} {
			if c == nil {
				continue
			}
			if c.parent != nd {
				return errors.Errorf("child %v of %v has wrong parent", c.Key, nd.Key)
			}
		}
		if nd.Left != nil {
			stack = append(stack, frame{nd: nd.Left, lo: f.lo, hi: nd.Key})
		}
		if nd.Right != nil {
			stack = append(stack, frame{nd: nd.Right, lo: nd.Key, hi: f.hi})
		}
	}
	return nil
}
