package bst

// Interface is implemented by tree keys. Two keys are equal when neither is
// Less than the other.
type Interface interface {
	Less(than Interface) bool
}

// Int is an integer key.
type Int int

func (i Int) Less(than Interface) bool {
	return i < than.(Int)
}

// Node is a single key in the tree. A Node owns its Left and Right subtrees;
// parent points back up and is only ever rewritten by Insert, Transplant and
// Delete.
//
// A Node with a nil Key is a placeholder and never a member of a tree.
type Node struct {
	Key   Interface
	Left  *Node
	Right *Node

	parent *Node
}

// NewNode returns a detached leaf holding key.
func NewNode(key Interface) *Node {
	return &Node{Key: key}
}

// Parent returns the node nd hangs from, or nil if nd is a root or detached.
func (nd *Node) Parent() *Node {
	if nd == nil {
		return nil
	}
	return nd.parent
}

// IsLeaf reports whether nd has no children.
func (nd *Node) IsLeaf() bool {
	return nd != nil && nd.Left == nil && nd.Right == nil
}

func equal(a, b Interface) bool {
	return !a.Less(b) && !b.Less(a)
}

// detach drops every link out of nd, so a handle kept after Delete cannot
// reach back into the tree.
func (nd *Node) detach() {
	nd.parent = nil
	nd.Left = nil
	nd.Right = nil
}
