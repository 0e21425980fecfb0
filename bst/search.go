package bst

// Min returns the node with the minimum key in the subtree rooted at nd.
func (nd *Node) Min() *Node {
	if nd == nil {
		return nil
	}
	for nd.Left != nil {
		nd = nd.Left
	}
	return nd
}

// Max returns the node with the maximum key in the subtree rooted at nd.
func (nd *Node) Max() *Node {
	if nd == nil {
		return nil
	}
	for nd.Right != nil {
		nd = nd.Right
	}
	return nd
}

// Search does binary-search on a given key in the subtree rooted at nd and
// returns the Node with the key, or nil.
func (nd *Node) Search(key Interface) *Node {
	if key == nil {
		return nil
	}
	// just updating the pointer value (address)
	for nd != nil {
		if nd.Key == nil {
			break
		}
		switch {
		case nd.Key.Less(key):
			nd = nd.Right
		case key.Less(nd.Key):
			nd = nd.Left
		default:
			return nd
		}
	}
	return nil
}

// searchParent descends like Search and returns the last node visited
// together with the match, if any. When match is nil, parent is the node a
// new key would hang from.
func (nd *Node) searchParent(key Interface) (parent, match *Node) {
	for nd != nil {
		switch {
		case key.Less(nd.Key):
			parent = nd // copy the pointer(address)
			nd = nd.Left
		case nd.Key.Less(key):
			parent = nd
			nd = nd.Right
		default:
			return parent, nd
		}
	}
	return parent, nil
}

// Root follows parent links up from nd and returns the topmost node.
func (nd *Node) Root() *Node {
	if nd == nil {
		return nil
	}
	for nd.parent != nil {
		nd = nd.parent
	}
	return nd
}

// Successor returns the node with the smallest key greater than nd's key, or
// nil if nd holds the maximum.
func (nd *Node) Successor() *Node {
	if nd == nil {
		return nil
	}
	if nd.Right != nil {
		return nd.Right.Min()
	}
	x, p := nd, nd.parent
	for p != nil && x == p.Right {
		x, p = p, p.parent
	}
	return p
}

// Predecessor returns the node with the largest key less than nd's key, or
// nil if nd holds the minimum.
func (nd *Node) Predecessor() *Node {
	if nd == nil {
		return nil
	}
	if nd.Left != nil {
		return nd.Left.Max()
	}
	x, p := nd, nd.parent
	for p != nil && x == p.Left {
		x, p = p, p.parent
	}
	return p
}

// TraverseInOrder appends the nodes of the subtree rooted at nd to ret in
// increasing key order.
func (nd *Node) TraverseInOrder(ret []*Node) []*Node {
	if nd == nil {
		return ret
	}
	ret = nd.Left.TraverseInOrder(ret)
	ret = append(ret, nd)
	ret = nd.Right.TraverseInOrder(ret)
	return ret
}

// Walk calls fn for every node reachable from nd, parents before children and
// left before right. It stops early when fn returns false. fn must not mutate
// the tree.
func (nd *Node) Walk(fn func(*Node) bool) {
	if nd == nil {
		return
	}
	stack := []*Node{nd}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur) {
			return
		}
		if cur.Right != nil {
			stack = append(stack, cur.Right)
		}
		if cur.Left != nil {
			stack = append(stack, cur.Left)
		}
	}
}
