package bst

// Insert adds key to the tree rooted at root and returns the root of the
// resulting tree, the node holding key, and whether a new node was created.
// The root only changes when root is nil. Inserting a key that is already
// present leaves the tree untouched and returns the existing node.
func Insert(root *Node, key Interface) (*Node, *Node, bool) {
	if key == nil {
		return root, nil, false
	}
	y, match := root.searchParent(key)
	if match != nil {
		return root, match, false
	}

	z := NewNode(key)
	z.parent = y
	switch {
	case y == nil:
		return z, z, true
	case key.Less(y.Key):
		y.Left = z
	default:
		y.Right = z
	}
	return root, z, true
}

// Transplant puts v where u hangs in the tree rooted at root and returns the
// root of the resulting tree. v may be nil, in which case u's slot is
// emptied; if u was the root the returned tree is empty (nil). u's own links
// are left alone.
func Transplant(root, u, v *Node) *Node {
	p := u.parent
	switch {
	case p == nil:
		root = v
	case u == p.Left:
		p.Left = v
	default:
		p.Right = v
	}
	if v != nil {
		v.parent = p
	}
	return root
}

// Delete unlinks z from the tree rooted at root and returns the root of the
// resulting tree, which is nil once the last node is gone. z must be a
// member of that tree. When z has two children its in-order successor is
// moved into z's position; no keys are copied between nodes, so handles to
// other nodes stay valid. z is left fully detached.
func Delete(root, z *Node) *Node {
	switch {
	case z.Left == nil:
		root = Transplant(root, z, z.Right)
	case z.Right == nil:
		root = Transplant(root, z, z.Left)
	default:
		y := z.Right.Min()
		if y.parent != z {
			root = Transplant(root, y, y.Right)
			y.Right = z.Right
			y.Right.parent = y
		}
		root = Transplant(root, z, y)
		y.Left = z.Left
		y.Left.parent = y
	}
	z.detach()
	return root
}
