package bst

import (
	"github.com/davecgh/go-spew/spew"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/mvkdcrypto/mvkd/bstree/logger"
)

// Tree holds the root of a binary search tree along with its size. The zero
// value is an empty tree that logs nowhere. A Tree is not safe for
// concurrent use.
type Tree struct {
	Root *Node

	size  int
	log   logger.ContextInterface
	cache *lru.Cache[Interface, *Node]
}

// Option configures a Tree built by New.
type Option func(*Tree) error

// WithLogger sets where the tree reports advisory events such as rejected
// duplicate keys.
func WithLogger(log logger.ContextInterface) Option {
	return func(tr *Tree) error {
		tr.log = log
		return nil
	}
}

// WithSearchCache keeps up to size recently found nodes keyed by their key,
// so repeated lookups skip the descent. Keys must be of a comparable type.
func WithSearchCache(size int) Option {
	return func(tr *Tree) error {
		c, err := lru.New[Interface, *Node](size)
		if err != nil {
			return errors.Wrap(err, "search cache")
		}
		tr.cache = c
		return nil
	}
}

// New returns an empty tree.
func New(opts ...Option) (*Tree, error) {
	tr := &Tree{}
	for _, opt := range opts {
		if err := opt(tr); err != nil {
			return nil, err
		}
	}
	return tr, nil
}

func (tr *Tree) logger() logger.ContextInterface {
	if tr.log == nil {
		tr.log = logger.NewBackground(logger.NewNull())
	}
	return tr.log
}

// Len returns the number of keys in the tree.
func (tr *Tree) Len() int {
	return tr.size
}

// Empty reports whether the tree holds no keys.
func (tr *Tree) Empty() bool {
	return tr.Root == nil
}

// Min returns the minimum key Node in the tree.
func (tr *Tree) Min() *Node {
	return tr.Root.Min()
}

// Max returns the maximum key Node in the tree.
func (tr *Tree) Max() *Node {
	return tr.Root.Max()
}

// Search returns the Node holding key, or nil.
func (tr *Tree) Search(key Interface) *Node {
	if key == nil {
		return nil
	}
	if tr.cache != nil {
		// Root may have been rewritten with the free functions, so a hit
		// only counts while the node still hangs from it.
		if nd, ok := tr.cache.Get(key); ok {
			if nd.Key != nil && equal(nd.Key, key) && nd.Root() == tr.Root {
				return nd
			}
			tr.cache.Remove(key)
		}
	}
	nd := tr.Root.Search(key)
	if nd != nil && tr.cache != nil {
		tr.cache.Add(key, nd)
	}
	return nd
}

// Insert adds key to the tree. It returns the node holding key and whether
// it was newly created. A key that is already present is not inserted again.
func (tr *Tree) Insert(key Interface) (*Node, bool) {
	root, nd, inserted := Insert(tr.Root, key)
	if !inserted {
		if nd != nil {
			tr.logger().Warning("bst: key %v already exists, not inserting", key)
		}
		return nd, false
	}
	tr.Root = root
	tr.size++
	tr.logger().Debug("bst: inserted %v (size %d)", key, tr.size)
	return nd, true
}

// Delete removes nd, which must be a member of this tree.
func (tr *Tree) Delete(nd *Node) {
	key := nd.Key
	tr.Root = Delete(tr.Root, nd)
	tr.size--
	if tr.cache != nil {
		tr.cache.Remove(key)
	}
	if tr.Root == nil {
		tr.logger().Debug("bst: deleted %v, tree is now empty", key)
		return
	}
	tr.logger().Debug("bst: deleted %v (size %d)", key, tr.size)
}

// DeleteKey removes the node holding key and reports whether there was one.
func (tr *Tree) DeleteKey(key Interface) bool {
	nd := tr.Search(key)
	if nd == nil {
		return false
	}
	tr.Delete(nd)
	return true
}

// Successor returns the node following the one holding key, or nil if key
// is absent or the largest in the tree.
func (tr *Tree) Successor(key Interface) *Node {
	return tr.Search(key).Successor()
}

// Predecessor returns the node preceding the one holding key, or nil if key
// is absent or the smallest in the tree.
func (tr *Tree) Predecessor(key Interface) *Node {
	return tr.Search(key).Predecessor()
}

// TraverseInOrder returns the nodes of the tree in increasing key order.
func (tr *Tree) TraverseInOrder() []*Node {
	ret := make([]*Node, 0, tr.size)
	return tr.Root.TraverseInOrder(ret)
}

// Keys returns the keys of the tree in increasing order.
func (tr *Tree) Keys() []Interface {
	keys := make([]Interface, 0, tr.size)
	for _, nd := range tr.TraverseInOrder() {
		keys = append(keys, nd.Key)
	}
	return keys
}

// Check verifies the tree invariants and that the recorded size matches.
func (tr *Tree) Check() error {
	if err := Check(tr.Root); err != nil {
		return err
	}
	if n := len(tr.TraverseInOrder()); n != tr.size {
		return errors.Errorf("size is %d but tree holds %d nodes", tr.size, n)
	}
	return nil
}

// Dump returns the keys in order, formatted for debugging, and logs them at
// debug level.
func (tr *Tree) Dump() string {
	s := spew.Sdump(tr.Keys())
	tr.logger().Debug("bst: %d keys\n%s", tr.size, s)
	return s
}
