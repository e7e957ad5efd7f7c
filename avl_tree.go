package ordset

import (
	"cmp"
	"time"

	"golang.org/x/exp/constraints"
)

// AVLTree is a height-balanced binary search tree of unique keys. For every
// node the heights of the two subtrees differ by at most one, so every
// operation runs in O(log n).
//
// An AVLTree is not safe for concurrent use.
type AVLTree[K any] struct {
	baseTree[K]
}

var _ OrderedSet[int] = (*AVLTree[int])(nil)

// NewAVLTree returns an empty AVL tree ordered by the natural order of K.
func NewAVLTree[K constraints.Ordered]() *AVLTree[K] {
	return NewAVLTreeFunc(cmp.Compare[K], DefaultTreeOptions())
}

// NewAVLTreeWithOptions returns an empty AVL tree ordered by the natural order
// of K.
func NewAVLTreeWithOptions[K constraints.Ordered](opts TreeOptions) *AVLTree[K] {
	return NewAVLTreeFunc(cmp.Compare[K], opts)
}

// NewAVLTreeFunc returns an empty AVL tree ordered by compare, which must
// return a negative number when a < b, zero when a == b and a positive number
// when a > b.
func NewAVLTreeFunc[K any](compare func(a, b K) int, opts TreeOptions) *AVLTree[K] {
	return &AVLTree[K]{baseTree: newBaseTree(compare, opts)}
}

// Insert adds key to the tree. If an equal key is already present the tree
// is left untouched and the existing key is kept.
func (tree *AVLTree[K]) Insert(key K) {
	if tree.metricsProxy != nil {
		defer tree.observe(time.Now(), "insert")
	}
	var added bool
	tree.root, added = tree.recursiveInsert(tree.root, key)
	if !added {
		tree.noop("tree_insert")
	}
}

func (tree *AVLTree[K]) recursiveInsert(node *Node[K], key K) (newSelf *Node[K], added bool) {
	if node == nil {
		return tree.newNode(key), true
	}

	switch c := tree.compare(key, node.key); {
	case c < 0:
		node.leftNode, added = tree.recursiveInsert(node.leftNode, key)
	case c > 0:
		node.rightNode, added = tree.recursiveInsert(node.rightNode, key)
	default:
		return node, false
	}

	if !added {
		return node, false
	}
	node.calcHeight()
	return tree.balance(node), true
}

// Delete removes the key comparing equal to key. Deleting an absent key is a
// no-op.
func (tree *AVLTree[K]) Delete(key K) {
	if tree.metricsProxy != nil {
		defer tree.observe(time.Now(), "delete")
	}
	var removed bool
	tree.root, removed = tree.recursiveRemove(tree.root, key)
	if !removed {
		tree.noop("tree_delete")
	}
}

// removes the node holding key and balances every node on the path back to
// the root. It returns the subtree replacing node and whether key was found.
func (tree *AVLTree[K]) recursiveRemove(node *Node[K], key K) (newSelf *Node[K], removed bool) {
	if node == nil {
		return nil, false
	}

	switch c := tree.compare(key, node.key); {
	case c < 0:
		node.leftNode, removed = tree.recursiveRemove(node.leftNode, key)
	case c > 0:
		node.rightNode, removed = tree.recursiveRemove(node.rightNode, key)
	default:
		switch {
		case node.leftNode == nil:
			right := node.rightNode
			tree.returnNode(node)
			return right, true
		case node.rightNode == nil:
			left := node.leftNode
			tree.returnNode(node)
			return left, true
		}
		// two children: take the in-order successor's key
		node.key, node.rightNode = tree.recursiveRemoveMin(node.rightNode)
		removed = true
	}

	if !removed {
		return node, false
	}
	node.calcHeight()
	return tree.balance(node), true
}

// DeleteMin removes and returns the smallest key.
func (tree *AVLTree[K]) DeleteMin() (key K, ok bool) {
	if tree.root == nil {
		return key, false
	}
	if tree.metricsProxy != nil {
		defer tree.observe(time.Now(), "delete_min")
	}
	key, tree.root = tree.recursiveRemoveMin(tree.root)
	return key, true
}

// DeleteMax removes and returns the largest key.
func (tree *AVLTree[K]) DeleteMax() (key K, ok bool) {
	if tree.root == nil {
		return key, false
	}
	if tree.metricsProxy != nil {
		defer tree.observe(time.Now(), "delete_max")
	}
	key, tree.root = tree.recursiveRemoveMax(tree.root)
	return key, true
}

func (tree *AVLTree[K]) recursiveRemoveMin(node *Node[K]) (key K, newSelf *Node[K]) {
	if node.leftNode == nil {
		key, newSelf = node.key, node.rightNode
		tree.returnNode(node)
		return key, newSelf
	}
	key, node.leftNode = tree.recursiveRemoveMin(node.leftNode)
	node.calcHeight()
	return key, tree.balance(node)
}

func (tree *AVLTree[K]) recursiveRemoveMax(node *Node[K]) (key K, newSelf *Node[K]) {
	if node.rightNode == nil {
		key, newSelf = node.key, node.leftNode
		tree.returnNode(node)
		return key, newSelf
	}
	key, node.rightNode = tree.recursiveRemoveMax(node.rightNode)
	node.calcHeight()
	return key, tree.balance(node)
}

// Validate checks the ordering, height and balance invariants of every node.
func (tree *AVLTree[K]) Validate() error {
	return tree.validate(true)
}
