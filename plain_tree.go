package ordset

import (
	"cmp"
	"time"

	"golang.org/x/exp/constraints"
)

// PlainTree is an unbalanced binary search tree of unique keys. It shares the
// AVLTree contract but never rotates, so its height depends on insertion
// order and degrades to a chain for sorted input.
type PlainTree[K any] struct {
	baseTree[K]
}

var _ OrderedSet[int] = (*PlainTree[int])(nil)

// NewPlainTree returns an empty unbalanced tree ordered by the natural order
// of K.
func NewPlainTree[K constraints.Ordered]() *PlainTree[K] {
	return NewPlainTreeFunc(cmp.Compare[K], DefaultTreeOptions())
}

// NewPlainTreeWithOptions returns an empty unbalanced tree ordered by the
// natural order of K.
func NewPlainTreeWithOptions[K constraints.Ordered](opts TreeOptions) *PlainTree[K] {
	return NewPlainTreeFunc(cmp.Compare[K], opts)
}

// NewPlainTreeFunc returns an empty unbalanced tree ordered by compare.
func NewPlainTreeFunc[K any](compare func(a, b K) int, opts TreeOptions) *PlainTree[K] {
	return &PlainTree[K]{baseTree: newBaseTree(compare, opts)}
}

func (tree *PlainTree[K]) Insert(key K) {
	if tree.metricsProxy != nil {
		defer tree.observe(time.Now(), "insert")
	}
	var added bool
	tree.root, added = tree.recursiveInsert(tree.root, key)
	if !added {
		tree.noop("tree_insert")
	}
}

func (tree *PlainTree[K]) recursiveInsert(node *Node[K], key K) (newSelf *Node[K], added bool) {
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

	if added {
		node.calcHeight()
	}
	return node, added
}

func (tree *PlainTree[K]) Delete(key K) {
	if tree.metricsProxy != nil {
		defer tree.observe(time.Now(), "delete")
	}
	var removed bool
	tree.root, removed = tree.recursiveRemove(tree.root, key)
	if !removed {
		tree.noop("tree_delete")
	}
}

func (tree *PlainTree[K]) recursiveRemove(node *Node[K], key K) (newSelf *Node[K], removed bool) {
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
		node.key, node.rightNode = tree.recursiveRemoveMin(node.rightNode)
		removed = true
	}

	if removed {
		node.calcHeight()
	}
	return node, removed
}

func (tree *PlainTree[K]) DeleteMin() (key K, ok bool) {
	if tree.root == nil {
		return key, false
	}
	if tree.metricsProxy != nil {
		defer tree.observe(time.Now(), "delete_min")
	}
	key, tree.root = tree.recursiveRemoveMin(tree.root)
	return key, true
}

func (tree *PlainTree[K]) DeleteMax() (key K, ok bool) {
	if tree.root == nil {
		return key, false
	}
	if tree.metricsProxy != nil {
		defer tree.observe(time.Now(), "delete_max")
	}
	key, tree.root = tree.recursiveRemoveMax(tree.root)
	return key, true
}

func (tree *PlainTree[K]) recursiveRemoveMin(node *Node[K]) (key K, newSelf *Node[K]) {
	if node.leftNode == nil {
		key, newSelf = node.key, node.rightNode
		tree.returnNode(node)
		return key, newSelf
	}
	key, node.leftNode = tree.recursiveRemoveMin(node.leftNode)
	node.calcHeight()
	return key, node
}

func (tree *PlainTree[K]) recursiveRemoveMax(node *Node[K]) (key K, newSelf *Node[K]) {
	if node.rightNode == nil {
		key, newSelf = node.key, node.leftNode
		tree.returnNode(node)
		return key, newSelf
	}
	key, node.rightNode = tree.recursiveRemoveMax(node.rightNode)
	node.calcHeight()
	return key, node
}

// Validate checks the ordering and height invariants of every node. Balance
// is not checked.
func (tree *PlainTree[K]) Validate() error {
	return tree.validate(false)
}
