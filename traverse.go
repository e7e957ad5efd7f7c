package ordset

// InOrder returns a snapshot of the keys in ascending order.
func (tree *baseTree[K]) InOrder() []K {
	keys := make([]K, 0, tree.size)
	tree.root.traverse(true, func(node *Node[K]) bool {
		keys = append(keys, node.key)
		return false
	})
	return keys
}

// PreOrder returns a snapshot of the keys visiting each node before its left
// and right subtrees.
func (tree *baseTree[K]) PreOrder() []K {
	keys := make([]K, 0, tree.size)
	tree.root.traversePre(func(node *Node[K]) bool {
		keys = append(keys, node.key)
		return false
	})
	return keys
}

// Walk calls fn for each key in ascending (or descending) order until fn
// returns true. The tree must not be modified from fn.
func (tree *baseTree[K]) Walk(ascending bool, fn func(key K) (stop bool)) {
	tree.root.traverse(ascending, func(node *Node[K]) bool {
		return fn(node.key)
	})
}

// traverse visits the subtree in key order and reports whether cb stopped
// the traversal.
func (node *Node[K]) traverse(ascending bool, cb func(*Node[K]) bool) bool {
	if node == nil {
		return false
	}
	first, second := node.leftNode, node.rightNode
	if !ascending {
		first, second = second, first
	}
	if first.traverse(ascending, cb) {
		return true
	}
	if cb(node) {
		return true
	}
	return second.traverse(ascending, cb)
}

func (node *Node[K]) traversePre(cb func(*Node[K]) bool) bool {
	if node == nil {
		return false
	}
	if cb(node) {
		return true
	}
	if node.leftNode.traversePre(cb) {
		return true
	}
	return node.rightNode.traversePre(cb)
}

// traverseDepth visits every node together with its depth; the root has
// depth 0.
func (node *Node[K]) traverseDepth(depth int, cb func(node *Node[K], depth int)) {
	if node == nil {
		return
	}
	node.leftNode.traverseDepth(depth+1, cb)
	cb(node, depth)
	node.rightNode.traverseDepth(depth+1, cb)
}
