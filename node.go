package ordset

import (
	"fmt"
)

// Node represents a node in a tree. Each node exclusively owns its children.
type Node[K any] struct {
	key           K
	leftNode      *Node[K]
	rightNode     *Node[K]
	subtreeHeight int
}

// Key returns the key stored in the node.
func (node *Node[K]) Key() K {
	return node.key
}

// Left returns the left child, or nil.
func (node *Node[K]) Left() *Node[K] {
	return node.leftNode
}

// Right returns the right child, or nil.
func (node *Node[K]) Right() *Node[K] {
	return node.rightNode
}

// Height returns the cached height of the subtree rooted at node. A nil node
// has height 0.
func (node *Node[K]) Height() int {
	if node == nil {
		return 0
	}
	return node.subtreeHeight
}

func (node *Node[K]) String() string {
	return fmt.Sprintf("Node{key: %v, subtreeHeight: %d}", node.key, node.subtreeHeight)
}

func (node *Node[K]) isLeaf() bool {
	return node.leftNode == nil && node.rightNode == nil
}

// NOTE: mutates height
func (node *Node[K]) calcHeight() {
	node.subtreeHeight = max(node.leftNode.Height(), node.rightNode.Height()) + 1
}

// calcBalance returns height(left) - height(right); 0 for a nil node.
func (node *Node[K]) calcBalance() int {
	if node == nil {
		return 0
	}
	return node.leftNode.Height() - node.rightNode.Height()
}

// NOTE: assumes the children of node are balanced and that its own balance is
// off by at most one insert or delete.
func (tree *AVLTree[K]) balance(node *Node[K]) (newSelf *Node[K]) {
	balance := node.calcBalance()

	if balance > 1 {
		if node.leftNode.calcBalance() >= 0 {
			// Left Left Case
			return tree.rotateRight(node)
		}
		// Left Right Case
		tree.metrics.DoubleRotate++
		node.leftNode = tree.rotateLeft(node.leftNode)
		return tree.rotateRight(node)
	}
	if balance < -1 {
		if node.rightNode.calcBalance() <= 0 {
			// Right Right Case
			return tree.rotateLeft(node)
		}
		// Right Left Case
		tree.metrics.DoubleRotate++
		node.rightNode = tree.rotateRight(node.rightNode)
		return tree.rotateLeft(node)
	}
	// Nothing changed
	return node
}

// Rotate right and return the new subtree root.
//
//	    node          newNode
//	    /  \           /  \
//	newNode  c  ->    a   node
//	 /  \                 /  \
//	a    b               b    c
func (tree *AVLTree[K]) rotateRight(node *Node[K]) *Node[K] {
	if node == nil || node.leftNode == nil {
		panic("rotateRight requires a left child")
	}
	tree.metrics.RotateRight++
	tree.incrCounter("rotate_right")
	tree.logger.Debug("rotate right", "key", node.key, "height", node.subtreeHeight)

	newNode := node.leftNode
	node.leftNode = newNode.rightNode
	newNode.rightNode = node

	node.calcHeight()
	newNode.calcHeight()

	return newNode
}

// Rotate left and return the new subtree root.
//
//	  node              newNode
//	  /  \               /  \
//	 a  newNode  ->   node   c
//	     /  \         /  \
//	    b    c       a    b
func (tree *AVLTree[K]) rotateLeft(node *Node[K]) *Node[K] {
	if node == nil || node.rightNode == nil {
		panic("rotateLeft requires a right child")
	}
	tree.metrics.RotateLeft++
	tree.incrCounter("rotate_left")
	tree.logger.Debug("rotate left", "key", node.key, "height", node.subtreeHeight)

	newNode := node.rightNode
	node.rightNode = newNode.leftNode
	newNode.leftNode = node

	node.calcHeight()
	newNode.calcHeight()

	return newNode
}
