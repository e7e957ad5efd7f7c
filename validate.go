package ordset

import (
	"github.com/pkg/errors"
)

var (
	// ErrOutOfOrder is returned when a key sits on the wrong side of an ancestor.
	ErrOutOfOrder = errors.New("key out of order")
	// ErrDuplicateKey is returned when two nodes hold equal keys.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrHeightMismatch is returned when a cached height disagrees with the subtree.
	ErrHeightMismatch = errors.New("cached height mismatch")
	// ErrUnbalanced is returned when subtree heights differ by more than one.
	ErrUnbalanced = errors.New("node out of balance")
	// ErrSizeMismatch is returned when the key count disagrees with the node count.
	ErrSizeMismatch = errors.New("size mismatch")
)

// bound is an exclusive limit inherited from an ancestor.
type bound[K any] struct {
	key K
	set bool
}

func (tree *baseTree[K]) validate(checkBalance bool) error {
	count, _, err := tree.validateNode(tree.root, bound[K]{}, bound[K]{}, checkBalance)
	if err != nil {
		return err
	}
	if count != tree.size {
		return errors.Wrapf(ErrSizeMismatch, "size %d, counted %d nodes", tree.size, count)
	}
	return nil
}

// validateNode returns the number of nodes and the actual height of the
// subtree rooted at node.
func (tree *baseTree[K]) validateNode(node *Node[K], lower, upper bound[K], checkBalance bool) (count, height int, err error) {
	if node == nil {
		return 0, 0, nil
	}
	if lower.set {
		if c := tree.compare(node.key, lower.key); c == 0 {
			return 0, 0, errors.Wrapf(ErrDuplicateKey, "key %v", node.key)
		} else if c < 0 {
			return 0, 0, errors.Wrapf(ErrOutOfOrder, "key %v is not greater than ancestor %v", node.key, lower.key)
		}
	}
	if upper.set {
		if c := tree.compare(node.key, upper.key); c == 0 {
			return 0, 0, errors.Wrapf(ErrDuplicateKey, "key %v", node.key)
		} else if c > 0 {
			return 0, 0, errors.Wrapf(ErrOutOfOrder, "key %v is not less than ancestor %v", node.key, upper.key)
		}
	}

	here := bound[K]{key: node.key, set: true}
	leftCount, leftHeight, err := tree.validateNode(node.leftNode, lower, here, checkBalance)
	if err != nil {
		return 0, 0, err
	}
	rightCount, rightHeight, err := tree.validateNode(node.rightNode, here, upper, checkBalance)
	if err != nil {
		return 0, 0, err
	}

	height = max(leftHeight, rightHeight) + 1
	if node.subtreeHeight != height {
		return 0, 0, errors.Wrapf(ErrHeightMismatch, "key %v caches height %d, actual %d",
			node.key, node.subtreeHeight, height)
	}
	if checkBalance {
		if balance := leftHeight - rightHeight; balance > 1 || balance < -1 {
			return 0, 0, errors.Wrapf(ErrUnbalanced, "key %v has balance %d", node.key, balance)
		}
	}
	return leftCount + rightCount + 1, height, nil
}
