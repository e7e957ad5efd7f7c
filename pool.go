package ordset

import (
	"github.com/cosmos/ordset/metrics"
)

// nodePool is a free list of nodes reclaimed by deletes. It belongs to a
// single tree, so nodes never migrate between trees.
type nodePool[K any] struct {
	free    []*Node[K]
	enabled bool
	metrics *metrics.TreeMetrics
}

func newNodePool[K any](enabled bool, m *metrics.TreeMetrics) *nodePool[K] {
	return &nodePool[K]{enabled: enabled, metrics: m}
}

// Get returns a one-node subtree holding key.
func (np *nodePool[K]) Get(key K) *Node[K] {
	np.metrics.PoolGet++
	var node *Node[K]
	if n := len(np.free); n > 0 {
		node = np.free[n-1]
		np.free[n-1] = nil
		np.free = np.free[:n-1]
		np.metrics.PoolReuse++
	} else {
		node = &Node[K]{}
	}
	node.key = key
	node.subtreeHeight = 1
	return node
}

// Put clears node and keeps it for reuse.
func (np *nodePool[K]) Put(node *Node[K]) {
	var zero K
	node.key = zero
	node.leftNode = nil
	node.rightNode = nil
	node.subtreeHeight = 0
	if !np.enabled {
		return
	}
	np.metrics.PoolReturn++
	np.free = append(np.free, node)
}

// Len returns the number of nodes waiting for reuse.
func (np *nodePool[K]) Len() int {
	return len(np.free)
}
