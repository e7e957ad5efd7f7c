package ordset

import (
	"time"

	"github.com/cosmos/ordset/metrics"
)

// baseTree holds the state and read-only operations shared by AVLTree and
// PlainTree.
type baseTree[K any] struct {
	root    *Node[K]
	size    int
	compare func(a, b K) int

	logger       Logger
	metrics      *metrics.TreeMetrics
	metricsProxy metrics.Proxy
	pool         *nodePool[K]
}

func newBaseTree[K any](compare func(a, b K) int, opts TreeOptions) baseTree[K] {
	if compare == nil {
		panic("ordset: nil compare function")
	}
	if opts.Logger == nil {
		opts.Logger = NewNopLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = &metrics.TreeMetrics{}
	}
	return baseTree[K]{
		compare:      compare,
		logger:       opts.Logger,
		metrics:      opts.Metrics,
		metricsProxy: opts.MetricsProxy,
		pool:         newNodePool[K](opts.RecycleNodes, opts.Metrics),
	}
}

// Contains reports whether a key comparing equal to key is present.
func (tree *baseTree[K]) Contains(key K) bool {
	node := tree.root
	for node != nil {
		switch c := tree.compare(key, node.key); {
		case c < 0:
			node = node.leftNode
		case c > 0:
			node = node.rightNode
		default:
			return true
		}
	}
	return false
}

// Size returns the number of keys in the tree.
func (tree *baseTree[K]) Size() int {
	return tree.size
}

// Height returns the height of the tree; 0 when empty.
func (tree *baseTree[K]) Height() int {
	return tree.root.Height()
}

// IsEmpty returns whether or not the tree has any keys.
func (tree *baseTree[K]) IsEmpty() bool {
	return tree.root == nil
}

// Root returns the root node, or nil for an empty tree. Nodes are rebuilt in
// place by mutations, so the returned node is only meaningful until the next
// Insert or Delete.
func (tree *baseTree[K]) Root() *Node[K] {
	return tree.root
}

// Min returns the smallest key.
func (tree *baseTree[K]) Min() (key K, ok bool) {
	node := tree.root
	if node == nil {
		return key, false
	}
	for node.leftNode != nil {
		node = node.leftNode
	}
	return node.key, true
}

// Max returns the largest key.
func (tree *baseTree[K]) Max() (key K, ok bool) {
	node := tree.root
	if node == nil {
		return key, false
	}
	for node.rightNode != nil {
		node = node.rightNode
	}
	return node.key, true
}

// Metrics returns the counters accumulated by the tree.
func (tree *baseTree[K]) Metrics() *metrics.TreeMetrics {
	return tree.metrics
}

func (tree *baseTree[K]) newNode(key K) *Node[K] {
	tree.size++
	tree.metrics.TreeInsert++
	tree.incrCounter("tree_insert")
	return tree.pool.Get(key)
}

func (tree *baseTree[K]) returnNode(node *Node[K]) {
	tree.size--
	tree.metrics.TreeDelete++
	tree.incrCounter("tree_delete")
	tree.pool.Put(node)
}

func (tree *baseTree[K]) noop(op string) {
	tree.metrics.TreeNoop++
	tree.incrCounter(op + "_noop")
}

func (tree *baseTree[K]) incrCounter(op string) {
	if tree.metricsProxy != nil {
		tree.metricsProxy.IncrCounter(1, metricsNamespace, op)
	}
}

// observe reports the tree shape and the duration of op. It is deferred by
// every public mutation.
func (tree *baseTree[K]) observe(start time.Time, op string) {
	if tree.metricsProxy == nil {
		return
	}
	tree.metricsProxy.SetGauge(float32(tree.size), metricsNamespace, "tree_size")
	tree.metricsProxy.SetGauge(float32(tree.Height()), metricsNamespace, "tree_height")
	tree.metricsProxy.MeasureSince(start, metricsNamespace, op)
}
