package ordset

import (
	"github.com/cosmos/ordset/metrics"
)

const metricsNamespace = "ordset"

// TreeOptions configures a tree.
type TreeOptions struct {
	Logger Logger

	// Metrics accumulates operation counters. A fresh TreeMetrics is used when nil.
	Metrics *metrics.TreeMetrics

	// MetricsProxy, when set, receives counters, gauges and timings for every
	// public mutation.
	MetricsProxy metrics.Proxy

	// RecycleNodes returns deleted nodes to a per-tree pool for reuse by later
	// inserts.
	RecycleNodes bool
}

// DefaultTreeOptions returns the default options for a tree.
func DefaultTreeOptions() TreeOptions {
	return TreeOptions{
		Logger:       NewNopLogger(),
		Metrics:      &metrics.TreeMetrics{},
		RecycleNodes: true,
	}
}
