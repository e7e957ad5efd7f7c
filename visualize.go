package ordset

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"

	"github.com/cosmos/ordset/metrics"
)

// DotGraph renders the tree shape as a Graphviz graph. Nodes are labelled
// with their key and cached height; absent children are drawn as points so
// left and right stay distinguishable.
func (tree *baseTree[K]) DotGraph() *dot.Graph {
	graph := dot.NewGraph(dot.Directed)

	var i int
	var traverse func(node *Node[K]) dot.Node
	traverse = func(node *Node[K]) dot.Node {
		i++
		if node == nil {
			return graph.Node(fmt.Sprintf("nil%d", i)).Attr("shape", "point")
		}
		n := graph.Node(fmt.Sprintf("n%d", i)).Label(fmt.Sprintf("%v - %d", node.key, node.subtreeHeight))
		if node.isLeaf() {
			return n
		}
		n.Edge(traverse(node.leftNode), "l")
		n.Edge(traverse(node.rightNode), "r")
		return n
	}

	if tree.root != nil {
		traverse(tree.root)
	}
	return graph
}

// DepthReport writes a histogram of node depths to w.
func (tree *baseTree[K]) DepthReport(w io.Writer, bins int) error {
	depths := make([]int, 0, tree.size)
	tree.root.traverseDepth(0, func(_ *Node[K], depth int) {
		depths = append(depths, depth)
	})
	return metrics.DepthReport(w, bins, depths)
}
