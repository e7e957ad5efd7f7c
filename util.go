package ordset

import (
	"fmt"
	"io"
	"strings"
)

// PrintTree writes the tree to w, one node per line, right subtree above its
// parent and left subtree below, indented by depth.
func (tree *baseTree[K]) PrintTree(w io.Writer) {
	printNode(w, tree.root, 0)
}

func printNode[K any](w io.Writer, node *Node[K], indent int) {
	indentPrefix := strings.Repeat("    ", indent)

	if node == nil {
		fmt.Fprintf(w, "%s<nil>\n", indentPrefix)
		return
	}
	if node.isLeaf() {
		fmt.Fprintf(w, "%s%v (%d)\n", indentPrefix, node.key, node.subtreeHeight)
		return
	}
	printNode(w, node.rightNode, indent+1)
	fmt.Fprintf(w, "%skey:%v height:%d balance:%+d\n", indentPrefix, node.key, node.subtreeHeight, node.calcBalance())
	printNode(w, node.leftNode, indent+1)
}
