package ordset

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/ordset/testutil"
)

// Convenience for a new node with cached height.
func N(key int, left, right *Node[int]) *Node[int] {
	n := &Node[int]{key: key, leftNode: left, rightNode: right}
	n.calcHeight()
	return n
}

// Convenience for a leaf.
func L(key int) *Node[int] {
	return N(key, nil, nil)
}

// Convenience for simple printing of keys & tree structure.
func P(n *Node[int]) string {
	if n == nil {
		return "-"
	}
	if n.isLeaf() {
		return fmt.Sprintf("%d", n.key)
	}
	return fmt.Sprintf("(%s %d %s)", P(n.leftNode), n.key, P(n.rightNode))
}

type implementation struct {
	name     string
	balanced bool
	new      func() OrderedSet[int]
}

var implementations = []implementation{
	{"avl", true, func() OrderedSet[int] { return NewAVLTree[int]() }},
	{"plain", false, func() OrderedSet[int] { return NewPlainTree[int]() }},
}

// forEachImplementation runs fn as a subtest against every OrderedSet.
func forEachImplementation(t *testing.T, fn func(t *testing.T, impl implementation)) {
	for _, impl := range implementations {
		impl := impl
		t.Run(impl.name, func(t *testing.T) {
			fn(t, impl)
		})
	}
}

func build(impl implementation, keys ...int) OrderedSet[int] {
	set := impl.new()
	for _, k := range keys {
		set.Insert(k)
	}
	return set
}

func buildAVL(keys ...int) *AVLTree[int] {
	tree := NewAVLTree[int]()
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree
}

func buildPlain(keys ...int) *PlainTree[int] {
	tree := NewPlainTree[int]()
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree
}

// uniqueSorted returns the distinct keys in ascending order.
func uniqueSorted(keys []int) []int {
	seen := make(map[int]struct{}, len(keys))
	var out []int
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Ints(out)
	if out == nil {
		out = []int{}
	}
	return out
}

// requireConsistent checks the invariants of set and that it holds exactly
// the keys of ref.
func requireConsistent(t *testing.T, set OrderedSet[int], ref map[int]struct{}) {
	t.Helper()
	require.NoError(t, set.Validate())
	require.Equal(t, len(ref), set.Size())

	keys := make([]int, 0, len(ref))
	for k := range ref {
		keys = append(keys, k)
	}
	require.Equal(t, uniqueSorted(keys), set.InOrder())
}

func buildOptions(count int, order testutil.Order) *testutil.TreeBuildOptions {
	opts := testutil.NewTreeBuildOptions().WithOrder(order)
	opts.Count = count
	return opts
}
