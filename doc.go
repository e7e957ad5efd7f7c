// Package ordset provides in-memory ordered sets of unique keys backed by
// binary search trees.
//
// Two implementations share the OrderedSet contract:
//
//   - AVLTree keeps every node height-balanced (the heights of its two
//     subtrees differ by at most one) by rotating on the way back up from
//     every insert and delete, so operations run in O(log n).
//   - PlainTree is the same tree without rebalancing. Its height depends on
//     insertion order.
//
// Basic usage:
//
//	tree := ordset.NewAVLTree[int]()
//	for i := 1; i <= 7; i++ {
//		tree.Insert(i)
//	}
//	tree.PreOrder()  // [4 2 1 3 6 5 7]
//	tree.Contains(5) // true
//	tree.Delete(4)
//	tree.InOrder()   // [1 2 3 5 6 7]
//
// Keys without a natural order use a three-way comparison:
//
//	tree := ordset.NewAVLTreeFunc(func(a, b []byte) int {
//		return bytes.Compare(a, b)
//	}, ordset.DefaultTreeOptions())
//
// Inserting a key equal to one already present is a no-op; the key inserted
// first is kept. Neither tree is safe for concurrent use.
package ordset
