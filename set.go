package ordset

// OrderedSet is the contract shared by AVLTree and PlainTree: a container of
// unique keys kept in ascending order.
type OrderedSet[K any] interface {
	// Insert adds key unless an equal key is already present.
	Insert(key K)
	// Delete removes the key equal to key, if any.
	Delete(key K)
	// Contains reports whether a key equal to key is present.
	Contains(key K) bool

	// InOrder returns the keys in ascending order.
	InOrder() []K
	// PreOrder returns the keys in pre-order (node, left, right), which
	// identifies the exact shape of the tree.
	PreOrder() []K
	// Walk visits keys in ascending or descending order until fn returns true.
	Walk(ascending bool, fn func(key K) (stop bool))

	DeleteMin() (K, bool)
	DeleteMax() (K, bool)
	Min() (K, bool)
	Max() (K, bool)

	Size() int
	Height() int
	IsEmpty() bool

	// Validate returns an error describing the first broken invariant.
	Validate() error
}
