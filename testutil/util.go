package testutil

import (
	"fmt"
	"math/rand"
)

// Order selects how TreeBuildOptions lays out its keys.
type Order int

const (
	Ascending Order = iota
	Descending
	// Shuffled is a random permutation of 0..Count-1.
	Shuffled
	// Random draws Count keys from [0, KeySpace) and may repeat keys.
	Random
	// ZigZag alternates between the low and high ends: 0, n-1, 1, n-2, ...
	ZigZag
)

func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	case Shuffled:
		return "shuffled"
	case Random:
		return "random"
	case ZigZag:
		return "zigzag"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Orders lists every Order, for table driven tests.
var Orders = []Order{Ascending, Descending, Shuffled, Random, ZigZag}

type TreeBuildOptions struct {
	Count    int
	Order    Order
	Seed     int64
	KeySpace int
}

func NewTreeBuildOptions() *TreeBuildOptions {
	return &TreeBuildOptions{
		Count: 1_000,
		Order: Shuffled,
		Seed:  1,
	}
}

func (opts *TreeBuildOptions) With10_000() *TreeBuildOptions {
	opts.Count = 10_000
	return opts
}

func (opts *TreeBuildOptions) WithOrder(order Order) *TreeBuildOptions {
	opts.Order = order
	return opts
}

// Keys generates the key sequence described by opts. The same options always
// produce the same keys.
func (opts *TreeBuildOptions) Keys() []int {
	n := opts.Count
	keys := make([]int, n)
	r := rand.New(rand.NewSource(opts.Seed))

	switch opts.Order {
	case Ascending:
		for i := range keys {
			keys[i] = i
		}
	case Descending:
		for i := range keys {
			keys[i] = n - 1 - i
		}
	case Shuffled:
		copy(keys, r.Perm(n))
	case Random:
		space := opts.KeySpace
		if space <= 0 {
			space = max(n/2, 1)
		}
		for i := range keys {
			keys[i] = r.Intn(space)
		}
	case ZigZag:
		lo, hi := 0, n-1
		for i := range keys {
			if i%2 == 0 {
				keys[i] = lo
				lo++
			} else {
				keys[i] = hi
				hi--
			}
		}
	default:
		panic(fmt.Sprintf("unknown order %v", opts.Order))
	}
	return keys
}

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandStr returns a random alphanumeric string.
func RandStr(r *rand.Rand, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
