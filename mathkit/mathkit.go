// Package mathkit contains numeric helpers built on top of the iterator tooling.
package mathkit

import (
	"go.llib.dev/cursor"
	"go.llib.dev/cursor/ranges"
)

// Factorial returns the running product of the positive integers below n.
// The upper bound is exclusive, so Factorial(10) is the product of the numbers from 1 until 9.
func Factorial(n uint32) (uint32, error) {
	seq, err := ranges.Span[uint32](1, n, 1)
	if err != nil {
		return 0, err
	}
	return cursor.Reduce(seq, uint32(1), func(product uint32, v uint32) uint32 {
		return product * v
	})
}
