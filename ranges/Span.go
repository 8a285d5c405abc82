package ranges

import (
	"unsafe"

	"go.llib.dev/cursor"
	"go.llib.dev/cursor/errorkit"
	"go.llib.dev/cursor/internal/constraints"
)

// ErrInvalidStepSize is returned when a span would be made with a zero step size.
const ErrInvalidStepSize errorkit.Error = "ranges: invalid step size"

// Span returns an iterator that yields the values of an arithmetic sequence,
// beginning at begin and advancing by step after each yielded value.
// The end value is an exclusive bound in the direction of travel,
// a positive step counts upwards while below end,
// a negative step counts downwards while above end.
// A zero step size is invalid regardless of the other arguments.
// When advancing would leave the numeric range of T,
// the sequence ends there instead of wrapping around.
func Span[T constraints.Integer](begin, end, step T) (cursor.Iterator[T], error) {
	if step == 0 {
		return nil, ErrInvalidStepSize
	}
	return &spanRange[T]{begin: begin, end: end, step: step, next: begin}, nil
}

type spanRange[T constraints.Integer] struct {
	begin, end, step T

	next   T
	value  T
	done   bool
	closed bool
}

func (sr *spanRange[T]) Close() error {
	sr.closed = true
	return nil
}

func (sr *spanRange[T]) Err() error {
	return nil
}

func (sr *spanRange[T]) Next() bool {
	if sr.closed || sr.done {
		return false
	}
	if sr.step < 0 {
		if sr.next <= sr.end {
			return false
		}
	} else {
		if sr.end <= sr.next {
			return false
		}
	}
	sr.value = sr.next
	if canSumOverflow(sr.next, sr.step) {
		sr.done = true
	} else {
		sr.next += sr.step
	}
	return true
}

func (sr *spanRange[T]) Value() T {
	return sr.value
}

func canSumOverflow[T constraints.Integer](a, b T) bool {
	if b == 0 {
		return false
	}
	if 0 < b {
		return maxOf[T]()-b < a
	}
	return a < minOf[T]()-b
}

func maxOf[T constraints.Integer]() T {
	var zero T
	if isUnsigned(zero) {
		return ^zero
	}
	typeSizeInBits := 8 * unsafe.Sizeof(zero)
	return T(1)<<(typeSizeInBits-1) - 1
}

func minOf[T constraints.Integer]() T {
	var zero T
	if isUnsigned(zero) {
		return zero
	}
	typeSizeInBits := 8 * unsafe.Sizeof(zero)
	minusOne := zero - 1
	return minusOne << (typeSizeInBits - 1)
}

func isUnsigned[T constraints.Integer](zero T) bool {
	return 0 < zero-1
}
