package cursor

import "go.llib.dev/cursor/errorkit"

// Merge chains the given iterators into a single one,
// yielding every value of an iterator before moving on to the one after it.
// Err and Close report the merged outcome of all the members.
func Merge[T any](iters ...Iterator[T]) Iterator[T] {
	return &mergeIter[T]{iters: iters}
}

type mergeIter[T any] struct {
	iters []Iterator[T]
	index int
}

func (i *mergeIter[T]) Close() error {
	var errs []error
	for _, src := range i.iters {
		errs = append(errs, src.Close())
	}
	return errorkit.Merge(errs...)
}

func (i *mergeIter[T]) Err() error {
	var errs []error
	for _, src := range i.iters {
		errs = append(errs, src.Err())
	}
	return errorkit.Merge(errs...)
}

func (i *mergeIter[T]) Next() bool {
	for i.index < len(i.iters) {
		if i.iters[i.index].Next() {
			return true
		}
		i.index++
	}
	return false
}

func (i *mergeIter[T]) Value() T {
	if len(i.iters) <= i.index {
		var zero T
		return zero
	}
	return i.iters[i.index].Value()
}
