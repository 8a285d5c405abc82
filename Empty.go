package cursor

// Empty returns an iterator without any value in it.
// It acts as a null object for code paths that have nothing to iterate
// but still must hand back a valid iterator.
func Empty[T any]() Iterator[T] {
	return emptyIter[T]{}
}

type emptyIter[T any] struct{}

func (emptyIter[T]) Close() error { return nil }

func (emptyIter[T]) Err() error { return nil }

func (emptyIter[T]) Next() bool { return false }

func (emptyIter[T]) Value() T {
	var zero T
	return zero
}
