package cursor

// Error returns an iterator that yields no value and reports the given error.
// It is the iterator shaped equivalent of returning an error instead of a result,
// handy when a data source fails before producing anything.
func Error[T any](err error) Iterator[T] {
	return errorIter[T]{err: err}
}

type errorIter[T any] struct {
	err error
}

func (i errorIter[T]) Close() error { return nil }

func (i errorIter[T]) Err() error { return i.err }

func (i errorIter[T]) Next() bool { return false }

func (i errorIter[T]) Value() T {
	var zero T
	return zero
}
