package cursor

// SingleValue returns an iterator that yields exactly one value.
func SingleValue[T any](v T) Iterator[T] {
	return &singleValueIter[T]{v: v}
}

type singleValueIter[T any] struct {
	v T

	yielded bool
	closed  bool
}

func (i *singleValueIter[T]) Close() error {
	i.closed = true
	return nil
}

func (i *singleValueIter[T]) Err() error {
	return nil
}

func (i *singleValueIter[T]) Next() bool {
	if i.closed || i.yielded {
		return false
	}
	i.yielded = true
	return true
}

func (i *singleValueIter[T]) Value() T {
	return i.v
}
