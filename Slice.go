package cursor

// Slice returns an iterator that yields the elements of the given slice, from the first to the last.
func Slice[T any](vs []T) Iterator[T] {
	return &sliceIter[T]{vs: vs}
}

type sliceIter[T any] struct {
	vs []T

	closed  bool
	cursor  int
	current T
}

func (i *sliceIter[T]) Close() error {
	i.closed = true
	return nil
}

func (i *sliceIter[T]) Err() error {
	return nil
}

func (i *sliceIter[T]) Next() bool {
	if i.closed || len(i.vs) <= i.cursor {
		return false
	}
	i.current = i.vs[i.cursor]
	i.cursor++
	return true
}

func (i *sliceIter[T]) Value() T {
	return i.current
}
