package cursor

// Filter returns an iterator that only yields the values the given predicate approves.
func Filter[T any](i Iterator[T], pred func(T) bool) Iterator[T] {
	return &filterIter[T]{src: i, pred: pred}
}

type filterIter[T any] struct {
	src  Iterator[T]
	pred func(T) bool

	current T
}

func (i *filterIter[T]) Close() error {
	return i.src.Close()
}

func (i *filterIter[T]) Err() error {
	return i.src.Err()
}

func (i *filterIter[T]) Next() bool {
	for i.src.Next() {
		v := i.src.Value()
		if i.pred(v) {
			i.current = v
			return true
		}
	}
	return false
}

func (i *filterIter[T]) Value() T {
	return i.current
}
