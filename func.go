package cursor

// Func makes an iterator out of a single function.
// The function reports the next value of the sequence,
// whether there was a next value at all,
// and an error in case producing the value failed.
// When the backing resource needs cleanup, register it with the OnClose callback option.
func Func[T any](next func() (v T, ok bool, err error), opts ...CallbackOption) Iterator[T] {
	var i Iterator[T] = &funcIter[T]{next: next}
	return WithCallback(i, opts...)
}

type funcIter[T any] struct {
	next func() (v T, ok bool, err error)

	current T
	err     error
}

func (i *funcIter[T]) Close() error {
	return nil
}

func (i *funcIter[T]) Err() error {
	return i.err
}

func (i *funcIter[T]) Next() bool {
	if i.err != nil {
		return false
	}
	v, ok, err := i.next()
	if err != nil {
		i.err = err
		return false
	}
	if !ok {
		return false
	}
	i.current = v
	return true
}

func (i *funcIter[T]) Value() T {
	return i.current
}
