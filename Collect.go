package cursor

// Collect pulls every remaining value out of the iterator into a slice, then closes the iterator.
// The returned slice is never nil, an exhausted iterator collects into an empty slice.
func Collect[T any](i Iterator[T]) (vs []T, err error) {
	defer func() {
		if cErr := i.Close(); err == nil {
			err = cErr
		}
	}()
	vs = make([]T, 0)
	for i.Next() {
		vs = append(vs, i.Value())
	}
	return vs, i.Err()
}
