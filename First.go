package cursor

// First returns the first value of the iterator, then closes it.
// The found flag reports false when the iterator had no value at all.
func First[T any](i Iterator[T]) (value T, found bool, err error) {
	defer func() {
		if cErr := i.Close(); err == nil {
			err = cErr
		}
	}()
	if !i.Next() {
		return value, false, i.Err()
	}
	return i.Value(), true, i.Err()
}
