package cursor

// Count iterates the sequence down just to tell how many values it had, then closes the iterator.
func Count[T any](i Iterator[T]) (n int, err error) {
	defer func() {
		if cErr := i.Close(); err == nil {
			err = cErr
		}
	}()
	for i.Next() {
		n++
	}
	return n, i.Err()
}
