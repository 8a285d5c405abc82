package cursor

// Last iterates the sequence down and returns the value the iterator held last, then closes the iterator.
// The found flag reports false when the iterator had no value at all.
func Last[T any](i Iterator[T]) (value T, found bool, err error) {
	defer func() {
		if cErr := i.Close(); err == nil {
			err = cErr
		}
	}()
	for i.Next() {
		value, found = i.Value(), true
	}
	if err := i.Err(); err != nil {
		return value, false, err
	}
	return value, found, nil
}
