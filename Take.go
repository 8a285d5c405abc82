package cursor

// Take pulls up to n values out of the iterator and returns them as a slice.
// The iterator is left open, the remaining values can still be iterated.
// When fewer than n values remain, Take returns what was left.
func Take[T any](i Iterator[T], n int) ([]T, error) {
	var vs []T
	for len(vs) < n && i.Next() {
		vs = append(vs, i.Value())
	}
	return vs, i.Err()
}
