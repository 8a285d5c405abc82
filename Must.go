package cursor

// Must turns the usual (value, error) return pair into a plain value by panicking on the error.
// It keeps test and example code terse, production code should handle the error instead.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
