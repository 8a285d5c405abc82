package cursor

import "fmt"

// Errorf formats like fmt.Errorf and wraps the resulting error into an iterator.
func Errorf[T any](format string, a ...any) Iterator[T] {
	return Error[T](fmt.Errorf(format, a...))
}
