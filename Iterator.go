package cursor

import "io"

// Iterator is the pull based protocol this module is built around.
// A value of it walks an underlying sequence on demand,
// letting the consumer stay unaware whether the values come from a slice,
// a byte sequence, a data structure or a lazily computed series.
type Iterator[V any] interface {
	// Closer allows the early release of whatever the iterator holds on to.
	// Iterators over in-memory values have nothing to release and simply report nil.
	// Closing is allowed any number of times, and a closed iterator yields no further value.
	io.Closer
	// Err returns the error that interrupted the iteration, if there was any.
	// Similarly to context.Context.Err, it must be callable at any point without blocking.
	Err() error
	// Next advances the iterator to its next value.
	// It reports false once the sequence ran out or the iteration got interrupted,
	// and from that point on it keeps reporting false.
	Next() bool
	// Value returns the element the last Next call advanced to.
	// Between two Next calls it yields the same value, without side effects.
	Value() V
}
