package cursor

// Stub wraps an iterator so that its methods can be overridden one by one.
// Tests use it to inject failures into otherwise well behaving iterators.
func Stub[T any](i Iterator[T]) *StubIter[T] {
	return &StubIter[T]{
		Iterator:  i,
		StubClose: i.Close,
		StubErr:   i.Err,
		StubNext:  i.Next,
		StubValue: i.Value,
	}
}

// StubIter is an iterator test double.
// Each method call is delegated to the corresponding Stub field,
// which starts out as the wrapped iterator's own method
// and can be swapped freely during a test.
type StubIter[T any] struct {
	Iterator  Iterator[T]
	StubClose func() error
	StubErr   func() error
	StubNext  func() bool
	StubValue func() T
}

func (i *StubIter[T]) Close() error { return i.StubClose() }

func (i *StubIter[T]) Err() error { return i.StubErr() }

func (i *StubIter[T]) Next() bool { return i.StubNext() }

func (i *StubIter[T]) Value() T { return i.StubValue() }

// ResetClose restores the wrapped iterator's own Close behaviour.
func (i *StubIter[T]) ResetClose() { i.StubClose = i.Iterator.Close }

// ResetErr restores the wrapped iterator's own Err behaviour.
func (i *StubIter[T]) ResetErr() { i.StubErr = i.Iterator.Err }

// ResetNext restores the wrapped iterator's own Next behaviour.
func (i *StubIter[T]) ResetNext() { i.StubNext = i.Iterator.Next }

// ResetValue restores the wrapped iterator's own Value behaviour.
func (i *StubIter[T]) ResetValue() { i.StubValue = i.Iterator.Value }
