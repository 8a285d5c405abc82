package cursor

// Bytes returns an iterator over the bytes of the given string or byte slice, from the first byte to the last.
// The source is only read, never modified, so it can be walked any number of times with fresh iterators.
func Bytes[T string | []byte](src T) Iterator[byte] {
	return &bytesIter[T]{src: src}
}

type bytesIter[T string | []byte] struct {
	src T

	closed  bool
	cursor  int
	current byte
}

func (i *bytesIter[T]) Close() error {
	i.closed = true
	return nil
}

func (i *bytesIter[T]) Err() error {
	return nil
}

func (i *bytesIter[T]) Next() bool {
	if i.closed || len(i.src) <= i.cursor {
		return false
	}
	i.current = i.src[i.cursor]
	i.cursor++
	return true
}

func (i *bytesIter[T]) Value() byte {
	return i.current
}
