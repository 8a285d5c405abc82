package cursor

// Offset discards the first n values, the iteration starts after them.
func Offset[V any](i Iterator[V], n int) Iterator[V] {
	return &offsetIter[V]{Iterator: i, offset: n}
}

type offsetIter[V any] struct {
	Iterator[V]
	offset  int
	skipped int
}

func (i *offsetIter[V]) Next() bool {
	for i.skipped < i.offset {
		i.skipped++
		if !i.Iterator.Next() {
			return false
		}
	}
	return i.Iterator.Next()
}
