package cursor

// Limit caps how many values the iterator may yield.
func Limit[V any](i Iterator[V], n int) Iterator[V] {
	return &limitIter[V]{Iterator: i, limit: n}
}

type limitIter[V any] struct {
	Iterator[V]
	limit   int
	yielded int
}

func (i *limitIter[V]) Next() bool {
	if !i.Iterator.Next() {
		return false
	}
	if i.limit <= i.yielded {
		return false
	}
	i.yielded++
	return true
}
