package cursor

// Map returns an iterator that yields the source values transformed by the given function.
// As the transformation may change the type of the values,
// a chain of Map calls can shape raw input step by step into a domain type.
// A transformation error interrupts the iteration and gets reported by Err.
func Map[To any, From any](i Iterator[From], transform func(From) (To, error)) Iterator[To] {
	return &mapIter[From, To]{src: i, transform: transform}
}

type mapIter[From any, To any] struct {
	src       Iterator[From]
	transform func(From) (To, error)

	current To
	err     error
}

func (i *mapIter[From, To]) Close() error {
	return i.src.Close()
}

func (i *mapIter[From, To]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.src.Err()
}

func (i *mapIter[From, To]) Next() bool {
	if i.err != nil {
		return false
	}
	if !i.src.Next() {
		return false
	}
	v, err := i.transform(i.src.Value())
	if err != nil {
		i.err = err
		return false
	}
	i.current = v
	return true
}

func (i *mapIter[From, To]) Value() To {
	return i.current
}
