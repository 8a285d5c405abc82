package cursor

import "go.llib.dev/cursor/datastruct"

// Drain returns an iterator that consumes the given list from the front, one element per Next call.
// Drain takes ownership of the list, the caller must not keep using the list handle afterwards.
// Every yielded element is already detached from the list,
// so a fully iterated list is left empty.
func Drain[T any](list *datastruct.LinkedList[T]) Iterator[T] {
	return &drainIter[T]{list: list}
}

type drainIter[T any] struct {
	list *datastruct.LinkedList[T]

	closed  bool
	current T
}

func (i *drainIter[T]) Close() error {
	i.closed = true
	return nil
}

func (i *drainIter[T]) Err() error {
	return nil
}

func (i *drainIter[T]) Next() bool {
	if i.closed || i.list == nil {
		return false
	}
	v, ok := i.list.Shift()
	if !ok {
		return false
	}
	i.current = v
	return true
}

func (i *drainIter[T]) Value() T {
	return i.current
}
