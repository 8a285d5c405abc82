package datastruct

// LinkedList is a singly linked list, each element knows only the element that follows it.
// The zero value is an empty list ready to use.
type LinkedList[T any] struct {
	head   *node[T]
	tail   *node[T]
	length int
}

var _ List[any] = (*LinkedList[any])(nil)

type node[T any] struct {
	value T
	next  *node[T]
}

// Append adds the values to the end of the list in their given order.
func (l *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		n := &node[T]{value: v}
		if l.tail != nil {
			l.tail.next = n
		} else {
			l.head = n
		}
		l.tail = n
		l.length++
	}
}

// Prepend adds the values to the front of the list, keeping their given order.
func (l *LinkedList[T]) Prepend(vs ...T) {
	for i := len(vs) - 1; 0 <= i; i-- {
		n := &node[T]{value: vs[i], next: l.head}
		l.head = n
		if l.tail == nil {
			l.tail = n
		}
		l.length++
	}
}

// Shift detaches the first element of the list and returns its value.
// On an empty list it reports false.
func (l *LinkedList[T]) Shift() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	first := l.head
	l.head = first.next
	if l.head == nil {
		l.tail = nil
	}
	l.length--
	return first.value, true
}

// Len tells how many elements the list holds.
func (l *LinkedList[T]) Len() int {
	return l.length
}

// Slice walks the list and returns its values as a slice.
func (l *LinkedList[T]) Slice() []T {
	var vs []T
	if l == nil {
		return vs
	}
	for n := l.head; n != nil; n = n.next {
		vs = append(vs, n.value)
	}
	return vs
}
