package ranges

import "go.llib.dev/cursor"

// Int returns an iterator over the whole numbers from begin until end, both bounds included.
func Int(begin, end int) cursor.Iterator[int] {
	return &intRange{next: begin, end: end}
}

type intRange struct {
	next, end int

	value  int
	closed bool
}

func (ir *intRange) Close() error {
	ir.closed = true
	return nil
}

func (ir *intRange) Err() error {
	return nil
}

func (ir *intRange) Next() bool {
	if ir.closed || ir.end < ir.next {
		return false
	}
	ir.value = ir.next
	ir.next++
	return true
}

func (ir *intRange) Value() int {
	return ir.value
}
