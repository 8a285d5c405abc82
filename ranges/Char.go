package ranges

import "go.llib.dev/cursor"

// Char returns an iterator over the characters from begin until end, both bounds included.
func Char(begin, end rune) cursor.Iterator[rune] {
	return &charRange{next: begin, end: end}
}

type charRange struct {
	next, end rune

	value  rune
	closed bool
}

func (cr *charRange) Close() error {
	cr.closed = true
	return nil
}

func (cr *charRange) Err() error {
	return nil
}

func (cr *charRange) Next() bool {
	if cr.closed || cr.end < cr.next {
		return false
	}
	cr.value = cr.next
	cr.next++
	return true
}

func (cr *charRange) Value() rune {
	return cr.value
}
