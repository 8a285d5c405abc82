// Package datastruct provides the data structures of this module,
// together with the small interfaces that describe their capabilities.
package datastruct

// List is what the iterator tooling expects from a list shaped data structure.
type List[T any] interface {
	Appendable[T]
	Slicer[T]
	Sizer
}

// Sizer reports how many elements a data structure currently holds.
type Sizer interface {
	Len() int
}

// Slicer copies the contents of a data structure into a slice.
type Slicer[T any] interface {
	Slice() []T
}

// Appendable lets values be added to the end of a data structure.
type Appendable[T any] interface {
	Append(vs ...T)
}
