// Package errorkit provides the error utilities the module's packages share,
// most importantly const declarable errors and the merging of multiple error values.
package errorkit

import (
	"errors"
	"strings"
)

// Error is a string based error implementation,
// which makes it possible to declare errors with the const keyword.
//
//	const ErrSomething errorkit.Error = "something went wrong"
type Error string

func (err Error) Error() string { return string(err) }

// Merge combines the given error values into a single error.
// Nil values are ignored.
// Merging no valid error yields nil,
// merging a single valid error yields that error as is,
// anything more yields a MultiError holding every merged error.
func Merge(errs ...error) error {
	var merged []error
	for _, err := range errs {
		if err != nil {
			merged = append(merged, err)
		}
	}
	switch len(merged) {
	case 0:
		return nil
	case 1:
		return merged[0]
	default:
		return MultiError(merged)
	}
}

// MultiError holds multiple error values while still acting as a single error.
// errors.Is and errors.As look into every held error.
type MultiError []error

func (errs MultiError) Error() string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

func (errs MultiError) Is(target error) bool {
	for _, err := range errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (errs MultiError) As(target any) bool {
	for _, err := range errs {
		if errors.As(err, target) {
			return true
		}
	}
	return false
}
