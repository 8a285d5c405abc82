package cursor_test

import (
	"errors"
	"testing"

	"go.llib.dev/cursor"

	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})

type Note struct {
	Text string
}

// sharedErrorBehaviour covers the failure reporting that First and Last handle the same way.
func sharedErrorBehaviour[T any](t *testing.T, subject func(cursor.Iterator[Note]) (T, bool, error)) {
	t.Run("error reporting", func(t *testing.T) {
		expectedErr := errors.New(rnd.StringN(5))

		t.Run("a failing Close is reported", func(t *testing.T) {
			t.Parallel()

			stub := cursor.Stub(cursor.SingleValue(Note{Text: "close"}))
			stub.StubClose = func() error { return expectedErr }

			_, _, err := subject(stub)
			assert.ErrorIs(t, err, expectedErr)
		})

		t.Run("a failing Err is reported", func(t *testing.T) {
			t.Parallel()

			stub := cursor.Stub(cursor.SingleValue(Note{Text: "err"}))
			stub.StubErr = func() error { return expectedErr }

			_, _, err := subject(stub)
			assert.ErrorIs(t, err, expectedErr)
		})

		t.Run("the iteration error hides the close error", func(t *testing.T) {
			t.Parallel()

			stub := cursor.Stub(cursor.SingleValue(Note{Text: "err"}))
			stub.StubErr = func() error { return expectedErr }
			stub.StubClose = func() error { return errors.New("covered by the iteration error") }

			_, _, err := subject(stub)
			assert.ErrorIs(t, err, expectedErr)
		})

		t.Run("an error iterator reports not found along with its error", func(t *testing.T) {
			t.Parallel()

			_, found, err := subject(cursor.Error[Note](expectedErr))
			assert.False(t, found)
			assert.ErrorIs(t, err, expectedErr)
		})
	})
}
