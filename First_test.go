package cursor_test

import (
	"testing"

	"go.llib.dev/cursor"

	"go.llib.dev/testcase/assert"
)

func TestFirst_smoke(t *testing.T) {
	t.Parallel()

	v, found, err := cursor.First(cursor.Slice([]int{42, 4, 2}))
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 42, v)
}

func TestFirst_closesTheIterator(t *testing.T) {
	t.Parallel()

	stub := cursor.Stub(cursor.Slice([]Note{{Text: "hello"}}))

	var closed bool
	stub.StubClose = func() error {
		closed = true
		return nil
	}

	_, _, err := cursor.First[Note](stub)
	assert.NoError(t, err)
	assert.True(t, closed)
}

func TestFirst_emptyIterator(t *testing.T) {
	t.Parallel()

	_, found, err := cursor.First(cursor.Empty[Note]())
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestFirst_errors(t *testing.T) {
	sharedErrorBehaviour(t, cursor.First[Note])
}
