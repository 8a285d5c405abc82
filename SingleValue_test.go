package cursor_test

import (
	"testing"

	"go.llib.dev/cursor"

	"go.llib.dev/testcase"
)

var _ cursor.Iterator[any] = cursor.SingleValue[any]("")

func TestSingleValue(t *testing.T) {
	s := testcase.NewSpec(t)

	value := testcase.Let(s, func(t *testcase.T) Note {
		return Note{Text: t.Random.String()}
	})
	iter := testcase.Let(s, func(t *testcase.T) cursor.Iterator[Note] {
		return cursor.SingleValue(value.Get(t))
	})

	s.Then("the single value is yielded", func(t *testcase.T) {
		vs, err := cursor.Collect(iter.Get(t))
		t.Must.NoError(err)
		t.Must.Equal([]Note{value.Get(t)}, vs)
	})

	s.Then("after the value, Next keeps reporting false", func(t *testcase.T) {
		i := iter.Get(t)
		t.Must.True(i.Next())
		t.Random.Repeat(3, 7, func() {
			t.Must.False(i.Next())
		})
	})

	s.Then("Value keeps yielding the same value between Next calls", func(t *testcase.T) {
		i := iter.Get(t)
		t.Must.True(i.Next())
		t.Must.Equal(value.Get(t), i.Value())
		t.Must.Equal(value.Get(t), i.Value())
	})

	s.When("the iterator got closed", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			t.Must.NoError(iter.Get(t).Close())
		})

		s.Then("no value is yielded", func(t *testcase.T) {
			i := iter.Get(t)
			t.Must.False(i.Next())
			t.Must.NoError(i.Err())
		})
	})
}
