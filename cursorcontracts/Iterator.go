// Package cursorcontracts provides the reusable behaviour contract
// that all Iterator implementations of this module are expected to pass.
package cursorcontracts

import (
	"context"
	"testing"
	"time"

	"go.llib.dev/cursor"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// Iterator is the behaviour contract of the cursor.Iterator interface.
// The function under contract must make an iterator that holds at least one value.
type Iterator[V any] func(tb testing.TB) cursor.Iterator[V]

func (c Iterator[V]) Spec(s *testcase.Spec) {
	s.Describe("behaves like an iterator", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) cursor.Iterator[V] {
			return c(t)
		})

		s.Then("the iterator yields its values", func(t *testcase.T) {
			vs, err := cursor.Collect[V](subject.Get(t))
			t.Must.NoError(err)
			t.Must.NotEmpty(vs)
		})

		s.Then("closing is allowed any number of times", func(t *testcase.T) {
			iter := subject.Get(t)
			t.Random.Repeat(3, 7, func() {
				t.Must.NoError(iter.Close())
				t.Must.NoError(iter.Err())
			})
		})

		s.Then("once exhausted, the iterator stays exhausted", func(t *testcase.T) {
			iter := subject.Get(t)
			for iter.Next() {
			}
			t.Random.Repeat(3, 7, func() {
				t.Must.False(iter.Next())
			})
			t.Must.NoError(iter.Err())
		})

		s.Then("Err answers without blocking, just like context.Context.Err", func(t *testcase.T) {
			const timeout = 250 * time.Millisecond
			iter := subject.Get(t)

			assert.Within(t, timeout, func(context.Context) {
				t.Must.NoError(iter.Err())
			})

			_, err := cursor.Collect[V](iter)
			t.Must.NoError(err)

			assert.Within(t, timeout, func(context.Context) {
				t.Must.NoError(iter.Err())
			})
		})

		s.When("the iterator got closed", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				t.Must.NoError(subject.Get(t).Close())
			})

			s.Then("it yields no more values", func(t *testcase.T) {
				vs, err := cursor.Collect[V](subject.Get(t))
				t.Must.NoError(err)
				t.Must.Empty(vs)
			})
		})
	})
}

func (c Iterator[V]) Test(t *testing.T) { c.Spec(testcase.NewSpec(t)) }

func (c Iterator[V]) Benchmark(b *testing.B) { c.Spec(testcase.NewSpec(b)) }
