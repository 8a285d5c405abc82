package cursor_test

import (
	"log"
	"testing"

	"go.llib.dev/cursor"
	"go.llib.dev/cursor/cursorcontracts"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func ExampleFilter() {
	var iter cursor.Iterator[int]
	iter = cursor.Slice([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	iter = cursor.Filter[int](iter, func(n int) bool { return 2 < n })

	defer iter.Close()
	for iter.Next() {
		n := iter.Value()
		_ = n
	}
	if err := iter.Err(); err != nil {
		log.Fatal(err)
	}
}

func TestFilter(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		values = let.Var(s, func(t *testcase.T) []int {
			return []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
		})
		src = let.Var(s, func(t *testcase.T) cursor.Iterator[int] {
			return cursor.Slice(values.Get(t))
		})
		pred = let.Var(s, func(t *testcase.T) func(int) bool {
			return func(int) bool { return true }
		})
	)
	act := let.Act(func(t *testcase.T) cursor.Iterator[int] {
		return cursor.Filter(src.Get(t), pred.Get(t))
	})

	s.Then("an all approving predicate yields the source values untouched", func(t *testcase.T) {
		vs, err := cursor.Collect(act(t))
		t.Must.NoError(err)
		t.Must.Equal(values.Get(t), vs)
	})

	s.When("the predicate rejects part of the value stream", func(s *testcase.Spec) {
		pred.Let(s, func(t *testcase.T) func(int) bool {
			return func(n int) bool { return n%2 == 0 }
		})

		s.Then("only the approved values are yielded, in their original order", func(t *testcase.T) {
			vs, err := cursor.Collect(act(t))
			t.Must.NoError(err)
			t.Must.Equal([]int{2, 4, 6, 8}, vs)
		})
	})

	s.When("the predicate rejects everything", func(s *testcase.Spec) {
		pred.Let(s, func(t *testcase.T) func(int) bool {
			return func(int) bool { return false }
		})

		s.Then("the iteration is empty", func(t *testcase.T) {
			vs, err := cursor.Collect(act(t))
			t.Must.NoError(err)
			t.Must.Empty(vs)
		})
	})

	s.When("the source iterator reports an error", func(s *testcase.Spec) {
		expectedErr := let.Error(s)

		src.Let(s, func(t *testcase.T) cursor.Iterator[int] {
			stub := cursor.Stub(cursor.Slice(values.Get(t)))
			stub.StubErr = func() error { return expectedErr.Get(t) }
			return stub
		})

		s.Then("Err proxies the source iterator's error", func(t *testcase.T) {
			t.Must.ErrorIs(expectedErr.Get(t), act(t).Err())
		})
	})

	s.When("closing the source iterator fails", func(s *testcase.Spec) {
		expectedErr := let.Error(s)

		src.Let(s, func(t *testcase.T) cursor.Iterator[int] {
			stub := cursor.Stub(cursor.Slice(values.Get(t)))
			stub.StubClose = func() error { return expectedErr.Get(t) }
			return stub
		})

		s.Then("Close proxies the source iterator's close error", func(t *testcase.T) {
			iter := act(t)
			t.Must.NoError(iter.Err())
			t.Must.ErrorIs(expectedErr.Get(t), iter.Close())
		})
	})
}

func TestFilter_implementsIterator(t *testing.T) {
	cursorcontracts.Iterator[int](func(tb testing.TB) cursor.Iterator[int] {
		t := testcase.ToT(&tb)
		return cursor.Filter(
			cursor.Slice(random.Slice(t.Random.IntBetween(3, 7), t.Random.Int)),
			func(int) bool { return true },
		)
	}).Test(t)
}

func BenchmarkFilter(b *testing.B) {
	pred := func(n int) bool { return 500 < n }

	var values []int
	for i := 0; i < 1024; i++ {
		values = append(values, rnd.IntN(1000))
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		iter := cursor.Filter(cursor.Slice(values), pred)
		for iter.Next() {
		}
		_ = iter.Close()
	}
}
