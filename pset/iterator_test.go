package pset_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-primitive-utils/pset"
)

func drain[T pset.Element](t *testing.T, it *pset.Iterator[T]) []T {
	t.Helper()
	var out []T
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestIteratorYieldsAllValues(t *testing.T) {
	s := pset.Of[int32](1, 2, 3, 0, -7)
	got := drain(t, s.Iterator())
	require.ElementsMatch(t, []int32{1, 2, 3, 0, -7}, got)
}

func TestIteratorExhausted(t *testing.T) {
	it := pset.Of[int](1).Iterator()
	_, err := it.Next()
	require.NoError(t, err)
	_, err = it.Next()
	require.ErrorIs(t, err, pset.ErrIteratorExhausted)
}

func TestIteratorFailFast(t *testing.T) {
	s := pset.Of[int](1, 2, 3)
	it := s.Iterator()

	_, err := it.Next()
	require.NoError(t, err)

	s.Add(99) // structural modification behind the iterator's back

	_, err = it.Next()
	require.ErrorIs(t, err, pset.ErrConcurrentModification)
	require.ErrorIs(t, it.Remove(), pset.ErrConcurrentModification)
}

func TestIteratorRemove(t *testing.T) {
	s := pset.Of[int16](1, 2, 3, 4)
	it := s.Iterator()

	v, err := it.Next()
	require.NoError(t, err)
	require.NoError(t, it.Remove())
	require.False(t, s.Contains(v))
	require.Equal(t, 3, s.Len())

	// The iterator survives its own removal and still yields the rest.
	rest := drain(t, it)
	require.Len(t, rest, 3)
	require.NotContains(t, rest, v)
}

func TestIteratorRemoveWithoutNext(t *testing.T) {
	it := pset.Of[int](1).Iterator()
	require.ErrorIs(t, it.Remove(), pset.ErrIteratorState)

	_, err := it.Next()
	require.NoError(t, err)
	require.NoError(t, it.Remove())
	require.ErrorIs(t, it.Remove(), pset.ErrIteratorState, "Remove must not apply twice")
}

// TestIteratorRemoveEveryOther fuzzes the delicate interaction between
// iterator removal and backward-shift compaction: every value must be
// yielded exactly once even when shifts drag entries across the cursor.
func TestIteratorRemoveEveryOther(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for round := 0; round < 50; round++ {
		n := 1 + rng.Intn(300)
		s := pset.New[int32]()
		want := map[int32]bool{}
		for i := 0; i < n; i++ {
			v := rng.Int31n(1000)
			s.Add(v)
			want[v] = true
		}

		seen := map[int32]int{}
		it := s.Iterator()
		for it.HasNext() {
			v, err := it.Next()
			require.NoError(t, err)
			seen[v]++
			if v%2 == 0 {
				require.NoError(t, it.Remove())
				delete(want, v)
			}
		}

		for v, count := range seen {
			require.Equal(t, 1, count, "value %d yielded %d times", v, count)
		}
		require.Equal(t, len(want), s.Len())
		for v := range want {
			require.True(t, s.Contains(v), "odd value %d must survive", v)
		}
		checkNoEvens(t, s)
	}
}

func checkNoEvens(t *testing.T, s *pset.Set[int32]) {
	t.Helper()
	s.Each(func(v int32) {
		require.NotZero(t, v%2, "even value %d should have been removed", v)
	})
}

func TestForEachRemaining(t *testing.T) {
	s := pset.Of[int](1, 2, 3)
	it := s.Iterator()

	var got []int
	require.NoError(t, it.ForEachRemaining(func(v int) { got = append(got, v) }))
	require.ElementsMatch(t, []int{1, 2, 3}, got)
	require.False(t, it.HasNext())
}

func TestForEachRemainingStopsOnModification(t *testing.T) {
	s := pset.Of[int](1, 2, 3, 4, 5)
	it := s.Iterator()

	calls := 0
	err := it.ForEachRemaining(func(v int) {
		calls++
		if calls == 2 {
			s.Add(1000) // mutate mid-traversal
		}
	})
	require.ErrorIs(t, err, pset.ErrConcurrentModification)
	require.Equal(t, 2, calls, "traversal must stop at the first unsafe step")
}
