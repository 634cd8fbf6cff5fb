package psort_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-primitive-utils/psort"
)

// shapes produces the input families every sort property is checked
// against: degenerate sizes, constant input, presorted and reversed
// runs, sawtooth patterns and plain random noise, including sizes well
// past the minimum-merge cutoff so the run stack and gallop paths are
// exercised.
func shapes(rng *rand.Rand) map[string][]int {
	sizes := []int{0, 1, 2, 3, 31, 32, 33, 100, 1000, 5000}
	out := make(map[string][]int)
	for _, n := range sizes {
		random := make([]int, n)
		for i := range random {
			random[i] = rng.Intn(n + 1)
		}
		out["random-"+itoa(n)] = random

		asc := make([]int, n)
		desc := make([]int, n)
		equal := make([]int, n)
		saw := make([]int, n)
		for i := 0; i < n; i++ {
			asc[i] = i
			desc[i] = n - i
			equal[i] = 7
			saw[i] = i % 5
		}
		out["ascending-"+itoa(n)] = asc
		out["descending-"+itoa(n)] = desc
		out["all-equal-"+itoa(n)] = equal
		out["sawtooth-"+itoa(n)] = saw
	}
	return out
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func TestSortAgainstOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for name, input := range shapes(rng) {
		t.Run(name, func(t *testing.T) {
			got := append([]int(nil), input...)
			want := append([]int(nil), input...)

			psort.Sort(got, psort.OrderedCompare[int])
			sort.Ints(want)

			require.Equal(t, want, got)
		})
	}
}

func TestSortConcrete(t *testing.T) {
	a := []int32{5, 3, 1, 4, 2}
	psort.Sort(a, psort.OrderedCompare[int32])
	require.Equal(t, []int32{1, 2, 3, 4, 5}, a)
}

func TestSortStability(t *testing.T) {
	type pair struct{ key, idx int }

	rng := rand.New(rand.NewSource(2))
	for _, n := range []int{10, 100, 2000} {
		a := make([]pair, n)
		for i := range a {
			a[i] = pair{key: rng.Intn(8), idx: i} // few keys, many ties
		}

		psort.Sort(a, func(x, y pair) int { return psort.OrderedCompare(x.key, y.key) })

		require.True(t, psort.IsSorted(a, func(x, y pair) int { return psort.OrderedCompare(x.key, y.key) }))
		for i := 1; i < n; i++ {
			if a[i-1].key == a[i].key {
				require.Less(t, a[i-1].idx, a[i].idx, "equal keys must keep original order")
			}
		}
	}
}

func TestSortRange(t *testing.T) {
	a := []int{9, 8, 5, 3, 1, 0}
	require.NoError(t, psort.SortRange(a, 1, 5, psort.OrderedCompare[int]))
	require.Equal(t, []int{9, 1, 3, 5, 8, 0}, a)
}

func TestSortRangeInvalid(t *testing.T) {
	a := []int{3, 2, 1}
	for _, tc := range []struct{ from, to int }{
		{-1, 2},
		{2, 1},
		{0, 4},
	} {
		err := psort.SortRange(a, tc.from, tc.to, psort.OrderedCompare[int])
		require.ErrorIs(t, err, psort.ErrInvalidRange)
		require.Equal(t, []int{3, 2, 1}, a, "slice must be untouched after a rejected range")
	}
}

func TestIsSorted(t *testing.T) {
	cmp := psort.OrderedCompare[int]
	require.True(t, psort.IsSorted(nil, cmp))
	require.True(t, psort.IsSorted([]int{1}, cmp))
	require.True(t, psort.IsSorted([]int{1, 1, 2}, cmp))
	require.False(t, psort.IsSorted([]int{2, 1}, cmp))
}

func TestReverseCompare(t *testing.T) {
	a := []int{1, 5, 3}
	psort.Sort(a, psort.ReverseCompare(psort.OrderedCompare[int]))
	require.Equal(t, []int{5, 3, 1}, a)
}

func TestSortFloats(t *testing.T) {
	a := []float64{2.5, -1, 0, 2.25}
	psort.Sort(a, psort.OrderedCompare[float64])
	require.True(t, sort.Float64sAreSorted(a))
}

func TestSortPermutationOfInput(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := make([]int, 3000)
	for i := range a {
		a[i] = rng.Intn(50)
	}
	counts := map[int]int{}
	for _, v := range a {
		counts[v]++
	}

	psort.Sort(a, psort.OrderedCompare[int])

	got := map[int]int{}
	for _, v := range a {
		got[v]++
	}
	require.Equal(t, counts, got, "output must be multiset-equal to input")

	var decreases int
	for i := 1; i < len(a); i++ {
		if a[i] < a[i-1] {
			decreases++
		}
	}
	require.Zero(t, decreases)
}

func TestSortRangeLeavesRestUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	a := make([]int, 500)
	for i := range a {
		a[i] = rng.Intn(1000)
	}
	before := append([]int(nil), a...)

	from, to := 100, 400
	require.NoError(t, psort.SortRange(a, from, to, psort.OrderedCompare[int]))

	require.Equal(t, before[:from], a[:from])
	require.Equal(t, before[to:], a[to:])
	require.True(t, sort.IntsAreSorted(a[from:to]))
}

func TestErrorsAreDistinguishable(t *testing.T) {
	err := psort.SortRange([]int{1}, 2, 3, psort.OrderedCompare[int])
	require.True(t, errors.Is(err, psort.ErrInvalidRange))
	require.False(t, errors.Is(err, psort.ErrLengthMismatch))
}
