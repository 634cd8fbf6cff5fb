package psort_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-primitive-utils/psort"
)

func TestPermutation(t *testing.T) {
	a := []int{30, 10, 20}
	perm := psort.Permutation(a, psort.OrderedCompare[int])
	require.Equal(t, []int{1, 2, 0}, perm)
	require.Equal(t, []int{30, 10, 20}, a, "Permutation must not modify its input")
}

func TestPermutationStable(t *testing.T) {
	a := []int{2, 1, 2, 1}
	perm := psort.Permutation(a, psort.OrderedCompare[int])
	require.Equal(t, []int{1, 3, 0, 2}, perm, "ties must keep ascending indexes")
}

func TestApply(t *testing.T) {
	a := []string{"c", "a", "b"}
	perm := []int{1, 2, 0}
	require.NoError(t, psort.Apply(a, perm))
	require.Equal(t, []string{"a", "b", "c"}, a)
	require.Equal(t, []int{1, 2, 0}, perm, "Apply must leave the permutation reusable")
}

func TestApplyLengthMismatch(t *testing.T) {
	err := psort.Apply([]int{1, 2}, []int{0})
	require.ErrorIs(t, err, psort.ErrLengthMismatch)
}

func TestSortPaired(t *testing.T) {
	keys := []int64{30, 10, 20}
	tags := []string{"c", "a", "b"}

	require.NoError(t, psort.SortPaired(keys, tags, psort.OrderedCompare[int64]))

	require.Equal(t, []int64{10, 20, 30}, keys)
	require.Equal(t, []string{"a", "b", "c"}, tags)
}

// TestSortPairedCoLocation tags every key with its companion value up
// front, then verifies that after the paired sort (a) the keys equal
// what a plain sort would produce and (b) every key still sits next to
// its original companion.
func TestSortPairedCoLocation(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, n := range []int{0, 1, 2, 100, 4000} {
		keys := make([]int, n)
		companions := make([]int, n)
		tagged := make(map[int][]int) // key → multiset of companions
		for i := range keys {
			keys[i] = rng.Intn(n/2 + 1) // force duplicate keys
			companions[i] = i
			tagged[keys[i]] = append(tagged[keys[i]], i)
		}
		plain := append([]int{}, keys...) // non-nil so the n=0 comparison holds
		psort.Sort(plain, psort.OrderedCompare[int])

		require.NoError(t, psort.SortPaired(keys, companions, psort.OrderedCompare[int]))
		require.Equal(t, plain, keys, "paired sort must order keys exactly like a plain sort")

		got := make(map[int][]int)
		for i, k := range keys {
			got[k] = append(got[k], companions[i])
		}
		require.Equal(t, tagged, got, "companions must follow their keys")

		// Stability carries over to the companions: for equal keys the
		// original order — here ascending companion values — survives.
		for i := 1; i < n; i++ {
			if keys[i-1] == keys[i] {
				require.Less(t, companions[i-1], companions[i])
			}
		}
	}
}

func TestSortPairedLengthMismatch(t *testing.T) {
	keys := []int{2, 1}
	tags := []string{"b"}
	err := psort.SortPaired(keys, tags, psort.OrderedCompare[int])
	require.ErrorIs(t, err, psort.ErrLengthMismatch)
	require.Equal(t, []int{2, 1}, keys, "keys must be untouched after a rejected pair")
}

func TestSortPairedRange(t *testing.T) {
	keys := []int{9, 3, 1, 2, 0}
	tags := []string{"w", "c", "a", "b", "z"}

	require.NoError(t, psort.SortPairedRange(keys, tags, 1, 4, psort.OrderedCompare[int]))

	require.Equal(t, []int{9, 1, 2, 3, 0}, keys)
	require.Equal(t, []string{"w", "a", "b", "c", "z"}, tags)
}

func TestSortPairedRangeInvalid(t *testing.T) {
	keys := []int{2, 1}
	tags := []string{"b", "a"}
	require.ErrorIs(t, psort.SortPairedRange(keys, tags, 1, 3, psort.OrderedCompare[int]), psort.ErrInvalidRange)
	require.Equal(t, []int{2, 1}, keys)
}

// TestApplyLargeCopyPath pushes the element count past the in-place
// threshold so the temporary-copy branch is exercised.
func TestApplyLargeCopyPath(t *testing.T) {
	n := 1 << 14
	rng := rand.New(rand.NewSource(6))
	keys := make([]int, n)
	companions := make([]int, n)
	for i := range keys {
		keys[i] = rng.Int()
		companions[i] = keys[i] + 1
	}

	require.NoError(t, psort.SortPaired(keys, companions, psort.OrderedCompare[int]))

	for i := range keys {
		require.Equal(t, keys[i]+1, companions[i])
	}
}
