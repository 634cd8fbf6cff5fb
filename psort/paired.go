package psort

import "fmt"

// applyCopyThreshold is the element count above which a permutation is
// applied through a temporary full copy instead of in-place
// cycle-following; on large ranges the sequential copy is kinder to the
// cache than chasing cycles.
const applyCopyThreshold = 1 << 13

// Permutation returns the index permutation that would stably sort a with
// cmp: perm[k] is the index in a of the element that belongs at position
// k. The slice itself is left untouched.
//
// The permutation is produced by sorting a synthetic index slice with the
// same merge engine as [Sort], so it inherits its adaptivity and
// stability (equal keys keep ascending indexes).
func Permutation[T any](a []T, cmp Compare[T]) []int {
	perm := make([]int, len(a))
	for i := range perm {
		perm[i] = i
	}
	sortRange(perm, 0, len(perm), func(i, j int) int { return cmp(a[i], a[j]) })
	return perm
}

// Apply reorders a in place so that the element previously at index
// perm[k] ends up at index k. perm must be a permutation of [0, len(a)),
// such as one returned by [Permutation]; it is read but not modified, so
// the same permutation can be applied to any number of companion slices.
//
// Returns [ErrLengthMismatch] when perm and a differ in length.
func Apply[T any](a []T, perm []int) error {
	if len(perm) != len(a) {
		return fmt.Errorf("%w: permutation %d, slice %d", ErrLengthMismatch, len(perm), len(a))
	}
	applyPermutation(a, perm)
	return nil
}

// SortPaired stably sorts keys with cmp and applies the identical
// permutation to companion, keeping companion[i] attached to keys[i].
//
// Returns [ErrLengthMismatch] — before any element has moved — when the
// two slices differ in length.
func SortPaired[T, U any](keys []T, companion []U, cmp Compare[T]) error {
	if len(companion) != len(keys) {
		return fmt.Errorf("%w: keys %d, companion %d", ErrLengthMismatch, len(keys), len(companion))
	}
	perm := Permutation(keys, cmp)
	applyPermutation(keys, perm)
	applyPermutation(companion, perm)
	return nil
}

// SortPairedRange is [SortPaired] restricted to the sub-range [from, to)
// of both slices.
func SortPairedRange[T, U any](keys []T, companion []U, from, to int, cmp Compare[T]) error {
	if len(companion) != len(keys) {
		return fmt.Errorf("%w: keys %d, companion %d", ErrLengthMismatch, len(keys), len(companion))
	}
	if err := checkRange(len(keys), from, to); err != nil {
		return err
	}
	return SortPaired(keys[from:to], companion[from:to], cmp)
}

// applyPermutation reorders a so that a[k] becomes a[perm[k]]. Small
// ranges follow cycles in place, marking visited entries with their
// bitwise complement and restoring perm before returning; large ranges
// go through one temporary copy.
func applyPermutation[T any](a []T, perm []int) {
	n := len(perm)
	if n >= applyCopyThreshold {
		out := make([]T, n)
		for i, p := range perm {
			out[i] = a[p]
		}
		copy(a, out)
		return
	}

	for i := 0; i < n; i++ {
		if perm[i] < 0 {
			continue // already placed by an earlier cycle
		}
		saved := a[i]
		j := i
		for {
			k := perm[j]
			perm[j] = ^k
			if k == i {
				a[j] = saved
				break
			}
			a[j] = a[k]
			j = k
		}
	}
	for i := range perm {
		perm[i] = ^perm[i]
	}
}
