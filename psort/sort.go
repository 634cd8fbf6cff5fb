package psort

import "fmt"

// Sort stably sorts a in ascending order as defined by cmp.
//
// The sort is adaptive: already-sorted or mostly-sorted input is handled
// in close to linear time.
func Sort[T any](a []T, cmp Compare[T]) {
	sortRange(a, 0, len(a), cmp)
}

// SortRange stably sorts a[from:to] in ascending order as defined by cmp,
// leaving the rest of the slice untouched.
//
// Returns [ErrInvalidRange] — before any element has moved — when from/to
// do not describe a sub-range of a.
func SortRange[T any](a []T, from, to int, cmp Compare[T]) error {
	if err := checkRange(len(a), from, to); err != nil {
		return err
	}
	sortRange(a, from, to, cmp)
	return nil
}

// IsSorted reports whether a is in ascending order as defined by cmp.
func IsSorted[T any](a []T, cmp Compare[T]) bool {
	for i := len(a) - 1; i > 0; i-- {
		if cmp(a[i], a[i-1]) < 0 {
			return false
		}
	}
	return true
}

// checkRange validates a [from, to) range against a slice of length n.
func checkRange(n, from, to int) error {
	if from < 0 || from > to || to > n {
		return fmt.Errorf("%w: [%d, %d) of length %d", ErrInvalidRange, from, to, n)
	}
	return nil
}
