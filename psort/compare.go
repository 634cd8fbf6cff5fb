package psort

import "golang.org/x/exp/constraints"

// Compare is a three-way comparator: it returns a value < 0 when a orders
// before b, 0 when they are equal, and > 0 when a orders after b.
//
// A Compare must describe a total order over the values it is applied to.
type Compare[T any] func(a, b T) int

// OrderedCompare is the natural ascending comparator for any ordered type.
func OrderedCompare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ReverseCompare returns a comparator with the opposite ordering of cmp.
func ReverseCompare[T any](cmp Compare[T]) Compare[T] {
	return func(a, b T) int { return cmp(b, a) }
}
