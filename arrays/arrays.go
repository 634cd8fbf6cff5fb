package arrays

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-primitive-utils/psort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Filling & copying
// ─────────────────────────────────────────────────────────────────────────────

// Fill assigns value to every element of items.
func Fill[T any](items []T, value T) {
	for i := range items {
		items[i] = value
	}
}

// FillRange assigns value to items[from:to]. Out-of-range indexes panic,
// matching slice semantics.
func FillRange[T any](items []T, from, to int, value T) {
	Fill(items[from:to], value)
}

// CloneSlice returns a copy of items with capacity equal to its length.
// A nil input yields a nil output.
func CloneSlice[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// Concat returns a new slice holding the elements of every input slice in
// order.
func Concat[T any](slices ...[]T) []T {
	total := 0
	for _, s := range slices {
		total += len(s)
	}
	out := make([]T, 0, total)
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

// Reverse reverses items in place.
func Reverse[T any](items []T) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison & searching
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports whether a and b have the same length and equal elements
// in the same order.
func Equal[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// EqualFunc is [Equal] with a custom element equivalence function.
func EqualFunc[T any](a, b []T, eq func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of value, or -1.
func LastIndexOf[T comparable](items []T, value T) int {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i] == value {
			return i
		}
	}
	return -1
}

// Contains reports whether items contains value.
func Contains[T comparable](items []T, value T) bool {
	return IndexOf(items, value) >= 0
}

// BinarySearch locates value in items, which must be sorted ascending
// per cmp. It returns the index of a match and true, or the insertion
// point and false. When equal elements are present the returned index is
// the leftmost match.
func BinarySearch[T any](items []T, value T, cmp psort.Compare[T]) (int, bool) {
	lo, hi := 0, len(items)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(items[mid], value) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(items) && cmp(items[lo], value) == 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Formatting
// ─────────────────────────────────────────────────────────────────────────────

// Join formats every element with %v and concatenates them with sep.
func Join[T any](items []T, sep string) string {
	return JoinFunc(items, sep, func(v T) string { return fmt.Sprintf("%v", v) })
}

// JoinFunc concatenates format(item) for every element, separated by sep.
func JoinFunc[T any](items []T, sep string, format func(T) string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return format(items[0])
	}
	var b strings.Builder
	b.WriteString(format(items[0]))
	for _, item := range items[1:] {
		b.WriteString(sep)
		b.WriteString(format(item))
	}
	return b.String()
}
