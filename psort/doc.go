// Package psort provides an adaptive, stable merge sort driven by a
// three-way comparator, together with paired and indexed variants that
// reorder companion slices in lock-step with the sorted one.
//
// # The engine
//
// [Sort] and [SortRange] implement the classic adaptive run-merge design:
// the input is scanned for naturally ascending (or strictly descending,
// then reversed) runs, short runs are extended by a stable binary
// insertion sort, and pending runs are merged under the stack-balance
// invariant that keeps the number of outstanding runs logarithmic. Merges
// switch into a galloping (exponential-search) mode when one run wins
// enough consecutive comparisons, and demote back to linear mode after a
// losing streak. The sort is stable: elements that compare equal keep
// their original relative order.
//
//	psort.Sort(values, psort.OrderedCompare[int])
//	psort.Sort(people, func(a, b Person) int { return strings.Compare(a.Name, b.Name) })
//
// # Paired and indexed sorting
//
// [SortPaired] sorts one slice while applying the identical permutation to
// a companion slice, so related rows stay aligned:
//
//	keys := []int64{30, 10, 20}
//	tags := []string{"c", "a", "b"}
//	psort.SortPaired(keys, tags, psort.OrderedCompare[int64])
//	// keys == [10 20 30], tags == ["a" "b" "c"]
//
// [Permutation] exposes the underlying mechanism: it returns the index
// permutation that would sort the slice, leaving the slice untouched.
//
// # Comparators
//
// A [Compare] function returns a negative value, zero, or a positive
// value for less-than, equal and greater-than. [OrderedCompare] covers
// all ordered primitive types; [ReverseCompare] inverts any comparator.
// The comparator must describe a total order; the sort does not validate
// this, and a non-transitive comparator yields an unspecified (but
// memory-safe) ordering.
//
// All functions are synchronous and perform no locking; see the
// repository README for the single-writer contract shared by all
// packages in this module.
package psort
