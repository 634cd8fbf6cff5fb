// Package arrays provides standalone, framework-agnostic helper
// functions for Go slices: filling, comparison, reversal, searching and
// string formatting.
//
// All helpers are generic and operate on plain []T values — no wrapper
// type required:
//
//	buf := make([]int, 8)
//	arrays.Fill(buf, -1)
//	arrays.Equal([]int{1, 2}, []int{1, 2})      // → true
//	arrays.Join([]int{1, 2, 3}, ", ")           // → "1, 2, 3"
//	arrays.Reverse(buf)
//
// [BinarySearch] takes a psort comparator, so the same Compare function
// drives both sorting and searching:
//
//	psort.Sort(values, psort.OrderedCompare[int64])
//	i, ok := arrays.BinarySearch(values, 42, psort.OrderedCompare[int64])
//
// The formatting helpers ([Join], [JoinFunc]) back the String methods of
// the plist and pset container types.
package arrays
