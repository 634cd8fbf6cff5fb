// Package plist provides a resizable array list for primitive (integer
// and floating-point) element types whose sub-lists are live views, not
// copies: a structural edit made through any view is immediately visible
// through every other view of the same backing store.
//
// # The view graph
//
// [List.SubList] returns a new List node sharing the root's backing
// array. Views nest arbitrarily, forming a graph rooted at the list that
// owns the store: each node links to one directly nested view, and views
// nested at the same level form a sibling ring. Every structural edit —
// made through the root or through any view — propagates through the
// whole graph before returning, shifting view bounds past the edit point
// and bumping every node's modification counter:
//
//	root := plist.Of[int32](1, 2, 3, 4, 5)
//	mid, _ := root.SubList(1, 4)   // view of [2 3 4]
//	_ = mid.Insert(0, 9)           // root is now [1 9 2 3 4 5]
//
// Because counters propagate, iterators are fail-fast across the entire
// graph: an iterator captured before an edit through *any* node returns
// [ErrConcurrentModification] on its next use.
//
// # Storage
//
// The backing array grows by the ×3/2+1 policy on overflow; [List.Trim]
// shrinks it back to the current size. Bulk insertion ([List.AddAll],
// [List.InsertAll]) performs one shift and one propagation for the whole
// batch. [List.Clone] produces an isolated copy with no graph links.
//
// # Sorting
//
// [List.Sort] delegates to the psort merge engine over the view's live
// range, then touches the graph (a delta-zero propagation) so that
// outstanding iterators fail fast even though no size changed.
//
// # Failure semantics
//
// Out-of-range indexes, invalid sub-list ranges and illegal capacities
// are rejected before any mutation, as distinct sentinel errors. A
// structural operation either completes fully — leaving the whole graph
// consistent — or returns an error having changed nothing.
//
// Lists are not safe for concurrent use; callers must serialise writers
// externally (ordinary data-race rules apply to concurrent readers).
package plist
