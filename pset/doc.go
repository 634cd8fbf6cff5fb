// Package pset provides a hash set for primitive (integer and
// floating-point) element types, built on open addressing with linear
// probing and tombstone-free, backward-shift deletion.
//
// # Representation
//
// The table is a power-of-two array of tagged slots; each slot carries
// its value and an occupancy flag, so the zero value is an ordinary
// member with no special casing. Probing starts at the mixed hash of the
// value masked to the table size and advances one slot at a time. For
// every stored value, probing from its home slot reaches it before
// reaching an empty slot; deletion preserves this invariant by shifting
// later colliding entries backward into the vacated slot instead of
// leaving tombstones.
//
// Float membership is by canonical bit pattern rather than ==: -0.0 and
// +0.0 are the same member, and NaN is a single ordinary member that can
// be added, found and removed like any other value.
//
//	s := pset.New[int64]()
//	s.Add(42)       // → true
//	s.Add(42)       // → false (already present)
//	s.Contains(42)  // → true
//	s.Remove(42)    // → true
//
// # Sizing
//
// The table doubles when the size exceeds capacity × load factor
// (default [DefaultLoadFactor]); [Set.Compact] shrinks it back to the
// smallest power of two that respects the load factor. The load factor
// is settable per set within [0.1, 0.9] via [WithLoadFactor].
//
// # Iteration
//
// Iteration order is unspecified and may change after any mutating
// operation. Iterators are fail-fast: a structural modification made
// through the set invalidates every outstanding iterator, which then
// returns [ErrConcurrentModification] on its next use. The one sanctioned
// way to mutate during iteration is [Iterator.Remove], which deletes the
// last value returned by Next and keeps the traversal consistent even
// when the deletion shifts entries across the cursor.
//
// Sets are not safe for concurrent use; callers must serialise writers
// externally (ordinary data-race rules apply to concurrent readers).
package pset
