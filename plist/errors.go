package plist

import "errors"

// Sentinel errors returned by plist operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := list.Get(i)
//	if errors.Is(err, plist.ErrIndexOutOfRange) {
//	    // i is outside [0, list.Len())
//	}
var (
	// ErrIndexOutOfRange is returned when an index lies outside
	// [0, Len()) — or outside [0, Len()] for insertion points. The
	// wrapped message carries the offending index and the current size.
	ErrIndexOutOfRange = errors.New("plist: index out of range")

	// ErrInvalidRange is returned by [List.SubList] when from/to do not
	// describe a sub-range of the view.
	ErrInvalidRange = errors.New("plist: invalid sub-list range")

	// ErrIllegalCapacity is returned when a constructor is called with a
	// negative capacity.
	ErrIllegalCapacity = errors.New("plist: illegal capacity")

	// ErrConcurrentModification is returned by an iterator whose list —
	// or any view sharing its backing store — was structurally modified
	// after the iterator was created. The iterator is dead once this is
	// returned and must be discarded.
	ErrConcurrentModification = errors.New("plist: list modified during iteration")

	// ErrIteratorState is returned by an iterator mutator called without
	// a preceding Next or Previous.
	ErrIteratorState = errors.New("plist: iterator mutator called without a preceding Next or Previous")

	// ErrIteratorExhausted is returned by [Iterator.Next] when no
	// elements remain, and by [ListIterator.Previous] at the front.
	ErrIteratorExhausted = errors.New("plist: iterator exhausted")
)
