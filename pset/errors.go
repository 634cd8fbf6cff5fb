package pset

import "errors"

// Sentinel errors returned by pset constructors and iterators.
//
// Use [errors.Is] for comparisons:
//
//	_, err := pset.WithLoadFactor[int32](64, 0.95)
//	if errors.Is(err, pset.ErrInvalidLoadFactor) {
//	    // load factor outside [0.1, 0.9]
//	}
var (
	// ErrIllegalCapacity is returned when a constructor is called with a
	// negative initial capacity.
	ErrIllegalCapacity = errors.New("pset: illegal initial capacity")

	// ErrInvalidLoadFactor is returned when a constructor is called with
	// a load factor outside [0.1, 0.9].
	ErrInvalidLoadFactor = errors.New("pset: load factor outside [0.1, 0.9]")

	// ErrConcurrentModification is returned by an iterator whose set was
	// structurally modified after the iterator was created. The iterator
	// is dead once this is returned and must be discarded.
	ErrConcurrentModification = errors.New("pset: set modified during iteration")

	// ErrIteratorState is returned by [Iterator.Remove] when there is no
	// last-returned value to remove (Next has not been called, or Remove
	// was already called for it).
	ErrIteratorState = errors.New("pset: Remove called without a preceding Next")

	// ErrIteratorExhausted is returned by [Iterator.Next] when no values
	// remain.
	ErrIteratorExhausted = errors.New("pset: iterator exhausted")
)
