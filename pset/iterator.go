package pset

import "github.com/hasbyte1/go-primitive-utils/fn"

// Iterator walks the values of a Set in unspecified order.
//
// Iterators are fail-fast: any structural modification of the set other
// than the iterator's own [Iterator.Remove] makes every subsequent call
// return [ErrConcurrentModification].
type Iterator[T Element] struct {
	set      *Set[T]
	expected int // modCount the iterator believes the set has
	index    int // next slot to examine
	last     int // slot of the value last returned by Next, -1 if none

	// Values that a backward shift moved from a slot the cursor had
	// already passed to one it has not reached yet; they must be skipped
	// when encountered again.
	wrapped []T
}

// Iterator returns a new iterator positioned before the first value.
func (s *Set[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{set: s, expected: s.modCount, last: -1}
}

// skip reports whether the value at slot i was already yielded before a
// removal shifted it past the cursor.
func (it *Iterator[T]) skip(i int) bool {
	v := it.set.slots[i].value
	for k, w := range it.wrapped {
		if sameValue(w, v) {
			it.wrapped[k] = it.wrapped[len(it.wrapped)-1]
			it.wrapped = it.wrapped[:len(it.wrapped)-1]
			return true
		}
	}
	return false
}

// HasNext reports whether another call to Next would yield a value.
// It performs no modification check; a dead iterator reports its error
// from Next.
func (it *Iterator[T]) HasNext() bool {
	for i := it.index; i < len(it.set.slots); i++ {
		if !it.set.slots[i].used {
			continue
		}
		if !it.isWrapped(i) {
			return true
		}
	}
	return false
}

// isWrapped is the non-consuming form of skip, used by HasNext.
func (it *Iterator[T]) isWrapped(i int) bool {
	v := it.set.slots[i].value
	for _, w := range it.wrapped {
		if sameValue(w, v) {
			return true
		}
	}
	return false
}

// Next returns the next value. It returns [ErrConcurrentModification]
// when the set was structurally modified behind the iterator's back, and
// [ErrIteratorExhausted] when no values remain.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if it.expected != it.set.modCount {
		return zero, ErrConcurrentModification
	}
	for it.index < len(it.set.slots) {
		i := it.index
		it.index++
		if !it.set.slots[i].used || it.skip(i) {
			continue
		}
		it.last = i
		return it.set.slots[i].value, nil
	}
	return zero, ErrIteratorExhausted
}

// Remove deletes the value last returned by Next. The deletion runs the
// same backward-shift compaction as [Set.Remove]; when the shift drags a
// not-yet-visited entry into the vacated slot the cursor steps back to
// re-examine it, and an already-visited entry that wraps ahead of the
// cursor is remembered and skipped on re-encounter.
func (it *Iterator[T]) Remove() error {
	if it.expected != it.set.modCount {
		return ErrConcurrentModification
	}
	if it.last < 0 {
		return ErrIteratorState
	}

	visited := it.index // slots below this were already scanned
	it.set.removeSlot(it.last, func(from, to int) {
		switch {
		case from >= visited && to < visited:
			// An unvisited entry landed in the just-cleared slot;
			// rewind so the next scan picks it up.
			it.index = to
		case from < visited && to >= visited:
			// A visited entry wrapped past the cursor; skip it when
			// the scan reaches its new slot.
			it.wrapped = append(it.wrapped, it.set.slots[to].value)
		}
	})

	it.expected = it.set.modCount
	it.last = -1
	return nil
}

// ForEachRemaining yields every remaining value to consume. It stops and
// returns [ErrConcurrentModification] as soon as a concurrent structural
// modification is detected mid-traversal.
func (it *Iterator[T]) ForEachRemaining(consume fn.Consumer[T]) error {
	for {
		if it.expected != it.set.modCount {
			return ErrConcurrentModification
		}
		if !it.HasNext() {
			return nil
		}
		v, err := it.Next()
		if err != nil {
			return err
		}
		consume(v)
	}
}
