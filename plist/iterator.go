package plist

import "github.com/hasbyte1/go-primitive-utils/fn"

// Iterator walks a view's elements from front to back.
//
// Iterators are fail-fast: once the view's list — or any other view of
// the same backing store — is structurally modified, every subsequent
// call returns [ErrConcurrentModification]. The one sanctioned mutation
// is the iterator's own [Iterator.Remove].
type Iterator[T Element] struct {
	list     *List[T]
	expected int // modCount the iterator believes the list has
	cursor   int // view-relative index of the next element
	last     int // index last returned by Next, -1 if none
}

// Iterator returns a new iterator positioned before the first element.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{list: l, expected: l.modCount, last: -1}
}

// HasNext reports whether another call to Next would yield an element.
func (it *Iterator[T]) HasNext() bool {
	return it.cursor < it.list.Len()
}

// Next returns the next element. It returns [ErrConcurrentModification]
// when the graph was structurally modified behind the iterator's back,
// and [ErrIteratorExhausted] at the end of the view.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if it.expected != it.list.modCount {
		return zero, ErrConcurrentModification
	}
	if it.cursor >= it.list.Len() {
		return zero, ErrIteratorExhausted
	}
	it.last = it.cursor
	it.cursor++
	return it.list.data[it.list.from+it.last], nil
}

// Remove deletes the element last returned by Next and re-synchronises
// the iterator with the list, so iteration can continue.
func (it *Iterator[T]) Remove() error {
	if it.expected != it.list.modCount {
		return ErrConcurrentModification
	}
	if it.last < 0 {
		return ErrIteratorState
	}
	if _, err := it.list.RemoveAt(it.last); err != nil {
		return err
	}
	it.cursor = it.last
	it.last = -1
	it.expected = it.list.modCount
	return nil
}

// ForEachRemaining yields every remaining element to consume. It stops
// and returns [ErrConcurrentModification] as soon as a concurrent
// structural modification is detected mid-traversal.
func (it *Iterator[T]) ForEachRemaining(consume fn.Consumer[T]) error {
	for it.cursor < it.list.Len() {
		if it.expected != it.list.modCount {
			return ErrConcurrentModification
		}
		it.last = it.cursor
		it.cursor++
		consume(it.list.data[it.list.from+it.last])
	}
	return nil
}

// ListIterator is a bidirectional [Iterator] that can also replace and
// insert elements at the cursor, mirroring the list-iterator contract:
// SetValue applies to the element last returned by Next or Previous, and
// Insert places a new element before the cursor.
type ListIterator[T Element] struct {
	list     *List[T]
	expected int
	cursor   int
	last     int // last returned by Next or Previous, -1 if none
}

// ListIterator returns a bidirectional iterator positioned before the
// first element.
func (l *List[T]) ListIterator() *ListIterator[T] {
	return &ListIterator[T]{list: l, expected: l.modCount, last: -1}
}

// ListIteratorAt returns a bidirectional iterator positioned before the
// element at index (index may equal Len(), placing the iterator at the
// end).
func (l *List[T]) ListIteratorAt(index int) (*ListIterator[T], error) {
	if err := l.checkInsertIndex(index); err != nil {
		return nil, err
	}
	return &ListIterator[T]{list: l, expected: l.modCount, cursor: index, last: -1}, nil
}

// HasNext reports whether another call to Next would yield an element.
func (it *ListIterator[T]) HasNext() bool { return it.cursor < it.list.Len() }

// HasPrevious reports whether another call to Previous would yield an
// element.
func (it *ListIterator[T]) HasPrevious() bool { return it.cursor > 0 }

// NextIndex returns the index of the element a call to Next would return.
func (it *ListIterator[T]) NextIndex() int { return it.cursor }

// PreviousIndex returns the index of the element a call to Previous
// would return, or -1 at the front.
func (it *ListIterator[T]) PreviousIndex() int { return it.cursor - 1 }

// Next returns the element after the cursor and advances.
func (it *ListIterator[T]) Next() (T, error) {
	var zero T
	if it.expected != it.list.modCount {
		return zero, ErrConcurrentModification
	}
	if it.cursor >= it.list.Len() {
		return zero, ErrIteratorExhausted
	}
	it.last = it.cursor
	it.cursor++
	return it.list.data[it.list.from+it.last], nil
}

// Previous returns the element before the cursor and retreats.
func (it *ListIterator[T]) Previous() (T, error) {
	var zero T
	if it.expected != it.list.modCount {
		return zero, ErrConcurrentModification
	}
	if it.cursor <= 0 {
		return zero, ErrIteratorExhausted
	}
	it.cursor--
	it.last = it.cursor
	return it.list.data[it.list.from+it.last], nil
}

// SetValue replaces the element last returned by Next or Previous.
// Replacement is not structural, so the iterator — and every other
// iterator over the graph — stays valid.
func (it *ListIterator[T]) SetValue(value T) error {
	if it.expected != it.list.modCount {
		return ErrConcurrentModification
	}
	if it.last < 0 {
		return ErrIteratorState
	}
	_, err := it.list.Set(it.last, value)
	return err
}

// Insert places value before the cursor; the next call to Previous
// returns it, and Next is unaffected.
func (it *ListIterator[T]) Insert(value T) error {
	if it.expected != it.list.modCount {
		return ErrConcurrentModification
	}
	if err := it.list.Insert(it.cursor, value); err != nil {
		return err
	}
	it.cursor++
	it.last = -1
	it.expected = it.list.modCount
	return nil
}

// Remove deletes the element last returned by Next or Previous.
func (it *ListIterator[T]) Remove() error {
	if it.expected != it.list.modCount {
		return ErrConcurrentModification
	}
	if it.last < 0 {
		return ErrIteratorState
	}
	if _, err := it.list.RemoveAt(it.last); err != nil {
		return err
	}
	if it.last < it.cursor {
		it.cursor--
	}
	it.last = -1
	it.expected = it.list.modCount
	return nil
}
