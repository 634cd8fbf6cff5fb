package plist

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-primitive-utils/arrays"
	"github.com/hasbyte1/go-primitive-utils/psort"
)

// Element is the set of primitive types a List can hold.
type Element interface {
	constraints.Integer | constraints.Float
}

// DefaultCapacity is the initial backing-store size used by [New].
const DefaultCapacity = 10

// open marks a view whose upper bound tracks the end of the live region;
// only root lists are open.
const open = -1

// List is an array-backed list of primitive values. A List node is
// either a root, which owns the backing store, or a view created by
// [List.SubList], which windows a range of its root's store. All nodes
// over one store form a graph (see the package documentation) and every
// structural edit leaves the whole graph consistent before returning.
//
// A List is single-writer: it performs no internal locking and must be
// synchronised externally when shared across goroutines.
type List[T Element] struct {
	root    *List[T] // owner of the backing store; self for roots
	parent  *List[T] // nil for roots
	child   *List[T] // anchor of the ring of directly nested views
	sibling *List[T] // circular ring of views sharing one parent

	from int // absolute lower bound of this view
	to   int // absolute upper bound, or open

	// Mirrors of root state, refreshed on every propagation.
	size int // live element count of the whole store
	data []T // backing store; len(data) is the capacity

	modCount int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func newRoot[T Element](data []T, size int) *List[T] {
	l := &List[T]{from: 0, to: open, size: size, data: data}
	l.root = l
	return l
}

// New creates an empty list with [DefaultCapacity] slots.
func New[T Element]() *List[T] {
	return newRoot(make([]T, DefaultCapacity), 0)
}

// WithCapacity creates an empty list with the given initial capacity.
// Returns [ErrIllegalCapacity] when capacity is negative.
func WithCapacity[T Element](capacity int) (*List[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrIllegalCapacity, capacity)
	}
	return newRoot(make([]T, capacity), 0), nil
}

// Of creates a list holding the given values.
func Of[T Element](values ...T) *List[T] {
	data := make([]T, len(values))
	copy(data, values)
	return newRoot(data, len(data))
}

// FromSlice creates a list holding a copy of items.
func FromSlice[T Element](items []T) *List[T] {
	return Of(items...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// limit returns the absolute index one past this view's last element.
func (l *List[T]) limit() int {
	if l.to == open {
		return l.size
	}
	return l.to
}

// Len returns the number of elements visible through this view.
func (l *List[T]) Len() int { return l.limit() - l.from }

// Cap returns the capacity of the shared backing store.
func (l *List[T]) Cap() int { return len(l.root.data) }

// IsEmpty reports whether the view contains no elements.
func (l *List[T]) IsEmpty() bool { return l.Len() == 0 }

func (l *List[T]) checkIndex(i int) error {
	if i < 0 || i >= l.Len() {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, l.Len())
	}
	return nil
}

func (l *List[T]) checkInsertIndex(i int) error {
	if i < 0 || i > l.Len() {
		return fmt.Errorf("%w: insertion index %d, size %d", ErrIndexOutOfRange, i, l.Len())
	}
	return nil
}

// Get returns the element at index, counted from the start of this view.
func (l *List[T]) Get(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return l.data[l.from+index], nil
}

// Set replaces the element at index and returns the previous value.
// Replacement is not a structural modification: bounds do not move and
// iterators stay valid.
func (l *List[T]) Set(index int, value T) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	old := l.data[l.from+index]
	l.data[l.from+index] = value
	return old, nil
}

// Contains reports whether the view contains value.
func (l *List[T]) Contains(value T) bool { return l.IndexOf(value) >= 0 }

// IndexOf returns the view-relative index of the first occurrence of
// value, or -1.
func (l *List[T]) IndexOf(value T) int {
	for i, hi := l.from, l.limit(); i < hi; i++ {
		if l.data[i] == value {
			return i - l.from
		}
	}
	return -1
}

// LastIndexOf returns the view-relative index of the last occurrence of
// value, or -1.
func (l *List[T]) LastIndexOf(value T) int {
	for i := l.limit() - 1; i >= l.from; i-- {
		if l.data[i] == value {
			return i - l.from
		}
	}
	return -1
}

// ToSlice returns a copy of the elements visible through this view.
func (l *List[T]) ToSlice() []T {
	out := make([]T, l.Len())
	copy(out, l.data[l.from:l.limit()])
	return out
}

// String returns a representation like "[1, 2, 3]".
// It implements [fmt.Stringer].
func (l *List[T]) String() string {
	return "[" + arrays.Join(l.data[l.from:l.limit()], ", ") + "]"
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Add appends value to the end of this view (which, through a view, is
// an insertion into the middle of the root). It always returns true, per
// the Collection contract.
func (l *List[T]) Add(value T) bool {
	l.root.insertAbs(l, l.limit(), value)
	return true
}

// AddAll appends every given value in one bulk shift and a single graph
// propagation. Reports whether the list changed.
func (l *List[T]) AddAll(values ...T) bool {
	if len(values) == 0 {
		return false
	}
	l.root.insertAbs(l, l.limit(), values...)
	return true
}

// Insert places value at index, shifting subsequent elements right.
func (l *List[T]) Insert(index int, value T) error {
	if err := l.checkInsertIndex(index); err != nil {
		return err
	}
	l.root.insertAbs(l, l.from+index, value)
	return nil
}

// InsertAll places every given value at index in one bulk shift and a
// single graph propagation.
func (l *List[T]) InsertAll(index int, values ...T) error {
	if err := l.checkInsertIndex(index); err != nil {
		return err
	}
	if len(values) > 0 {
		l.root.insertAbs(l, l.from+index, values...)
	}
	return nil
}

// RemoveAt deletes the element at index and returns it.
func (l *List[T]) RemoveAt(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	old := l.data[l.from+index]
	l.root.removeAbs(l, l.from+index, 1)
	return old, nil
}

// RemoveValue deletes the first occurrence of value and reports whether
// the list changed.
func (l *List[T]) RemoveValue(value T) bool {
	i := l.IndexOf(value)
	if i < 0 {
		return false
	}
	l.root.removeAbs(l, l.from+i, 1)
	return true
}

// Clear removes every element visible through this view in one bulk
// shift and a single graph propagation.
func (l *List[T]) Clear() {
	if n := l.Len(); n > 0 {
		l.root.removeAbs(l, l.from, n)
	}
}

// Sort reorders the view's live range so that cmp is non-decreasing. The
// sort is stable and adaptive (see psort). Although the size does not
// change, sorting is a structural modification: the whole graph is
// touched so outstanding iterators fail fast.
func (l *List[T]) Sort(cmp psort.Compare[T]) {
	psort.Sort(l.data[l.from:l.limit()], cmp)
	l.root.propagate(l, l.from, 0)
}

// ─────────────────────────────────────────────────────────────────────────────
// Capacity
// ─────────────────────────────────────────────────────────────────────────────

// EnsureCapacity grows the backing store to hold at least capacity
// elements without further reallocation.
func (l *List[T]) EnsureCapacity(capacity int) {
	r := l.root
	if capacity <= len(r.data) {
		return
	}
	r.grow(capacity)
	r.propagate(r, 0, 0)
}

// Trim shrinks the backing store's capacity to the current size.
func (l *List[T]) Trim() {
	r := l.root
	if r.size == len(r.data) {
		return
	}
	data := make([]T, r.size)
	copy(data, r.data[:r.size])
	r.data = data
	r.propagate(r, 0, 0)
}

// grow reallocates the root's backing store to hold at least min
// elements, using the ×3/2+1 growth policy.
func (r *List[T]) grow(min int) {
	newCap := len(r.data)*3/2 + 1
	if newCap < min {
		newCap = min
	}
	data := make([]T, newCap)
	copy(data, r.data[:r.size])
	r.data = data
}

// ─────────────────────────────────────────────────────────────────────────────
// Copies
// ─────────────────────────────────────────────────────────────────────────────

// Clone returns an isolated root list holding a copy of this view's
// elements. The copy has its own backing store sized to the view's
// length and carries no graph links.
func (l *List[T]) Clone() *List[T] {
	return Of(l.data[l.from:l.limit()]...)
}
