package delegate

// Collection is the operation set shared by every container in this
// module.
type Collection[T any] interface {
	// Add inserts value and reports whether the collection changed.
	Add(value T) bool
	// Contains reports whether value is present.
	Contains(value T) bool
	// Len returns the number of elements.
	Len() int
	// IsEmpty reports whether the collection has no elements.
	IsEmpty() bool
	// Clear removes every element.
	Clear()
	// ToSlice returns a copy of the elements.
	ToSlice() []T
}

// List is a positional Collection, matching plist.List.
type List[T any] interface {
	Collection[T]

	// Get returns the element at index.
	Get(index int) (T, error)
	// Set replaces the element at index and returns the previous value.
	Set(index int, value T) (T, error)
	// Insert places value at index, shifting subsequent elements right.
	Insert(index int, value T) error
	// RemoveAt deletes the element at index and returns it.
	RemoveAt(index int) (T, error)
	// IndexOf returns the index of the first occurrence of value, or -1.
	IndexOf(value T) int
}

// Set is a membership Collection, matching pset.Set.
type Set[T any] interface {
	Collection[T]

	// Remove deletes value and reports whether the set changed.
	Remove(value T) bool
	// AddAll inserts every value and reports whether the set changed.
	AddAll(values ...T) bool
	// ContainsAll reports whether every value is present.
	ContainsAll(values ...T) bool
}

// DelegateCollection forwards every [Collection] method to the wrapped
// target. Embed it and override individual methods to build decorators.
type DelegateCollection[T any] struct {
	Collection[T]
}

// NewCollection wraps target in a DelegateCollection.
func NewCollection[T any](target Collection[T]) DelegateCollection[T] {
	return DelegateCollection[T]{Collection: target}
}

// DelegateList forwards every [List] method to the wrapped target.
type DelegateList[T any] struct {
	List[T]
}

// NewList wraps target in a DelegateList.
func NewList[T any](target List[T]) DelegateList[T] {
	return DelegateList[T]{List: target}
}

// DelegateSet forwards every [Set] method to the wrapped target.
type DelegateSet[T any] struct {
	Set[T]
}

// NewSet wraps target in a DelegateSet.
func NewSet[T any](target Set[T]) DelegateSet[T] {
	return DelegateSet[T]{Set: target}
}
