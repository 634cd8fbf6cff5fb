package pset

import (
	"fmt"

	"github.com/hasbyte1/go-primitive-utils/arrays"
	"github.com/hasbyte1/go-primitive-utils/fn"
)

const (
	// DefaultLoadFactor is the occupancy ratio above which the table
	// doubles when no explicit load factor is given.
	DefaultLoadFactor = 0.55

	// DefaultCapacity is the initial table size used by [New].
	DefaultCapacity = 16

	// minCapacity is the smallest table the set will ever use.
	minCapacity = 4

	minLoadFactor = 0.1
	maxLoadFactor = 0.9
)

// slot is one table entry. used distinguishes an empty slot from a stored
// zero value, so every value of T — including zero — is an ordinary
// member.
type slot[T Element] struct {
	value T
	used  bool
}

// Set is a hash set of primitive values using open addressing with
// linear probing. The zero Set is not ready for use; construct one with
// [New], [WithCapacity], [WithLoadFactor], [Of] or [FromSlice].
//
// A Set is single-writer: it performs no internal locking and must be
// synchronised externally when shared across goroutines.
type Set[T Element] struct {
	slots      []slot[T] // length is always a power of two
	size       int
	loadFactor float64
	modCount   int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an empty set with [DefaultCapacity] slots and the default
// load factor.
func New[T Element]() *Set[T] {
	s, _ := WithLoadFactor[T](DefaultCapacity, DefaultLoadFactor)
	return s
}

// WithCapacity creates an empty set sized for roughly capacity elements,
// rounded up to a power of two. Returns [ErrIllegalCapacity] when
// capacity is negative.
func WithCapacity[T Element](capacity int) (*Set[T], error) {
	return WithLoadFactor[T](capacity, DefaultLoadFactor)
}

// WithLoadFactor creates an empty set with the given initial capacity
// (rounded up to a power of two) and load factor. Returns
// [ErrIllegalCapacity] for a negative capacity and [ErrInvalidLoadFactor]
// for a load factor outside [0.1, 0.9].
func WithLoadFactor[T Element](capacity int, loadFactor float64) (*Set[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrIllegalCapacity, capacity)
	}
	if loadFactor < minLoadFactor || loadFactor > maxLoadFactor {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLoadFactor, loadFactor)
	}
	if capacity < minCapacity {
		capacity = minCapacity
	}
	return &Set[T]{
		slots:      make([]slot[T], nextPow2(capacity)),
		loadFactor: loadFactor,
	}, nil
}

// Of creates a set holding the given values.
func Of[T Element](values ...T) *Set[T] {
	s, _ := WithCapacity[T](len(values))
	s.AddAll(values...)
	return s
}

// FromSlice creates a set holding the distinct values of items.
func FromSlice[T Element](items []T) *Set[T] {
	return Of(items...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Membership
// ─────────────────────────────────────────────────────────────────────────────

// home returns the ideal slot index for v in the current table.
func (s *Set[T]) home(v T) int {
	return int(mix64(hashBits(v)) & uint64(len(s.slots)-1))
}

// locate probes linearly from v's home slot and returns the index of
// the slot holding v, or of the first empty slot when v is absent.
// Matching goes through sameValue so float lookup agrees with float
// hashing.
func (s *Set[T]) locate(v T) int {
	mask := len(s.slots) - 1
	i := s.home(v)
	for s.slots[i].used && !sameValue(s.slots[i].value, v) {
		i = (i + 1) & mask
	}
	return i
}

// Contains reports whether v is a member of the set.
func (s *Set[T]) Contains(v T) bool {
	return s.slots[s.locate(v)].used
}

// ContainsAll reports whether every given value is a member of the set.
func (s *Set[T]) ContainsAll(values ...T) bool {
	for _, v := range values {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// Len returns the number of values in the set.
func (s *Set[T]) Len() int { return s.size }

// Cap returns the current number of slots in the table.
func (s *Set[T]) Cap() int { return len(s.slots) }

// IsEmpty reports whether the set contains no values.
func (s *Set[T]) IsEmpty() bool { return s.size == 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// threshold returns the size above which the table must grow.
func (s *Set[T]) threshold() int {
	return int(float64(len(s.slots)) * s.loadFactor)
}

// Add inserts v and reports whether the set changed. When the insertion
// pushes the size past capacity × load factor the table is doubled
// before Add returns.
func (s *Set[T]) Add(v T) bool {
	i := s.locate(v)
	if s.slots[i].used {
		return false
	}
	s.slots[i] = slot[T]{value: v, used: true}
	s.size++
	s.modCount++
	if s.size > s.threshold() {
		s.rehash(2 * len(s.slots))
	}
	return true
}

// AddAll inserts every given value and reports whether the set changed.
func (s *Set[T]) AddAll(values ...T) bool {
	changed := false
	for _, v := range values {
		if s.Add(v) {
			changed = true
		}
	}
	return changed
}

// Remove deletes v and reports whether the set changed. Deletion is
// tombstone-free: entries whose probe chains ran through the vacated
// slot are shifted backward to keep every remaining value reachable.
func (s *Set[T]) Remove(v T) bool {
	i := s.locate(v)
	if !s.slots[i].used {
		return false
	}
	s.removeSlot(i, nil)
	return true
}

// RemoveAll deletes every given value and reports whether the set changed.
func (s *Set[T]) RemoveAll(values ...T) bool {
	changed := false
	for _, v := range values {
		if s.Remove(v) {
			changed = true
		}
	}
	return changed
}

// removeSlot clears slot i and runs backward-shift compaction: walking
// forward along the probe chain, any entry whose home slot lies
// cyclically at or before the current hole is moved back into it, and
// the walk resumes from that entry's old slot. onMove, when non-nil, is
// told about every relocation (used by iterators to stay consistent).
func (s *Set[T]) removeSlot(i int, onMove func(from, to int)) {
	mask := len(s.slots) - 1
	var empty slot[T]

	s.slots[i] = empty
	j := i
	for {
		j = (j + 1) & mask
		if !s.slots[j].used {
			break
		}
		// Move back unless the entry's home lies strictly inside the
		// cyclic interval (i, j] — i.e. unless the hole sits before the
		// start of its probe chain.
		home := s.home(s.slots[j].value)
		if (j-home)&mask >= (j-i)&mask {
			s.slots[i] = s.slots[j]
			s.slots[j] = empty
			if onMove != nil {
				onMove(j, i)
			}
			i = j
		}
	}
	s.size--
	s.modCount++
}

// Clear removes every value, keeping the current table size.
func (s *Set[T]) Clear() {
	var empty slot[T]
	for i := range s.slots {
		s.slots[i] = empty
	}
	s.size = 0
	s.modCount++
}

// ─────────────────────────────────────────────────────────────────────────────
// Sizing
// ─────────────────────────────────────────────────────────────────────────────

// rehash re-inserts every live value into a fresh table of newCapacity
// slots (a power of two).
func (s *Set[T]) rehash(newCapacity int) {
	old := s.slots
	s.slots = make([]slot[T], newCapacity)
	mask := newCapacity - 1
	for _, sl := range old {
		if !sl.used {
			continue
		}
		i := s.home(sl.value)
		for s.slots[i].used {
			i = (i + 1) & mask
		}
		s.slots[i] = sl
	}
	s.modCount++
}

// Compact shrinks the table to the smallest power of two that keeps the
// current size within the load factor.
func (s *Set[T]) Compact() {
	want := nextPow2(int(float64(s.size)/s.loadFactor) + 1)
	if want < minCapacity {
		want = minCapacity
	}
	if want != len(s.slots) {
		s.rehash(want)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Views & copies
// ─────────────────────────────────────────────────────────────────────────────

// ToSlice returns the values of the set in unspecified order.
func (s *Set[T]) ToSlice() []T {
	out := make([]T, 0, s.size)
	for _, sl := range s.slots {
		if sl.used {
			out = append(out, sl.value)
		}
	}
	return out
}

// Each calls consume for every value in unspecified order.
func (s *Set[T]) Each(consume fn.Consumer[T]) {
	for _, sl := range s.slots {
		if sl.used {
			consume(sl.value)
		}
	}
}

// Clone returns an independent copy of the set: same values, same load
// factor, its own backing table.
func (s *Set[T]) Clone() *Set[T] {
	out := &Set[T]{
		slots:      make([]slot[T], len(s.slots)),
		size:       s.size,
		loadFactor: s.loadFactor,
	}
	copy(out.slots, s.slots)
	return out
}

// String returns a representation like "{1, 2, 3}" in iteration order.
// It implements [fmt.Stringer].
func (s *Set[T]) String() string {
	return "{" + arrays.Join(s.ToSlice(), ", ") + "}"
}
