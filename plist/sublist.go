package plist

import "fmt"

// SubList returns a live view of the half-open range [from, to) of this
// view. No data is copied: the new node shares the root's backing store
// and is linked into the view graph, so structural edits made through
// any node remain visible — and fail-fast — through every other node.
//
// Returns [ErrInvalidRange] when from/to do not describe a sub-range.
func (l *List[T]) SubList(from, to int) (*List[T], error) {
	if from < 0 || from > to || to > l.Len() {
		return nil, fmt.Errorf("%w: [%d, %d) of size %d", ErrInvalidRange, from, to, l.Len())
	}

	v := &List[T]{
		root:     l.root,
		parent:   l,
		from:     l.from + from,
		to:       l.from + to,
		size:     l.root.size,
		data:     l.root.data,
		modCount: l.modCount,
	}

	// Link v into l's child ring. The ring is circular and anchored at
	// l.child; ordering within the ring is irrelevant.
	if l.child == nil {
		v.sibling = v
		l.child = v
	} else {
		v.sibling = l.child.sibling
		l.child.sibling = v
	}
	return v, nil
}

// insertAbs inserts values at absolute index i of the root's store on
// behalf of the edited view, then propagates the shift through the whole
// graph. Must be called on the root.
func (r *List[T]) insertAbs(edited *List[T], i int, values ...T) {
	n := len(values)
	if r.size+n > len(r.data) {
		r.grow(r.size + n)
	}
	copy(r.data[i+n:r.size+n], r.data[i:r.size])
	copy(r.data[i:], values)
	r.size += n
	r.propagate(edited, i, n)
}

// removeAbs removes n elements starting at absolute index i of the
// root's store on behalf of the edited view, then propagates the shift.
// Must be called on the root.
func (r *List[T]) removeAbs(edited *List[T], i, n int) {
	copy(r.data[i:], r.data[i+n:r.size])
	r.size -= n
	r.propagate(edited, i, -n)
}

// propagate re-establishes graph consistency after a structural change
// at absolute index i with element-count delta (positive for insertion,
// negative for removal, zero for an order-only "touch" such as a sort).
//
// Every node mirrors the root's backing store and size and bumps its
// modification counter. View bounds move by delta when they lie past the
// edit point, saturating at i so a boundary never crosses below it. A
// bound sitting exactly at i is the ambiguous case: it moves so that the
// edited view — and the ancestors the edit logically passed through —
// keep the inserted elements, while unrelated neighbours exclude them.
// Must be called on the root.
func (r *List[T]) propagate(edited *List[T], i, delta int) {
	r.walk(func(n *List[T]) {
		n.modCount++
		n.data = r.data
		n.size = r.size
		if delta == 0 || n == r {
			return
		}
		onPath := n.isOnEditPath(edited)
		if n.from > i || (n.from == i && !onPath) {
			n.from += delta
			if n.from < i {
				n.from = i
			}
		}
		if n.to > i || (n.to == i && onPath) {
			n.to += delta
			if n.to < i {
				n.to = i
			}
		}
		// An empty off-path view sitting exactly at the edit point has
		// only its lower bound shifted above; drag the upper bound along
		// so the view slides past the insertion whole (0 <= from <= to).
		if n.to < n.from {
			n.to = n.from
		}
	})
}

// isOnEditPath reports whether n is the edited node or one of its
// ancestors.
func (n *List[T]) isOnEditPath(edited *List[T]) bool {
	for e := edited; e != nil; e = e.parent {
		if e == n {
			return true
		}
	}
	return false
}

// walk visits n and, recursively, every view nested beneath it: the
// child anchor first, then around the sibling ring.
func (n *List[T]) walk(visit func(*List[T])) {
	visit(n)
	if c := n.child; c != nil {
		v := c
		for {
			v.walk(visit)
			v = v.sibling
			if v == c {
				break
			}
		}
	}
}
