package psort

// The merge engine below is the classic adaptive run-merge ("TimSort")
// design: detect natural runs, extend short ones with a stable binary
// insertion sort, and merge pending runs under a stack-balance invariant,
// switching to galloping (exponential search) when one run dominates.

const (
	// minMerge is the smallest range that uses the full run-merge
	// machinery; anything shorter is handled by a single binary
	// insertion sort pass.
	minMerge = 32

	// minGallop is the number of consecutive merge "wins" one run needs
	// before the merge switches from linear to galloping mode.
	minGallop = 7

	// initialTmpLen is the starting size of the merge scratch buffer;
	// it grows on demand and never needs to exceed half the range.
	initialTmpLen = 256
)

// timSorter holds the per-call state of one sort: the pending-run stack,
// the scratch buffer, and the adaptive gallop threshold.
type timSorter[T any] struct {
	a   []T
	cmp Compare[T]

	// Adaptive gallop threshold. Starts at minGallop, decreases when
	// galloping pays off and increases when it does not.
	gallop int

	tmp []T

	// Pending-run stack. Invariant after every push-and-collapse:
	//   runLen[i-3] > runLen[i-2] + runLen[i-1]
	//   runLen[i-2] > runLen[i-1]
	runBase   []int
	runLen    []int
	stackSize int
}

func newTimSorter[T any](a []T, cmp Compare[T], n int) *timSorter[T] {
	// Stack depth bounds taken from the reference TimSort analysis; the
	// balance invariant keeps the pending-run count within these limits
	// for the corresponding input sizes.
	var stackLen int
	switch {
	case n < 120:
		stackLen = 5
	case n < 1542:
		stackLen = 10
	case n < 119151:
		stackLen = 24
	default:
		stackLen = 49
	}

	tmpLen := initialTmpLen
	if n < 2*initialTmpLen {
		tmpLen = n >> 1
	}

	return &timSorter[T]{
		a:       a,
		cmp:     cmp,
		gallop:  minGallop,
		tmp:     make([]T, tmpLen),
		runBase: make([]int, stackLen),
		runLen:  make([]int, stackLen),
	}
}

// sortRange sorts a[lo:hi] with cmp. Callers validate the range.
func sortRange[T any](a []T, lo, hi int, cmp Compare[T]) {
	nRemaining := hi - lo
	if nRemaining < 2 {
		return
	}

	if nRemaining < minMerge {
		initRunLen := countRunAndMakeAscending(a, lo, hi, cmp)
		binarySort(a, lo, hi, lo+initRunLen, cmp)
		return
	}

	s := newTimSorter(a, cmp, nRemaining)
	minRun := minRunLength(nRemaining)
	for {
		runLen := countRunAndMakeAscending(a, lo, hi, cmp)

		// Natural run too short: extend it to min(minRun, nRemaining)
		// with a stable binary insertion sort.
		if runLen < minRun {
			force := nRemaining
			if force > minRun {
				force = minRun
			}
			binarySort(a, lo, lo+force, lo+runLen, cmp)
			runLen = force
		}

		s.pushRun(lo, runLen)
		s.mergeCollapse()

		lo += runLen
		nRemaining -= runLen
		if nRemaining == 0 {
			break
		}
	}

	s.mergeForceCollapse()
}

// minRunLength returns the minimum acceptable run length for a range of n
// elements: n itself when n < minMerge, otherwise a value k with
// minMerge/2 <= k <= minMerge chosen so that n/k is close to, but
// strictly less than, an exact power of two. This keeps the final merges
// balanced.
func minRunLength(n int) int {
	r := 0 // becomes 1 if any bit shifted off was set
	for n >= minMerge {
		r |= n & 1
		n >>= 1
	}
	return n + r
}

// countRunAndMakeAscending finds the longest run starting at lo and
// returns its length. A strictly descending run is reversed in place;
// strictness is what preserves stability.
func countRunAndMakeAscending[T any](a []T, lo, hi int, cmp Compare[T]) int {
	runHi := lo + 1
	if runHi == hi {
		return 1
	}

	if cmp(a[runHi], a[lo]) < 0 { // descending
		runHi++
		for runHi < hi && cmp(a[runHi], a[runHi-1]) < 0 {
			runHi++
		}
		reverseRange(a, lo, runHi)
	} else { // ascending
		runHi++
		for runHi < hi && cmp(a[runHi], a[runHi-1]) >= 0 {
			runHi++
		}
	}

	return runHi - lo
}

// reverseRange reverses a[lo:hi] in place.
func reverseRange[T any](a []T, lo, hi int) {
	hi--
	for lo < hi {
		a[lo], a[hi] = a[hi], a[lo]
		lo++
		hi--
	}
}

// binarySort sorts a[lo:hi] by stable binary insertion, assuming
// a[lo:start] is already sorted.
func binarySort[T any](a []T, lo, hi, start int, cmp Compare[T]) {
	if start == lo {
		start++
	}
	for ; start < hi; start++ {
		pivot := a[start]

		// Invariants: pivot >= all in [lo, left), pivot < all in
		// [right, start). Equal elements stay behind the pivot.
		left, right := lo, start
		for left < right {
			mid := int(uint(left+right) >> 1)
			if cmp(pivot, a[mid]) < 0 {
				right = mid
			} else {
				left = mid + 1
			}
		}

		n := start - left
		switch n {
		case 2:
			a[left+2] = a[left+1]
			a[left+1] = a[left]
		case 1:
			a[left+1] = a[left]
		default:
			copy(a[left+1:], a[left:left+n])
		}
		a[left] = pivot
	}
}

func (s *timSorter[T]) pushRun(base, length int) {
	s.runBase[s.stackSize] = base
	s.runLen[s.stackSize] = length
	s.stackSize++
}

// mergeCollapse restores the stack-balance invariant after a push,
// merging adjacent runs until both
//
//	runLen[n-2] > runLen[n-1] + runLen[n]
//	runLen[n-1] > runLen[n]
//
// hold for the top of the stack.
func (s *timSorter[T]) mergeCollapse() {
	for s.stackSize > 1 {
		n := s.stackSize - 2
		if n > 0 && s.runLen[n-1] <= s.runLen[n]+s.runLen[n+1] {
			if s.runLen[n-1] < s.runLen[n+1] {
				n--
			}
			s.mergeAt(n)
		} else if s.runLen[n] <= s.runLen[n+1] {
			s.mergeAt(n)
		} else {
			break
		}
	}
}

// mergeForceCollapse merges all remaining runs down to one.
func (s *timSorter[T]) mergeForceCollapse() {
	for s.stackSize > 1 {
		n := s.stackSize - 2
		if n > 0 && s.runLen[n-1] < s.runLen[n+1] {
			n--
		}
		s.mergeAt(n)
	}
}

// mergeAt merges the runs at stack indexes i and i+1; i must be
// stackSize-2 or stackSize-3.
func (s *timSorter[T]) mergeAt(i int) {
	base1, len1 := s.runBase[i], s.runLen[i]
	base2, len2 := s.runBase[i+1], s.runLen[i+1]

	s.runLen[i] = len1 + len2
	if i == s.stackSize-3 {
		s.runBase[i+1] = s.runBase[i+2]
		s.runLen[i+1] = s.runLen[i+2]
	}
	s.stackSize--

	// Skip the leading elements of run 1 that are already in place
	// (everything <= the first element of run 2).
	k := gallopRight(s.a[base2], s.a, base1, len1, 0, s.cmp)
	base1 += k
	len1 -= k
	if len1 == 0 {
		return
	}

	// Symmetrically, skip the trailing elements of run 2 that are
	// already in place (everything >= the last element of run 1).
	len2 = gallopLeft(s.a[base1+len1-1], s.a, base2, len2, len2-1, s.cmp)
	if len2 == 0 {
		return
	}

	// Merge the remainder, copying the shorter run into tmp.
	if len1 <= len2 {
		s.mergeLo(base1, len1, base2, len2)
	} else {
		s.mergeHi(base1, len1, base2, len2)
	}
}

// ensureTmp grows the scratch buffer to at least n elements.
func (s *timSorter[T]) ensureTmp(n int) []T {
	if n > len(s.tmp) {
		newLen := 2 * len(s.tmp)
		if newLen < n {
			newLen = n
		}
		s.tmp = make([]T, newLen)
	}
	return s.tmp
}

// gallopLeft returns k in [0, n] such that a[base+k-1] < key <= a[base+k]:
// the leftmost insertion point for key in the sorted range a[base:base+n].
// hint is the index at which to begin the exponential search, 0 <= hint < n;
// the closer hint is to the result, the faster the search.
func gallopLeft[T any](key T, a []T, base, n, hint int, cmp Compare[T]) int {
	lastOfs, ofs := 0, 1
	if cmp(key, a[base+hint]) > 0 {
		// Gallop right until a[base+hint+lastOfs] < key <= a[base+hint+ofs].
		maxOfs := n - hint
		for ofs < maxOfs && cmp(key, a[base+hint+ofs]) > 0 {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 { // overflow
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs += hint
		ofs += hint
	} else {
		// Gallop left until a[base+hint-ofs] < key <= a[base+hint-lastOfs].
		maxOfs := hint + 1
		for ofs < maxOfs && cmp(key, a[base+hint-ofs]) <= 0 {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 { // overflow
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs, ofs = hint-ofs, hint-lastOfs
	}

	// Binary search the remaining range with invariant
	// a[base+lastOfs] < key <= a[base+ofs].
	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + (ofs-lastOfs)>>1
		if cmp(key, a[base+m]) > 0 {
			lastOfs = m + 1
		} else {
			ofs = m
		}
	}
	return ofs
}

// gallopRight is like gallopLeft except that it returns the rightmost
// insertion point: k in [0, n] such that a[base+k-1] <= key < a[base+k].
func gallopRight[T any](key T, a []T, base, n, hint int, cmp Compare[T]) int {
	lastOfs, ofs := 0, 1
	if cmp(key, a[base+hint]) < 0 {
		// Gallop left until a[base+hint-ofs] <= key < a[base+hint-lastOfs].
		maxOfs := hint + 1
		for ofs < maxOfs && cmp(key, a[base+hint-ofs]) < 0 {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 { // overflow
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs, ofs = hint-ofs, hint-lastOfs
	} else {
		// Gallop right until a[base+hint+lastOfs] <= key < a[base+hint+ofs].
		maxOfs := n - hint
		for ofs < maxOfs && cmp(key, a[base+hint+ofs]) >= 0 {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 { // overflow
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs += hint
		ofs += hint
	}

	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + (ofs-lastOfs)>>1
		if cmp(key, a[base+m]) < 0 {
			ofs = m
		} else {
			lastOfs = m + 1
		}
	}
	return ofs
}

// mergeLo merges two adjacent runs in place, copying the first (shorter)
// run into tmp. Requires len1 <= len2, both > 0, and base1+len1 == base2.
func (s *timSorter[T]) mergeLo(base1, len1, base2, len2 int) {
	a := s.a
	tmp := s.ensureTmp(len1)
	copy(tmp, a[base1:base1+len1])

	cursor1 := 0     // into tmp
	cursor2 := base2 // into a
	dest := base1    // into a

	// Move the first element of run 2 and handle the degenerate cases.
	a[dest] = a[cursor2]
	dest++
	cursor2++
	len2--
	if len2 == 0 {
		copy(a[dest:], tmp[cursor1:cursor1+len1])
		return
	}
	if len1 == 1 {
		copy(a[dest:], a[cursor2:cursor2+len2])
		a[dest+len2] = tmp[cursor1] // last element of run 1 ends the merge
		return
	}

	cmp := s.cmp
	gallop := s.gallop
outer:
	for {
		count1 := 0 // consecutive wins by run 1
		count2 := 0 // consecutive wins by run 2

		// Linear mode: merge one element at a time until one run
		// starts winning consistently.
		for {
			if cmp(a[cursor2], tmp[cursor1]) < 0 {
				a[dest] = a[cursor2]
				dest++
				cursor2++
				count2++
				count1 = 0
				len2--
				if len2 == 0 {
					break outer
				}
			} else {
				a[dest] = tmp[cursor1]
				dest++
				cursor1++
				count1++
				count2 = 0
				len1--
				if len1 == 1 {
					break outer
				}
			}
			if (count1 | count2) >= gallop {
				break
			}
		}

		// Galloping mode: one run is dominating, so advance through it
		// with exponential search until neither run sustains wins.
		for {
			count1 = gallopRight(a[cursor2], tmp, cursor1, len1, 0, cmp)
			if count1 != 0 {
				copy(a[dest:], tmp[cursor1:cursor1+count1])
				dest += count1
				cursor1 += count1
				len1 -= count1
				if len1 <= 1 {
					break outer
				}
			}
			a[dest] = a[cursor2]
			dest++
			cursor2++
			len2--
			if len2 == 0 {
				break outer
			}

			count2 = gallopLeft(tmp[cursor1], a, cursor2, len2, 0, cmp)
			if count2 != 0 {
				copy(a[dest:], a[cursor2:cursor2+count2])
				dest += count2
				cursor2 += count2
				len2 -= count2
				if len2 == 0 {
					break outer
				}
			}
			a[dest] = tmp[cursor1]
			dest++
			cursor1++
			len1--
			if len1 == 1 {
				break outer
			}
			gallop--
			if count1 < minGallop && count2 < minGallop {
				break
			}
		}
		if gallop < 0 {
			gallop = 0
		}
		gallop += 2 // penalize leaving gallop mode
	}
	if gallop < 1 {
		gallop = 1
	}
	s.gallop = gallop

	switch len1 {
	case 1:
		copy(a[dest:], a[cursor2:cursor2+len2])
		a[dest+len2] = tmp[cursor1] // last element of run 1 ends the merge
	default:
		copy(a[dest:], tmp[cursor1:cursor1+len1])
	}
}

// mergeHi is the mirror of mergeLo for len1 > len2: the second (shorter)
// run is copied into tmp and the merge proceeds from the high end.
func (s *timSorter[T]) mergeHi(base1, len1, base2, len2 int) {
	a := s.a
	tmp := s.ensureTmp(len2)
	copy(tmp, a[base2:base2+len2])

	cursor1 := base1 + len1 - 1 // into a
	cursor2 := len2 - 1         // into tmp
	dest := base2 + len2 - 1    // into a

	a[dest] = a[cursor1]
	dest--
	cursor1--
	len1--
	if len1 == 0 {
		copy(a[dest-(len2-1):], tmp[:len2])
		return
	}
	if len2 == 1 {
		dest -= len1
		cursor1 -= len1
		copy(a[dest+1:], a[cursor1+1:cursor1+1+len1])
		a[dest] = tmp[cursor2]
		return
	}

	cmp := s.cmp
	gallop := s.gallop
outer:
	for {
		count1 := 0 // consecutive wins by run 1
		count2 := 0 // consecutive wins by run 2

		for {
			if cmp(tmp[cursor2], a[cursor1]) < 0 {
				a[dest] = a[cursor1]
				dest--
				cursor1--
				count1++
				count2 = 0
				len1--
				if len1 == 0 {
					break outer
				}
			} else {
				a[dest] = tmp[cursor2]
				dest--
				cursor2--
				count2++
				count1 = 0
				len2--
				if len2 == 1 {
					break outer
				}
			}
			if (count1 | count2) >= gallop {
				break
			}
		}

		for {
			count1 = len1 - gallopRight(tmp[cursor2], a, base1, len1, len1-1, cmp)
			if count1 != 0 {
				dest -= count1
				cursor1 -= count1
				len1 -= count1
				copy(a[dest+1:], a[cursor1+1:cursor1+1+count1])
				if len1 == 0 {
					break outer
				}
			}
			a[dest] = tmp[cursor2]
			dest--
			cursor2--
			len2--
			if len2 == 1 {
				break outer
			}

			count2 = len2 - gallopLeft(a[cursor1], tmp, 0, len2, len2-1, cmp)
			if count2 != 0 {
				dest -= count2
				cursor2 -= count2
				len2 -= count2
				copy(a[dest+1:], tmp[cursor2+1:cursor2+1+count2])
				if len2 <= 1 {
					break outer
				}
			}
			a[dest] = a[cursor1]
			dest--
			cursor1--
			len1--
			if len1 == 0 {
				break outer
			}
			gallop--
			if count1 < minGallop && count2 < minGallop {
				break
			}
		}
		if gallop < 0 {
			gallop = 0
		}
		gallop += 2 // penalize leaving gallop mode
	}
	if gallop < 1 {
		gallop = 1
	}
	s.gallop = gallop

	switch len2 {
	case 1:
		dest -= len1
		cursor1 -= len1
		copy(a[dest+1:], a[cursor1+1:cursor1+1+len1])
		a[dest] = tmp[cursor2] // first element of run 2 fronts the merge
	default:
		copy(a[dest-(len2-1):], tmp[:len2])
	}
}
