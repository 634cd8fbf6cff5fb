package psort

import "errors"

// Sentinel errors returned by the range-checked sort entry points.
//
// Use [errors.Is] for comparisons:
//
//	err := psort.SortRange(a, from, to, cmp)
//	if errors.Is(err, psort.ErrInvalidRange) {
//	    // from/to do not describe a sub-range of a
//	}
var (
	// ErrInvalidRange is returned when a [from, to) range is negative,
	// inverted, or extends past the end of the slice. The slice has not
	// been touched when this error is returned.
	ErrInvalidRange = errors.New("psort: invalid sort range")

	// ErrLengthMismatch is returned by the paired variants when the
	// companion slice is shorter than the keys being sorted. Neither
	// slice has been touched when this error is returned.
	ErrLengthMismatch = errors.New("psort: paired slices have mismatched lengths")
)
