package pset

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Element is the set of primitive types a Set can hold.
type Element interface {
	constraints.Integer | constraints.Float
}

// nanBits is the single bit pattern every NaN input collapses to, so
// that NaN is one member like any other value.
const nanBits = 0x7ff8000000000000

// hashBits returns a canonical 64-bit pattern identifying v: two values
// get the same pattern exactly when the set treats them as the same
// member. Floats hash through their IEEE bit representation, with the
// two cases where bit identity and numeric identity disagree pinned
// down: all NaN payloads collapse to one pattern, and -0.0 maps to
// +0.0.
func hashBits[T Element](v T) uint64 {
	switch x := any(v).(type) {
	case float32:
		if x != x {
			return nanBits
		}
		if x == 0 {
			return 0
		}
		return uint64(math.Float32bits(x))
	case float64:
		if x != x {
			return nanBits
		}
		if x == 0 {
			return 0
		}
		return math.Float64bits(x)
	default:
		return uint64(int64(v))
	}
}

// sameValue reports whether a and b are the same member. Comparing
// canonical bit patterns instead of using == keeps membership aligned
// with hashing: NaN equals NaN, and -0.0 equals +0.0.
func sameValue[T Element](a, b T) bool {
	return hashBits(a) == hashBits(b)
}

// mix64 is a splitmix64-style finalizer. Sequential keys would otherwise
// land in sequential slots and form long probe chains; the multiply-xor
// cascade spreads every input bit across the masked result.
func mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// nextPow2 returns the smallest power of two >= n (and >= 1).
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
