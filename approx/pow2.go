package approx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// IsPowerOfTwo reports whether v is an exact power of two: positive with
// zero significand bits. This check is exact, never tolerant. Negative
// exponents are supported: IsPowerOfTwo(0.25) is true.
func IsPowerOfTwo[T constraints.Float](v T) bool {
	if v <= 0 {
		return false
	}

	// float32 values convert to float64 exactly, so one Frexp covers both.
	frac, _ := math.Frexp(float64(v))

	return frac == 0.5
}

// IsPowerOfTwoInt reports whether v is a positive integer with exactly one
// bit set.
func IsPowerOfTwoInt[T constraints.Integer](v T) bool {
	return v > 0 && v&(v-1) == 0
}
