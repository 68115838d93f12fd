package stats

import (
	"math"

	"golang.org/x/exp/constraints"
)

// sqrt is the generic square root. One round through float64 is exact for
// float32 inputs up to the final rounding.
func sqrt[T constraints.Float](v T) T {
	return T(math.Sqrt(float64(v)))
}

// clampNonNeg absorbs the few-ulp negative drift a moment can accumulate
// from round-off.
func clampNonNeg[T constraints.Float](v T) T {
	if v < 0 {
		return 0
	}

	return v
}

// XY is one paired observation for the two-variable estimators.
type XY[T constraints.Float] struct {
	X, Y T
}
