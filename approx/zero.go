package approx

import "golang.org/x/exp/constraints"

// The zero family applies the relational predicates against exact zero.
// No magnitude information is available in that comparison, so the
// convenience forms use Default() rather than a derived tolerance.

// IsZeroTol reports |v| <= tol.
func IsZeroTol[T constraints.Float](v T, tol Tolerance[T]) bool {
	return abs(v) <= tol.value
}

// IsZero reports whether v is zero under the default tolerance.
func IsZero[T constraints.Float](v T) bool {
	return IsZeroTol(v, Default[T]())
}

// IsNonzeroTol reports |v| > tol.
func IsNonzeroTol[T constraints.Float](v T, tol Tolerance[T]) bool {
	return abs(v) > tol.value
}

// IsNonzero reports whether v is distinguishable from zero under the
// default tolerance.
func IsNonzero[T constraints.Float](v T) bool {
	return IsNonzeroTol(v, Default[T]())
}

// IsPositiveTol reports v > tol.
func IsPositiveTol[T constraints.Float](v T, tol Tolerance[T]) bool {
	return v > tol.value
}

// IsPositive reports whether v is strictly positive under the default
// tolerance.
func IsPositive[T constraints.Float](v T) bool {
	return IsPositiveTol(v, Default[T]())
}

// IsNegativeTol reports v < -tol.
func IsNegativeTol[T constraints.Float](v T, tol Tolerance[T]) bool {
	return v < -tol.value
}

// IsNegative reports whether v is strictly negative under the default
// tolerance.
func IsNegative[T constraints.Float](v T) bool {
	return IsNegativeTol(v, Default[T]())
}

// IsNotPositiveTol reports v <= tol.
func IsNotPositiveTol[T constraints.Float](v T, tol Tolerance[T]) bool {
	return v <= tol.value
}

// IsNotPositive reports whether v is zero or negative under the default
// tolerance.
func IsNotPositive[T constraints.Float](v T) bool {
	return IsNotPositiveTol(v, Default[T]())
}

// IsNotNegativeTol reports v >= -tol.
func IsNotNegativeTol[T constraints.Float](v T, tol Tolerance[T]) bool {
	return v >= -tol.value
}

// IsNotNegative reports whether v is zero or positive under the default
// tolerance.
func IsNotNegative[T constraints.Float](v T) bool {
	return IsNotNegativeTol(v, Default[T]())
}
