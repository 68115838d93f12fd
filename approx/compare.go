package approx

import "golang.org/x/exp/constraints"

// abs returns |v| without branching on the type.
func abs[T constraints.Float](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// EqualTol reports |a-b| <= tol.
func EqualTol[T constraints.Float](a, b T, tol Tolerance[T]) bool {
	return abs(a-b) <= tol.value
}

// Equal reports whether a and b are equal under a tolerance derived from
// their magnitudes.
func Equal[T constraints.Float](a, b T) bool {
	return EqualTol(a, b, For(a, b))
}

// NotEqualTol reports |b-a| > tol.
//
// The operand order inside the absolute value is kept as b-a; it is
// mathematically identical to a-b and preserved for exactness.
func NotEqualTol[T constraints.Float](a, b T, tol Tolerance[T]) bool {
	return abs(b-a) > tol.value
}

// NotEqual reports whether a and b differ under a tolerance derived from
// their magnitudes.
func NotEqual[T constraints.Float](a, b T) bool {
	return NotEqualTol(a, b, For(a, b))
}

// GreaterTol reports a > b+tol.
func GreaterTol[T constraints.Float](a, b T, tol Tolerance[T]) bool {
	return a > b+tol.value
}

// Greater reports whether a is greater than b beyond the derived tolerance.
func Greater[T constraints.Float](a, b T) bool {
	return GreaterTol(a, b, For(a, b))
}

// LessTol reports a < b-tol.
func LessTol[T constraints.Float](a, b T, tol Tolerance[T]) bool {
	return a < b-tol.value
}

// Less reports whether a is less than b beyond the derived tolerance.
func Less[T constraints.Float](a, b T) bool {
	return LessTol(a, b, For(a, b))
}

// GreaterOrEqualTol reports a >= b-tol.
func GreaterOrEqualTol[T constraints.Float](a, b T, tol Tolerance[T]) bool {
	return a >= b-tol.value
}

// GreaterOrEqual reports whether a is greater than or tolerant-equal to b.
func GreaterOrEqual[T constraints.Float](a, b T) bool {
	return GreaterOrEqualTol(a, b, For(a, b))
}

// LessOrEqualTol reports a <= b+tol.
func LessOrEqualTol[T constraints.Float](a, b T, tol Tolerance[T]) bool {
	return a <= b+tol.value
}

// LessOrEqual reports whether a is less than or tolerant-equal to b.
func LessOrEqual[T constraints.Float](a, b T) bool {
	return LessOrEqualTol(a, b, For(a, b))
}

// EqualAlsoGreaterTol evaluates equality and strict greaterness in a single
// pass: greater = a > b+tol, eq = a >= b-tol && !greater. The pair never
// reports both flags at once.
func EqualAlsoGreaterTol[T constraints.Float](a, b T, tol Tolerance[T]) (eq, greater bool) {
	greater = a > b+tol.value
	eq = a >= b-tol.value && !greater

	return eq, greater
}

// EqualAlsoGreater is EqualAlsoGreaterTol with the derived tolerance.
func EqualAlsoGreater[T constraints.Float](a, b T) (eq, greater bool) {
	return EqualAlsoGreaterTol(a, b, For(a, b))
}

// EqualAlsoLessTol evaluates equality and strict lessness in a single pass:
// less = a < b-tol, eq = a <= b+tol && !less.
func EqualAlsoLessTol[T constraints.Float](a, b T, tol Tolerance[T]) (eq, less bool) {
	less = a < b-tol.value
	eq = a <= b+tol.value && !less

	return eq, less
}

// EqualAlsoLess is EqualAlsoLessTol with the derived tolerance.
func EqualAlsoLess[T constraints.Float](a, b T) (eq, less bool) {
	return EqualAlsoLessTol(a, b, For(a, b))
}

// EqualPtr compares two optional values given as pointers: nil equals nil,
// a nil and a value are always unequal, two values delegate to Equal.
func EqualPtr[T constraints.Float](a, b *T) bool {
	switch {
	case a == nil && b == nil:
		return true
	case a == nil || b == nil:
		return false
	}

	return Equal(*a, *b)
}

// NotEqualPtr is the negated optional comparison, delegating to NotEqual
// when both values are present.
func NotEqualPtr[T constraints.Float](a, b *T) bool {
	switch {
	case a == nil && b == nil:
		return false
	case a == nil || b == nil:
		return true
	}

	return NotEqual(*a, *b)
}
