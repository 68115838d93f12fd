package approx

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// ToleranceScale is the fixed multiple of machine epsilon used when a
// tolerance is derived from operand magnitudes. A comparison of two values
// near magnitude m admits an absolute difference of about eps·32·m.
const ToleranceScale = 32

// Eps returns the machine epsilon of T: the difference between 1 and the
// next representable value above 1.
func Eps[T constraints.Float]() T {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return T(math.Nextafter32(1, 2) - 1)
	}

	return T(math.Nextafter(1, 2) - 1)
}

// MaxFinite returns the largest finite value of T.
func MaxFinite[T constraints.Float]() T {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return T(math.MaxFloat32)
	}

	maxFloat64 := float64(math.MaxFloat64)

	return T(maxFloat64)
}

// Tolerance is the maximum admissible absolute difference under which two
// values of T are considered equal. It is immutable and has no identity
// beyond its value.
type Tolerance[T constraints.Float] struct {
	value T
}

// Tol wraps an explicit tolerance value.
//
// Precondition: v must be non-negative. A negative value is a programmer
// error and panics.
func Tol[T constraints.Float](v T) Tolerance[T] {
	if v < 0 {
		panic(fmt.Sprintf("approx: negative tolerance %v", v))
	}

	return Tolerance[T]{value: v}
}

// Default returns the tolerance used when no magnitude information is
// available, e.g. when comparing against exact zero: ToleranceScale·eps.
func Default[T constraints.Float]() Tolerance[T] {
	return Tolerance[T]{value: ToleranceScale * Eps[T]()}
}

// For derives a tolerance appropriate to the magnitude of the given
// operands: eps·clamp(ToleranceScale·max(|aᵢ|), eps, maxFinite).
func For[T constraints.Float](magnitudes ...T) Tolerance[T] {
	return Mag(magnitudes...).Tolerance()
}

// Value reports the underlying absolute tolerance.
func (t Tolerance[T]) Value() T { return t.value }

// Magnitude is the non-negative magnitude of operands about to be compared.
// It combines via max when built from several operands and via the
// arithmetic combinators when tolerances of derived quantities must be
// propagated. It is immutable.
type Magnitude[T constraints.Float] struct {
	value T
}

// Mag builds a Magnitude from one or more operand values, taking the
// maximum of their absolute values. Mag() with no arguments is the zero
// magnitude.
func Mag[T constraints.Float](values ...T) Magnitude[T] {
	var m T
	for _, v := range values {
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}

	return Magnitude[T]{value: m}
}

// Add is the magnitude of a sum: a + b.
func (m Magnitude[T]) Add(o Magnitude[T]) Magnitude[T] {
	return Magnitude[T]{value: m.value + o.value}
}

// Sub is the magnitude of a difference. Subtraction does not shrink the
// error bound, so it maps to the same sum as Add.
func (m Magnitude[T]) Sub(o Magnitude[T]) Magnitude[T] {
	return m.Add(o)
}

// Mul is the magnitude of a product: 2·a·b.
func (m Magnitude[T]) Mul(o Magnitude[T]) Magnitude[T] {
	return Magnitude[T]{value: 2 * m.value * o.value}
}

// Div is the magnitude of a quotient: 2·a/b.
func (m Magnitude[T]) Div(o Magnitude[T]) Magnitude[T] {
	return Magnitude[T]{value: 2 * m.value / o.value}
}

// Value reports the underlying non-negative magnitude.
func (m Magnitude[T]) Value() T { return m.value }

// Tolerance converts the magnitude into an absolute tolerance:
// eps·clamp(ToleranceScale·value, eps, maxFinite).
func (m Magnitude[T]) Tolerance() Tolerance[T] {
	eps := Eps[T]()

	s := ToleranceScale * m.value
	if s < eps {
		s = eps
	} else if mf := MaxFinite[T](); s > mf {
		s = mf
	}

	return Tolerance[T]{value: eps * s}
}
