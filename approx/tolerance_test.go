package approx_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlmath/approx"
	"github.com/stretchr/testify/assert"
)

// TestTol_NegativePanics verifies that wrapping a negative tolerance is
// treated as a programmer error.
func TestTol_NegativePanics(t *testing.T) {
	assert.Panics(t, func() { approx.Tol(-1e-9) }, "negative tolerance must panic")
}

// TestDefault_Value checks the default tolerance is exactly
// ToleranceScale machine epsilons.
func TestDefault_Value(t *testing.T) {
	eps := math.Nextafter(1, 2) - 1

	assert.Equal(t, approx.ToleranceScale*eps, approx.Default[float64]().Value())
}

// TestDefault_Float32 checks the float32 instantiation uses the float32
// machine epsilon, not the float64 one.
func TestDefault_Float32(t *testing.T) {
	eps32 := math.Nextafter32(1, 2) - 1

	assert.Equal(t, float32(approx.ToleranceScale)*eps32, approx.Default[float32]().Value())
}

// TestFor_ScalesWithMagnitude verifies that the derived tolerance grows
// with the largest operand magnitude and takes absolute values.
func TestFor_ScalesWithMagnitude(t *testing.T) {
	small := approx.For(1.0, 2.0).Value()
	large := approx.For(1.0, -1e6).Value()

	assert.Greater(t, large, small, "tolerance must scale with magnitude")
	assert.Equal(t, approx.For(1e6, 1.0).Value(), large, "sign must not matter")
}

// TestFor_FloorNeverZero verifies the clamp: zero magnitudes still yield a
// strictly positive tolerance.
func TestFor_FloorNeverZero(t *testing.T) {
	assert.Positive(t, approx.For(0.0).Value(), "tolerance must never collapse to zero")
}

// TestMag_Combinators checks the arithmetic propagation rules:
// Add/Sub sum, Mul doubles the product, Div doubles the quotient.
func TestMag_Combinators(t *testing.T) {
	a := approx.Mag(3.0)
	b := approx.Mag(-2.0) // magnitude is |value|

	assert.Equal(t, 2.0, b.Value())
	assert.Equal(t, 5.0, a.Add(b).Value())
	assert.Equal(t, 5.0, a.Sub(b).Value(), "Sub maps to the same sum as Add")
	assert.Equal(t, 12.0, a.Mul(b).Value())
	assert.Equal(t, 3.0, a.Div(b).Value())
}

// TestMag_MaxOfOperands verifies that a multi-operand magnitude is the max
// of the absolute values.
func TestMag_MaxOfOperands(t *testing.T) {
	assert.Equal(t, 7.0, approx.Mag(1.0, -7.0, 3.5).Value())
}
