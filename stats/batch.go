package stats

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlmath/approx"
)

// Moment is the result of a one-pass batch reduction over a full sample:
// count, mean and the moment Σ(xᵢ-mean)². Use it when the whole sample is
// in memory and streaming state is unnecessary.
type Moment[T constraints.Float] struct {
	Count int
	Mean  T
	M2    T
}

// MomentOf reduces values in a single Welford pass.
func MomentOf[T constraints.Float](values []T) Moment[T] {
	var m Moment[T]
	for _, v := range values {
		m.Count++
		old := m.Mean
		m.Mean += (v - old) / T(m.Count)
		m.M2 += (v - old) * (v - m.Mean)
	}

	return m
}

// Variance reports the population variance M2/count (0 when count < 1).
func (m Moment[T]) Variance() T {
	if m.Count < 1 {
		return 0
	}

	return m.M2 / T(m.Count)
}

// UnbiasedVariance reports the sample variance M2/(count-1)
// (0 when count < 2).
func (m Moment[T]) UnbiasedVariance() T {
	if m.Count < 2 {
		return 0
	}

	return m.M2 / T(m.Count-1)
}

// StdDev reports sqrt of the population variance.
func (m Moment[T]) StdDev() T { return sqrt(clampNonNeg(m.Variance())) }

// UnbiasedStdDev reports sqrt of the sample variance.
func (m Moment[T]) UnbiasedStdDev() T { return sqrt(clampNonNeg(m.UnbiasedVariance())) }

// Comoment is the result of a one-pass batch reduction over a paired
// sample: count, marginal means and the co-moment Σ(xᵢ-meanX)(yᵢ-meanY).
type Comoment[T constraints.Float] struct {
	Count        int
	MeanX, MeanY T
	C            T
}

// ComomentOf reduces paired values in a single pass. Returns
// ErrLengthMismatch when the slices differ in length.
func ComomentOf[T constraints.Float](xs, ys []T) (Comoment[T], error) {
	if len(xs) != len(ys) {
		return Comoment[T]{}, ErrLengthMismatch
	}

	var c Comoment[T]
	for i, x := range xs {
		y := ys[i]
		c.Count++
		c.MeanX += (x - c.MeanX) / T(c.Count)
		c.C += (x - c.MeanX) * (y - c.MeanY)
		c.MeanY += (y - c.MeanY) / T(c.Count)
	}

	return c, nil
}

// Covariance reports the population covariance C/count (0 when count < 1).
func (c Comoment[T]) Covariance() T {
	if c.Count < 1 {
		return 0
	}

	return c.C / T(c.Count)
}

// UnbiasedCovariance reports the sample covariance C/(count-1)
// (0 when count < 2).
func (c Comoment[T]) UnbiasedCovariance() T {
	if c.Count < 2 {
		return 0
	}

	return c.C / T(c.Count-1)
}

// FitLine computes the least-squares line through the paired sample in
// closed form, using the batch reducers. Returns ErrEmptyInput for an
// empty sample and ErrLengthMismatch for uneven slices. A constant-x
// sample yields slope 0.
func FitLine[T constraints.Float](xs, ys []T) (Line[T], error) {
	if len(xs) == 0 || len(ys) == 0 {
		return Line[T]{}, ErrEmptyInput
	}
	cm, err := ComomentOf(xs, ys)
	if err != nil {
		return Line[T]{}, err
	}
	mx := MomentOf(xs)

	var k T
	if mx.M2 >= approx.Eps[T]() {
		k = cm.C / mx.M2
	}

	return Line[T]{X0: cm.MeanX, Y0: cm.MeanY, K: k}, nil
}

// FitLineUniform fits y-values sampled at unit-spaced x = 0, 1, …, n-1.
// The x-moment comes from the closed-form uniform ladder (shift-invariant),
// so x is never iterated. Returns ErrEmptyInput for an empty sample.
func FitLineUniform[T constraints.Float](ys []T) (Line[T], error) {
	n := len(ys)
	if n == 0 {
		return Line[T]{}, ErrEmptyInput
	}

	meanX := T(n-1) / 2
	meanY := MomentOf(ys).Mean

	var comoment T
	for i, y := range ys {
		comoment += (T(i) - meanX) * (y - meanY)
	}

	var k T
	if mx := UniformMoment(n, T(1)); mx >= approx.Eps[T]() {
		k = comoment / mx
	}

	return Line[T]{X0: meanX, Y0: meanY, K: k}, nil
}
