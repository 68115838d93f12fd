package stats

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlmath/ring"
)

// Variance is an unbounded Welford variance processor: a running mean plus
// the accumulated moment Σ(xᵢ-mean)². The zero value is ready to use.
//
// The moment is mathematically non-negative; floating round-off may drive
// it a few ulps below zero, which is tolerated (see package doc).
type Variance[T constraints.Float] struct {
	mean   Mean[T]
	moment T
}

// Push adds one observation using Welford's identity:
// moment += (v-oldMean)·(v-newMean).
func (s *Variance[T]) Push(v T) {
	old := s.mean.Mean()
	s.mean.Push(v)
	s.moment += (v - old) * (v - s.mean.Mean())

	assertMoment(s.moment)
}

// PushAll adds observations in order; equivalent to scalar pushes.
func (s *Variance[T]) PushAll(values ...T) {
	for _, v := range values {
		s.Push(v)
	}
}

// Rollback removes one previously pushed observation — Push run in
// reverse: the mean is rolled back first, then the same cross term is
// subtracted. Same caller contract as Mean.Rollback.
func (s *Variance[T]) Rollback(v T) {
	cur := s.mean.Mean()
	s.mean.Rollback(v)
	if s.mean.Count() == 0 {
		s.moment = 0

		return
	}
	s.moment -= (v - s.mean.Mean()) * (v - cur)

	assertMoment(s.moment)
}

// Replace updates one previously pushed observation in place:
// moment += (to-from)·(to+from-oldMean-newMean). Same caller contract as
// Mean.Replace.
func (s *Variance[T]) Replace(from, to T) {
	old := s.mean.Mean()
	s.mean.Replace(from, to)
	s.moment += (to - from) * (to + from - old - s.mean.Mean())

	assertMoment(s.moment)
}

// Variance reports the population variance moment/count (0 when count < 1).
func (s *Variance[T]) Variance() T {
	if s.mean.Count() < 1 {
		return 0
	}

	return s.moment / T(s.mean.Count())
}

// UnbiasedVariance reports the sample variance moment/(count-1)
// (0 when count < 2).
func (s *Variance[T]) UnbiasedVariance() T {
	if s.mean.Count() < 2 {
		return 0
	}

	return s.moment / T(s.mean.Count()-1)
}

// StdDev reports sqrt of the population variance, clamped at zero against
// round-off drift.
func (s *Variance[T]) StdDev() T { return sqrt(clampNonNeg(s.Variance())) }

// UnbiasedStdDev reports sqrt of the sample variance, clamped at zero.
func (s *Variance[T]) UnbiasedStdDev() T { return sqrt(clampNonNeg(s.UnbiasedVariance())) }

// Mean reports the current running mean.
func (s *Variance[T]) Mean() T { return s.mean.Mean() }

// Count reports the number of live observations.
func (s *Variance[T]) Count() int { return s.mean.Count() }

// Moment reports the raw accumulated moment Σ(xᵢ-mean)².
func (s *Variance[T]) Moment() T { return s.moment }

// Reset returns the processor to its zero state.
func (s *Variance[T]) Reset() { *s = Variance[T]{} }

// MovingVariance is the fixed-window Welford variance over the most recent
// Cap() observations. While filling it behaves like Variance; once full,
// each push evicts the oldest value via Replace, and reads divide by the
// capacity rather than the live count.
type MovingVariance[T constraints.Float] struct {
	window *ring.Buffer[T]
	v      Variance[T]
}

// NewMovingVariance builds a moving variance over a window of the given
// capacity. Returns ErrCapacity when capacity < 2 — a one-element window
// has no variance to estimate.
func NewMovingVariance[T constraints.Float](capacity int) (*MovingVariance[T], error) {
	if capacity < 2 {
		return nil, ErrCapacity
	}
	w, err := ring.New[T](capacity)
	if err != nil {
		return nil, ErrCapacity
	}

	return &MovingVariance[T]{window: w}, nil
}

// Push adds one observation, sliding the window once it is full.
func (s *MovingVariance[T]) Push(v T) {
	if evicted, ok := s.window.Append(v); ok {
		s.v.Replace(evicted, v)

		return
	}
	s.v.Push(v)
}

// PushAll adds observations in order.
func (s *MovingVariance[T]) PushAll(values ...T) {
	for _, v := range values {
		s.Push(v)
	}
}

// Variance reports the windowed population variance, clamped at zero.
// Once the window is full the divisor is the capacity.
func (s *MovingVariance[T]) Variance() T {
	if s.window.Full() {
		return clampNonNeg(s.v.Moment() * (1 / T(s.window.Cap())))
	}

	return clampNonNeg(s.v.Variance())
}

// UnbiasedVariance reports the windowed sample variance, clamped at zero.
func (s *MovingVariance[T]) UnbiasedVariance() T {
	if s.window.Full() {
		return clampNonNeg(s.v.Moment() * (1 / T(s.window.Cap()-1)))
	}

	return clampNonNeg(s.v.UnbiasedVariance())
}

// StdDev reports sqrt of the windowed population variance.
func (s *MovingVariance[T]) StdDev() T { return sqrt(s.Variance()) }

// Mean reports the mean of the buffered observations.
func (s *MovingVariance[T]) Mean() T { return s.v.Mean() }

// Count reports the number of buffered observations.
func (s *MovingVariance[T]) Count() int { return s.window.Len() }

// Cap reports the fixed window capacity.
func (s *MovingVariance[T]) Cap() int { return s.window.Cap() }

// Reset empties the window and zeroes the running state.
func (s *MovingVariance[T]) Reset() {
	s.window.Reset()
	s.v.Reset()
}
