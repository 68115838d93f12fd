package stats

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlmath/ring"
)

// Covariance is an unbounded single-pass covariance processor: two running
// means plus the co-moment Σ(xᵢ-meanX)(yᵢ-meanY). The zero value is ready
// to use.
type Covariance[T constraints.Float] struct {
	meanX, meanY Mean[T]
	comoment     T
}

// Push adds one paired observation. The x-mean is refreshed first and the
// cross term uses the y-mean from before its refresh:
// comoment += (x-newMeanX)·(y-oldMeanY). The ordering is load-bearing —
// refreshing the y-mean early breaks the identity.
func (s *Covariance[T]) Push(x, y T) {
	s.meanX.Push(x)
	s.comoment += (x - s.meanX.Mean()) * (y - s.meanY.Mean())
	s.meanY.Push(y)
}

// PushAll adds paired observations in order; equivalent to scalar pushes.
// Returns ErrLengthMismatch when the slices differ in length.
func (s *Covariance[T]) PushAll(xs, ys []T) error {
	if len(xs) != len(ys) {
		return ErrLengthMismatch
	}
	for i, x := range xs {
		s.Push(x, ys[i])
	}

	return nil
}

// Rollback removes one previously pushed pair — Push run in reverse: the
// y-mean is rolled back first, the cross term subtracted, then the x-mean
// rolled back. Same caller contract as Mean.Rollback.
func (s *Covariance[T]) Rollback(x, y T) {
	s.meanY.Rollback(y)
	s.comoment -= (x - s.meanX.Mean()) * (y - s.meanY.Mean())
	s.meanX.Rollback(x)
	if s.meanX.Count() == 0 {
		s.comoment = 0
	}
}

// Replace updates one previously pushed pair in place:
// comoment += (toY-fromY)·(toX-oldMeanX) + (toX-fromX)·(fromY-newMeanY).
// Same caller contract as Mean.Replace.
func (s *Covariance[T]) Replace(fromX, fromY, toX, toY T) {
	oldMX := s.meanX.Mean()
	s.meanX.Replace(fromX, toX)
	s.meanY.Replace(fromY, toY)
	s.comoment += (toY-fromY)*(toX-oldMX) + (toX-fromX)*(fromY-s.meanY.Mean())
}

// Covariance reports the population covariance comoment/count
// (0 when count < 1).
func (s *Covariance[T]) Covariance() T {
	if s.meanX.Count() < 1 {
		return 0
	}

	return s.comoment / T(s.meanX.Count())
}

// UnbiasedCovariance reports the sample covariance comoment/(count-1)
// (0 when count < 2).
func (s *Covariance[T]) UnbiasedCovariance() T {
	if s.meanX.Count() < 2 {
		return 0
	}

	return s.comoment / T(s.meanX.Count()-1)
}

// MeanX reports the running mean of the x marginal.
func (s *Covariance[T]) MeanX() T { return s.meanX.Mean() }

// MeanY reports the running mean of the y marginal.
func (s *Covariance[T]) MeanY() T { return s.meanY.Mean() }

// Count reports the number of live pairs.
func (s *Covariance[T]) Count() int { return s.meanX.Count() }

// Comoment reports the raw accumulated co-moment.
func (s *Covariance[T]) Comoment() T { return s.comoment }

// Reset returns the processor to its zero state.
func (s *Covariance[T]) Reset() { *s = Covariance[T]{} }

// MovingCovariance is the fixed-window covariance over the most recent
// Cap() pairs, sliding via eviction + Replace.
type MovingCovariance[T constraints.Float] struct {
	window *ring.Buffer[XY[T]]
	c      Covariance[T]
}

// NewMovingCovariance builds a moving covariance over a window of the
// given capacity. Returns ErrCapacity when capacity < 2.
func NewMovingCovariance[T constraints.Float](capacity int) (*MovingCovariance[T], error) {
	if capacity < 2 {
		return nil, ErrCapacity
	}
	w, err := ring.New[XY[T]](capacity)
	if err != nil {
		return nil, ErrCapacity
	}

	return &MovingCovariance[T]{window: w}, nil
}

// Push adds one paired observation, sliding the window once it is full.
func (s *MovingCovariance[T]) Push(x, y T) {
	if evicted, ok := s.window.Append(XY[T]{X: x, Y: y}); ok {
		s.c.Replace(evicted.X, evicted.Y, x, y)

		return
	}
	s.c.Push(x, y)
}

// PushAll adds paired observations in order. Returns ErrLengthMismatch
// when the slices differ in length.
func (s *MovingCovariance[T]) PushAll(xs, ys []T) error {
	if len(xs) != len(ys) {
		return ErrLengthMismatch
	}
	for i, x := range xs {
		s.Push(x, ys[i])
	}

	return nil
}

// Covariance reports the windowed population covariance. Once the window
// is full the divisor is the capacity. Covariance is legitimately signed,
// so no clamp applies.
func (s *MovingCovariance[T]) Covariance() T {
	if s.window.Full() {
		return s.c.Comoment() * (1 / T(s.window.Cap()))
	}

	return s.c.Covariance()
}

// UnbiasedCovariance reports the windowed sample covariance.
func (s *MovingCovariance[T]) UnbiasedCovariance() T {
	if s.window.Full() {
		return s.c.Comoment() * (1 / T(s.window.Cap()-1))
	}

	return s.c.UnbiasedCovariance()
}

// MeanX reports the windowed mean of the x marginal.
func (s *MovingCovariance[T]) MeanX() T { return s.c.MeanX() }

// MeanY reports the windowed mean of the y marginal.
func (s *MovingCovariance[T]) MeanY() T { return s.c.MeanY() }

// Count reports the number of buffered pairs.
func (s *MovingCovariance[T]) Count() int { return s.window.Len() }

// Cap reports the fixed window capacity.
func (s *MovingCovariance[T]) Cap() int { return s.window.Cap() }

// Reset empties the window and zeroes the running state.
func (s *MovingCovariance[T]) Reset() {
	s.window.Reset()
	s.c.Reset()
}
