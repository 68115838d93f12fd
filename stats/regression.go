package stats

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlmath/approx"
	"github.com/katalvlaran/lvlmath/ring"
)

// Line is a regression line in shifted form y = y0 + k·(x - x0), anchored
// at (X0, Y0) rather than at x=0. The shifted form loses far less
// precision than y = kx + b when the sample's x-mean sits far from zero.
type Line[T constraints.Float] struct {
	X0, Y0 T
	K      T
}

// At evaluates the line at x.
func (l Line[T]) At(x T) T { return l.Y0 + l.K*(x-l.X0) }

// Intercept reports the conventional y-axis intercept, At(0). Prefer At
// for evaluation; the intercept re-introduces the cancellation the
// shifted form avoids.
func (l Line[T]) Intercept() T { return l.At(0) }

// LinearRegression is an unbounded least-squares line fit, composed of one
// Variance processor for x and one Covariance processor:
// slope k = comoment/momentX, anchored at the running means. The zero
// value is ready to use.
type LinearRegression[T constraints.Float] struct {
	varX Variance[T]
	cov  Covariance[T]
}

// Push adds one paired observation.
func (s *LinearRegression[T]) Push(x, y T) {
	s.varX.Push(x)
	s.cov.Push(x, y)
}

// PushAll adds paired observations in order. Returns ErrLengthMismatch
// when the slices differ in length.
func (s *LinearRegression[T]) PushAll(xs, ys []T) error {
	if len(xs) != len(ys) {
		return ErrLengthMismatch
	}
	for i, x := range xs {
		s.Push(x, ys[i])
	}

	return nil
}

// Rollback removes one previously pushed pair. Same caller contract as
// Mean.Rollback.
func (s *LinearRegression[T]) Rollback(x, y T) {
	s.varX.Rollback(x)
	s.cov.Rollback(x, y)
}

// Replace updates one previously pushed pair in place.
func (s *LinearRegression[T]) Replace(fromX, fromY, toX, toY T) {
	s.varX.Replace(fromX, toX)
	s.cov.Replace(fromX, fromY, toX, toY)
}

// K reports the slope comoment/momentX — 0 when the x-moment is below
// machine epsilon, so a constant-x sample yields a flat line instead of a
// division blow-up.
func (s *LinearRegression[T]) K() T {
	mx := s.varX.Moment()
	if mx < approx.Eps[T]() {
		return 0
	}

	return s.cov.Comoment() / mx
}

// Line reports the current fit anchored at the running means.
func (s *LinearRegression[T]) Line() Line[T] {
	return Line[T]{X0: s.cov.MeanX(), Y0: s.cov.MeanY(), K: s.K()}
}

// Count reports the number of live pairs.
func (s *LinearRegression[T]) Count() int { return s.cov.Count() }

// Reset returns the processor to its zero state.
func (s *LinearRegression[T]) Reset() { *s = LinearRegression[T]{} }

// MovingLinearRegression is the fixed-window line fit over the most recent
// Cap() pairs.
type MovingLinearRegression[T constraints.Float] struct {
	window *ring.Buffer[XY[T]]
	r      LinearRegression[T]
}

// NewMovingLinearRegression builds a moving fit over a window of the given
// capacity. Returns ErrCapacity when capacity < 2.
func NewMovingLinearRegression[T constraints.Float](capacity int) (*MovingLinearRegression[T], error) {
	if capacity < 2 {
		return nil, ErrCapacity
	}
	w, err := ring.New[XY[T]](capacity)
	if err != nil {
		return nil, ErrCapacity
	}

	return &MovingLinearRegression[T]{window: w}, nil
}

// Push adds one paired observation, sliding the window once it is full.
func (s *MovingLinearRegression[T]) Push(x, y T) {
	if evicted, ok := s.window.Append(XY[T]{X: x, Y: y}); ok {
		s.r.Replace(evicted.X, evicted.Y, x, y)

		return
	}
	s.r.Push(x, y)
}

// PushAll adds paired observations in order. Returns ErrLengthMismatch
// when the slices differ in length.
func (s *MovingLinearRegression[T]) PushAll(xs, ys []T) error {
	if len(xs) != len(ys) {
		return ErrLengthMismatch
	}
	for i, x := range xs {
		s.Push(x, ys[i])
	}

	return nil
}

// K reports the windowed slope.
func (s *MovingLinearRegression[T]) K() T { return s.r.K() }

// Line reports the windowed fit.
func (s *MovingLinearRegression[T]) Line() Line[T] { return s.r.Line() }

// Count reports the number of buffered pairs.
func (s *MovingLinearRegression[T]) Count() int { return s.window.Len() }

// Cap reports the fixed window capacity.
func (s *MovingLinearRegression[T]) Cap() int { return s.window.Cap() }

// Reset empties the window and zeroes the running state.
func (s *MovingLinearRegression[T]) Reset() {
	s.window.Reset()
	s.r.Reset()
}
