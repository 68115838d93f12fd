package stats

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlmath/ring"
)

// Correlation is an unbounded Pearson correlation processor, composed of
// two marginal Variance processors and one Covariance processor:
// r = comoment / sqrt(momentX·momentY). The zero value is ready to use.
type Correlation[T constraints.Float] struct {
	varX, varY Variance[T]
	cov        Covariance[T]
}

// Push adds one paired observation.
func (s *Correlation[T]) Push(x, y T) {
	s.varX.Push(x)
	s.varY.Push(y)
	s.cov.Push(x, y)
}

// PushAll adds paired observations in order. Returns ErrLengthMismatch
// when the slices differ in length.
func (s *Correlation[T]) PushAll(xs, ys []T) error {
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
func (s *Correlation[T]) Rollback(x, y T) {
	s.varX.Rollback(x)
	s.varY.Rollback(y)
	s.cov.Rollback(x, y)
}

// Replace updates one previously pushed pair in place.
func (s *Correlation[T]) Replace(fromX, fromY, toX, toY T) {
	s.varX.Replace(fromX, toX)
	s.varY.Replace(fromY, toY)
	s.cov.Replace(fromX, fromY, toX, toY)
}

// Correlation reports Pearson's r in [-1, 1]; 0 when either marginal has
// no spread (degenerate sample), so a constant series never yields NaN.
func (s *Correlation[T]) Correlation() T {
	d := s.varX.Moment() * s.varY.Moment()
	if d <= 0 {
		return 0
	}

	return s.cov.Comoment() / sqrt(d)
}

// Count reports the number of live pairs.
func (s *Correlation[T]) Count() int { return s.cov.Count() }

// Reset returns the processor to its zero state.
func (s *Correlation[T]) Reset() { *s = Correlation[T]{} }

// MovingCorrelation is the fixed-window Pearson correlation over the most
// recent Cap() pairs.
type MovingCorrelation[T constraints.Float] struct {
	window *ring.Buffer[XY[T]]
	c      Correlation[T]
}

// NewMovingCorrelation builds a moving correlation over a window of the
// given capacity. Returns ErrCapacity when capacity < 2.
func NewMovingCorrelation[T constraints.Float](capacity int) (*MovingCorrelation[T], error) {
	if capacity < 2 {
		return nil, ErrCapacity
	}
	w, err := ring.New[XY[T]](capacity)
	if err != nil {
		return nil, ErrCapacity
	}

	return &MovingCorrelation[T]{window: w}, nil
}

// Push adds one paired observation, sliding the window once it is full.
func (s *MovingCorrelation[T]) Push(x, y T) {
	if evicted, ok := s.window.Append(XY[T]{X: x, Y: y}); ok {
		s.c.Replace(evicted.X, evicted.Y, x, y)

		return
	}
	s.c.Push(x, y)
}

// PushAll adds paired observations in order. Returns ErrLengthMismatch
// when the slices differ in length.
func (s *MovingCorrelation[T]) PushAll(xs, ys []T) error {
	if len(xs) != len(ys) {
		return ErrLengthMismatch
	}
	for i, x := range xs {
		s.Push(x, ys[i])
	}

	return nil
}

// Correlation reports the windowed Pearson's r (0 for a degenerate
// window).
func (s *MovingCorrelation[T]) Correlation() T { return s.c.Correlation() }

// Count reports the number of buffered pairs.
func (s *MovingCorrelation[T]) Count() int { return s.window.Len() }

// Cap reports the fixed window capacity.
func (s *MovingCorrelation[T]) Cap() int { return s.window.Cap() }

// Reset empties the window and zeroes the running state.
func (s *MovingCorrelation[T]) Reset() {
	s.window.Reset()
	s.c.Reset()
}
