package stats

import "golang.org/x/exp/constraints"

// RMS is a root-mean-square processor: a running Mean over squared
// observations. The zero value is ready to use.
type RMS[T constraints.Float] struct {
	squares Mean[T]
}

// Push adds one observation.
func (r *RMS[T]) Push(v T) { r.squares.Push(v * v) }

// PushAll adds observations in order.
func (r *RMS[T]) PushAll(values ...T) {
	for _, v := range values {
		r.Push(v)
	}
}

// Rollback removes one previously pushed observation. Same caller contract
// as Mean.Rollback.
func (r *RMS[T]) Rollback(v T) { r.squares.Rollback(v * v) }

// Replace updates one previously pushed observation in place.
func (r *RMS[T]) Replace(from, to T) { r.squares.Replace(from*from, to*to) }

// RMS reports sqrt of the mean square (0 before any push).
func (r *RMS[T]) RMS() T { return sqrt(r.squares.Mean()) }

// MeanSquare reports the mean of the squared observations.
func (r *RMS[T]) MeanSquare() T { return r.squares.Mean() }

// Count reports the number of live observations.
func (r *RMS[T]) Count() int { return r.squares.Count() }

// Reset returns the processor to its zero state.
func (r *RMS[T]) Reset() { r.squares.Reset() }

// MovingRMS is the fixed-window RMS over the most recent Cap()
// observations.
type MovingRMS[T constraints.Float] struct {
	squares *MovingMean[T]
}

// NewMovingRMS builds a moving RMS over a window of the given capacity.
// Returns ErrCapacity when capacity < 1.
func NewMovingRMS[T constraints.Float](capacity int) (*MovingRMS[T], error) {
	mm, err := NewMovingMean[T](capacity)
	if err != nil {
		return nil, err
	}

	return &MovingRMS[T]{squares: mm}, nil
}

// Push adds one observation, sliding the window once it is full.
func (r *MovingRMS[T]) Push(v T) { r.squares.Push(v * v) }

// PushAll adds observations in order.
func (r *MovingRMS[T]) PushAll(values ...T) {
	for _, v := range values {
		r.Push(v)
	}
}

// RMS reports sqrt of the windowed mean square.
func (r *MovingRMS[T]) RMS() T { return sqrt(r.squares.Mean()) }

// Count reports the number of buffered observations.
func (r *MovingRMS[T]) Count() int { return r.squares.Count() }

// Cap reports the fixed window capacity.
func (r *MovingRMS[T]) Cap() int { return r.squares.Cap() }

// Reset empties the window and zeroes the running state.
func (r *MovingRMS[T]) Reset() { r.squares.Reset() }
