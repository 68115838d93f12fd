package stats

import "golang.org/x/exp/constraints"

// EWMA is an exponentially weighted moving average. The first push seeds
// the mean; each later push moves it by alpha·(v-mean). Higher alpha means
// faster tracking, lower alpha means heavier smoothing.
type EWMA[T constraints.Float] struct {
	alpha T
	mean  T
	count int
}

// NewEWMA builds an exponential mean with the given smoothing factor.
// Returns ErrSmoothing unless 0 < alpha <= 1.
func NewEWMA[T constraints.Float](alpha T) (*EWMA[T], error) {
	if alpha <= 0 || alpha > 1 {
		return nil, ErrSmoothing
	}

	return &EWMA[T]{alpha: alpha}, nil
}

// Push adds one observation.
func (e *EWMA[T]) Push(v T) {
	e.count++
	if e.count == 1 {
		e.mean = v

		return
	}
	e.mean += e.alpha * (v - e.mean)
}

// PushAll adds observations in order.
func (e *EWMA[T]) PushAll(values ...T) {
	for _, v := range values {
		e.Push(v)
	}
}

// Mean reports the current smoothed mean (0 before any push).
func (e *EWMA[T]) Mean() T { return e.mean }

// Alpha reports the smoothing factor.
func (e *EWMA[T]) Alpha() T { return e.alpha }

// Count reports the number of observations seen.
func (e *EWMA[T]) Count() int { return e.count }

// Reset clears the mean and count; the smoothing factor is kept.
func (e *EWMA[T]) Reset() {
	e.mean = 0
	e.count = 0
}
