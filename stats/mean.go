package stats

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlmath/ring"
)

// Mean is an unbounded running-mean processor. The zero value is ready to
// use. The incremental form mean += (v-mean)/n is used instead of
// sum-then-divide to avoid catastrophic cancellation over long streams.
type Mean[T constraints.Float] struct {
	count int
	mean  T
}

// Push adds one observation.
func (m *Mean[T]) Push(v T) {
	m.count++
	m.mean += (v - m.mean) / T(m.count)
}

// PushAll adds observations in order; equivalent to scalar pushes.
func (m *Mean[T]) PushAll(values ...T) {
	for _, v := range values {
		m.Push(v)
	}
}

// Rollback removes one previously pushed observation — the forward update
// run in reverse: decrement the count, then adjust by (mean-v)/newCount.
//
// Caller contract: v must have been pushed before and not yet rolled back.
// This is not runtime-checked; rollback order may be arbitrary.
func (m *Mean[T]) Rollback(v T) {
	m.count--
	if m.count <= 0 {
		m.Reset()

		return
	}
	m.mean += (m.mean - v) / T(m.count)
}

// Replace updates one previously pushed observation in place. The two
// contributions to the underlying sum cancel except for the delta, so the
// count is unchanged and mean += (to-from)/count.
//
// Caller contract: from must have been pushed before.
func (m *Mean[T]) Replace(from, to T) {
	if m.count == 0 {
		return
	}
	m.mean += (to - from) / T(m.count)
}

// NextMean returns what the mean would become after Push(v), without
// mutating state. Useful for lookahead/threshold decisions.
func (m *Mean[T]) NextMean(v T) T {
	return m.mean + (v-m.mean)/T(m.count+1)
}

// Mean reports the current running mean (0 before any push).
func (m *Mean[T]) Mean() T { return m.mean }

// Count reports the number of live observations.
func (m *Mean[T]) Count() int { return m.count }

// Reset returns the processor to its zero state.
func (m *Mean[T]) Reset() { *m = Mean[T]{} }

// MovingMean is a fixed-window running mean over the most recent Cap()
// observations. While the window is still filling it behaves like Mean;
// once full, each push evicts the oldest value and the update becomes
// mean += (v-evicted)/capacity.
type MovingMean[T constraints.Float] struct {
	window *ring.Buffer[T]
	mean   Mean[T]
}

// NewMovingMean builds a moving mean over a window of the given capacity.
// Returns ErrCapacity when capacity < 1.
func NewMovingMean[T constraints.Float](capacity int) (*MovingMean[T], error) {
	w, err := ring.New[T](capacity)
	if err != nil {
		return nil, ErrCapacity
	}

	return &MovingMean[T]{window: w}, nil
}

// Push adds one observation, sliding the window once it is full.
func (m *MovingMean[T]) Push(v T) {
	if evicted, ok := m.window.Append(v); ok {
		m.mean.Replace(evicted, v)

		return
	}
	m.mean.Push(v)
}

// PushAll adds observations in order.
func (m *MovingMean[T]) PushAll(values ...T) {
	for _, v := range values {
		m.Push(v)
	}
}

// Mean reports the mean of the buffered observations.
func (m *MovingMean[T]) Mean() T { return m.mean.Mean() }

// Count reports the number of buffered observations (at most Cap).
func (m *MovingMean[T]) Count() int { return m.window.Len() }

// Cap reports the fixed window capacity.
func (m *MovingMean[T]) Cap() int { return m.window.Cap() }

// Reset empties the window and zeroes the running state.
func (m *MovingMean[T]) Reset() {
	m.window.Reset()
	m.mean.Reset()
}
