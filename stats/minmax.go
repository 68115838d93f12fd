package stats

import "golang.org/x/exp/constraints"

// MinMax tracks the extrema of a stream. The zero value is ready to use;
// Min and Max report 0 until the first push.
type MinMax[T constraints.Float] struct {
	count    int
	min, max T
}

// Push adds one observation.
func (m *MinMax[T]) Push(v T) {
	if m.count == 0 {
		m.min, m.max = v, v
		m.count = 1

		return
	}
	m.count++
	if v < m.min {
		m.min = v
	}
	if v > m.max {
		m.max = v
	}
}

// PushAll adds observations in order.
func (m *MinMax[T]) PushAll(values ...T) {
	for _, v := range values {
		m.Push(v)
	}
}

// Min reports the smallest observation seen (0 before any push).
func (m *MinMax[T]) Min() T { return m.min }

// Max reports the largest observation seen (0 before any push).
func (m *MinMax[T]) Max() T { return m.max }

// Span reports max-min (0 before any push).
func (m *MinMax[T]) Span() T { return m.max - m.min }

// Count reports the number of observations seen.
func (m *MinMax[T]) Count() int { return m.count }

// Reset returns the tracker to its zero state.
func (m *MinMax[T]) Reset() { *m = MinMax[T]{} }
