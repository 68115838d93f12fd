package stats

import "golang.org/x/exp/constraints"

// WeightedMean is a running weighted mean. The incremental form
// mean += (v-mean)·(w/W) keeps precision over long streams; a zero (or
// cancelled-out) total weight yields the defined fallback 0 rather than
// NaN.
type WeightedMean[T constraints.Float] struct {
	weight T
	mean   T
	count  int
}

// Push adds one observation with the given weight.
func (m *WeightedMean[T]) Push(v, w T) {
	m.count++
	m.weight += w
	if m.weight == 0 {
		m.mean = 0

		return
	}
	m.mean += (v - m.mean) * (w / m.weight)
}

// PushAll adds weighted observations in order. Returns ErrLengthMismatch
// when the slices differ in length.
func (m *WeightedMean[T]) PushAll(values, weights []T) error {
	if len(values) != len(weights) {
		return ErrLengthMismatch
	}
	for i, v := range values {
		m.Push(v, weights[i])
	}

	return nil
}

// Mean reports the current weighted mean (0 before any push or at zero
// total weight).
func (m *WeightedMean[T]) Mean() T { return m.mean }

// Weight reports the accumulated total weight.
func (m *WeightedMean[T]) Weight() T { return m.weight }

// Count reports the number of observations seen.
func (m *WeightedMean[T]) Count() int { return m.count }

// Reset returns the processor to its zero state.
func (m *WeightedMean[T]) Reset() { *m = WeightedMean[T]{} }
