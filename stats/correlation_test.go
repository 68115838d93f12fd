package stats_test

import (
	"testing"

	"github.com/katalvlaran/lvlmath/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCorrelation_Perfect verifies r = ±1 for exact linear relations.
func TestCorrelation_Perfect(t *testing.T) {
	var up stats.Correlation[float64]
	require.NoError(t, up.PushAll([]float64{1, 2, 3, 4}, []float64{3, 5, 7, 9})) // y=2x+1
	assert.InDelta(t, 1.0, up.Correlation(), 1e-12)

	var down stats.Correlation[float64]
	require.NoError(t, down.PushAll([]float64{1, 2, 3, 4}, []float64{-3, -6, -9, -12})) // y=-3x
	assert.InDelta(t, -1.0, down.Correlation(), 1e-12)
}

// TestCorrelation_DegenerateIsZero verifies a constant marginal yields 0
// rather than NaN.
func TestCorrelation_DegenerateIsZero(t *testing.T) {
	var c stats.Correlation[float64]
	require.NoError(t, c.PushAll([]float64{1, 2, 3}, []float64{5, 5, 5}))

	assert.Equal(t, 0.0, c.Correlation())

	var empty stats.Correlation[float64]
	assert.Equal(t, 0.0, empty.Correlation())
}

// TestCorrelation_RollbackReplace verifies undo and in-place update keep
// the composition consistent: an outlier is added, replaced, then the
// stream returns to a perfect relation.
func TestCorrelation_RollbackReplace(t *testing.T) {
	var c stats.Correlation[float64]
	require.NoError(t, c.PushAll([]float64{1, 2, 3}, []float64{2, 4, 6}))
	assert.InDelta(t, 1.0, c.Correlation(), 1e-12)

	c.Push(4, -100)
	assert.Less(t, c.Correlation(), 0.9, "outlier must break the perfect correlation")

	c.Replace(4, -100, 4, 8)
	assert.InDelta(t, 1.0, c.Correlation(), 1e-9)

	c.Rollback(4, 8)
	assert.Equal(t, 3, c.Count())
	assert.InDelta(t, 1.0, c.Correlation(), 1e-9)
}

// TestMovingCorrelation_Window verifies the windowed r forgets an old
// regime once it slides past it.
func TestMovingCorrelation_Window(t *testing.T) {
	mc, err := stats.NewMovingCorrelation[float64](3)
	require.NoError(t, err)

	// Anti-correlated prefix, then a perfectly correlated run.
	mc.Push(1, -1)
	mc.Push(2, -2)
	mc.Push(1, 1)
	mc.Push(2, 2)
	mc.Push(3, 3) // window now holds only the y=x regime

	assert.Equal(t, 3, mc.Count())
	assert.InDelta(t, 1.0, mc.Correlation(), 1e-9)
}

// TestMovingCorrelation_BadCapacity verifies the sentinel.
func TestMovingCorrelation_BadCapacity(t *testing.T) {
	_, err := stats.NewMovingCorrelation[float64](0)
	assert.ErrorIs(t, err, stats.ErrCapacity)
}
