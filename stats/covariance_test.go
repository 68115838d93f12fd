package stats_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlmath/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCovariance_Known verifies against a hand-computed sample:
// xs 1,2,3 / ys 2,4,6 has co-moment 4, population covariance 4/3.
func TestCovariance_Known(t *testing.T) {
	var c stats.Covariance[float64]
	require.NoError(t, c.PushAll([]float64{1, 2, 3}, []float64{2, 4, 6}))

	assert.Equal(t, 3, c.Count())
	assert.InDelta(t, 2.0, c.MeanX(), 1e-12)
	assert.InDelta(t, 4.0, c.MeanY(), 1e-12)
	assert.InDelta(t, 4.0/3.0, c.Covariance(), 1e-12)
	assert.InDelta(t, 2.0, c.UnbiasedCovariance(), 1e-12)
}

// TestCovariance_SelfIsVariance verifies cov(x,x) equals var(x) — the
// co-moment identity collapses to the moment identity.
func TestCovariance_SelfIsVariance(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	var c stats.Covariance[float64]
	var v stats.Variance[float64]
	for i := 0; i < 500; i++ {
		x := rng.NormFloat64() * 30
		c.Push(x, x)
		v.Push(x)
	}

	assert.InDelta(t, v.Variance(), c.Covariance(), 1e-9)
}

// TestCovariance_LengthMismatch verifies the bulk-push sentinel.
func TestCovariance_LengthMismatch(t *testing.T) {
	var c stats.Covariance[float64]

	err := c.PushAll([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, stats.ErrLengthMismatch)
	assert.Equal(t, 0, c.Count(), "a rejected bulk push must not partially apply")
}

// TestCovariance_RollbackRoundTrip verifies the exact inverse: rolling
// back every pair returns the zero state, and a partial rollback matches a
// fresh reduction over the survivors.
func TestCovariance_RollbackRoundTrip(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	ys := []float64{1, 3, 2, 8}

	var c stats.Covariance[float64]
	require.NoError(t, c.PushAll(xs, ys))

	c.Rollback(4, 8)
	want, err := stats.ComomentOf(xs[:3], ys[:3])
	require.NoError(t, err)
	assert.InDelta(t, want.Covariance(), c.Covariance(), 1e-10)

	c.Rollback(1, 1)
	c.Rollback(3, 2)
	c.Rollback(2, 3)
	assert.Equal(t, 0, c.Count())
	assert.InDelta(t, 0.0, c.Covariance(), 1e-12)
}

// TestCovariance_Replace verifies the in-place pair update matches a fresh
// reduction and that replacing a pair with itself is a no-op.
func TestCovariance_Replace(t *testing.T) {
	var c stats.Covariance[float64]
	require.NoError(t, c.PushAll([]float64{1, 2, 3}, []float64{2, 0, 4}))

	c.Replace(2, 0, 5, 7)
	want, err := stats.ComomentOf([]float64{1, 5, 3}, []float64{2, 7, 4})
	require.NoError(t, err)
	assert.InDelta(t, want.Covariance(), c.Covariance(), 1e-10)
	assert.InDelta(t, want.MeanX, c.MeanX(), 1e-12)
	assert.InDelta(t, want.MeanY, c.MeanY(), 1e-12)

	before := c.Covariance()
	c.Replace(5, 7, 5, 7)
	assert.InDelta(t, before, c.Covariance(), 1e-12)
}

// TestMovingCovariance_Window verifies the sliding window: capacity 2 with
// a third pair evicting the first.
func TestMovingCovariance_Window(t *testing.T) {
	mc, err := stats.NewMovingCovariance[float64](2)
	require.NoError(t, err)

	mc.Push(1, 1)
	mc.Push(2, 2)
	mc.Push(3, 5) // evicts (1,1); window is (2,2),(3,5)

	assert.Equal(t, 2, mc.Count())
	assert.InDelta(t, 0.75, mc.Covariance(), 1e-10) // co-moment 1.5 over capacity 2
	assert.InDelta(t, 1.5, mc.UnbiasedCovariance(), 1e-10)
}

// TestMovingCovariance_MatchesBatchWindow cross-checks a sliding stream
// against fresh reductions of the window contents.
func TestMovingCovariance_MatchesBatchWindow(t *testing.T) {
	const capacity = 6
	mc, err := stats.NewMovingCovariance[float64](capacity)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(5))
	var wx, wy []float64
	for i := 0; i < 150; i++ {
		x := rng.NormFloat64() * 10
		y := 3*x + rng.NormFloat64()
		mc.Push(x, y)
		wx, wy = append(wx, x), append(wy, y)
		if len(wx) > capacity {
			wx, wy = wx[1:], wy[1:]
		}

		want, err := stats.ComomentOf(wx, wy)
		require.NoError(t, err)
		assert.InDelta(t, want.Covariance(), mc.Covariance(), 1e-8, "step %d", i)
	}
}

// TestMovingCovariance_BadCapacity verifies windows below two pairs are
// rejected.
func TestMovingCovariance_BadCapacity(t *testing.T) {
	_, err := stats.NewMovingCovariance[float64](1)
	assert.ErrorIs(t, err, stats.ErrCapacity)
}
