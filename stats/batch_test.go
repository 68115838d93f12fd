package stats_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlmath/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMomentOf_MatchesStreaming verifies the batch reducer and the
// streaming processor agree on the same sample.
func TestMomentOf_MatchesStreaming(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	values := make([]float64, 300)
	for i := range values {
		values[i] = rng.NormFloat64() * 40
	}

	m := stats.MomentOf(values)
	var v stats.Variance[float64]
	v.PushAll(values...)

	assert.Equal(t, v.Count(), m.Count)
	assert.InDelta(t, v.Mean(), m.Mean, 1e-10)
	assert.InDelta(t, v.Variance(), m.Variance(), 1e-9)
	assert.InDelta(t, v.UnbiasedVariance(), m.UnbiasedVariance(), 1e-9)
	assert.InDelta(t, v.StdDev(), m.StdDev(), 1e-9)
}

// TestMomentOf_Guards verifies the empty and single-element fallbacks.
func TestMomentOf_Guards(t *testing.T) {
	empty := stats.MomentOf[float64](nil)
	assert.Equal(t, 0, empty.Count)
	assert.Equal(t, 0.0, empty.Variance())
	assert.Equal(t, 0.0, empty.UnbiasedVariance())

	one := stats.MomentOf([]float64{5})
	assert.Equal(t, 5.0, one.Mean)
	assert.Equal(t, 0.0, one.Variance())
	assert.Equal(t, 0.0, one.UnbiasedVariance())
}

// TestComomentOf_MatchesStreaming verifies the paired batch reducer
// against the streaming covariance processor.
func TestComomentOf_MatchesStreaming(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	xs := make([]float64, 200)
	ys := make([]float64, 200)
	for i := range xs {
		xs[i] = rng.NormFloat64() * 10
		ys[i] = -2*xs[i] + rng.NormFloat64()
	}

	cm, err := stats.ComomentOf(xs, ys)
	require.NoError(t, err)

	var c stats.Covariance[float64]
	require.NoError(t, c.PushAll(xs, ys))

	assert.InDelta(t, c.Covariance(), cm.Covariance(), 1e-9)
	assert.InDelta(t, c.UnbiasedCovariance(), cm.UnbiasedCovariance(), 1e-9)
	assert.InDelta(t, c.MeanX(), cm.MeanX, 1e-10)
	assert.InDelta(t, c.MeanY(), cm.MeanY, 1e-10)
}

// TestComomentOf_LengthMismatch verifies the sentinel.
func TestComomentOf_LengthMismatch(t *testing.T) {
	_, err := stats.ComomentOf([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, stats.ErrLengthMismatch)
}

// TestUniform_MatchesBatch cross-checks the closed-form ladder moments
// against explicit reductions of d, 2d, …, nd.
func TestUniform_MatchesBatch(t *testing.T) {
	const d = 0.5
	for n := 1; n <= 8; n++ {
		ladder := make([]float64, n)
		for i := range ladder {
			ladder[i] = d * float64(i+1)
		}
		m := stats.MomentOf(ladder)

		assert.InDelta(t, m.Mean, stats.UniformMean(n, d), 1e-12, "mean, n=%d", n)
		assert.InDelta(t, m.M2, stats.UniformMoment(n, d), 1e-12, "moment, n=%d", n)
		assert.InDelta(t, m.Variance(), stats.UniformVariance(n, d), 1e-12, "variance, n=%d", n)
		assert.InDelta(t, m.UnbiasedVariance(), stats.UniformUnbiasedVariance(n, d), 1e-12, "unbiased, n=%d", n)
		assert.InDelta(t, m.StdDev(), stats.UniformStdDev(n, d), 1e-12, "stddev, n=%d", n)
	}
}

// TestUniform_Guards verifies the degenerate ladder sizes.
func TestUniform_Guards(t *testing.T) {
	assert.Equal(t, 0.0, stats.UniformMean(0, 2.0))
	assert.Equal(t, 0.0, stats.UniformMoment(0, 2.0))
	assert.Equal(t, 0.0, stats.UniformVariance(0, 2.0))
	assert.Equal(t, 0.0, stats.UniformUnbiasedVariance(1, 2.0))
}
