package stats

import "golang.org/x/exp/constraints"

// Closed-form moments of the arithmetic ladder d, 2d, …, nd — an O(1)
// shortcut when the sample is known to be uniform, used e.g. by
// FitLineUniform to avoid iterating the x-axis. The moment is invariant
// under shifting the ladder, so it equals the moment of 0, d, …, (n-1)d
// as well.

// UniformMean reports the mean of the ladder: d·(n+1)/2.
func UniformMean[T constraints.Float](n int, d T) T {
	if n < 1 {
		return 0
	}

	return d * T(n+1) / 2
}

// UniformMoment reports Σ(i·d - mean)² for i = 1..n: d²·(n³-n)/12.
func UniformMoment[T constraints.Float](n int, d T) T {
	if n < 1 {
		return 0
	}
	fn := T(n)

	return d * d * fn * (fn*fn - 1) / 12
}

// UniformVariance reports the population variance: d²·(n²-1)/12
// (0 when n < 1).
func UniformVariance[T constraints.Float](n int, d T) T {
	if n < 1 {
		return 0
	}

	return UniformMoment(n, d) / T(n)
}

// UniformUnbiasedVariance reports the sample variance: d²·n·(n+1)/12
// (0 when n < 2).
func UniformUnbiasedVariance[T constraints.Float](n int, d T) T {
	if n < 2 {
		return 0
	}

	return UniformMoment(n, d) / T(n-1)
}

// UniformStdDev reports sqrt of the population variance.
func UniformStdDev[T constraints.Float](n int, d T) T {
	return sqrt(UniformVariance(n, d))
}

// UniformUnbiasedStdDev reports sqrt of the sample variance.
func UniformUnbiasedStdDev[T constraints.Float](n int, d T) T {
	return sqrt(UniformUnbiasedVariance(n, d))
}
