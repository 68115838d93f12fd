// Package stats provides single-pass, numerically stable streaming
// statistics: running mean, Welford variance & covariance, correlation,
// linear regression, RMS, min/max, exponential and weighted means, and
// local-maximum detection — plus fixed-window (moving) variants and
// closed-form batch reducers.
//
// 🚀 What is stats?
//
//	Push values one at a time (or in bulk) into an accumulator; it keeps
//	O(1) summary state and answers the current estimate on demand. The
//	unbounded "processor" types additionally support exact undo:
//	  • Rollback(v) — remove a previously pushed observation
//	  • Replace(from, to) — update one observation in place
//	Moving variants own a fixed ring of raw observations and slide the
//	window automatically via eviction + Replace.
//
// ✨ Why Welford?
//
//	Summing many values and dividing at the end cancels catastrophically.
//	Every estimator here uses the incremental form instead:
//	  mean += (v - mean)/n
//	  moment += (v - oldMean)·(v - newMean)
//	exact in infinite precision, and within a few ulps of it in practice.
//
// ⚙️ Usage:
//
//	var v stats.Variance[float64]
//	v.PushAll(samples...)
//	sd := v.StdDev()
//
//	mv, err := stats.NewMovingVariance[float64](128) // last 128 samples
//
// Contracts:
//
//   - Rollback/Replace require the removed/replaced value to have actually
//     been pushed; this is NOT runtime-checked. Violating it silently
//     corrupts the running state. The O(1) contract is deliberate.
//   - Bulk pushes are equivalent to scalar pushes in order — the update
//     formulas are not associative in finite precision, so order matters.
//   - A (co)moment may drift a few ulps negative from round-off; readers
//     of the moving variants clamp at zero, and builds tagged
//     lvlmath_debug assert the drift stays within tolerance.
//   - All types are plain mutable values with no internal locking: use
//     one accumulator per goroutine, or guard a shared one externally.
package stats
