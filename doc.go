// Package lvlmath is your in-memory toolbox for tolerant floating-point
// comparison and single-pass streaming statistics — from epsilon-aware
// predicates to windowed Welford accumulators and peak detection.
//
// 🚀 What is lvlmath?
//
//	A modern, generic (float32/float64) library that brings together:
//		• Tolerance engine: magnitude-aware epsilon comparison predicates
//		• Intervals: tolerant membership & equality for bounded/unbounded ranges
//		• Circular buffer: fixed-capacity ring with eviction reporting
//		• Streaming estimators: mean, RMS, Welford variance & covariance,
//		  correlation, linear regression — each with rollback & replace
//		• Moving windows: sliding-window variants of every estimator
//		• Peak detection: 3-state local-maximum stream with threshold policies
//
// ✨ Why choose lvlmath?
//
//   - Numerically honest – cancellation-resistant update formulas everywhere
//   - O(1) state – no sample is ever stored beyond an explicit window
//   - Pure Go – no cgo, generics only, statically monomorphized
//   - Predictable – sentinel errors, documented preconditions, no surprises
//
// Under the hood, everything is organized under three subpackages:
//
//	approx/ — tolerance model, fuzzy relational predicates, intervals
//	ring/   — generic fixed-capacity circular buffer
//	stats/  — streaming & batch accumulators, local-maximum detection
//
// Quick taste:
//
//	var v stats.Variance[float64]
//	v.PushAll(1.0, 2.0, 4.0, 8.0)
//	_ = v.StdDev() // numerically stable, single pass
//
//	go get github.com/katalvlaran/lvlmath
package lvlmath
