package stats

import "errors"

var (
	// ErrCapacity indicates a moving-window capacity below the minimum the
	// estimator needs (1 for means, 2 for variance-bearing estimators).
	ErrCapacity = errors.New("stats: window capacity too small")

	// ErrSmoothing indicates an exponential-mean smoothing factor outside
	// (0, 1].
	ErrSmoothing = errors.New("stats: smoothing factor must be in (0, 1]")

	// ErrEmptyInput indicates a batch reducer or line fit received no
	// observations.
	ErrEmptyInput = errors.New("stats: input sequence must be non-empty")

	// ErrLengthMismatch indicates paired input sequences of different
	// lengths.
	ErrLengthMismatch = errors.New("stats: input sequences must have equal length")
)
