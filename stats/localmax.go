package stats

import "golang.org/x/exp/constraints"

// Threshold decides when a peak candidate is confirmed: it reports whether
// other sits far enough below candidate. The same predicate, applied with
// the arguments swapped, decides when a climb out of a trough is
// convincing.
type Threshold[T constraints.Float] func(candidate, other T) bool

// AbsoluteThreshold confirms when other < candidate - delta.
func AbsoluteThreshold[T constraints.Float](delta T) Threshold[T] {
	return func(candidate, other T) bool { return other < candidate-delta }
}

// RelativeThreshold confirms when other < candidate·ratio.
func RelativeThreshold[T constraints.Float](ratio T) Threshold[T] {
	return func(candidate, other T) bool { return other < candidate*ratio }
}

// localMaxState enumerates the detector's three states.
type localMaxState int

const (
	lmInitial localMaxState = iota
	lmMinimum
	lmCandidate
)

// LocalMax is a streaming local-maximum detector. It tracks the most
// recent unconfirmed peak as a candidate; once the stream drops far enough
// below it (per the Threshold), the candidate is confirmed through the
// callback and the detector descends into trough-tracking until the next
// convincing climb.
//
// A note of arbitrary type may ride along with each observation (a
// timestamp, an index, a sample ID) and is delivered with the confirmed
// peak.
type LocalMax[T constraints.Float] struct {
	threshold Threshold[T]
	emit      func(value T, note any)
	state     localMaxState
	value     T
	note      any
}

// NewLocalMax builds a detector with the given confirmation policy and
// peak callback. Both must be non-nil — a detector without either is a
// programmer error and panics.
func NewLocalMax[T constraints.Float](threshold Threshold[T], emit func(value T, note any)) *LocalMax[T] {
	if threshold == nil {
		panic("stats: LocalMax needs a threshold")
	}
	if emit == nil {
		panic("stats: LocalMax needs an emit callback")
	}

	return &LocalMax[T]{threshold: threshold, emit: emit}
}

// Push advances the state machine with one observation.
func (s *LocalMax[T]) Push(v T) { s.PushNote(v, nil) }

// PushNote advances the state machine with one observation and its note.
//
// Transitions:
//   - candidate c: drop past the threshold confirms c (callback) and
//     descends to minimum(v); a higher v supersedes the candidate;
//     anything else is ignored.
//   - minimum m: a climb past the threshold opens candidate(v); otherwise
//     the trough deepens to min(m, v).
//   - initial: the first observation opens candidate(v).
func (s *LocalMax[T]) PushNote(v T, note any) {
	switch s.state {
	case lmCandidate:
		switch {
		case s.threshold(s.value, v):
			s.emit(s.value, s.note)
			s.state = lmMinimum
			s.value = v
			s.note = nil
		case v > s.value:
			s.value = v
			s.note = note
		}
	case lmMinimum:
		if s.threshold(v, s.value) {
			s.state = lmCandidate
			s.value = v
			s.note = note
		} else if v < s.value {
			s.value = v
		}
	default:
		s.state = lmCandidate
		s.value = v
		s.note = note
	}
}

// PushAll advances the state machine with observations in order (no
// notes).
func (s *LocalMax[T]) PushAll(values ...T) {
	for _, v := range values {
		s.Push(v)
	}
}

// Reset flushes a pending candidate through the callback — no observed
// peak is silently dropped — and returns to the initial state.
func (s *LocalMax[T]) Reset() {
	if s.state == lmCandidate {
		s.emit(s.value, s.note)
	}
	s.state = lmInitial
	s.value = 0
	s.note = nil
}

// ScanLocalMax runs the detector over a finite slice in one stateless
// pass: peaks are reported as (value, index) and a trailing candidate is
// flushed at the end, exactly as a streaming Push sequence followed by
// Reset would. The callback returns false to stop the scan early.
func ScanLocalMax[T constraints.Float](values []T, threshold Threshold[T], fn func(value T, index int) bool) {
	stopped := false
	lm := NewLocalMax(threshold, func(v T, note any) {
		if stopped {
			return
		}
		if !fn(v, note.(int)) {
			stopped = true
		}
	})

	for i, v := range values {
		if stopped {
			return
		}
		lm.PushNote(v, i)
	}
	if !stopped {
		lm.Reset()
	}
}
