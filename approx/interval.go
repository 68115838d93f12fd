package approx

import "golang.org/x/exp/constraints"

// BoundKind describes one end of an interval.
type BoundKind int

const (
	// Unbounded means the interval extends to infinity on this side.
	Unbounded BoundKind = iota

	// Inclusive means the bound value itself belongs to the interval.
	Inclusive

	// Exclusive means the interval approaches the bound but excludes it.
	Exclusive
)

// Bound is one end of an Interval. Value is meaningful only when Kind is
// not Unbounded.
type Bound[T constraints.Float] struct {
	Value T
	Kind  BoundKind
}

// Interval is a possibly unbounded interval of T with tolerant membership
// and equality semantics. Construct via Closed, HalfOpen, Open, From,
// Above, UpTo, Through or All.
type Interval[T constraints.Float] struct {
	Lo, Hi Bound[T]
}

// Closed is [lo, hi].
func Closed[T constraints.Float](lo, hi T) Interval[T] {
	return Interval[T]{
		Lo: Bound[T]{Value: lo, Kind: Inclusive},
		Hi: Bound[T]{Value: hi, Kind: Inclusive},
	}
}

// HalfOpen is [lo, hi).
func HalfOpen[T constraints.Float](lo, hi T) Interval[T] {
	return Interval[T]{
		Lo: Bound[T]{Value: lo, Kind: Inclusive},
		Hi: Bound[T]{Value: hi, Kind: Exclusive},
	}
}

// Open is (lo, hi).
func Open[T constraints.Float](lo, hi T) Interval[T] {
	return Interval[T]{
		Lo: Bound[T]{Value: lo, Kind: Exclusive},
		Hi: Bound[T]{Value: hi, Kind: Exclusive},
	}
}

// From is [lo, +∞).
func From[T constraints.Float](lo T) Interval[T] {
	return Interval[T]{Lo: Bound[T]{Value: lo, Kind: Inclusive}}
}

// Above is (lo, +∞).
func Above[T constraints.Float](lo T) Interval[T] {
	return Interval[T]{Lo: Bound[T]{Value: lo, Kind: Exclusive}}
}

// UpTo is (-∞, hi).
func UpTo[T constraints.Float](hi T) Interval[T] {
	return Interval[T]{Hi: Bound[T]{Value: hi, Kind: Exclusive}}
}

// Through is (-∞, hi].
func Through[T constraints.Float](hi T) Interval[T] {
	return Interval[T]{Hi: Bound[T]{Value: hi, Kind: Inclusive}}
}

// All is (-∞, +∞).
func All[T constraints.Float]() Interval[T] {
	return Interval[T]{}
}

// In reports tolerant membership of v in iv. Each bound check derives its
// tolerance from v and the bound value, so membership of large values near
// large bounds stays meaningful.
func In[T constraints.Float](v T, iv Interval[T]) bool {
	switch iv.Lo.Kind {
	case Inclusive:
		if !GreaterOrEqual(v, iv.Lo.Value) {
			return false
		}
	case Exclusive:
		if !Greater(v, iv.Lo.Value) {
			return false
		}
	}

	switch iv.Hi.Kind {
	case Inclusive:
		if !LessOrEqual(v, iv.Hi.Value) {
			return false
		}
	case Exclusive:
		if !Less(v, iv.Hi.Value) {
			return false
		}
	}

	return true
}

// Out reports tolerant exclusion of v from iv. It is built from the
// opposite-side predicates rather than as a bare !In, so each bound is
// judged with the same derived tolerance from either direction and the
// two predicates partition the line consistently.
func Out[T constraints.Float](v T, iv Interval[T]) bool {
	switch iv.Lo.Kind {
	case Inclusive:
		if Less(v, iv.Lo.Value) {
			return true
		}
	case Exclusive:
		if LessOrEqual(v, iv.Lo.Value) {
			return true
		}
	}

	switch iv.Hi.Kind {
	case Inclusive:
		if Greater(v, iv.Hi.Value) {
			return true
		}
	case Exclusive:
		if GreaterOrEqual(v, iv.Hi.Value) {
			return true
		}
	}

	return false
}

// equalBounds compares one pair of interval ends. Kinds must match
// literally; an unbounded end equals only another unbounded end and is
// never tolerance-compared. Bounded ends delegate to Equal.
func equalBounds[T constraints.Float](a, b Bound[T]) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == Unbounded {
		return true
	}

	return Equal(a.Value, b.Value)
}

// EqualIntervals reports tolerant equality of two intervals across all
// shape combinations (bounded, semi-bounded, unbounded).
func EqualIntervals[T constraints.Float](a, b Interval[T]) bool {
	return equalBounds(a.Lo, b.Lo) && equalBounds(a.Hi, b.Hi)
}

// NotEqualIntervals is the negation of EqualIntervals.
func NotEqualIntervals[T constraints.Float](a, b Interval[T]) bool {
	return !EqualIntervals(a, b)
}

// IsDegenerate reports whether both ends are bounded and tolerant-equal,
// i.e. the interval has collapsed to (at most) a point.
func IsDegenerate[T constraints.Float](iv Interval[T]) bool {
	if iv.Lo.Kind == Unbounded || iv.Hi.Kind == Unbounded {
		return false
	}

	return Equal(iv.Lo.Value, iv.Hi.Value)
}
