// Package ring provides a generic fixed-capacity circular buffer with
// eviction reporting — the storage primitive behind every moving-window
// accumulator in stats.
//
// 🚀 What is ring?
//
//	A Buffer[T] holds at most Cap() elements in insertion order. Appending
//	to a full buffer overwrites the oldest element and hands it back to the
//	caller, which is exactly what a sliding-window estimator needs to undo
//	the evicted observation's contribution.
//
// ✨ Guarantees:
//
//   - Len() <= Cap() always; Len() only decreases via Reset()
//   - Append is O(1), no allocation after construction
//   - Slice()/Do() traverse in insertion order (oldest first)
//
// ⚙️ Usage:
//
//	buf, err := ring.New[float64](3)
//	if err != nil { ... } // ErrCapacity
//
//	if evicted, ok := buf.Append(v); ok {
//	    // the window slid: evicted left, v entered
//	}
//
// Buffers are plain mutable values with no internal locking; share one
// across goroutines only under external synchronization.
package ring
