package ring

import "errors"

// ErrCapacity indicates a requested buffer capacity below one.
var ErrCapacity = errors.New("ring: capacity must be at least 1")

// Buffer is a fixed-capacity circular buffer. The zero value is not usable;
// construct with New.
type Buffer[T any] struct {
	data  []T
	head  int // index of the oldest element
	count int
}

// New allocates a buffer holding at most capacity elements.
// Returns ErrCapacity when capacity < 1.
func New[T any](capacity int) (*Buffer[T], error) {
	if capacity < 1 {
		return nil, ErrCapacity
	}

	return &Buffer[T]{data: make([]T, capacity)}, nil
}

// Append inserts v. When the buffer was already full the oldest element is
// overwritten and returned with ok=true; otherwise the buffer just grows
// and ok is false.
func (b *Buffer[T]) Append(v T) (evicted T, ok bool) {
	if b.count < len(b.data) {
		b.data[(b.head+b.count)%len(b.data)] = v
		b.count++

		return evicted, false
	}

	evicted = b.data[b.head]
	b.data[b.head] = v
	b.head = (b.head + 1) % len(b.data)

	return evicted, true
}

// First returns the oldest element, with ok=false on an empty buffer.
func (b *Buffer[T]) First() (v T, ok bool) {
	if b.count == 0 {
		return v, false
	}

	return b.data[b.head], true
}

// Len reports the number of buffered elements.
func (b *Buffer[T]) Len() int { return b.count }

// Cap reports the fixed capacity.
func (b *Buffer[T]) Cap() int { return len(b.data) }

// Full reports whether the next Append will evict.
func (b *Buffer[T]) Full() bool { return b.count == len(b.data) }

// Slice copies the buffered elements into a fresh slice in insertion order.
func (b *Buffer[T]) Slice() []T {
	out := make([]T, b.count)
	for i := 0; i < b.count; i++ {
		out[i] = b.data[(b.head+i)%len(b.data)]
	}

	return out
}

// Do calls fn on each buffered element in insertion order, stopping early
// when fn returns false.
func (b *Buffer[T]) Do(fn func(v T) bool) {
	for i := 0; i < b.count; i++ {
		if !fn(b.data[(b.head+i)%len(b.data)]) {
			return
		}
	}
}

// Reset drops all buffered elements. Capacity is unchanged. Stored slots
// are cleared so element references do not outlive the reset.
func (b *Buffer[T]) Reset() {
	clear(b.data)
	b.head = 0
	b.count = 0
}
