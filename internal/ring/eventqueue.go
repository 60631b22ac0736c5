package ring

import "sync/atomic"

// EventQueue is a lock-free SPSC queue for arbitrary tagged records (the
// block adapter's input-event queue, §5, §6). The writer is the host or a
// non-realtime thread; the reader is the audio thread. Events are drained
// in the order they were pushed.
type EventQueue[T any] struct {
	buf   []T
	mask  uint64
	write atomic.Uint64
	read  atomic.Uint64
}

// NewEventQueue allocates a queue holding at least capacity events.
func NewEventQueue[T any](capacity int) *EventQueue[T] {
	size := nextPow2(uint64(capacity))
	return &EventQueue[T]{buf: make([]T, size), mask: size - 1}
}

// Push enqueues one event; overflow past capacity overwrites the oldest
// unread slot, matching the audio path's no-blocking guarantee (§5).
func (q *EventQueue[T]) Push(e T) {
	w := q.write.Load()
	q.buf[w&q.mask] = e
	q.write.Store(w + 1)
}

// Drain appends every unread event (oldest first) to dst and advances the
// read cursor past them, returning the extended slice.
func (q *EventQueue[T]) Drain(dst []T) []T {
	rd := q.read.Load()
	w := q.write.Load()
	if size := uint64(len(q.buf)); w-rd > size {
		rd = w - size // overwritten slots are gone; start at the oldest kept
	}
	for i := rd; i != w; i++ {
		dst = append(dst, q.buf[i&q.mask])
	}
	q.read.Store(w)
	return dst
}

// Clear discards every unread event without returning them.
func (q *EventQueue[T]) Clear() {
	q.read.Store(q.write.Load())
}
