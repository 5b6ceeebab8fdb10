package event

import "github.com/lixenwraith/skyfarer/core"

// ContactEvent reports that two bodies began overlapping
// Participant order carries no meaning
type ContactEvent struct {
	A, B core.Entity
}

// Pair returns the normalized participant pair
func (e ContactEvent) Pair() core.Pair {
	return core.NewPair(e.A, e.B)
}

// ContactQueue buffers contact-begin events produced during a host step
// Single-writer: the host pushes during its step, the contact system drains after it
type ContactQueue struct {
	pending []ContactEvent
	spare   []ContactEvent
}

// NewContactQueue creates a queue with a small preallocated buffer
func NewContactQueue() *ContactQueue {
	return &ContactQueue{
		pending: make([]ContactEvent, 0, 32),
		spare:   make([]ContactEvent, 0, 32),
	}
}

// Push appends a contact-begin event in arrival order
func (q *ContactQueue) Push(a, b core.Entity) {
	q.pending = append(q.pending, ContactEvent{A: a, B: b})
}

// Drain returns all pending events in FIFO order and empties the queue
// The returned slice is reused on the next Drain; do not retain it
func (q *ContactQueue) Drain() []ContactEvent {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = q.spare[:0]
	q.spare = out
	return out
}

// Len returns the pending event count
func (q *ContactQueue) Len() int {
	return len(q.pending)
}
