package status

import "sync/atomic"

// Score is the monotonic credit counter
// Only Credit mutates it; there is no decrement or reset
type Score struct {
	credits atomic.Int64
}

// Credit adds exactly one credit and returns the new total
func (s *Score) Credit() int64 {
	return s.credits.Add(1)
}

// Value returns the current credit total
func (s *Score) Value() int64 {
	return s.credits.Load()
}
