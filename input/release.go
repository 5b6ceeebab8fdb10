package input

import (
	"sort"
	"time"

	"github.com/lixenwraith/skyfarer/parameter"
)

type pressState struct {
	lastSeen time.Duration
	repeated bool
}

// ReleaseDetector synthesises key-up for hosts that only report key presses
// A key counts as released once it has not been re-reported within holdInitial
// (no autorepeat seen yet) or holdRepeat (autorepeat in progress)
type ReleaseDetector struct {
	holdInitial time.Duration
	holdRepeat  time.Duration
	now         time.Duration
	keys        map[Key]*pressState
}

// NewReleaseDetector creates a detector; non-positive durations take defaults
func NewReleaseDetector(holdInitial, holdRepeat time.Duration) *ReleaseDetector {
	if holdInitial <= 0 {
		holdInitial = parameter.KeyHoldInitial
	}
	if holdRepeat <= 0 {
		holdRepeat = parameter.KeyHoldRepeat
	}
	return &ReleaseDetector{
		holdInitial: holdInitial,
		holdRepeat:  holdRepeat,
		keys:        make(map[Key]*pressState),
	}
}

// Observe records a press report for k
// Returns true when k was not already held, i.e. the report is a fresh key-down
func (r *ReleaseDetector) Observe(k Key) bool {
	if st, ok := r.keys[k]; ok {
		st.lastSeen = r.now
		st.repeated = true
		return false
	}
	r.keys[k] = &pressState{lastSeen: r.now}
	return true
}

// Advance moves the detector clock and returns keys that timed out, sorted
func (r *ReleaseDetector) Advance(dt time.Duration) []Key {
	r.now += dt

	var released []Key
	for k, st := range r.keys {
		limit := r.holdInitial
		if st.repeated {
			limit = r.holdRepeat
		}
		if r.now-st.lastSeen > limit {
			released = append(released, k)
			delete(r.keys, k)
		}
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	return released
}

// Forget drops k without reporting a release
func (r *ReleaseDetector) Forget(k Key) {
	delete(r.keys, k)
}

// Held returns the number of keys currently considered down
func (r *ReleaseDetector) Held() int {
	return len(r.keys)
}
