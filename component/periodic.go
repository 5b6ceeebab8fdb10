package component

import "time"

// Behavior identifies the action a periodic record triggers
type Behavior uint8

const (
	BehaviorNone Behavior = iota
	// BehaviorRandomWalk applies a random horizontal impulse each period
	BehaviorRandomWalk
)

// Periodic is an optional per-entity repeating behavior
type Periodic struct {
	Behavior  Behavior
	Interval  time.Duration
	Magnitude float64
	elapsed   time.Duration
}

// Advance accumulates dt and returns how many periods completed
// A non-positive interval never fires
func (p *Periodic) Advance(dt time.Duration) int {
	if p.Interval <= 0 || dt <= 0 {
		return 0
	}
	p.elapsed += dt
	n := int(p.elapsed / p.Interval)
	p.elapsed -= time.Duration(n) * p.Interval
	return n
}
