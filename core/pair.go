package core

// Pair is an unordered entity pair, normalized so A <= B
// Comparable, usable as a map key for per-tick dedupe
type Pair struct {
	A, B Entity
}

// NewPair normalizes the participant order
func NewPair(a, b Entity) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Other returns the participant that is not e, and false if e is not in the pair
func (p Pair) Other(e Entity) (Entity, bool) {
	switch e {
	case p.A:
		return p.B, true
	case p.B:
		return p.A, true
	}
	return NoEntity, false
}
