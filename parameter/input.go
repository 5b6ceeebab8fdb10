package parameter

import "time"

// Key repeat and terminal release synthesis
const (
	KeyRepeatInterval = 100 * time.Millisecond
	// KeyHoldInitial covers the OS autorepeat delay before the first repeat arrives
	KeyHoldInitial = 550 * time.Millisecond
	// KeyHoldRepeat is the gap after which an autorepeating key counts as released
	KeyHoldRepeat = 120 * time.Millisecond
)

// KeyRepeatMaxBurst caps repeat dispatches per key in a single tick after a stall
const KeyRepeatMaxBurst = 3
