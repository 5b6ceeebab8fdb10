package input

import "strings"

// Key is a stable key identifier: a lowercase character or a named key
type Key string

// Named keys
const (
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeySpace Key = "space"
)

// NormalizeKey lowercases and trims a key name; a literal " " maps to space
func NormalizeKey(s string) Key {
	if s == " " {
		return KeySpace
	}
	return Key(strings.ToLower(strings.TrimSpace(s)))
}

// KeyEntry binds a key to an action
// Repeat keys re-dispatch every repeat interval while held
type KeyEntry struct {
	Action Action
	Repeat bool
}

// KeyTable maps keys to bindings
// Keys absent from the table pass through to the host
type KeyTable map[Key]KeyEntry

// DefaultKeyTable returns the default flight bindings
func DefaultKeyTable() KeyTable {
	return KeyTable{
		// Thrust, held
		"w":      {ActionThrustUp, true},
		"a":      {ActionThrustLeft, true},
		"s":      {ActionThrustDown, true},
		"d":      {ActionThrustRight, true},
		KeyUp:    {ActionThrustFront, true},
		KeyDown:  {ActionThrustBack, true},
		KeyLeft:  {ActionTurnLeft, true},
		KeyRight: {ActionTurnRight, true},

		// Camera, single-shot
		"i":      {ActionCameraUp, false},
		"j":      {ActionCameraLeft, false},
		"k":      {ActionCameraBack, false},
		"l":      {ActionCameraRight, false},
		"m":      {ActionCameraDown, false},
		KeySpace: {ActionCameraFront, false},
	}
}

// Clone returns an independent copy
func (t KeyTable) Clone() KeyTable {
	out := make(KeyTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
