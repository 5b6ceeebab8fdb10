package input

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ErrUnknownAction is returned for keymap entries naming no registered action
var ErrUnknownAction = errors.New("unknown action")

// Keymap is a sparse override parsed from a TOML keymap file
//
//	[keys]
//	w = "thrust_front"
//	x = "none"
//	[repeat]
//	space = true
type Keymap struct {
	Keys   map[string]string `toml:"keys"`
	Repeat map[string]bool   `toml:"repeat"`
}

// LoadKeymap parses and merges TOML keymap data over base
// Returns error on unknown action names or parse failure; base is never modified
func LoadKeymap(base KeyTable, data []byte) (KeyTable, error) {
	var km Keymap
	if err := toml.Unmarshal(data, &km); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	return km.Apply(base)
}

// Apply returns base with the keymap overrides merged in
// Action "none" deletes the key; [repeat] entries alter the repeat flag of the resulting binding
func (km Keymap) Apply(base KeyTable) (KeyTable, error) {
	result := base.Clone()

	for name, actionName := range km.Keys {
		key := NormalizeKey(name)
		action, ok := ActionByName(NormalizeActionName(actionName))
		if !ok {
			return nil, fmt.Errorf("[keys] %q: %w: %q", name, ErrUnknownAction, actionName)
		}
		if action == ActionNone {
			delete(result, key)
			continue
		}
		entry := KeyEntry{Action: action, Repeat: action.Kind() != KindCamera}
		result[key] = entry
	}

	for name, repeat := range km.Repeat {
		key := NormalizeKey(name)
		entry, ok := result[key]
		if !ok {
			return nil, fmt.Errorf("[repeat] %q: key is not bound", name)
		}
		entry.Repeat = repeat
		result[key] = entry
	}

	return result, nil
}

// NormalizeActionName lowercases and maps dashes to underscores
func NormalizeActionName(s string) string {
	b := []byte(s)
	for i, c := range b {
		switch {
		case c == '-':
			b[i] = '_'
		case c >= 'A' && c <= 'Z':
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
