package input

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyfarer/parameter"
)

// ActionHandler receives dispatched actions
type ActionHandler interface {
	HandleAction(a Action)
}

// ActionHandlerFunc adapts a function to ActionHandler
type ActionHandlerFunc func(a Action)

func (f ActionHandlerFunc) HandleAction(a Action) { f(a) }

// heldKey is the Active state of a repeat-mapped key
type heldKey struct {
	action  Action
	elapsed time.Duration
}

// Dispatcher converts key-down/key-up into discrete and repeating actions
// Repeat is polled once per tick from the held set; there are no timers
// A key is in held iff it is down and bound to a repeat action
type Dispatcher struct {
	table    KeyTable
	interval time.Duration
	handler  ActionHandler
	held     map[Key]*heldKey
	log      zerolog.Logger
}

// NewDispatcher creates a dispatcher over table with the given repeat interval
func NewDispatcher(table KeyTable, interval time.Duration, handler ActionHandler, logger zerolog.Logger) *Dispatcher {
	if interval <= 0 {
		interval = parameter.KeyRepeatInterval
	}
	return &Dispatcher{
		table:    table,
		interval: interval,
		handler:  handler,
		held:     make(map[Key]*heldKey),
		log:      logger.With().Str("component", "input").Logger(),
	}
}

// KeyDown handles a key press
// Returns false when the key is unbound and must pass through to the host
func (d *Dispatcher) KeyDown(k Key) bool {
	entry, ok := d.table[k]
	if !ok || entry.Action == ActionNone {
		d.log.Debug().Str("key", string(k)).Msg("pass-through")
		return false
	}

	if !entry.Repeat {
		d.handler.HandleAction(entry.Action)
		return true
	}

	// Debounce host autorepeat: an Active key never gets a second entry
	if _, active := d.held[k]; active {
		return true
	}

	d.handler.HandleAction(entry.Action)
	d.held[k] = &heldKey{action: entry.Action}
	return true
}

// KeyUp returns an Active key to Idle; no-op for Idle keys
func (d *Dispatcher) KeyUp(k Key) {
	delete(d.held, k)
}

// ReleaseAll returns every key to Idle
func (d *Dispatcher) ReleaseAll() {
	clear(d.held)
}

// Update re-dispatches each held key once per elapsed repeat interval
// Keys are visited in sorted order so dispatch is deterministic
func (d *Dispatcher) Update(dt time.Duration) {
	if len(d.held) == 0 || dt <= 0 {
		return
	}

	keys := make([]Key, 0, len(d.held))
	for k := range d.held {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, k := range keys {
		h := d.held[k]
		h.elapsed += dt
		fired := 0
		for h.elapsed >= d.interval {
			h.elapsed -= d.interval
			if fired < parameter.KeyRepeatMaxBurst {
				d.handler.HandleAction(h.action)
				fired++
			}
		}
	}
}

func (d *Dispatcher) Priority() int { return parameter.PriorityInput }

// Active returns the number of held repeat keys
func (d *Dispatcher) Active() int {
	return len(d.held)
}

// IsActive reports whether k is held in the repeating state
func (d *Dispatcher) IsActive(k Key) bool {
	_, ok := d.held[k]
	return ok
}

// SetTable replaces the bindings and releases every held key
func (d *Dispatcher) SetTable(table KeyTable) {
	d.table = table
	d.ReleaseAll()
}
