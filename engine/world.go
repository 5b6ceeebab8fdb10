package engine

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyfarer/component"
	"github.com/lixenwraith/skyfarer/core"
	"github.com/lixenwraith/skyfarer/physics"
	"github.com/lixenwraith/skyfarer/vmath"
)

// ShipState tracks whether the player ship has been spawned
type ShipState uint8

const (
	ShipUninitialized ShipState = iota
	ShipReady
)

func (s ShipState) String() string {
	if s == ShipReady {
		return "ready"
	}
	return "uninitialized"
}

// World owns every spawned entity and mirrors them into the host engine
// All collaborators are injected; there is no package-level state
type World struct {
	mu       sync.RWMutex
	host     Host
	log      zerolog.Logger
	entities map[core.Entity]*component.Entity
	nextID   core.Entity
	ship     core.Entity

	systems []System
}

// NewWorld creates an empty world bound to host
func NewWorld(host Host, logger zerolog.Logger) *World {
	return &World{
		host:     host,
		log:      logger.With().Str("component", "world").Logger(),
		entities: make(map[core.Entity]*component.Entity),
		nextID:   1,
	}
}

// Spawn registers e, assigns its ID and inserts it into the host scene
// Spawning a ship replaces the previous one
func (w *World) Spawn(e *component.Entity) (core.Entity, error) {
	cat := e.Body.Category
	if !cat.Valid() {
		return core.NoEntity, fmt.Errorf("spawn %q: %w (%d)", e.Name, ErrInvalidCategory, uint32(cat))
	}
	e.Body.ContactMask = cat.ContactMask()

	w.mu.Lock()
	if cat == core.CategoryShip && w.ship != core.NoEntity {
		prev := w.ship
		w.removeLocked(prev)
		w.log.Debug().Uint64("entity", uint64(prev)).Msg("ship replaced")
	}
	id := w.nextID
	w.nextID++
	e.ID = id
	w.entities[id] = e
	if cat == core.CategoryShip {
		w.ship = id
	}
	w.mu.Unlock()

	w.host.Insert(e)
	w.log.Debug().
		Uint64("entity", uint64(id)).
		Str("category", cat.String()).
		Str("geometry", e.Geometry.Kind.String()).
		Msg("spawned")
	return id, nil
}

// Remove deletes the entity from the world and the host scene
// Returns false if it was already gone; repeated removal is a no-op
func (w *World) Remove(id core.Entity) bool {
	w.mu.Lock()
	ok := w.removeLocked(id)
	w.mu.Unlock()
	return ok
}

func (w *World) removeLocked(id core.Entity) bool {
	if _, ok := w.entities[id]; !ok {
		return false
	}
	delete(w.entities, id)
	if w.ship == id {
		w.ship = core.NoEntity
	}
	w.host.Remove(id)
	return true
}

// Clear removes every entity, leaving the ship uninitialized
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for id := range w.entities {
		w.removeLocked(id)
	}
}

// Entity returns the registered record for id
func (w *World) Entity(id core.Entity) (*component.Entity, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	e, ok := w.entities[id]
	return e, ok
}

// Contains reports whether id is still present
func (w *World) Contains(id core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.entities[id]
	return ok
}

// Len returns the live entity count
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.entities)
}

// Each visits entities in ascending ID order
// fn must not spawn or remove
func (w *World) Each(fn func(e *component.Entity)) {
	w.mu.RLock()
	ids := make([]core.Entity, 0, len(w.entities))
	for id := range w.entities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	list := make([]*component.Entity, len(ids))
	for i, id := range ids {
		list[i] = w.entities[id]
	}
	w.mu.RUnlock()

	for _, e := range list {
		fn(e)
	}
}

// Pose returns the host presentation pose, falling back to the spawn transform
func (w *World) Pose(id core.Entity) (component.Transform, bool) {
	w.mu.RLock()
	e, ok := w.entities[id]
	w.mu.RUnlock()
	if !ok {
		return component.Transform{}, false
	}
	if t, ok := w.host.Presentation(id); ok {
		return t, true
	}
	return e.Transform, true
}

// Ship returns the ship entity and its readiness
func (w *World) Ship() (core.Entity, ShipState) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.ship == core.NoEntity {
		return core.NoEntity, ShipUninitialized
	}
	return w.ship, ShipReady
}

// ShipOrientation returns the ship's current presentation orientation
// Read fresh on every call; false until a ship is spawned
func (w *World) ShipOrientation() (vmath.Euler, bool) {
	id, state := w.Ship()
	if state != ShipReady {
		return vmath.Euler{}, false
	}
	t, ok := w.Pose(id)
	if !ok {
		return vmath.Euler{}, false
	}
	return t.Orientation, true
}

// ApplyShipImpulse forwards an impulse to the ship body
func (w *World) ApplyShipImpulse(impulse vmath.Vec3F) error {
	id, state := w.Ship()
	if state != ShipReady {
		return ErrShipNotReady
	}
	w.host.ApplyImpulse(id, impulse)
	return nil
}

// ApplyShipTorque forwards an impulse torque to the ship body
func (w *World) ApplyShipTorque(t physics.Torque) error {
	id, state := w.Ship()
	if state != ShipReady {
		return ErrShipNotReady
	}
	w.host.ApplyTorque(id, t)
	return nil
}

// ApplyImpulse forwards an impulse to any present body
func (w *World) ApplyImpulse(id core.Entity, impulse vmath.Vec3F) bool {
	if !w.Contains(id) {
		return false
	}
	w.host.ApplyImpulse(id, impulse)
	return true
}

// AddSystem adds a system and keeps the list sorted by priority
// Equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// Update runs one tick of every system in priority order
func (w *World) Update(dt time.Duration) {
	for _, s := range w.Systems() {
		s.Update(dt)
	}
}
