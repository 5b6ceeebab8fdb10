// Package sandbox is a minimal host engine: impulse integration, gravity, damping,
// a floor clamp and bounding-sphere contact detection with onset-only events
package sandbox

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyfarer/component"
	"github.com/lixenwraith/skyfarer/core"
	"github.com/lixenwraith/skyfarer/event"
	"github.com/lixenwraith/skyfarer/parameter"
	"github.com/lixenwraith/skyfarer/physics"
	"github.com/lixenwraith/skyfarer/vmath"
)

// Config holds simulation constants
type Config struct {
	Gravity       float64
	LinearDamping float64 // Fraction of linear velocity lost per second
}

// DefaultConfig returns the stock sandbox dynamics
func DefaultConfig() Config {
	return Config{
		Gravity:       parameter.Gravity,
		LinearDamping: parameter.LinearDamping,
	}
}

type body struct {
	id       core.Entity
	kind     component.BodyType
	category core.Category
	mask     core.Category
	mass     float64
	angDamp  float64
	angYaw   float64 // Angular factor on the vertical axis
	radius   float64
	halfH    float64
	inertia  float64
	pos      vmath.Vec3F
	vel      vmath.Vec3F
	orient   vmath.Euler
	yawRate  float64
}

// Host implements the engine contract over an in-memory body set
type Host struct {
	mu         sync.RWMutex
	cfg        Config
	queue      *event.ContactQueue
	log        zerolog.Logger
	bodies     map[core.Entity]*body
	byCategory map[core.Category]map[core.Entity]*body
	touching   map[core.Pair]struct{}
	floorY     float64
	hasFloor   bool
	order      []core.Entity
	orderDirty bool
}

// New creates an empty host pushing contact onsets to queue
func New(queue *event.ContactQueue, cfg Config, logger zerolog.Logger) *Host {
	return &Host{
		cfg:        cfg,
		queue:      queue,
		log:        logger.With().Str("component", "sandbox").Logger(),
		bodies:     make(map[core.Entity]*body),
		byCategory: make(map[core.Category]map[core.Entity]*body),
		touching:   make(map[core.Pair]struct{}),
	}
}

// Insert adds the entity's body at its spawn transform
func (h *Host) Insert(e *component.Entity) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if e.Geometry.Kind == component.GeometryFloor || e.Category() == core.CategoryFloor {
		h.floorY = e.Transform.Position.Y
		h.hasFloor = true
	}

	r := e.Geometry.BoundingRadius()
	for _, a := range e.Attachments {
		ar := vmath.V3FMag(a.Offset.Position) + a.Geometry.BoundingRadius()
		r = math.Max(r, ar)
	}
	mass := e.Body.Mass
	if mass <= 0 {
		mass = parameter.DefaultMass
	}
	inertia := 0.4 * mass * r * r
	if inertia <= 0 {
		inertia = mass
	}

	b := &body{
		id:       e.ID,
		kind:     e.Body.Type,
		category: e.Body.Category,
		mask:     e.Body.ContactMask,
		mass:     mass,
		angDamp:  e.Body.AngularDamping,
		angYaw:   e.Body.AngularFactor.Y,
		radius:   r,
		halfH:    e.Geometry.HalfHeight(),
		inertia:  inertia,
		pos:      e.Transform.Position,
		orient:   e.Transform.Orientation,
	}
	h.bodies[e.ID] = b
	set, ok := h.byCategory[b.category]
	if !ok {
		set = make(map[core.Entity]*body)
		h.byCategory[b.category] = set
	}
	set[e.ID] = b
	h.orderDirty = true
}

// Remove detaches a body; unknown ids are ignored
func (h *Host) Remove(id core.Entity) {
	h.mu.Lock()
	defer h.mu.Unlock()

	b, ok := h.bodies[id]
	if !ok {
		return
	}
	delete(h.bodies, id)
	delete(h.byCategory[b.category], id)
	for p := range h.touching {
		if p.A == id || p.B == id {
			delete(h.touching, p)
		}
	}
	h.orderDirty = true
}

// ApplyImpulse changes linear velocity by impulse/mass; static and kinematic bodies ignore it
func (h *Host) ApplyImpulse(id core.Entity, impulse vmath.Vec3F) {
	h.mu.Lock()
	defer h.mu.Unlock()
	b, ok := h.bodies[id]
	if !ok || b.kind != component.BodyDynamic {
		return
	}
	b.vel = vmath.V3FAdd(b.vel, vmath.V3FScale(impulse, 1/b.mass))
}

// ApplyTorque changes yaw rate; only the vertical component is simulated
func (h *Host) ApplyTorque(id core.Entity, t physics.Torque) {
	h.mu.Lock()
	defer h.mu.Unlock()
	b, ok := h.bodies[id]
	if !ok || b.kind != component.BodyDynamic {
		return
	}
	b.yawRate += t.Vector().Y * b.angYaw / b.inertia
}

// Presentation returns the simulated pose
func (h *Host) Presentation(id core.Entity) (component.Transform, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	b, ok := h.bodies[id]
	if !ok {
		return component.Transform{}, false
	}
	return component.Transform{Position: b.pos, Orientation: b.orient}, true
}

// Step integrates dynamic bodies then pushes contact onsets in pair order
func (h *Host) Step(dt time.Duration) {
	s := dt.Seconds()
	if s <= 0 {
		return
	}

	h.mu.Lock()
	order := h.sortedLocked()
	linKeep := math.Pow(1-clamp01(h.cfg.LinearDamping), s)
	for _, id := range order {
		b := h.bodies[id]
		if b.kind != component.BodyDynamic {
			continue
		}
		b.vel.Y += h.cfg.Gravity * s
		b.pos = vmath.V3FAdd(b.pos, vmath.V3FScale(b.vel, s))
		b.vel = vmath.V3FScale(b.vel, linKeep)

		b.orient.Yaw = vmath.WrapAngle(b.orient.Yaw + b.yawRate*s)
		b.yawRate *= math.Pow(1-clamp01(b.angDamp), s)

		if h.hasFloor {
			if rest := h.floorY + b.halfH; b.pos.Y < rest {
				b.pos.Y = rest
				if b.vel.Y < 0 {
					b.vel.Y = 0
				}
			}
		}
	}

	onsets := h.detectLocked(order)
	h.mu.Unlock()

	for _, p := range onsets {
		h.queue.Push(p.A, p.B)
	}
}

// detectLocked recomputes overlapping pairs and returns those not overlapping last step
func (h *Host) detectLocked(order []core.Entity) []core.Pair {
	current := make(map[core.Pair]struct{}, len(h.touching))
	for _, id := range order {
		b := h.bodies[id]
		if b.mask == core.CategoryNone || b.radius <= 0 {
			continue
		}
		for cat, set := range h.byCategory {
			if !b.mask.Tests(cat) {
				continue
			}
			for oid, o := range set {
				if oid == id || o.radius <= 0 {
					continue
				}
				reach := b.radius + o.radius
				if vmath.V3FDistSq(b.pos, o.pos) < reach*reach {
					current[core.NewPair(id, oid)] = struct{}{}
				}
			}
		}
	}

	var onsets []core.Pair
	for p := range current {
		if _, ok := h.touching[p]; !ok {
			onsets = append(onsets, p)
		}
	}
	h.touching = current

	sort.Slice(onsets, func(i, j int) bool {
		if onsets[i].A != onsets[j].A {
			return onsets[i].A < onsets[j].A
		}
		return onsets[i].B < onsets[j].B
	})
	return onsets
}

func (h *Host) sortedLocked() []core.Entity {
	if h.orderDirty {
		h.order = h.order[:0]
		for id := range h.bodies {
			h.order = append(h.order, id)
		}
		sort.Slice(h.order, func(i, j int) bool { return h.order[i] < h.order[j] })
		h.orderDirty = false
	}
	return h.order
}

// Velocity returns the linear velocity of a body
func (h *Host) Velocity(id core.Entity) (vmath.Vec3F, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	b, ok := h.bodies[id]
	if !ok {
		return vmath.Vec3F{}, false
	}
	return b.vel, true
}

// Len returns the number of simulated bodies
func (h *Host) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.bodies)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
