package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyfarer/component"
	"github.com/lixenwraith/skyfarer/core"
	"github.com/lixenwraith/skyfarer/physics"
	"github.com/lixenwraith/skyfarer/vmath"
)

// fakeHost records scene and physics calls
type fakeHost struct {
	inserted map[core.Entity]*component.Entity
	removed  []core.Entity
	impulses map[core.Entity][]vmath.Vec3F
	torques  map[core.Entity][]physics.Torque
	poses    map[core.Entity]component.Transform
	steps    int
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		inserted: make(map[core.Entity]*component.Entity),
		impulses: make(map[core.Entity][]vmath.Vec3F),
		torques:  make(map[core.Entity][]physics.Torque),
		poses:    make(map[core.Entity]component.Transform),
	}
}

func (h *fakeHost) Insert(e *component.Entity) { h.inserted[e.ID] = e }
func (h *fakeHost) Remove(id core.Entity) {
	delete(h.inserted, id)
	h.removed = append(h.removed, id)
}
func (h *fakeHost) ApplyImpulse(id core.Entity, v vmath.Vec3F) {
	h.impulses[id] = append(h.impulses[id], v)
}
func (h *fakeHost) ApplyTorque(id core.Entity, t physics.Torque) {
	h.torques[id] = append(h.torques[id], t)
}
func (h *fakeHost) Presentation(id core.Entity) (component.Transform, bool) {
	t, ok := h.poses[id]
	return t, ok
}
func (h *fakeHost) Step(time.Duration) { h.steps++ }

func newEntity(cat core.Category) *component.Entity {
	return &component.Entity{
		Name: cat.String(),
		Body: component.NewBody(component.BodyDynamic, cat),
	}
}

func TestSpawnAssignsIDsAndInserts(t *testing.T) {
	host := newFakeHost()
	w := NewWorld(host, zerolog.Nop())

	a, err := w.Spawn(newEntity(core.CategoryShape))
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	b, _ := w.Spawn(newEntity(core.CategoryBank))
	if a == core.NoEntity || b <= a {
		t.Errorf("ids not increasing: %d, %d", a, b)
	}
	if len(host.inserted) != 2 || w.Len() != 2 {
		t.Errorf("inserted %d, world len %d", len(host.inserted), w.Len())
	}
	e, _ := w.Entity(b)
	if e.Body.ContactMask != core.CategoryCollector {
		t.Errorf("bank mask = %v", e.Body.ContactMask)
	}
}

func TestSpawnRejectsInvalidCategory(t *testing.T) {
	w := NewWorld(newFakeHost(), zerolog.Nop())
	for _, cat := range []core.Category{core.CategoryNone, core.CategoryShip | core.CategoryShape, 1 << 7} {
		e := &component.Entity{Body: component.Body{Category: cat}}
		if _, err := w.Spawn(e); !errors.Is(err, ErrInvalidCategory) {
			t.Errorf("category %d: err = %v", cat, err)
		}
	}
	if w.Len() != 0 {
		t.Errorf("invalid entities were registered")
	}
}

func TestRemoveIdempotent(t *testing.T) {
	host := newFakeHost()
	w := NewWorld(host, zerolog.Nop())
	id, _ := w.Spawn(newEntity(core.CategoryShape))

	if !w.Remove(id) {
		t.Fatal("first remove should report true")
	}
	if w.Remove(id) {
		t.Error("second remove should report false")
	}
	if len(host.removed) != 1 {
		t.Errorf("host saw %d removals, want 1", len(host.removed))
	}
}

func TestShipLifecycle(t *testing.T) {
	host := newFakeHost()
	w := NewWorld(host, zerolog.Nop())

	if _, state := w.Ship(); state != ShipUninitialized {
		t.Fatalf("state before spawn = %v", state)
	}
	if _, ok := w.ShipOrientation(); ok {
		t.Error("orientation should be unavailable before spawn")
	}
	if err := w.ApplyShipImpulse(vmath.V3F(1, 0, 0)); !errors.Is(err, ErrShipNotReady) {
		t.Errorf("impulse err = %v", err)
	}

	first, _ := w.Spawn(newEntity(core.CategoryShip))
	second, _ := w.Spawn(newEntity(core.CategoryShip))
	if w.Contains(first) {
		t.Error("previous ship should be replaced")
	}
	id, state := w.Ship()
	if id != second || state != ShipReady {
		t.Errorf("ship = %d %v", id, state)
	}

	host.poses[second] = component.Transform{Orientation: vmath.Euler{Yaw: 1.25}}
	o, ok := w.ShipOrientation()
	if !ok || o.Yaw != 1.25 {
		t.Errorf("orientation = %+v %v", o, ok)
	}
	host.poses[second] = component.Transform{Orientation: vmath.Euler{Yaw: -0.5}}
	if o, _ := w.ShipOrientation(); o.Yaw != -0.5 {
		t.Errorf("orientation not read fresh: %+v", o)
	}

	if err := w.ApplyShipTorque(physics.Torque{Axis: vmath.V3F(0, 10, 0), Angle: -1}); err != nil {
		t.Fatalf("torque: %v", err)
	}
	if len(host.torques[second]) != 1 {
		t.Error("torque not forwarded")
	}

	w.Remove(second)
	if _, state := w.Ship(); state != ShipUninitialized {
		t.Error("removing ship should reset state")
	}
}

func TestPoseFallsBackToSpawnTransform(t *testing.T) {
	w := NewWorld(newFakeHost(), zerolog.Nop())
	e := newEntity(core.CategoryBank)
	e.Transform = component.At(3, 4, 5)
	id, _ := w.Spawn(e)

	p, ok := w.Pose(id)
	if !ok || p.Position != vmath.V3F(3, 4, 5) {
		t.Errorf("pose = %+v %v", p, ok)
	}
	if _, ok := w.Pose(id + 100); ok {
		t.Error("unknown entity should have no pose")
	}
}

func TestClear(t *testing.T) {
	host := newFakeHost()
	w := NewWorld(host, zerolog.Nop())
	w.Spawn(newEntity(core.CategoryShip))
	w.Spawn(newEntity(core.CategoryShape))
	w.Clear()
	if w.Len() != 0 || len(host.inserted) != 0 {
		t.Errorf("clear left %d/%d", w.Len(), len(host.inserted))
	}
	if _, state := w.Ship(); state != ShipUninitialized {
		t.Error("ship should be uninitialized after clear")
	}
}

type orderSystem struct {
	prio int
	log  *[]int
}

func (s orderSystem) Priority() int         { return s.prio }
func (s orderSystem) Update(time.Duration) { *s.log = append(*s.log, s.prio) }

func TestSystemsRunInPriorityOrder(t *testing.T) {
	host := newFakeHost()
	w := NewWorld(host, zerolog.Nop())
	var order []int
	w.AddSystem(orderSystem{60, &order})
	w.AddSystem(orderSystem{10, &order})
	w.AddSystem(NewStepSystem(host))
	w.AddSystem(orderSystem{20, &order})

	w.Update(16 * time.Millisecond)

	want := []int{10, 20, 60}
	if len(order) != len(want) {
		t.Fatalf("order = %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
	if host.steps != 1 {
		t.Errorf("host stepped %d times", host.steps)
	}
}
