package system

import (
	"time"

	"github.com/lixenwraith/skyfarer/component"
	"github.com/lixenwraith/skyfarer/engine"
	"github.com/lixenwraith/skyfarer/parameter"
	"github.com/lixenwraith/skyfarer/vmath"
)

// PeriodicSystem drives entities carrying a periodic behavior record
type PeriodicSystem struct {
	world *engine.World
	rng   *vmath.FastRand
}

func NewPeriodicSystem(world *engine.World, rng *vmath.FastRand) *PeriodicSystem {
	return &PeriodicSystem{world: world, rng: rng}
}

func (s *PeriodicSystem) Priority() int {
	return parameter.PriorityPeriodic
}

func (s *PeriodicSystem) Update(dt time.Duration) {
	s.world.Each(func(e *component.Entity) {
		if e.Periodic == nil {
			return
		}
		for n := e.Periodic.Advance(dt); n > 0; n-- {
			s.fire(e)
		}
	})
}

func (s *PeriodicSystem) fire(e *component.Entity) {
	switch e.Periodic.Behavior {
	case component.BehaviorRandomWalk:
		s.world.ApplyImpulse(e.ID, RandomWalkImpulse(s.rng, e.Periodic.Magnitude))
	}
}

// RandomWalkImpulse draws a horizontal impulse with per-axis magnitude in [m/2, 3m/2) and random sign
func RandomWalkImpulse(rng *vmath.FastRand, m float64) vmath.Vec3F {
	x := (rng.Float64()*m + m/2) * rng.Sign()
	z := (rng.Float64()*m + m/2) * rng.Sign()
	return vmath.V3F(x, 0, z)
}
