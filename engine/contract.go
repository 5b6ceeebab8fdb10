package engine

import (
	"time"

	"github.com/lixenwraith/skyfarer/component"
	"github.com/lixenwraith/skyfarer/core"
	"github.com/lixenwraith/skyfarer/physics"
	"github.com/lixenwraith/skyfarer/vmath"
)

// Physics is the host engine's body interface consumed by the control core
type Physics interface {
	ApplyImpulse(id core.Entity, impulse vmath.Vec3F)
	ApplyTorque(id core.Entity, t physics.Torque)
	// Presentation returns the pose as last simulated, false if the body is unknown
	Presentation(id core.Entity) (component.Transform, bool)
}

// Scene is the host engine's scene-graph interface
type Scene interface {
	Insert(e *component.Entity)
	Remove(id core.Entity)
}

// Host combines the scene graph and physics simulation of the host engine
// Step advances simulation and pushes contact-begin events to the contact queue
type Host interface {
	Physics
	Scene
	Step(dt time.Duration)
}

// System is a per-tick update participant
type System interface {
	Update(dt time.Duration)
	Priority() int // Lower values run first
}
