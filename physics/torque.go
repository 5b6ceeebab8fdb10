package physics

import (
	"github.com/lixenwraith/skyfarer/core"
	"github.com/lixenwraith/skyfarer/vmath"
)

// Torque is an axis-angle impulse torque as consumed by the host engine
type Torque struct {
	Axis  vmath.Vec3F
	Angle float64
}

// Vector returns the effective torque vector Axis*Angle
func (t Torque) Vector() vmath.Vec3F {
	return vmath.V3FScale(t.Axis, t.Angle)
}

// Turn returns the fixed yaw torque for a left/right turn
// Independent of orientation; false for any other direction
func Turn(d core.Direction, cfg ThrustConfig) (Torque, bool) {
	switch d {
	case core.DirRight:
		return Torque{Axis: vmath.V3F(0, -cfg.TurnTorque, 0), Angle: -1}, true
	case core.DirLeft:
		return Torque{Axis: vmath.V3F(0, cfg.TurnTorque, 0), Angle: -1}, true
	}
	return Torque{}, false
}
