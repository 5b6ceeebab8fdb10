package parameter

import "time"

// Thrust quantization and boost
const (
	// ThrustDetentScale is K in floor(|v*K|)*sign(v); observed range 5-10
	ThrustDetentScale = 10.0
	// ThrustBoostOffset is added to raw y before the vertical boost divisor
	ThrustBoostOffset = 0.1
	// ThrustBoostDivisorMin floors |y_raw + offset|, capping the boost at 1/min
	ThrustBoostDivisorMin = 0.1
	// TurnTorque is the fixed yaw torque magnitude for left/right turns
	TurnTorque = 10.0
)

// Host sandbox dynamics
const (
	Gravity            = -5.0
	PhysicsTick        = 16 * time.Millisecond
	LinearDamping      = 0.1 // Fraction of velocity lost per second
	DefaultAngularDamp = 0.1
	ShipAngularDamping = 0.9
	DefaultMass        = 1.0
	BrickMass          = 100.0
	BrickFriction      = 100.0
)
