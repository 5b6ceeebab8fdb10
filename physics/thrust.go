package physics

import (
	"math"

	"github.com/lixenwraith/skyfarer/core"
	"github.com/lixenwraith/skyfarer/parameter"
	"github.com/lixenwraith/skyfarer/vmath"
)

// ThrustConfig holds the tunable thrust mapping constants
type ThrustConfig struct {
	// K is the detent scale: output steps are floor(|v*K|)
	K float64
	// BoostOffset is added to raw y before the vertical divisor
	BoostOffset float64
	// BoostDivisorMin floors |y_raw + BoostOffset|; must be positive
	BoostDivisorMin float64
	// TurnTorque is the fixed yaw torque magnitude
	TurnTorque float64
}

// DefaultThrustConfig returns the standard tuning
func DefaultThrustConfig() ThrustConfig {
	return ThrustConfig{
		K:               parameter.ThrustDetentScale,
		BoostOffset:     parameter.ThrustBoostOffset,
		BoostDivisorMin: parameter.ThrustBoostDivisorMin,
		TurnTorque:      parameter.TurnTorque,
	}
}

// RawDirection returns the unquantized world-space vector for a body-relative direction
// o is the presentation orientation (pitch=cx, yaw=cy, roll=cz); front and back are exact negations
func RawDirection(o vmath.Euler, d core.Direction) vmath.Vec3F {
	cx, cy, cz := o.Pitch, o.Yaw, o.Roll
	sx, cxs := math.Sin(cx), math.Cos(cx)
	sy, cys := math.Sin(cy), math.Cos(cy)
	sz, czs := math.Sin(cz), math.Cos(cz)

	switch d {
	case core.DirFront:
		return vmath.Vec3F{X: -sy, Y: -sx * sz, Z: -cys * cxs}
	case core.DirBack:
		return vmath.Vec3F{X: sy, Y: sx * math.Sin(-cz), Z: cys * cxs}
	case core.DirUp:
		return vmath.Vec3F{X: sz, Y: cxs * czs, Z: sx}
	case core.DirDown:
		return vmath.Vec3F{X: -sz, Y: -cxs * czs, Z: -sx}
	case core.DirRight:
		return vmath.Vec3F{X: czs * cys, Y: sx * sz, Z: sx * sy}
	case core.DirLeft:
		return vmath.Vec3F{X: -czs * cys, Y: -sx * sz, Z: -sx * sy}
	}
	return vmath.Vec3F{}
}

// detentSteps returns floor(|v*k|) carrying the sign of v; zero inside the dead zone
// A value at or past the float grid point (s+1)/k counts as s+1 steps, so grid values
// produced by Quantize keep their step count when re-quantized
func detentSteps(v, k float64) float64 {
	abs := math.Abs(v)
	steps := math.Floor(abs * k)
	if abs >= (steps+1)/k {
		steps++
	}
	if steps == 0 {
		return 0
	}
	return math.Copysign(steps, v)
}

// Quantize snaps v onto the 1/k detent grid toward zero
// Values with |v*k| < 1 return exactly 0; Quantize(Quantize(v)) == Quantize(v)
func Quantize(v, k float64) float64 {
	if k <= 0 {
		return 0
	}
	return detentSteps(v, k) / k
}

// verticalBoost applies the y-only speedup: steps(y) / max(|y + offset|, floor)
func verticalBoost(y float64, cfg ThrustConfig) float64 {
	steps := detentSteps(y, cfg.K)
	if steps == 0 {
		return 0
	}
	div := math.Abs(y + cfg.BoostOffset)
	if div < cfg.BoostDivisorMin {
		div = cfg.BoostDivisorMin
	}
	return steps / div
}

// Thrust maps an orientation and relative direction to a world-space impulse
// Components are in detent steps; y carries the vertical boost
func Thrust(o vmath.Euler, d core.Direction, cfg ThrustConfig) vmath.Vec3F {
	raw := RawDirection(o, d)
	return vmath.Vec3F{
		X: detentSteps(raw.X, cfg.K),
		Y: verticalBoost(raw.Y, cfg),
		Z: detentSteps(raw.Z, cfg.K),
	}
}
