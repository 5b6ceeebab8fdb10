package vmath

import "math"

// Euler is an orientation as (pitch, yaw, roll) radians about (x, y, z)
type Euler struct {
	Pitch, Yaw, Roll float64
}

// WrapAngle folds an angle into (-Pi, Pi]
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
