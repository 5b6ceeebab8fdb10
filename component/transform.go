package component

import "github.com/lixenwraith/skyfarer/vmath"

// Transform is a world-space pose
type Transform struct {
	Position    vmath.Vec3F
	Orientation vmath.Euler
}

// At returns a transform at position with identity orientation
func At(x, y, z float64) Transform {
	return Transform{Position: vmath.V3F(x, y, z)}
}
