package component

import "math"

// GeometryKind discriminates geometry descriptors handed to the scene layer
type GeometryKind uint8

const (
	GeometryEmpty GeometryKind = iota // Placeholder for failed asset loads
	GeometrySphere
	GeometryPlane
	GeometryBox
	GeometryPyramid
	GeometryCylinder
	GeometryCone
	GeometryTorus
	GeometryTube
	GeometryCapsule
	GeometryFloor
)

// ShapePalette is the fixed set of random obstacle geometries
var ShapePalette = [...]GeometryKind{
	GeometrySphere,
	GeometryPlane,
	GeometryBox,
	GeometryPyramid,
	GeometryCylinder,
	GeometryCone,
	GeometryTorus,
	GeometryTube,
	GeometryCapsule,
}

// Geometry is a renderer-agnostic shape descriptor
// Field meaning depends on Kind:
//   - Sphere: Radius
//   - Plane: Width x Height
//   - Box: Width x Height x Length, Chamfer
//   - Pyramid: Width x Height x Length
//   - Cylinder: Radius, Height
//   - Cone: Radius (top), Radius2 (bottom), Height
//   - Torus: Radius (ring), Radius2 (pipe)
//   - Tube: Radius (inner), Radius2 (outer), Height
//   - Capsule: Radius (cap), Height
type Geometry struct {
	Kind    GeometryKind
	Radius  float64
	Radius2 float64
	Width   float64
	Height  float64
	Length  float64
	Chamfer float64
	Color   Color
}

// BoundingRadius returns the radius of a sphere enclosing the shape around its center
// Floor and empty geometry return 0 and never overlap
func (g Geometry) BoundingRadius() float64 {
	switch g.Kind {
	case GeometrySphere:
		return g.Radius
	case GeometryPlane:
		return 0.5 * math.Hypot(g.Width, g.Height)
	case GeometryBox, GeometryPyramid:
		return 0.5 * math.Sqrt(g.Width*g.Width+g.Height*g.Height+g.Length*g.Length)
	case GeometryCylinder:
		return math.Hypot(g.Radius, g.Height/2)
	case GeometryCone, GeometryTube:
		return math.Hypot(math.Max(g.Radius, g.Radius2), g.Height/2)
	case GeometryTorus:
		return g.Radius + g.Radius2
	case GeometryCapsule:
		return g.Radius + g.Height/2
	}
	return 0
}

func (k GeometryKind) String() string {
	switch k {
	case GeometryEmpty:
		return "empty"
	case GeometrySphere:
		return "sphere"
	case GeometryPlane:
		return "plane"
	case GeometryBox:
		return "box"
	case GeometryPyramid:
		return "pyramid"
	case GeometryCylinder:
		return "cylinder"
	case GeometryCone:
		return "cone"
	case GeometryTorus:
		return "torus"
	case GeometryTube:
		return "tube"
	case GeometryCapsule:
		return "capsule"
	case GeometryFloor:
		return "floor"
	}
	return "unknown"
}

// HalfHeight returns the vertical extent below the shape center, used for floor resting
func (g Geometry) HalfHeight() float64 {
	switch g.Kind {
	case GeometrySphere:
		return g.Radius
	case GeometryTorus:
		return g.Radius2
	case GeometryBox, GeometryPyramid, GeometryCylinder, GeometryCone, GeometryTube, GeometryCapsule:
		return g.Height / 2
	}
	return 0
}

// ParseGeometryKind resolves a lowercase kind name
func ParseGeometryKind(s string) (GeometryKind, bool) {
	for k := GeometryEmpty; k <= GeometryFloor; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return GeometryEmpty, false
}
