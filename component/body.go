package component

import (
	"github.com/lixenwraith/skyfarer/core"
	"github.com/lixenwraith/skyfarer/parameter"
	"github.com/lixenwraith/skyfarer/vmath"
)

// BodyType selects how the host engine simulates a body
type BodyType uint8

const (
	BodyDynamic   BodyType = iota // Integrates forces and impulses
	BodyStatic                    // Never moves
	BodyKinematic                 // Moved only by the host, not by impulses
)

// Body carries the physics body fields honored by the host engine
// ContactMask is derived from Category and never set independently
type Body struct {
	Type           BodyType
	Category       core.Category
	ContactMask    core.Category
	Mass           float64
	Friction       float64
	AngularDamping float64
	// AngularFactor scales angular velocity per axis; (0,1,0) restricts rotation to yaw
	AngularFactor vmath.Vec3F
}

// NewBody returns a body of the given type with the taxonomy contact mask for category
func NewBody(t BodyType, category core.Category) Body {
	return Body{
		Type:           t,
		Category:       category,
		ContactMask:    category.ContactMask(),
		Mass:           parameter.DefaultMass,
		AngularDamping: parameter.DefaultAngularDamp,
		AngularFactor:  vmath.V3F(1, 1, 1),
	}
}
