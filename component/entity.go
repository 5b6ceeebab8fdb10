package component

import "github.com/lixenwraith/skyfarer/core"

// Attachment is a child geometry rigidly offset from its parent
type Attachment struct {
	Geometry Geometry
	Offset   Transform
}

// Entity is the full record of a categorized world entity
// Owned by exactly one world; ID is assigned on registration
type Entity struct {
	ID          core.Entity
	Name        string
	Geometry    Geometry
	Transform   Transform
	Body        Body
	Attachments []Attachment
	Periodic    *Periodic
}

// Category returns the body category of the entity
func (e *Entity) Category() core.Category {
	return e.Body.Category
}
