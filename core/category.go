package core

import "math/bits"

// Category is a collision category bit, exactly one bit set per entity
type Category uint32

const (
	CategoryNone      Category = 0
	CategoryShip      Category = 1 << 0
	CategoryFloor     Category = 1 << 1
	CategoryShape     Category = 1 << 2
	CategoryBank      Category = 1 << 3
	CategoryCollector Category = 1 << 4
)

// contactTable is the fixed category -> contact-test mask taxonomy
var contactTable = map[Category]Category{
	CategoryShip:      CategoryShape,
	CategoryShape:     CategoryShip,
	CategoryBank:      CategoryCollector,
	CategoryCollector: CategoryBank,
	CategoryFloor:     CategoryNone,
}

// ContactMask returns the categories whose contacts are reported for c
// Unknown or composite categories test against nothing
func (c Category) ContactMask() Category {
	return contactTable[c]
}

// Valid reports whether exactly one known category bit is set
func (c Category) Valid() bool {
	if bits.OnesCount32(uint32(c)) != 1 {
		return false
	}
	_, ok := contactTable[c]
	return ok
}

// Tests reports whether c, used as a contact mask, includes category o
func (c Category) Tests(o Category) bool {
	return c&o != 0
}

func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryShip:
		return "ship"
	case CategoryFloor:
		return "floor"
	case CategoryShape:
		return "shape"
	case CategoryBank:
		return "bank"
	case CategoryCollector:
		return "collector"
	}
	return "mixed"
}
