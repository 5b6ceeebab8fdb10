package component

import "github.com/lixenwraith/skyfarer/core"

// Color is the diffuse material color of a geometry
type Color = core.RGB
