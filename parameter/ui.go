package parameter

// Terminal radar
const (
	RadarScale      = 4.0 // World units per terminal column
	RadarStatusRows = 1   // Rows reserved above the radar for the status line
	RadarRowAspect  = 2.0 // Terminal cells are about twice as tall as wide
)
