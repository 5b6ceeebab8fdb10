package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skyfarer/core"
)

// Radar palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)
	RgbStatusText = tcell.NewRGBColor(192, 202, 245)
	RgbStatusDim  = tcell.NewRGBColor(86, 95, 137)
)

// Flash colors; flashes fade from effect toward background
var (
	flashBright = core.RGB{R: 255, G: 158, B: 100}
	flashDim    = core.RGB{R: 26, G: 27, B: 38}
)

// flashColor returns the flash color with life in [0,1] remaining
func flashColor(life float64) tcell.Color {
	return RGBToTcell(flashDim.Blend(flashBright, life))
}

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}
