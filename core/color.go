package core

import colorful "github.com/lucasb-eyer/go-colorful"

// RGB stores explicit 8-bit color channels, decoupled from any renderer
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack  = RGB{0, 0, 0}
	RGBWhite  = RGB{255, 255, 255}
	RGBRed    = RGB{255, 0, 0}
	RGBGreen  = RGB{0, 255, 0}
	RGBBlue   = RGB{0, 0, 255}
	RGBYellow = RGB{255, 255, 0}
)

// RGBFromHue returns a fully saturated, full brightness color for hue in [0,1)
func RGBFromHue(hue float64) RGB {
	r, g, b := colorful.Hsv(hue*360, 1, 1).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Hue returns the color hue in [0,1)
func (c RGB) Hue() float64 {
	h, _, _ := c.colorful().Hsv()
	return h / 360
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	r, g, b := c.colorful().BlendRgb(src.colorful(), alpha).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
