package core

import (
	"math"
	"testing"
)

func TestRGBFromHuePrimaries(t *testing.T) {
	tests := []struct {
		hue  float64
		want RGB
	}{
		{0, RGBRed},
		{1.0 / 3, RGBGreen},
		{2.0 / 3, RGBBlue},
	}
	for _, tt := range tests {
		if got := RGBFromHue(tt.hue); got != tt.want {
			t.Errorf("RGBFromHue(%v) = %v, want %v", tt.hue, got, tt.want)
		}
	}
}

func TestHueRoundTrip(t *testing.T) {
	for _, h := range []float64{0.1, 0.25, 0.5, 0.8} {
		got := RGBFromHue(h).Hue()
		if math.Abs(got-h) > 0.01 {
			t.Errorf("Hue(RGBFromHue(%v)) = %v", h, got)
		}
	}
}

func TestBlendEndpoints(t *testing.T) {
	if got := RGBBlack.Blend(RGBWhite, 0); got != RGBBlack {
		t.Errorf("alpha 0 = %v", got)
	}
	if got := RGBBlack.Blend(RGBWhite, 1); got != RGBWhite {
		t.Errorf("alpha 1 = %v", got)
	}
	mid := RGBBlack.Blend(RGBWhite, 0.5)
	if mid.R < 120 || mid.R > 135 || mid.R != mid.G || mid.G != mid.B {
		t.Errorf("alpha 0.5 = %v", mid)
	}
}
