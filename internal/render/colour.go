package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA converts a colorful colour to an opaque color.RGBA, clamping
// out-of-gamut components.
func RGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// HueRamp returns n opaque colours whose hue runs from fromHue to toHue
// (degrees) at fixed saturation and value.
func HueRamp(n int, fromHue, toHue, s, v float64) []color.RGBA {
	out := make([]color.RGBA, 0, max(n, 0))
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out = append(out, RGBA(colorful.Hsv(fromHue+(toHue-fromHue)*t, s, v)))
	}
	return out
}

// Blend mixes a and b in CIE L*a*b* space; t=0 is a, t=1 is b.
func Blend(a, b color.RGBA, t float64) color.RGBA {
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	return RGBA(ca.BlendLab(cb, t))
}
