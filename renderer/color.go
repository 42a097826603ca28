package renderer

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// strokeColor converts a particle's hue (degrees, any range) and alpha to
// the hsla(hue, 100%, 60%, alpha) stroke the effect is defined with.
func strokeColor(hue, alpha float64) color.RGBA {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}

	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}

	r, g, b := colorful.Hsl(h, 1.0, 0.6).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: uint8(alpha * 255)}
}
