package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Brighten returns a brighter version of the given color by raising its
// HSL lightness by percentage (0.0 to 1.0).
func Brighten(color Color, percentage float64) Color {
	return adjustLightness(color, percentage)
}

// Darken returns a darker version of the given color by lowering its
// HSL lightness by percentage (0.0 to 1.0).
func Darken(color Color, percentage float64) Color {
	return adjustLightness(color, -percentage)
}

func adjustLightness(c Color, delta float64) Color {
	h, s, l := c.colorful().Hsl()
	l = math.Max(0, math.Min(1, l+delta))
	return fromColorful(colorful.Hsl(h, s, l))
}
