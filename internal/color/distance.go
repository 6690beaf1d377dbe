package color

import "math"

// MaxRGBDelta is the largest possible RGBDelta, between black and white.
const MaxRGBDelta = 3 * 255

// RGBDelta returns the Manhattan distance between two colors' channels, in [0, 765].
func RGBDelta(a, b Color) int {
	return absDiff(a.R, b.R) + absDiff(a.G, b.G) + absDiff(a.B, b.B)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// HueDelta returns the circular distance between two hues in degrees, in [0, 180].
// Hues 359 and 1 are 2 degrees apart.
func HueDelta(h1, h2 float64) float64 {
	d := math.Abs(h1 - h2)
	return math.Min(d, 360-d)
}

// HSVDelta returns the hue delta normalized to [0, 1] plus the absolute
// saturation and value differences. The result is in [0, 3].
func HSVDelta(a, b HSV) float64 {
	return HueDelta(a.H, b.H)/180 + math.Abs(a.S-b.S) + math.Abs(a.V-b.V)
}
