package palette

import "github.com/jsvensson/colorsift/internal/color"

// ToRGB parses a color string into its RGB channels.
func ToRGB(s string) (color.Color, error) {
	return color.Parse(s)
}

// ToHSV parses a color string into hue, saturation and value.
func ToHSV(s string) (color.HSV, error) {
	c, err := color.Parse(s)
	if err != nil {
		return color.HSV{}, err
	}
	return c.HSV(), nil
}

// FromRGB formats RGB channels as a lowercase #rrggbb string.
func FromRGB(c color.Color) string {
	return c.Hex()
}
