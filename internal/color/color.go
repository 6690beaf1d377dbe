package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a color string does not match any
// supported notation.
var ErrInvalidColor = errors.New("invalid color")

// Color represents an RGB color. The R, G, B uint8 fields are the source of truth;
// all output formats are derived from them.
type Color struct {
	R, G, B uint8
}

// HSV holds hue in degrees [0, 360) and saturation and value in [0, 1].
type HSV struct {
	H, S, V float64
}

// Parse parses a color string. Accepted notations, case-insensitive:
//
//	#rgb, #rrggbb, rgb, rrggbb
//	rgb(r, g, b)        channels 0-255
//	hsv(h, s%, v%)      h in degrees, s and v as percent or fraction
func Parse(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(v, "rgb("):
		return parseRGBFunc(v)
	case strings.HasPrefix(v, "hsv("):
		return parseHSVFunc(v)
	default:
		return ParseHex(v)
	}
}

// ParseHex parses a hex color string like "#eb6f92" or "#fff" into a Color.
// The leading # is optional.
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 3 && len(digits) != 6 {
		return Color{}, fmt.Errorf("%w %q: must be 3 or 6 hex digits", ErrInvalidColor, s)
	}
	for _, r := range digits {
		if !isHexDigit(r) {
			return Color{}, fmt.Errorf("%w %q: %q is not a hex digit", ErrInvalidColor, s, r)
		}
	}
	cf, err := colorful.Hex("#" + digits)
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: %w", ErrInvalidColor, s, err)
	}
	return fromColorful(cf), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// funcArgs splits "name(a, b, c)" into its three trimmed arguments.
func funcArgs(s, name string) ([]string, error) {
	inner, ok := strings.CutPrefix(s, name+"(")
	if !ok {
		return nil, fmt.Errorf("%w %q: expected %s(...)", ErrInvalidColor, s, name)
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return nil, fmt.Errorf("%w %q: missing closing parenthesis", ErrInvalidColor, s)
	}
	args := strings.Split(inner, ",")
	if len(args) != 3 {
		return nil, fmt.Errorf("%w %q: %s() takes 3 arguments, got %d", ErrInvalidColor, s, name, len(args))
	}
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return args, nil
}

func parseRGBFunc(s string) (Color, error) {
	args, err := funcArgs(s, "rgb")
	if err != nil {
		return Color{}, err
	}
	var ch [3]uint8
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n < 0 || n > 255 {
			return Color{}, fmt.Errorf("%w %q: channel %q must be an integer 0-255", ErrInvalidColor, s, a)
		}
		ch[i] = uint8(n)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func parseHSVFunc(s string) (Color, error) {
	args, err := funcArgs(s, "hsv")
	if err != nil {
		return Color{}, err
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil || h < 0 || h > 360 {
		return Color{}, fmt.Errorf("%w %q: hue %q must be 0-360", ErrInvalidColor, s, args[0])
	}
	sat, err := parseUnit(args[1])
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: saturation: %w", ErrInvalidColor, s, err)
	}
	val, err := parseUnit(args[2])
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: value: %w", ErrInvalidColor, s, err)
	}
	return FromHSV(HSV{H: h, S: sat, V: val}), nil
}

// parseUnit reads "50%" or "0.5" as a fraction in [0, 1].
func parseUnit(s string) (float64, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(pct, 64)
		if err != nil || f < 0 || f > 100 {
			return 0, fmt.Errorf("%q must be 0%%-100%%", s)
		}
		return f / 100, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f > 1 {
		return 0, fmt.Errorf("%q must be 0-1", s)
	}
	return f, nil
}

// FromHSV converts an HSV triple to the nearest RGB color.
func FromHSV(hsv HSV) Color {
	h := math.Mod(hsv.H, 360)
	if h < 0 {
		h += 360
	}
	return fromColorful(colorful.Hsv(h, hsv.S, hsv.V))
}

// HSV returns the color's hue, saturation and value. Achromatic colors have hue 0.
func (c Color) HSV() HSV {
	h, s, v := c.colorful().Hsv()
	return HSV{H: h, S: s, V: v}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(cf colorful.Color) Color {
	r, g, b := cf.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexBare returns the color as a hex string without leading #, e.g. "eb6f92".
func (c Color) HexBare() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// RGB returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// String returns the hsv() notation accepted by Parse, rounded to whole units.
func (h HSV) String() string {
	return fmt.Sprintf("hsv(%.0f, %.0f%%, %.0f%%)", h.H, h.S*100, h.V*100)
}
