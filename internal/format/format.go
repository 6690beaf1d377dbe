// Package format converts color lists between palette text and the other
// encodings colorsift can read and write.
package format

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jsvensson/colorsift/internal/color"
	"github.com/jsvensson/colorsift/internal/palette"
)

// Kind names an encoding.
type Kind string

const (
	KindText Kind = "text" // tab-separated palette text
	KindHCL  Kind = "hcl"  // a palette block, as used by paletteswap themes
	KindYAML Kind = "yaml" // a sequence of index/color/label mappings
)

// Kinds lists the supported encodings.
var Kinds = []Kind{KindText, KindHCL, KindYAML}

// ParseKind maps an encoding name to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (valid: text, hcl, yaml)", s)
}

// KindFromPath guesses the encoding from a file extension, defaulting to text.
func KindFromPath(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl", ".pstheme":
		return KindHCL
	case ".yaml", ".yml":
		return KindYAML
	default:
		return KindText
	}
}

// Encode writes records in the given encoding.
func Encode(records []palette.Record, kind Kind) ([]byte, error) {
	switch kind {
	case KindText:
		return []byte(palette.Export(records)), nil
	case KindHCL:
		return encodeHCL(records)
	case KindYAML:
		return encodeYAML(records)
	default:
		return nil, fmt.Errorf("unknown format %q", kind)
	}
}

// Decode reads records from data in the given encoding.
func Decode(data []byte, kind Kind) ([]palette.Record, error) {
	switch kind {
	case KindText:
		return palette.Parse(string(data)), nil
	case KindHCL:
		return decodeHCL(data)
	case KindYAML:
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("unknown format %q", kind)
	}
}

// Format normalizes palette text: blank lines are dropped, fields are
// tab-separated and hex colors are written as lowercase #rrggbb. Other
// notations are kept as entered. Non-empty output ends with a newline.
//
// Format never fails on malformed lines, making it suitable for use while
// the user is still typing.
func Format(content string) (string, error) {
	records := palette.Parse(content)
	if len(records) == 0 {
		return "", nil
	}
	for i, r := range records {
		if c, err := color.ParseHex(strings.TrimSpace(r.Color)); err == nil {
			records[i].Color = c.Hex()
		}
	}
	return palette.Export(records) + "\n", nil
}
