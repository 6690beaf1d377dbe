// Package colorsift loads and saves color lists. The list engine lives in
// internal/palette; this package adds file handling on top of it.
package colorsift

import (
	"fmt"
	"os"

	"github.com/jsvensson/colorsift/internal/format"
	"github.com/jsvensson/colorsift/internal/palette"
)

// Record is a single labelled color.
type Record = palette.Record

// Load reads a color list file. The encoding is chosen from the file
// extension: .hcl and .pstheme read a palette block, .yaml and .yml a YAML
// list, anything else palette text.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading colors: %w", err)
	}
	records, err := format.Decode(data, format.KindFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("loading colors from %s: %w", path, err)
	}
	return records, nil
}

// Save writes records to path in the given encoding. Text output ends with
// a newline.
func Save(path string, records []Record, kind format.Kind) error {
	data, err := format.Encode(records, kind)
	if err != nil {
		return fmt.Errorf("encoding colors: %w", err)
	}
	if kind == format.KindText && len(data) > 0 {
		data = append(data, '\n')
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
