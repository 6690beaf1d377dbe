package format

import (
	"fmt"

	"github.com/jsvensson/colorsift/internal/palette"
	"gopkg.in/yaml.v3"
)

type yamlRecord struct {
	Index *int   `yaml:"index,omitempty"`
	Color string `yaml:"color"`
	Label string `yaml:"label"`
}

func encodeYAML(records []palette.Record) ([]byte, error) {
	out := make([]yamlRecord, len(records))
	for i, r := range records {
		index := r.Index
		out[i] = yamlRecord{Index: &index, Color: r.Color, Label: r.Label}
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	return data, nil
}

// decodeYAML reads a sequence of records. Entries without an index take
// their position in the sequence. Indices must be unique and non-negative.
func decodeYAML(data []byte) ([]palette.Record, error) {
	var in []yamlRecord
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}
	records := make([]palette.Record, len(in))
	seen := make(map[int]int, len(in))
	for i, r := range in {
		index := i
		if r.Index != nil {
			index = *r.Index
		}
		if index < 0 {
			return nil, fmt.Errorf("decoding YAML: entry %d: index %d is negative", i, index)
		}
		if prev, ok := seen[index]; ok {
			return nil, fmt.Errorf("decoding YAML: entry %d: index %d already used by entry %d", i, index, prev)
		}
		seen[index] = i
		records[i] = palette.Record{Index: index, Color: r.Color, Label: r.Label}
	}
	return records, nil
}
