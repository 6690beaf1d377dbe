package palette

import (
	"fmt"

	"github.com/jsvensson/colorsift/internal/color"
)

// NoSelection is the reference index used when no record is selected.
const NoSelection = -1

// Record is one entry of a color list.
type Record struct {
	Index int    // position in the imported list, never reassigned
	Color string // color notation as entered, see color.Parse
	Label string
}

// Stats are the values derived from a record's color within its collection.
type Stats struct {
	RGB     color.Color
	HSV     color.HSV
	Nearest int // Index of the closest other record by RGB delta, or NoSelection
}

// SetColor returns a copy of records where the record with the given Index
// has its color replaced by value, normalized to #rrggbb.
func SetColor(records []Record, index int, value string) ([]Record, error) {
	c, err := color.Parse(value)
	if err != nil {
		return nil, err
	}
	pos := position(records, index)
	if pos < 0 {
		return nil, fmt.Errorf("%w: no record with index %d", ErrInvalidReference, index)
	}
	out := clone(records)
	out[pos].Color = c.Hex()
	return out, nil
}

// position returns the slice position of the record with the given Index, or -1.
func position(records []Record, index int) int {
	for i, r := range records {
		if r.Index == index {
			return i
		}
	}
	return -1
}

func clone(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	return out
}
