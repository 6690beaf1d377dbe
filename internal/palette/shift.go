package palette

import (
	"fmt"
	"math/rand/v2"

	"github.com/jsvensson/colorsift/internal/color"
)

// Shifter moves every color one step away from its nearest neighbor.
type Shifter struct {
	// Step is the per-channel move. Zero means 1.
	Step int
	// Rand breaks ties when a channel equals the neighbor's. Nil uses the
	// global source.
	Rand *rand.Rand
}

// ShiftAway applies a single shift pass with step 1.
func ShiftAway(records []Record) ([]Record, error) {
	return (&Shifter{}).Shift(records)
}

// Shift returns a new collection where each record's color has moved one
// step away from its nearest neighbor (by RGB delta) on every channel.
// Channels equal to the neighbor's move up or down at random. Results are
// clipped to [0, 255] and written as #rrggbb.
//
// An empty collection is returned unchanged; a single record has no
// neighbor and fails with ErrNoNeighbor.
func (s *Shifter) Shift(records []Record) ([]Record, error) {
	switch len(records) {
	case 0:
		return []Record{}, nil
	case 1:
		return nil, fmt.Errorf("%w: record %d is the only color", ErrNoNeighbor, records[0].Index)
	}

	stats, err := Analyze(records)
	if err != nil {
		return nil, err
	}

	step := s.Step
	if step <= 0 {
		step = 1
	}

	out := clone(records)
	for i := range out {
		neighbor := stats[position(records, stats[i].Nearest)].RGB
		shifted := color.Color{
			R: s.shiftChannel(stats[i].RGB.R, neighbor.R, step),
			G: s.shiftChannel(stats[i].RGB.G, neighbor.G, step),
			B: s.shiftChannel(stats[i].RGB.B, neighbor.B, step),
		}
		out[i].Color = FromRGB(shifted)
	}
	return out, nil
}

func (s *Shifter) shiftChannel(target, compare uint8, step int) uint8 {
	v := int(target)
	switch {
	case target > compare:
		v += step
	case target < compare:
		v -= step
	case s.coinFlip():
		v += step
	default:
		v -= step
	}
	return uint8(max(0, min(255, v)))
}

func (s *Shifter) coinFlip() bool {
	if s.Rand != nil {
		return s.Rand.IntN(2) == 0
	}
	return rand.IntN(2) == 0
}
