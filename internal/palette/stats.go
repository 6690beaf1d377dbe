package palette

import (
	"fmt"

	"github.com/jsvensson/colorsift/internal/color"
)

// Analyze computes Stats for every record, in input order.
//
// The nearest neighbor search compares every pair, which is fine for the
// tens to hundreds of colors a pasted list holds. Ties go to the lower Index.
func Analyze(records []Record) ([]Stats, error) {
	stats := make([]Stats, len(records))
	for i, r := range records {
		c, err := color.Parse(r.Color)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", r.Index, err)
		}
		stats[i] = Stats{RGB: c, HSV: c.HSV(), Nearest: NoSelection}
	}

	for i := range stats {
		best, bestDelta := -1, color.MaxRGBDelta+1
		for j := range stats {
			if i == j {
				continue
			}
			d := color.RGBDelta(stats[i].RGB, stats[j].RGB)
			if d < bestDelta || (d == bestDelta && records[j].Index < records[best].Index) {
				best, bestDelta = j, d
			}
		}
		if best >= 0 {
			stats[i].Nearest = records[best].Index
		}
	}
	return stats, nil
}
