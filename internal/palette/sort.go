package palette

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/jsvensson/colorsift/internal/color"
)

// Mode selects the ordering applied by Sort.
type Mode string

const (
	ModeOriginal Mode = "original" // ascending Index
	ModeHue      Mode = "hue"      // ascending hue
	ModeSelected Mode = "selected" // ascending HSV delta to a reference record
)

// Modes lists the supported sort modes.
var Modes = []Mode{ModeOriginal, ModeHue, ModeSelected}

// ParseMode maps a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q (valid: original, hue, selected)", ErrInvalidMode, s)
}

type sortEntry struct {
	record Record
	key    float64
}

// Sort returns the records reordered by mode. ref is the Index of the
// reference record for ModeSelected and is ignored otherwise. The sort is
// stable, so records with equal keys keep their relative input order.
func Sort(records []Record, mode Mode, ref int) ([]Record, error) {
	if mode == ModeOriginal {
		out := clone(records)
		slices.SortStableFunc(out, func(a, b Record) int {
			return cmp.Compare(a.Index, b.Index)
		})
		return out, nil
	}

	keyFn, err := sortKey(records, mode, ref)
	if err != nil {
		return nil, err
	}
	stats, err := Analyze(records)
	if err != nil {
		return nil, err
	}

	entries := make([]sortEntry, len(records))
	for i, r := range records {
		entries[i] = sortEntry{record: r, key: keyFn(stats[i].HSV)}
	}
	slices.SortStableFunc(entries, func(a, b sortEntry) int {
		return cmp.Compare(a.key, b.key)
	})

	out := make([]Record, len(entries))
	for i, e := range entries {
		out[i] = e.record
	}
	return out, nil
}

func sortKey(records []Record, mode Mode, ref int) (func(color.HSV) float64, error) {
	switch mode {
	case ModeHue:
		return func(h color.HSV) float64 { return h.H }, nil
	case ModeSelected:
		pos := position(records, ref)
		if pos < 0 {
			return nil, fmt.Errorf("%w: no record with index %d", ErrInvalidReference, ref)
		}
		refHSV, err := ToHSV(records[pos].Color)
		if err != nil {
			return nil, fmt.Errorf("reference record %d: %w", ref, err)
		}
		return func(h color.HSV) float64 { return color.HSVDelta(refHSV, h) }, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrInvalidMode, mode)
	}
}
