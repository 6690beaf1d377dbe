// Package palette is the color list engine: it parses pasted color lists
// into records, derives per-record statistics, orders records by similarity,
// nudges near-duplicate colors apart and writes the list back out as text.
//
// Every operation takes a collection and returns a new one. Inputs are never
// modified, so callers can compare old and new slices to detect changes.
// A record's Index is assigned by Parse and survives every reordering.
package palette
