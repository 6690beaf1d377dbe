package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/colorsift/internal/color"
	"github.com/jsvensson/colorsift/internal/palette"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagSource = "colorsift"

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

// AnalysisResult holds everything derived from one palette document.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Records     []palette.Record
	Colors      []ColorLocation
	// Stats for every record with a valid color, keyed by Index. Nearest
	// neighbors are computed among valid colors only.
	Stats map[int]palette.Stats
}

// ColorLocation records a parsed color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color color.Color
	Index int
}

// Analyze parses palette text and produces color locations, stats and
// diagnostics. Every record is checked; invalid colors do not stop analysis.
func Analyze(content string) *AnalysisResult {
	result := &AnalysisResult{
		Diagnostics: []protocol.Diagnostic{},
		Records:     palette.Parse(content),
		Stats:       make(map[int]palette.Stats),
	}

	lines := splitLines(content)
	lineOf := recordLines(lines, len(result.Records))

	valid := make([]palette.Record, 0, len(result.Records))
	ranges := make(map[int]protocol.Range, len(result.Records))
	for i, r := range result.Records {
		rng := colorRange(lines, lineOf[i], r.Color)
		ranges[r.Index] = rng

		c, err := color.Parse(r.Color)
		if err != nil {
			result.addDiagnostic(rng, DiagError, err.Error())
			continue
		}
		valid = append(valid, r)
		result.Colors = append(result.Colors, ColorLocation{Range: rng, Color: c, Index: r.Index})
	}

	if len(valid) == 0 {
		return result
	}
	stats, err := palette.Analyze(valid)
	if err != nil {
		return result
	}
	for i, r := range valid {
		result.Stats[r.Index] = stats[i]
	}

	for _, r := range valid {
		st := result.Stats[r.Index]
		if st.Nearest == palette.NoSelection || st.Nearest > r.Index {
			continue
		}
		// Only the later of two identical colors is flagged.
		if color.RGBDelta(st.RGB, result.Stats[st.Nearest].RGB) == 0 {
			result.addDiagnostic(ranges[r.Index], DiagWarning,
				fmt.Sprintf("same color as %s", result.describe(st.Nearest)))
		}
	}
	return result
}

// record returns the record with the given Index.
func (r *AnalysisResult) record(index int) (palette.Record, bool) {
	for _, rec := range r.Records {
		if rec.Index == index {
			return rec, true
		}
	}
	return palette.Record{}, false
}

// describe names a record by label, falling back to its position.
func (r *AnalysisResult) describe(index int) string {
	rec, ok := r.record(index)
	if !ok || rec.Label == "" {
		return fmt.Sprintf("color %d", index)
	}
	return fmt.Sprintf("%q", rec.Label)
}

func (r *AnalysisResult) addDiagnostic(rng protocol.Range, sev protocol.DiagnosticSeverity, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    rng,
		Severity: &sev,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}

// splitLines splits content into lines, dropping the \r of CRLF endings.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// recordLines maps each of n parsed records to its source line. Parsing
// drops leading blank lines and empty lines between records.
func recordLines(lines []string, n int) []int {
	out := make([]int, 0, n)
	li := 0
	for len(out) < n && li < len(lines) {
		blank := lines[li] == ""
		if len(out) == 0 {
			blank = strings.TrimSpace(lines[li]) == ""
		}
		if !blank {
			out = append(out, li)
		}
		li++
	}
	for len(out) < n {
		out = append(out, len(lines)-1)
	}
	return out
}

// colorRange locates colorText on line li. An empty color covers the whole line.
func colorRange(lines []string, li int, colorText string) protocol.Range {
	line := lines[li]
	start, end := 0, len(line)
	if colorText != "" {
		if col := strings.Index(line, colorText); col >= 0 {
			start, end = col, col+len(colorText)
		}
	}
	return protocol.Range{
		Start: protocol.Position{Line: uint32(li), Character: uint32(start)},
		End:   protocol.Position{Line: uint32(li), Character: uint32(end)},
	}
}
