package palette

import (
	"regexp"
	"strings"
)

var newlineRuns = regexp.MustCompile(`\n+`)

// delimiters in priority order.
var delimiters = []byte{'\t', ',', ' '}

// Parse splits pasted text into records, one per non-empty line.
//
// Each line is split once on the first delimiter it contains, checked in the
// order tab, comma, space. Delimiters inside parentheses belong to rgb() and
// hsv() notation and are skipped. The first part is the color and the rest
// is the label. Colors are not validated. Input that is empty after trimming
// yields an empty collection.
func Parse(text string) []Record {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return []Record{}
	}
	text = newlineRuns.ReplaceAllString(text, "\n")

	lines := strings.Split(text, "\n")
	records := make([]Record, 0, len(lines))
	for i, line := range lines {
		c, label := splitLine(line)
		records = append(records, Record{Index: i, Color: c, Label: label})
	}
	return records
}

func splitLine(line string) (string, string) {
	index := strings.IndexByte
	if functional(line) {
		index = indexOutsideParens
	}
	for _, sep := range delimiters {
		i := index(line, sep)
		if i < 0 {
			continue
		}
		c, label := line[:i], line[i+1:]
		if sep == ',' {
			return strings.TrimSpace(c), strings.TrimSpace(label)
		}
		return c, label
	}
	return line, ""
}

// functional reports whether the line starts with an rgb() or hsv() color,
// whose arguments must not be taken as delimiters.
func functional(line string) bool {
	prefix := strings.ToLower(strings.TrimLeft(line, " \t"))
	return strings.HasPrefix(prefix, "rgb(") || strings.HasPrefix(prefix, "hsv(")
}

// indexOutsideParens returns the index of the first sep at parenthesis depth 0, or -1.
func indexOutsideParens(s string, sep byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
