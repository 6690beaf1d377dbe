package palette

import "strings"

// Export writes records as tab-separated "color<TAB>label" lines in the
// given order, without a trailing newline.
func Export(records []Record) string {
	var b strings.Builder
	for i, r := range records {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.Color)
		b.WriteByte('\t')
		b.WriteString(r.Label)
	}
	return b.String()
}
