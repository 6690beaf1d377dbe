package palette

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Record
	}{
		{
			name:  "tab separated",
			input: "#ff0000\tRed\n#00ff00\tGreen\n#0000ff\tBlue",
			want: []Record{
				{Index: 0, Color: "#ff0000", Label: "Red"},
				{Index: 1, Color: "#00ff00", Label: "Green"},
				{Index: 2, Color: "#0000ff", Label: "Blue"},
			},
		},
		{
			name:  "comma separated with spaces",
			input: "#fff, White\n#000,Black",
			want: []Record{
				{Index: 0, Color: "#fff", Label: "White"},
				{Index: 1, Color: "#000", Label: "Black"},
			},
		},
		{
			name:  "space separated keeps rest of line",
			input: "#808080 Mid gray",
			want:  []Record{{Index: 0, Color: "#808080", Label: "Mid gray"}},
		},
		{
			name:  "tab wins over comma",
			input: "#123456\tNavy, dark",
			want:  []Record{{Index: 0, Color: "#123456", Label: "Navy, dark"}},
		},
		{
			name:  "comma wins over space",
			input: "#123456,Navy blue",
			want:  []Record{{Index: 0, Color: "#123456", Label: "Navy blue"}},
		},
		{
			name:  "missing label",
			input: "#abcdef",
			want:  []Record{{Index: 0, Color: "#abcdef", Label: ""}},
		},
		{
			name:  "blank lines collapse",
			input: "\n\n#111111\tOne\n\n\n#222222\tTwo\n\n",
			want: []Record{
				{Index: 0, Color: "#111111", Label: "One"},
				{Index: 1, Color: "#222222", Label: "Two"},
			},
		},
		{
			name:  "crlf line endings",
			input: "#111111\tOne\r\n#222222\tTwo\r\n",
			want: []Record{
				{Index: 0, Color: "#111111", Label: "One"},
				{Index: 1, Color: "#222222", Label: "Two"},
			},
		},
		{
			name:  "functional notation keeps its commas",
			input: "rgb(1, 2, 3) Dark\nhsv(120, 50%, 50%),Moss",
			want: []Record{
				{Index: 0, Color: "rgb(1, 2, 3)", Label: "Dark"},
				{Index: 1, Color: "hsv(120, 50%, 50%)", Label: "Moss"},
			},
		},
		{
			name:  "uppercase functional notation",
			input: "  RGB(1, 2, 3)\tDark",
			want:  []Record{{Index: 0, Color: "RGB(1, 2, 3)", Label: "Dark"}},
		},
		{
			name:  "parentheses in a hex line do not hide delimiters",
			input: "#f00 Red (warm, bright)",
			want:  []Record{{Index: 0, Color: "#f00 Red (warm", Label: "bright)"}},
		},
		{
			name:  "parentheses in a label after a space",
			input: "#f00 Red (warm)",
			want:  []Record{{Index: 0, Color: "#f00", Label: "Red (warm)"}},
		},
		{
			name:  "invalid colors are kept",
			input: "not-a-color\tOops",
			want:  []Record{{Index: 0, Color: "not-a-color", Label: "Oops"}},
		},
		{
			name:  "empty input",
			input: "",
			want:  []Record{},
		},
		{
			name:  "whitespace only",
			input: " \n\t\n ",
			want:  []Record{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
