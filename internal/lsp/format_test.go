package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestFormatEdits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		end      protocol.Position
	}{
		{
			name:     "hex normalized",
			input:    "#FFF, White\n#000000\tBlack",
			expected: "#ffffff\tWhite\n#000000\tBlack\n",
			end:      protocol.Position{Line: 1, Character: 13},
		},
		{
			name:     "blank lines dropped",
			input:    "\n#ff0000\tRed\n\n\n#00ff00\tGreen\n",
			expected: "#ff0000\tRed\n#00ff00\tGreen\n",
			end:      protocol.Position{Line: 5, Character: 0},
		},
		{
			name:     "only whitespace",
			input:    "  \n\n",
			expected: "",
			end:      protocol.Position{Line: 2, Character: 0},
		},
		{
			name:     "invalid colors kept",
			input:    "nope Broken",
			expected: "nope\tBroken\n",
			end:      protocol.Position{Line: 0, Character: 11},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edits, err := formatEdits(tt.input)
			if err != nil {
				t.Fatalf("formatEdits() error = %v", err)
			}
			if len(edits) != 1 {
				t.Fatalf("expected 1 edit, got %d", len(edits))
			}
			if edits[0].NewText != tt.expected {
				t.Errorf("NewText = %q, want %q", edits[0].NewText, tt.expected)
			}
			want := protocol.Range{End: tt.end}
			if edits[0].Range != want {
				t.Errorf("Range = %+v, want %+v", edits[0].Range, want)
			}
		})
	}
}

func TestFormatEditsAlreadyFormatted(t *testing.T) {
	for _, content := range []string{"", "#ff0000\tRed\n#00ff00\tGreen\n"} {
		edits, err := formatEdits(content)
		if err != nil {
			t.Fatalf("formatEdits(%q) error = %v", content, err)
		}
		if edits == nil || len(edits) != 0 {
			t.Errorf("formatEdits(%q) = %v, want no edits", content, edits)
		}
	}
}
