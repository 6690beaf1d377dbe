package lsp

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

const hoverDoc = "#191724\tBase\nrgb(235, 111, 146)\tLove\n#1a1825\n"

func hoverMarkdown(t *testing.T, content string, pos protocol.Position) string {
	t.Helper()
	h := hover(Analyze(content), content, pos)
	if h == nil {
		t.Fatalf("expected hover at %+v", pos)
	}
	mc, ok := h.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("expected MarkupContent, got %T", h.Contents)
	}
	if mc.Kind != protocol.MarkupKindMarkdown {
		t.Errorf("expected markdown kind, got %q", mc.Kind)
	}
	return mc.Value
}

func TestHover(t *testing.T) {
	tests := []struct {
		name    string
		pos     protocol.Position
		want    []string
		notWant []string
	}{
		{
			name: "hex with label",
			pos:  protocol.Position{Line: 0, Character: 2},
			want: []string{
				"**Base**",
				"`#191724`",
				"rgb(25, 23, 36)",
				"Nearest: color 2 `#1a1825`, distance 3",
			},
			notWant: []string{" = "},
		},
		{
			name: "rgb notation shows source",
			pos:  protocol.Position{Line: 1, Character: 5},
			want: []string{
				"**Love**",
				"`rgb(235, 111, 146)` = `#eb6f92`",
				"hsv(",
				"Nearest: color 2",
			},
		},
		{
			name:    "unlabelled",
			pos:     protocol.Position{Line: 2, Character: 0},
			want:    []string{"`#1a1825`", `Nearest: "Base" ` + "`#191724`, distance 3"},
			notWant: []string{"**"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := hoverMarkdown(t, hoverDoc, tt.pos)
			for _, s := range tt.want {
				if !strings.Contains(md, s) {
					t.Errorf("hover should contain %q, got:\n%s", s, md)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(md, s) {
					t.Errorf("hover should not contain %q, got:\n%s", s, md)
				}
			}
		})
	}
}

func TestHover_SingleColorHasNoNeighbor(t *testing.T) {
	md := hoverMarkdown(t, "#ff0000\tRed", protocol.Position{Line: 0, Character: 1})
	if strings.Contains(md, "Nearest") {
		t.Errorf("single color should have no neighbor, got:\n%s", md)
	}
}

func TestHover_NoColor(t *testing.T) {
	result := Analyze(hoverDoc)

	for _, pos := range []protocol.Position{
		{Line: 0, Character: 9},  // label
		{Line: 0, Character: 7},  // end of color is exclusive
		{Line: 10, Character: 0}, // past the document
	} {
		if h := hover(result, hoverDoc, pos); h != nil {
			t.Errorf("expected nil hover at %+v, got: %+v", pos, h)
		}
	}

	if h := hover(nil, hoverDoc, protocol.Position{}); h != nil {
		t.Error("expected nil hover for nil result")
	}
}

func TestHover_InvalidColor(t *testing.T) {
	content := "nope\tBroken\n#ffffff\tWhite"
	if h := hover(Analyze(content), content, protocol.Position{Line: 0, Character: 1}); h != nil {
		t.Errorf("invalid colors have no hover, got: %+v", h)
	}
}

func TestPosInRange(t *testing.T) {
	r := protocol.Range{
		Start: protocol.Position{Line: 5, Character: 10},
		End:   protocol.Position{Line: 5, Character: 22},
	}

	tests := []struct {
		name string
		pos  protocol.Position
		want bool
	}{
		{"before range", protocol.Position{Line: 5, Character: 9}, false},
		{"at start", protocol.Position{Line: 5, Character: 10}, true},
		{"in middle", protocol.Position{Line: 5, Character: 15}, true},
		{"at end (exclusive)", protocol.Position{Line: 5, Character: 22}, false},
		{"line before", protocol.Position{Line: 4, Character: 15}, false},
		{"line after", protocol.Position{Line: 6, Character: 15}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := posInRange(tt.pos, r); got != tt.want {
				t.Errorf("posInRange(%v, %v) = %v, want %v", tt.pos, r, got, tt.want)
			}
		})
	}
}

func TestExtractText(t *testing.T) {
	content := "#ff0000\tRed\nrgb(0, 0, 255)\tBlue"

	tests := []struct {
		name string
		r    protocol.Range
		want string
	}{
		{
			name: "single line",
			r:    protocol.Range{Start: protocol.Position{Line: 1, Character: 0}, End: protocol.Position{Line: 1, Character: 14}},
			want: "rgb(0, 0, 255)",
		},
		{
			name: "end past line is clamped",
			r:    protocol.Range{Start: protocol.Position{Line: 0, Character: 8}, End: protocol.Position{Line: 0, Character: 99}},
			want: "Red",
		},
		{
			name: "multi line",
			r:    protocol.Range{Start: protocol.Position{Line: 0, Character: 8}, End: protocol.Position{Line: 1, Character: 3}},
			want: "Red\nrgb",
		},
		{
			name: "past end of document",
			r:    protocol.Range{Start: protocol.Position{Line: 5}, End: protocol.Position{Line: 5, Character: 2}},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractText(content, tt.r); got != tt.want {
				t.Errorf("extractText() = %q, want %q", got, tt.want)
			}
		})
	}
}
