package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/colorsift/internal/color"
	"github.com/jsvensson/colorsift/internal/palette"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// posInRange returns true if pos is within the range [r.Start, r.End).
// The end position is exclusive.
func posInRange(pos protocol.Position, r protocol.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}

// extractText extracts the source text at a given LSP range from document content.
func extractText(content string, r protocol.Range) string {
	lines := strings.Split(content, "\n")

	startLine := int(r.Start.Line)
	endLine := int(r.End.Line)

	if startLine >= len(lines) {
		return ""
	}
	if endLine >= len(lines) {
		endLine = len(lines) - 1
	}

	if startLine == endLine {
		line := lines[startLine]
		startChar := int(r.Start.Character)
		endChar := int(r.End.Character)
		if startChar > len(line) {
			startChar = len(line)
		}
		if endChar > len(line) {
			endChar = len(line)
		}
		return line[startChar:endChar]
	}

	// Multi-line range
	var parts []string
	for i := startLine; i <= endLine; i++ {
		line := lines[i]
		if i == startLine {
			startChar := int(r.Start.Character)
			if startChar > len(line) {
				startChar = len(line)
			}
			parts = append(parts, line[startChar:])
		} else if i == endLine {
			endChar := int(r.End.Character)
			if endChar > len(line) {
				endChar = len(line)
			}
			parts = append(parts, line[:endChar])
		} else {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, "\n")
}

// hover produces a Hover response for the given cursor position. It shows
// the color under the cursor in every notation, plus its nearest neighbor
// in the document. Colors written in another notation show their source
// text first. Returns nil if no color is found at the position.
func hover(result *AnalysisResult, content string, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Colors {
		if !posInRange(pos, cl.Range) {
			continue
		}

		var b strings.Builder
		if rec, ok := result.record(cl.Index); ok && rec.Label != "" {
			fmt.Fprintf(&b, "**%s**\n\n", rec.Label)
		}
		if src := extractText(content, cl.Range); !strings.EqualFold(src, cl.Color.Hex()) {
			fmt.Fprintf(&b, "`%s` = ", src)
		}
		fmt.Fprintf(&b, "`%s` \u00b7 `%s` \u00b7 `%s`", cl.Color.Hex(), cl.Color.RGB(), cl.Color.HSV())

		if st, ok := result.Stats[cl.Index]; ok && st.Nearest != palette.NoSelection {
			neighbor := result.Stats[st.Nearest].RGB
			fmt.Fprintf(&b, "\n\nNearest: %s `%s`, distance %d",
				result.describe(st.Nearest), neighbor.Hex(), color.RGBDelta(cl.Color, neighbor))
		}

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: b.String(),
			},
			Range: &cl.Range,
		}
	}

	return nil
}

// textDocumentHover handles textDocument/hover requests.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := string(params.TextDocument.URI)

	result := s.getResult(uri)
	if result == nil {
		return nil, nil
	}

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	return hover(result, content, params.Position), nil
}
