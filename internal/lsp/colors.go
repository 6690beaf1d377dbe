package lsp

import (
	"math"

	"github.com/jsvensson/colorsift/internal/color"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts an internal color.Color (uint8 RGB) to a protocol.Color (float32 0.0-1.0).
func colorToLSP(c color.Color) protocol.Color {
	return protocol.Color{
		Red:   float32(c.R) / 255.0,
		Green: float32(c.G) / 255.0,
		Blue:  float32(c.B) / 255.0,
		Alpha: 1.0,
	}
}

// colorFromLSP converts a protocol.Color back to 8-bit RGB, rounding each channel.
func colorFromLSP(c protocol.Color) color.Color {
	channel := func(f float32) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, float64(f))) * 255))
	}
	return color.Color{R: channel(c.Red), G: channel(c.Green), B: channel(c.Blue)}
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation offers the picked color in the notations that parse back
// to the same 8-bit color. hsv() rounds to whole units and is left out. Hex
// comes first so pickers that apply the first entry keep the file in its
// normal form.
func colorPresentation(params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	c := colorFromLSP(params.Color)
	labels := []string{c.Hex(), c.RGB()}

	out := make([]protocol.ColorPresentation, 0, len(labels))
	for _, label := range labels {
		out = append(out, protocol.ColorPresentation{
			Label: label,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: label,
			},
		})
	}
	return out
}

// textDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	return documentColors(s.getResult(string(params.TextDocument.URI))), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	if _, ok := s.docs.Get(string(params.TextDocument.URI)); !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(params), nil
}
