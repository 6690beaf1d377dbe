package lsp

import (
	"strings"

	"github.com/jsvensson/colorsift/internal/format"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// formatEdits returns the edits that turn content into its formatted form:
// nothing when it is already formatted, otherwise one edit replacing the
// whole document.
func formatEdits(content string) ([]protocol.TextEdit, error) {
	formatted, err := format.Format(content)
	if err != nil {
		return nil, err
	}
	if formatted == content {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{{
		Range:   protocol.Range{Start: protocol.Position{}, End: endOfDocument(content)},
		NewText: formatted,
	}}, nil
}

// endOfDocument returns the position just past the last character of content.
func endOfDocument(content string) protocol.Position {
	line := strings.Count(content, "\n")
	last := content[strings.LastIndex(content, "\n")+1:]
	return protocol.Position{Line: uint32(line), Character: uint32(len(last))}
}

// textDocumentFormatting handles textDocument/formatting requests.
func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return []protocol.TextEdit{}, nil
	}
	return formatEdits(content)
}
