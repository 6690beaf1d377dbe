package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/jsvensson/colorsift/internal/color"
	"github.com/jsvensson/colorsift/internal/palette"
	"github.com/zclconf/go-cty/cty"
)

// encodeHCL writes records as attributes of a single palette block.
// Labels become identifiers; colors are normalized to #rrggbb.
func encodeHCL(records []palette.Record) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	body := f.Body().AppendNewBlock("palette", nil).Body()

	taken := make(map[string]bool, len(records))
	for _, r := range records {
		c, err := color.Parse(r.Color)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", r.Index, err)
		}
		base := identifier(r)
		name := base
		for n := 2; taken[name]; n++ {
			name = base + "_" + strconv.Itoa(n)
		}
		taken[name] = true
		body.SetAttributeValue(name, cty.StringVal(c.Hex()))
	}
	return hclwrite.Format(f.Bytes()), nil
}

// identifier turns a record label into an HCL attribute name.
func identifier(r palette.Record) string {
	label := strings.ToLower(strings.TrimSpace(r.Label))
	if label == "" {
		return "color_" + strconv.Itoa(r.Index)
	}

	var b strings.Builder
	for _, ch := range label {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' {
			b.WriteRune(ch)
		} else {
			b.WriteByte('_')
		}
	}
	name := b.String()
	if !unicode.IsLetter([]rune(name)[0]) {
		name = "c_" + name
	}
	if !hclsyntax.ValidIdentifier(name) {
		return "color_" + strconv.Itoa(r.Index)
	}
	return name
}

// decodeHCL reads the palette block of a theme file. Nested blocks are
// flattened into dotted labels; a nested block's own color attribute is
// labelled with the block path.
func decodeHCL(data []byte) ([]palette.Record, error) {
	file, diags := hclsyntax.ParseConfig(data, "palette.hcl", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("parsed body is not an hclsyntax.Body")
	}

	for _, block := range body.Blocks {
		if block.Type != "palette" {
			continue
		}
		var records []palette.Record
		if err := collectHCL(block.Body, "", &records); err != nil {
			return nil, err
		}
		if records == nil {
			records = []palette.Record{}
		}
		return records, nil
	}
	return nil, fmt.Errorf("no palette block found")
}

func collectHCL(body *hclsyntax.Body, prefix string, records *[]palette.Record) error {
	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	// Attributes is a map; keep source order.
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})

	for _, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("evaluating %s: %s", joinPath(prefix, attr.Name), diags.Error())
		}
		if val.Type() != cty.String {
			return fmt.Errorf("%s: expected a color string, got %s", joinPath(prefix, attr.Name), val.Type().FriendlyName())
		}
		label := joinPath(prefix, attr.Name)
		if attr.Name == "color" && prefix != "" {
			label = prefix
		}
		*records = append(*records, palette.Record{
			Index: len(*records),
			Color: val.AsString(),
			Label: label,
		})
	}

	for _, block := range body.Blocks {
		if err := collectHCL(block.Body, joinPath(prefix, block.Type), records); err != nil {
			return err
		}
	}
	return nil
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
