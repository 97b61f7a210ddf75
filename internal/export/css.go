package export

import (
	"fmt"
	"strings"

	"tintshade/internal/color"
	"tintshade/internal/palette"
)

// CSS renders the palette as custom properties on :root, followed by a usage
// comment. Variable names carry the variant weight: --color-tint-50, ...
func CSS(p palette.Palette) string {
	var b strings.Builder

	b.WriteString(":root {\n")
	b.WriteString("  /* Base Color */\n")
	fmt.Fprintf(&b, "  --color-base: %s;\n", color.ConvertColor(p.Base, color.FormatHex))

	var tints, shades []palette.Variant
	for _, v := range p.Variants() {
		switch v.Kind {
		case palette.KindTint:
			tints = append(tints, v)
		case palette.KindShade:
			shades = append(shades, v)
		}
	}

	if len(tints) > 0 {
		b.WriteString("\n  /* Tints - Lighter variations */\n")
		for _, v := range tints {
			fmt.Fprintf(&b, "  %s: %s;\n", VariableName(v), v.Hex)
		}
	}
	if len(shades) > 0 {
		b.WriteString("\n  /* Shades - Darker variations */\n")
		for _, v := range shades {
			fmt.Fprintf(&b, "  %s: %s;\n", VariableName(v), v.Hex)
		}
	}

	b.WriteString("}\n\n")
	b.WriteString("/* Usage Example:\n")
	b.WriteString(" * background-color: var(--color-base);\n")
	b.WriteString(" * color: var(--color-tint-100);\n")
	b.WriteString(" * border-color: var(--color-shade-200);\n")
	b.WriteString(" */\n")
	return b.String()
}

// VariableName is the custom property name for v.
func VariableName(v palette.Variant) string {
	if v.Kind == palette.KindBase {
		return "--color-base"
	}
	return fmt.Sprintf("--color-%s-%d", v.Kind, v.Weight)
}
