package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tintshade/internal/color"
	"tintshade/internal/palette"
)

const (
	minSwatchWidth = 4
	maxSwatchWidth = 10
	swatchHeight   = 3
	ellipsis       = "…"
)

// TextColorFor picks black or white text for readability on hex.
func TextColorFor(hex string) lipgloss.Color {
	if color.IsColorLight(hex) {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}

// ShortName is the compact swatch label: "base", "t50", "s100".
func ShortName(v palette.Variant) string {
	switch v.Kind {
	case palette.KindTint:
		return fmt.Sprintf("t%d", v.Weight)
	case palette.KindShade:
		return fmt.Sprintf("s%d", v.Weight)
	default:
		return "base"
	}
}

// fit truncates or pads s to exactly width terminal cells.
func fit(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, ellipsis)
	}
	return runewidth.FillRight(s, width)
}

// Swatch renders one filled block labelled with its name and hex value.
func Swatch(v palette.Variant, width int, selected bool) string {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(v.Hex)).
		Foreground(TextColorFor(v.Hex)).
		Width(width).
		Height(swatchHeight).
		Align(lipgloss.Center)
	if selected {
		style = style.Bold(true).Underline(true)
	}
	label := runewidth.Truncate(ShortName(v), width, ellipsis)
	value := runewidth.Truncate(strings.TrimPrefix(v.Hex, "#"), width, ellipsis)
	return style.Render(label + "\n" + value)
}

// SwatchWidth spreads n swatches across total cells.
func SwatchWidth(total, n int) int {
	if n <= 0 {
		return maxSwatchWidth
	}
	w := total / n
	if w < minSwatchWidth {
		return minSwatchWidth
	}
	if w > maxSwatchWidth {
		return maxSwatchWidth
	}
	return w
}

// Strip renders the palette ordered from lightest tint to darkest shade.
// selected indexes Palette.Variants(); -1 selects nothing.
func Strip(p palette.Palette, selected, totalWidth int) string {
	variants := p.Variants()
	width := SwatchWidth(totalWidth, len(variants))

	blocks := make([]string, 0, len(variants))
	for _, i := range displayOrder(p) {
		v := variants[i]
		block := Swatch(v, width, i == selected)
		marker := strings.Repeat(" ", width)
		if i == selected {
			marker = lipgloss.PlaceHorizontal(width, lipgloss.Center, IconSelection)
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, block, marker))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// displayOrder maps the light-to-dark visual order onto Variants() indexes:
// tints reversed, the base, then shades.
func displayOrder(p palette.Palette) []int {
	order := make([]int, 0, p.Len())
	for i := len(p.Tints); i >= 1; i-- {
		order = append(order, i)
	}
	order = append(order, 0)
	for i := 0; i < len(p.Shades); i++ {
		order = append(order, 1+len(p.Tints)+i)
	}
	return order
}

// List renders one line per variant: a colored chip, the name and the value
// in format.
func List(p palette.Palette, format color.Format) string {
	var b strings.Builder
	for _, v := range p.Variants() {
		chip := lipgloss.NewStyle().Background(lipgloss.Color(v.Hex)).Render("    ")
		name := fit(v.Name(), 10)
		fmt.Fprintf(&b, "%s %s %s\n", chip, name, color.ConvertColor(v.Hex, format))
	}
	return b.String()
}

// Details renders every display format of hex as a labelled block.
func Details(hex string) (string, error) {
	sw, err := color.Describe(hex)
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, 5)
	for _, e := range sw.Entries() {
		lines = append(lines, LabelStyle.Render(e[0])+e[1])
	}
	return strings.Join(lines, "\n"), nil
}
