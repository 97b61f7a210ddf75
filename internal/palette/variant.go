package palette

import (
	"fmt"
	"strings"
)

// Kind tells the base color apart from its variants.
type Kind string

const (
	KindBase  Kind = "base"
	KindTint  Kind = "tint"
	KindShade Kind = "shade"
)

// WeightStep is the naming increment used for variant weights (50, 100, ...).
const WeightStep = 50

// Variant is one swatch of a Palette.
type Variant struct {
	Kind   Kind
	Index  int // 1-based, 0 for the base
	Weight int // Index * WeightStep
	Hex    string
}

// Name is the display name used by exports, e.g. "Base" or "Tint 150".
func (v Variant) Name() string {
	if v.Kind == KindBase {
		return "Base"
	}
	return fmt.Sprintf("%s %d", strings.ToUpper(string(v.Kind[:1]))+string(v.Kind[1:]), v.Weight)
}

// Palette is a base color with its generated tints and shades, both ordered
// from closest to the base to most extreme.
type Palette struct {
	Base   string
	Tints  []string
	Shades []string
}

// Build generates a complete palette. The base must be a "#rrggbb" string.
func (g *Generator) Build(hex string, tints, shades int) (Palette, error) {
	t, err := g.Tints(hex, tints)
	if err != nil {
		return Palette{}, err
	}
	s, err := g.Shades(hex, shades)
	if err != nil {
		return Palette{}, err
	}
	return Palette{Base: hex, Tints: t, Shades: s}, nil
}

// Variants lists the base, then tints, then shades.
func (p Palette) Variants() []Variant {
	out := make([]Variant, 0, 1+len(p.Tints)+len(p.Shades))
	out = append(out, Variant{Kind: KindBase, Hex: p.Base})
	for i, hex := range p.Tints {
		out = append(out, Variant{Kind: KindTint, Index: i + 1, Weight: (i + 1) * WeightStep, Hex: hex})
	}
	for i, hex := range p.Shades {
		out = append(out, Variant{Kind: KindShade, Index: i + 1, Weight: (i + 1) * WeightStep, Hex: hex})
	}
	return out
}

// Len is the number of swatches including the base.
func (p Palette) Len() int {
	return 1 + len(p.Tints) + len(p.Shades)
}
