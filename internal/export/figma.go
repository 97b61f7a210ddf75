package export

import (
	"strings"
	"time"

	"tintshade/internal/color"
	"tintshade/internal/palette"
)

const (
	figmaVersion    = "1.0"
	figmaFormat     = "figma-v1"
	figmaPageName   = "Color Styles"
	figmaSwatchSize = 100
)

type FigmaRGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

type FigmaRGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

type FigmaFill struct {
	Type    string   `json:"type"`
	Color   FigmaRGB `json:"color"`
	Opacity float64  `json:"opacity"`
}

type FigmaNode struct {
	Type     string      `json:"type"`
	Name     string      `json:"name"`
	Fills    []FigmaFill `json:"fills,omitempty"`
	X        int         `json:"x"`
	Y        int         `json:"y"`
	Width    int         `json:"width,omitempty"`
	Height   int         `json:"height,omitempty"`
	Children []FigmaNode `json:"children,omitempty"`
}

type FigmaDocument struct {
	Type     string      `json:"type"`
	Children []FigmaNode `json:"children"`
}

type FigmaStyle struct {
	Name  string      `json:"name"`
	Fills []FigmaFill `json:"fills"`
	Hex   string      `json:"hex"`
	RGB   string      `json:"rgb"`
}

type FigmaColor struct {
	Name string    `json:"name"`
	Hex  string    `json:"hex"`
	RGB  string    `json:"rgb"`
	RGBA FigmaRGBA `json:"rgba"`
}

type FigmaMetadata struct {
	BaseColor   string `json:"baseColor"`
	TintCount   int    `json:"tintCount"`
	ShadeCount  int    `json:"shadeCount"`
	TotalColors int    `json:"totalColors"`
	ExportedAt  string `json:"exportedAt"`
	ExportID    string `json:"exportId"`
	Tool        string `json:"tool"`
	Format      string `json:"format"`
}

// Figma is a document importable by the common Figma color plugins.
type Figma struct {
	Version      string            `json:"version"`
	Name         string            `json:"name"`
	Document     FigmaDocument     `json:"document"`
	Styles       []FigmaStyle      `json:"styles"`
	Metadata     FigmaMetadata     `json:"metadata"`
	Colors       []FigmaColor      `json:"colors"`
	Instructions map[string]string `json:"instructions"`
}

// Figma builds the document for p. Swatches are stacked vertically in
// palette order: base, tints, shades.
func (e *Exporter) Figma(p palette.Palette) Figma {
	variants := p.Variants()
	styles := make([]FigmaStyle, 0, len(variants))
	nodes := make([]FigmaNode, 0, len(variants))
	colors := make([]FigmaColor, 0, len(variants))

	for i, v := range variants {
		rgb, err := color.HexToRGB(v.Hex)
		if err != nil {
			// Generated variants are always well formed; only a bad base can get here.
			continue
		}
		fill := FigmaFill{
			Type:    "SOLID",
			Color:   FigmaRGB{R: fraction(rgb.R), G: fraction(rgb.G), B: fraction(rgb.B)},
			Opacity: 1,
		}
		hex := strings.ToUpper(color.RGBToHex(rgb))

		styles = append(styles, FigmaStyle{Name: v.Name(), Fills: []FigmaFill{fill}, Hex: hex, RGB: rgb.String()})
		nodes = append(nodes, FigmaNode{
			Type:   "RECTANGLE",
			Name:   v.Name(),
			Fills:  []FigmaFill{fill},
			X:      0,
			Y:      i * figmaSwatchSize,
			Width:  figmaSwatchSize,
			Height: figmaSwatchSize,
		})
		colors = append(colors, FigmaColor{
			Name: v.Name(),
			Hex:  hex,
			RGB:  rgb.String(),
			RGBA: FigmaRGBA{R: fill.Color.R, G: fill.Color.G, B: fill.Color.B, A: 1},
		})
	}

	base := strings.ToUpper(p.Base)
	return Figma{
		Version: figmaVersion,
		Name:    "Color Palette - " + base,
		Document: FigmaDocument{
			Type:     "DOCUMENT",
			Children: []FigmaNode{{Type: "PAGE", Name: figmaPageName, Children: nodes}},
		},
		Styles: styles,
		Metadata: FigmaMetadata{
			BaseColor:   base,
			TintCount:   len(p.Tints),
			ShadeCount:  len(p.Shades),
			TotalColors: len(styles),
			ExportedAt:  e.Clock().UTC().Format(time.RFC3339),
			ExportID:    e.NewID(),
			Tool:        e.Tool,
			Format:      figmaFormat,
		},
		Colors: colors,
		Instructions: map[string]string{
			"method1": `Use Figma plugins like "Import Colors", "Color Styles", or "Color Palette" to import`,
			"method2": `The "colors" array contains a simple format compatible with most plugins`,
			"method3": "Each color includes hex, rgb, and rgba values for maximum compatibility",
		},
	}
}
