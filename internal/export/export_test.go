package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tintshade/internal/color"
	"tintshade/internal/palette"
)

var testPalette = palette.Palette{
	Base:   "#3b82f6",
	Tints:  []string{"#6ea3f8", "#9fc2fa"},
	Shades: []string{"#0846aa"},
}

func fixedExporter() *Exporter {
	return &Exporter{
		Tool:  "Tint & Shade Generator",
		Clock: func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) },
		NewID: func() string { return "00000000-0000-4000-8000-000000000001" },
	}
}

func TestParseKind(t *testing.T) {
	for _, in := range []string{"json", "FIGMA", " css "} {
		_, err := ParseKind(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseKind("svg")
	assert.Error(t, err)
}

func TestJSONPalette(t *testing.T) {
	tests := []struct {
		name   string
		format color.Format
		tints  []string
		shades []string
	}{
		{
			name:   "hex keeps values",
			format: color.FormatHex,
			tints:  []string{"#6ea3f8", "#9fc2fa"},
			shades: []string{"#0846aa"},
		},
		{
			name:   "rgb",
			format: color.FormatRGB,
			tints:  []string{"rgb(110, 163, 248)", "rgb(159, 194, 250)"},
			shades: []string{"rgb(8, 70, 170)"},
		},
		{
			name:   "hsl",
			format: color.FormatHSL,
			tints:  []string{"hsl(217, 91%, 70%)", "hsl(217, 90%, 80%)"},
			shades: []string{"hsl(217, 91%, 35%)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JSONPalette(testPalette, tt.format)
			assert.Equal(t, "#3b82f6", got.BaseColor)
			assert.Equal(t, tt.format.String(), got.Format)
			assert.Equal(t, tt.tints, got.Tints)
			assert.Equal(t, tt.shades, got.Shades)
		})
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := fixedExporter().Render(KindJSON, palette.Palette{Base: "#ffffff", Tints: []string{}, Shades: []string{"#d9d9d9"}}, color.FormatHex)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "#ffffff", doc["baseColor"])
	assert.Equal(t, "hex", doc["format"])
	assert.Equal(t, []interface{}{}, doc["tints"])
	assert.Equal(t, []interface{}{"#d9d9d9"}, doc["shades"])
}

func TestFigma(t *testing.T) {
	doc := fixedExporter().Figma(testPalette)

	assert.Equal(t, "1.0", doc.Version)
	assert.Equal(t, "Color Palette - #3B82F6", doc.Name)

	require.Len(t, doc.Document.Children, 1)
	page := doc.Document.Children[0]
	assert.Equal(t, "PAGE", page.Type)
	assert.Equal(t, "Color Styles", page.Name)
	require.Len(t, page.Children, 4)
	for i, node := range page.Children {
		assert.Equal(t, "RECTANGLE", node.Type)
		assert.Equal(t, i*100, node.Y)
		assert.Equal(t, 100, node.Width)
	}

	names := make([]string, 0, len(doc.Styles))
	for _, s := range doc.Styles {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Base", "Tint 50", "Tint 100", "Shade 50"}, names)

	base := doc.Colors[0]
	assert.Equal(t, "#3B82F6", base.Hex)
	assert.Equal(t, "rgb(59, 130, 246)", base.RGB)
	assert.Equal(t, FigmaRGBA{R: 0.231, G: 0.51, B: 0.965, A: 1}, base.RGBA)
	assert.Equal(t, FigmaRGB{R: 0.031, G: 0.275, B: 0.667}, doc.Styles[3].Fills[0].Color)

	assert.Equal(t, FigmaMetadata{
		BaseColor:   "#3B82F6",
		TintCount:   2,
		ShadeCount:  1,
		TotalColors: 4,
		ExportedAt:  "2024-05-01T12:30:00Z",
		ExportID:    "00000000-0000-4000-8000-000000000001",
		Tool:        "Tint & Shade Generator",
		Format:      "figma-v1",
	}, doc.Metadata)
	assert.Len(t, doc.Instructions, 3)
}

func TestNewUsesRandomIDs(t *testing.T) {
	e := New("tool")
	a := e.Figma(testPalette).Metadata.ExportID
	b := e.Figma(testPalette).Metadata.ExportID

	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestCSS(t *testing.T) {
	out := CSS(testPalette)

	expected := `:root {
  /* Base Color */
  --color-base: #3b82f6;

  /* Tints - Lighter variations */
  --color-tint-50: #6ea3f8;
  --color-tint-100: #9fc2fa;

  /* Shades - Darker variations */
  --color-shade-50: #0846aa;
}
`
	assert.True(t, strings.HasPrefix(out, expected), out)
	assert.Contains(t, out, "var(--color-tint-100)")
}

func TestCSSWithoutVariants(t *testing.T) {
	out := CSS(palette.Palette{Base: "#000000"})
	assert.NotContains(t, out, "Tints - Lighter")
	assert.NotContains(t, out, "Shades - Darker")
	assert.Contains(t, out, "--color-base: #000000;")
}

func TestFileName(t *testing.T) {
	p := palette.Palette{Base: "#3B82F6"}
	assert.Equal(t, "color-palette-3b82f6.json", FileName(KindJSON, p))
	assert.Equal(t, "figma-palette-3b82f6.json", FileName(KindFigma, p))
	assert.Equal(t, "palette-3b82f6.css", FileName(KindCSS, p))
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	path, err := WriteFile(dir, "palette.css", []byte("body {}"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "palette.css"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "body {}", string(data))
}
