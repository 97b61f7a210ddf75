// Package export serializes a generated palette as a JSON palette file, a
// Figma-compatible JSON document or CSS custom properties.
package export

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"tintshade/internal/color"
	"tintshade/internal/palette"
)

// Kind selects an export format.
type Kind string

const (
	KindJSON  Kind = "json"
	KindFigma Kind = "figma"
	KindCSS   Kind = "css"
)

// Kinds lists the supported export formats.
var Kinds = []Kind{KindJSON, KindFigma, KindCSS}

// ParseKind maps a flag value to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown export kind %q (want json, figma or css)", s)
}

// Exporter carries the static metadata stamped into exports.
type Exporter struct {
	Tool  string
	Clock func() time.Time
	NewID func() string
}

// New returns an Exporter using the wall clock and random UUIDs.
func New(tool string) *Exporter {
	return &Exporter{
		Tool:  tool,
		Clock: time.Now,
		NewID: uuid.NewString,
	}
}

// Render produces the document for kind. format only affects KindJSON.
func (e *Exporter) Render(kind Kind, p palette.Palette, format color.Format) ([]byte, error) {
	switch kind {
	case KindJSON:
		return marshal(JSONPalette(p, format))
	case KindFigma:
		return marshal(e.Figma(p))
	case KindCSS:
		return []byte(CSS(p)), nil
	}
	return nil, fmt.Errorf("unknown export kind %q", kind)
}

// FileName is the default file name for kind, derived from the base color.
func FileName(kind Kind, p palette.Palette) string {
	hex := strings.TrimPrefix(strings.ToLower(p.Base), "#")
	switch kind {
	case KindFigma:
		return "figma-palette-" + hex + ".json"
	case KindCSS:
		return "palette-" + hex + ".css"
	default:
		return "color-palette-" + hex + ".json"
	}
}

// WriteFile writes data to dir/name, creating dir when needed, and returns
// the full path.
func WriteFile(dir, name string, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write export %s: %w", path, err)
	}
	return path, nil
}

func marshal(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Palette is the plain JSON palette document.
type Palette struct {
	BaseColor string   `json:"baseColor" yaml:"baseColor"`
	Format    string   `json:"format" yaml:"format"`
	Tints     []string `json:"tints" yaml:"tints"`
	Shades    []string `json:"shades" yaml:"shades"`
}

// JSONPalette converts every variant to format.
func JSONPalette(p palette.Palette, format color.Format) Palette {
	return Palette{
		BaseColor: p.Base,
		Format:    format.String(),
		Tints:     convertAll(p.Tints, format),
		Shades:    convertAll(p.Shades, format),
	}
}

func convertAll(colors []string, format color.Format) []string {
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		out = append(out, color.ConvertColor(c, format))
	}
	return out
}

// fraction maps a channel to [0, 1] rounded to three decimals.
func fraction(v int) float64 {
	return math.Round(float64(v)/255*1000) / 1000
}
