package color

import (
	"fmt"
	"math"
	"strings"
)

// CMYK holds percentages in [0, 100].
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// HSV holds hue in degrees and saturation/value in percent.
type HSV struct {
	H int `json:"h"`
	S int `json:"s"`
	V int `json:"v"`
}

// RGBToCMYK converts for display. Pure black is {0, 0, 0, 100}.
func RGBToCMYK(c RGB) CMYK {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	k := 1 - math.Max(r, math.Max(g, b))
	if k == 1 {
		return CMYK{K: 100}
	}
	return CMYK{
		C: int(math.Round((1 - r - k) / (1 - k) * 100)),
		M: int(math.Round((1 - g - k) / (1 - k) * 100)),
		Y: int(math.Round((1 - b - k) / (1 - k) * 100)),
		K: int(math.Round(k * 100)),
	}
}

// RGBToHSV converts for display.
func RGBToHSV(c RGB) HSV {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	var h float64
	if delta != 0 {
		switch max {
		case r:
			h = math.Mod((g-b)/delta, 6)
		case g:
			h = (b-r)/delta + 2
		default:
			h = (r-g)/delta + 4
		}
		h = math.Round(h * 60)
		if h < 0 {
			h += 360
		}
	}

	var s float64
	if max != 0 {
		s = math.Round(delta / max * 100)
	}
	return HSV{H: int(h), S: int(s), V: int(math.Round(max * 100))}
}

// Swatch is the full set of display strings for one color.
type Swatch struct {
	Hex  string `json:"hex"`
	RGB  string `json:"rgb"`
	HSL  string `json:"hsl"`
	CMYK string `json:"cmyk"`
	HSV  string `json:"hsv"`
}

// Describe renders hex in every display format.
func Describe(hex string) (Swatch, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return Swatch{}, err
	}
	hsl := RGBToHSL(rgb)
	cmyk := RGBToCMYK(rgb)
	hsv := RGBToHSV(rgb)
	return Swatch{
		Hex:  strings.ToUpper(hex),
		RGB:  fmt.Sprintf("RGB(%d, %d, %d)", rgb.R, rgb.G, rgb.B),
		HSL:  fmt.Sprintf("HSL(%s, %s%%, %s%%)", formatNumber(hsl.H), formatNumber(hsl.S), formatNumber(hsl.L)),
		CMYK: fmt.Sprintf("CMYK(%d%%, %d%%, %d%%, %d%%)", cmyk.C, cmyk.M, cmyk.Y, cmyk.K),
		HSV:  fmt.Sprintf("HSV(%d, %d%%, %d%%)", hsv.H, hsv.S, hsv.V),
	}, nil
}

// Entries returns label/value pairs in display order.
func (s Swatch) Entries() [][2]string {
	return [][2]string{
		{"HEX", s.Hex},
		{"RGB", s.RGB},
		{"HSL", s.HSL},
		{"CMYK", s.CMYK},
		{"HSV", s.HSV},
	}
}
