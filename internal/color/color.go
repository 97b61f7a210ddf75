package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned by the strict hex parser.
var ErrInvalidColorFormat = errors.New("invalid color format")

// FormatError carries the offending input. It matches ErrInvalidColorFormat
// under errors.Is.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid hex color: %q", e.Input)
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidColorFormat
}

// RGB holds integer channels in [0, 255].
type RGB struct {
	R int `json:"r" yaml:"r"`
	G int `json:"g" yaml:"g"`
	B int `json:"b" yaml:"b"`
}

// HSL holds hue in degrees [0, 360) and saturation/lightness in percent [0, 100].
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

// HexToRGB parses a "#rrggbb" string. Shorthand, a missing '#' or any other
// length is rejected; use Normalize for free-form input.
func HexToRGB(hex string) (RGB, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return RGB{}, &FormatError{Input: hex}
	}
	var ch [3]int
	for i := range ch {
		v, err := strconv.ParseUint(hex[1+i*2:3+i*2], 16, 8)
		if err != nil {
			return RGB{}, &FormatError{Input: hex}
		}
		ch[i] = int(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// RGBToHex formats channels as lowercase "#rrggbb". Channels are rounded and
// clamped into [0, 255] so the result is always a well-formed hex string.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(float64(c.R)), clampChannel(float64(c.G)), clampChannel(float64(c.B)))
}

func clampChannel(v float64) int {
	r := int(math.Round(v))
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return r
}

// RGBToHSL converts to HSL with every component rounded to the nearest integer.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}

		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	hue := math.Round(h * 360)
	if hue >= 360 {
		hue -= 360
	}
	return HSL{
		H: hue,
		S: math.Round(s * 100),
		L: math.Round(l * 100),
	}
}

// HSLToRGB converts HSL back to rounded integer channels.
func HSLToRGB(c HSL) RGB {
	h := c.H / 360
	s := c.S / 100
	l := c.L / 100

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}

	return RGB{
		R: clampChannel(r * 255),
		G: clampChannel(g * 255),
		B: clampChannel(b * 255),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// HexToHSL is the composition used by the variant generator.
func HexToHSL(hex string) (HSL, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb), nil
}

// HSLToHex is the inverse composition.
func HSLToHex(c HSL) string {
	return RGBToHex(HSLToRGB(c))
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", formatNumber(c.H), formatNumber(c.S), formatNumber(c.L))
}

// formatNumber prints integers without a fractional part and keeps up to two
// decimals otherwise.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
