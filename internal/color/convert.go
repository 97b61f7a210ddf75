package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Format is a textual color representation.
type Format int

const (
	FormatHex Format = iota
	FormatRGB
	FormatHSL
)

// Formats lists the conversion targets in display order.
var Formats = []Format{FormatHex, FormatRGB, FormatHSL}

func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatRGB:
		return "rgb"
	case FormatHSL:
		return "hsl"
	default:
		return "unknown"
	}
}

// ParseFormat maps "hex", "rgb" or "hsl" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hex":
		return FormatHex, nil
	case "rgb":
		return FormatRGB, nil
	case "hsl":
		return FormatHSL, nil
	}
	return FormatHex, fmt.Errorf("unknown color format %q (want hex, rgb or hsl)", s)
}

// Next cycles hex -> rgb -> hsl -> hex.
func (f Format) Next() Format {
	return Formats[(int(f)+1)%len(Formats)]
}

// Diagnostic describes why a lenient operation fell back to its default.
type Diagnostic struct {
	Input  string
	Reason string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %q", d.Reason, d.Input)
}

// Result is the outcome of a lenient conversion. Value is always usable; it
// is the original input when Warning is set.
type Result struct {
	Value   string
	Warning *Diagnostic
}

// OK reports whether the conversion succeeded without falling back.
func (r Result) OK() bool {
	return r.Warning == nil
}

var (
	rgbPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)`),
		regexp.MustCompile(`(?i)rgb\(\s*(\d+)\s+(\d+)\s+(\d+)\s*\)`),
	}
	hslPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)hsl\(\s*(\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)%\s*,\s*(\d+(?:\.\d+)?)%\s*\)`),
		regexp.MustCompile(`(?i)hsl\(\s*(\d+(?:\.\d+)?)\s+(\d+(?:\.\d+)?)%\s+(\d+(?:\.\d+)?)%\s*\)`),
	}
)

// parseRGBString extracts channels from "rgb(r, g, b)" or "rgb(r g b)".
func parseRGBString(s string) (RGB, bool) {
	for _, re := range rgbPatterns {
		m := re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		var ch [3]int
		for i := range ch {
			v, err := strconv.Atoi(m[i+1])
			if err != nil {
				return RGB{}, false
			}
			ch[i] = v
		}
		return RGB{R: ch[0], G: ch[1], B: ch[2]}, true
	}
	return RGB{}, false
}

// parseHSLString extracts components from "hsl(h, s%, l%)" or "hsl(h s% l%)".
func parseHSLString(s string) (HSL, bool) {
	for _, re := range hslPatterns {
		m := re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		var v [3]float64
		for i := range v {
			f, err := strconv.ParseFloat(m[i+1], 64)
			if err != nil {
				return HSL{}, false
			}
			v[i] = f
		}
		return HSL{H: v[0], S: v[1], L: v[2]}, true
	}
	return HSL{}, false
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func fallback(input, reason string) Result {
	return Result{Value: input, Warning: &Diagnostic{Input: input, Reason: reason}}
}

// Convert dispatches on the leading token of color ("#", "rgb" or "hsl") and
// renders it in the target format. It never fails: unrecognized input comes
// back unchanged with a Warning attached.
func Convert(color string, target Format) Result {
	switch {
	case hasPrefixFold(color, "hsl"):
		hsl, ok := parseHSLString(color)
		if !ok {
			return fallback(color, "HSL format not recognized")
		}
		switch target {
		case FormatHSL:
			return Result{Value: hsl.String()}
		case FormatRGB:
			return Result{Value: HSLToRGB(hsl).String()}
		case FormatHex:
			return Result{Value: HSLToHex(hsl)}
		}

	case strings.HasPrefix(color, "#"):
		rgb, err := HexToRGB(color)
		if err != nil {
			return fallback(color, "hex format not recognized")
		}
		switch target {
		case FormatHex:
			return Result{Value: color}
		case FormatRGB:
			return Result{Value: rgb.String()}
		case FormatHSL:
			return Result{Value: RGBToHSL(rgb).String()}
		}

	case hasPrefixFold(color, "rgb"):
		rgb, ok := parseRGBString(color)
		if !ok {
			return fallback(color, "RGB format not recognized")
		}
		switch target {
		case FormatRGB:
			return Result{Value: color}
		case FormatHex:
			return Result{Value: RGBToHex(rgb)}
		case FormatHSL:
			return Result{Value: RGBToHSL(rgb).String()}
		}

	default:
		return fallback(color, "unknown color format")
	}

	return fallback(color, "unknown target format "+target.String())
}

// ConvertColor returns only the value of Convert.
func ConvertColor(color string, target Format) string {
	return Convert(color, target).Value
}

// Light classifies color as light or dark. Hex and RGB inputs use perceived
// brightness (0.299r + 0.587g + 0.114b)/255 > 0.5; HSL inputs use lightness > 50.
// Unrecognized input is treated as light and reported through the Diagnostic.
func Light(color string) (bool, *Diagnostic) {
	var rgb RGB
	switch {
	case strings.HasPrefix(color, "#"):
		c, err := HexToRGB(color)
		if err != nil {
			return true, &Diagnostic{Input: color, Reason: "hex format not recognized"}
		}
		rgb = c
	case hasPrefixFold(color, "rgb"):
		c, ok := parseRGBString(color)
		if !ok {
			return true, &Diagnostic{Input: color, Reason: "RGB format not recognized"}
		}
		rgb = c
	case hasPrefixFold(color, "hsl"):
		c, ok := parseHSLString(color)
		if !ok {
			return true, &Diagnostic{Input: color, Reason: "HSL format not recognized"}
		}
		return c.L > 50, nil
	default:
		return true, &Diagnostic{Input: color, Reason: "unknown color format"}
	}
	return Brightness(rgb) > 0.5, nil
}

// IsColorLight is Light without the diagnostic.
func IsColorLight(color string) bool {
	light, _ := Light(color)
	return light
}

// Brightness is the perceived brightness of c in [0, 1].
func Brightness(c RGB) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}
