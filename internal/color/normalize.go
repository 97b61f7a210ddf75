package color

import (
	"regexp"
	"strings"
)

var (
	hex6Pattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)
	hex3Pattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{3}$`)
)

// Normalize turns user input into canonical lowercase "#rrggbb". It accepts
// six or three digit hex with or without '#', rgb(r, g, b) with channels in
// [0, 255] and hsl(h, s%, l%). Anything else is a *FormatError; callers are
// expected to keep their previous color in that case.
func Normalize(input string) (string, error) {
	s := strings.TrimSpace(input)

	switch {
	case hex6Pattern.MatchString(s):
		return "#" + strings.ToLower(strings.TrimPrefix(s, "#")), nil

	case hex3Pattern.MatchString(s):
		d := strings.ToLower(strings.TrimPrefix(s, "#"))
		return "#" + string([]byte{d[0], d[0], d[1], d[1], d[2], d[2]}), nil

	case hasPrefixFold(s, "rgb"):
		if rgb, ok := parseRGBString(s); ok && inByteRange(rgb) {
			return RGBToHex(rgb), nil
		}

	case hasPrefixFold(s, "hsl"):
		if hsl, ok := parseHSLString(s); ok && hsl.H < 360 && hsl.S <= 100 && hsl.L <= 100 {
			return HSLToHex(hsl), nil
		}
	}

	return "", &FormatError{Input: input}
}

func inByteRange(c RGB) bool {
	for _, v := range []int{c.R, c.G, c.B} {
		if v < 0 || v > 255 {
			return false
		}
	}
	return true
}
