package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target Format
		want   string
	}{
		{"hex to rgb", "#3B82F6", FormatRGB, "rgb(59, 130, 246)"},
		{"hex to hsl", "#3b82f6", FormatHSL, "hsl(217, 91%, 60%)"},
		{"hex to hex keeps input", "#3B82F6", FormatHex, "#3B82F6"},
		{"rgb to hex", "rgb(59, 130, 246)", FormatHex, "#3b82f6"},
		{"rgb space separated to hex", "rgb(59 130 246)", FormatHex, "#3b82f6"},
		{"rgb upper case prefix", "RGB(59, 130, 246)", FormatHex, "#3b82f6"},
		{"rgb to hsl", "rgb(255, 0, 0)", FormatHSL, "hsl(0, 100%, 50%)"},
		{"rgb to rgb keeps input", "rgb(1,2,3)", FormatRGB, "rgb(1,2,3)"},
		{"hsl to rgb", "hsl(0, 100%, 50%)", FormatRGB, "rgb(255, 0, 0)"},
		{"hsl to hex", "hsl(217, 91%, 60%)", FormatHex, "#3c83f6"},
		{"hsl space separated", "hsl(120 100% 25%)", FormatHex, "#008000"},
		{"hsl fractional", "hsl(0, 0%, 67.6%)", FormatHSL, "hsl(0, 0%, 67.6%)"},
		{"hsl fractional hue", "hsl(217.5, 91.25%, 60%)", FormatHSL, "hsl(217.5, 91.25%, 60%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Convert(tt.input, tt.target)
			assert.True(t, res.OK(), "unexpected warning: %v", res.Warning)
			assert.Equal(t, tt.want, res.Value)
			assert.Equal(t, tt.want, ConvertColor(tt.input, tt.target))
		})
	}
}

func TestConvertFallsBackWithDiagnostic(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{"named color", "blue", "unknown color format"},
		{"empty", "", "unknown color format"},
		{"shorthand hex", "#fff", "hex format not recognized"},
		{"broken rgb", "rgb(1, 2)", "RGB format not recognized"},
		{"broken hsl", "hsl(10, 20, 30)", "HSL format not recognized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, target := range Formats {
				res := Convert(tt.input, target)
				assert.False(t, res.OK())
				assert.Equal(t, tt.input, res.Value)
				require.NotNil(t, res.Warning)
				assert.Equal(t, tt.reason, res.Warning.Reason)
				assert.Equal(t, tt.input, res.Warning.Input)
			}
		})
	}
}

func TestConvertUnknownTarget(t *testing.T) {
	res := Convert("#3b82f6", Format(42))
	assert.False(t, res.OK())
	assert.Equal(t, "#3b82f6", res.Value)
}

func TestLight(t *testing.T) {
	tests := []struct {
		input string
		light bool
		diag  bool
	}{
		{"#FFFFFF", true, false},
		{"#000000", false, false},
		{"hsl(0, 0%, 60%)", true, false},
		{"hsl(0, 0%, 40%)", false, false},
		{"hsl(0, 0%, 50%)", false, false},
		{"rgb(255, 255, 0)", true, false},
		{"rgb(0 0 128)", false, false},
		{"#3b82f6", false, false},
		{"not a color", true, true},
		{"#12", true, true},
		{"rgb()", true, true},
		{"hsl(nope)", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			light, diag := Light(tt.input)
			assert.Equal(t, tt.light, light)
			assert.Equal(t, tt.diag, diag != nil)
			assert.Equal(t, tt.light, IsColorLight(tt.input))
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseFormat(" HSL ")
	require.NoError(t, err)
	assert.Equal(t, FormatHSL, got)

	_, err = ParseFormat("cmyk")
	assert.Error(t, err)
}

func TestFormatNext(t *testing.T) {
	assert.Equal(t, FormatRGB, FormatHex.Next())
	assert.Equal(t, FormatHSL, FormatRGB.Next())
	assert.Equal(t, FormatHex, FormatHSL.Next())
}
