package color

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBToCMYK(t *testing.T) {
	assert.Equal(t, CMYK{C: 76, M: 47, Y: 0, K: 4}, RGBToCMYK(RGB{59, 130, 246}))
	assert.Equal(t, CMYK{K: 100}, RGBToCMYK(RGB{0, 0, 0}))
	assert.Equal(t, CMYK{}, RGBToCMYK(RGB{255, 255, 255}))
	assert.Equal(t, CMYK{C: 0, M: 100, Y: 100, K: 0}, RGBToCMYK(RGB{255, 0, 0}))
}

func TestRGBToHSV(t *testing.T) {
	assert.Equal(t, HSV{H: 217, S: 76, V: 96}, RGBToHSV(RGB{59, 130, 246}))
	assert.Equal(t, HSV{H: 0, S: 100, V: 100}, RGBToHSV(RGB{255, 0, 0}))
	assert.Equal(t, HSV{H: 300, S: 100, V: 100}, RGBToHSV(RGB{255, 0, 255}))
	assert.Equal(t, HSV{}, RGBToHSV(RGB{0, 0, 0}))
}

func TestDescribe(t *testing.T) {
	sw, err := Describe("#3b82f6")
	require.NoError(t, err)
	assert.Equal(t, Swatch{
		Hex:  "#3B82F6",
		RGB:  "RGB(59, 130, 246)",
		HSL:  "HSL(217, 91%, 60%)",
		CMYK: "CMYK(76%, 47%, 0%, 4%)",
		HSV:  "HSV(217, 76%, 96%)",
	}, sw)

	entries := sw.Entries()
	require.Len(t, entries, 5)
	assert.Equal(t, "HEX", entries[0][0])
	assert.Equal(t, "HSV", entries[4][0])

	_, err = Describe("3b82f6")
	assert.True(t, errors.Is(err, ErrInvalidColorFormat))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"#3B82F6", "#3b82f6", false},
		{"3b82f6", "#3b82f6", false},
		{"  #3b82f6  ", "#3b82f6", false},
		{"#abc", "#aabbcc", false},
		{"ABC", "#aabbcc", false},
		{"rgb(59, 130, 246)", "#3b82f6", false},
		{"rgb( 0 , 0 , 0 )", "#000000", false},
		{"hsl(0, 100%, 50%)", "#ff0000", false},
		{"rgb(256, 0, 0)", "", true},
		{"hsl(400, 10%, 10%)", "", true},
		{"#abcd", "", true},
		{"blue", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidColorFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
