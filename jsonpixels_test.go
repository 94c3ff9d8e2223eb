package gridblur

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONPixels(t *testing.T) {
	data := []byte(`[
		{"r": 255, "g": 0, "b": 0},
		{"r": 0, "g": 255, "b": 0},
		{"r": 0, "g": 0, "b": 255},
		{"r": 255, "g": 255, "b": 0}
	]`)
	pixels, err := DecodeJSONPixels("quad.json", data, 2)
	require.NoError(t, err)

	want := []Pixel{
		{Index: 0, R: 255},
		{Index: 1, G: 255},
		{Index: 2, B: 255},
		{Index: 3, R: 255, G: 255},
	}
	if diff := cmp.Diff(want, pixels); diff != "" {
		t.Errorf("DecodeJSONPixels mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeJSONPixels_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		size int
	}{
		{"malformed", `[{"r": 1,`, 1},
		{"not an array", `{"r": 1, "g": 2, "b": 3}`, 1},
		{"too short", `[{"r": 1, "g": 2, "b": 3}]`, 2},
		{"too long", `[{"r":1,"g":2,"b":3},{"r":1,"g":2,"b":3}]`, 1},
		{"channel above range", `[{"r": 256, "g": 0, "b": 0}]`, 1},
		{"negative channel", `[{"r": 0, "g": -1, "b": 0}]`, 1},
		{"zero size", `[]`, 0},
		{"missing g", `[{"r":1,"b":2}]`, 1},
		{"only r", `[{"r":7}]`, 1},
		{"null element", `[null]`, 1},
		{"empty object", `[{}]`, 1},
		{"null channel", `[{"r":1,"g":null,"b":2}]`, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSONPixels("in.json", []byte(tt.data), tt.size)
			var de *DecodeError
			require.True(t, errors.As(err, &de), "got %v", err)
			assert.Equal(t, "in.json", de.Name)
		})
	}
}

func TestEncodeJSONPixels(t *testing.T) {
	g := gradientGrid(3, 3)
	data, err := EncodeJSONPixels(g.Pixels)
	require.NoError(t, err)

	back, err := DecodeJSONPixels("", data, 3)
	require.NoError(t, err)
	assert.Equal(t, g.Pixels, back)

	_, err = EncodeJSONPixels([]Pixel{{Index: 1}})
	assert.Error(t, err)
}
