package gridblur

import (
	"fmt"

	"github.com/goccy/go-json"
)

// jsonPixel is one element of the JSON pixel format. Position in the array
// is the row-major index, so no index is stored.
type jsonPixel struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// jsonPixelIn is jsonPixel as read, so absent channels can be told apart from 0.
type jsonPixelIn struct {
	R *int `json:"r"`
	G *int `json:"g"`
	B *int `json:"b"`
}

// DecodeJSONPixels parses an array of {"r","g","b"} objects describing a
// size x size grid.
func DecodeJSONPixels(name string, data []byte, size int) ([]Pixel, error) {
	var raw []*jsonPixelIn
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{Name: name, Err: err}
	}
	if size <= 0 || len(raw) != size*size {
		return nil, decodeErrorf(name, "have %d pixels, want %d for a %dx%d grid", len(raw), size*size, size, size)
	}
	pixels := make([]Pixel, len(raw))
	for i, p := range raw {
		if p == nil || p.R == nil || p.G == nil || p.B == nil {
			return nil, decodeErrorf(name, "pixel %d: missing channel", i)
		}
		r, g, b := *p.R, *p.G, *p.B
		if !inByteRange(r) || !inByteRange(g) || !inByteRange(b) {
			return nil, decodeErrorf(name, "pixel %d: channel out of range (%d, %d, %d)", i, r, g, b)
		}
		pixels[i] = Pixel{Index: i, R: uint8(r), G: uint8(g), B: uint8(b)}
	}
	return pixels, nil
}

// EncodeJSONPixels writes pixels in the format DecodeJSONPixels reads.
// The slice must be in index order.
func EncodeJSONPixels(pixels []Pixel) ([]byte, error) {
	raw := make([]jsonPixel, len(pixels))
	for i, p := range pixels {
		if p.Index != i {
			return nil, fmt.Errorf("pixel at position %d has index %d", i, p.Index)
		}
		raw[i] = jsonPixel{R: int(p.R), G: int(p.G), B: int(p.B)}
	}
	return json.Marshal(raw)
}

func inByteRange(v int) bool { return v >= 0 && v <= 255 }
