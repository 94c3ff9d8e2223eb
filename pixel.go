package gridblur

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Pixel is one cell of a downsampled grid.
// Index is the row-major position (row*columns + col) and is fixed at extraction.
type Pixel struct {
	Index   int
	R, G, B uint8
}

// Normalize maps 8-bit channels into the unit interval.
func Normalize(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// Color returns the normalized color of p.
func (p Pixel) Color() colorful.Color {
	return Normalize(p.R, p.G, p.B)
}

// NRGBA returns p as an opaque color.
func (p Pixel) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// pixelFromColor converts a normalized color back to 8-bit channels.
func pixelFromColor(index int, c colorful.Color) Pixel {
	return Pixel{
		Index: index,
		R:     uint8(max(0, min(255, c.R*255+0.5))),
		G:     uint8(max(0, min(255, c.G*255+0.5))),
		B:     uint8(max(0, min(255, c.B*255+0.5))),
	}
}

func cellOffset(columns, col, row int) int {
	return row*columns + col
}
