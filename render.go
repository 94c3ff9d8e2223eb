package gridblur

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// Render paints one opaque cellSize x cellSize rectangle per cell.
func Render(columns, rows int, colors []colorful.Color, cellSize int) (*image.RGBA, error) {
	if cellSize < 1 {
		return nil, fmt.Errorf("cell size must be positive, got %d", cellSize)
	}
	if columns < 0 || rows < 0 || len(colors) != columns*rows {
		return nil, fmt.Errorf("render %dx%d grid: have %d colors", columns, rows, len(colors))
	}
	img := image.NewRGBA(image.Rect(0, 0, columns*cellSize, rows*cellSize))
	for i, c := range colors {
		col, row := i%columns, i/columns
		r, g, b := c.Clamped().RGB255()
		cell := image.Rect(col*cellSize, row*cellSize, (col+1)*cellSize, (row+1)*cellSize)
		draw.Draw(img, cell, image.NewUniform(color.RGBA{R: r, G: g, B: b, A: 255}), image.Point{}, draw.Src)
	}
	return img, nil
}
