package gridblur

import (
	"errors"
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// Grid is a Columns x Rows arrangement of pixels in row-major order.
// The zero Grid is the empty result returned when nothing could be loaded.
type Grid struct {
	Columns, Rows int
	Pixels        []Pixel
}

// NewGrid wraps pixels as a grid and validates the layout.
func NewGrid(columns, rows int, pixels []Pixel) (Grid, error) {
	g := Grid{Columns: columns, Rows: rows, Pixels: pixels}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// Empty reports whether g has no cells.
func (g Grid) Empty() bool { return len(g.Pixels) == 0 }

// Validate checks len(Pixels) == Columns*Rows and that every pixel sits at its own index.
func (g Grid) Validate() error {
	if g.Columns < 0 || g.Rows < 0 {
		return fmt.Errorf("negative grid size %dx%d", g.Columns, g.Rows)
	}
	if len(g.Pixels) != g.Columns*g.Rows {
		return fmt.Errorf("grid %dx%d needs %d pixels, has %d", g.Columns, g.Rows, g.Columns*g.Rows, len(g.Pixels))
	}
	for i, p := range g.Pixels {
		if p.Index != i {
			return fmt.Errorf("pixel at position %d has index %d", i, p.Index)
		}
	}
	return nil
}

// Colors returns the normalized, unblurred color of every cell.
func (g Grid) Colors() []colorful.Color {
	out := make([]colorful.Color, len(g.Pixels))
	for i, p := range g.Pixels {
		out[i] = p.Color()
	}
	return out
}

// Image returns g with one opaque image pixel per cell.
func (g Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Columns, g.Rows))
	for _, p := range g.Pixels {
		img.SetNRGBA(p.Index%g.Columns, p.Index/g.Columns, p.NRGBA())
	}
	return img
}

// Quantize maps each cell to the closest palette color in CIE Lab.
// Indices are kept. An empty palette returns g unchanged.
func (g Grid) Quantize(palette []colorful.Color) Grid {
	if len(palette) == 0 {
		return g
	}
	out := Grid{Columns: g.Columns, Rows: g.Rows, Pixels: make([]Pixel, len(g.Pixels))}
	for i, p := range g.Pixels {
		c := p.Color()
		best, bestDist := 0, c.DistanceLab(palette[0])
		for k := 1; k < len(palette); k++ {
			if d := c.DistanceLab(palette[k]); d < bestDist {
				best, bestDist = k, d
			}
		}
		out.Pixels[i] = pixelFromColor(p.Index, palette[best].Clamped())
	}
	return out
}

// GridBuilder holds a decoded source image and the grid extracted from it.
// Build replaces Grid wholesale, so changing the conversion size never
// leaves stale cells behind.
type GridBuilder struct {
	Source image.Image
	Grid   Grid
}

// NewGridBuilder returns a builder for src. Call Build before Colors or Render.
func NewGridBuilder(src image.Image) *GridBuilder {
	return &GridBuilder{Source: src}
}

// Build re-extracts Source at opt.ConversionSize and replaces Grid wholesale;
// on extraction failure Grid is left empty.
func (gb *GridBuilder) Build(opt Options) error {
	if err := opt.Validate(); err != nil {
		return err
	}
	size := opt.ConversionSize
	pixels, err := Extract(gb.Source, size, size, opt.Resampler)
	if err != nil {
		gb.Grid = Grid{}
		return err
	}
	gb.Grid = Grid{Columns: size, Rows: size, Pixels: pixels}
	return nil
}

// Colors returns the grid colors, blurred when opt.BlurDistance > 0.
func (gb *GridBuilder) Colors(opt Options) ([]colorful.Color, error) {
	if gb.Grid.Empty() {
		return nil, errors.New("grid not built")
	}
	if opt.BlurDistance == 0 {
		return gb.Grid.Colors(), nil
	}
	return BlurGrid(gb.Grid, opt.BlurDistance, opt.Weight)
}

// Render paints the (possibly blurred) grid with opt.CellSize rectangles.
func (gb *GridBuilder) Render(opt Options) (*image.RGBA, error) {
	colors, err := gb.Colors(opt)
	if err != nil {
		return nil, err
	}
	return Render(gb.Grid.Columns, gb.Grid.Rows, colors, opt.CellSize)
}
