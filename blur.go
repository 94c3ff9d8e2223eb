package gridblur

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/mat"
)

// forEachNeighbor calls fn with the flat index of every cell in the
// Chebyshev window around (col, row), excluding the cell itself.
// Cells outside the grid, or past n, are skipped rather than clamped.
func forEachNeighbor(col, row, columns, rows, n, distance int, fn func(i int)) {
	for dy := -distance; dy <= distance; dy++ {
		newRow := row + dy
		if newRow < 0 || newRow >= rows {
			continue
		}
		for dx := -distance; dx <= distance; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			newCol := col + dx
			if newCol < 0 || newCol >= columns {
				continue
			}
			i := cellOffset(columns, newCol, newRow)
			if i >= n {
				continue
			}
			fn(i)
		}
	}
}

// Neighbors returns the flat indices contributing to the blur of the cell at
// index, in scan order. n is the length of the pixel sequence.
func Neighbors(index, columns, rows, n, distance int) []int {
	if columns <= 0 || distance <= 0 {
		return nil
	}
	var out []int
	forEachNeighbor(index%columns, index/columns, columns, rows, n, distance, func(i int) {
		out = append(out, i)
	})
	return out
}

// BlurPixel blends target with its window neighbors. target weighs 1 and
// each neighbor inside the grid weighs weight. Near edges fewer neighbors
// contribute, so the result there is less blurred.
func BlurPixel(pixels []Pixel, columns, rows int, target Pixel, distance int, weight float64) colorful.Color {
	sum := target.Color()
	if columns <= 0 || distance <= 0 {
		return sum
	}
	total := 1.0
	forEachNeighbor(target.Index%columns, target.Index/columns, columns, rows, len(pixels), distance, func(i int) {
		c := pixels[i].Color()
		sum.R += c.R * weight
		sum.G += c.G * weight
		sum.B += c.B * weight
		total += weight
	})
	return colorful.Color{R: sum.R / total, G: sum.G / total, B: sum.B / total}
}

// channelPlanes lays the grid out as normalized R, G, B matrices of rows x columns.
func channelPlanes(g Grid) [3]*mat.Dense {
	var planes [3]*mat.Dense
	for ch := range planes {
		planes[ch] = mat.NewDense(g.Rows, g.Columns, nil)
	}
	for _, p := range g.Pixels {
		row, col := p.Index/g.Columns, p.Index%g.Columns
		c := p.Color()
		planes[0].Set(row, col, c.R)
		planes[1].Set(row, col, c.G)
		planes[2].Set(row, col, c.B)
	}
	return planes
}

// BlurGrid blurs every cell of g and returns the colors in index order.
// Each result matches BlurPixel for the same cell up to float rounding.
func BlurGrid(g Grid, distance int, weight float64) ([]colorful.Color, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if distance < 0 {
		return nil, fmt.Errorf("blur distance must be non-negative, got %d", distance)
	}
	if err := checkWeight(weight); err != nil {
		return nil, err
	}
	out := make([]colorful.Color, len(g.Pixels))
	if len(g.Pixels) == 0 {
		return out, nil
	}
	if distance == 0 {
		for i, p := range g.Pixels {
			out[i] = p.Color()
		}
		return out, nil
	}

	// On a validated grid every in-bounds neighbor exists, so the window is
	// the clipped rectangle around the cell.
	planes := channelPlanes(g)
	for row := range g.Rows {
		r0, r1 := max(0, row-distance), min(g.Rows, row+distance+1)
		for col := range g.Columns {
			c0, c1 := max(0, col-distance), min(g.Columns, col+distance+1)
			neighbors := float64((r1-r0)*(c1-c0) - 1)
			total := 1 + weight*neighbors

			var blended [3]float64
			for ch, plane := range planes {
				center := plane.At(row, col)
				window := mat.Sum(plane.Slice(r0, r1, c0, c1))
				blended[ch] = (center + weight*(window-center)) / total
			}
			out[cellOffset(g.Columns, col, row)] = colorful.Color{R: blended[0], G: blended[1], B: blended[2]}
		}
	}
	return out, nil
}
