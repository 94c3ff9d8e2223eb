package utils

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/setanarut/gridblur"
)

type PaletteMethod int

const (
	PaletteMethodDominantColor PaletteMethod = iota
	PaletteMethodKMeans
)

func (m PaletteMethod) String() string {
	switch m {
	case PaletteMethodKMeans:
		return "kmeans"
	default:
		return "dominantcolor"
	}
}

func ParsePaletteMethod(s string) (PaletteMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dominantcolor", "dominant":
		return PaletteMethodDominantColor, nil
	case "kmeans":
		return PaletteMethodKMeans, nil
	}
	return PaletteMethodDominantColor, fmt.Errorf("unknown palette method %q", s)
}

// candidate is a palette color with how much of the grid it stands for.
type candidate struct {
	col    colorful.Color
	weight float64
}

// luminance is the relative luminance of c.
func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// SortPaletteByBrightness orders colors from darkest to brightest.
func SortPaletteByBrightness(palette []colorful.Color) {
	slices.SortStableFunc(palette, func(a, b colorful.Color) int {
		la, lb := luminance(a), luminance(b)
		switch {
		case la < lb:
			return -1
		case la > lb:
			return 1
		}
		return 0
	})
}

// GridPalette picks k representative colors of g. K-means falls back to
// dominant colors when it cannot produce a palette.
func GridPalette(g gridblur.Grid, k int, method PaletteMethod) []colorful.Color {
	if k <= 0 || g.Empty() {
		return nil
	}
	if method == PaletteMethodKMeans {
		if p := KMeansPalette(g, k); len(p) != 0 {
			return p
		}
		gridblur.Logf("palette: kmeans returned no colors, falling back to dominantcolor")
	}
	return DominantPalette(g, k)
}

func DominantPalette(g gridblur.Grid, k int) []colorful.Color {
	if k <= 0 || g.Empty() {
		return nil
	}
	found := dominantcolor.FindWeight(g.Image(), max(24, k*8))
	if len(found) == 0 {
		// Keep callers supplied with at least one color.
		found = []dominantcolor.Color{{RGBA: color.RGBA{R: 128, G: 128, B: 128, A: 255}, Weight: 1}}
	}
	cands := make([]candidate, 0, len(found))
	for _, c := range found {
		col, _ := colorful.MakeColor(c.RGBA)
		cands = append(cands, candidate{col: col, weight: c.Weight})
	}
	return selectDiverse(cands, k)
}

func KMeansPalette(g gridblur.Grid, k int) []colorful.Color {
	if k <= 0 || g.Empty() {
		return nil
	}
	dataset := make(clusters.Observations, 0, len(g.Pixels))
	for _, p := range g.Pixels {
		c := p.Color()
		dataset = append(dataset, clusters.Coordinates{c.R, c.G, c.B})
	}
	workK := min(max(k*4, k+2), len(dataset))
	cc, err := kmeans.New().Partition(dataset, workK)
	if err != nil || len(cc) == 0 {
		return nil
	}

	cands := make([]candidate, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 || len(c.Observations) == 0 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}
		cands = append(cands, candidate{col: col, weight: float64(len(c.Observations))})
	}
	return selectDiverse(cands, k)
}

// selectDiverse greedily picks k colors, seeded with the heaviest one, each
// next pick maximizing Lab distance to the picks so far scaled by its weight.
func selectDiverse(cands []candidate, k int) []colorful.Color {
	if k <= 0 || len(cands) == 0 {
		return nil
	}
	k = min(k, len(cands))

	type item struct {
		col     colorful.Color
		l, a, b float64
		w       float64
	}
	items := make([]item, len(cands))
	maxW := 0.0
	seed := 0
	for i, c := range cands {
		col := c.col.Clamped()
		l, a, b := col.Lab()
		w := max(c.weight, 1e-6)
		items[i] = item{col: col, l: l, a: a, b: b, w: w}
		if w > maxW {
			maxW = w
			seed = i
		}
	}

	picked := []int{seed}
	used := make([]bool, len(items))
	used[seed] = true
	for len(picked) < k {
		best, bestScore := -1, -1.0
		for i, it := range items {
			if used[i] {
				continue
			}
			nearest := math.MaxFloat64
			for _, s := range picked {
				dl, da, db := it.l-items[s].l, it.a-items[s].a, it.b-items[s].b
				nearest = min(nearest, dl*dl+da*da+db*db)
			}
			score := math.Sqrt(nearest) * (0.55 + 0.45*math.Sqrt(it.w/maxW))
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		if best < 0 {
			break
		}
		used[best] = true
		picked = append(picked, best)
	}

	out := make([]colorful.Color, len(picked))
	for i, idx := range picked {
		out[i] = items[idx].col
	}
	return out
}
