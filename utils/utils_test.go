package utils

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setanarut/gridblur"
)

// twoToneGrid is a size x size grid, left half dark blue, right half light yellow.
func twoToneGrid(size int) gridblur.Grid {
	pixels := make([]gridblur.Pixel, size*size)
	for i := range pixels {
		if i%size < size/2 {
			pixels[i] = gridblur.Pixel{Index: i, R: 10, G: 20, B: 120}
		} else {
			pixels[i] = gridblur.Pixel{Index: i, R: 240, G: 230, B: 90}
		}
	}
	return gridblur.Grid{Columns: size, Rows: size, Pixels: pixels}
}

func TestSortPaletteByBrightness(t *testing.T) {
	palette := []colorful.Color{
		{R: 1, G: 1, B: 1},
		{},
		{R: 0, G: 1, B: 0},
		{R: 0, G: 0, B: 1},
	}
	SortPaletteByBrightness(palette)
	assert.Equal(t, []colorful.Color{
		{},
		{R: 0, G: 0, B: 1},
		{R: 0, G: 1, B: 0},
		{R: 1, G: 1, B: 1},
	}, palette)
}

func TestParsePaletteMethod(t *testing.T) {
	for _, m := range []PaletteMethod{PaletteMethodDominantColor, PaletteMethodKMeans} {
		got, err := ParsePaletteMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParsePaletteMethod("octree")
	assert.Error(t, err)
}

func TestGridPalette(t *testing.T) {
	g := twoToneGrid(16)
	for _, method := range []PaletteMethod{PaletteMethodDominantColor, PaletteMethodKMeans} {
		t.Run(method.String(), func(t *testing.T) {
			palette := GridPalette(g, 2, method)
			require.NotEmpty(t, palette)
			require.LessOrEqual(t, len(palette), 2)

			// Every cell quantizes to one of the palette entries.
			q := g.Quantize(palette)
			require.NoError(t, q.Validate())
			allowed := map[[3]uint8]bool{}
			for _, c := range palette {
				r, gg, b := c.Clamped().RGB255()
				allowed[[3]uint8{r, gg, b}] = true
			}
			for _, p := range q.Pixels {
				assert.True(t, allowed[[3]uint8{p.R, p.G, p.B}], "cell %d: %v", p.Index, p)
			}
		})
	}
	assert.Nil(t, GridPalette(gridblur.Grid{}, 3, PaletteMethodKMeans))
	assert.Nil(t, GridPalette(g, 0, PaletteMethodDominantColor))
}

func TestSelectDiverse(t *testing.T) {
	cands := []candidate{
		{col: colorful.Color{R: 1}, weight: 10},
		{col: colorful.Color{R: 0.98}, weight: 9},
		{col: colorful.Color{B: 1}, weight: 1},
	}
	got := selectDiverse(cands, 2)
	require.Len(t, got, 2)
	assert.Equal(t, colorful.Color{R: 1}, got[0], "heaviest color seeds the palette")
	assert.Equal(t, colorful.Color{B: 1}, got[1], "next pick is the most distant")

	assert.Len(t, selectDiverse(cands, 10), 3)
	assert.Nil(t, selectDiverse(nil, 2))
}

func TestSaveAndReadImage(t *testing.T) {
	dir := t.TempDir()
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.SetRGBA(2, 1, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	path := filepath.Join(dir, "img.png")
	require.NoError(t, SaveImage(src, path))

	img, err := ReadImage(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	r, g, b, _ := img.At(2, 1).RGBA()
	assert.Equal(t, []uint32{1, 2, 3}, []uint32{r >> 8, g >> 8, b >> 8})

	_, err = ReadImage(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestSavePalette(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.png")
	require.NoError(t, SavePalette([]colorful.Color{{R: 1}, {G: 1}}, 5, path))

	img, err := ReadImage(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 5), img.Bounds())

	assert.Error(t, SavePalette(nil, 5, path))
}

func TestSaveJSONPixels(t *testing.T) {
	dir := t.TempDir()
	g := twoToneGrid(4)
	require.NoError(t, SaveJSONPixels(g, filepath.Join(dir, "grid.json")))

	data, err := os.ReadFile(filepath.Join(dir, "grid.json"))
	require.NoError(t, err)
	back, err := gridblur.DecodeJSONPixels("grid.json", data, 4)
	require.NoError(t, err)
	assert.Equal(t, g.Pixels, back)
}
