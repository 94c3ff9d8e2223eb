package gridblur

import (
	"path"
	"strings"
)

// LoadPixels reads name from src and turns it into a ConversionSize x
// ConversionSize pixel sequence. Names ending in .json use the JSON pixel
// format; anything else is decoded as a raster image.
func LoadPixels(src Source, name string, opt Options) ([]Pixel, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	data, err := src.Load(name)
	if err != nil {
		return nil, err
	}
	size := opt.ConversionSize
	if strings.EqualFold(path.Ext(name), ".json") {
		return DecodeJSONPixels(name, data, size)
	}
	return ExtractBytes(name, data, size, size, opt.Resampler)
}

// Load is LoadPixels for callers that keep going without an image.
// Any failure is logged and yields the empty Grid.
func Load(src Source, name string, opt Options) Grid {
	pixels, err := LoadPixels(src, name, opt)
	if err != nil {
		Logf("gridblur: no image for %q: %v", name, err)
		return Grid{}
	}
	return Grid{Columns: opt.ConversionSize, Rows: opt.ConversionSize, Pixels: pixels}
}
