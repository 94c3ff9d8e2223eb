package gridblur

import (
	"bytes"
	"errors"
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Extract resamples img to width x height and returns one Pixel per cell in
// row-major order starting top-left. Fully transparent samples become black.
func Extract(img image.Image, width, height int, r Resampler) ([]Pixel, error) {
	if img == nil {
		return nil, &DecodeError{Err: errors.New("no image")}
	}
	if width <= 0 || height <= 0 {
		return nil, decodeErrorf("", "invalid grid size %dx%d", width, height)
	}
	src := img.Bounds()
	if src.Empty() {
		return nil, decodeErrorf("", "empty image bounds %v", src)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	r.interpolator().Scale(dst, dst.Bounds(), img, src, draw.Src, nil)

	pixels := make([]Pixel, 0, width*height)
	for y := range height {
		for x := range width {
			off := dst.PixOffset(x, y)
			s := dst.Pix[off : off+4 : off+4]
			p := Pixel{Index: cellOffset(width, x, y)}
			if s[3] != 0 {
				p.R, p.G, p.B = s[0], s[1], s[2]
			}
			pixels = append(pixels, p)
		}
	}
	return pixels, nil
}

// ExtractBytes decodes an encoded raster (PNG, JPEG, GIF, BMP, TIFF) and extracts it.
// name only labels errors.
func ExtractBytes(name string, data []byte, width, height int, r Resampler) ([]Pixel, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Name: name, Err: err}
	}
	pixels, err := Extract(img, width, height, r)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) && de.Name == "" {
			de.Name = name
		}
		return nil, err
	}
	return pixels, nil
}
