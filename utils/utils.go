package utils

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/setanarut/gridblur"
)

// ReadImage decodes an image file, applying its EXIF orientation.
func ReadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}
	return img, nil
}

func SaveImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	return f.Close()
}

// SavePalette writes the palette as a row of tileSize squares.
func SavePalette(palette []colorful.Color, tileSize int, filename string) error {
	if len(palette) == 0 {
		return errors.New("empty palette")
	}
	if tileSize <= 0 {
		tileSize = 64
	}
	img, err := gridblur.Render(len(palette), 1, palette, tileSize)
	if err != nil {
		return err
	}
	return SaveImage(img, filename)
}

// SaveJSONPixels writes g in the JSON pixel format.
func SaveJSONPixels(g gridblur.Grid, filename string) error {
	data, err := gridblur.EncodeJSONPixels(g.Pixels)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}
