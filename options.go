package gridblur

import (
	"fmt"
	"image"
	"math"
	"strings"

	"golang.org/x/image/draw"
)

// MaxConversionSize is the largest grid side accepted by Options.
const MaxConversionSize = 200

// Resampler selects how the source image is scaled down to the grid.
type Resampler int

const (
	ResamplerNearestNeighbor Resampler = iota
	ResamplerApproxBiLinear
	ResamplerBiLinear
	ResamplerCatmullRom
)

func (r Resampler) String() string {
	switch r {
	case ResamplerApproxBiLinear:
		return "approxbilinear"
	case ResamplerBiLinear:
		return "bilinear"
	case ResamplerCatmullRom:
		return "catmullrom"
	default:
		return "nearest"
	}
}

// ParseResampler is the inverse of Resampler.String.
func ParseResampler(s string) (Resampler, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nearest", "nearestneighbor":
		return ResamplerNearestNeighbor, nil
	case "approxbilinear":
		return ResamplerApproxBiLinear, nil
	case "bilinear":
		return ResamplerBiLinear, nil
	case "catmullrom":
		return ResamplerCatmullRom, nil
	}
	return ResamplerNearestNeighbor, fmt.Errorf("unknown resampler %q", s)
}

func (r Resampler) interpolator() draw.Interpolator {
	switch r {
	case ResamplerApproxBiLinear:
		return draw.ApproxBiLinear
	case ResamplerBiLinear:
		return draw.BiLinear
	case ResamplerCatmullRom:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// Options configures extraction, blur and rendering.
type Options struct {
	// Grid side length. The source is resampled to ConversionSize x ConversionSize.
	// Must be in [1, MaxConversionSize].
	ConversionSize int
	// Chebyshev half-width of the blur window. 0 disables the blur.
	BlurDistance int
	// Contribution of each neighbor relative to the center cell (which always weighs 1).
	// 0 leaves every cell unchanged.
	Weight float64
	Resampler Resampler
	// Side of one rendered rectangle in output pixels.
	CellSize int
}

// DefaultOptions returns a 50x50 nearest-neighbor grid with no blur.
func DefaultOptions() Options {
	return Options{
		ConversionSize: 50,
		BlurDistance:   0,
		Weight:         1.0,
		Resampler:      ResamplerNearestNeighbor,
		CellSize:       8,
	}
}

// OptionsFromSize picks a conversion size that does not upsample the source.
func OptionsFromSize(size image.Point) Options {
	opt := DefaultOptions()
	if size.X <= 0 || size.Y <= 0 {
		return opt
	}
	opt.ConversionSize = max(1, min(MaxConversionSize, min(size.X, size.Y)))
	return opt
}

// Validate rejects sizes out of range and weights that are negative, NaN or infinite.
func (o Options) Validate() error {
	if o.ConversionSize < 1 || o.ConversionSize > MaxConversionSize {
		return fmt.Errorf("conversion size %d out of range [1, %d]", o.ConversionSize, MaxConversionSize)
	}
	if o.BlurDistance < 0 {
		return fmt.Errorf("blur distance must be non-negative, got %d", o.BlurDistance)
	}
	if err := checkWeight(o.Weight); err != nil {
		return err
	}
	if o.CellSize < 1 {
		return fmt.Errorf("cell size must be positive, got %d", o.CellSize)
	}
	return nil
}

// checkWeight accepts finite, non-negative neighbor weights.
func checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return fmt.Errorf("weight must be a finite non-negative number, got %g", w)
	}
	return nil
}
