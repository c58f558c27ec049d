package terrain

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/Faultbox/landscape/internal/engine/texture"
)

// Heightmap is an immutable grid of normalized elevation samples.
// Row 0 maps to z = 0 and rows grow towards +Z.
type Heightmap struct {
	width   int
	height  int
	samples []float32 // row-major, 0..1
}

// NewHeightmap creates a heightmap from row-major samples in [0,1].
// The slice is copied.
func NewHeightmap(width, height int, samples []float32) (*Heightmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyHeightmap, width, height)
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("heightmap: expected %d samples, got %d", width*height, len(samples))
	}
	for i, s := range samples {
		if math.IsNaN(float64(s)) || s < 0 || s > 1 {
			return nil, fmt.Errorf("heightmap: sample %d out of range: %v", i, s)
		}
	}

	return &Heightmap{
		width:   width,
		height:  height,
		samples: append([]float32(nil), samples...),
	}, nil
}

// HeightmapFromImage reads channel 0 of every pixel as the elevation sample.
// 16-bit grayscale images keep their full precision; everything else is
// read at 8 bits per channel.
func HeightmapFromImage(img image.Image) (*Heightmap, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrEmptyHeightmap)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyHeightmap, w, h)
	}

	samples := make([]float32, w*h)
	for y := range h {
		for x := range w {
			samples[y*w+x] = intensity(img, b.Min.X+x, b.Min.Y+y)
		}
	}

	return &Heightmap{width: w, height: h, samples: samples}, nil
}

// LoadHeightmap decodes an image file into a heightmap.
func LoadHeightmap(path string) (*Heightmap, error) {
	img, err := texture.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading heightmap: %w", err)
	}
	hm, err := HeightmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("loading heightmap %s: %w", path, err)
	}
	return hm, nil
}

func intensity(img image.Image, x, y int) float32 {
	switch im := img.(type) {
	case *image.Gray:
		return float32(im.GrayAt(x, y).Y) / 255
	case *image.Gray16:
		return float32(im.Gray16At(x, y).Y) / 65535
	}
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return float32(c.R) / 255
}

// Width returns the number of samples per row.
func (h *Heightmap) Width() int { return h.width }

// Height returns the number of rows.
func (h *Heightmap) Height() int { return h.height }

// At returns the raw sample at integer pixel coordinates, clamped to the grid.
func (h *Heightmap) At(x, y int) float32 {
	x = clampi(x, 0, h.width-1)
	y = clampi(y, 0, h.height-1)
	return h.samples[y*h.width+x]
}

// Sample bilinearly interpolates at fractional pixel coordinates.
// Coordinates outside the grid are clamped to its edge.
func (h *Heightmap) Sample(px, py float64) float64 {
	maxX := float64(h.width - 1)
	maxY := float64(h.height - 1)
	px = clampf(px, 0, maxX)
	py = clampf(py, 0, maxY)

	x0 := int(px)
	y0 := int(py)
	x1 := min(x0+1, h.width-1)
	y1 := min(y0+1, h.height-1)
	fx := px - float64(x0)
	fy := py - float64(y0)

	top := lerp(float64(h.samples[y0*h.width+x0]), float64(h.samples[y0*h.width+x1]), fx)
	bottom := lerp(float64(h.samples[y1*h.width+x0]), float64(h.samples[y1*h.width+x1]), fx)
	return lerp(top, bottom, fy)
}

// SampleUV samples with normalized coordinates, (0,0) being the first
// pixel and (1,1) the last.
func (h *Heightmap) SampleUV(u, v float64) float64 {
	return h.Sample(u*float64(h.width-1), v*float64(h.height-1))
}

// lerp returns a exactly when a == b, which keeps flat maps flat.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clampf maps NaN to lo.
func clampf(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
