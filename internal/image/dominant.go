package image

import (
	"fmt"
	"image"

	"github.com/jmylchreest/shade/internal/colour"
)

const (
	// maxSamplesPerAxis caps the sampling grid so large images stay cheap.
	maxSamplesPerAxis = 256

	// bucketShift quantises each channel to 4 bits when grouping similar
	// pixels, 4096 buckets in total.
	bucketShift = 4

	// minAlpha discards mostly transparent pixels from the sample.
	minAlpha = 0x8000
)

// bucket accumulates the pixels that quantise to one colour cell.
type bucket struct {
	count   int
	r, g, b uint64
}

// Dominant reduces an image to its most common colour: pixels are sampled on
// a bounded grid, grouped into coarse colour cells, and the most populated
// cell is averaged back into a single RGB value. An image with no opaque
// pixels is an error.
func Dominant(img image.Image) (colour.RGB, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return colour.RGB{}, fmt.Errorf("image has no pixels")
	}

	stepX := bounds.Dx()/maxSamplesPerAxis + 1
	stepY := bounds.Dy()/maxSamplesPerAxis + 1

	buckets := make(map[uint32]*bucket)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			r, g, b, a := img.At(x, y).RGBA()
			if a < minAlpha {
				continue
			}

			r8 := r >> 8
			g8 := g >> 8
			b8 := b >> 8

			key := (r8>>bucketShift)<<8 | (g8>>bucketShift)<<4 | (b8 >> bucketShift)
			cell := buckets[key]
			if cell == nil {
				cell = &bucket{}
				buckets[key] = cell
			}
			cell.count++
			cell.r += uint64(r8)
			cell.g += uint64(g8)
			cell.b += uint64(b8)
		}
	}

	var best *bucket
	for _, cell := range buckets {
		if best == nil || cell.count > best.count {
			best = cell
		}
	}
	if best == nil {
		return colour.RGB{}, fmt.Errorf("image has no opaque pixels")
	}

	n := uint64(best.count)
	return colour.RGB{
		R: uint8(best.r / n),
		G: uint8(best.g / n),
		B: uint8(best.b / n),
	}, nil
}
