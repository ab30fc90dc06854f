package image

import (
	"image"
	"image/color"
	"testing"

	"github.com/jmylchreest/shade/internal/colour"
)

// fill paints a rectangle of the image with one colour.
func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func TestDominant(t *testing.T) {
	t.Run("majority colour wins", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 100, 100))
		fill(img, image.Rect(0, 0, 100, 100), color.RGBA{R: 123, G: 196, B: 232, A: 255})
		fill(img, image.Rect(0, 0, 20, 20), color.RGBA{R: 200, G: 30, B: 30, A: 255})

		got, err := Dominant(img)
		if err != nil {
			t.Fatalf("Dominant() error = %v", err)
		}
		want := colour.RGB{R: 123, G: 196, B: 232}
		if got != want {
			t.Errorf("Dominant() = %+v, want %+v", got, want)
		}
	})

	t.Run("similar shades pool into one cell", func(t *testing.T) {
		// Two near-identical blues outnumber a solid red block only when
		// grouped together.
		img := image.NewRGBA(image.Rect(0, 0, 90, 10))
		fill(img, image.Rect(0, 0, 25, 10), color.RGBA{R: 120, G: 192, B: 230, A: 255})
		fill(img, image.Rect(25, 0, 50, 10), color.RGBA{R: 121, G: 193, B: 231, A: 255})
		fill(img, image.Rect(50, 0, 90, 10), color.RGBA{R: 200, G: 0, B: 0, A: 255})

		got, err := Dominant(img)
		if err != nil {
			t.Fatalf("Dominant() error = %v", err)
		}
		if got.R > 140 {
			t.Errorf("Dominant() = %+v, want the pooled blue shades to win over red", got)
		}
	})

	t.Run("transparent pixels are ignored", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 10, 10))
		fill(img, image.Rect(0, 0, 10, 10), color.RGBA{})
		fill(img, image.Rect(0, 0, 2, 2), color.RGBA{R: 50, G: 100, B: 150, A: 255})

		got, err := Dominant(img)
		if err != nil {
			t.Fatalf("Dominant() error = %v", err)
		}
		want := colour.RGB{R: 50, G: 100, B: 150}
		if got != want {
			t.Errorf("Dominant() = %+v, want %+v", got, want)
		}
	})

	t.Run("fully transparent image is an error", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 10, 10))
		if _, err := Dominant(img); err == nil {
			t.Error("expected error for image with no opaque pixels")
		}
	})

	t.Run("empty image is an error", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 0, 0))
		if _, err := Dominant(img); err == nil {
			t.Error("expected error for empty image")
		}
	})
}
