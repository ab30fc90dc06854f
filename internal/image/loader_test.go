package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG encodes a small solid-colour PNG under dir and returns its path.
func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	fill(img, img.Bounds(), color.RGBA{R: 10, G: 20, B: 30, A: 255})

	path := filepath.Join(dir, "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	loader := NewFileLoader()

	t.Run("valid png", func(t *testing.T) {
		path := writeTestPNG(t, t.TempDir())

		img, err := loader.Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
			t.Errorf("loaded image bounds = %v, want 4x4", img.Bounds())
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if _, err := loader.Load(""); err == nil {
			t.Error("expected error for empty path")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := loader.Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("directory", func(t *testing.T) {
		if _, err := loader.Load(t.TempDir()); err == nil {
			t.Error("expected error for directory path")
		}
	})

	t.Run("not an image", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "junk.png")
		if err := os.WriteFile(path, []byte("not an image"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := loader.Load(path); err == nil {
			t.Error("expected error for undecodable file")
		}
	})
}
