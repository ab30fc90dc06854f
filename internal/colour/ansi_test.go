package colour

import (
	"strings"
	"testing"
)

func TestSwatch(t *testing.T) {
	got := Swatch(RGB{R: 123, G: 196, B: 232}, 4)

	if !strings.HasPrefix(got, "\033[48;2;123;196;232m") {
		t.Errorf("Swatch() = %q, missing background escape", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Errorf("Swatch() = %q, missing reset", got)
	}
	if !strings.Contains(got, "    ") {
		t.Errorf("Swatch() = %q, missing 4-character block", got)
	}
}

func TestSwatchDefaultWidth(t *testing.T) {
	got := Swatch(RGB{}, 0)
	if !strings.Contains(got, strings.Repeat(" ", defaultWidth)) {
		t.Errorf("Swatch() with width 0 = %q, want default width block", got)
	}
}

func TestSwatchWithText(t *testing.T) {
	t.Run("dark background gets white text", func(t *testing.T) {
		got := SwatchWithText(RGB{R: 10, G: 10, B: 10}, "hi", 6)
		if !strings.Contains(got, "\033[38;2;255;255;255m") {
			t.Errorf("SwatchWithText() = %q, want white foreground", got)
		}
	})

	t.Run("light background gets black text", func(t *testing.T) {
		got := SwatchWithText(RGB{R: 250, G: 250, B: 250}, "hi", 6)
		if !strings.Contains(got, "\033[38;2;0;0;0m") {
			t.Errorf("SwatchWithText() = %q, want black foreground", got)
		}
	})

	t.Run("long text is truncated to width", func(t *testing.T) {
		got := SwatchWithText(RGB{}, "overflowing", 4)
		if strings.Contains(got, "overflowing") {
			t.Errorf("SwatchWithText() = %q, text not truncated", got)
		}
		if !strings.Contains(got, "over") {
			t.Errorf("SwatchWithText() = %q, missing truncated text", got)
		}
	})
}

func TestColourString(t *testing.T) {
	got := ColourString(RGB{R: 1, G: 2, B: 3}, "text")
	want := "\033[38;2;1;2;3mtext\033[0m"
	if got != want {
		t.Errorf("ColourString() = %q, want %q", got, want)
	}
}
