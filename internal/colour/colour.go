// Package colour implements the graded-palette colour maths: hex/RGB/HSL
// conversion, WCAG relative luminance and contrast, the 12-step grade scale
// and luminance-targeted colour synthesis.
package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB represents a colour in RGB format with 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSL represents a colour in HSL space. Hue is a fraction of a full turn in
// [0,1); saturation and lightness are in [0,1].
type HSL struct {
	H float64
	S float64
	L float64
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as an uppercase hex string (e.g. "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// ParseHex parses a hex colour string into an RGB value. A single leading
// "#" is optional and hex digits may be any case, but exactly six digits are
// required. ok is false for anything else; callers treat that as "not yet
// valid input" rather than an error.
func ParseHex(hex string) (RGB, bool) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, true
}

// IsValidHex reports whether s is a complete hex colour of the form
// "#RRGGBB". Unlike ParseHex the leading "#" is required.
func IsValidHex(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	_, ok := ParseHex(s)
	return ok && len(s) == 7
}

// NormalizeHex cleans up user-typed hex input: every "#" is stripped, the
// digits are uppercased and a single "#" prefix is restored. It does not
// validate; combine with IsValidHex or ParseHex.
func NormalizeHex(s string) string {
	return "#" + strings.ToUpper(strings.ReplaceAll(s, "#", ""))
}

// PadPartialHex pads a partially typed colour with trailing zeros once it is
// long enough to be worth previewing. Input of at least 4 characters
// (a "#RGB"-length prefix) is extended to the full 7-character "#RRGGBB"
// form; shorter or already-complete input is returned unchanged.
func PadPartialHex(s string) string {
	if len(s) < 4 || len(s) >= 7 {
		return s
	}
	return s + strings.Repeat("0", 7-len(s))
}

// HSL converts the colour to HSL space using the standard min/max channel
// decomposition. Hue is 0 for achromatic colours.
func (rgb RGB) HSL() HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	hsl := HSL{L: (maxVal + minVal) / 2.0}
	if delta == 0 {
		return hsl
	}

	if hsl.L < 0.5 {
		hsl.S = delta / (maxVal + minVal)
	} else {
		hsl.S = delta / (2.0 - maxVal - minVal)
	}

	switch maxVal {
	case r:
		hsl.H = (g - b) / delta
		if g < b {
			hsl.H += 6
		}
	case g:
		hsl.H = (b-r)/delta + 2
	case b:
		hsl.H = (r-g)/delta + 4
	}
	hsl.H /= 6

	return hsl
}

// RGB converts the colour back to RGB space using piecewise hue
// interpolation, rounding each channel to the nearest integer.
func (hsl HSL) RGB() RGB {
	if hsl.S == 0 {
		// Achromatic (grey).
		v := uint8(math.Round(hsl.L * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if hsl.L < 0.5 {
		q = hsl.L * (1 + hsl.S)
	} else {
		q = hsl.L + hsl.S - hsl.L*hsl.S
	}
	p := 2*hsl.L - q

	return RGB{
		R: uint8(math.Round(hueToChannel(p, q, hsl.H+1.0/3.0) * 255)),
		G: uint8(math.Round(hueToChannel(p, q, hsl.H) * 255)),
		B: uint8(math.Round(hueToChannel(p, q, hsl.H-1.0/3.0) * 255)),
	}
}

// hueToChannel is a helper for HSL to RGB conversion.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
