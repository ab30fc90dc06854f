package colour

import (
	"encoding/json"
	"fmt"
)

// Fixed endpoints of the grade scale.
const (
	HexWhite = "#FFFFFF"
	HexBlack = "#000000"
)

// PaletteEntry is one grade of a generated palette.
type PaletteEntry struct {
	Grade     int     `json:"grade"`
	Hex       string  `json:"hex"`
	Luminance float64 `json:"luminance"`
	IsInput   bool    `json:"is_input"`
}

// GradedPalette is the full result of palette generation: one entry per
// grade in ascending order, plus the classification of the input colour.
type GradedPalette struct {
	Entries []PaletteEntry `json:"palette"`
	Input   GradeInfo      `json:"input_grade"`
}

// BuildPalette generates the 12-grade palette seeded by a hex colour. The
// seed's hue and saturation carry through every synthesized grade; if the
// seed's luminance lands exactly in a band, that grade keeps the seed colour
// verbatim instead of a resynthesized approximation. An invalid hex yields
// an empty palette with a default grade-50 classification, mirroring the
// soft-failure contract of ParseHex.
func BuildPalette(hex string) GradedPalette {
	rgb, ok := ParseHex(hex)
	if !ok {
		return GradedPalette{Input: GradeInfo{Grade: 50}}
	}

	lum := rgb.Luminance()
	info := ClassifyLuminance(lum)
	hsl := rgb.HSL()

	entries := make([]PaletteEntry, 0, len(gradeTable))
	for _, band := range gradeTable {
		switch {
		case band.Grade == info.Grade && info.Exact:
			entries = append(entries, PaletteEntry{
				Grade:     band.Grade,
				Hex:       rgb.Hex(),
				Luminance: lum,
				IsInput:   true,
			})
		case band.Grade == 0:
			entries = append(entries, PaletteEntry{Grade: 0, Hex: HexWhite, Luminance: 1.0})
		case band.Grade == 100:
			entries = append(entries, PaletteEntry{Grade: 100, Hex: HexBlack, Luminance: 0.0})
		default:
			out := SynthesizeGrade(hsl.H, hsl.S, band.targetLuminance(), band.Grade)
			entries = append(entries, PaletteEntry{
				Grade: band.Grade,
				Hex:   out.Hex(),
				// Round-tripped from the synthesized colour; may differ
				// from the band target by up to the bisection tolerance.
				Luminance: out.Luminance(),
			})
		}
	}

	return GradedPalette{Entries: entries, Input: info}
}

// Len returns the number of entries in the palette.
func (p GradedPalette) Len() int {
	return len(p.Entries)
}

// Entry returns the palette entry for a grade.
func (p GradedPalette) Entry(grade int) (PaletteEntry, bool) {
	for _, e := range p.Entries {
		if e.Grade == grade {
			return e, true
		}
	}
	return PaletteEntry{}, false
}

// ToJSON converts the palette to indented JSON.
func (p GradedPalette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// Message returns the user-facing classification summary for an inexact
// match, or "" for an exact one.
func (info GradeInfo) Message() string {
	if info.Exact {
		return ""
	}
	if info.Lower != nil && info.Higher != nil {
		return fmt.Sprintf("Your color falls between grades %d and %d. Using closest grade %d.",
			*info.Lower, *info.Higher, info.Grade)
	}
	return fmt.Sprintf("Your color doesn't match any exact grade. Using closest grade %d.", info.Grade)
}
