package colour

import "math"

// WCAG 2.2 contrast ratio thresholds.
// https://www.w3.org/TR/WCAG22/#contrast-minimum.
const (
	ThresholdAALarge   = 3.0
	ThresholdAANormal  = 4.5
	ThresholdAAALarge  = 4.5
	ThresholdAAANormal = 7.0
	ThresholdAANonText = 3.0
)

// Luminance calculates the relative luminance of the colour according to
// WCAG. Returns a value between 0 (black) and 1 (white).
// https://www.w3.org/TR/WCAG22/#dfn-relative-luminance.
func (rgb RGB) Luminance() float64 {
	r := srgbToLinear(float64(rgb.R) / 255.0)
	g := srgbToLinear(float64(rgb.G) / 255.0)
	b := srgbToLinear(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// srgbToLinear converts a gamma-encoded sRGB channel to linear light.
func srgbToLinear(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the WCAG contrast ratio between two hex colours.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs
// white). Invalid input degrades to 1, the "no contrast" value, rather than
// failing; partially typed colours simply show as non-compliant.
func ContrastRatio(hexA, hexB string) float64 {
	a, okA := ParseHex(hexA)
	b, okB := ParseHex(hexB)
	if !okA || !okB {
		return 1
	}

	l1 := a.Luminance()
	l2 := b.Luminance()

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// Compliance holds a contrast ratio and its pass/fail result against each of
// the fixed WCAG 2.2 thresholds.
type Compliance struct {
	Ratio     float64 `json:"ratio"`
	AALarge   bool    `json:"aa_large"`
	AANormal  bool    `json:"aa_normal"`
	AAALarge  bool    `json:"aaa_large"`
	AAANormal bool    `json:"aaa_normal"`
	AANonText bool    `json:"aa_non_text"`
}

// CheckCompliance evaluates the contrast between a foreground and background
// colour against every WCAG 2.2 threshold.
func CheckCompliance(fg, bg string) Compliance {
	ratio := ContrastRatio(fg, bg)
	return Compliance{
		Ratio:     ratio,
		AALarge:   ratio >= ThresholdAALarge,
		AANormal:  ratio >= ThresholdAANormal,
		AAALarge:  ratio >= ThresholdAAALarge,
		AAANormal: ratio >= ThresholdAAANormal,
		AANonText: ratio >= ThresholdAANonText,
	}
}
