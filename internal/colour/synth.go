package colour

import "math"

const (
	// maxIterations bounds the lightness bisection. 30 halvings of [0,1]
	// resolve well past 8-bit channel precision.
	maxIterations = 30

	// minSeedSaturation keeps near-grey seeds from collapsing to pure grey
	// across the whole palette.
	minSeedSaturation = 0.08
)

// adjustSaturation derives the saturation a synthesized colour should use
// for a grade. Grades 0 and 100 are pure white and black. For the rest, a
// blended smoothing curve over the grade position scales and caps the seed
// saturation so light grades come out pastel and dark grades keep more of
// the seed's character, without saturation jumps between adjacent grades.
func adjustSaturation(saturation float64, grade int) float64 {
	if grade == 0 || grade == 100 {
		return 0
	}

	base := math.Max(saturation, minSeedSaturation)

	pos := float64(grade) / 100.0
	blend := 0.7*math.Pow(pos, 1.6) + 0.3*math.Pow(pos, 3)

	multiplier := 0.45 + blend*(0.80-0.45)
	limit := 0.4 + blend*(0.7-0.4)

	return math.Min(base*multiplier, limit)
}

// gradeTolerance returns the bisection convergence tolerance for a grade.
// Light bands are wide, so a looser tolerance converges faster there with
// no visible difference.
func gradeTolerance(grade int) float64 {
	if grade <= 20 {
		return 0.002
	}
	return 0.001
}

// seedLightness picks the initial bisection midpoint from the target
// luminance bracket. Lightness and luminance are loosely correlated, so
// starting near the expected answer saves several iterations.
func seedLightness(target float64) float64 {
	switch {
	case target > 0.9:
		return 0.95
	case target > 0.7:
		return 0.85
	case target > 0.3:
		return 0.6
	case target > 0.1:
		return 0.4
	}
	return 0.2
}

// Synthesize produces a colour with the given hue and saturation whose
// relative luminance is as close as possible to target, by bisecting the
// HSL lightness channel.
func Synthesize(hue, saturation, target float64) RGB {
	return bisectLightness(hue, saturation, target, gradeTolerance(50))
}

// SynthesizeGrade produces the colour for one grade of a palette: the seed
// saturation is reshaped with adjustSaturation before the lightness search,
// and the convergence tolerance follows the grade's band width.
func SynthesizeGrade(hue, saturation, target float64, grade int) RGB {
	s := adjustSaturation(saturation, grade)
	return bisectLightness(hue, s, target, gradeTolerance(grade))
}

// bisectLightness binary-searches HSL lightness for a colour matching the
// target luminance. Luminance is monotonic in lightness for fixed hue and
// saturation, which makes plain bisection sound. If the search does not
// converge within the iteration budget the colour at the final midpoint is
// returned as a best effort, never an error.
func bisectLightness(hue, saturation, target, tolerance float64) RGB {
	low, high := 0.0, 1.0
	mid := seedLightness(target)

	for i := 0; i < maxIterations; i++ {
		rgb := HSL{H: hue, S: saturation, L: mid}.RGB()
		lum := rgb.Luminance()

		if math.Abs(lum-target) < tolerance {
			return rgb
		}

		if lum > target {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}

	return HSL{H: hue, S: saturation, L: mid}.RGB()
}
