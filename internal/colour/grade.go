package colour

import "math"

// GradeRange is one band of the grade scale: a grade label and the relative
// luminance range a colour must fall in to carry that grade.
type GradeRange struct {
	Grade int     `json:"grade"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// gradeTable is the fixed grade scale, ascending by grade and therefore
// descending by luminance. Grades 0 and 100 are single-point bands: pure
// white and pure black. The ordering is relied on by neighbouringGrades.
var gradeTable = []GradeRange{
	{Grade: 0, Min: 1.0, Max: 1.0},
	{Grade: 5, Min: 0.85, Max: 0.93},
	{Grade: 10, Min: 0.75, Max: 0.82},
	{Grade: 20, Min: 0.5, Max: 0.65},
	{Grade: 30, Min: 0.35, Max: 0.45},
	{Grade: 40, Min: 0.225, Max: 0.30},
	{Grade: 50, Min: 0.175, Max: 0.183},
	{Grade: 60, Min: 0.10, Max: 0.125},
	{Grade: 70, Min: 0.05, Max: 0.07},
	{Grade: 80, Min: 0.02, Max: 0.04},
	{Grade: 90, Min: 0.005, Max: 0.015},
	{Grade: 100, Min: 0.0, Max: 0.0},
}

// Grades returns a copy of the grade scale in ascending grade order.
func Grades() []GradeRange {
	out := make([]GradeRange, len(gradeTable))
	copy(out, gradeTable)
	return out
}

// Band returns the luminance band for a grade.
func Band(grade int) (GradeRange, bool) {
	for _, band := range gradeTable {
		if band.Grade == grade {
			return band, true
		}
	}
	return GradeRange{}, false
}

// midpoint returns the centre of the band's luminance range.
func (g GradeRange) midpoint() float64 {
	return (g.Min + g.Max) / 2
}

// targetLuminance returns the luminance a synthesized colour should aim for
// within the band. Light bands target nearer the dark end of their range so
// adjacent light grades stay visually distinct.
func (g GradeRange) targetLuminance() float64 {
	switch {
	case g.Grade <= 20:
		return g.Min + 0.25*(g.Max-g.Min)
	case g.Grade <= 40:
		return g.Min + 0.4*(g.Max-g.Min)
	}
	return g.midpoint()
}

// GradeInfo is the result of classifying a luminance against the grade
// scale. Exact means the luminance fell inside a band; otherwise Grade is
// the closest band and Lower/Higher name the bands the luminance sits
// between (Higher is nil below the floor of the darkest band).
type GradeInfo struct {
	Grade  int  `json:"grade"`
	Exact  bool `json:"exact"`
	Lower  *int `json:"lower_grade,omitempty"`
	Higher *int `json:"higher_grade,omitempty"`
}

// ClassifyLuminance maps a relative luminance onto the grade scale. A
// luminance inside a band (inclusive) is an exact match. Anything else gets
// the band with the numerically closest midpoint; on a tie the first band in
// table order wins, which keeps boundary rounding deterministic.
func ClassifyLuminance(lum float64) GradeInfo {
	for _, band := range gradeTable {
		if lum >= band.Min && lum <= band.Max {
			return GradeInfo{Grade: band.Grade, Exact: true}
		}
	}

	closest := gradeTable[0]
	closestDiff := math.Abs(lum - closest.midpoint())
	for _, band := range gradeTable[1:] {
		diff := math.Abs(lum - band.midpoint())
		if diff < closestDiff {
			closest = band
			closestDiff = diff
		}
	}

	info := GradeInfo{Grade: closest.Grade}
	info.Lower, info.Higher = neighbouringGrades(lum)
	return info
}

// neighbouringGrades finds the two bands an off-scale luminance falls
// between. The table is scanned in descending-min order (its natural order)
// for the first band the luminance sits above; that band is the lower
// (darker) neighbour and the previous band the higher one. A luminance below
// every band floor has only the darkest grade as its lower neighbour.
func neighbouringGrades(lum float64) (lower, higher *int) {
	for i, band := range gradeTable {
		if lum > band.Min {
			g := band.Grade
			lower = &g
			if i > 0 {
				h := gradeTable[i-1].Grade
				higher = &h
			}
			return lower, higher
		}
	}

	g := gradeTable[len(gradeTable)-1].Grade
	return &g, nil
}
