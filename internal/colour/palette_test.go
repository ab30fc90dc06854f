package colour

import (
	"math"
	"strings"
	"testing"
)

func TestBuildPaletteShape(t *testing.T) {
	inputs := []string{"#7BC4E8", "#FF0000", "#123456", "#FFFFFF", "#000000", "#808080"}

	for _, hex := range inputs {
		t.Run(hex, func(t *testing.T) {
			result := BuildPalette(hex)

			if result.Len() != 12 {
				t.Fatalf("palette has %d entries, want 12", result.Len())
			}

			wantGrades := []int{0, 5, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
			inputCount := 0
			for i, e := range result.Entries {
				if e.Grade != wantGrades[i] {
					t.Errorf("entry %d grade = %d, want %d", i, e.Grade, wantGrades[i])
				}
				if !IsValidHex(e.Hex) {
					t.Errorf("entry %d hex %q is not a valid colour", i, e.Hex)
				}
				if e.IsInput {
					inputCount++
				}
			}
			if inputCount > 1 {
				t.Errorf("%d entries marked as input colour, want at most 1", inputCount)
			}
		})
	}
}

func TestBuildPaletteEndpointsFixed(t *testing.T) {
	// Grade 0 and grade 100 are pinned to pure white and black whatever the
	// input colour.
	for _, hex := range []string{"#7BC4E8", "#FF00FF", "#404040"} {
		result := BuildPalette(hex)

		first := result.Entries[0]
		if first.Hex != HexWhite || first.Luminance != 1.0 {
			t.Errorf("%s grade 0 entry = %+v, want %s at luminance 1", hex, first, HexWhite)
		}

		last := result.Entries[11]
		if last.Hex != HexBlack || last.Luminance != 0.0 {
			t.Errorf("%s grade 100 entry = %+v, want %s at luminance 0", hex, last, HexBlack)
		}
	}
}

func TestBuildPaletteWhiteInput(t *testing.T) {
	result := BuildPalette("#FFFFFF")

	if !result.Input.Exact || result.Input.Grade != 0 {
		t.Fatalf("white input classified %+v, want exact grade 0", result.Input)
	}

	entry, ok := result.Entry(0)
	if !ok {
		t.Fatal("grade 0 entry missing")
	}
	if entry.Hex != HexWhite || !entry.IsInput || !closeTo(entry.Luminance, 1.0, 1e-9) {
		t.Errorf("grade 0 entry = %+v, want input-marked white at luminance 1", entry)
	}
}

func TestBuildPaletteBlackInput(t *testing.T) {
	result := BuildPalette("#000000")

	if !result.Input.Exact || result.Input.Grade != 100 {
		t.Fatalf("black input classified %+v, want exact grade 100", result.Input)
	}

	entry, ok := result.Entry(100)
	if !ok {
		t.Fatal("grade 100 entry missing")
	}
	if entry.Hex != HexBlack || !entry.IsInput || !closeTo(entry.Luminance, 0.0, 1e-9) {
		t.Errorf("grade 100 entry = %+v, want input-marked black at luminance 0", entry)
	}
}

func TestBuildPaletteExactMatchKeepsInput(t *testing.T) {
	// Synthesize a colour inside the grade 50 band, then feed it back in:
	// its own grade must carry the verbatim hex.
	seed := Synthesize(0.55, 0.5, band50Midpoint(t))
	if info := ClassifyLuminance(seed.Luminance()); !info.Exact || info.Grade != 50 {
		t.Skipf("synthesized probe %s classified %+v, not an exact grade 50", seed.Hex(), info)
	}

	result := BuildPalette(seed.Hex())
	entry, ok := result.Entry(50)
	if !ok {
		t.Fatal("grade 50 entry missing")
	}
	if !entry.IsInput {
		t.Error("grade 50 entry not marked as input colour")
	}
	if entry.Hex != seed.Hex() {
		t.Errorf("grade 50 entry hex = %s, want verbatim input %s", entry.Hex, seed.Hex())
	}
}

// band50Midpoint returns the centre of the grade 50 band.
func band50Midpoint(t *testing.T) float64 {
	t.Helper()
	band, ok := Band(50)
	if !ok {
		t.Fatal("grade 50 band missing")
	}
	return (band.Min + band.Max) / 2
}

func TestBuildPaletteLuminanceDescends(t *testing.T) {
	result := BuildPalette("#7BC4E8")

	for i := 1; i < result.Len(); i++ {
		prev := result.Entries[i-1]
		cur := result.Entries[i]
		if cur.Luminance >= prev.Luminance {
			t.Errorf("grade %d luminance %v not below grade %d luminance %v",
				cur.Grade, cur.Luminance, prev.Grade, prev.Luminance)
		}
	}
}

func TestBuildPaletteTracksBandTargets(t *testing.T) {
	// Synthesized entries must land near their band's target luminance;
	// channel quantisation allows a little drift past the bisection
	// tolerance.
	const slack = 0.01

	result := BuildPalette("#7BC4E8")
	for _, e := range result.Entries {
		if e.IsInput || e.Grade == 0 || e.Grade == 100 {
			continue
		}
		band, _ := Band(e.Grade)
		if diff := math.Abs(e.Luminance - band.targetLuminance()); diff > slack {
			t.Errorf("grade %d luminance %v is %v from target %v", e.Grade, e.Luminance, diff, band.targetLuminance())
		}
	}
}

func TestBuildPaletteInvalidInput(t *testing.T) {
	for _, hex := range []string{"", "#ABC", "nonsense", "#GGGGGG"} {
		t.Run("invalid "+hex, func(t *testing.T) {
			result := BuildPalette(hex)

			if result.Len() != 0 {
				t.Errorf("invalid input produced %d entries, want 0", result.Len())
			}
			if result.Input.Grade != 50 || result.Input.Exact {
				t.Errorf("invalid input classified %+v, want inexact default grade 50", result.Input)
			}
		})
	}
}

func TestGradedPaletteToJSON(t *testing.T) {
	result := BuildPalette("#7BC4E8")

	data, err := result.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	for _, want := range []string{`"palette"`, `"input_grade"`, `"#FFFFFF"`, `"#000000"`, `"grade": 50`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("ToJSON() output missing %s", want)
		}
	}
}
