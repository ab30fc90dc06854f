package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/jmylchreest/shade/internal/colour"
	"github.com/spf13/cobra"
)

// Contrast command flags
var contrastFormat string

// contrastCmd represents the contrast command
var contrastCmd = &cobra.Command{
	Use:   "contrast <foreground> <background>",
	Short: "Check WCAG contrast between two colours",
	Long: `Check the WCAG 2.2 contrast ratio between a foreground and a background
colour, and whether it passes each conformance threshold:

  AA   large text   at least 3.0:1
  AA   normal text  at least 4.5:1
  AAA  large text   at least 4.5:1
  AAA  normal text  at least 7.0:1
  AA   non-text     at least 3.0:1

Invalid or incomplete colours count as ratio 1 (no contrast) rather than
failing, so every check simply reports FAIL.

Examples:
  # Black text on a white background
  shade contrast "#000000" "#FFFFFF"

  # Output as JSON
  shade contrast --format json "#333333" "#7BC4E8"`,
	Args: cobra.ExactArgs(2),
	RunE: runContrast,
}

func init() {
	// Define flags for the contrast command
	contrastCmd.Flags().StringVarP(&contrastFormat, "format", "f", "text", "output format (text, json)")
}

// runContrast executes the contrast command.
func runContrast(cmd *cobra.Command, args []string) error {
	fg := colour.PadPartialHex(colour.NormalizeHex(args[0]))
	bg := colour.PadPartialHex(colour.NormalizeHex(args[1]))

	logger.Debug("checking contrast", "foreground", fg, "background", bg)
	result := colour.CheckCompliance(fg, bg)

	out := cmd.OutOrStdout()
	switch contrastFormat {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	case "text":
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", contrastFormat)
	}

	fmt.Fprintf(out, "Contrast ratio: %.2f\n\n", result.Ratio)

	checks := []struct {
		label     string
		threshold float64
		pass      bool
	}{
		{"AA large text", colour.ThresholdAALarge, result.AALarge},
		{"AA normal text", colour.ThresholdAANormal, result.AANormal},
		{"AAA large text", colour.ThresholdAAALarge, result.AAALarge},
		{"AAA normal text", colour.ThresholdAAANormal, result.AAANormal},
		{"AA non-text", colour.ThresholdAANonText, result.AANonText},
	}
	for _, c := range checks {
		fmt.Fprintf(out, "%-16s (>= %.1f:1)  %s\n", c.label, c.threshold, passFail(c.pass))
	}

	return nil
}

// passFail renders a coloured PASS/FAIL marker.
func passFail(pass bool) string {
	if pass {
		return color.GreenString("PASS")
	}
	return color.RedString("FAIL")
}
