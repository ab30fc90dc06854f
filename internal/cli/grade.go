package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jmylchreest/shade/internal/colour"
	"github.com/spf13/cobra"
)

// Grade command flags
var gradeFormat string

// gradeCmd represents the grade command
var gradeCmd = &cobra.Command{
	Use:   "grade <colour>",
	Short: "Classify a colour against the grade scale",
	Long: `Classify a single colour on the grade-0-to-100 luminance scale.

A colour whose luminance falls inside a grade's band is an exact match;
anything else reports the closest grade and the two grades it falls between.

Examples:
  # Classify a colour
  shade grade "#7BC4E8"

  # Output as JSON
  shade grade --format json "#7BC4E8"`,
	Args: cobra.ExactArgs(1),
	RunE: runGrade,
}

func init() {
	// Define flags for the grade command
	gradeCmd.Flags().StringVarP(&gradeFormat, "format", "f", "text", "output format (text, json)")
}

// runGrade executes the grade command.
func runGrade(cmd *cobra.Command, args []string) error {
	hex := colour.PadPartialHex(colour.NormalizeHex(args[0]))

	rgb, ok := colour.ParseHex(hex)
	if !ok {
		return fmt.Errorf("%q is not a colour: need a full hex value like #1A2B3C", args[0])
	}

	lum := rgb.Luminance()
	info := colour.ClassifyLuminance(lum)
	logger.Debug("classified colour", "colour", rgb.Hex(), "luminance", lum, "grade", info.Grade, "exact", info.Exact)

	out := cmd.OutOrStdout()
	switch gradeFormat {
	case "json":
		data, err := json.MarshalIndent(struct {
			Hex       string  `json:"hex"`
			Luminance float64 `json:"luminance"`
			colour.GradeInfo
		}{rgb.Hex(), lum, info}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	case "text":
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", gradeFormat)
	}

	match := "closest match"
	if info.Exact {
		match = "exact match"
	}

	fmt.Fprintf(out, "Colour:    %s\n", rgb.Hex())
	fmt.Fprintf(out, "Luminance: %.3f\n", lum)
	fmt.Fprintf(out, "Grade:     %d (%s)\n", info.Grade, match)
	if msg := info.Message(); msg != "" {
		fmt.Fprintln(out, msg)
	}

	return nil
}

// gradesCmd represents the grades command
var gradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "Print the grade scale",
	Long:  `Print every grade with its luminance band. The scale runs from grade 0 (pure white) to grade 100 (pure black).`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		table := NewTable([]string{"Grade", "Min luminance", "Max luminance"})
		for _, band := range colour.Grades() {
			table.AddRow([]string{
				strconv.Itoa(band.Grade),
				fmt.Sprintf("%.3f", band.Min),
				fmt.Sprintf("%.3f", band.Max),
			})
		}
		fmt.Fprint(cmd.OutOrStdout(), table.Render())
	},
}
