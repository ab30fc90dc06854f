package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmylchreest/shade/internal/clipboard"
	"github.com/jmylchreest/shade/internal/colour"
	"github.com/jmylchreest/shade/internal/image"
	"github.com/spf13/cobra"
)

var (
	// Palette command flags
	paletteFormat string
	paletteImage  string
	paletteCopy   int
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette [colour]",
	Short: "Generate the 12-grade palette for a colour",
	Long: `Generate the full grade-0-to-100 palette seeded by a colour.

The seed's hue and saturation character carries through every grade; its
luminance decides which grade the seed itself belongs to. If the seed lands
exactly in a grade's luminance band, that grade shows your colour verbatim.

Partial input is accepted: anything at least "#RGB" long is padded with
trailing zeros before generation, so a palette can be previewed while a
colour is still being typed.

Examples:
  # Palette for a hex colour
  shade palette "#7BC4E8"

  # Partial input is padded once it reaches #RGB length
  shade palette "#7BC"

  # Seed the palette from the dominant colour of an image
  shade palette --image wallpaper.png

  # Output as JSON
  shade palette --format json "#7BC4E8"

  # Plain hex values, one per line
  shade palette --format hex "#7BC4E8"

  # Copy the grade 70 colour to the clipboard
  shade palette --copy 70 "#7BC4E8"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPalette,
}

func init() {
	// Define flags for the palette command
	paletteCmd.Flags().StringVarP(&paletteFormat, "format", "f", "", "output format (table, json, hex)")
	paletteCmd.Flags().StringVarP(&paletteImage, "image", "i", "", "seed from the dominant colour of an image file")
	paletteCmd.Flags().IntVar(&paletteCopy, "copy", -1, "copy the given grade's hex value to the clipboard")
}

// runPalette executes the palette command.
func runPalette(cmd *cobra.Command, args []string) error {
	seed, err := resolveSeed(args)
	if err != nil {
		return err
	}

	logger.Debug("generating palette", "seed", seed)
	result := colour.BuildPalette(seed)
	if result.Len() == 0 {
		return fmt.Errorf("%q is not a colour: need a full hex value like #1A2B3C", seed)
	}

	format := paletteFormat
	if format == "" {
		format = cfg.Output.Format
	}

	out := cmd.OutOrStdout()
	switch format {
	case "table":
		renderPaletteTable(out, result)
	case "hex":
		for _, e := range result.Entries {
			fmt.Fprintln(out, e.Hex)
		}
	case "json":
		data, err := result.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to encode palette: %w", err)
		}
		fmt.Fprintln(out, string(data))
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, json, hex)", format)
	}

	// The classification warning goes to stderr so piped output stays clean;
	// JSON already carries the full classification.
	if msg := result.Input.Message(); msg != "" && format != "json" {
		fmt.Fprintln(cmd.ErrOrStderr(), msg)
	}

	if paletteCopy >= 0 {
		copyEntry(cmd, result, paletteCopy)
	}

	return nil
}

// resolveSeed turns the command input into a hex seed colour: either the
// dominant colour of --image, or the (possibly partial) hex argument.
func resolveSeed(args []string) (string, error) {
	if paletteImage != "" {
		loader := image.NewFileLoader()
		img, err := loader.Load(paletteImage)
		if err != nil {
			return "", fmt.Errorf("failed to load image: %w", err)
		}

		rgb, err := image.Dominant(img)
		if err != nil {
			return "", fmt.Errorf("failed to pick a seed colour: %w", err)
		}
		logger.Debug("using dominant image colour", "image", paletteImage, "colour", rgb.Hex())
		return rgb.Hex(), nil
	}

	if len(args) == 0 {
		return "", fmt.Errorf("provide a colour or --image")
	}
	return colour.PadPartialHex(colour.NormalizeHex(args[0])), nil
}

// renderPaletteTable writes the palette as an aligned table with a swatch
// column when colour output is enabled.
func renderPaletteTable(w io.Writer, result colour.GradedPalette) {
	useColour := colourEnabled(w)
	width := cfg.Output.SwatchWidth

	fmt.Fprintf(w, "%-5s  %-*s  %-7s  %9s  %s\n", "Grade", width, "", "Hex", "Luminance", "  Target range")
	for _, e := range result.Entries {
		swatch := strings.Repeat(" ", width)
		if useColour {
			if rgb, ok := colour.ParseHex(e.Hex); ok {
				swatch = colour.Swatch(rgb, width)
			}
		}

		band, _ := colour.Band(e.Grade)
		marker := ""
		if e.IsInput {
			marker = "  <- your colour"
		}

		fmt.Fprintf(w, "%-5d  %s  %-7s  %9.3f  %.3f - %.3f%s\n",
			e.Grade, swatch, e.Hex, e.Luminance, band.Min, band.Max, marker)
	}
}

// copyEntry copies one grade's hex value to the clipboard and reports the
// outcome. Clipboard failure is a user message, never a command error.
func copyEntry(cmd *cobra.Command, result colour.GradedPalette, grade int) {
	entry, ok := result.Entry(grade)
	if !ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "No such grade: %d (valid: 0, 5, 10, 20, ..., 100)\n", grade)
		return
	}

	if err := clipboard.Copy(entry.Hex); err != nil {
		logger.Debug("clipboard copy failed", "error", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Could not copy to clipboard. Copy manually: %s\n", entry.Hex)
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Copied %s to clipboard.\n", entry.Hex)
}
