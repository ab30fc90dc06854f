// Package cli provides the command-line interface for Shade.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/shade/internal/config"
	"github.com/jmylchreest/shade/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Global flags
	flagVerbose bool
	flagQuiet   bool
	flagColour  string

	// cfg holds user preferences, loaded before any command runs.
	cfg = config.Default()

	// logger is the shared diagnostic logger, configured from the
	// --verbose/--quiet flags in setup.
	logger = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "shade",
		Short: "Perceptually graded colour palettes and WCAG contrast checks",
		Long: `Shade builds perceptually graded colour palettes and checks WCAG contrast
compliance.

Give it a colour and it derives the full 12-grade scale from white (grade 0)
to black (grade 100), preserving the hue and saturation character of your
colour at every step. Any pair of colours can be checked against the WCAG 2.2
contrast thresholds for text and non-text content.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
)

// NewRootCmd returns the fully wired root command.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&flagColour, "colour", "", "colour output (auto, always, never)")
	rootCmd.PersistentFlags().SetNormalizeFunc(normalizeFlags)

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(gradesCmd)
}

// normalizeFlags lets the American spelling of --colour work too.
func normalizeFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "color" {
		name = "colour"
	}
	return pflag.NormalizedName(name)
}

// setup loads the user configuration and builds the shared logger before any
// command runs. A broken config file is downgraded to a warning; the
// defaults always work.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v (using defaults)\n", err)
	}
	cfg = loaded

	if flagColour != "" {
		switch flagColour {
		case "auto", "always", "never":
			cfg.Output.Colour = flagColour
		default:
			return fmt.Errorf("invalid colour mode: %q (valid: auto, always, never)", flagColour)
		}
	}

	// fatih/color keys off this global for PASS/FAIL markers.
	switch cfg.Output.Colour {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		color.NoColor = !colourEnabled(os.Stdout)
	}

	level := hclog.Warn
	switch {
	case flagQuiet:
		level = hclog.Error
	case flagVerbose:
		level = hclog.Debug
	}
	logger = hclog.New(&hclog.LoggerOptions{
		Name:   "shade",
		Level:  level,
		Output: cmd.ErrOrStderr(),
		Color:  hclog.AutoColor,
	})

	return nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
