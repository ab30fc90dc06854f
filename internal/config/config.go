// Package config loads the optional user configuration file. All settings
// have working defaults; a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user preferences for shade.
type Config struct {
	Output OutputConfig `toml:"output"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	// Format is the default output format: "table", "json" or "hex".
	Format string `toml:"format"`
	// SwatchWidth is the width in characters of colour preview blocks.
	SwatchWidth int `toml:"swatch_width"`
	// Colour controls ANSI output: "auto", "always" or "never".
	Colour string `toml:"colour"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output: OutputConfig{
			Format:      "table",
			SwatchWidth: 8,
			Colour:      "auto",
		},
	}
}

// Path returns the location of the user configuration file,
// $XDG_CONFIG_HOME/shade/config.toml or the platform equivalent.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "shade", "config.toml"), nil
}

// Load reads the user configuration file, falling back to defaults when the
// file does not exist.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads a configuration file from an explicit path. Settings not
// present in the file keep their defaults.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every setting has a usable value.
func (c Config) Validate() error {
	switch c.Output.Format {
	case "table", "json", "hex":
	default:
		return fmt.Errorf("invalid output format: %q (valid: table, json, hex)", c.Output.Format)
	}

	if c.Output.SwatchWidth < 1 || c.Output.SwatchWidth > 64 {
		return fmt.Errorf("swatch width must be between 1 and 64, got %d", c.Output.SwatchWidth)
	}

	switch c.Output.Colour {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid colour mode: %q (valid: auto, always, never)", c.Output.Colour)
	}

	return nil
}
