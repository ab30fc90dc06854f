// Shade - graded colour palettes for accessible design
//
// Shade derives perceptually graded colour palettes from a seed colour and
// checks colour pairs against the WCAG contrast thresholds.
package main

import (
	"os"

	"github.com/jmylchreest/shade/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
