package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// colourEnabled reports whether ANSI colour output should be used on w,
// combining the configured colour mode with terminal detection. Writers that
// are not terminals (pipes, buffers) never get colour in auto mode.
func colourEnabled(w io.Writer) bool {
	switch cfg.Output.Colour {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
