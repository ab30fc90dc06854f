// Package clipboard copies text to the system clipboard with a two-tier
// fallback: the native clipboard API first, then the first known helper
// command found on PATH. Failure of both tiers is reported to the caller so
// the user can be told to copy manually; it is never fatal.
package clipboard

import (
	"fmt"
	"os/exec"
	"strings"

	atotto "github.com/atotto/clipboard"
)

// helperCommands are tried in order when the native API is unavailable,
// covering Wayland, X11 and macOS.
var helperCommands = [][]string{
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
	{"xsel", "--clipboard", "--input"},
	{"pbcopy"},
}

// Copy writes text to the system clipboard. An error means both the native
// API and every helper command failed.
func Copy(text string) error {
	if err := atotto.WriteAll(text); err == nil {
		return nil
	}
	return copyViaHelper(text)
}

// copyViaHelper pipes text into the first available helper command.
func copyViaHelper(text string) error {
	for _, argv := range helperCommands {
		path, err := exec.LookPath(argv[0])
		if err != nil {
			continue
		}

		cmd := exec.Command(path, argv[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return fmt.Errorf("no clipboard mechanism available")
}
