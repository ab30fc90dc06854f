package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for truecolour terminal output.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Swatch returns an ANSI-coloured preview block for a colour. Width is the
// block width in characters; a solid block is drawn with the background
// colour and spaces.
func Swatch(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithText returns a swatch with centred text overlaid. The text is
// black or white, whichever contrasts better with the swatch colour.
func SwatchWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	var fg RGB
	if c.Luminance() <= 0.5 {
		fg = RGB{R: 255, G: 255, B: 255}
	}

	if len(text) > width {
		text = text[:width]
	} else if len(text) < width {
		left := (width - len(text)) / 2
		text = strings.Repeat(" ", left) + text + strings.Repeat(" ", width-len(text)-left)
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix) + text + ansiReset
}

// ColourString returns text in the given foreground colour.
func ColourString(c RGB, text string) string {
	fg := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
	return fg + text + ansiReset
}
