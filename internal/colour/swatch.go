package colour

import (
	"fmt"
)

// ANSI escape codes for truecolor swatch rendering.
const (
	ansiReset    = "\x1b[0m"
	ansiFgPrefix = "\x1b[38;2;"
	ansiSuffix   = "m"

	// U+2587 LOWER SEVEN EIGHTHS BLOCK, drawn in the swatch's own colour.
	swatchBlock = "▇"
)

// RenderSwatches formats colours as output lines, one per distinct
// colour. Colours that collapse onto the same hex string are emitted
// once, keeping the first occurrence, so requesting more clusters than an
// image has colours never produces duplicate-looking lines.
//
// In the default mode each line carries a coloured block and the hex code
// wrapped in a matching foreground escape sequence with a trailing reset;
// plain mode emits the hex code only.
func RenderSwatches(colours []RGB, plain bool) []string {
	lines := make([]string, 0, len(colours))
	seen := make(map[string]bool, len(colours))
	for _, c := range colours {
		hex := c.Hex()
		if seen[hex] {
			continue
		}
		seen[hex] = true

		if plain {
			lines = append(lines, hex)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s%d;%d;%d%s%s %s%s",
			ansiFgPrefix, c.R, c.G, c.B, ansiSuffix, swatchBlock, hex, ansiReset))
	}
	return lines
}
