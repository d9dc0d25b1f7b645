package colour

import (
	"github.com/lucasb-eyer/go-colorful"
)

// TerminalPaletteSize is the number of entries in the fixed terminal
// palette.
const TerminalPaletteSize = 16

// TerminalColour is one entry of the fixed 16-colour terminal palette.
// Position is the conventional terminal colour number (0-15) and fixes
// the output order; it never changes at runtime.
type TerminalColour struct {
	Position int
	Name     string
	RGB      RGB
	IsBright bool
}

// The canonical 16-colour terminal table: positions 0-7 are the normal
// tier, 8-15 the bright tier. Actual terminals may render these slightly
// differently, but the reference values are constant across runs.
var terminalPalette = [TerminalPaletteSize]TerminalColour{
	{Position: 0, Name: "black", RGB: RGB{R: 0x00, G: 0x00, B: 0x00}},
	{Position: 1, Name: "red", RGB: RGB{R: 0xaa, G: 0x00, B: 0x00}},
	{Position: 2, Name: "green", RGB: RGB{R: 0x00, G: 0xaa, B: 0x00}},
	{Position: 3, Name: "yellow", RGB: RGB{R: 0x80, G: 0x80, B: 0x00}},
	{Position: 4, Name: "blue", RGB: RGB{R: 0x00, G: 0x00, B: 0xaa}},
	{Position: 5, Name: "magenta", RGB: RGB{R: 0xaa, G: 0x00, B: 0xaa}},
	{Position: 6, Name: "cyan", RGB: RGB{R: 0x00, G: 0xaa, B: 0xaa}},
	{Position: 7, Name: "white", RGB: RGB{R: 0xaa, G: 0xaa, B: 0xaa}},
	{Position: 8, Name: "brightblack", RGB: RGB{R: 0x55, G: 0x55, B: 0x55}, IsBright: true},
	{Position: 9, Name: "brightred", RGB: RGB{R: 0xff, G: 0x00, B: 0x00}, IsBright: true},
	{Position: 10, Name: "brightgreen", RGB: RGB{R: 0x00, G: 0xff, B: 0x00}, IsBright: true},
	{Position: 11, Name: "brightyellow", RGB: RGB{R: 0xff, G: 0xff, B: 0x00}, IsBright: true},
	{Position: 12, Name: "brightblue", RGB: RGB{R: 0x00, G: 0x00, B: 0xff}, IsBright: true},
	{Position: 13, Name: "brightmagenta", RGB: RGB{R: 0xff, G: 0x00, B: 0xff}, IsBright: true},
	{Position: 14, Name: "brightcyan", RGB: RGB{R: 0x00, G: 0xff, B: 0xff}, IsBright: true},
	{Position: 15, Name: "brightwhite", RGB: RGB{R: 0xff, G: 0xff, B: 0xff}, IsBright: true},
}

// TerminalPalette returns the fixed reference table in position order.
func TerminalPalette() []TerminalColour {
	out := make([]TerminalColour, TerminalPaletteSize)
	copy(out, terminalPalette[:])
	return out
}

// NearestTerminalColour returns the table entry closest to c by
// perceptual (Lab) distance. With maxBrightness set a normal-tier match
// is promoted to its bright counterpart, which is at least as luminous,
// so the match can only get brighter.
func NearestTerminalColour(c RGB, maxBrightness bool) TerminalColour {
	best := terminalPalette[0]
	bestDist := labDistance(c, best.RGB)
	for _, tc := range terminalPalette[1:] {
		if dist := labDistance(c, tc.RGB); dist < bestDist {
			best = tc
			bestDist = dist
		}
	}

	if maxBrightness && !best.IsBright {
		return terminalPalette[best.Position+8]
	}
	return best
}

// SnapToTerminal maps each colour onto its nearest table entry and
// returns the matched entries' colours in table position order, so
// repeated runs display colours in the conventional terminal numbering
// rather than the clustering output order.
func SnapToTerminal(colours []RGB, maxBrightness bool) []RGB {
	var hit [TerminalPaletteSize]bool
	for _, c := range colours {
		hit[NearestTerminalColour(c, maxBrightness).Position] = true
	}

	out := make([]RGB, 0, TerminalPaletteSize)
	for _, tc := range terminalPalette {
		if hit[tc.Position] {
			out = append(out, tc.RGB)
		}
	}
	return out
}

// labDistance measures perceptual distance between two display colours.
func labDistance(a, b RGB) float64 {
	ca := colorful.Color{R: float64(a.R) / 255.0, G: float64(a.G) / 255.0, B: float64(a.B) / 255.0}
	cb := colorful.Color{R: float64(b.R) / 255.0, G: float64(b.G) / 255.0, B: float64(b.B) / 255.0}
	return ca.DistanceLab(cb)
}
