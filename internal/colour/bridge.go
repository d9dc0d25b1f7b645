package colour

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
)

// go-colorful keeps Lab coordinates near the unit range; clustering
// distances are calibrated against the conventional CIE scale (L in
// 0-100), so coordinates are rescaled on the way in and out.
const labScale = 100.0

// ToLab converts an 8-bit display colour into a CIE Lab coordinate for
// clustering. Alpha is ignored apart from un-premultiplying; a fully
// transparent pixel carries no recoverable colour, and ok is false.
func ToLab(c color.Color) (p clusters.Coordinates, ok bool) {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return nil, false
	}
	l, a, b := cf.Lab()
	return clusters.Coordinates{l * labScale, a * labScale, b * labScale}, true
}

// LabToRGB converts a Lab coordinate back to display RGB, clamped to the
// sRGB gamut and rounded to 8-bit channels.
func LabToRGB(p clusters.Coordinates) RGB {
	cf := colorful.Lab(p[0]/labScale, p[1]/labScale, p[2]/labScale).Clamped()
	r, g, b := cf.RGB255()
	return RGB{R: r, G: g, B: b}
}
