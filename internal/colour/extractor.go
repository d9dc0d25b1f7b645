package colour

import (
	"image/color"
)

// Extractor defines the interface for colour clustering implementations.
// Given pixel samples and a requested colour count it returns up to count
// representative colours; any conformant implementation can substitute.
type Extractor interface {
	Extract(samples []color.Color, count int) (*Palette, error)
}

// Fixed clustering configuration. These constants trade accuracy for
// bounded runtime and must not change: identical samples and seed have to
// produce identical palettes across builds.
const (
	maxIterations = 20
	convergence   = 1.0
)

// NewExtractor returns the default clustering implementation seeded with
// the given value.
func NewExtractor(seed int64) Extractor {
	return &KMeansExtractor{
		maxIterations: maxIterations,
		convergence:   convergence,
		seed:          seed,
	}
}

// uniqueColours returns the distinct RGB values among the samples in
// first-seen order.
func uniqueColours(samples []color.Color) []RGB {
	unique := make([]RGB, 0, 16)
	seen := make(map[RGB]bool)
	for _, s := range samples {
		rgb := ToRGB(s)
		if !seen[rgb] {
			unique = append(unique, rgb)
			seen[rgb] = true
		}
	}
	return unique
}
