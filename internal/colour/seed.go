package colour

import (
	"math/rand"
	"time"
)

// SeedMode selects how the clustering seed is chosen for a run.
type SeedMode string

const (
	// SeedModeManual uses the caller-supplied seed verbatim, making
	// results reproducible for identical input samples.
	SeedModeManual SeedMode = "manual"

	// SeedModeRandom draws a fresh non-deterministic seed before each
	// invocation, so repeated runs differ.
	SeedModeRandom SeedMode = "random"
)

// ChooseSeed resolves the effective clustering seed for a run.
func ChooseSeed(mode SeedMode, manual int64) int64 {
	if mode == SeedModeRandom {
		return RandomSeed()
	}
	return manual
}

// RandomSeed generates a non-deterministic seed.
func RandomSeed() int64 {
	// #nosec G404 -- seed generation is intentionally non-deterministic
	return time.Now().UnixNano() + int64(rand.Intn(1000000))
}
