package utils

import (
	"math/rand"
	"time"
)

// NewSeededRand creates a random source. A zero seed derives one from
// the current time, any other value yields a reproducible sequence.
//
//nolint:gosec // deterministic randomness is the point
func NewSeededRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
