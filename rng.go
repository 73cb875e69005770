package replay

import (
	"math/rand"
	"time"
)

// defaultRNG substitutes a time-seeded source when the caller does not
// inject one. Tests inject seeded sources for reproducible draws.
func defaultRNG(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
