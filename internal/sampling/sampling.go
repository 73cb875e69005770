// Package sampling implements cumulative-mass inversion over a probability
// vector.
package sampling

import (
	"math/rand"
)

const eps = 1e-3

// Inverse draws an index from the probability vector pv: it returns the
// number of cumulative-mass prefixes strictly below a uniform draw, i.e. the
// first index whose cumulative mass exceeds it. pv must be normalized;
// callers establish that before the draw.
func Inverse(rng *rand.Rand, pv []float32) int {
	x := rng.Float32()
	var cumProb float32
	for i, p := range pv {
		cumProb += p
		if cumProb > x {
			return i
		}
	}

	if cumProb < 1.0-eps { // Leave room for floating point error.
		panic("probability distribution does not sum to 1!")
	}

	return len(pv) - 1
}
