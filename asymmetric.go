package replay

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Asymmetric down-weights negative surprises: a tdError below zero is
// multiplied by penalty before the usual priority transform, so failures are
// replayed less than successes of equal magnitude. Everything else delegates
// to the wrapped Prioritized policy.
type Asymmetric struct {
	*Prioritized
	penalty float32
}

// NewAsymmetric returns an Asymmetric policy. penalty must lie strictly
// inside (0, 1).
func NewAsymmetric(bufferSize int, alpha, epsilon, penalty float32, rng *rand.Rand) (*Asymmetric, error) {
	if penalty <= 0 || penalty >= 1 {
		return nil, errors.Wrapf(ErrInvalidHyperparameter, "penalty %v, must be in (0, 1)", penalty)
	}

	p, err := NewPrioritized(bufferSize, alpha, epsilon, rng)
	if err != nil {
		return nil, err
	}

	return &Asymmetric{Prioritized: p, penalty: penalty}, nil
}

func (a *Asymmetric) String() string {
	return "asymmetric-prioritized"
}

func (a *Asymmetric) dampen(tdError float32) float32 {
	if tdError < 0 {
		return a.penalty * tdError
	}

	return tdError
}

// Store implements Policy.
func (a *Asymmetric) Store(t Transition, tdError float32) error {
	return a.Prioritized.Store(t, a.dampen(tdError))
}

// UpdatePriority implements Policy.
func (a *Asymmetric) UpdatePriority(idx int, tdError float32) error {
	return a.Prioritized.UpdatePriority(idx, a.dampen(tdError))
}
