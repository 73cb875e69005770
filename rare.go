package replay

import (
	"math/rand"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/kang-jamie/RL-rare-experience-replay/internal/f32"
	"github.com/kang-jamie/RL-rare-experience-replay/internal/sampling"
)

// Rare boosts transitions whose (state, action) pair has been visited
// infrequently. A visitation table counts every Store for a pair over the
// lifetime of the policy; counts persist when buffer slots are overwritten.
// At sample time each slot's TD-priority is multiplied by 1/visits before
// normalizing, so a pair visited once gets ten times the mass of an
// equal-priority pair visited ten times.
//
// Precondition: every (state, action) pair present in the buffer has at
// least one recorded visit. Store guarantees this by incrementing the count
// for the pair it writes; a table populated externally with zeros violates
// it and Sample reports ErrDegenerateDistribution.
type Rare struct {
	*Prioritized

	// visits is the lifetime Store count per (state, action).
	visits *mat.Dense
}

// NewRare returns a Rare policy over a (numState x numAction) visitation
// table.
func NewRare(bufferSize int, alpha, epsilon float32, numState, numAction int, rng *rand.Rand) (*Rare, error) {
	p, err := NewPrioritized(bufferSize, alpha, epsilon, rng)
	if err != nil {
		return nil, err
	}

	if numState <= 0 || numAction <= 0 {
		return nil, errors.Wrapf(ErrInvalidHyperparameter, "occurrence table %dx%d, dimensions must be positive", numState, numAction)
	}

	return &Rare{
		Prioritized: p,
		visits:      mat.NewDense(numState, numAction, nil),
	}, nil
}

func (r *Rare) String() string {
	return "rare-prioritized"
}

// Store implements Policy, additionally counting the visit to the pair.
func (r *Rare) Store(t Transition, tdError float32) error {
	if err := checkPair(r.visits, t.State, t.Action); err != nil {
		return err
	}

	if err := r.Prioritized.Store(t, tdError); err != nil {
		return err
	}

	r.visits.Set(t.State, t.Action, r.visits.At(t.State, t.Action)+1)
	return nil
}

// Sample implements Policy, drawing from the rarity-adjusted distribution.
func (r *Rare) Sample() (int, error) {
	if r.Len() == 0 {
		return 0, ErrEmptyBuffer
	}

	rarity := make([]float32, r.Len())
	for i, t := range r.transitions {
		n := r.visits.At(t.State, t.Action)
		if n <= 0 {
			return 0, errors.Wrapf(ErrDegenerateDistribution, "no recorded visits for stored pair (%d, %d)", t.State, t.Action)
		}

		rarity[i] = 1.0 / float32(n)
	}

	adjusted := make([]float32, len(rarity))
	f32.MulTo(adjusted, r.priorities, rarity)

	// Normalize over the adjusted vector, not the raw priorities. The cached
	// priority sum is not usable here.
	total := f32.Sum(adjusted)
	if total <= 0 {
		return 0, errors.Wrapf(ErrDegenerateDistribution, "rarity-adjusted mass %v", total)
	}

	pmf := make([]float32, len(adjusted))
	f32.ScalUnitaryTo(pmf, 1.0/total, adjusted)
	return sampling.Inverse(r.rng, pmf), nil
}

// checkPair validates that (state, action) addresses the occurrence table.
func checkPair(table *mat.Dense, state, action int) error {
	numState, numAction := table.Dims()
	if state < 0 || state >= numState || action < 0 || action >= numAction {
		return errors.Wrapf(ErrInvalidHyperparameter, "pair (%d, %d) outside %dx%d occurrence table", state, action, numState, numAction)
	}

	return nil
}
