package replay

import (
	"math/rand"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/kang-jamie/RL-rare-experience-replay/internal/f32"
	"github.com/kang-jamie/RL-rare-experience-replay/internal/sampling"
)

// Threshold caps how often any (state, action) pair can be priority-sampled.
// A quota table counts samples per pair; slots whose pair has reached the
// threshold are masked out of the distribution, steering draws toward
// under-sampled pairs. When every stored pair is at quota the policy falls
// back to the unmasked priority distribution rather than failing.
type Threshold struct {
	*Prioritized
	threshold int

	// sampled counts how many times each pair has been drawn.
	sampled *mat.Dense
}

// NewThreshold returns a Threshold policy over a (numState x numAction)
// quota table.
func NewThreshold(bufferSize int, alpha, epsilon float32, numState, numAction, threshold int, rng *rand.Rand) (*Threshold, error) {
	p, err := NewPrioritized(bufferSize, alpha, epsilon, rng)
	if err != nil {
		return nil, err
	}

	if numState <= 0 || numAction <= 0 {
		return nil, errors.Wrapf(ErrInvalidHyperparameter, "occurrence table %dx%d, dimensions must be positive", numState, numAction)
	}

	return &Threshold{
		Prioritized: p,
		threshold:   threshold,
		sampled:     mat.NewDense(numState, numAction, nil),
	}, nil
}

func (th *Threshold) String() string {
	return "threshold-prioritized"
}

// Store implements Policy. The pair is bounds-checked eagerly so Sample
// never indexes outside the quota table.
func (th *Threshold) Store(t Transition, tdError float32) error {
	if err := checkPair(th.sampled, t.State, t.Action); err != nil {
		return err
	}

	return th.Prioritized.Store(t, tdError)
}

// Sample implements Policy, drawing from the quota-masked distribution and
// counting the draw against the chosen pair.
func (th *Threshold) Sample() (int, error) {
	if th.Len() == 0 {
		return 0, ErrEmptyBuffer
	}

	mask := make([]float32, th.Len())
	for i, t := range th.transitions {
		if int(th.sampled.At(t.State, t.Action)) < th.threshold {
			mask[i] = 1
		}
	}

	masked := make([]float32, len(mask))
	f32.MulTo(masked, th.priorities, mask)

	weights := masked
	if f32.Sum(masked) <= 0 {
		// Every stored pair has exhausted its quota; degrade to the plain
		// priority distribution.
		glog.V(2).Infof("all stored pairs at sampling quota %d, falling back to unmasked priorities", th.threshold)
		weights = th.priorities
	}

	total := f32.Sum(weights)
	if total <= 0 {
		return 0, errors.Wrapf(ErrDegenerateDistribution, "total priority mass %v", total)
	}

	pmf := make([]float32, len(weights))
	f32.ScalUnitaryTo(pmf, 1.0/total, weights)

	idx := sampling.Inverse(th.rng, pmf)
	t := th.transitions[idx]
	th.sampled.Set(t.State, t.Action, th.sampled.At(t.State, t.Action)+1)
	return idx, nil
}
