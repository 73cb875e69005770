package replay

import (
	"math"
	"math/rand"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/kang-jamie/RL-rare-experience-replay/internal/f32"
	"github.com/kang-jamie/RL-rare-experience-replay/internal/sampling"
)

// sumDriftTolerance bounds the relative error between the cached priority
// sum and the exact sum before Sample adopts the exact value.
const sumDriftTolerance = 1e-3

// Prioritized replays transitions in proportion to their surprise: each slot
// carries priority (|tdError| + epsilon)^alpha, and Sample inverts the
// cumulative mass of the normalized priorities.
//
// The priority sum is cached and maintained by O(1) deltas on Store and
// UpdatePriority rather than rescanned. Sampling is O(n) in the buffer size;
// for much larger buffers a segment tree over the priorities would bring a
// draw to O(log n) without changing the distribution.
type Prioritized struct {
	*ring
	alpha   float32
	epsilon float32
	rng     *rand.Rand

	priorities  []float32
	prioritySum float32
}

// NewPrioritized returns a Prioritized policy. alpha >= 0 controls how
// sharply sampling concentrates on high-error transitions (0 reduces to
// uniform); epsilon > 0 keeps every slot's probability non-zero.
// If rng is nil, a time-seeded source is used.
func NewPrioritized(bufferSize int, alpha, epsilon float32, rng *rand.Rand) (*Prioritized, error) {
	r, err := newRing(bufferSize)
	if err != nil {
		return nil, err
	}

	if alpha < 0 {
		return nil, errors.Wrapf(ErrInvalidHyperparameter, "alpha %v, must be >= 0", alpha)
	}

	if epsilon <= 0 {
		return nil, errors.Wrapf(ErrInvalidHyperparameter, "epsilon %v, must be > 0", epsilon)
	}

	return &Prioritized{
		ring:       r,
		alpha:      alpha,
		epsilon:    epsilon,
		rng:        defaultRNG(rng),
		priorities: make([]float32, 0, bufferSize),
	}, nil
}

func (p *Prioritized) String() string {
	return "prioritized"
}

func (p *Prioritized) priority(tdError float32) float32 {
	x := float64(tdError)
	if x < 0 {
		x = -x
	}

	return float32(math.Pow(x+float64(p.epsilon), float64(p.alpha)))
}

// Store implements Policy. When overwriting a full buffer, the evicted
// slot's priority leaves the cached sum as the new one enters.
func (p *Prioritized) Store(t Transition, tdError float32) error {
	pr := p.priority(tdError)
	slot, overwrote := p.ring.put(t)
	if overwrote {
		p.prioritySum += pr - p.priorities[slot]
		p.priorities[slot] = pr
	} else {
		p.priorities = append(p.priorities, pr)
		p.prioritySum += pr
	}

	return nil
}

// UpdatePriority implements Policy. Callers invoke it after training on a
// previously sampled slot, with the freshly observed error.
func (p *Prioritized) UpdatePriority(idx int, tdError float32) error {
	if idx < 0 || idx >= len(p.priorities) {
		return errors.Wrapf(ErrIndexOutOfRange, "update priority of slot %d with %d stored", idx, len(p.priorities))
	}

	pr := p.priority(tdError)
	p.prioritySum += pr - p.priorities[idx]
	p.priorities[idx] = pr
	return nil
}

// Sample implements Policy.
func (p *Prioritized) Sample() (int, error) {
	pmf, err := normalize(p.priorities, &p.prioritySum)
	if err != nil {
		return 0, err
	}

	return sampling.Inverse(p.rng, pmf), nil
}

// normalize builds the sampling pmf over the given priorities. The exact
// mass total falls out of the same pass; if the cached sum has drifted
// beyond tolerance it is replaced before dividing. Deltas are otherwise the
// only mutation path for the cache.
func normalize(priorities []float32, cachedSum *float32) ([]float32, error) {
	if len(priorities) == 0 {
		return nil, ErrEmptyBuffer
	}

	total := f32.Sum(priorities)
	if total <= 0 {
		return nil, errors.Wrapf(ErrDegenerateDistribution, "total priority mass %v", total)
	}

	if drift := *cachedSum - total; drift < -sumDriftTolerance*total || drift > sumDriftTolerance*total {
		glog.V(1).Infof("priority sum drifted: cached=%v exact=%v, recovering", *cachedSum, total)
		*cachedSum = total
	}

	pmf := make([]float32, len(priorities))
	f32.ScalUnitaryTo(pmf, 1.0/(*cachedSum), priorities)
	return pmf, nil
}
