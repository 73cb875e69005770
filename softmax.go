package replay

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/kang-jamie/RL-rare-experience-replay/internal/sampling"
)

// Softmax weights slots by exp(|tdError|). It shares the incremental-sum and
// cumulative-mass mechanics of Prioritized but carries no alpha or epsilon;
// the exponential is its own smoothing and is bounded below by 1, so no slot
// ever has zero mass.
type Softmax struct {
	*ring
	rng *rand.Rand

	priorities  []float32
	prioritySum float32
}

// NewSoftmax returns a Softmax policy with the given buffer capacity.
// If rng is nil, a time-seeded source is used.
func NewSoftmax(bufferSize int, rng *rand.Rand) (*Softmax, error) {
	r, err := newRing(bufferSize)
	if err != nil {
		return nil, err
	}

	return &Softmax{
		ring:       r,
		rng:        defaultRNG(rng),
		priorities: make([]float32, 0, bufferSize),
	}, nil
}

func (s *Softmax) String() string {
	return "softmax-prioritized"
}

func (s *Softmax) priority(tdError float32) float32 {
	x := float64(tdError)
	if x < 0 {
		x = -x
	}

	return float32(math.Exp(x))
}

// Store implements Policy.
func (s *Softmax) Store(t Transition, tdError float32) error {
	pr := s.priority(tdError)
	slot, overwrote := s.ring.put(t)
	if overwrote {
		s.prioritySum += pr - s.priorities[slot]
		s.priorities[slot] = pr
	} else {
		s.priorities = append(s.priorities, pr)
		s.prioritySum += pr
	}

	return nil
}

// UpdatePriority implements Policy.
func (s *Softmax) UpdatePriority(idx int, tdError float32) error {
	if idx < 0 || idx >= len(s.priorities) {
		return errors.Wrapf(ErrIndexOutOfRange, "update priority of slot %d with %d stored", idx, len(s.priorities))
	}

	pr := s.priority(tdError)
	s.prioritySum += pr - s.priorities[idx]
	s.priorities[idx] = pr
	return nil
}

// Sample implements Policy.
func (s *Softmax) Sample() (int, error) {
	pmf, err := normalize(s.priorities, &s.prioritySum)
	if err != nil {
		return 0, err
	}

	return sampling.Inverse(s.rng, pmf), nil
}
