package replay

import (
	"math/rand"
)

// Uniform is the baseline experience replay: transitions are stored in the
// shared ring buffer and sampled uniformly at random. The surprise signal is
// ignored entirely.
type Uniform struct {
	*ring
	rng *rand.Rand
}

// NewUniform returns a Uniform policy with the given buffer capacity.
// If rng is nil, a time-seeded source is used.
func NewUniform(bufferSize int, rng *rand.Rand) (*Uniform, error) {
	r, err := newRing(bufferSize)
	if err != nil {
		return nil, err
	}

	return &Uniform{ring: r, rng: defaultRNG(rng)}, nil
}

func (u *Uniform) String() string {
	return "uniform"
}

// Store implements Policy. tdError is ignored.
func (u *Uniform) Store(t Transition, tdError float32) error {
	u.ring.put(t)
	return nil
}

// Sample implements Policy.
func (u *Uniform) Sample() (int, error) {
	if u.Len() == 0 {
		return 0, ErrEmptyBuffer
	}

	return u.rng.Intn(u.Len()), nil
}

// UpdatePriority implements Policy. It is a no-op for uniform sampling but
// still validates the index so caller bookkeeping bugs surface here too.
func (u *Uniform) UpdatePriority(idx int, tdError float32) error {
	_, err := u.Get(idx)
	return err
}
