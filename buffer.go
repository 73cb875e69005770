package replay

import "github.com/pkg/errors"

// ring is the fixed-capacity transition store shared by every policy. It
// grows by appending until it reaches capacity, then a cursor overwrites
// slots in cyclic order, so the next write target always holds the oldest
// surviving transition.
type ring struct {
	capacity    int
	transitions []Transition
	next        int
}

func newRing(capacity int) (*ring, error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidHyperparameter, "buffer size %d, must be positive", capacity)
	}

	return &ring{
		capacity:    capacity,
		transitions: make([]Transition, 0, capacity),
	}, nil
}

// put stores t at the cursor and advances it, returning the slot written and
// whether an existing transition was replaced.
func (r *ring) put(t Transition) (slot int, overwrote bool) {
	slot = r.next
	if slot < len(r.transitions) {
		r.transitions[slot] = t
		overwrote = true
	} else {
		r.transitions = append(r.transitions, t)
	}

	r.next = (r.next + 1) % r.capacity
	return slot, overwrote
}

// Get returns the transition stored at idx.
func (r *ring) Get(idx int) (Transition, error) {
	if idx < 0 || idx >= len(r.transitions) {
		return Transition{}, errors.Wrapf(ErrIndexOutOfRange, "slot %d with %d stored", idx, len(r.transitions))
	}

	return r.transitions[idx], nil
}

// Len returns the number of stored transitions.
func (r *ring) Len() int {
	return len(r.transitions)
}

// Cap returns the buffer capacity.
func (r *ring) Cap() int {
	return r.capacity
}
