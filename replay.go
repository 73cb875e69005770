// Package replay implements fixed-capacity experience-replay buffers for
// reinforcement-learning agents.
//
// All policies share the same storage discipline: a ring buffer of
// transitions that overwrites the oldest unreplaced slot once full. They
// differ only in how a caller-supplied surprise signal (e.g. a TD-error) is
// converted into per-slot sampling weights, and how those weights become a
// sampling distribution.
package replay

import "fmt"

// Transition is a single (state, action, reward, next state) record of agent
// experience. State and action are indices; the occurrence-counting policies
// (Rare, Threshold) require them to address a visitation table, the other
// policies treat them as opaque.
type Transition struct {
	State     int
	Action    int
	Reward    float32
	NextState int
}

// Policy is a replay buffer together with a sampling strategy.
//
// The typical call pattern is a strict alternation driven by one training
// loop: Store transitions as they are observed, Sample an index to train on,
// and report the freshly observed error back via UpdatePriority. Policies
// perform no internal locking; wrap with ThreadSafe to share one across
// goroutines.
type Policy interface {
	fmt.Stringer

	// Store appends the transition, overwriting the oldest slot once the
	// buffer is full. tdError is ignored by the uniform policy.
	Store(t Transition, tdError float32) error
	// Sample draws the index of one stored transition according to the
	// policy's sampling distribution.
	Sample() (int, error)
	// UpdatePriority recomputes the sampling weight of the slot at idx from
	// a newly observed error.
	UpdatePriority(idx int, tdError float32) error

	// Get returns the transition stored at idx.
	Get(idx int) (Transition, error)
	// Len returns the number of stored transitions.
	Len() int
	// Cap returns the buffer capacity.
	Cap() int
}
