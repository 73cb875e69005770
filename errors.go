package replay

import "github.com/pkg/errors"

// Sentinel causes for all failures surfaced by this package. Callers can
// test wrapped errors with errors.Is.
var (
	// ErrEmptyBuffer is returned by Sample when no transitions are stored.
	ErrEmptyBuffer = errors.New("replay: sample from empty buffer")

	// ErrIndexOutOfRange is returned when a slot index does not address a
	// stored transition.
	ErrIndexOutOfRange = errors.New("replay: index out of range")

	// ErrDegenerateDistribution is returned when the total sampling mass is
	// zero and no documented fallback applies.
	ErrDegenerateDistribution = errors.New("replay: degenerate sampling distribution")

	// ErrInvalidHyperparameter is returned by constructors for out-of-domain
	// hyperparameters, and by Store for (state, action) pairs outside the
	// occurrence-table bounds.
	ErrInvalidHyperparameter = errors.New("replay: invalid hyperparameter")
)
