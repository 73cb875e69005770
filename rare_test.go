package replay

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRareRejectsBadTableDimensions(t *testing.T) {
	_, err := NewRare(4, 1, 0.01, 0, 2, nil)
	assert.ErrorIs(t, err, ErrInvalidHyperparameter)
	_, err = NewRare(4, 1, 0.01, 2, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidHyperparameter)
}

func TestRareStoreRejectsOutOfBoundsPair(t *testing.T) {
	r, err := NewRare(4, 1, 0.01, 2, 2, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.ErrorIs(t, r.Store(Transition{State: 2, Action: 0}, 1), ErrInvalidHyperparameter)
	assert.ErrorIs(t, r.Store(Transition{State: 0, Action: -1}, 1), ErrInvalidHyperparameter)
	assert.Equal(t, 0, r.Len())
}

func TestRareCountsVisitsAcrossOverwrites(t *testing.T) {
	r, err := NewRare(2, 1, 0.01, 2, 2, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	// Five stores of the same pair into a 2-slot buffer: the slots are
	// overwritten but the lifetime count keeps growing.
	for i := 0; i < 5; i++ {
		require.NoError(t, r.Store(Transition{State: 1, Action: 1}, 1))
	}

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 5.0, r.visits.At(1, 1))
}

// A pair visited once must receive ~10x the mass of an equal-priority pair
// visited ten times.
func TestRareBoostsRarePairs(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	r, err := NewRare(11, 1, 0.01, 2, 2, rng)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		require.NoError(t, r.Store(Transition{State: 1, Action: 1}, 1))
	}
	require.NoError(t, r.Store(Transition{State: 0, Action: 0}, 1))

	// All eleven slots share TD-priority 1.01; the (0,0) slot has weight 1
	// against 1/10 for each (1,1) slot, so it should absorb half the mass.
	const n = 30000
	counts := sampleCounts(t, r, n)

	rareFreq := float64(counts[10]) / n
	assert.InDelta(t, 0.5, rareFreq, 0.02)

	var common float64
	for _, c := range counts[:10] {
		common += float64(c)
	}
	ratio := float64(counts[10]) / (common / 10)
	assert.InDelta(t, 10, ratio, 1.5)
}

func TestRareZeroVisitCountIsAnError(t *testing.T) {
	r, err := NewRare(4, 1, 0.01, 2, 2, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	// Bypass Rare.Store to plant a transition whose pair was never counted,
	// as an externally initialized table would.
	require.NoError(t, r.Prioritized.Store(Transition{State: 0, Action: 0}, 1))

	_, err = r.Sample()
	assert.ErrorIs(t, err, ErrDegenerateDistribution)
}

func TestRareSampleEmpty(t *testing.T) {
	r, err := NewRare(4, 1, 0.01, 2, 2, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, err = r.Sample()
	assert.ErrorIs(t, err, ErrEmptyBuffer)
}
