package replay

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Policy = (*Uniform)(nil)
	_ Policy = (*Prioritized)(nil)
	_ Policy = (*Asymmetric)(nil)
	_ Policy = (*Rare)(nil)
	_ Policy = (*Threshold)(nil)
	_ Policy = (*Softmax)(nil)
	_ Policy = (*ThreadSafe)(nil)
)

func TestPolicyNames(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	u, err := NewUniform(4, rng)
	require.NoError(t, err)
	p, err := NewPrioritized(4, 1, 0.01, rng)
	require.NoError(t, err)
	a, err := NewAsymmetric(4, 1, 0.01, 0.5, rng)
	require.NoError(t, err)
	r, err := NewRare(4, 1, 0.01, 2, 2, rng)
	require.NoError(t, err)
	th, err := NewThreshold(4, 1, 0.01, 2, 2, 3, rng)
	require.NoError(t, err)
	s, err := NewSoftmax(4, rng)
	require.NoError(t, err)

	assert.Equal(t, "uniform", u.String())
	assert.Equal(t, "prioritized", p.String())
	assert.Equal(t, "asymmetric-prioritized", a.String())
	assert.Equal(t, "rare-prioritized", r.String())
	assert.Equal(t, "threshold-prioritized", th.String())
	assert.Equal(t, "softmax-prioritized", s.String())
	assert.Equal(t, "prioritized", NewThreadSafe(p).String())
}

// Exercise the full store/sample/update loop through the Policy interface
// for every variant.
func TestPolicyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	policies := make([]Policy, 0, 6)

	u, err := NewUniform(8, rng)
	require.NoError(t, err)
	p, err := NewPrioritized(8, 0.7, 0.01, rng)
	require.NoError(t, err)
	a, err := NewAsymmetric(8, 0.7, 0.01, 0.5, rng)
	require.NoError(t, err)
	r, err := NewRare(8, 0.7, 0.01, 4, 4, rng)
	require.NoError(t, err)
	th, err := NewThreshold(8, 0.7, 0.01, 4, 4, 3, rng)
	require.NoError(t, err)
	s, err := NewSoftmax(8, rng)
	require.NoError(t, err)
	policies = append(policies, u, p, a, r, th, s)

	for _, pol := range policies {
		t.Run(pol.String(), func(t *testing.T) {
			for i := 0; i < 12; i++ {
				tr := Transition{
					State:     i % 4,
					Action:    (i + 1) % 4,
					Reward:    float32(i),
					NextState: (i + 2) % 4,
				}
				require.NoError(t, pol.Store(tr, float32(rng.NormFloat64())))
			}
			require.Equal(t, 8, pol.Len())

			for i := 0; i < 25; i++ {
				idx, err := pol.Sample()
				require.NoError(t, err)

				tr, err := pol.Get(idx)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, tr.State, 0)

				require.NoError(t, pol.UpdatePriority(idx, float32(rng.NormFloat64())))
			}
		})
	}
}
