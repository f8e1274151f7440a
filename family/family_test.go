package family

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGammaDomain(t *testing.T) {
	t.Run("rejects non-positive shape", func(t *testing.T) {
		_, err := NewGamma(0, 10)
		require.Error(t, err)
	})
	t.Run("rejects non-positive scale", func(t *testing.T) {
		_, err := NewGamma(3, -1)
		require.Error(t, err)
	})
	t.Run("accepts valid params", func(t *testing.T) {
		g, err := NewGamma(3, 10)
		require.NoError(t, err)
		assert.Equal(t, "Gamma(3, 10)", g.String())
	})
}

func TestGammaMoments(t *testing.T) {
	g, err := NewGamma(10, 10)
	require.NoError(t, err)

	// Mean of Gamma(k, theta) is k*theta = 100; CDF should straddle it.
	assert.Less(t, g.Cdf(50), 0.5)
	assert.Greater(t, g.Cdf(150), 0.5)
	assert.Equal(t, 0.0, g.Pdf(-1))
}

func TestGammaRangeEst(t *testing.T) {
	g, err := NewGamma(10, 10)
	require.NoError(t, err)

	lo, hi := g.RangeEst(0.01)
	assert.InDelta(t, 0.005, g.Cdf(lo), 0.01)
	assert.InDelta(t, 0.995, g.Cdf(hi), 0.01)
	assert.Less(t, lo, hi)
}

func TestNormalDomain(t *testing.T) {
	_, err := NewNormal(0, 0)
	require.Error(t, err)

	n, err := NewNormal(100, 10)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, n.Cdf(100), 1e-9)
}

func TestNormalInvCdfRoundTrip(t *testing.T) {
	n, err := NewNormal(0, 1)
	require.NoError(t, err)

	for _, u := range []float64{0.1, 0.5, 0.9} {
		x := n.InvCdf(u)
		assert.InDelta(t, u, n.Cdf(x), 1e-6)
	}
}

func TestUniform(t *testing.T) {
	_, err := NewUniform(5, 1)
	require.Error(t, err)

	u, err := NewUniform(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, u.Pdf(-1))
	assert.Equal(t, 0.0, u.Pdf(5))
	assert.InDelta(t, 0.25, u.Pdf(2), 1e-9)
	assert.Equal(t, 0.0, u.Cdf(-1))
	assert.Equal(t, 1.0, u.Cdf(10))

	lo, hi := u.RangeEst(0.01)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 4.0, hi)
}

func TestDelta(t *testing.T) {
	d := NewDelta(42)
	assert.Equal(t, 0.0, d.Cdf(41.999))
	assert.Equal(t, 1.0, d.Cdf(42))
	assert.Equal(t, 1.0, d.Cdf(42.001))
	assert.True(t, math.IsInf(d.Pdf(42), 1))
	assert.Equal(t, 0.0, d.Pdf(41))

	lo, hi := d.RangeEst(0.01)
	assert.Equal(t, 42.0, lo)
	assert.Equal(t, 42.0, hi)
	assert.Equal(t, 42.0, d.InvCdf(0.5))
}
