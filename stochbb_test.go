package stochbb

import (
	"testing"

	"github.com/stochbb/stochbb/dag"
	"github.com/stochbb/stochbb/density"
	"github.com/stochbb/stochbb/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// TestResponseLatencyChain mirrors the corpus-model scenario: a compound
// lexical stage L=gamma(5f+5,10) and semantic stage S=gamma(10p+5,20) over
// independent uniform atoms f,p, a fixed motor stage M, and the response
// latency R=L+S+M.
func TestResponseLatencyChain(t *testing.T) {
	b := New()
	f, err := b.Uniform(0.0, 4.0)
	require.NoError(t, err)
	p, err := b.Uniform(0.0, 1.0)
	require.NoError(t, err)

	fScaled, err := b.Scale(5, f, 5)
	require.NoError(t, err)
	pScaled, err := b.Scale(10, p, 5)
	require.NoError(t, err)

	L, err := b.Gamma(fScaled, 10.0)
	require.NoError(t, err)
	S, err := b.Gamma(pScaled, 20.0)
	require.NoError(t, err)
	M, err := b.Gamma(10.0, 30.0)
	require.NoError(t, err)

	R, err := b.Chain(L, S, M)
	require.NoError(t, err)

	eng := density.NewEngine()
	lo, hi, err := eng.Density(R).RangeEst(1e-3)
	require.NoError(t, err)
	pdf := make([]float64, 512)
	require.NoError(t, eng.Density(R).Eval(lo, hi, pdf))
	h := (hi - lo) / 512
	mass := 0.0
	for _, v := range pdf {
		mass += v * h
	}
	assert.InDelta(t, 1.0, mass, 0.1)

	sampler := sample.NewExactSampler(sample.WithSource(rand.NewSource(99)))
	rows, err := sampler.SampleN(1000, L, S, M, R)
	require.NoError(t, err)
	for _, row := range rows {
		assert.InDelta(t, row[0]+row[1]+row[2], row[3], 1e-6, "R must equal L+S+M exactly on every draw")
	}
}

// TestMinimumVsCondChainDegenerateBranch exercises spec.md §4.2 rule 7's
// canonicalization: CondChain(A,B,U,U) collapses to U outright, and
// CondChain(A,B,A,B) (distinct branches equal to the comparison operands
// themselves) agrees with Min(A,B) pointwise (spec.md §3 glossary: "the
// random variable equal to U when A<B, else V").
func TestMinimumVsCondChainDegenerateBranch(t *testing.T) {
	b := New()
	x1, err := b.Gamma(3.0, 100.0)
	require.NoError(t, err)
	x2, err := b.Gamma(3.0, 120.0)
	require.NoError(t, err)
	y1, err := b.Gamma(3.0, 140.0)
	require.NoError(t, err)

	degenerate, err := b.CondChain(x1, x2, y1, y1)
	require.NoError(t, err)
	assert.Equal(t, y1.ID(), degenerate.ID())

	cc, err := b.CondChain(x1, x2, x1, x2)
	require.NoError(t, err)
	m, err := b.Minimum(x1, x2)
	require.NoError(t, err)

	eng := density.NewEngine()
	lo, hi, err := eng.Density(m).RangeEst(1e-3)
	require.NoError(t, err)
	ccPdf := make([]float64, 256)
	mPdf := make([]float64, 256)
	require.NoError(t, eng.Density(cc).Eval(lo, hi, ccPdf))
	require.NoError(t, eng.Density(m).Eval(lo, hi, mPdf))
	for i := range ccPdf {
		assert.InDelta(t, mPdf[i], ccPdf[i], 1e-3)
	}
}

func TestNormalSumMatchesClosedForm(t *testing.T) {
	b := New()
	x, err := b.Normal(100.0, 10.0)
	require.NoError(t, err)
	y, err := b.Normal(100.0, 10.0)
	require.NoError(t, err)
	sum, err := b.Sum(x, y)
	require.NoError(t, err)
	require.Equal(t, dag.KindAtom, sum.Kind())

	eng := density.NewEngine()
	lo, hi, err := eng.Density(sum).RangeEst(1e-3)
	require.NoError(t, err)
	pdf := make([]float64, 256)
	require.NoError(t, eng.Density(sum).Eval(lo, hi, pdf))

	direct, err := b.Normal(200.0, 14.142135623730951)
	require.NoError(t, err)
	pdf2 := make([]float64, 256)
	require.NoError(t, eng.Density(direct).Eval(lo, hi, pdf2))
	for i := range pdf {
		assert.InDelta(t, pdf2[i], pdf[i], 1e-6)
	}
}

func TestGammaRangeEstQuantiles(t *testing.T) {
	b := New()
	x, err := b.Gamma(10.0, 10.0)
	require.NoError(t, err)
	eng := density.NewEngine()
	lo, hi, err := eng.Density(x).RangeEst(0.01)
	require.NoError(t, err)

	cdf := make([]float64, 1)
	require.NoError(t, eng.Density(x).EvalCDF(lo, lo+1e-6, cdf))
	assert.InDelta(t, 0.005, cdf[0], 0.02)

	require.NoError(t, eng.Density(x).EvalCDF(hi, hi+1e-6, cdf))
	assert.InDelta(t, 0.995, cdf[0], 0.02)
}

func TestMixtureWeightsMustNormalize(t *testing.T) {
	b := New()
	x, err := b.Gamma(3.0, 10.0)
	require.NoError(t, err)
	y, err := b.Gamma(4.0, 10.0)
	require.NoError(t, err)

	_, err = b.Mixture(W(0.5, x), W(0.6, y))
	require.Error(t, err)

	mix, err := b.Mixture(W(0.3, x), W(0.7, y))
	require.NoError(t, err)
	assert.Equal(t, dag.KindMixture, mix.Kind())
}
