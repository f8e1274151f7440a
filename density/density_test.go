package density

import (
	"testing"

	"github.com/stochbb/stochbb/dag"
	"github.com/stochbb/stochbb/simplify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func gammaAtom(t *testing.T, ctx *dag.Context, k, theta float64) *dag.AtomNode {
	t.Helper()
	a, err := dag.NewAtom(ctx, dag.FamilyGamma, dag.C(k), dag.C(theta))
	require.NoError(t, err)
	return a
}

func normalAtom(t *testing.T, ctx *dag.Context, mu, sigma float64) *dag.AtomNode {
	t.Helper()
	a, err := dag.NewAtom(ctx, dag.FamilyNormal, dag.C(mu), dag.C(sigma))
	require.NoError(t, err)
	return a
}

// checkNormalized asserts a density integrates to ~1 and its cdf is
// non-decreasing, ending near 1 (spec.md §8 properties 1-2).
func checkNormalized(t *testing.T, eng *Engine, node dag.Node) {
	t.Helper()
	lo, hi, err := eng.Density(node).RangeEst(1e-4)
	require.NoError(t, err)
	const n = 2048
	pdf := make([]float64, n)
	cdf := make([]float64, n)
	d := eng.Density(node)
	require.NoError(t, d.Eval(lo, hi, pdf))
	require.NoError(t, d.EvalCDF(lo, hi, cdf))

	h := step(lo, hi, n)
	for i, v := range pdf {
		assert.GreaterOrEqual(t, v, 0.0, "pdf must be non-negative at index %d", i)
	}
	mass := floats.Sum(pdf) * h
	assert.InDelta(t, 1.0, mass, 0.05)

	for i := 1; i < n; i++ {
		assert.GreaterOrEqual(t, cdf[i], cdf[i-1]-1e-9, "cdf must be non-decreasing")
	}
	assert.InDelta(t, 1.0, cdf[n-1], 0.05)
}

func TestAtomNormalizes(t *testing.T) {
	ctx := dag.NewContext()
	eng := NewEngine()
	g := gammaAtom(t, ctx, 3, 10)
	checkNormalized(t, eng, g)
}

func TestSumOfGammasClosedFormAgreesWithDirectGamma(t *testing.T) {
	ctx := dag.NewContext()
	eng := NewEngine()

	a := gammaAtom(t, ctx, 3, 10)
	b := gammaAtom(t, ctx, 5, 10)
	sum, err := simplify.Sum(ctx, a, b)
	require.NoError(t, err)
	require.Equal(t, dag.KindAtom, sum.Kind(), "equal-theta gamma sum should collapse to a single atom")

	checkNormalized(t, eng, sum)

	lo, hi, err := eng.Density(sum).RangeEst(1e-4)
	require.NoError(t, err)
	const n = 1024
	pdf := make([]float64, n)
	require.NoError(t, eng.Density(sum).Eval(lo, hi, pdf))

	direct := gammaAtom(t, ctx, 8, 10)
	pdf2 := make([]float64, n)
	require.NoError(t, eng.Density(direct).Eval(lo, hi, pdf2))

	for i := range pdf {
		assert.InDelta(t, pdf2[i], pdf[i], 1e-6)
	}
}

func TestSumOfIndependentGammasConvolvesAndNormalizes(t *testing.T) {
	ctx := dag.NewContext()
	eng := NewEngine()

	a := gammaAtom(t, ctx, 3, 10)
	b := gammaAtom(t, ctx, 4, 15)
	sum, err := simplify.Sum(ctx, a, b)
	require.NoError(t, err)
	require.Equal(t, dag.KindSum, sum.Kind(), "different-theta gammas must stay a structural Sum")

	checkNormalized(t, eng, sum)
}

func TestDeltaShiftsAffine(t *testing.T) {
	ctx := dag.NewContext()
	eng := NewEngine()

	g := gammaAtom(t, ctx, 3, 10)
	d, err := dag.NewAtom(ctx, dag.FamilyDelta, dag.C(50))
	require.NoError(t, err)
	shifted, err := simplify.Sum(ctx, g, d)
	require.NoError(t, err)
	require.Equal(t, dag.KindAffine, shifted.Kind())

	lo, hi, err := eng.Density(g).RangeEst(1e-4)
	require.NoError(t, err)
	const n = 512
	pdfG := make([]float64, n)
	require.NoError(t, eng.Density(g).Eval(lo, hi, pdfG))

	pdfShifted := make([]float64, n)
	require.NoError(t, eng.Density(shifted).Eval(lo+50, hi+50, pdfShifted))

	for i := range pdfG {
		assert.InDelta(t, pdfG[i], pdfShifted[i], 1e-6)
	}
}

func TestNormalSumClosedForm(t *testing.T) {
	ctx := dag.NewContext()
	eng := NewEngine()

	a := normalAtom(t, ctx, 10, 3)
	b := normalAtom(t, ctx, -4, 4)
	sum, err := simplify.Sum(ctx, a, b)
	require.NoError(t, err)
	require.Equal(t, dag.KindAtom, sum.Kind())

	checkNormalized(t, eng, sum)
}

func TestMinOfIndependentAtoms(t *testing.T) {
	ctx := dag.NewContext()
	eng := NewEngine()

	a := gammaAtom(t, ctx, 3, 10)
	b := gammaAtom(t, ctx, 5, 8)
	m, err := simplify.Min(ctx, a, b)
	require.NoError(t, err)
	checkNormalized(t, eng, m)
}

func TestMaxOfIndependentAtoms(t *testing.T) {
	ctx := dag.NewContext()
	eng := NewEngine()

	a := gammaAtom(t, ctx, 3, 10)
	b := gammaAtom(t, ctx, 5, 8)
	m, err := simplify.Max(ctx, a, b)
	require.NoError(t, err)
	checkNormalized(t, eng, m)
}

func TestMixtureNormalizes(t *testing.T) {
	ctx := dag.NewContext()
	eng := NewEngine()

	a := gammaAtom(t, ctx, 3, 10)
	b := normalAtom(t, ctx, 60, 5)
	mix, err := dag.NewMixture(ctx, []float64{0.4, 0.6}, a, b)
	require.NoError(t, err)
	checkNormalized(t, eng, mix)
}

// TestCondChainEquivalentToMin checks that CondChain(A,B,A,B), "if A<B then
// A else B", has the same density as Min(A,B), since both describe
// "whichever of A,B is smaller".
func TestCondChainEquivalentToMin(t *testing.T) {
	ctx := dag.NewContext()
	eng := NewEngine()

	a := gammaAtom(t, ctx, 3, 10)
	b := gammaAtom(t, ctx, 5, 12)
	cc, err := simplify.CondChain(ctx, a, b, a, b)
	require.NoError(t, err)
	m, err := simplify.Min(ctx, a, b)
	require.NoError(t, err)

	lo, hi, err := eng.Density(m).RangeEst(1e-4)
	require.NoError(t, err)
	const n = 512
	ccPdf := make([]float64, n)
	mPdf := make([]float64, n)
	require.NoError(t, eng.Density(cc).Eval(lo, hi, ccPdf))
	require.NoError(t, eng.Density(m).Eval(lo, hi, mPdf))

	for i := range ccPdf {
		assert.InDelta(t, mPdf[i], ccPdf[i], 1e-3)
	}
}

func TestCondChainDegenerateCollapsesToSameNode(t *testing.T) {
	ctx := dag.NewContext()
	a := gammaAtom(t, ctx, 3, 10)
	b := gammaAtom(t, ctx, 5, 10)
	u := gammaAtom(t, ctx, 7, 20)
	cc, err := simplify.CondChain(ctx, a, b, u, u)
	require.NoError(t, err)
	assert.Equal(t, u.ID(), cc.ID())
}

func TestCompoundAtomMarginalizes(t *testing.T) {
	ctx := dag.NewContext()
	eng := NewEngine()

	shape, err := dag.NewAtom(ctx, dag.FamilyGamma, dag.C(10), dag.C(1))
	require.NoError(t, err)
	compound, err := dag.NewAtom(ctx, dag.FamilyGamma, dag.FromNode(shape), dag.C(5))
	require.NoError(t, err)
	require.True(t, compound.IsCompound())

	checkNormalized(t, eng, compound)
}

func TestRangeEstMonotone(t *testing.T) {
	ctx := dag.NewContext()
	eng := NewEngine()
	g := gammaAtom(t, ctx, 10, 10)

	loTight, hiTight, err := eng.Density(g).RangeEst(0.1)
	require.NoError(t, err)
	loWide, hiWide, err := eng.Density(g).RangeEst(0.001)
	require.NoError(t, err)

	assert.LessOrEqual(t, loWide, loTight)
	assert.GreaterOrEqual(t, hiWide, hiTight)
}

func TestDependencyViolationRejectsDensity(t *testing.T) {
	ctx := dag.NewContext(dag.WithDependencyPolicy(dag.PolicyReroute))
	eng := NewEngine()

	f := gammaAtom(t, ctx, 1, 1)
	l, err := dag.NewAtom(ctx, dag.FamilyGamma, dag.FromNode(f), dag.C(10))
	require.NoError(t, err)
	s, err := dag.NewAtom(ctx, dag.FamilyGamma, dag.FromNode(f), dag.C(20))
	require.NoError(t, err)
	sum, err := dag.NewSum(ctx, l, s)
	require.NoError(t, err)
	require.True(t, sum.DependencyViolation)

	_, err = eng.Density(sum).RangeEst(1e-4)
	require.NoError(t, err, "RangeEst is structural and does not depend on density computation")

	buf := make([]float64, 16)
	err = eng.Density(sum).Eval(0, 100, buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDependent)
}
