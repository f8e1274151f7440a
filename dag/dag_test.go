package dag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gammaAtom(t *testing.T, ctx *Context, k, theta float64) *AtomNode {
	t.Helper()
	a, err := NewAtom(ctx, FamilyGamma, C(k), C(theta))
	require.NoError(t, err)
	return a
}

func TestAtomIdentity(t *testing.T) {
	ctx := NewContext()
	a1 := gammaAtom(t, ctx, 3, 10)
	a2 := gammaAtom(t, ctx, 3, 10)

	assert.NotEqual(t, a1.ID(), a2.ID(), "independently built atoms with equal params are distinct identities")
	assert.Len(t, a1.Atoms(), 1)
	assert.Same(t, a1, a1.Atoms()[a1.ID()])
}

func TestAtomDomainValidation(t *testing.T) {
	ctx := NewContext()
	_, err := NewAtom(ctx, FamilyGamma, C(-1), C(10))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDomain)

	_, err = NewAtom(ctx, FamilyNormal, C(0), C(-5))
	require.Error(t, err)
}

func TestCompoundAtomDeferredValidation(t *testing.T) {
	ctx := NewContext()
	f := gammaAtom(t, ctx, 1, 1) // a node to use as a compound parameter
	compound, err := NewAtom(ctx, FamilyGamma, FromNode(f), C(10))
	require.NoError(t, err)
	assert.True(t, compound.IsCompound())
	assert.Len(t, compound.Atoms(), 2) // itself + f
}

func TestSumIndependenceRejected(t *testing.T) {
	ctx := NewContext() // default PolicyReject
	f := gammaAtom(t, ctx, 1, 1)
	l, err := NewAtom(ctx, FamilyGamma, FromNode(f), C(10))
	require.NoError(t, err)
	s, err := NewAtom(ctx, FamilyGamma, FromNode(f), C(20))
	require.NoError(t, err)

	_, err = NewSum(ctx, l, s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDependency)
}

func TestSumIndependenceReroutePolicy(t *testing.T) {
	ctx := NewContext(WithDependencyPolicy(PolicyReroute))
	f := gammaAtom(t, ctx, 1, 1)
	l, err := NewAtom(ctx, FamilyGamma, FromNode(f), C(10))
	require.NoError(t, err)
	s, err := NewAtom(ctx, FamilyGamma, FromNode(f), C(20))
	require.NoError(t, err)

	sum, err := NewSum(ctx, l, s)
	require.NoError(t, err)
	assert.True(t, sum.DependencyViolation)
}

func TestSumOfIndependentAtomsOK(t *testing.T) {
	ctx := NewContext()
	x1 := gammaAtom(t, ctx, 10, 10)
	x2 := gammaAtom(t, ctx, 10, 20)
	sum, err := NewSum(ctx, x1, x2)
	require.NoError(t, err)
	assert.Len(t, sum.Atoms(), 2)
	assert.False(t, sum.DependencyViolation)
}

func TestAffineRejectsNonPositiveScale(t *testing.T) {
	ctx := NewContext()
	x := gammaAtom(t, ctx, 3, 10)
	_, err := NewAffine(ctx, 0, x, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotSupported)

	_, err = NewAffine(ctx, -1, x, 5)
	require.Error(t, err)
}

func TestMixtureWeightValidation(t *testing.T) {
	ctx := NewContext()
	a := gammaAtom(t, ctx, 3, 10)
	b := gammaAtom(t, ctx, 4, 10)

	_, err := NewMixture(ctx, []float64{0.5, 0.6}, a, b)
	require.Error(t, err)

	_, err = NewMixture(ctx, []float64{-0.1, 1.1}, a, b)
	require.Error(t, err)

	m, err := NewMixture(ctx, []float64{0.3, 0.7}, a, b)
	require.NoError(t, err)
	assert.Equal(t, KindMixture, m.Kind())
}

func TestCondChainAllowsSharedAtoms(t *testing.T) {
	ctx := NewContext()
	a := gammaAtom(t, ctx, 3, 100)
	b := gammaAtom(t, ctx, 3, 120)
	shared := gammaAtom(t, ctx, 3, 140)

	cc, err := NewCondChain(ctx, a, b, shared, shared)
	require.NoError(t, err)
	assert.Len(t, cc.Atoms(), 3)
}

func TestForeignNodeRejected(t *testing.T) {
	ctx1 := NewContext()
	ctx2 := NewContext()
	a := gammaAtom(t, ctx1, 3, 10)
	b := gammaAtom(t, ctx2, 3, 10)

	_, err := NewSum(ctx1, a, b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrForeignNode))
}

func TestEmptyChildrenRejected(t *testing.T) {
	ctx := NewContext()
	_, err := NewSum(ctx)
	assert.ErrorIs(t, err, ErrEmptyChildren)
}
