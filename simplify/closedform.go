// File: closedform.go
// Role: recognizing the two closed-form Sum families spec.md §4.2 rule 4
// names: equal-scale Gamma sums collapse to a single Gamma, and Normal
// sums always collapse to a single Normal.
package simplify

import (
	"math"

	"github.com/stochbb/stochbb/dag"
)

// asSimpleGamma reports the (k, theta) of n if n is a non-compound Gamma
// atom, and ok=false otherwise.
func asSimpleGamma(n dag.Node) (k, theta float64, ok bool) {
	a, isAtom := n.(*dag.AtomNode)
	if !isAtom || a.Family != dag.FamilyGamma || a.IsCompound() {
		return 0, 0, false
	}
	return a.Params[0].Value(), a.Params[1].Value(), true
}

// asSimpleNormal reports the (mu, sigma) of n if n is a non-compound
// Normal atom, and ok=false otherwise.
func asSimpleNormal(n dag.Node) (mu, sigma float64, ok bool) {
	a, isAtom := n.(*dag.AtomNode)
	if !isAtom || a.Family != dag.FamilyNormal || a.IsCompound() {
		return 0, 0, false
	}
	return a.Params[0].Value(), a.Params[1].Value(), true
}

// asDelta reports the constant c of n if n is a Delta atom.
func asDelta(n dag.Node) (c float64, ok bool) {
	a, isAtom := n.(*dag.AtomNode)
	if !isAtom || a.Family != dag.FamilyDelta {
		return 0, false
	}
	return a.Params[0].Value(), true
}

// collapseGammaSum returns the single Gamma(Σk, theta) atom replacing
// children, or ok=false if children are not all simple Gammas sharing one
// theta (within floating-point equality, as the spec requires "equal
// theta" rather than "approximately equal").
func collapseGammaSum(ctx *dag.Context, children []dag.Node) (dag.Node, bool, error) {
	if len(children) < 2 {
		return nil, false, nil
	}
	_, theta0, ok := asSimpleGamma(children[0])
	if !ok {
		return nil, false, nil
	}
	sumK := 0.0
	for _, c := range children {
		k, theta, ok := asSimpleGamma(c)
		if !ok || theta != theta0 {
			return nil, false, nil
		}
		sumK += k
	}
	collapsed, err := dag.NewAtom(ctx, dag.FamilyGamma, dag.C(sumK), dag.C(theta0))
	if err != nil {
		return nil, false, err
	}
	return collapsed, true, nil
}

// collapseNormalSum returns the single Normal(Σmu, sqrt(Σsigma²)) atom
// replacing children, or ok=false if children are not all simple Normals.
func collapseNormalSum(ctx *dag.Context, children []dag.Node) (dag.Node, bool, error) {
	if len(children) < 2 {
		return nil, false, nil
	}
	sumMu, sumVar := 0.0, 0.0
	for _, c := range children {
		mu, sigma, ok := asSimpleNormal(c)
		if !ok {
			return nil, false, nil
		}
		sumMu += mu
		sumVar += sigma * sigma
	}
	collapsed, err := dag.NewAtom(ctx, dag.FamilyNormal, dag.C(sumMu), dag.C(math.Sqrt(sumVar)))
	if err != nil {
		return nil, false, err
	}
	return collapsed, true, nil
}
