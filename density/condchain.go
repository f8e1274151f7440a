// File: condchain.go
// Role: CondChain's mixing-weight computation (spec.md §4.3 / glossary:
// "if A<B then U else V"): p = P(A<B) = ∫ F_A(t)·f_B(t) dt, then the result
// is the p-weighted mixture of U and V. This is also where rule 7's general
// case (spec.md §3, simplify package doc) lands — the weight cannot be a
// static float until A and B's densities are known, so it is computed here
// rather than as a structural rewrite.
//
// CondChain(A,B,A,B) is evaluated as Min(A,B) instead of as a mixture. In
// every other case the mixture formula treats U and V as independent of A
// and B; atoms shared between the branches and the comparison are not
// integrated out.
package density

import (
	"math"

	"github.com/stochbb/stochbb/dag"
)

func computeCondChain(e *Engine, n *dag.CondChainNode, tmin, tmax float64, count int) (*buffers, error) {
	// U==A and V==B is "whichever of A,B is smaller", i.e. Min(A,B).
	if n.U.ID() == n.A.ID() && n.V.ID() == n.B.ID() {
		pdfs, cdfs, err := evalChildren(e, []dag.Node{n.A, n.B}, tmin, tmax, count)
		if err != nil {
			return nil, err
		}
		pdf := make([]float64, count)
		cdf := make([]float64, count)
		for t := 0; t < count; t++ {
			pdf[t] = pdfs[0][t]*(1-cdfs[1][t]) + pdfs[1][t]*(1-cdfs[0][t])
			cdf[t] = 1 - (1-cdfs[0][t])*(1-cdfs[1][t])
		}
		return &buffers{pdf: pdf, cdf: cdf}, nil
	}

	p, err := condChainWeight(e, n.A, n.B)
	if err != nil {
		return nil, err
	}

	pdfs, cdfs, err := evalChildren(e, []dag.Node{n.U, n.V}, tmin, tmax, count)
	if err != nil {
		return nil, err
	}
	pdf := make([]float64, count)
	cdf := make([]float64, count)
	for t := 0; t < count; t++ {
		pdf[t] = p*pdfs[0][t] + (1-p)*pdfs[1][t]
		cdf[t] = p*cdfs[0][t] + (1-p)*cdfs[1][t]
	}
	return &buffers{pdf: pdf, cdf: cdf}, nil
}

// condChainWeight computes p = P(A<B) on a common grid covering both
// supports at the engine's internal tolerance (spec.md §4.3 eps_int).
func condChainWeight(e *Engine, a, b dag.Node) (float64, error) {
	aLo, aHi, err := rangeEstimate(a, e.cfg.epsilon)
	if err != nil {
		return 0, err
	}
	bLo, bHi, err := rangeEstimate(b, e.cfg.epsilon)
	if err != nil {
		return 0, err
	}
	lo := math.Min(aLo, bLo)
	hi := math.Max(aHi, bHi)
	if lo >= hi {
		return 0, ErrBadGrid
	}
	n := e.cfg.minGrid

	cdfA := make([]float64, n)
	if err := e.Density(a).EvalCDF(lo, hi, cdfA); err != nil {
		return 0, err
	}
	pdfB := make([]float64, n)
	if err := e.Density(b).Eval(lo, hi, pdfB); err != nil {
		return 0, err
	}

	h := step(lo, hi, n)
	p := 0.0
	for i := range cdfA {
		p += cdfA[i] * pdfB[i] * h
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p, nil
}
