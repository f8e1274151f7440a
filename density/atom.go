// File: atom.go
// Role: Atom strategy — simple atoms evaluate their family.Family directly;
// compound atoms marginalize over their node-valued parameters' own
// densities (spec.md §4.1 "Compound" / §4.3's Atom-compound row).
package density

import (
	"github.com/stochbb/stochbb/dag"
	"gonum.org/v1/gonum/floats"
)

// compoundQuadPoints bounds the per-parameter quadrature resolution used to
// marginalize a compound atom's node-valued parameters; kept well below
// cfg.minGrid since a compound atom with two node-valued parameters pays
// this cost quadratically (spec.md §3: FamilyKind.ParamCount() never
// exceeds 2, so at most a 2-D cartesian grid is ever built here).
const compoundQuadPoints = 128

func computeAtom(e *Engine, a *dag.AtomNode, tmin, tmax float64, n int) (*buffers, error) {
	if !a.IsCompound() {
		return computeSimpleAtom(a, tmin, tmax, n)
	}
	return computeCompoundAtom(e, a, tmin, tmax, n)
}

func computeSimpleAtom(a *dag.AtomNode, tmin, tmax float64, n int) (*buffers, error) {
	values := make([]float64, len(a.Params))
	for i, p := range a.Params {
		values[i] = p.Value()
	}
	fam, err := a.Instantiate(values)
	if err != nil {
		return nil, err
	}
	ts := linspace(tmin, tmax, n)
	pdf := make([]float64, n)
	cdf := make([]float64, n)
	for i, t := range ts {
		pdf[i] = fam.Pdf(t)
		cdf[i] = fam.Cdf(t)
	}
	return &buffers{pdf: pdf, cdf: cdf}, nil
}

// quadNode describes one node-valued parameter's own marginal quadrature:
// its grid of theta values and the pdf weight at each.
type quadNode struct {
	theta  []float64
	weight []float64
}

func buildQuadNode(e *Engine, node dag.Node, points int) (*quadNode, error) {
	lo, hi, err := rangeEstimate(node, e.cfg.epsilon)
	if err != nil {
		return nil, err
	}
	if lo == hi {
		return &quadNode{theta: []float64{lo}, weight: []float64{1}}, nil
	}
	theta := linspace(lo, hi, points)
	pdf := make([]float64, points)
	if err := e.Density(node).Eval(lo, hi, pdf); err != nil {
		return nil, err
	}
	h := step(lo, hi, points)
	weight := append([]float64(nil), pdf...)
	floats.Scale(h, weight)
	return &quadNode{theta: theta, weight: weight}, nil
}

// computeCompoundAtom marginalizes over 1 or 2 node-valued parameters by
// Riemann-summing the family's pdf/cdf against each parameter's own
// (weight-normalized) density: f(t) = Σ_j f_family(t; theta_j)·w_j.
func computeCompoundAtom(e *Engine, a *dag.AtomNode, tmin, tmax float64, n int) (*buffers, error) {
	var nodeIdx []int
	for i, p := range a.Params {
		if p.IsNode() {
			nodeIdx = append(nodeIdx, i)
		}
	}
	points := compoundQuadPoints
	if len(nodeIdx) > 1 {
		points = 32
	}

	quads := make([]*quadNode, len(nodeIdx))
	for k, idx := range nodeIdx {
		q, err := buildQuadNode(e, a.Params[idx].Node(), points)
		if err != nil {
			return nil, err
		}
		quads[k] = q
	}

	ts := linspace(tmin, tmax, n)
	pdf := make([]float64, n)
	cdf := make([]float64, n)

	values := make([]float64, len(a.Params))
	for i, p := range a.Params {
		if !p.IsNode() {
			values[i] = p.Value()
		}
	}

	var walk func(k int, w float64) error
	walk = func(k int, w float64) error {
		if k == len(nodeIdx) {
			fam, err := a.Instantiate(append([]float64(nil), values...))
			if err != nil {
				return err
			}
			for i, t := range ts {
				pdf[i] += w * fam.Pdf(t)
				cdf[i] += w * fam.Cdf(t)
			}
			return nil
		}
		q := quads[k]
		idx := nodeIdx[k]
		for j, theta := range q.theta {
			values[idx] = theta
			if err := walk(k+1, w*q.weight[j]); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(0, 1); err != nil {
		return nil, err
	}
	return &buffers{pdf: pdf, cdf: cdf}, nil
}

func computeAffine(e *Engine, n *dag.AffineNode, tmin, tmax float64, count int) (*buffers, error) {
	clo := (tmin - n.B) / n.A
	chi := (tmax - n.B) / n.A
	childPdf := make([]float64, count)
	childCdf := make([]float64, count)
	cd := e.Density(n.Child)
	if err := cd.Eval(clo, chi, childPdf); err != nil {
		return nil, err
	}
	if err := cd.EvalCDF(clo, chi, childCdf); err != nil {
		return nil, err
	}
	floats.Scale(1/n.A, childPdf)
	return &buffers{pdf: childPdf, cdf: childCdf}, nil
}
