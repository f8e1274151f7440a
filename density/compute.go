// File: compute.go
// Role: computeBuffers is the single entry point density.go calls; it
// dispatches on node.Kind() to the strategy files (spec.md §4.3's per-Kind
// table), producing pdf+cdf samples on the caller's grid.
package density

import "github.com/stochbb/stochbb/dag"

// computeBuffers fills a pdf/cdf pair on the uniform grid [tmin,tmax) with
// n samples, dispatching on node.Kind().
func computeBuffers(e *Engine, node dag.Node, tmin, tmax float64, n int) (*buffers, error) {
	var (
		buf *buffers
		err error
	)
	switch node.Kind() {
	case dag.KindAtom:
		buf, err = computeAtom(e, node.(*dag.AtomNode), tmin, tmax, n)
	case dag.KindAffine:
		buf, err = computeAffine(e, node.(*dag.AffineNode), tmin, tmax, n)
	case dag.KindSum:
		buf, err = computeSum(e, node.(*dag.SumNode), tmin, tmax, n)
	case dag.KindMin:
		buf, err = computeMin(e, node.(*dag.MinNode), tmin, tmax, n)
	case dag.KindMax:
		buf, err = computeMax(e, node.(*dag.MaxNode), tmin, tmax, n)
	case dag.KindMixture:
		buf, err = computeMixture(e, node.(*dag.MixtureNode), tmin, tmax, n)
	case dag.KindCondChain:
		buf, err = computeCondChain(e, node.(*dag.CondChainNode), tmin, tmax, n)
	default:
		return nil, ErrBadGrid
	}
	if err != nil {
		return nil, err
	}
	if !allFinite(buf.pdf) || !allFinite(buf.cdf) {
		return nil, ErrConvergence
	}
	return buf, nil
}

// cumulativeFromPdf integrates pdf by the trapezoid rule to produce a
// monotone cdf sampled on the same grid, anchored at F(tmin)=0 (spec.md §3
// invariant 2: F is non-decreasing, F(Tmin)≈0, F(Tmax)≈1).
func cumulativeFromPdf(pdf []float64, h float64) []float64 {
	cdf := make([]float64, len(pdf))
	acc := 0.0
	for i := range pdf {
		if i > 0 {
			acc += 0.5 * (pdf[i-1] + pdf[i]) * h
		}
		cdf[i] = acc
	}
	return cdf
}
