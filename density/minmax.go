// File: minmax.go
// Role: Min/Max pointwise formulas (spec.md §4.3): unlike Sum these need no
// convolution — every child is evaluated directly on the caller's grid and
// combined order-statistic style.
package density

import "github.com/stochbb/stochbb/dag"

func computeMin(e *Engine, n *dag.MinNode, tmin, tmax float64, count int) (*buffers, error) {
	if n.DependencyViolation {
		return nil, wrapDependencyErr(n.ID())
	}
	pdfs, cdfs, err := evalChildren(e, n.Items, tmin, tmax, count)
	if err != nil {
		return nil, err
	}
	pdf := make([]float64, count)
	cdf := make([]float64, count)
	for t := 0; t < count; t++ {
		survival := 1.0
		for i := range n.Items {
			survival *= 1 - cdfs[i][t]
		}
		cdf[t] = 1 - survival

		sum := 0.0
		for i := range n.Items {
			term := pdfs[i][t]
			for j := range n.Items {
				if j != i {
					term *= 1 - cdfs[j][t]
				}
			}
			sum += term
		}
		pdf[t] = sum
	}
	return &buffers{pdf: pdf, cdf: cdf}, nil
}

func computeMax(e *Engine, n *dag.MaxNode, tmin, tmax float64, count int) (*buffers, error) {
	if n.DependencyViolation {
		return nil, wrapDependencyErr(n.ID())
	}
	pdfs, cdfs, err := evalChildren(e, n.Items, tmin, tmax, count)
	if err != nil {
		return nil, err
	}
	pdf := make([]float64, count)
	cdf := make([]float64, count)
	for t := 0; t < count; t++ {
		prod := 1.0
		for i := range n.Items {
			prod *= cdfs[i][t]
		}
		cdf[t] = prod

		sum := 0.0
		for i := range n.Items {
			term := pdfs[i][t]
			for j := range n.Items {
				if j != i {
					term *= cdfs[j][t]
				}
			}
			sum += term
		}
		pdf[t] = sum
	}
	return &buffers{pdf: pdf, cdf: cdf}, nil
}

// evalChildren evaluates pdf and cdf for every node on the same [tmin,tmax]
// grid, for the pointwise combinators (Min, Max, Mixture) that need no
// convolution.
func evalChildren(e *Engine, nodes []dag.Node, tmin, tmax float64, count int) (pdfs, cdfs [][]float64, err error) {
	pdfs = make([][]float64, len(nodes))
	cdfs = make([][]float64, len(nodes))
	for i, c := range nodes {
		pdf := make([]float64, count)
		cdf := make([]float64, count)
		cd := e.Density(c)
		if err := cd.Eval(tmin, tmax, pdf); err != nil {
			return nil, nil, err
		}
		if err := cd.EvalCDF(tmin, tmax, cdf); err != nil {
			return nil, nil, err
		}
		pdfs[i] = pdf
		cdfs[i] = cdf
	}
	return pdfs, cdfs, nil
}
