// File: mixture.go
// Role: Mixture's weighted-sum formula (spec.md §4.3): f=Σwᵢfᵢ, F=ΣwᵢFᵢ,
// every child evaluated directly on the caller's grid.
package density

import (
	"github.com/stochbb/stochbb/dag"
	"gonum.org/v1/gonum/floats"
)

func computeMixture(e *Engine, n *dag.MixtureNode, tmin, tmax float64, count int) (*buffers, error) {
	if n.DependencyViolation {
		return nil, wrapDependencyErr(n.ID())
	}
	pdfs, cdfs, err := evalChildren(e, n.Items, tmin, tmax, count)
	if err != nil {
		return nil, err
	}
	pdf := make([]float64, count)
	cdf := make([]float64, count)
	for i, w := range n.Weights {
		floats.AddScaled(pdf, w, pdfs[i])
		floats.AddScaled(cdf, w, cdfs[i])
	}
	return &buffers{pdf: pdf, cdf: cdf}, nil
}
