// File: mixture.go
// Role: rule 5 (mixture of mixtures flattens with weight multiplication).
package simplify

import "github.com/stochbb/stochbb/dag"

// Weighted pairs a node with its mixture weight, mirroring the
// (w1,X1),...,(wn,Xn) shape of spec.md §6's mixture(...) builder call.
type Weighted struct {
	Weight float64
	Node   dag.Node
}

// Mixture builds a weighted mixture, flattening any component that is
// itself a mixture by multiplying its sub-weights into the parent weight
// (rule 5).
func Mixture(ctx *dag.Context, components ...Weighted) (dag.Node, error) {
	if len(components) == 0 {
		return nil, dag.ErrEmptyChildren
	}
	var flat []Weighted
	for _, wc := range components {
		if m, ok := wc.Node.(*dag.MixtureNode); ok {
			for i, sub := range m.Items {
				flat = append(flat, Weighted{Weight: wc.Weight * m.Weights[i], Node: sub})
			}
		} else {
			flat = append(flat, wc)
		}
	}
	// A single flattened component still goes through dag.NewMixture
	// rather than returning flat[0].Node directly, so a weight != 1
	// (e.g. Mixture(W(0.3, x))) is still rejected by the weight-sum-to-1
	// check (spec.md §3 invariant 4) instead of silently passing through.
	weights := make([]float64, len(flat))
	nodes := make([]dag.Node, len(flat))
	for i, wc := range flat {
		weights[i] = wc.Weight
		nodes[i] = wc.Node
	}
	return dag.NewMixture(ctx, weights, nodes...)
}
