// File: mixture.go
// Role: MixtureNode — a weighted mixture of independent children, weights
// summing to 1 within tolerance (spec.md §3 invariant 4).
package dag

import (
	"fmt"
	"math"
)

// WeightTolerance is how far Σweights may stray from 1 (spec.md §3).
const WeightTolerance = 1e-9

// MixtureNode is Σ wᵢ·childᵢ in distribution (not in value): a draw comes
// from childᵢ with probability wᵢ.
type MixtureNode struct {
	base
	Items               []Node
	Weights             []float64
	DependencyViolation bool
}

// NewMixture builds a mixture of weighted children. len(weights) must
// equal len(children); weights must be non-negative and sum to 1 within
// WeightTolerance.
func NewMixture(ctx *Context, weights []float64, children ...Node) (*MixtureNode, error) {
	if len(children) == 0 {
		return nil, wrapf(ctx, ErrEmptyChildren, "Mixture: called with no children")
	}
	if len(weights) != len(children) {
		return nil, wrapf(ctx, ErrDomain, "Mixture: %d weights for %d children", len(weights), len(children))
	}
	if err := ctx.checkOwnership(children...); err != nil {
		return nil, err
	}
	sum := 0.0
	for i, w := range weights {
		if w < 0 {
			return nil, wrapf(ctx, ErrDomain, "Mixture: weight %d is negative (%g)", i, w)
		}
		sum += w
	}
	if math.Abs(sum-1) > WeightTolerance {
		return nil, wrapf(ctx, ErrDomain, "Mixture: weights sum to %g, want 1 (tol %g)", sum, WeightTolerance)
	}
	violation, err := checkIndependence(ctx, "Mixture", children)
	if err != nil {
		return nil, err
	}
	n := &MixtureNode{
		base:                base{id: ctx.nextNodeID(), ctx: ctx},
		Items:               append([]Node(nil), children...),
		Weights:             append([]float64(nil), weights...),
		DependencyViolation: violation,
	}
	n.computeAtoms = func() map[uint64]*AtomNode { return unionAtoms(children) }
	return n, nil
}

func (n *MixtureNode) Kind() Kind       { return KindMixture }
func (n *MixtureNode) Children() []Node { return n.Items }
func (n *MixtureNode) String() string {
	s := ""
	for i, c := range n.Items {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%g*%s", n.Weights[i], c)
	}
	return fmt.Sprintf("Mixture(%s)#%d", s, n.id)
}
