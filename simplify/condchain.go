// File: condchain.go
// Role: rule 7's degenerate case. The general case (reducing to a mixture
// weighted by P(A<B)) is not a structural rewrite simplify can perform,
// since that weight is only known once A and B have densities — it is
// computed by density.Engine's CondChain strategy instead (spec.md §4.3).
package simplify

import "github.com/stochbb/stochbb/dag"

// CondChain builds "if A<B then U else V", collapsing to U directly when
// U and V are the same node (the branch choice is irrelevant).
func CondChain(ctx *dag.Context, a, b, u, v dag.Node) (dag.Node, error) {
	if u.ID() == v.ID() {
		return u, nil
	}
	return dag.NewCondChain(ctx, a, b, u, v)
}
