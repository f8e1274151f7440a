// File: affine.go
// Role: rule 3 (affine composition) and the trivial-identity collapse
// that keeps Affine(1, x, 0) from ever appearing in a simplified tree.
package simplify

import "github.com/stochbb/stochbb/dag"

// Affine builds a*child + b, composing through any Affine child (rule 3:
// Affine(a1, Affine(a2, x, b2), b1) -> Affine(a1*a2, x, a1*b2+b1)) and
// collapsing the identity Affine(1, x, 0) to x directly.
func Affine(ctx *dag.Context, a float64, child dag.Node, b float64) (dag.Node, error) {
	x := child
	for x.Kind() == dag.KindAffine {
		inner := x.(*dag.AffineNode)
		a, b = a*inner.A, a*inner.B+b
		x = inner.Child
	}
	if a == 1 && b == 0 {
		return x, nil
	}
	return dag.NewAffine(ctx, a, x, b)
}
