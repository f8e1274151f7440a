// File: sum.go
// Role: Sum is the richest combinator — hoisting the shift out of
// unit-scale Affine children, flatten (rule 1), delta absorption (rule 2),
// closed-form recognition (rule 4), in that order, then the structural
// dag.NewSum call for whatever remains.
package simplify

import "github.com/stochbb/stochbb/dag"

// flattenSums expands any direct child that is itself a Sum, in
// construction order (rule 1).
func flattenSums(children []dag.Node) []dag.Node {
	var out []dag.Node
	for _, c := range children {
		if s, ok := c.(*dag.SumNode); ok {
			out = append(out, s.Items...)
		} else {
			out = append(out, c)
		}
	}
	return out
}

// Sum builds the sum of children, applying rules 1, 2, and 4 before
// falling back to dag.NewSum for the irreducible remainder.
func Sum(ctx *dag.Context, children ...dag.Node) (dag.Node, error) {
	if len(children) == 0 {
		return nil, dag.ErrEmptyChildren
	}

	// An Affine(1, x, b) child is x shifted by b (e.g. an earlier sum that
	// absorbed a delta): hoist b into the shift so that x itself takes part
	// in flattening and closed-form recognition.
	shift := 0.0
	unwrapped := make([]dag.Node, len(children))
	for i, c := range children {
		if aff, ok := c.(*dag.AffineNode); ok && aff.A == 1 {
			shift += aff.B
			c = aff.Child
		}
		unwrapped[i] = c
	}
	flat := flattenSums(unwrapped)

	// Rule 2: delta absorption. Deltas contribute a constant shift and
	// drop out of the independent-children set entirely (a point mass
	// cannot share an atom with anything, so removing it never changes
	// the independence check on the rest).
	rest := make([]dag.Node, 0, len(flat))
	for _, c := range flat {
		if d, ok := asDelta(c); ok {
			shift += d
			continue
		}
		rest = append(rest, c)
	}

	switch len(rest) {
	case 0:
		// Sum of deltas only: a point mass at the total shift.
		return dag.NewAtom(ctx, dag.FamilyDelta, dag.C(shift))
	case 1:
		return Affine(ctx, 1, rest[0], shift)
	}

	// Rule 4: closed-form recognition for the irreducible remainder.
	if collapsed, ok, err := collapseGammaSum(ctx, rest); err != nil {
		return nil, err
	} else if ok {
		return Affine(ctx, 1, collapsed, shift)
	}
	if collapsed, ok, err := collapseNormalSum(ctx, rest); err != nil {
		return nil, err
	} else if ok {
		return Affine(ctx, 1, collapsed, shift)
	}

	sum, err := dag.NewSum(ctx, rest...)
	if err != nil {
		return nil, err
	}
	return Affine(ctx, 1, sum, shift)
}

// Chain is sugar for Sum (spec.md §6: "chain([X,…]) as sugar for Sum([…])").
func Chain(ctx *dag.Context, nodes ...dag.Node) (dag.Node, error) {
	return Sum(ctx, nodes...)
}
