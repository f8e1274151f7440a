// File: minmax.go
// Role: Min/Max flatten nested same-kind children (rule 1) but, per rule
// 6, do NOT rewrite Delta children specially — a Min/Max touching a Delta
// is left for density's numerical path to handle via truncation against
// the other children's CDFs.
package simplify

import "github.com/stochbb/stochbb/dag"

// Min builds the pointwise minimum, flattening nested Min children.
func Min(ctx *dag.Context, children ...dag.Node) (dag.Node, error) {
	if len(children) == 0 {
		return nil, dag.ErrEmptyChildren
	}
	var flat []dag.Node
	for _, c := range children {
		if m, ok := c.(*dag.MinNode); ok {
			flat = append(flat, m.Items...)
		} else {
			flat = append(flat, c)
		}
	}
	if len(flat) == 1 {
		return flat[0], nil
	}
	return dag.NewMin(ctx, flat...)
}

// Max builds the pointwise maximum, flattening nested Max children.
func Max(ctx *dag.Context, children ...dag.Node) (dag.Node, error) {
	if len(children) == 0 {
		return nil, dag.ErrEmptyChildren
	}
	var flat []dag.Node
	for _, c := range children {
		if m, ok := c.(*dag.MaxNode); ok {
			flat = append(flat, m.Items...)
		} else {
			flat = append(flat, c)
		}
	}
	if len(flat) == 1 {
		return flat[0], nil
	}
	return dag.NewMax(ctx, flat...)
}
