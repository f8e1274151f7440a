// File: param.go
// Role: Arg lets every Builder factory accept either a scalar or another
// Node wherever the spec allows "k, θ are scalars or nodes" (spec.md §6).
package stochbb

import (
	"fmt"

	"github.com/stochbb/stochbb/dag"
)

// Arg is a family parameter as the Builder API accepts it: a float64, an
// int (for callers passing literal integers), or a dag.Node making the
// parameter compound.
type Arg interface{}

func toParam(v Arg) (dag.Param, error) {
	switch x := v.(type) {
	case float64:
		return dag.C(x), nil
	case int:
		return dag.C(float64(x)), nil
	case dag.Node:
		return dag.FromNode(x), nil
	default:
		return dag.Param{}, fmt.Errorf("stochbb: unsupported argument type %T (want float64, int, or dag.Node)", v)
	}
}
