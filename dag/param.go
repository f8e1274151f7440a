// File: param.go
// Role: Param is the scalar-or-node argument every atom family parameter
// accepts (spec.md §3: "params are either scalars or child nodes").
package dag

import "fmt"

// Param is a family parameter: either a fixed scalar or a reference to
// another Node in the same Context (making the owning atom compound).
type Param struct {
	node  Node
	value float64
}

// C wraps a constant scalar parameter.
func C(v float64) Param { return Param{value: v} }

// FromNode wraps a node-valued (compound) parameter.
func FromNode(n Node) Param { return Param{node: n} }

// IsNode reports whether this parameter is compound (node-valued).
func (p Param) IsNode() bool { return p.node != nil }

// Node returns the backing node. Only meaningful if IsNode() is true.
func (p Param) Node() Node { return p.node }

// Value returns the constant scalar value. Only meaningful if IsNode() is
// false.
func (p Param) Value() float64 { return p.value }

func (p Param) String() string {
	if p.IsNode() {
		return fmt.Sprintf("<node %d>", p.node.ID())
	}
	return fmt.Sprintf("%g", p.value)
}
