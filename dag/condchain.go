// File: condchain.go
// Role: CondChainNode — "if A < B then U else V" (spec.md glossary). Unlike
// Sum/Min/Max/Mixture, CondChain's four children are explicitly allowed to
// share atoms: that is the combinator's reason to exist (spec.md §9,
// "Design Notes"). No independence check is performed here.
package dag

import "fmt"

// CondChainNode is the random variable equal to U when A<B, else V.
type CondChainNode struct {
	base
	A, B, U, V Node
}

// NewCondChain builds CondChain(A,B,U,V). All four nodes must belong to
// ctx; they may share atoms freely.
func NewCondChain(ctx *Context, a, b, u, v Node) (*CondChainNode, error) {
	if err := ctx.checkOwnership(a, b, u, v); err != nil {
		return nil, err
	}
	n := &CondChainNode{
		base: base{id: ctx.nextNodeID(), ctx: ctx},
		A:    a, B: b, U: u, V: v,
	}
	n.computeAtoms = func() map[uint64]*AtomNode { return unionAtoms([]Node{a, b, u, v}) }
	return n, nil
}

func (n *CondChainNode) Kind() Kind       { return KindCondChain }
func (n *CondChainNode) Children() []Node { return []Node{n.A, n.B, n.U, n.V} }
func (n *CondChainNode) String() string {
	return fmt.Sprintf("CondChain(%s, %s, %s, %s)#%d", n.A, n.B, n.U, n.V, n.id)
}
