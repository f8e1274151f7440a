// File: affine.go
// Role: AffineNode represents a*child + b, a>0 (spec.md §3: negation is
// unsupported, see SPEC_FULL.md's resolved open question #2).
package dag

import (
	"fmt"
	"math"
)

// AffineNode is a*Child + B.
type AffineNode struct {
	base
	A     float64
	Child Node
	B     float64
}

// NewAffine builds Affine(a, child, b). Requires a>0 and a non-NaN/Inf b;
// a<=0 returns ErrNotSupported since the builder surface has no negation
// combinator (spec.md §9); a NaN or infinite b returns ErrDomain.
func NewAffine(ctx *Context, a float64, child Node, b float64) (*AffineNode, error) {
	if err := ctx.checkOwnership(child); err != nil {
		return nil, err
	}
	if a <= 0 {
		return nil, wrapf(ctx, ErrNotSupported, "Affine: scale a=%g must be > 0", a)
	}
	if math.IsNaN(b) || math.IsInf(b, 0) {
		return nil, wrapf(ctx, ErrDomain, "Affine: shift b=%g must be finite", b)
	}
	n := &AffineNode{
		base:  base{id: ctx.nextNodeID(), ctx: ctx},
		A:     a,
		Child: child,
		B:     b,
	}
	n.computeAtoms = func() map[uint64]*AtomNode { return unionAtoms([]Node{child}) }
	return n, nil
}

func (n *AffineNode) Kind() Kind       { return KindAffine }
func (n *AffineNode) Children() []Node { return []Node{n.Child} }
func (n *AffineNode) String() string {
	return fmt.Sprintf("Affine(%g, %s, %g)#%d", n.A, n.Child, n.B, n.id)
}
