// File: combine.go
// Role: raw (unsimplified) constructors for Sum, Min, Max — the three
// n-ary independent-children combinators — plus the shared dependency
// check spec.md §3 invariant 3 requires of all of them.
//
// These constructors do not flatten nested sums, absorb deltas, or
// recognize closed-form families; that rewriting lives in package
// simplify, which calls these once it has decided on the final child
// list. Keeping the invariant check here (rather than in simplify) means
// it is enforced no matter which package ends up building a node.
package dag

import "fmt"

// checkIndependence enforces spec.md §3 invariant 3 according to the
// Context's configured DependencyPolicy. It returns whether construction
// should proceed with the node flagged as a dependency violation (true
// only under PolicyReroute), or an error if the policy rejects it.
func checkIndependence(ctx *Context, combinator string, children []Node) (violation bool, err error) {
	ok, nodeA, nodeB, atom := disjoint(children)
	if ok {
		return false, nil
	}
	switch ctx.Policy() {
	case PolicyReject:
		return false, wrapf(ctx, ErrDependency, "%s: node %d and node %d share atom %d", combinator, nodeA, nodeB, atom)
	case PolicyReroute:
		ctx.Logger().Warnf("%s: node %d and node %d share atom %d; density() will be rejected, sampling remains valid", combinator, nodeA, nodeB, atom)
		return true, nil
	case PolicyIntegrateOut:
		return false, wrapf(ctx, ErrNotSupported, "%s: node %d and node %d share atom %d; integrate-out is only implemented for CondChain", combinator, nodeA, nodeB, atom)
	default:
		return false, wrapf(ctx, ErrNotSupported, "%s: unknown dependency policy", combinator)
	}
}

// SumNode is an n-ary sum of independent children.
type SumNode struct {
	base
	Items               []Node
	DependencyViolation bool
}

// NewSum builds Sum(children...). children must be non-empty and (absent
// PolicyReroute) pairwise atom-disjoint.
func NewSum(ctx *Context, children ...Node) (*SumNode, error) {
	if len(children) == 0 {
		return nil, wrapf(ctx, ErrEmptyChildren, "Sum: called with no children")
	}
	if err := ctx.checkOwnership(children...); err != nil {
		return nil, err
	}
	violation, err := checkIndependence(ctx, "Sum", children)
	if err != nil {
		return nil, err
	}
	n := &SumNode{
		base:                base{id: ctx.nextNodeID(), ctx: ctx},
		Items:               append([]Node(nil), children...),
		DependencyViolation: violation,
	}
	n.computeAtoms = func() map[uint64]*AtomNode { return unionAtoms(children) }
	return n, nil
}

func (n *SumNode) Kind() Kind       { return KindSum }
func (n *SumNode) Children() []Node { return n.Items }
func (n *SumNode) String() string   { return fmt.Sprintf("Sum(%s)#%d", joinNodes(n.Items), n.id) }

// MinNode is the pointwise minimum of independent children.
type MinNode struct {
	base
	Items               []Node
	DependencyViolation bool
}

// NewMin builds Min(children...).
func NewMin(ctx *Context, children ...Node) (*MinNode, error) {
	if len(children) == 0 {
		return nil, wrapf(ctx, ErrEmptyChildren, "Min: called with no children")
	}
	if err := ctx.checkOwnership(children...); err != nil {
		return nil, err
	}
	violation, err := checkIndependence(ctx, "Min", children)
	if err != nil {
		return nil, err
	}
	n := &MinNode{
		base:                base{id: ctx.nextNodeID(), ctx: ctx},
		Items:               append([]Node(nil), children...),
		DependencyViolation: violation,
	}
	n.computeAtoms = func() map[uint64]*AtomNode { return unionAtoms(children) }
	return n, nil
}

func (n *MinNode) Kind() Kind       { return KindMin }
func (n *MinNode) Children() []Node { return n.Items }
func (n *MinNode) String() string   { return fmt.Sprintf("Min(%s)#%d", joinNodes(n.Items), n.id) }

// MaxNode is the pointwise maximum of independent children.
type MaxNode struct {
	base
	Items               []Node
	DependencyViolation bool
}

// NewMax builds Max(children...).
func NewMax(ctx *Context, children ...Node) (*MaxNode, error) {
	if len(children) == 0 {
		return nil, wrapf(ctx, ErrEmptyChildren, "Max: called with no children")
	}
	if err := ctx.checkOwnership(children...); err != nil {
		return nil, err
	}
	violation, err := checkIndependence(ctx, "Max", children)
	if err != nil {
		return nil, err
	}
	n := &MaxNode{
		base:                base{id: ctx.nextNodeID(), ctx: ctx},
		Items:               append([]Node(nil), children...),
		DependencyViolation: violation,
	}
	n.computeAtoms = func() map[uint64]*AtomNode { return unionAtoms(children) }
	return n, nil
}

func (n *MaxNode) Kind() Kind       { return KindMax }
func (n *MaxNode) Children() []Node { return n.Items }
func (n *MaxNode) String() string   { return fmt.Sprintf("Max(%s)#%d", joinNodes(n.Items), n.id) }

func joinNodes(nodes []Node) string {
	s := ""
	for i, n := range nodes {
		if i > 0 {
			s += ", "
		}
		s += n.String()
	}
	return s
}
