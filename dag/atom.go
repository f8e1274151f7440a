// File: atom.go
// Role: AtomNode — the leaf of the DAG, and the unit of identity the rest
// of the engine reasons about (spec.md §3: "two independently-constructed
// gamma(3,10) are different atoms").
//
// An AtomNode carries its family (Gamma/Normal/Uniform/Delta) as a tag
// plus a slice of Params in the family's canonical parameter order. When
// every Param is constant the atom is "simple" and density.Engine can
// build its family.Family once and cache it; when any Param is node-
// valued the atom is "compound" and density.Engine must integrate over
// that parameter's own density (spec.md §4.1/§4.3).
package dag

import (
	"fmt"
	"strings"

	"github.com/stochbb/stochbb/family"
)

// FamilyKind tags which analytic family an AtomNode carries.
type FamilyKind int

const (
	FamilyGamma FamilyKind = iota
	FamilyNormal
	FamilyUniform
	FamilyDelta
)

func (f FamilyKind) String() string {
	switch f {
	case FamilyGamma:
		return "Gamma"
	case FamilyNormal:
		return "Normal"
	case FamilyUniform:
		return "Uniform"
	case FamilyDelta:
		return "Delta"
	default:
		return "Unknown"
	}
}

// ParamCount is how many scalar parameters each family takes, in the
// order Instantiate expects them.
func (f FamilyKind) ParamCount() int {
	if f == FamilyDelta {
		return 1
	}
	return 2
}

// AtomNode is an independent primitive random variable: a leaf of the DAG.
type AtomNode struct {
	base
	Family FamilyKind
	Params []Param
}

// NewAtom builds an atom of the given family with the given parameters.
// params must match FamilyKind.ParamCount(). If every param is constant,
// the parameters are validated immediately against the family's domain
// (spec.md §7 DomainError); a compound atom cannot be validated until its
// node-valued parameters are resolved, so validation there is deferred to
// Instantiate, which density.Engine calls per quadrature point.
func NewAtom(ctx *Context, f FamilyKind, params ...Param) (*AtomNode, error) {
	if len(params) != f.ParamCount() {
		return nil, wrapf(ctx, ErrDomain, "%s requires %d parameters, got %d", f, f.ParamCount(), len(params))
	}
	var nodeParams []Node
	for _, p := range params {
		if p.IsNode() {
			nodeParams = append(nodeParams, p.Node())
		}
	}
	if err := ctx.checkOwnership(nodeParams...); err != nil {
		return nil, err
	}

	a := &AtomNode{
		base:   base{id: ctx.nextNodeID(), ctx: ctx},
		Family: f,
		Params: params,
	}
	a.computeAtoms = func() map[uint64]*AtomNode {
		out := map[uint64]*AtomNode{a.id: a}
		for _, p := range a.Params {
			if p.IsNode() {
				for id, dep := range p.Node().Atoms() {
					out[id] = dep
				}
			}
		}
		return out
	}

	if !a.IsCompound() {
		values := make([]float64, len(params))
		for i, p := range params {
			values[i] = p.Value()
		}
		if _, err := a.Instantiate(values); err != nil {
			return nil, err
		}
	}

	ctx.registerAtom(a)
	return a, nil
}

func (a *AtomNode) Kind() Kind         { return KindAtom }
func (a *AtomNode) Children() []Node {
	var out []Node
	for _, p := range a.Params {
		if p.IsNode() {
			out = append(out, p.Node())
		}
	}
	return out
}

// IsCompound reports whether any parameter is node-valued.
func (a *AtomNode) IsCompound() bool {
	for _, p := range a.Params {
		if p.IsNode() {
			return true
		}
	}
	return false
}

// Instantiate builds the concrete family.Family for this atom given fully
// resolved scalar parameter values, in Params order. For a simple atom,
// values are just each Param's constant; for a compound atom, density and
// sample substitute a quadrature point or a drawn value for each
// node-valued parameter.
func (a *AtomNode) Instantiate(values []float64) (family.Family, error) {
	if len(values) != len(a.Params) {
		return nil, wrapf(a.ctx, ErrDomain, "atom %d: expected %d parameter values, got %d", a.id, len(a.Params), len(values))
	}
	var (
		fam family.Family
		err error
	)
	switch a.Family {
	case FamilyGamma:
		fam, err = family.NewGamma(values[0], values[1])
	case FamilyNormal:
		fam, err = family.NewNormal(values[0], values[1])
	case FamilyUniform:
		fam, err = family.NewUniform(values[0], values[1])
	case FamilyDelta:
		fam = family.NewDelta(values[0])
	default:
		return nil, wrapf(a.ctx, ErrNotSupported, "unknown family %v", a.Family)
	}
	if err != nil {
		return nil, wrapf(a.ctx, ErrDomain, "atom %d (%s): %v", a.id, a.Family, err)
	}
	return fam, nil
}

func (a *AtomNode) String() string {
	parts := make([]string, len(a.Params))
	for i, p := range a.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("%s(%s)#%d", a.Family, strings.Join(parts, ", "), a.id)
}
