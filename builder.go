// File: builder.go
// Role: Builder is the public facade (spec.md §6 "Builder API"), promoted
// to the module root since this module IS the builder: every factory here
// is a thin wrapper. The atom factories resolve Arg parameters and call
// dag.NewAtom; the combinator factories delegate to package simplify
// (which in turn falls back to package dag for the irreducible structural
// node).
package stochbb

import (
	"github.com/stochbb/stochbb/dag"
	"github.com/stochbb/stochbb/simplify"
)

// Builder owns a dag.Context and is the entry point for constructing a
// random-variable expression DAG. Safe for concurrent use: every factory
// delegates to dag.Context, which guards its own state with a mutex.
type Builder struct {
	ctx *dag.Context
}

// New builds a Builder with a fresh dag.Context, configured by opts (e.g.
// dag.WithDependencyPolicy, dag.WithLogger).
func New(opts ...dag.ContextOption) *Builder {
	return &Builder{ctx: dag.NewContext(opts...)}
}

// Context returns the underlying dag.Context, for callers that need direct
// access to package dag or density/sample's lower-level APIs.
func (b *Builder) Context() *dag.Context { return b.ctx }

// Gamma builds a Gamma(k, theta) atom; k and theta may be scalars or Nodes
// (making the atom compound).
func (b *Builder) Gamma(k, theta Arg) (dag.Node, error) {
	return b.atom(dag.FamilyGamma, k, theta)
}

// Normal builds a Normal(mu, sigma) atom.
func (b *Builder) Normal(mu, sigma Arg) (dag.Node, error) {
	return b.atom(dag.FamilyNormal, mu, sigma)
}

// Uniform builds a Uniform(a, b) atom.
func (b *Builder) Uniform(a, bound Arg) (dag.Node, error) {
	return b.atom(dag.FamilyUniform, a, bound)
}

// Delta builds a point mass at c.
func (b *Builder) Delta(c Arg) (dag.Node, error) {
	return b.atom(dag.FamilyDelta, c)
}

func (b *Builder) atom(f dag.FamilyKind, args ...Arg) (dag.Node, error) {
	params := make([]dag.Param, len(args))
	for i, a := range args {
		p, err := toParam(a)
		if err != nil {
			return nil, err
		}
		params[i] = p
	}
	return dag.NewAtom(b.ctx, f, params...)
}

// Sum builds the (simplified) sum of independent children.
func (b *Builder) Sum(children ...dag.Node) (dag.Node, error) {
	return simplify.Sum(b.ctx, children...)
}

// Chain is sugar for Sum (spec.md §6).
func (b *Builder) Chain(children ...dag.Node) (dag.Node, error) {
	return simplify.Chain(b.ctx, children...)
}

// Scale builds a*X + shift, the affine scale operator.
func (b *Builder) Scale(a float64, x dag.Node, shift float64) (dag.Node, error) {
	return simplify.Affine(b.ctx, a, x, shift)
}

// Min builds the pointwise minimum of independent children.
func (b *Builder) Min(children ...dag.Node) (dag.Node, error) {
	return simplify.Min(b.ctx, children...)
}

// Max builds the pointwise maximum of independent children.
func (b *Builder) Max(children ...dag.Node) (dag.Node, error) {
	return simplify.Max(b.ctx, children...)
}

// Minimum is the binary form of Min (spec.md §6).
func (b *Builder) Minimum(x, y dag.Node) (dag.Node, error) {
	return simplify.Min(b.ctx, x, y)
}

// Maximum is the binary form of Max (spec.md §6).
func (b *Builder) Maximum(x, y dag.Node) (dag.Node, error) {
	return simplify.Max(b.ctx, x, y)
}

// Weighted pairs a mixture component with its weight; W is the usual way
// to build one.
type Weighted = simplify.Weighted

// W builds a Weighted mixture component.
func W(weight float64, node dag.Node) Weighted {
	return Weighted{Weight: weight, Node: node}
}

// Mixture builds a weighted mixture of independent components.
func (b *Builder) Mixture(components ...Weighted) (dag.Node, error) {
	return simplify.Mixture(b.ctx, components...)
}

// CondChain builds "if A<B then U else V" (spec.md glossary).
func (b *Builder) CondChain(a, cond dag.Node, u, v dag.Node) (dag.Node, error) {
	return simplify.CondChain(b.ctx, a, cond, u, v)
}
