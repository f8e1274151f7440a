// Package stochbb builds and evaluates algebraic expressions over
// independent (and selectively dependent) random variables: sums, minima,
// maxima, mixtures, affine rescalings, and conditional chains over a small
// atom catalog (Gamma, Normal, Uniform, Delta).
//
// A Builder constructs a DAG of Nodes, applying algebraic simplification
// as it goes (equal-rate Gamma sums and Normal sums collapse to a single
// atom, delta children absorb into an affine shift, nested sums/mins/maxes
// flatten). The DAG is handed to a density.Engine for pdf/cdf evaluation
// or to a sample.ExactSampler for dependency-respecting joint draws.
//
// Apart from Weighted (an alias of simplify.Weighted), this root package
// re-exports nothing: dag, family, simplify,
// density, and sample are usable standalone by callers who want the DAG
// model, the atom catalog, or the evaluation engines without the facade.
//
//	dag/       — the Node tagged union, Context, and its independence
//	             invariants
//	family/    — the atom catalog (Gamma, Normal, Uniform, Delta) wrapping
//	             gonum/stat/distuv
//	simplify/  — algebraic rewrite rules applied at construction time
//	density/   — pdf/cdf evaluation: direct, quadrature, convolution
//	             (gonum/dsp/fourier above a size threshold), and pointwise
//	             combination
//	sample/    — joint (ExactSampler) and marginal (MarginalSampler)
//	             samplers
package stochbb
