// File: errors.go
// Role: sentinel errors for package dag.
//
// Error policy (matches lvlath/builder):
//   - Only sentinel variables are exported; callers branch with errors.Is.
//   - Sentinels are never themselves formatted with call-site data.
//   - Constructors wrap a sentinel with %w and attach node identities.
package dag

import "errors"

// ErrDependency reports that two or more siblings of a Sum/Min/Max/Mixture
// share an atom in their transitive atom set — spec.md §3 invariant 3.
var ErrDependency = errors.New("dag: children are not independent (shared atom)")

// ErrDomain reports an out-of-domain parameter: sigma<=0, k<=0, a>=b for
// Uniform, a wrong parameter count, a non-finite Affine shift, or mixture
// weights that are negative or don't sum to 1. A non-positive Affine scale
// is ErrNotSupported; an invalid grid (Tmin>=Tmax, N<=0) is
// density.ErrBadGrid.
var ErrDomain = errors.New("dag: parameter out of domain")

// ErrNotSupported reports a combination the engine does not currently
// handle — e.g. Affine with a non-positive scale (negation is absent from
// the builder surface by design, spec.md §9).
var ErrNotSupported = errors.New("dag: operation not supported")

// ErrForeignNode reports that a Node passed to a combinator was built by a
// different Context. Contexts do not share atom registries, so comparing
// or combining their nodes would silently violate atom identity.
var ErrForeignNode = errors.New("dag: node belongs to a different context")

// ErrEmptyChildren reports that a combinator requiring at least one child
// (Sum, Min, Max, Mixture) was called with none.
var ErrEmptyChildren = errors.New("dag: combinator requires at least one child")
