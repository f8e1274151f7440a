// Package simplify is the algebraic rewrite engine applied at build time
// whenever a combinator (Sum/Affine/Min/Max/Mixture/CondChain) is invoked
// (spec.md §4.2). It plays the role lvlath/builder plays for core.Graph:
// core (here, package dag) defines the raw structural types and their
// invariants; simplify decides what the minimally-structured tree for a
// given combinator call actually looks like before handing the final
// child list to dag's raw constructors.
//
// Contract: the node simplify returns is semantically equivalent to the
// combinator call as written, and at least as simple (spec.md §4.2). Each
// individual rule is a local rewrite; Sum, being the richest combinator,
// reaches its rules' fixed point in one pass per call (hoist the shift out
// of unit-scale Affine children, flatten, absorb deltas, then attempt
// closed-form recognition) because its
// children already passed through simplify when they themselves were
// built — nested simplification is not required to reach the global fixed
// point spec.md describes.
package simplify
