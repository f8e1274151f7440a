// Package dag is the random-variable expression DAG at the heart of
// StochBB: typed nodes (Atom, Affine, Sum, Min, Max, Mixture, CondChain),
// structural identity, parent/child wiring, and the atom registry that
// lets the joint sampler (package sample) find which random draws two
// otherwise-unrelated expressions actually share.
//
// Nodes are owned by a Context (the analogue of lvlath/core's Graph):
// every combinator that builds a node takes a *Context, and a Node is
// only ever combined with other nodes built by the same Context — mixing
// nodes from two contexts is rejected with ErrForeignNode, the same way
// core.Graph rejects operating on a foreign Vertex.
//
// This package only builds and validates nodes; it holds no opinion on
// how a node's density is computed (package density) or how it is
// sampled (package sample). Its one piece of non-structural policy is
// the dependency check of §3 invariant 3 (Sum/Min/Max/Mixture siblings
// must not share an atom), which is configurable per Context via
// WithDependencyPolicy because the spec leaves the resolution of shared
// atoms as an open design question (see SPEC_FULL.md).
package dag
