// File: errors.go
// Role: sentinel errors for package sample.
package sample

import "errors"

// ErrCycleDetected reports a cycle in the compound-parameter dependency
// graph, which should be unreachable since dag.Context assigns node IDs in
// strictly increasing construction order and a node can only reference
// nodes that already exist; kept as a defensive sentinel the way
// dfs.TopologicalSort keeps one for its own graphs.
var ErrCycleDetected = errors.New("sample: cycle detected among atom dependencies")

// ErrUnsupportedKind reports a dag.Kind the forward evaluator does not
// know how to realize; unreachable for any node built through package dag.
var ErrUnsupportedKind = errors.New("sample: unsupported node kind")

// ErrDependencyViolation reports that a Min/Max/Sum/Mixture node was built
// under PolicyReroute with a flagged dependency violation. Sampling such a
// node is explicitly valid (spec.md §9); this sentinel exists only for
// MarginalSampler, which goes through density and must refuse.
var ErrDependencyViolation = errors.New("sample: node requires density(), which is undefined for a dependency-violating node")
