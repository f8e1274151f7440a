// Package sample draws joint and marginal samples from a random-variable
// DAG (spec.md §4.4). ExactSampler realizes every atom in a dependency-
// respecting order once per draw and evaluates every requested target from
// that shared realization, which is what lets two targets sharing an atom
// come out correlated the way the algebra implies. MarginalSampler instead
// inverts a single node's own numerical cdf and makes no joint guarantee.
package sample
