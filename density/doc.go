// Package density is the density engine: for every dag.Node it produces a
// Density object supporting Eval (pdf on a caller-owned grid), EvalCDF
// (cdf), and RangeEst (quantile-interval support estimate) — spec.md §4.3.
//
// Construction strategy dispatches on dag.Node.Kind() exactly as spec.md's
// strategy table describes: atoms evaluate their family directly (or
// integrate over a compound parameter's own grid); Affine rescales and
// shifts its child; Sum convolves; Min/Max/Mixture/CondChain combine
// their children's pdf/cdf pointwise on the shared target grid.
//
// A Density is lazily computed per (Tmin,Tmax,N) grid triple and cached
// on the Engine thereafter (spec.md §4.3, "Density caching"); the cache
// is one-writer/many-reader, matching the concurrency model spec.md §5
// requires of implementations that parallelize convolutions.
package density
