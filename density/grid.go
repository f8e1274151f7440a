// File: grid.go
// Role: grid validation and the uniform-grid helpers every strategy uses.
// linspace and step are direct arithmetic; only allFinite's NaN check is
// delegated to gonum/floats.
package density

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

type gridKey struct {
	tmin, tmax float64
	n          int
}

func validateGrid(tmin, tmax float64, n int) error {
	if !(tmin < tmax) || n <= 0 {
		return ErrBadGrid
	}
	return nil
}

// linspace fills a fresh slice of n samples uniformly over [lo,hi]:
// t_i = lo + i*step, matching spec.md §4.3's "t_i = Tmin + i*Δ" grid
// definition (note: this differs from gonum/floats.Span's inclusive
// endpoint convention, so step is computed explicitly).
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// step returns the grid spacing for n samples over [lo,hi].
func step(lo, hi float64, n int) float64 {
	return (hi - lo) / float64(n)
}

// allFinite reports whether every value in xs is finite, used to detect
// ConvergenceError conditions after quadrature/convolution.
func allFinite(xs []float64) bool {
	if floats.HasNaN(xs) {
		return false
	}
	for _, x := range xs {
		if math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
