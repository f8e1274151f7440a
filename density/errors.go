// File: errors.go
// Role: sentinel errors for package density.
package density

import "errors"

// ErrConvergence reports that a quadrature or convolution step produced a
// non-finite value (spec.md §7 ConvergenceError).
var ErrConvergence = errors.New("density: quadrature/convolution did not converge")

// ErrBadGrid reports Tmin>=Tmax or N<=0 (spec.md §7 DomainError, the grid
// half of it).
var ErrBadGrid = errors.New("density: invalid grid (need Tmin<Tmax and N>0)")

// ErrDependent reports that density() was called on a node built under
// PolicyReroute with a flagged dependency violation: sampling such a node
// remains valid, but its density is undefined (spec.md §9).
var ErrDependent = errors.New("density: node shares an atom with a sibling combinator (density undefined, sampling remains valid)")
