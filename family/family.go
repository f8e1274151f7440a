// Package family is the atom catalog: analytic pdf/cdf/inverse-CDF and
// quantile-range estimation for the primitive distribution families a
// StochBB atom can carry (Gamma, Normal, Uniform, Delta).
//
// Every Family forwards its heavy math to gonum.org/v1/gonum/stat/distuv
// where a matching distribution exists; Delta is the one family with no
// distuv counterpart (a point mass is not a continuous distribution) and
// is implemented directly.
//
// Families only know about their own scalar parameters — whether a node
// built on top of a Family is "compound" (parameters that are themselves
// random variables) is a concern of package dag and package density, not
// of this package. A Family here always means "parameters fixed now".
package family

import "fmt"

// Family is the analytic surface every atom family exposes.
type Family interface {
	// Name identifies the family for error messages and String().
	Name() string

	// Pdf evaluates the probability density at t.
	Pdf(t float64) float64

	// Cdf evaluates the cumulative distribution at t.
	Cdf(t float64) float64

	// InvCdf evaluates the quantile function at u in (0,1). Behavior at
	// the open interval's boundary is family-specific; callers should not
	// pass u<=0 or u>=1.
	InvCdf(u float64) float64

	// RangeEst returns (lo, hi) such that P(X<lo) <= eps/2 and
	// P(X>hi) <= eps/2.
	RangeEst(eps float64) (lo, hi float64)

	// String renders the family with its parameters, e.g. "Gamma(3, 10)".
	String() string
}

// ErrDomain is returned by family constructors when a parameter is
// outside the family's valid domain (sigma<=0, k<=0, a>=b, ...).
type ErrDomain struct {
	Family string
	Reason string
}

func (e *ErrDomain) Error() string {
	return fmt.Sprintf("family: invalid %s parameters: %s", e.Family, e.Reason)
}

// clampUnit guards against exact 0/1 reaching distuv.Quantile, which is
// undefined (±Inf) there; callers of InvCdf are documented against passing
// such values, but the Gamma, Normal and Uniform InvCdf methods clamp
// regardless since the sampler's uniform draw can land exactly on 0.
func clampUnit(u float64) float64 {
	const tiny = 1e-12
	if u < tiny {
		return tiny
	}
	if u > 1-tiny {
		return 1 - tiny
	}
	return u
}
