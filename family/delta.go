package family

import (
	"fmt"
	"math"
)

// Delta is a point mass at C. It has no gonum counterpart: a point mass is
// not a continuous distribution, so Pdf/Cdf are defined directly rather
// than forwarded to distuv. Downstream, package simplify absorbs a Delta
// child of a Sum into an Affine shift instead of convolving (spec §4.1);
// Pdf/Cdf here are what the density engine samples when a Delta node is
// evaluated on a grid directly (on its own, or as a child of
// Min/Max/Mixture/CondChain).
type Delta struct {
	C float64
}

// NewDelta builds a point-mass family at c. There is no invalid c.
func NewDelta(c float64) *Delta { return &Delta{C: c} }

func (d *Delta) Name() string { return "Delta" }

// Pdf is formally a Dirac delta; returning +Inf at C and 0 elsewhere is the
// conventional stand-in used by callers that only care about support. A
// density grid with a point exactly at C therefore evaluates to a
// non-finite value there.
func (d *Delta) Pdf(t float64) float64 {
	if t == d.C {
		return math.Inf(1)
	}
	return 0
}

func (d *Delta) Cdf(t float64) float64 {
	if t < d.C {
		return 0
	}
	return 1
}

func (d *Delta) InvCdf(u float64) float64 { return d.C }

func (d *Delta) RangeEst(eps float64) (lo, hi float64) { return d.C, d.C }

func (d *Delta) String() string { return fmt.Sprintf("Delta(%g)", d.C) }
