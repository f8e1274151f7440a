package family

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform is the Uniform(a, b) family, a<b.
type Uniform struct {
	A, B float64
	u    distuv.Uniform
}

// NewUniform builds a Uniform family over (a, b).
func NewUniform(a, b float64) (*Uniform, error) {
	if a >= b {
		return nil, &ErrDomain{Family: "Uniform", Reason: "a must be < b"}
	}
	return &Uniform{A: a, B: b, u: distuv.Uniform{Min: a, Max: b}}, nil
}

func (d *Uniform) Name() string { return "Uniform" }

func (d *Uniform) Pdf(t float64) float64 {
	if t < d.A || t > d.B {
		return 0
	}
	return d.u.Prob(t)
}

func (d *Uniform) Cdf(t float64) float64 {
	if t < d.A {
		return 0
	}
	if t > d.B {
		return 1
	}
	return d.u.CDF(t)
}

func (d *Uniform) InvCdf(u float64) float64 { return d.u.Quantile(clampUnit(u)) }

func (d *Uniform) RangeEst(eps float64) (lo, hi float64) {
	// The support is exact; eps only matters for families with unbounded tails.
	return d.A, d.B
}

func (d *Uniform) String() string {
	return fmt.Sprintf("Uniform(%g, %g)", d.A, d.B)
}
