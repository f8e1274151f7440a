package family

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// Normal is the Normal(mu, sigma) family.
type Normal struct {
	Mu, Sigma float64
	n         distuv.Normal
}

// NewNormal builds a Normal family with sigma>0.
func NewNormal(mu, sigma float64) (*Normal, error) {
	if sigma <= 0 {
		return nil, &ErrDomain{Family: "Normal", Reason: "sigma must be > 0"}
	}
	return &Normal{Mu: mu, Sigma: sigma, n: distuv.Normal{Mu: mu, Sigma: sigma}}, nil
}

func (d *Normal) Name() string { return "Normal" }

func (d *Normal) Pdf(t float64) float64 { return d.n.Prob(t) }

func (d *Normal) Cdf(t float64) float64 { return d.n.CDF(t) }

func (d *Normal) InvCdf(u float64) float64 { return d.n.Quantile(clampUnit(u)) }

func (d *Normal) RangeEst(eps float64) (lo, hi float64) {
	return d.n.Quantile(eps / 2), d.n.Quantile(1 - eps/2)
}

func (d *Normal) String() string {
	return fmt.Sprintf("Normal(%g, %g)", d.Mu, d.Sigma)
}
