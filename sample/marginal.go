// File: marginal.go
// Role: MarginalSampler inverts a single node's own numerical cdf (spec.md
// §4.4) by building a cdf grid through density.Engine and linearly
// interpolating its inverse; it gives no joint guarantee across calls,
// unlike ExactSampler.
package sample

import (
	"github.com/stochbb/stochbb/dag"
	"github.com/stochbb/stochbb/density"
	"golang.org/x/exp/rand"
)

// MarginalSampler draws independent samples from one node's marginal
// distribution at a time.
type MarginalSampler struct {
	cfg config
	eng *density.Engine
	rng *rand.Rand
}

// NewMarginalSampler builds a MarginalSampler backed by eng.
func NewMarginalSampler(eng *density.Engine, opts ...Option) *MarginalSampler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &MarginalSampler{cfg: cfg, eng: eng, rng: rand.New(cfg.src)}
}

// Sample draws one value from node's marginal distribution.
func (m *MarginalSampler) Sample(node dag.Node) (float64, error) {
	if hasDependencyViolation(node) {
		m.cfg.logger.Errorf("sample: node %d: %v", node.ID(), ErrDependencyViolation)
		return 0, ErrDependencyViolation
	}
	d := m.eng.Density(node)
	lo, hi, err := d.RangeEst(1e-4)
	if err != nil {
		m.cfg.logger.Errorf("sample: node %d: %v", node.ID(), err)
		return 0, err
	}
	n := m.cfg.invCdfPoints
	cdf := make([]float64, n)
	if err := d.EvalCDF(lo, hi, cdf); err != nil {
		m.cfg.logger.Errorf("sample: node %d: %v", node.ID(), err)
		return 0, err
	}
	u := m.rng.Float64()
	return invertCDF(lo, hi, cdf, u), nil
}

// SampleN draws n independent marginal samples from node.
func (m *MarginalSampler) SampleN(node dag.Node, n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		v, err := m.Sample(node)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// invertCDF finds t such that cdf(t) ≈ u by linear interpolation over a
// monotone cdf sampled uniformly on [lo,hi].
func invertCDF(lo, hi float64, cdf []float64, u float64) float64 {
	if u <= cdf[0] {
		return lo
	}
	if u >= cdf[len(cdf)-1] {
		return hi
	}
	n := len(cdf)
	h := (hi - lo) / float64(n)
	for i := 1; i < n; i++ {
		if cdf[i] >= u {
			span := cdf[i] - cdf[i-1]
			if span <= 0 {
				return lo + float64(i)*h
			}
			frac := (u - cdf[i-1]) / span
			return lo + (float64(i-1)+frac)*h
		}
	}
	return hi
}

func hasDependencyViolation(node dag.Node) bool {
	switch n := node.(type) {
	case *dag.SumNode:
		return n.DependencyViolation
	case *dag.MinNode:
		return n.DependencyViolation
	case *dag.MaxNode:
		return n.DependencyViolation
	case *dag.MixtureNode:
		return n.DependencyViolation
	default:
		return false
	}
}
