// File: density.go
// Role: Density is the per-node cached evaluator spec.md §4.3 describes:
// Eval/EvalCDF fill caller-owned buffers on a chosen grid, RangeEst gives
// a quantile-interval support estimate independent of any grid.
package density

import (
	"sync"

	"github.com/stochbb/stochbb/dag"
)

type buffers struct {
	pdf, cdf []float64
}

// Density is the lazily-computed, cached evaluator for one dag.Node.
// Obtained via Engine.Density and safe for concurrent use: buffer
// construction for a given grid happens once (one-writer/many-reader),
// per spec.md §5.
type Density struct {
	engine *Engine
	node   dag.Node

	mu    sync.Mutex
	cache map[gridKey]*buffers
}

// Eval fills out with N=len(out) samples of the pdf on the uniform grid
// t_i = Tmin + i*(Tmax-Tmin)/N.
func (d *Density) Eval(tmin, tmax float64, out []float64) error {
	buf, err := d.get(tmin, tmax, len(out))
	if err != nil {
		return err
	}
	copy(out, buf.pdf)
	return nil
}

// EvalCDF fills out with N=len(out) samples of the cdf on the same grid.
func (d *Density) EvalCDF(tmin, tmax float64, out []float64) error {
	buf, err := d.get(tmin, tmax, len(out))
	if err != nil {
		return err
	}
	copy(out, buf.cdf)
	return nil
}

// RangeEst returns (lo, hi) such that P(X<lo) <= eps/2 and P(X>hi) <=
// eps/2, computed structurally (spec.md §4.3's recursive table), not from
// any cached grid.
func (d *Density) RangeEst(eps float64) (lo, hi float64, err error) {
	lo, hi, err = rangeEstimate(d.node, eps)
	if err != nil {
		d.engine.cfg.logger.Errorf("density: node %d: %v", d.node.ID(), err)
	}
	return lo, hi, err
}

// Node returns the dag.Node this Density was built for.
func (d *Density) Node() dag.Node { return d.node }

func (d *Density) get(tmin, tmax float64, n int) (*buffers, error) {
	if err := validateGrid(tmin, tmax, n); err != nil {
		d.engine.cfg.logger.Errorf("density: node %d: %v", d.node.ID(), err)
		return nil, err
	}
	key := gridKey{tmin: tmin, tmax: tmax, n: n}

	d.mu.Lock()
	defer d.mu.Unlock()
	if buf, ok := d.cache[key]; ok {
		return buf, nil
	}

	buf, err := computeBuffers(d.engine, d.node, tmin, tmax, n)
	if err != nil {
		d.engine.cfg.logger.Errorf("density: node %d: %v", d.node.ID(), err)
		return nil, err
	}
	d.cache[key] = buf
	return buf, nil
}
