// File: convolve.go
// Role: Sum's convolution protocol (spec.md §4.3 "Convolution protocol"):
// size an internal grid from each child's own range estimate, convolve
// pairwise left-to-right (FFT above cfg.fftThreshold points per child, else
// direct), then resample onto the caller's grid.
package density

import (
	"math"

	"github.com/stochbb/stochbb/dag"
	"gonum.org/v1/gonum/dsp/fourier"
)

type childGrid struct {
	lo, hi float64
	pdf    []float64
}

func computeSum(e *Engine, n *dag.SumNode, tmin, tmax float64, count int) (*buffers, error) {
	if n.DependencyViolation {
		return nil, wrapDependencyErr(n.ID())
	}

	nMin := e.cfg.minGrid
	deltaTarget := step(tmin, tmax, count)
	children := make([]childGrid, len(n.Items))
	for i, c := range n.Items {
		lo, hi, err := rangeEstimate(c, e.cfg.epsilon)
		if err != nil {
			return nil, err
		}
		children[i] = childGrid{lo: lo, hi: hi}
		if span := hi - lo; span > 0 {
			cand := span / float64(nMin)
			if cand < deltaTarget {
				deltaTarget = cand
			}
		}
	}
	if deltaTarget <= 0 {
		deltaTarget = e.cfg.epsilon
	}

	for i := range children {
		c := &children[i]
		span := c.hi - c.lo
		m := nMin
		if span > 0 {
			if want := int(math.Ceil(span / deltaTarget)); want > m {
				m = want
			}
			c.hi = c.lo + float64(m)*deltaTarget
		} else {
			m = 1
		}
		pdf := make([]float64, m)
		if err := e.Density(n.Items[i]).Eval(c.lo, c.hi, pdf); err != nil {
			return nil, err
		}
		c.pdf = pdf
	}

	acc := children[0]
	for i := 1; i < len(children); i++ {
		acc = convolvePair(e, acc, children[i], deltaTarget)
	}

	result := &buffers{
		pdf: resample(acc.lo, acc.hi, acc.pdf, tmin, tmax, count),
	}
	result.cdf = cumulativeFromPdf(result.pdf, step(tmin, tmax, count))
	return result, nil
}

// convolvePair convolves two pdfs sampled at uniform spacing h, returning
// the sum's pdf from a.lo+b.lo onward at the same spacing.
func convolvePair(e *Engine, a, b childGrid, h float64) childGrid {
	out := make([]float64, len(a.pdf)+len(b.pdf)-1)
	if len(a.pdf) > e.cfg.fftThreshold || len(b.pdf) > e.cfg.fftThreshold {
		out = convolveFFT(a.pdf, b.pdf)
	} else {
		convolveDirect(a.pdf, b.pdf, out)
	}
	for i := range out {
		out[i] *= h
	}
	lo := a.lo + b.lo
	return childGrid{lo: lo, hi: lo + float64(len(out))*h, pdf: out}
}

func convolveDirect(a, b, out []float64) {
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}
}

// convolveFFT convolves a and b via zero-padded real FFTs (gonum/dsp/fourier),
// used above cfg.fftThreshold points per child to keep Sum tractable for
// wide grids (spec.md §4.3: "Implementations may use FFT...").
func convolveFFT(a, b []float64) []float64 {
	n := len(a) + len(b) - 1
	size := nextPow2(n)

	pa := make([]float64, size)
	pb := make([]float64, size)
	copy(pa, a)
	copy(pb, b)

	fa := fourier.NewFFT(size)
	ca := fa.Coefficients(nil, pa)
	cb := fa.Coefficients(nil, pb)
	for i := range ca {
		ca[i] *= cb[i]
	}
	conv := fa.Sequence(nil, ca)

	out := make([]float64, n)
	copy(out, conv[:n])
	for i := range out {
		out[i] /= float64(size)
	}
	return out
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// resample linearly interpolates src (sampled uniformly on [srcLo,srcHi])
// onto a fresh uniform grid of n points over [dstLo,dstHi], zero outside
// the source's support.
func resample(srcLo, srcHi float64, src []float64, dstLo, dstHi float64, n int) []float64 {
	out := make([]float64, n)
	if len(src) == 0 {
		return out
	}
	srcStep := step(srcLo, srcHi, len(src))
	dstStep := step(dstLo, dstHi, n)
	for i := 0; i < n; i++ {
		t := dstLo + float64(i)*dstStep
		out[i] = interpAt(srcLo, srcStep, src, t)
	}
	return out
}

func interpAt(srcLo, srcStep float64, src []float64, t float64) float64 {
	if srcStep <= 0 {
		if t == srcLo && len(src) > 0 {
			return src[0]
		}
		return 0
	}
	pos := (t - srcLo) / srcStep
	if pos < 0 || pos >= float64(len(src)-1) {
		if pos >= float64(len(src)-1) && pos < float64(len(src)) {
			return src[len(src)-1]
		}
		return 0
	}
	i := int(pos)
	frac := pos - float64(i)
	return src[i]*(1-frac) + src[i+1]*frac
}

func wrapDependencyErr(id uint64) error {
	return ErrDependent
}
