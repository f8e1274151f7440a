// File: range.go
// Role: the grid-independent recursive RangeEst dispatch (spec.md §4.3's
// range-estimation table), mirroring compute.go's Kind switch but working
// purely on structural bounds instead of sampled buffers.
package density

import (
	"math"

	"github.com/stochbb/stochbb/dag"
)

var (
	posInfSentinel = math.Inf(1)
	negInfSentinel = math.Inf(-1)
)

// rangeEstimate recursively estimates (lo, hi) such that the node's mass
// outside [lo,hi] is <= eps, without building any grid.
func rangeEstimate(node dag.Node, eps float64) (lo, hi float64, err error) {
	switch node.Kind() {
	case dag.KindAtom:
		return rangeAtom(node.(*dag.AtomNode), eps)
	case dag.KindAffine:
		return rangeAffine(node.(*dag.AffineNode), eps)
	case dag.KindSum:
		return rangeSum(node.(*dag.SumNode), eps)
	case dag.KindMin:
		return rangeMin(node.(*dag.MinNode), eps)
	case dag.KindMax:
		return rangeMax(node.(*dag.MaxNode), eps)
	case dag.KindMixture:
		return rangeMixture(node.(*dag.MixtureNode), eps)
	case dag.KindCondChain:
		return rangeCondChain(node.(*dag.CondChainNode), eps)
	default:
		return 0, 0, ErrBadGrid
	}
}

// rangeAtom handles both simple atoms (direct family.RangeEst) and compound
// atoms (cartesian corner evaluation over each node-valued parameter's own
// range, per spec.md §4.3: "for a compound atom, estimate range over the
// cartesian product of each parameter's own range").
func rangeAtom(a *dag.AtomNode, eps float64) (lo, hi float64, err error) {
	if !a.IsCompound() {
		values := make([]float64, len(a.Params))
		for i, p := range a.Params {
			values[i] = p.Value()
		}
		fam, err := a.Instantiate(values)
		if err != nil {
			return 0, 0, err
		}
		lo, hi = fam.RangeEst(eps)
		return lo, hi, nil
	}

	// corners[i] holds the candidate values for parameter i: a single
	// constant, or {lo,hi} of the backing node's own range.
	corners := make([][]float64, len(a.Params))
	for i, p := range a.Params {
		if !p.IsNode() {
			corners[i] = []float64{p.Value()}
			continue
		}
		plo, phi, err := rangeEstimate(p.Node(), eps)
		if err != nil {
			return 0, 0, err
		}
		if plo == phi {
			corners[i] = []float64{plo}
		} else {
			corners[i] = []float64{plo, phi}
		}
	}

	lo, hi = posInfSentinel, negInfSentinel
	values := make([]float64, len(a.Params))
	var walk func(i int) error
	walk = func(i int) error {
		if i == len(corners) {
			fam, err := a.Instantiate(append([]float64(nil), values...))
			if err != nil {
				return err
			}
			clo, chi := fam.RangeEst(eps)
			if clo < lo {
				lo = clo
			}
			if chi > hi {
				hi = chi
			}
			return nil
		}
		for _, v := range corners[i] {
			values[i] = v
			if err := walk(i + 1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(0); err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

func rangeAffine(n *dag.AffineNode, eps float64) (lo, hi float64, err error) {
	clo, chi, err := rangeEstimate(n.Child, eps)
	if err != nil {
		return 0, 0, err
	}
	return n.A*clo + n.B, n.A*chi + n.B, nil
}

func rangeSum(n *dag.SumNode, eps float64) (lo, hi float64, err error) {
	for _, c := range n.Items {
		clo, chi, err := rangeEstimate(c, eps)
		if err != nil {
			return 0, 0, err
		}
		lo += clo
		hi += chi
	}
	return lo, hi, nil
}

func rangeMin(n *dag.MinNode, eps float64) (lo, hi float64, err error) {
	return envelopeMin(n.Items, eps)
}

func rangeMax(n *dag.MaxNode, eps float64) (lo, hi float64, err error) {
	return envelopeMax(n.Items, eps)
}

func rangeMixture(n *dag.MixtureNode, eps float64) (lo, hi float64, err error) {
	return envelopeUnion(n.Items, eps)
}

func rangeCondChain(n *dag.CondChainNode, eps float64) (lo, hi float64, err error) {
	return envelopeUnion([]dag.Node{n.U, n.V}, eps)
}

func envelopeMin(nodes []dag.Node, eps float64) (lo, hi float64, err error) {
	lo, hi = posInfSentinel, posInfSentinel
	for _, n := range nodes {
		clo, chi, err := rangeEstimate(n, eps)
		if err != nil {
			return 0, 0, err
		}
		if clo < lo {
			lo = clo
		}
		if chi < hi {
			hi = chi
		}
	}
	return lo, hi, nil
}

func envelopeMax(nodes []dag.Node, eps float64) (lo, hi float64, err error) {
	lo, hi = negInfSentinel, negInfSentinel
	for _, n := range nodes {
		clo, chi, err := rangeEstimate(n, eps)
		if err != nil {
			return 0, 0, err
		}
		if clo > lo {
			lo = clo
		}
		if chi > hi {
			hi = chi
		}
	}
	return lo, hi, nil
}

func envelopeUnion(nodes []dag.Node, eps float64) (lo, hi float64, err error) {
	lo, hi = posInfSentinel, negInfSentinel
	for _, n := range nodes {
		clo, chi, err := rangeEstimate(n, eps)
		if err != nil {
			return 0, 0, err
		}
		if clo < lo {
			lo = clo
		}
		if chi > hi {
			hi = chi
		}
	}
	return lo, hi, nil
}
