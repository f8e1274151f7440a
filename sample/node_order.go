// File: node_order.go
// Role: a topological ordering over the node DAG reachable from a set of
// sample targets, via Children() edges rather than core.Graph edges. The
// three-color (White/Gray/Black) DFS idiom is carried over from
// dfs.TopologicalSort with the edge source changed from graph neighbors to
// dag.Node.Children(); the post-order (children before parents) is used as
// is, without reversal.
package sample

import "github.com/stochbb/stochbb/dag"

const (
	white = iota
	gray
	black
)

type orderer struct {
	state map[uint64]int
	order []dag.Node
}

// collectOrder returns every node reachable from targets (including the
// targets themselves) in an order such that every node appears after all
// of its Children().
func collectOrder(targets []dag.Node) ([]dag.Node, error) {
	o := &orderer{state: make(map[uint64]int)}
	for _, t := range targets {
		if o.state[t.ID()] == white {
			if err := o.visit(t); err != nil {
				return nil, err
			}
		}
	}
	return o.order, nil
}

func (o *orderer) visit(n dag.Node) error {
	id := n.ID()
	if o.state[id] == gray {
		return ErrCycleDetected
	}
	if o.state[id] == black {
		return nil
	}
	o.state[id] = gray
	for _, c := range n.Children() {
		if err := o.visit(c); err != nil {
			return err
		}
	}
	o.state[id] = black
	o.order = append(o.order, n)
	return nil
}
