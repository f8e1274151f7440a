// File: context.go
// Role: Context owns the id counter, the atom registry, and the resolved
// dependency policy every combinator checks against.
//
// Concurrency: Context is safe for concurrent use. Node construction only
// touches the id counter (atomic) and, for atoms, a registry map guarded
// by a mutex — the same split lvlath/core uses between its vertex and
// edge locks, scaled down to the one map we actually need.
package dag

import (
	"sync"
	"sync/atomic"

	"github.com/stochbb/stochbb/logging"
)

// DependencyPolicy selects how combinators react when siblings share an
// atom (spec.md §9's open question). See SPEC_FULL.md for the resolution.
type DependencyPolicy int

const (
	// PolicyReject fails construction with ErrDependency. Default.
	PolicyReject DependencyPolicy = iota

	// PolicyReroute allows construction to proceed (so the node remains
	// sampleable via package sample's per-draw evaluation) but marks the
	// node so that density() on it, or on anything built from it, fails
	// with density.ErrDependent at evaluation time instead.
	PolicyReroute

	// PolicyIntegrateOut fails construction with ErrNotSupported when
	// Sum/Min/Max/Mixture siblings share an atom; no shared atom is
	// integrated out. CondChain performs no independence check under any
	// policy.
	PolicyIntegrateOut
)

// Context owns every Node built through it: the atom registry, the id
// sequence, the dependency policy, and the logger combinators report
// errors through. Nodes from two different Contexts must never be mixed;
// combinators reject foreign nodes with ErrForeignNode.
type Context struct {
	mu     sync.RWMutex
	atoms  map[uint64]*AtomNode
	nextID uint64 // atomic
	policy DependencyPolicy
	logger logging.Logger
}

// ContextOption configures a Context at construction.
type ContextOption func(*Context)

// WithLogger attaches a Logger. The default is logging.Nop().
func WithLogger(l logging.Logger) ContextOption {
	return func(c *Context) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDependencyPolicy selects the shared-atom policy (default PolicyReject).
func WithDependencyPolicy(p DependencyPolicy) ContextOption {
	return func(c *Context) { c.policy = p }
}

// NewContext creates an empty Context ready to build nodes.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{
		atoms:  make(map[uint64]*AtomNode),
		logger: logging.Nop(),
		policy: PolicyReject,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Policy reports the Context's configured DependencyPolicy.
func (c *Context) Policy() DependencyPolicy { return c.policy }

// Logger returns the Context's Logger.
func (c *Context) Logger() logging.Logger { return c.logger }

// nextNodeID hands out the next construction-order id. Ids are unique
// within a Context across every Kind, not just atoms, so they also serve
// as a total construction order (spec.md §3 invariant 1: every child
// reference points to a node created earlier).
func (c *Context) nextNodeID() uint64 {
	return atomic.AddUint64(&c.nextID, 1)
}

// registerAtom records a newly built atom in the registry, keyed by its id.
func (c *Context) registerAtom(a *AtomNode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.atoms[a.id] = a
}

// Atom looks up a previously built atom by id. Returns nil if absent.
func (c *Context) Atom(id uint64) *AtomNode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.atoms[id]
}

// AtomCount reports how many atoms this Context has registered.
func (c *Context) AtomCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.atoms)
}

// checkOwnership verifies every node belongs to c, returning ErrForeignNode
// (wrapped with the offending node's id) otherwise.
func (c *Context) checkOwnership(nodes ...Node) error {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.Context() != c {
			return wrapf(c, ErrForeignNode, "node %d", n.ID())
		}
	}
	return nil
}
