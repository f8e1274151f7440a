// File: engine.go
// Role: Engine is the density construction context — one per dag.Context
// in practice, though nothing ties them together structurally (a node
// only needs its Kind() and Children(), which Engine reads through the
// dag.Node interface). Density objects it hands out are cached per node
// id so repeated density() calls on the same node return the same
// object, matching spec.md §3 invariant 5 / §4.3's caching contract.
package density

import (
	"sync"

	"github.com/stochbb/stochbb/dag"
)

// Engine constructs and caches Density objects for dag.Nodes.
type Engine struct {
	cfg config

	mu        sync.RWMutex
	densities map[uint64]*Density
}

// NewEngine builds an Engine with the given options.
func NewEngine(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{cfg: cfg, densities: make(map[uint64]*Density)}
}

// Density returns the (lazily created, cached) Density for node.
func (e *Engine) Density(node dag.Node) *Density {
	e.mu.RLock()
	d, ok := e.densities[node.ID()]
	e.mu.RUnlock()
	if ok {
		return d
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if d, ok = e.densities[node.ID()]; ok {
		return d
	}
	d = &Density{
		engine: e,
		node:   node,
		cache:  make(map[gridKey]*buffers),
	}
	e.densities[node.ID()] = d
	return d
}
