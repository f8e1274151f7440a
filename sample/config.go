// File: config.go
// Role: sampler configuration, resolved from functional options the way
// density and the teacher's builder package both do.
package sample

import (
	"github.com/stochbb/stochbb/logging"
	"golang.org/x/exp/rand"
)

const defaultQuadPoints = 512

type config struct {
	src    rand.Source
	logger logging.Logger
	// invCdfPoints is the resolution of the numerical cdf grid
	// MarginalSampler inverts.
	invCdfPoints int
}

func defaultConfig() config {
	return config{
		src:          rand.NewSource(1),
		logger:       logging.Nop(),
		invCdfPoints: defaultQuadPoints,
	}
}

// Option configures a sampler.
type Option func(*config)

// WithSource overrides the RNG source (default: a fixed seed, for
// reproducible draws — hosts that want nondeterminism should pass their own
// rand.NewSource(seed)).
func WithSource(src rand.Source) Option {
	return func(c *config) {
		if src != nil {
			c.src = src
		}
	}
}

// WithLogger attaches a Logger (default logging.Nop()).
func WithLogger(l logging.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithInvCdfResolution overrides the numerical cdf-inversion grid size.
func WithInvCdfResolution(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.invCdfPoints = n
		}
	}
}
