// File: config.go
// Role: Engine configuration, resolved from functional options the way
// lvlath/builder resolves a builderConfig from BuilderOption values.
package density

import "github.com/stochbb/stochbb/logging"

const (
	// defaultEpsilon is the interior quadrature/range tolerance spec.md
	// §4.3 calls eps_int (1e-4) — used to size internal convolution and
	// compound-integration windows, distinct from the eps a caller passes
	// to RangeEst.
	defaultEpsilon = 1e-4

	// defaultMinGrid is N_min from the convolution protocol (spec.md §4.3
	// step 2).
	defaultMinGrid = 1024

	// defaultFFTThreshold is the per-child grid-point count above which
	// convolution uses an FFT instead of the direct O(n*m) sum (spec.md
	// §4.3 step 4: "Implementations may use FFT when any child has
	// >4096 grid points").
	defaultFFTThreshold = 4096
)

type config struct {
	epsilon      float64
	minGrid      int
	fftThreshold int
	logger       logging.Logger
}

func defaultConfig() config {
	return config{
		epsilon:      defaultEpsilon,
		minGrid:      defaultMinGrid,
		fftThreshold: defaultFFTThreshold,
		logger:       logging.Nop(),
	}
}

// Option configures an Engine.
type Option func(*config)

// WithEpsilon overrides the internal quadrature/range tolerance.
func WithEpsilon(eps float64) Option {
	return func(c *config) {
		if eps > 0 {
			c.epsilon = eps
		}
	}
}

// WithMinGrid overrides N_min, the minimum internal convolution
// resolution.
func WithMinGrid(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.minGrid = n
		}
	}
}

// WithFFTThreshold overrides the per-child point count above which
// convolution switches to FFT.
func WithFFTThreshold(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.fftThreshold = n
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
