package discovery

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/epistemica/landscape"
)

// Reference constants of the discovery loop.
const (
	// defaultMaxDimensions caps the landscape dimensionality; extra domains
	// are tracked with weight 0.
	defaultMaxDimensions = 5

	// defaultSpread is the Gaussian spread of every derived knowledge center.
	defaultSpread = 0.15

	// coverageNormalizer converts a per-domain item count into a coverage
	// ratio and a center strength.
	coverageNormalizer = 100.0

	// answerableThreshold is the item count at which a domain is considered
	// able to answer its competency questions.
	answerableThreshold = 10

	// initialConfidence seeds the first epistemic point.
	initialConfidence = 0.8

	// entropyDrift multiplies entropy each advance step; discovering gaps
	// raises awareness of ignorance.
	entropyDrift = 1.1

	// confidenceDrift multiplies confidence each advance step.
	confidenceDrift = 0.9

	// advanceStep scales the summed exploration directions when moving the
	// epistemic point.
	advanceStep = 0.01
)

// Option configures NewLoop via functional arguments.
type Option func(*Options)

// Options holds the loop tunables.
type Options struct {
	// MaxDimensions caps the number of domain axes (default 5).
	MaxDimensions int

	// Seed drives every stochastic diagnostic (FindFixedPoints,
	// DetectBifurcations); 0 selects the package default.
	Seed int64

	// Logger receives structured progress events; defaults to a no-op.
	Logger *zap.Logger

	// Centers overrides the knowledge centers derived from the item
	// collection; nil keeps the derived ones.
	Centers []landscape.Center

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the reference configuration: at most 5 dimensions,
// default seed, silent logger, derived centers.
func DefaultOptions() Options {
	return Options{
		MaxDimensions: defaultMaxDimensions,
		Logger:        zap.NewNop(),
	}
}

// WithMaxDimensions caps the landscape dimensionality (must be >= 1).
func WithMaxDimensions(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxDimensions must be >= 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxDimensions = n
	}
}

// WithSeed fixes the seed of the loop's stochastic diagnostics.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger installs a structured logger; nil restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.Logger = zap.NewNop()

			return
		}
		o.Logger = l
	}
}

// WithCenters replaces the derived knowledge centers with an explicit set.
// The centers must match the engine's dimensionality; NewLoop validates them.
func WithCenters(centers []landscape.Center) Option {
	return func(o *Options) { o.Centers = centers }
}
