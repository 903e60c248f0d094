// Package fixedpoint declares result records, sentinel errors and tunable
// options for stationary-point search and bifurcation sweeps.
package fixedpoint

import (
	"errors"
	"fmt"
)

// Sentinel errors for fixed-point search and parameter sweeps.
var (
	// ErrNilLandscape is returned if a nil landscape pointer is passed.
	ErrNilLandscape = errors.New("fixedpoint: landscape is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("fixedpoint: invalid option supplied")

	// ErrBadSweep is returned when a sweep requests fewer than two samples.
	ErrBadSweep = errors.New("fixedpoint: sweep needs at least two parameter samples")
)

// Stability labels a fixed point by the signs of its eigenvalue real parts.
type Stability int

const (
	// Sink: all eigenvalue real parts negative — locally attracting.
	Sink Stability = iota

	// Source: all eigenvalue real parts positive — locally repelling.
	Source

	// Saddle: mixed signs — attracting along some axes, repelling along others.
	Saddle
)

// String renders the stability class in wire-stable lowercase form.
func (s Stability) String() string {
	switch s {
	case Sink:
		return "sink"
	case Source:
		return "source"
	default:
		return "saddle"
	}
}

// FixedPoint is one accepted stationary point of the ignorance gradient.
// Instances are produced and consumed within a single Find invocation; the
// bifurcation sweep only retains their count.
type FixedPoint struct {
	// Position of the stationary point in domain space.
	Position []float64

	// Type is the eigenvalue-based stability class.
	Type Stability

	// Eigenvalues of the field Jacobian at Position.
	Eigenvalues []complex128

	// Stability is the maximum real part over Eigenvalues.
	Stability float64

	// KnowledgePotential is the landscape potential at Position.
	KnowledgePotential float64
}

// SweepKind labels how the fixed-point count changed across one parameter step.
type SweepKind int

const (
	// SaddleNode: the fixed-point count increased.
	SaddleNode SweepKind = iota

	// Collision: the fixed-point count decreased.
	Collision
)

// String renders the sweep kind in wire-stable lowercase form.
func (k SweepKind) String() string {
	if k == SaddleNode {
		return "saddle_node"
	}

	return "collision"
}

// Bifurcation records one structural transition found by Sweep.
type Bifurcation struct {
	// Parameter is the strength-scale value at which the change was observed.
	Parameter float64

	// Kind classifies the change by count direction.
	Kind SweepKind

	// FixedPointsBefore and FixedPointsAfter are the counts on either side
	// of the transition.
	FixedPointsBefore int
	FixedPointsAfter  int
}

// Option configures Find and Sweep via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds the tunables for the multi-start search.
type Options struct {
	// Starts is the number of uniformly random starting points.
	Starts int

	// Tolerance is the gradient-magnitude acceptance threshold.
	Tolerance float64

	// Seed drives the engine-owned PRNG; 0 selects a fixed default stream.
	Seed int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the reference configuration: 100 starts, tolerance
// 1e-6 and the default deterministic seed.
func DefaultOptions() Options {
	return Options{Starts: 100, Tolerance: 1e-6, Seed: 0}
}

// WithStarts sets the number of random starting points (must be ≥ 1).
func WithStarts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Starts must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.Starts = n
	}
}

// WithTolerance sets the gradient-magnitude acceptance threshold (must be > 0).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: Tolerance must be positive (%g)", ErrOptionViolation, tol)

			return
		}
		o.Tolerance = tol
	}
}

// WithSeed fixes the PRNG seed; 0 selects the stable default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}
