// Package explore declares exploration vectors, walk records, sentinel
// errors and tunable options.
package explore

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for exploration.
var (
	// ErrZeroVector indicates a raw exploration direction with zero norm.
	ErrZeroVector = errors.New("explore: exploration vector has zero norm")

	// ErrDimensionMismatch indicates an origin or vector whose length differs
	// from the landscape dimensionality.
	ErrDimensionMismatch = errors.New("explore: point length differs from dimensionality")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("explore: invalid option supplied")
)

// Vector is a unit-length exploration direction derived from an externally
// supplied anti-competency probe. Read-only input to Walk.
type Vector struct {
	// Direction is the unit-length direction in domain space.
	Direction []float64

	// Domain is the probe's domain label.
	Domain string

	// IgnoranceType tags what kind of unknown the probe targets.
	IgnoranceType string
}

// NewVector normalizes raw into a unit-length Vector. The raw slice is
// copied, never retained.
//
// Errors: ErrZeroVector when ‖raw‖ == 0 (or raw is empty).
func NewVector(raw []float64, domain, ignoranceType string) (Vector, error) {
	norm := floats.Norm(raw, 2)
	if norm == 0 {
		return Vector{}, ErrZeroVector
	}

	dir := make([]float64, len(raw))
	copy(dir, raw)
	floats.Scale(1/norm, dir)

	return Vector{Direction: dir, Domain: domain, IgnoranceType: ignoranceType}, nil
}

// Sample is one recorded step of an exploration walk.
type Sample struct {
	// Position after this step.
	Position []float64

	// Potential is the knowledge density at Position.
	Potential float64

	// GradientMagnitude is ‖ignorance gradient‖₂ at Position.
	GradientMagnitude float64

	// Step is the zero-based step index along the path.
	Step int
}

// Path is the full trace of one vector's walk, in step order.
type Path struct {
	// Vector is the direction this path followed.
	Vector Vector

	// Samples holds one entry per step.
	Samples []Sample
}

// Region is a low-potential sample flagged during a walk — a candidate
// epistemic void awaiting gap identification.
type Region struct {
	// Position of the low-knowledge sample.
	Position []float64

	// Vector that led to the discovery.
	Vector Vector

	// Step index at which the potential dropped below the threshold.
	Step int
}

// Option configures Walk via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Walk runs.
type Option func(*Options)

// Options holds the walk tunables.
type Options struct {
	// Steps is the number of cumulative steps per vector.
	Steps int

	// StepSize is the advance per step, in normalized domain units. Fixed by
	// DefaultOptions.
	StepSize float64

	// LowKnowledge is the potential threshold below which a sample is
	// flagged as a discovered region.
	LowKnowledge float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the reference walk configuration: 10 steps of 0.1
// units with a 0.1 low-knowledge threshold.
func DefaultOptions() Options {
	return Options{Steps: 10, StepSize: 0.1, LowKnowledge: 0.1}
}

// WithSteps sets the number of steps per vector (must be ≥ 1).
func WithSteps(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Steps must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.Steps = n
	}
}

// WithLowKnowledge sets the discovered-region potential threshold. Non-finite
// thresholds are rejected: a NaN would silence region discovery entirely.
func WithLowKnowledge(threshold float64) Option {
	return func(o *Options) {
		if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
			o.err = fmt.Errorf("%w: LowKnowledge must be finite (%g)", ErrOptionViolation, threshold)

			return
		}
		o.LowKnowledge = threshold
	}
}
