// Package topology declares the gap-graph node, summary record, sentinel
// errors and options.
package topology

import (
	"errors"
	"fmt"
)

// Sentinel errors for topology mapping.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("topology: invalid option supplied")

	// ErrDimensionMismatch indicates nodes with positions of differing length.
	ErrDimensionMismatch = errors.New("topology: node positions differ in length")
)

// Node is one discovered gap placed in domain space.
type Node struct {
	// Position of the gap.
	Position []float64

	// Kind is the gap type label (epistemic_void / critical_transition).
	Kind string

	// Severity is the gap's severity score.
	Severity float64
}

// Summary reports the gap graph's structure.
type Summary struct {
	// NodeCount is the number of gaps mapped.
	NodeCount int

	// EdgeCount is the number of proximity connections.
	EdgeCount int

	// ConnectedComponents is the number of disjoint gap clusters.
	ConnectedComponents int

	// ClusteringCoefficient is the graph-average local clustering
	// coefficient; 0 for an empty graph.
	ClusteringCoefficient float64
}

// Option configures Map via functional arguments.
type Option func(*Options)

// Options holds the mapping tunables.
type Options struct {
	// Threshold is the maximum Euclidean distance at which two gaps are
	// considered connected.
	Threshold float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the reference configuration: connection threshold 0.3.
func DefaultOptions() Options {
	return Options{Threshold: 0.3}
}

// WithThreshold sets the connection distance threshold (must be > 0).
func WithThreshold(d float64) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: Threshold must be positive (%g)", ErrOptionViolation, d)

			return
		}
		o.Threshold = d
	}
}
