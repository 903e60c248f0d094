// Package discovery declares the knowledge-base intake records, epistemic
// state, gap catalogue, results container and sentinel errors.
package discovery

import (
	"errors"

	"github.com/katalvlaran/epistemica/explore"
	"github.com/katalvlaran/epistemica/topology"
)

// Sentinel errors for loop construction and execution.
var (
	// ErrNoDomains is returned when NewLoop receives an empty domain list.
	ErrNoDomains = errors.New("discovery: at least one domain is required")

	// ErrBadIterations is returned for a negative iteration budget.
	ErrBadIterations = errors.New("discovery: iteration budget must not be negative")

	// ErrVectorDimension indicates an exploration vector whose length differs
	// from the engine's dimensionality.
	ErrVectorDimension = errors.New("discovery: exploration vector length differs from engine dimensionality")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("discovery: invalid option supplied")
)

// KnowledgeState labels where an epistemic point sits in the
// known/unknown quadrant scheme.
type KnowledgeState int

const (
	// KnownKnown marks explicit, articulated knowledge.
	KnownKnown KnowledgeState = iota

	// KnownUnknown marks recognized ignorance: questions we can pose.
	KnownUnknown

	// UnknownKnown marks tacit knowledge not yet articulated.
	UnknownKnown

	// UnknownUnknown marks ignorance we are not yet aware of.
	UnknownUnknown

	// Transitional marks a point mid-flight between quadrants, the state
	// every advanced trajectory point carries.
	Transitional
)

// String implements fmt.Stringer.
func (s KnowledgeState) String() string {
	switch s {
	case KnownKnown:
		return "known_known"
	case KnownUnknown:
		return "known_unknown"
	case UnknownKnown:
		return "unknown_known"
	case UnknownUnknown:
		return "unknown_unknown"
	case Transitional:
		return "transitional"
	default:
		return "invalid"
	}
}

// KnowledgeItem is one entry of the caller's knowledge base. Only the domain
// label participates in landscape construction; the title is carried for
// traceability.
type KnowledgeItem struct {
	// Domain is the knowledge domain the item belongs to.
	Domain string

	// Title identifies the item.
	Title string
}

// CompetencyQuestion probes what the knowledge base can already answer.
type CompetencyQuestion struct {
	// Question is the probe text.
	Question string

	// Domain the question belongs to.
	Domain string

	// ExpectedAnswerType hints at the shape of a satisfying answer.
	ExpectedAnswerType string

	// Complexity grades the question difficulty in [0,1].
	Complexity float64

	// Prerequisites lists competencies the question builds on.
	Prerequisites []string
}

// AntiCompetencyQuestion probes what the knowledge base cannot answer; its
// exploration vector steers a walk into the corresponding ignorance region.
type AntiCompetencyQuestion struct {
	// Question is the probe text.
	Question string

	// Domain the question belongs to.
	Domain string

	// IgnoranceType labels the flavor of ignorance being probed.
	IgnoranceType string

	// ExplorationVector is the raw walk direction; NewLoop normalizes it.
	ExplorationVector []float64
}

// EpistemicPoint is one snapshot of the engine's position in knowledge space.
type EpistemicPoint struct {
	// Coordinates in domain space, one axis per active domain.
	Coordinates []float64

	// State is the knowledge quadrant label.
	State KnowledgeState

	// Entropy of the point's knowledge distribution.
	Entropy float64

	// Confidence in the current self-assessment.
	Confidence float64

	// CompetencyScore is the answerable fraction of competency questions.
	CompetencyScore float64
}

// GapKind labels how a knowledge gap was discovered.
type GapKind int

const (
	// EpistemicVoid marks a low-knowledge region found during exploration.
	EpistemicVoid GapKind = iota

	// CriticalTransition marks a gradient peak along an exploration path.
	CriticalTransition
)

// String implements fmt.Stringer.
func (k GapKind) String() string {
	switch k {
	case EpistemicVoid:
		return "epistemic_void"
	case CriticalTransition:
		return "critical_transition"
	default:
		return "invalid"
	}
}

// Gap is one discovered knowledge gap.
type Gap struct {
	// Kind is the discovery mechanism label.
	Kind GapKind

	// Position of the gap in domain space.
	Position []float64

	// DomainMapping assigns each domain label its coordinate weight at the
	// gap position; truncated domains carry weight 0.
	DomainMapping map[string]float64

	// Severity scores the gap, higher is worse. Void severities are clamped
	// to [0,1]; transition severities carry the raw gradient magnitude.
	Severity float64

	// Description is a generated human-readable summary.
	Description string

	// Vector is the exploration vector that surfaced the gap; set for
	// epistemic voids only.
	Vector *explore.Vector

	// BifurcationType is the transition mechanism label; set for critical
	// transitions only.
	BifurcationType string

	// Magnitude is the gradient magnitude at the transition; set for
	// critical transitions only.
	Magnitude float64
}

// TransitionPoint is a gradient peak detected along one exploration path.
type TransitionPoint struct {
	// Position of the peak sample.
	Position []float64

	// Type is the detection mechanism label.
	Type string

	// Magnitude is the ignorance-gradient magnitude at the peak.
	Magnitude float64

	// KnowledgePotential is the field value at the peak.
	KnowledgePotential float64

	// PathIndex identifies the exploration path the peak lies on.
	PathIndex int

	// Step is the sample index along that path.
	Step int
}

// ConvergenceSummary condenses the loop's terminal dynamics.
type ConvergenceSummary struct {
	// FinalEntropy is the last recorded entropy, 0 for an empty series.
	FinalEntropy float64

	// EntropyTrend is "increasing" or "decreasing".
	EntropyTrend string

	// TotalGaps is the size of the gap catalogue.
	TotalGaps int

	// BifurcationCount is the number of detected transition points.
	BifurcationCount int

	// TrajectoryLength is the number of recorded trajectory points.
	TrajectoryLength int
}

// DiscoveryResults is the frozen outcome of one loop run. All slices grew
// monotonically during execution; nothing is removed or reordered afterwards.
type DiscoveryResults struct {
	// IterationsCompleted counts executed iterations, including the one that
	// triggered convergence.
	IterationsCompleted int

	// Gaps is the cumulative gap catalogue in discovery order.
	Gaps []Gap

	// Trajectory records the epistemic point after each iteration.
	Trajectory []EpistemicPoint

	// Bifurcations lists every detected transition point in discovery order.
	Bifurcations []TransitionPoint

	// Entropy records the per-iteration entropy series.
	Entropy []float64

	// Convergence condenses the terminal dynamics.
	Convergence ConvergenceSummary

	// Topology summarizes the gap-proximity graph.
	Topology topology.Summary
}
