package discovery

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/epistemica/dynamics"
	"github.com/katalvlaran/epistemica/explore"
	"github.com/katalvlaran/epistemica/fixedpoint"
	"github.com/katalvlaran/epistemica/landscape"
	"github.com/katalvlaran/epistemica/topology"
)

// Loop is the unknown-unknown discovery engine. Build it once with NewLoop,
// then run ExecuteDiscoveryLoop; a Loop is immutable after construction and
// safe for repeated runs.
type Loop struct {
	domains []string // full domain list, axis order
	dims    int      // active axes, min(len(domains), MaxDimensions)
	counts  map[string]int
	field   *landscape.Landscape
	vectors []explore.Vector
	initial EpistemicPoint
	seed    int64
	logger  *zap.Logger
}

// NewLoop assembles the engine from the caller's knowledge base.
//
// The landscape gets one knowledge center per active domain: position 0.8 on
// the domain's own axis and 0.2 elsewhere, strength proportional to the
// domain's item count, fixed spread. WithCenters replaces that derivation
// wholesale. The initial epistemic point sits at the per-domain coverage
// ratios (item count over the normalizer, clamped to [0,1]) with the Shannon
// entropy of the item distribution and the answerable fraction of competency
// questions as its competency score.
//
// Domains beyond Options.MaxDimensions stay in every domain mapping with
// weight 0; TruncatedDomains lists them.
//
// Errors: ErrNoDomains, ErrOptionViolation, ErrVectorDimension,
// explore.ErrZeroVector, and landscape construction errors for malformed
// override centers.
func NewLoop(items []KnowledgeItem, domains []string, questions []CompetencyQuestion, antiQuestions []AntiCompetencyQuestion, opts ...Option) (*Loop, error) {
	if len(domains) == 0 {
		return nil, ErrNoDomains
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	dims := len(domains)
	if dims > o.MaxDimensions {
		dims = o.MaxDimensions
	}

	counts := make(map[string]int, len(domains))
	for _, it := range items {
		counts[it.Domain]++
	}

	centers := o.Centers
	if centers == nil {
		centers = deriveCenters(domains[:dims], counts)
	}
	field, err := landscape.New(dims, centers)
	if err != nil {
		return nil, err
	}

	vectors := make([]explore.Vector, 0, len(antiQuestions))
	for _, aq := range antiQuestions {
		if len(aq.ExplorationVector) != dims {
			return nil, ErrVectorDimension
		}
		v, err := explore.NewVector(aq.ExplorationVector, aq.Domain, aq.IgnoranceType)
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, v)
	}

	l := &Loop{
		domains: append([]string(nil), domains...),
		dims:    dims,
		counts:  counts,
		field:   field,
		vectors: vectors,
		seed:    o.Seed,
		logger:  o.Logger,
	}
	l.initial = l.initialPoint(questions)

	return l, nil
}

// deriveCenters builds one knowledge center per active domain.
func deriveCenters(active []string, counts map[string]int) []landscape.Center {
	dims := len(active)
	centers := make([]landscape.Center, 0, dims)
	for i, domain := range active {
		pos := make([]float64, dims)
		for j := range pos {
			pos[j] = 0.2
		}
		pos[i] = 0.8

		centers = append(centers, landscape.Center{
			Position: pos,
			Strength: float64(counts[domain]) / coverageNormalizer,
			Spread:   defaultSpread,
			Domain:   domain,
		})
	}

	return centers
}

// initialPoint derives the loop's starting epistemic state.
func (l *Loop) initialPoint(questions []CompetencyQuestion) EpistemicPoint {
	coords := make([]float64, l.dims)
	for i := 0; i < l.dims; i++ {
		coords[i] = clamp01(float64(l.counts[l.domains[i]]) / coverageNormalizer)
	}

	var competency float64
	if len(questions) > 0 {
		answerable := 0
		for _, q := range questions {
			if l.counts[q.Domain] >= answerableThreshold {
				answerable++
			}
		}
		competency = float64(answerable) / float64(len(questions))
	}

	return EpistemicPoint{
		Coordinates:     coords,
		State:           KnownKnown,
		Entropy:         dynamics.Shannon(l.counts),
		Confidence:      initialConfidence,
		CompetencyScore: competency,
	}
}

// InitialPoint returns a copy of the epistemic point the loop starts from.
func (l *Loop) InitialPoint() EpistemicPoint {
	p := l.initial
	p.Coordinates = append([]float64(nil), l.initial.Coordinates...)

	return p
}

// TruncatedDomains returns the domain labels beyond the configured
// dimensionality; they carry implicit weight 0 in every domain mapping.
func (l *Loop) TruncatedDomains() []string {
	return append([]string(nil), l.domains[l.dims:]...)
}

// Landscape exposes the loop's knowledge field for external diagnostics.
func (l *Loop) Landscape() *landscape.Landscape {
	return l.field
}

// ExecuteDiscoveryLoop runs up to iterations discovery cycles and returns the
// frozen results. Each cycle assesses the current point, walks every
// exploration vector, detects gradient-peak transitions, converts findings
// into gaps, advances the epistemic point and classifies the iteration's
// dynamics. The loop stops early once the recent trajectory converges; the
// gap-proximity topology is mapped afterwards over the full catalogue.
//
// A zero budget is a valid no-op: the result carries empty collections and
// renders cleanly. Only a negative budget is a caller error.
//
// Errors: ErrBadIterations.
func (l *Loop) ExecuteDiscoveryLoop(iterations int) (*DiscoveryResults, error) {
	if iterations < 0 {
		return nil, ErrBadIterations
	}

	results := &DiscoveryResults{}
	current := l.initial
	l.logger.Info("starting discovery loop",
		zap.Int("iterations", iterations),
		zap.Int("dimensions", l.dims),
		zap.Int("exploration_vectors", len(l.vectors)))

	for it := 0; it < iterations; it++ {
		assessment := l.Assess(current)

		paths, regions, err := explore.Walk(l.field, current.Coordinates, l.vectors)
		if err != nil {
			return nil, err // unreachable: lengths fixed at construction
		}

		transitions := detectTransitions(paths)
		gaps := l.identifyGaps(regions, transitions)
		next := l.advance(current)
		report := dynamics.Analyze(current.Coordinates, next.Coordinates, next.Entropy, paths)

		results.Gaps = append(results.Gaps, gaps...)
		results.Bifurcations = append(results.Bifurcations, transitions...)
		results.Trajectory = append(results.Trajectory, next)
		results.Entropy = append(results.Entropy, report.Entropy)
		results.IterationsCompleted++

		l.logger.Info("discovery iteration",
			zap.Int("iteration", it+1),
			zap.Float64("knowledge_density", assessment.KnowledgeDensity),
			zap.Int("new_gaps", len(gaps)),
			zap.Int("transitions", len(transitions)),
			zap.Float64("entropy", report.Entropy),
			zap.String("dynamics", report.Class.String()))

		current = next

		if l.converged(results.Trajectory) {
			l.logger.Info("discovery loop converged",
				zap.Int("iterations_completed", results.IterationsCompleted))

			break
		}
	}

	results.Convergence = summarize(results)

	topo, err := topology.Map(gapNodes(results.Gaps))
	if err != nil {
		return nil, err // unreachable: all gap positions share l.dims
	}
	results.Topology = topo

	return results, nil
}

// advance moves the epistemic point by the scaled sum of all exploration
// directions and applies the entropy/confidence drift. The returned point is
// fully independent of the input.
func (l *Loop) advance(p EpistemicPoint) EpistemicPoint {
	coords := make([]float64, l.dims)
	copy(coords, p.Coordinates)
	for _, v := range l.vectors {
		floats.AddScaled(coords, advanceStep, v.Direction)
	}

	return EpistemicPoint{
		Coordinates:     coords,
		State:           Transitional,
		Entropy:         p.Entropy * entropyDrift,
		Confidence:      p.Confidence * confidenceDrift,
		CompetencyScore: p.CompetencyScore,
	}
}

// converged reports whether the tail of the trajectory has settled.
func (l *Loop) converged(trajectory []EpistemicPoint) bool {
	points := make([][]float64, len(trajectory))
	for i, p := range trajectory {
		points[i] = p.Coordinates
	}

	return dynamics.ConvergedTrajectory(points)
}

// detectTransitions converts every gradient peak along the walked paths into
// a TransitionPoint, in path order.
func detectTransitions(paths []explore.Path) []TransitionPoint {
	var out []TransitionPoint
	for pathIdx, p := range paths {
		for _, peak := range explore.GradientPeaks(p) {
			s := p.Samples[peak]
			out = append(out, TransitionPoint{
				Position:           s.Position,
				Type:               "gradient_peak",
				Magnitude:          s.GradientMagnitude,
				KnowledgePotential: s.Potential,
				PathIndex:          pathIdx,
				Step:               s.Step,
			})
		}
	}

	return out
}

// summarize condenses the run's terminal dynamics.
func summarize(r *DiscoveryResults) ConvergenceSummary {
	s := ConvergenceSummary{
		EntropyTrend:     "decreasing",
		TotalGaps:        len(r.Gaps),
		BifurcationCount: len(r.Bifurcations),
		TrajectoryLength: len(r.Trajectory),
	}
	if n := len(r.Entropy); n > 0 {
		s.FinalEntropy = r.Entropy[n-1]
		if n > 1 && r.Entropy[n-1] > r.Entropy[0] {
			s.EntropyTrend = "increasing"
		}
	}

	return s
}

// gapNodes projects the gap catalogue onto topology nodes.
func gapNodes(gaps []Gap) []topology.Node {
	nodes := make([]topology.Node, 0, len(gaps))
	for _, g := range gaps {
		nodes = append(nodes, topology.Node{
			Position: g.Position,
			Kind:     g.Kind.String(),
			Severity: g.Severity,
		})
	}

	return nodes
}

// FindFixedPoints locates the fixed points of the loop's landscape using the
// engine seed. Heavier than one loop iteration; intended as an offline
// diagnostic.
func (l *Loop) FindFixedPoints(opts ...fixedpoint.Option) ([]fixedpoint.FixedPoint, error) {
	merged := append([]fixedpoint.Option{fixedpoint.WithSeed(l.seed)}, opts...)

	return fixedpoint.Find(l.field, merged...)
}

// DetectBifurcations sweeps the landscape's strength multiplier from one
// bound to the other in the given number of steps and reports every change
// in the fixed-point census. Uses the engine seed.
func (l *Loop) DetectBifurcations(from, to float64, steps int, opts ...fixedpoint.Option) ([]fixedpoint.Bifurcation, error) {
	merged := append([]fixedpoint.Option{fixedpoint.WithSeed(l.seed)}, opts...)

	return fixedpoint.Sweep(l.field, from, to, steps, merged...)
}

// clamp01 clamps x into [0,1].
func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
