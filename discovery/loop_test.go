package discovery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epistemica/discovery"
	"github.com/katalvlaran/epistemica/explore"
	"github.com/katalvlaran/epistemica/fixedpoint"
	"github.com/katalvlaran/epistemica/landscape"
)

// repeat builds n knowledge items in one domain.
func repeat(domain string, n int) []discovery.KnowledgeItem {
	items := make([]discovery.KnowledgeItem, n)
	for i := range items {
		items[i] = discovery.KnowledgeItem{Domain: domain, Title: domain}
	}

	return items
}

// probe builds a 1-D anti-competency question pointing along +x.
func probe(domain string) []discovery.AntiCompetencyQuestion {
	return []discovery.AntiCompetencyQuestion{{
		Question:          "what lies beyond " + domain + "?",
		Domain:            domain,
		IgnoranceType:     "deep_unknown",
		ExplorationVector: []float64{2}, // normalized to unit length
	}}
}

// TestNewLoop_Validation covers every construction-time failure.
func TestNewLoop_Validation(t *testing.T) {
	items := repeat("alpha", 10)

	_, err := discovery.NewLoop(items, nil, nil, nil)
	assert.ErrorIs(t, err, discovery.ErrNoDomains)

	_, err = discovery.NewLoop(items, []string{"alpha"}, nil, nil, discovery.WithMaxDimensions(0))
	assert.ErrorIs(t, err, discovery.ErrOptionViolation)

	_, err = discovery.NewLoop(items, []string{"alpha"}, nil, []discovery.AntiCompetencyQuestion{
		{Domain: "alpha", ExplorationVector: []float64{1, 0}},
	})
	assert.ErrorIs(t, err, discovery.ErrVectorDimension)

	_, err = discovery.NewLoop(items, []string{"alpha"}, nil, []discovery.AntiCompetencyQuestion{
		{Domain: "alpha", ExplorationVector: []float64{0}},
	})
	assert.ErrorIs(t, err, explore.ErrZeroVector)

	_, err = discovery.NewLoop(items, []string{"alpha"}, nil, nil,
		discovery.WithCenters([]landscape.Center{{Position: []float64{0}, Strength: 1, Spread: 0}}))
	assert.ErrorIs(t, err, landscape.ErrBadSpread)

	loop, err := discovery.NewLoop(items, []string{"alpha"}, nil, nil)
	require.NoError(t, err)
	_, err = loop.ExecuteDiscoveryLoop(-1)
	assert.ErrorIs(t, err, discovery.ErrBadIterations)
}

// TestExecuteDiscoveryLoop_ZeroBudget treats a zero iteration budget as a
// valid no-op: empty frozen results that still render.
func TestExecuteDiscoveryLoop_ZeroBudget(t *testing.T) {
	loop, err := discovery.NewLoop(repeat("alpha", 10), []string{"alpha"}, nil, probe("alpha"))
	require.NoError(t, err)

	results, err := loop.ExecuteDiscoveryLoop(0)
	require.NoError(t, err)

	assert.Zero(t, results.IterationsCompleted)
	assert.Empty(t, results.Gaps)
	assert.Empty(t, results.Trajectory)
	assert.Empty(t, results.Bifurcations)
	assert.Empty(t, results.Entropy)
	assert.Zero(t, results.Topology.NodeCount)
	assert.Zero(t, results.Convergence.TrajectoryLength)

	report := discovery.GenerateIgnoranceReport(results)
	assert.Contains(t, report, "Discovery Loop Completed: 0 iterations")
	assert.Contains(t, report, "Total Knowledge Gaps Discovered: 0")
}

// TestNewLoop_InitialState pins the derived starting point: coverage-ratio
// coordinates, item-distribution entropy and the answerable fraction of
// competency questions.
func TestNewLoop_InitialState(t *testing.T) {
	items := append(repeat("alpha", 30), repeat("beta", 10)...)
	questions := []discovery.CompetencyQuestion{
		{Question: "core mechanisms?", Domain: "alpha", Complexity: 0.4},
		{Question: "unmapped field?", Domain: "gamma", Complexity: 0.9},
	}

	loop, err := discovery.NewLoop(items, []string{"alpha", "beta"}, questions, nil)
	require.NoError(t, err)

	p := loop.InitialPoint()
	assert.Equal(t, []float64{0.3, 0.1}, p.Coordinates)
	assert.Equal(t, discovery.KnownKnown, p.State)
	assert.InDelta(t, 0.8113, p.Entropy, 1e-4, "Shannon entropy of a 3:1 split")
	assert.Equal(t, 0.8, p.Confidence)
	assert.Equal(t, 0.5, p.CompetencyScore, "alpha is answerable, gamma is not")
	assert.Empty(t, loop.TruncatedDomains())
}

// TestNewLoop_DomainTruncation verifies the dimensionality cap: excess
// domains fall off the axes but stay listed.
func TestNewLoop_DomainTruncation(t *testing.T) {
	domains := []string{"a", "b", "c", "d", "e", "f", "g"}
	loop, err := discovery.NewLoop(nil, domains, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"f", "g"}, loop.TruncatedDomains())
	assert.Equal(t, 5, loop.Landscape().Dims())
}

// TestExecuteDiscoveryLoop_VoidDiscovery walks away from a single knowledge
// center and checks that every low-potential step enters the gap catalogue as
// an epistemic void.
func TestExecuteDiscoveryLoop_VoidDiscovery(t *testing.T) {
	loop, err := discovery.NewLoop(
		repeat("alpha", 50), // initial coordinate 0.5
		[]string{"alpha"},
		nil,
		probe("alpha"),
		discovery.WithCenters([]landscape.Center{
			{Position: []float64{0}, Strength: 1, Spread: 0.1, Domain: "alpha"},
		}),
	)
	require.NoError(t, err)

	results, err := loop.ExecuteDiscoveryLoop(3)
	require.NoError(t, err)

	// No convergence: the point drifts 0.01 per iteration.
	assert.Equal(t, 3, results.IterationsCompleted)
	assert.Len(t, results.Trajectory, 3)

	// Every sampled position (0.6 .. 1.5 and onward) lies far below the
	// low-knowledge threshold, so each iteration yields 10 voids.
	require.Len(t, results.Gaps, 30)
	assert.Empty(t, results.Bifurcations)
	for _, g := range results.Gaps {
		assert.Equal(t, discovery.EpistemicVoid, g.Kind)
		require.NotNil(t, g.Vector)
		assert.Equal(t, "deep_unknown", g.Vector.IgnoranceType)
		assert.GreaterOrEqual(t, g.Severity, 0.0)
		assert.LessOrEqual(t, g.Severity, 1.0)
	}

	first := results.Gaps[0]
	assert.InDelta(t, 0.6, first.Position[0], 1e-9)
	assert.InDelta(t, 0.4, first.Severity, 1e-9, "severity is 1 - mean coordinate")
	assert.InDelta(t, 0.6, first.DomainMapping["alpha"], 1e-9)
	assert.Contains(t, first.Description, "alpha")

	// Consecutive samples sit 0.1 apart, well under the connection
	// threshold, so the catalogue forms one chain.
	assert.Equal(t, 30, results.Topology.NodeCount)
	assert.Equal(t, 1, results.Topology.ConnectedComponents)

	// Single-domain entropy is zero and stays zero under drift.
	assert.Equal(t, "decreasing", results.Convergence.EntropyTrend)
	assert.Zero(t, results.Convergence.FinalEntropy)
	assert.Equal(t, 30, results.Convergence.TotalGaps)
	assert.Equal(t, 3, results.Convergence.TrajectoryLength)

	// The epistemic point drifted along the probe and stays transitional.
	last := results.Trajectory[2]
	assert.Equal(t, discovery.Transitional, last.State)
	assert.InDelta(t, 0.53, last.Coordinates[0], 1e-9)
	assert.InDelta(t, 0.8*0.9*0.9*0.9, last.Confidence, 1e-12)
}

// TestExecuteDiscoveryLoop_CriticalTransition steers a walk across the flank
// of a knowledge center so the ignorance-gradient magnitude peaks mid-path.
func TestExecuteDiscoveryLoop_CriticalTransition(t *testing.T) {
	loop, err := discovery.NewLoop(
		repeat("alpha", 20), // initial coordinate 0.2
		[]string{"alpha"},
		nil,
		probe("alpha"),
		discovery.WithCenters([]landscape.Center{
			{Position: []float64{1}, Strength: 1, Spread: 0.1, Domain: "alpha"},
		}),
	)
	require.NoError(t, err)

	results, err := loop.ExecuteDiscoveryLoop(1)
	require.NoError(t, err)

	// The walk samples 0.3 .. 1.2; the gradient magnitude has its lone
	// above-average interior peak at 0.8, one spread-length short of the
	// center.
	require.Len(t, results.Bifurcations, 1)
	peak := results.Bifurcations[0]
	assert.Equal(t, "gradient_peak", peak.Type)
	assert.Equal(t, 0, peak.PathIndex)
	assert.Equal(t, 5, peak.Step)
	assert.InDelta(t, 0.8, peak.Position[0], 1e-9)
	assert.InDelta(t, 2.681, peak.Magnitude, 1e-3)
	assert.InDelta(t, 0.6703, peak.KnowledgePotential, 1e-4)

	// Three early samples (0.3, 0.4, 0.5) fall below the low-knowledge
	// threshold; the peak appends one transition gap after them.
	require.Len(t, results.Gaps, 4)
	transition := results.Gaps[3]
	assert.Equal(t, discovery.CriticalTransition, transition.Kind)
	assert.Equal(t, "gradient_peak", transition.BifurcationType)
	assert.InDelta(t, peak.Magnitude, transition.Severity, 1e-12,
		"transition severity carries the raw gradient magnitude")
	assert.Nil(t, transition.Vector)
	assert.Contains(t, transition.Description, "paradigm shift")
}

// TestExecuteDiscoveryLoop_Deterministic runs the same configuration twice
// and demands identical results and identical reports.
func TestExecuteDiscoveryLoop_Deterministic(t *testing.T) {
	build := func() *discovery.Loop {
		loop, err := discovery.NewLoop(
			append(repeat("alpha", 40), repeat("beta", 15)...),
			[]string{"alpha", "beta"},
			nil,
			[]discovery.AntiCompetencyQuestion{
				{Domain: "alpha", IgnoranceType: "blind_spot", ExplorationVector: []float64{1, 1}},
				{Domain: "beta", IgnoranceType: "deep_unknown", ExplorationVector: []float64{-1, 2}},
			},
			discovery.WithSeed(42),
		)
		require.NoError(t, err)

		return loop
	}

	first, err := build().ExecuteDiscoveryLoop(5)
	require.NoError(t, err)
	second, err := build().ExecuteDiscoveryLoop(5)
	require.NoError(t, err)

	require.Equal(t, first, second)
	assert.Equal(t,
		discovery.GenerateIgnoranceReport(first),
		discovery.GenerateIgnoranceReport(second))
}

// TestAssess reads the knowledge field without mutating the loop.
func TestAssess(t *testing.T) {
	loop, err := discovery.NewLoop(
		repeat("alpha", 20),
		[]string{"alpha"},
		nil,
		nil,
		discovery.WithCenters([]landscape.Center{
			{Position: []float64{1}, Strength: 1, Spread: 0.1, Domain: "alpha"},
		}),
	)
	require.NoError(t, err)

	a := loop.Assess(loop.InitialPoint())
	assert.Equal(t, []float64{0.2}, a.Coordinates)
	assert.InDelta(t, 0.00166, a.KnowledgeDensity, 1e-4, "exp(-0.64/0.1) at distance 0.8")
	assert.Equal(t, map[string]float64{"alpha": 0.2}, a.CompetencyDistribution)
	require.Len(t, a.GradientDirection, 1)
	assert.Negative(t, a.GradientDirection[0], "ignorance falls toward the center")
}

// TestDiagnostics exercises the seeded fixed-point instruments end to end.
func TestDiagnostics(t *testing.T) {
	loop, err := discovery.NewLoop(
		repeat("alpha", 50),
		[]string{"alpha"},
		nil,
		nil,
		discovery.WithSeed(7),
		discovery.WithCenters([]landscape.Center{
			{Position: []float64{1}, Strength: 1, Spread: 0.1, Domain: "alpha"},
		}),
	)
	require.NoError(t, err)

	points, err := loop.FindFixedPoints(fixedpoint.WithStarts(10))
	require.NoError(t, err)
	assert.NotEmpty(t, points, "the flat periphery always satisfies the tolerance")

	records, err := loop.DetectBifurcations(2.0, 0.1, 4, fixedpoint.WithStarts(10))
	require.NoError(t, err)

	again, err := loop.DetectBifurcations(2.0, 0.1, 4, fixedpoint.WithStarts(10))
	require.NoError(t, err)
	assert.Equal(t, records, again, "sweeps share the engine seed")
}
