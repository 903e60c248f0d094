package explore_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epistemica/explore"
	"github.com/katalvlaran/epistemica/landscape"
)

// originBump returns a 2-D landscape with a single sharp center at the origin.
func originBump(t *testing.T) *landscape.Landscape {
	t.Helper()
	l, err := landscape.New(2, []landscape.Center{
		{Position: []float64{0, 0}, Strength: 1.0, Spread: 0.1, Domain: "sensing"},
	})
	require.NoError(t, err)

	return l
}

// TestNewVector_NormalizesAndCopies verifies unit normalization and that the
// raw slice is not retained.
func TestNewVector_NormalizesAndCopies(t *testing.T) {
	raw := []float64{3, 4}
	v, err := explore.NewVector(raw, "sensing", "technological_unknown")
	require.NoError(t, err)

	assert.InDelta(t, 0.6, v.Direction[0], 1e-12)
	assert.InDelta(t, 0.8, v.Direction[1], 1e-12)
	assert.Equal(t, "sensing", v.Domain)
	assert.Equal(t, "technological_unknown", v.IgnoranceType)

	raw[0] = 99
	assert.InDelta(t, 0.6, v.Direction[0], 1e-12, "raw slice must not be retained")
}

// TestNewVector_ZeroNorm rejects degenerate probes.
func TestNewVector_ZeroNorm(t *testing.T) {
	_, err := explore.NewVector([]float64{0, 0}, "x", "y")
	assert.ErrorIs(t, err, explore.ErrZeroVector)

	_, err = explore.NewVector(nil, "x", "y")
	assert.ErrorIs(t, err, explore.ErrZeroVector)
}

// TestWalk_AwayFromOriginFindsVoids is the canonical scenario: one center at
// the origin and one vector pointing directly away must cross the
// low-knowledge threshold within the default ten steps.
func TestWalk_AwayFromOriginFindsVoids(t *testing.T) {
	l := originBump(t)
	v, err := explore.NewVector([]float64{1, 0}, "sensing", "technological_unknown")
	require.NoError(t, err)

	paths, regions, err := explore.Walk(l, []float64{0, 0}, []explore.Vector{v})
	require.NoError(t, err)

	require.Len(t, paths, 1)
	require.Len(t, paths[0].Samples, 10, "default walk takes ten steps")

	// Potential decays monotonically while walking away from the only center.
	for i := 1; i < len(paths[0].Samples); i++ {
		assert.Less(t, paths[0].Samples[i].Potential, paths[0].Samples[i-1].Potential)
	}

	require.NotEmpty(t, regions, "the walk must leave the knowledge bump")
	assert.Equal(t, 4, regions[0].Step, "exp(−0.25/0.1) ≈ 0.082 first dips below 0.1 at step 4")
	assert.InDelta(t, 0.5, regions[0].Position[0], 1e-9)
	for _, r := range regions {
		p, perr := l.Potential(r.Position)
		require.NoError(t, perr)
		assert.Less(t, p, 0.1, "every region sits below the low-knowledge threshold")
		assert.Equal(t, "sensing", r.Vector.Domain, "regions carry their originating vector")
	}
}

// TestWalk_Validation covers dimensionality and option failures.
func TestWalk_Validation(t *testing.T) {
	l := originBump(t)
	v, err := explore.NewVector([]float64{1, 0}, "", "")
	require.NoError(t, err)

	_, _, err = explore.Walk(l, []float64{0}, []explore.Vector{v})
	assert.ErrorIs(t, err, explore.ErrDimensionMismatch, "short origin must be rejected")

	short, err := explore.NewVector([]float64{1}, "", "")
	require.NoError(t, err)
	_, _, err = explore.Walk(l, []float64{0, 0}, []explore.Vector{short})
	assert.ErrorIs(t, err, explore.ErrDimensionMismatch, "short vector must be rejected")

	_, _, err = explore.Walk(l, []float64{0, 0}, []explore.Vector{v}, explore.WithSteps(0))
	assert.ErrorIs(t, err, explore.ErrOptionViolation)

	// A NaN threshold would make every potential comparison false and turn
	// region discovery off silently; it must be rejected up front.
	_, _, err = explore.Walk(l, []float64{0, 0}, []explore.Vector{v}, explore.WithLowKnowledge(math.NaN()))
	assert.ErrorIs(t, err, explore.ErrOptionViolation)

	_, _, err = explore.Walk(l, []float64{0, 0}, []explore.Vector{v}, explore.WithLowKnowledge(math.Inf(1)))
	assert.ErrorIs(t, err, explore.ErrOptionViolation)
}

// TestWalk_NoVectors confirms the empty input is a valid no-op.
func TestWalk_NoVectors(t *testing.T) {
	paths, regions, err := explore.Walk(originBump(t), []float64{0, 0}, nil)
	require.NoError(t, err)
	assert.Empty(t, paths)
	assert.Empty(t, regions)
}

// TestPeakIndices pins the strict-interior-maximum semantics.
func TestPeakIndices(t *testing.T) {
	assert.Equal(t, []int{1, 3}, explore.PeakIndices([]float64{0, 1, 0, 2, 0}, 0.5))
	assert.Empty(t, explore.PeakIndices([]float64{3, 1, 0}, 0), "endpoints are never peaks")
	assert.Empty(t, explore.PeakIndices([]float64{0, 1, 1, 0}, 0), "plateaus do not qualify")
	assert.Empty(t, explore.PeakIndices([]float64{0, 1, 0}, 2), "below-height maxima are dropped")
	assert.Empty(t, explore.PeakIndices(nil, 0))
}

// TestGradientPeaks_NearKnowledgeBoundary verifies the bifurcation proxy: the
// gradient magnitude peaks one spread-length away from the center, above the
// path mean.
func TestGradientPeaks_NearKnowledgeBoundary(t *testing.T) {
	l := originBump(t)
	v, err := explore.NewVector([]float64{1, 0}, "sensing", "")
	require.NoError(t, err)

	paths, _, err := explore.Walk(l, []float64{0, 0}, []explore.Vector{v})
	require.NoError(t, err)

	peaks := explore.GradientPeaks(paths[0])
	assert.Equal(t, []int{1}, peaks, "‖∇‖ = 2x/σ·exp(−x²/σ) peaks near x=0.22, i.e. step 1")

	assert.Empty(t, explore.GradientPeaks(explore.Path{}), "empty path has no peaks")
}
