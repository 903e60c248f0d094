package fixedpoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/epistemica/fixedpoint"
	"github.com/katalvlaran/epistemica/landscape"
)

// singleBump returns a 2-D landscape with one sharp knowledge center.
func singleBump(t *testing.T) *landscape.Landscape {
	t.Helper()
	l, err := landscape.New(2, []landscape.Center{
		{Position: []float64{0.5, 0.5}, Strength: 1.0, Spread: 0.1, Domain: "sensing"},
	})
	require.NoError(t, err)

	return l
}

// TestFind_NilAndBadOptions covers the fail-fast paths.
func TestFind_NilAndBadOptions(t *testing.T) {
	_, err := fixedpoint.Find(nil)
	assert.ErrorIs(t, err, fixedpoint.ErrNilLandscape)

	_, err = fixedpoint.Find(singleBump(t), fixedpoint.WithStarts(0))
	assert.ErrorIs(t, err, fixedpoint.ErrOptionViolation, "Starts=0 must be rejected")

	_, err = fixedpoint.Find(singleBump(t), fixedpoint.WithTolerance(-1))
	assert.ErrorIs(t, err, fixedpoint.ErrOptionViolation, "negative tolerance must be rejected")
}

// TestFind_AcceptedPointsMeetTolerance verifies the finder's defining
// property: every returned point has a gradient magnitude below tolerance.
func TestFind_AcceptedPointsMeetTolerance(t *testing.T) {
	l := singleBump(t)

	points, err := fixedpoint.Find(l)
	require.NoError(t, err)
	require.NotEmpty(t, points, "the flat periphery always yields stationary points")

	for _, fp := range points {
		grad, gerr := l.IgnoranceGradient(fp.Position)
		require.NoError(t, gerr)
		assert.Less(t, floats.Norm(grad, 2), 1e-6, "accepted point must meet the tolerance")
	}
}

// TestFind_ClassificationConsistency checks the eigenvalue contract: Sink has
// all real parts negative, Source all positive, Saddle mixed — and Stability
// is the maximum real part.
func TestFind_ClassificationConsistency(t *testing.T) {
	points, err := fixedpoint.Find(singleBump(t))
	require.NoError(t, err)
	require.NotEmpty(t, points)

	for _, fp := range points {
		require.Len(t, fp.Eigenvalues, 2)

		allNeg, allPos := true, true
		maxRe := real(fp.Eigenvalues[0])
		for _, v := range fp.Eigenvalues {
			if real(v) >= 0 {
				allNeg = false
			}
			if real(v) <= 0 {
				allPos = false
			}
			if real(v) > maxRe {
				maxRe = real(v)
			}
		}
		switch fp.Type {
		case fixedpoint.Sink:
			assert.True(t, allNeg, "sink requires all negative real parts")
		case fixedpoint.Source:
			assert.True(t, allPos, "source requires all positive real parts")
		case fixedpoint.Saddle:
			assert.False(t, allNeg || allPos, "saddle requires mixed signs")
		}
		assert.Equal(t, maxRe, fp.Stability, "stability is the max real part")
	}
}

// TestFind_Deterministic confirms that identical seeds reproduce identical
// results bit for bit.
func TestFind_Deterministic(t *testing.T) {
	l := singleBump(t)

	first, err := fixedpoint.Find(l, fixedpoint.WithSeed(42))
	require.NoError(t, err)
	second, err := fixedpoint.Find(l, fixedpoint.WithSeed(42))
	require.NoError(t, err)

	require.Equal(t, first, second, "same seed and inputs must reproduce results")

	other, err := fixedpoint.Find(l, fixedpoint.WithSeed(7))
	require.NoError(t, err)
	assert.NotEqual(t, first, other, "a different seed explores different starts")
}

// TestFind_FlatLandscape exercises the degenerate centerless field: every
// start sits at a (trivial) stationary point and classifies as Saddle, since
// a zero Jacobian has neither all-negative nor all-positive real parts.
func TestFind_FlatLandscape(t *testing.T) {
	l, err := landscape.New(2, nil)
	require.NoError(t, err)

	points, err := fixedpoint.Find(l, fixedpoint.WithStarts(10))
	require.NoError(t, err)
	require.Len(t, points, 10, "a flat field accepts every start")

	for _, fp := range points {
		assert.Equal(t, fixedpoint.Saddle, fp.Type)
		assert.Equal(t, 0.0, fp.KnowledgePotential)
	}
}

// TestStability_String pins the wire-stable names used in reports.
func TestStability_String(t *testing.T) {
	assert.Equal(t, "sink", fixedpoint.Sink.String())
	assert.Equal(t, "source", fixedpoint.Source.String())
	assert.Equal(t, "saddle", fixedpoint.Saddle.String())
}
