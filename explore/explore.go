package explore

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/epistemica/landscape"
)

// Walk explores the landscape from origin along every vector in turn.
//
// For each vector the walker takes Options.Steps cumulative steps of
// Options.StepSize in that direction, recording position, potential and
// gradient magnitude at every step. A step whose potential falls below
// Options.LowKnowledge is additionally flagged as a discovered Region.
//
// Vectors are processed in input order and each walk restarts from origin,
// so the result is a pure, deterministic function of (landscape, origin,
// vectors, options). Empty vectors yield empty paths and no regions — a
// valid outcome.
//
// Errors: ErrDimensionMismatch, ErrOptionViolation.
func Walk(l *landscape.Landscape, origin []float64, vectors []Vector, opts ...Option) ([]Path, []Region, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, nil, o.err
	}

	dims := l.Dims()
	if len(origin) != dims {
		return nil, nil, ErrDimensionMismatch
	}
	for _, v := range vectors {
		if len(v.Direction) != dims {
			return nil, nil, ErrDimensionMismatch
		}
	}

	var (
		paths   = make([]Path, 0, len(vectors))
		regions []Region
		pos     = make([]float64, dims)
		step    int
	)
	for _, v := range vectors {
		copy(pos, origin)
		samples := make([]Sample, 0, o.Steps)

		for step = 0; step < o.Steps; step++ {
			floats.AddScaled(pos, o.StepSize, v.Direction)

			potential, _ := l.Potential(pos) // lengths validated above
			grad, _ := l.IgnoranceGradient(pos)

			at := make([]float64, dims)
			copy(at, pos)
			samples = append(samples, Sample{
				Position:          at,
				Potential:         potential,
				GradientMagnitude: floats.Norm(grad, 2),
				Step:              step,
			})

			if potential < o.LowKnowledge {
				regions = append(regions, Region{Position: at, Vector: v, Step: step})
			}
		}

		paths = append(paths, Path{Vector: v, Samples: samples})
	}

	return paths, regions, nil
}
