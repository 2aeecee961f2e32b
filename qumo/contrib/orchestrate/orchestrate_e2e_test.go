package orchestrate

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aocsolver/qumo"
	"github.com/aocsolver/qumo/contrib/estimate"
	"github.com/aocsolver/qumo/contrib/summary"
)

func negate(q []float32) []float32 {
	out := make([]float32, len(q))
	for i, v := range q {
		out[i] = -v
	}
	return out
}

// E1 (5-cycle MaxCut via Ising): solve(f32, -Q_input, timeout=10s, B=5)
// should find an objective at or below C5's maxcut energy of -4. The graph
// weighted-cut readout (graph_cut_from_hamiltonian) belongs to the modeling
// façade, out of this core's scope (spec.md 1); this test only asserts the
// core's own Objective property.
func TestSolveMixedIsingFiveCycleMaxCut(t *testing.T) {
	qInput := []float32{
		0, 1, 0, 0, 1,
		1, 0, 1, 0, 0,
		0, 1, 0, 1, 0,
		0, 0, 1, 0, 1,
		1, 0, 0, 1, 0,
	}
	p, err := qumo.NewProblem[float32](5, 5, negate(qInput), nil)
	require.NoError(t, err)

	opts := Options{
		Timeout: 10 * time.Second,
		Backend: estimate.CPU,
		Rng:     rand.New(rand.NewPCG(42, 42)),
	}

	record, err := Solve[float32](p, opts)
	require.NoError(t, err)

	best, found := summary.FindBest(record)
	require.True(t, found)
	require.LessOrEqual(t, best.Objective, -4+1e-2)
}

// E2 (4-node two-edge graph): solve(f32, Q, 2s, B=4) over two disjoint edges
// (1,2) and (3,4), weight 1. Objective should reach -2, with each edge's
// pair of spins anti-aligned (x[0]*x[1] < 0, x[2]*x[3] < 0).
func TestSolveMixedIsingTwoEdgeGraph(t *testing.T) {
	q := []float32{
		0, -1, 0, 0,
		-1, 0, 0, 0,
		0, 0, 0, -1,
		0, 0, -1, 0,
	}
	p, err := qumo.NewProblem[float32](4, 4, q, nil)
	require.NoError(t, err)

	opts := Options{
		Timeout: 2 * time.Second,
		Backend: estimate.CPU,
		Rng:     rand.New(rand.NewPCG(7, 13)),
	}

	record, err := Solve[float32](p, opts)
	require.NoError(t, err)

	best, found := summary.FindBest(record)
	require.True(t, found)
	require.LessOrEqual(t, best.Objective, -2+1e-2)
	require.Len(t, best.Vars, 4)
	require.Negative(t, float64(best.Vars[0])*float64(best.Vars[1]))
	require.Negative(t, float64(best.Vars[2])*float64(best.Vars[3]))
}

func TestSolveRejectsSubSecondTimeout(t *testing.T) {
	p, err := qumo.NewProblem[float32](2, 2, []float32{0, 1, 1, 0}, nil)
	require.NoError(t, err)

	_, err = Solve[float32](p, Options{Timeout: 500 * time.Millisecond})
	require.ErrorIs(t, err, qumo.ErrInvalidTimeout)
}
