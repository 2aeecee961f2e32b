package sampler

import (
	"testing"

	"github.com/aocsolver/qumo"
	"github.com/stretchr/testify/require"
)

// E5 / property 7 (annealing monotonicity): after K iterations with
// non-negative delta, annealing_live[j] == max(annealing_start[j] -
// K*delta[j], 0) for every j. annealing_start=[0.5,1.0], delta=[0.05,0.1],
// K=10 drives both columns to exactly zero.
func TestAnnealingDecrementsToFloorAfterKIterations(t *testing.T) {
	const n, m, k = 1, 2, 10

	d := Dialect[float64]{Name: "test", NonLinearity: qumo.Sign[float64], Wall: qumo.IsingWall[float64](), Bias: 0}
	ws := NewWorkspace[float64](n, m)
	ws.AnnealingLive[0], ws.AnnealingLive[1] = 0.5, 1.0

	params := Params[float64]{
		Q:        []float64{0},
		B:        0,
		Gradient: []float64{0, 0},
		Momentum: []float64{0, 0},
		Dt:       0.5,
		Delta:    []float64{0.05, 0.1},
	}

	require.NoError(t, Run(d, params, ws, k, Hooks[float64]{}))

	require.InDelta(t, 0.0, ws.AnnealingLive[0], 1e-12)
	require.InDelta(t, 0.0, ws.AnnealingLive[1], 1e-12)
}

// Generalizes the same property over a non-exact-floor case: the decrement
// never undershoots zero and matches the closed form for annealing_start
// values that don't bottom out within K steps.
func TestAnnealingMonotonicityClosedForm(t *testing.T) {
	const n, m, k = 1, 2, 3

	d := Dialect[float64]{Name: "test", NonLinearity: qumo.Sign[float64], Wall: qumo.IsingWall[float64](), Bias: 0}
	ws := NewWorkspace[float64](n, m)
	start := []float64{1.0, 0.05}
	delta := []float64{0.1, 0.1}
	ws.AnnealingLive[0], ws.AnnealingLive[1] = start[0], start[1]

	params := Params[float64]{
		Q:        []float64{0},
		B:        0,
		Gradient: []float64{0, 0},
		Momentum: []float64{0, 0},
		Dt:       0.5,
		Delta:    delta,
	}

	require.NoError(t, Run(d, params, ws, k, Hooks[float64]{}))

	for j := 0; j < m; j++ {
		want := start[j] - float64(k)*delta[j]
		if want < 0 {
			want = 0
		}
		require.InDeltaf(t, want, ws.AnnealingLive[j], 1e-12, "annealing_live[%d]", j)
	}
}
