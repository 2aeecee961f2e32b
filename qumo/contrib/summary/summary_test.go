package summary

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aocsolver/qumo/contrib/configspace"
	"github.com/aocsolver/qumo/contrib/explore"
	"github.com/aocsolver/qumo/contrib/orchestrate"
)

// Property 9 (time-to-solution formula):
//   tts(p=0.99, t=1.0) == 1.0
//   tts(p=0.5, t=1.0) == log(0.01)/log(0.5) ~= 6.6438562
//   tts(p=0.0, t=1.0) == +Inf
func TestTimeToSolutionFormula(t *testing.T) {
	require.InDelta(t, 1.0, TimeToSolution(0.99, 1.0, 0.99), 1e-12)
	require.InDelta(t, math.Log(0.01)/math.Log(0.5), TimeToSolution(0.5, 1.0, 0.99), 1e-6)
	require.True(t, math.IsInf(TimeToSolution(0.0, 1.0, 0.99), 1))
}

func TestNumOperationsToSolutionSameFormula(t *testing.T) {
	require.Equal(t, TimeToSolution(0.5, 10.0, 0.99), NumOperationsToSolution(0.5, 10.0, 0.99))
}

func TestGetSolverResultsSummaryFailsSoftOnNoDeepSearchRuns(t *testing.T) {
	r := orchestrate.RuntimeRecord[float64]{}

	_, ok := GetSolverResultsSummary[float64](r, 2, 0.01, nil)

	require.False(t, ok)
}

func TestFindBestPicksLowestAcrossPhases(t *testing.T) {
	setup := setupOfLen(2)
	r := orchestrate.RuntimeRecord[float64]{
		Phase1: orchestrate.Phase[float64]{
			Setup: setup,
			Results: []explore.Result[float64]{
				{Best: explore.BestFound[float64]{Objective: -2, Assignment: []float64{1, -1}}, Measurements: []float64{-2, -1}, Repetitions: 1},
			},
		},
		DeepSearch: orchestrate.Phase[float64]{
			Setup: setup,
			Results: []explore.Result[float64]{
				{Best: explore.BestFound[float64]{Objective: -5, Assignment: []float64{-1, 1}}, Measurements: []float64{-5, -3}, Repetitions: 1},
			},
		},
	}

	best, found := FindBest(r)

	require.True(t, found)
	require.Equal(t, -5.0, best.Objective)
	require.Equal(t, "deep_search", best.Label)
}

func setupOfLen(k int) configspace.Setup {
	return configspace.Setup{
		Annealing: make([]float64, k),
		Gradient:  make([]float64, k),
		Momentum:  make([]float64, k),
	}
}
