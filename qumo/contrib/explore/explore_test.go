package explore

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aocsolver/qumo"
	"github.com/aocsolver/qumo/contrib/configspace"
	"github.com/aocsolver/qumo/contrib/sampler"
)

func testSetup(k int) configspace.Setup {
	setup := configspace.Setup{
		Annealing: make([]float64, k),
		Gradient:  make([]float64, k),
		Momentum:  make([]float64, k),
		Dt:        0.5,
	}
	for i := 0; i < k; i++ {
		setup.Annealing[i] = 0.5
		setup.Gradient[i] = 0.1
		setup.Momentum[i] = 0.9
	}
	return setup
}

func testProblem(t *testing.T) (*qumo.Problem[float64], *qumo.WideProblem) {
	t.Helper()
	p, err := qumo.NewProblem[float64](2, 2, []float64{0, 1, 1, 0}, nil)
	require.NoError(t, err)
	return p, qumo.Widen[float64](p)
}

// Property 8 (cancellation quiescence): if cancel is invoked before the
// first batch completes, exploration still returns a well-formed
// ExplorationResult with measurements shaped (repetitions,
// completed_measurements) and completed_measurements >= 1 when the
// configuration is non-empty.
func TestRunCancelledBeforeFirstBatchStillReportsOneRow(t *testing.T) {
	p, wide := testProblem(t)
	setup := testSetup(4)
	d := sampler.MixedIsing[float64]()
	rng := rand.New(rand.NewPCG(1, 1))
	collector := NewBestAssignmentCollector[float64]()

	called := false
	cancel := func() bool {
		// Already true the very first time it is polled, i.e. cancellation
		// was requested before the driver ever got a chance to check.
		called = true
		return true
	}

	result, err := Run[float64](d, p, wide, setup, 3, 2, rng, func(*rand.Rand) int { return 2 }, collector, nil, cancel)

	require.NoError(t, err)
	require.True(t, called)
	require.GreaterOrEqual(t, result.Repetitions, 1)
	require.Equal(t, setup.Len()*result.Repetitions, len(result.Measurements))
	require.GreaterOrEqual(t, len(result.Measurements), 1)
}

// rowEnergies is reused across repetitions without reallocation; a
// cancellation mid-sweep on a repetition after the first must report zero
// for its own not-yet-computed columns, never the previous repetition's
// energies (a bug this test was added to catch).
func TestRunCancelledMidSweepOnLaterRepetitionDoesNotLeakPriorRow(t *testing.T) {
	p, wide := testProblem(t)
	setup := testSetup(4) // k=4, batchSize=2 below -> 2 batches per repetition
	d := sampler.MixedIsing[float64]()
	rng := rand.New(rand.NewPCG(3, 5))
	collector := NewBestAssignmentCollector[float64]()

	polls := 0
	cancel := func() bool {
		polls++
		// Let repetition 0 finish both its batches (polls 1,2); cancel right
		// after repetition 1's first batch (poll 3), before its second batch
		// ever runs.
		return polls == 3
	}

	result, err := Run[float64](d, p, wide, setup, 3, 2, rng, func(*rand.Rand) int { return 2 }, collector, nil, cancel)

	require.NoError(t, err)
	require.Equal(t, 2, result.Repetitions)
	require.Equal(t, 2*setup.Len(), len(result.Measurements))

	secondRow := result.Measurements[setup.Len() : 2*setup.Len()]
	require.Equal(t, 0.0, secondRow[2], "uncomputed column must be zero, not leaked from the previous repetition")
	require.Equal(t, 0.0, secondRow[3], "uncomputed column must be zero, not leaked from the previous repetition")
}

func TestRunUncancelledCompletesAllRepetitions(t *testing.T) {
	p, wide := testProblem(t)
	setup := testSetup(4)
	d := sampler.QUMO[float64]()
	rng := rand.New(rand.NewPCG(7, 7))
	collector := NewBestAssignmentCollector[float64]()

	result, err := Run[float64](d, p, wide, setup, 3, 2, rng, func(*rand.Rand) int { return 5 }, collector, nil, nil)

	require.NoError(t, err)
	require.Equal(t, 3, result.Repetitions)
	require.Equal(t, 3*setup.Len(), len(result.Measurements))
	require.NotNil(t, result.Best.Assignment)
}

func TestRunRejectsEmptyConfiguration(t *testing.T) {
	p, wide := testProblem(t)
	d := sampler.MixedIsing[float64]()
	rng := rand.New(rand.NewPCG(1, 1))
	collector := NewBestAssignmentCollector[float64]()

	_, err := Run[float64](d, p, wide, configspace.Setup{}, 1, 2, rng, func(*rand.Rand) int { return 1 }, collector, nil, nil)

	require.ErrorIs(t, err, qumo.ErrEmptyConfig)
}
