package estimate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPhase1BucketsBySize(t *testing.T) {
	require.Equal(t, Resources{Samples: 20, Iterations: 100, PointsToSave: 3000, TimeBudget: 1}, Phase1(500, 10, 0.1))
	require.Equal(t, Resources{Samples: 20, Iterations: 200, PointsToSave: 3000, TimeBudget: 1}, Phase1(2000, 10, 0.1))
	require.Equal(t, Resources{Samples: 20, Iterations: 400, PointsToSave: 3000, TimeBudget: 15}, Phase1(7000, 150, 0.1))
	require.Equal(t, Resources{Samples: 20, Iterations: 500, PointsToSave: 3000, TimeBudget: 15}, Phase1(20000, 150, 0.1))
	require.Equal(t, Resources{Samples: 10, Iterations: 50, PointsToSave: 3000, TimeBudget: 5}, Phase1(6000, 50, 0.1))
}

func TestPhase2BucketsBySize(t *testing.T) {
	require.Equal(t, Resources{Samples: 20, Iterations: 200, PointsToSave: 100, TimeBudget: 2}, Phase2(500, 10, 0.2))
	require.Equal(t, Resources{Samples: 10, Iterations: 500, PointsToSave: 100, TimeBudget: 4}, Phase2(6000, 20, 0.2))
}

func TestOptimalBatchSizeCPUIsFlat(t *testing.T) {
	require.Equal(t, 100, OptimalBatchSize(CPU, 10))
	require.Equal(t, 100, OptimalBatchSize(CPU, 1_000_000))
}

func TestOptimalBatchSizeGPUShrinksWithN(t *testing.T) {
	small := OptimalBatchSize(GPU, 100)
	large := OptimalBatchSize(GPU, 100000)
	require.Greater(t, small, large)
}

func TestMaxCPUThreadsAtLeastOne(t *testing.T) {
	require.GreaterOrEqual(t, MaxCPUThreads(), 1)
	// Memoized: repeated calls return the same value.
	require.Equal(t, MaxCPUThreads(), MaxCPUThreads())
}
