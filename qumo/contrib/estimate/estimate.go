// Package estimate implements the heuristic resource estimators of
// spec.md 4.8: per-phase iteration/sample/save counts from problem size and
// time budget, the GPU/CPU batch-size heuristic, and the one-time CPU
// thread-count memoization.
package estimate

import (
	"math"
	"runtime"
	"sync"
)

// Resources is the (Samples, Iterations, PointsToSave, TimeBudget) tuple
// returned by Phase1/Phase2.
type Resources struct {
	Samples      int
	Iterations   int
	PointsToSave int
	TimeBudget   float64
}

// Phase1 implements resources_phase1(N, timeLimit, fraction) per the table
// in spec.md 4.8.
func Phase1(n int, timeLimit, fraction float64) Resources {
	budget := timeLimit * fraction
	switch {
	case n > 5000 && timeLimit <= 100:
		return Resources{Samples: 10, Iterations: 50, PointsToSave: 3000, TimeBudget: budget}
	case n < 1000:
		return Resources{Samples: 20, Iterations: 100, PointsToSave: 3000, TimeBudget: budget}
	case n < 5000:
		return Resources{Samples: 20, Iterations: 200, PointsToSave: 3000, TimeBudget: budget}
	case n < 10000:
		return Resources{Samples: 20, Iterations: 400, PointsToSave: 3000, TimeBudget: budget}
	default:
		return Resources{Samples: 20, Iterations: 500, PointsToSave: 3000, TimeBudget: budget}
	}
}

// Phase2 implements resources_phase2(N, timeLimit, fraction2).
func Phase2(n int, timeLimit, fraction float64) Resources {
	budget := timeLimit * fraction
	switch {
	case n > 5000 && timeLimit <= 300:
		return Resources{Samples: 10, Iterations: 500, PointsToSave: 100, TimeBudget: budget}
	case n < 1000:
		return Resources{Samples: 20, Iterations: 200, PointsToSave: 100, TimeBudget: budget}
	case n < 5000:
		return Resources{Samples: 20, Iterations: 400, PointsToSave: 100, TimeBudget: budget}
	case n < 10000:
		return Resources{Samples: 20, Iterations: 800, PointsToSave: 100, TimeBudget: budget}
	default:
		return Resources{Samples: 20, Iterations: 1000, PointsToSave: 100, TimeBudget: budget}
	}
}

// Backend names the compute backend kind for OptimalBatchSize, matching
// spec.md 4.8's two rows (CPU flat, GPU size-dependent).
type Backend int

const (
	CPU Backend = iota
	GPU
)

// OptimalBatchSize implements optimal_batch_size(backend, N).
func OptimalBatchSize(backend Backend, n int) int {
	if backend == CPU {
		return 100
	}
	return int(math.Ceil(6e7 * math.Pow(float64(n), -1.381)))
}

var (
	maxThreadsOnce sync.Once
	maxThreads     int
)

// MaxCPUThreads returns max(1, nthreads-4), memoized for the process
// lifetime (spec.md 4.8: "evaluated once per process").
func MaxCPUThreads() int {
	maxThreadsOnce.Do(func() {
		n := runtime.GOMAXPROCS(0) - 4
		if n < 1 {
			n = 1
		}
		maxThreads = n
	})
	return maxThreads
}
