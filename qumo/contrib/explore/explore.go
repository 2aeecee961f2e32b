// Package explore implements the exploration driver: the batched sweep of
// an entire Setup's trajectories through the sampler kernel, and the
// Collector contract used to aggregate per-batch results (spec.md 4.5, 4.6).
package explore

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/aocsolver/qumo"
	"github.com/aocsolver/qumo/contrib/configspace"
	"github.com/aocsolver/qumo/contrib/sampler"
	hwypool "github.com/aocsolver/qumo/hwy/contrib/workerpool"
)

// Collector is the four-operation contract of spec.md 4.6: an incremental
// aggregator fed one batch of (energies, spins) at a time.
type Collector[T qumo.Real] interface {
	Create(assignmentPrototype []T, n int)
	Update(energies []float64, spins []T, n, batchWidth int)
	Finish()
	Retrieve() BestFound[T]
	Info() any
}

// BestFound is the best objective/assignment pair a Collector has observed.
type BestFound[T qumo.Real] struct {
	Objective  float64
	Assignment []T
}

// Result is the ExplorationResult of spec.md 3: the best trajectory found,
// the full (repetitions x completed_measurements) energy matrix, and
// whatever opaque payload the collector chose to expose.
type Result[T qumo.Real] struct {
	Best         BestFound[T]
	Measurements []float64 // repetitions x completedMeasurements, row-major
	Repetitions  int
	CollectorInfo any
}

// IterationsChooser returns the per-run iteration count (spec.md 4.5 step
// 5c); it may be a constant or a variate over rng.
type IterationsChooser func(rng *rand.Rand) int

// Run drives the full exploration loop of spec.md 4.5 over problem p using
// dialect d: `repetitions` independent full sweeps ("Samples" in the
// resources_phase1/phase2 tables) each cycle every one of setup's k
// trajectories through the sampler in batches of width batchSize, producing
// a (repetitions x k) row-major Measurements matrix. cancel is polled only
// at batch boundaries, matching the cooperative-cancellation contract of
// spec.md 5; a sweep cancelled partway through still appends its row (any
// columns past the cancellation point keep their zero value, never a stale
// value left over from a previous repetition) so that a configuration
// cancelled before ever completing a full sweep still reports at least one
// row, then stops, so Result.Repetitions may be less than the requested
// count.
func Run[T qumo.Real](
	d sampler.Dialect[T],
	p *qumo.Problem[T],
	wide *qumo.WideProblem,
	setup configspace.Setup,
	repetitions int,
	batchSize int,
	rng *rand.Rand,
	chooser IterationsChooser,
	collector Collector[T],
	pool *hwypool.Pool,
	cancel func() bool,
) (Result[T], error) {
	k := setup.Len()
	if k == 0 {
		return Result[T]{}, qumo.ErrEmptyConfig
	}
	if batchSize <= 0 {
		return Result[T]{}, fmt.Errorf("%w: explore.Run: batchSize=%d", qumo.ErrInvalidShape, batchSize)
	}
	if repetitions <= 0 {
		repetitions = 1
	}

	localSeed := rng.Uint64()
	localRNG := rand.New(rand.NewPCG(localSeed, localSeed^0x9e3779b97f4a7c15))

	n := p.N
	ws := sampler.NewWorkspace[T](n, batchSize)
	collector.Create(make([]T, n), n)

	measurements := make([]float64, 0, repetitions*k)
	rowEnergies := make([]float64, k)
	completedRows := 0

	// cancel is polled only between batches, never inside one: a batch, once
	// started, always runs to completion (spec.md 5, "the sampler is the
	// only suspension point"). So the very first batch of the very first
	// repetition always finishes, guaranteeing at least one measurement even
	// when cancel fires while that batch is running (property 8).
sweeps:
	for rep := 0; rep < repetitions; rep++ {
		cancelled := false
		// rowEnergies is reused across repetitions; clear it so a rep
		// cancelled before its last batch reports zeros for the
		// not-yet-computed columns rather than the previous rep's stale
		// energies.
		clear(rowEnergies)
		for current := 1; current <= k; current += batchSize {
			last := current + batchSize - 1
			if last > k {
				last = k
			}
			width := last - current + 1

			gradient := setup.Gradient[current-1 : last]
			momentum := setup.Momentum[current-1 : last]
			annealing := setup.Annealing[current-1 : last]

			for j := 0; j < width; j++ {
				lo, hi := -1/sqrtN(n), 1/sqrtN(n)
				for i := 0; i < n; i++ {
					ws.X[i*batchSize+j] = T(lo + localRNG.Float64()*(hi-lo))
				}
				ws.AnnealingLive[j] = T(annealing[j])
			}
			for idx := width; idx < batchSize; idx++ {
				ws.AnnealingLive[idx] = 0
			}
			clear(ws.Y)
			clear(ws.Spins)
			clear(ws.Fields)

			iterations := chooser(localRNG)
			if iterations <= 0 {
				iterations = 1
			}
			delta := make([]T, batchSize)
			for j := 0; j < width; j++ {
				delta[j] = T(annealing[j]) / T(iterations)
			}

			params := sampler.Params[T]{
				Q: p.Q, H: p.H, B: p.B,
				Gradient: widenTo[T](gradient, batchSize),
				Momentum: widenTo[T](momentum, batchSize),
				Dt:       T(setup.Dt),
				Delta:    delta,
				Pool:     pool,
			}

			if err := sampler.Run(d, params, ws, iterations, sampler.Hooks[T]{}); err != nil {
				return Result[T]{}, err
			}

			if err := wide.CalculateInto(rowEnergies[current-1:current-1+width], widenSpins(ws.Spins), batchSize); err != nil {
				return Result[T]{}, err
			}
			collector.Update(rowEnergies[current-1:current-1+width], ws.Spins, n, width)

			if cancel != nil && cancel() {
				cancelled = true
				break
			}
		}
		measurements = append(measurements, rowEnergies...)
		completedRows++
		if cancelled {
			break sweeps
		}
	}

	collector.Finish()
	best := collector.Retrieve()

	return Result[T]{
		Best:          best,
		Measurements:  measurements,
		Repetitions:   completedRows,
		CollectorInfo: collector.Info(),
	}, nil
}

func sqrtN(n int) float64 {
	x := float64(n)
	if x <= 0 {
		x = 1
	}
	return math.Sqrt(x)
}

func widenTo[T qumo.Real](vs []float64, width int) []T {
	out := make([]T, width)
	for i, v := range vs {
		if i >= width {
			break
		}
		out[i] = T(v)
	}
	return out
}

func widenSpins[T qumo.Real](spins []T) []float64 {
	out := make([]float64, len(spins))
	for i, v := range spins {
		out[i] = float64(v)
	}
	return out
}
