// Package orchestrate implements the three-phase configuration-space
// search (spec.md 4.11): phase 1 exploration, phase 2 exploration on a
// pruned subset, and a timed deep-search loop, sharing one normalization
// and configuration-space sampling step across all three solver dialects.
package orchestrate

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/aocsolver/qumo"
	"github.com/aocsolver/qumo/contrib/configspace"
	"github.com/aocsolver/qumo/contrib/engine"
	"github.com/aocsolver/qumo/contrib/estimate"
	"github.com/aocsolver/qumo/contrib/explore"
	"github.com/aocsolver/qumo/contrib/sampler"
	runforpool "github.com/aocsolver/qumo/contrib/workerpool"
	hwypool "github.com/aocsolver/qumo/hwy/contrib/workerpool"
	"github.com/aocsolver/qumo/internal/qlog"
)

// deepSearchSafetyMultiplier is the "estimator x 4" adjustment of spec.md
// 4.11 step 11, kept as a named constant per DESIGN.md's Open Question
// resolution.
const deepSearchSafetyMultiplier = 4

// Options configures a solve call. Unset interval fields default to the
// ranges in spec.md 6's solve() signature.
type Options struct {
	Timeout               time.Duration
	Backend               estimate.Backend
	Annealing             qumo.Interval
	Gradient              qumo.Interval
	Momentum              qumo.Interval
	DeepSearchIterations  [2]int
	Dt                    float64
	Phase1Fraction        float64
	Phase2Fraction        float64
	Rng                   *rand.Rand
	Pool                  *hwypool.Pool
	Log                   *qlog.Logger
}

func (o Options) withDefaults() Options {
	if o.Annealing == (qumo.Interval{}) {
		o.Annealing = qumo.Interval{Lo: 0.01, Hi: 1}
	}
	if o.Gradient == (qumo.Interval{}) {
		o.Gradient = qumo.Interval{Lo: 0.01, Hi: 1}
	}
	if o.Momentum == (qumo.Interval{}) {
		o.Momentum = qumo.Interval{Lo: 0.95, Hi: 0.99}
	}
	if o.DeepSearchIterations == ([2]int{}) {
		o.DeepSearchIterations = [2]int{500, 20000}
	}
	if o.Dt == 0 {
		o.Dt = 0.5
	}
	if o.Phase1Fraction == 0 {
		o.Phase1Fraction = 0.1
	}
	if o.Phase2Fraction == 0 {
		o.Phase2Fraction = 0.2
	}
	if o.Rng == nil {
		o.Rng = rand.New(rand.NewPCG(1, 2))
	}
	if o.Log == nil {
		o.Log = qlog.Discard()
	}
	return o
}

func (o Options) validate() error {
	if o.Phase1Fraction <= 0 || o.Phase1Fraction >= 1 || o.Phase2Fraction <= 0 || o.Phase2Fraction >= 1 {
		return fmt.Errorf("%w: orchestrate: phase fractions must be in (0,1)", qumo.ErrInvalidRange)
	}
	if o.Phase1Fraction+o.Phase2Fraction >= 1 {
		return fmt.Errorf("%w: orchestrate: phase fractions must sum to < 1", qumo.ErrInvalidRange)
	}
	if o.Momentum.Hi >= 1 {
		return fmt.Errorf("%w: orchestrate: momentum_hi must be < 1", qumo.ErrInvalidRange)
	}
	if o.Timeout < time.Second {
		return fmt.Errorf("%w: orchestrate: timeout=%v", qumo.ErrInvalidTimeout, o.Timeout)
	}
	return nil
}

// RuntimeRecord is the result of a full solve() call: per-phase statistics
// (spec.md 3's PhaseStatistics) plus the normalization factor used.
type RuntimeRecord[T qumo.Real] struct {
	Lambda     float64
	Phase1     Phase[T]
	Phase2     Phase[T]
	DeepSearch Phase[T]
}

// Phase records one phase's setup, its results, and the iteration count
// used for each run.
type Phase[T qumo.Real] struct {
	Start, Stop time.Time
	Setup       configspace.Setup
	Results     []explore.Result[T]
	Iterations  []int
}

// Solve runs the Mixed-Ising dialect end to end (spec.md 6's `solve`).
func Solve[T qumo.Real](p *qumo.Problem[T], opts Options) (RuntimeRecord[T], error) {
	return run(sampler.MixedIsing[T](), p, opts)
}

// SolvePositive runs the Positive-QUMO dialect (spec.md 6's `solve_positive`).
func SolvePositive[T qumo.Real](p *qumo.Problem[T], opts Options) (RuntimeRecord[T], error) {
	return run(sampler.PositiveQUMO[T](), p, opts)
}

// SolveQUMO runs the QUMO dialect (spec.md 6's `solve_qumo`).
func SolveQUMO[T qumo.Real](p *qumo.Problem[T], opts Options) (RuntimeRecord[T], error) {
	return run(sampler.QUMO[T](), p, opts)
}

func run[T qumo.Real](d sampler.Dialect[T], p *qumo.Problem[T], opts Options) (RuntimeRecord[T], error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return RuntimeRecord[T]{}, err
	}

	n := p.N
	timeoutSeconds := opts.Timeout.Seconds()

	res1 := estimate.Phase1(n, timeoutSeconds, opts.Phase1Fraction)
	res2 := estimate.Phase2(n, timeoutSeconds, opts.Phase2Fraction)

	wide := qumo.Widen(p)
	lambda, err := qumo.Normalize(wide, qumo.NormalizeOptions{Log: opts.Log})
	if err != nil {
		return RuntimeRecord[T]{}, err
	}

	const sobolK = 32768
	setup := configspace.Sample(configspace.Space{Annealing: opts.Annealing, Gradient: opts.Gradient, Momentum: opts.Momentum}, sobolK, 1, opts.Dt)
	for i := range setup.Annealing {
		setup.Annealing[i] /= setup.Gradient[i]
		setup.Gradient[i] = 1 / (setup.Gradient[i] * lambda)
	}

	eng, err := engine.Default.CurrentEngine()
	if err != nil {
		return RuntimeRecord[T]{}, err
	}
	batchSize := eng.Capability.OptimalBatchSize(n)

	threads := 1
	if opts.Backend == estimate.CPU {
		threads = estimate.MaxCPUThreads()
	}

	pool := opts.Pool
	if pool == nil {
		pool = hwypool.New(threads)
		defer pool.Close()
	}

	record := RuntimeRecord[T]{Lambda: lambda}

	// Phase 1: run_for threads workers under budget1, keep the first
	// worker's measurements (spec.md 4.11 step 9).
	phase1, err := runPhase(d, p, wide, setup, res1.Samples, batchSize, opts.Rng, res1.Iterations, threads, res1.TimeBudget, pool)
	if err != nil {
		return record, err
	}
	record.Phase1 = Phase[T]{Start: phase1.start, Stop: phase1.stop, Setup: setup, Results: []explore.Result[T]{phase1.result}, Iterations: []int{res1.Iterations}}

	perm1 := rankByMeanEnergy(phase1.result.Measurements, setup.Len())
	setup = setup.Reorder(perm1)

	// Phase 2.
	phase2, err := runPhase(d, p, wide, setup, res2.Samples, batchSize, opts.Rng, res2.Iterations, threads, res2.TimeBudget, pool)
	if err != nil {
		return record, err
	}
	record.Phase2 = Phase[T]{Start: phase2.start, Stop: phase2.stop, Setup: setup, Results: []explore.Result[T]{phase2.result}, Iterations: []int{res2.Iterations}}

	perm2 := rankByMeanEnergy(phase2.result.Measurements, setup.Len())
	setup = setup.Reorder(perm2).Truncate(res2.PointsToSave)

	// Deep search.
	deepStart := time.Now()
	deadline := deepStart.Add(time.Duration(res2.TimeBudget * float64(time.Second)))
	estimatedRate := 0.0 // moving average of seconds-per-iteration, 0.5 decay, seeded below
	if res2.Iterations > 0 && !phase2.stop.Equal(phase2.start) {
		estimatedRate = phase2.stop.Sub(phase2.start).Seconds() / float64(res2.Iterations)
	}

	var deepResults []explore.Result[T]
	var deepIters []int
	iterLo, iterHi := opts.DeepSearchIterations[0], opts.DeepSearchIterations[1]
	for {
		remaining := time.Until(deadline).Seconds()
		if remaining <= 0 {
			break
		}
		adjLo, adjHi := adjustIterationBounds(iterLo, iterHi, remaining, estimatedRate)
		if adjHi < adjLo {
			break
		}
		iters := adjLo
		if adjHi > adjLo {
			iters = adjLo + int(opts.Rng.IntN(adjHi-adjLo+1))
		}

		estimatedLoopTime := estimatedRate * float64(iters)
		if estimatedRate > 0 && estimatedLoopTime > 2*remaining {
			break
		}

		samples := (batchSize + setup.Len() - 1) / setup.Len()
		if samples < 1 {
			samples = 1
		}

		// Deep search also runs threads workers under run_for, per spec.md
		// 4.11's closing "Worker count" note; remaining time is the budget
		// for this round (step 11 says "for the whole remaining time").
		r, err := runPhase(d, p, wide, setup, samples, batchSize, opts.Rng, iters, threads, remaining, pool)
		if err != nil {
			return record, err
		}
		wallTime := r.stop.Sub(r.start).Seconds()
		if iters > 0 && wallTime > 0 {
			rate := wallTime / float64(iters)
			if estimatedRate == 0 {
				estimatedRate = rate
			} else {
				estimatedRate = 0.5*estimatedRate + 0.5*rate
			}
		}
		deepResults = append(deepResults, r.result)
		deepIters = append(deepIters, iters)
	}
	record.DeepSearch = Phase[T]{Start: deepStart, Stop: time.Now(), Setup: setup, Results: deepResults, Iterations: deepIters}

	return record, nil
}

// adjustIterationBounds narrows [lo,hi] so the estimated number of
// iterations fits the remaining time budget, applying the documented 4x
// safety multiplier (spec.md 4.11 step 11; deepSearchSafetyMultiplier).
func adjustIterationBounds(lo, hi int, remaining, rate float64) (int, int) {
	if rate <= 0 {
		return lo, hi
	}
	maxIters := int(remaining / (rate * deepSearchSafetyMultiplier))
	if maxIters < lo {
		return lo, lo - 1 // empty range: signals "give up" to the caller
	}
	if maxIters < hi {
		hi = maxIters
	}
	return lo, hi
}

func constChooser(n int) explore.IterationsChooser {
	return func(rng *rand.Rand) int { return n }
}

type explorationRun[T qumo.Real] struct {
	start, stop time.Time
	result      explore.Result[T]
}

// runPhase implements spec.md 4.10/4.11's "invoke the worker-pool-driven
// exploration for budget seconds, collect the first worker's Measurements"
// contract: threads independent Explore.Run calls share one rng stream seed
// but run their own localRNG derivation (see explore.Run), each cancelable by
// its own per-worker watchdog once timeoutSeconds elapses. Per spec.md step
// 9, only the first worker's result is kept; the rest exist solely so the
// watchdog/cancellation contract is exercised the same way deep search's
// workers are.
func runPhase[T qumo.Real](
	d sampler.Dialect[T],
	p *qumo.Problem[T],
	wide *qumo.WideProblem,
	setup configspace.Setup,
	repetitions, batchSize int,
	rng *rand.Rand,
	iterations, threads int,
	timeoutSeconds float64,
	pool *hwypool.Pool,
) (explorationRun[T], error) {
	start := time.Now()
	timeout := time.Duration(timeoutSeconds * float64(time.Second))
	if timeout < time.Second {
		timeout = time.Second
	}

	// explore.Run draws from its rng argument, so each worker needs its own
	// stream: derive them sequentially up front rather than sharing rng
	// across goroutines.
	workerRNGs := make([]*rand.Rand, threads)
	for w := range workerRNGs {
		seed := rng.Uint64()
		workerRNGs[w] = rand.New(rand.NewPCG(seed, seed^0x2545f4914f6cdd1d))
	}

	results, err := runforpool.RunFor(context.Background(), threads, timeout, func(ctx context.Context, worker int) (explore.Result[T], error) {
		collector := explore.NewBestAssignmentCollector[T]()
		return explore.Run(d, p, wide, setup, repetitions, batchSize, workerRNGs[worker], constChooser(iterations), collector, pool, func() bool { return ctx.Err() != nil })
	})
	stop := time.Now()
	if err != nil {
		return explorationRun[T]{}, err
	}
	return explorationRun[T]{start: start, stop: stop, result: results[0].Value}, nil
}

// rankByMeanEnergy computes, for each of the k configurations in a
// (repetitions x k)-shaped measurement matrix, the mean energy across
// repetitions, and returns a permutation sorting configurations ascending
// by that mean (spec.md 4.11 steps 9-10).
func rankByMeanEnergy(measurements []float64, k int) []int {
	if k == 0 || len(measurements) == 0 {
		perm := make([]int, k)
		for i := range perm {
			perm[i] = i
		}
		return perm
	}
	reps := len(measurements) / k
	means := make([]float64, k)
	for col := 0; col < k; col++ {
		var sum float64
		for row := 0; row < reps; row++ {
			sum += measurements[row*k+col]
		}
		means[col] = sum / float64(reps)
	}
	perm := make([]int, k)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool { return means[perm[i]] < means[perm[j]] })
	return perm
}
