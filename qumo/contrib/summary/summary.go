// Package summary implements the results-summary formulas of spec.md 4.12:
// find_best, search_for_best_configuration, and the aggregate
// get_solver_results_summary statistics (success rate, time/operations to
// solution).
package summary

import (
	"math"

	"github.com/samber/lo"

	"github.com/aocsolver/qumo"
	"github.com/aocsolver/qumo/contrib/orchestrate"
	"github.com/aocsolver/qumo/internal/qlog"
)

// Best is the (Objective, Vars, Annealing, Gradient, Momentum, Label) tuple
// find_best returns for the phase that produced the lowest objective.
type Best[T qumo.Real] struct {
	Objective float64
	Vars      []T
	Annealing float64
	Gradient  float64
	Momentum  float64
	Label     string
}

// named pairs a Phase with the label it should be reported under, so
// FindBest can walk phase1/phase2/deep-search uniformly.
type named[T qumo.Real] struct {
	label string
	phase orchestrate.Phase[T]
}

func phases[T qumo.Real](r orchestrate.RuntimeRecord[T]) []named[T] {
	return []named[T]{
		{"phase1", r.Phase1},
		{"phase2", r.Phase2},
		{"deep_search", r.DeepSearch},
	}
}

// FindBest walks every phase's results, tracking the minimum objective seen;
// when a new minimum is found it also records the configuration that
// produced it, inferred from the column index of the first minimum in that
// result's measurement matrix (spec.md 4.12; see DESIGN.md's Open Question
// 3 on this "originating configuration" inference).
func FindBest[T qumo.Real](r orchestrate.RuntimeRecord[T]) (Best[T], bool) {
	best := Best[T]{Objective: math.Inf(1)}
	found := false
	for _, np := range phases(r) {
		for i, res := range np.phase.Results {
			if res.Best.Objective >= best.Objective {
				continue
			}
			col, ok := columnOfMinimum(res.Measurements, res.Repetitions)
			if !ok {
				continue
			}
			k := np.phase.Setup.Len()
			if col >= k {
				continue
			}
			found = true
			best = Best[T]{
				Objective: res.Best.Objective,
				Vars:      append([]T(nil), res.Best.Assignment...),
				Annealing: np.phase.Setup.Annealing[col],
				Gradient:  np.phase.Setup.Gradient[col],
				Momentum:  np.phase.Setup.Momentum[col],
				Label:     labelFor(np.label, i),
			}
		}
	}
	return best, found
}

func labelFor(phase string, run int) string {
	if run == 0 {
		return phase
	}
	return phase + "/" + itoa(run)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// columnOfMinimum returns the column index of the first entry equal to the
// measurement matrix's global minimum (spec.md 4.12: "inferred from the
// column index of the first minimum"). measurements is repetitions x k,
// row-major.
func columnOfMinimum(measurements []float64, repetitions int) (int, bool) {
	if len(measurements) == 0 || repetitions <= 0 {
		return 0, false
	}
	k := len(measurements) / repetitions
	if k == 0 {
		return 0, false
	}
	minVal := math.Inf(1)
	col := -1
	for i, v := range measurements {
		if v < minVal {
			minVal = v
			col = i % k
		}
	}
	return col, col >= 0
}

// BestConfiguration extends Best with a success rate (fraction of one
// deep-search run's observed energies within eps of that run's own minimum)
// and the index of the deep-search run that achieved the highest such rate.
type BestConfiguration[T qumo.Real] struct {
	Best[T]
	SuccessRate   float64
	BestRunIndex  int
	HasDeepSearch bool
}

// SearchForBestConfiguration mirrors FindBest but additionally computes, for
// every deep-search run, the fraction of its observed energies within eps of
// that run's own minimum, and reports the run with the highest such rate
// (spec.md 4.12).
func SearchForBestConfiguration[T qumo.Real](r orchestrate.RuntimeRecord[T], eps float64) BestConfiguration[T] {
	best, found := FindBest(r)
	out := BestConfiguration[T]{Best: best}
	if !found || len(r.DeepSearch.Results) == 0 {
		return out
	}

	bestRate := -1.0
	bestIdx := -1
	for i, res := range r.DeepSearch.Results {
		k := r.DeepSearch.Setup.Len()
		if k == 0 || res.Repetitions == 0 {
			continue
		}
		counts := qumo.CountMinEnergyHits(res.Measurements, res.Repetitions, k, eps)
		total := lo.Sum(counts)
		rate := float64(total) / float64(len(res.Measurements))
		if rate > bestRate {
			bestRate, bestIdx = rate, i
		}
	}
	if bestIdx < 0 {
		return out
	}
	out.HasDeepSearch = true
	out.SuccessRate = bestRate
	out.BestRunIndex = bestIdx
	return out
}

// ResultsSummary is get_solver_results_summary's return value.
type ResultsSummary struct {
	ObjectiveBestFound float64
	NumSamplesTotal    int
	IterationsTotal    int
	CountsTotal        int
	SuccessRate        float64
	TimePerSample      float64
}

// GetSolverResultsSummary computes the aggregate statistics of spec.md 4.12
// over a completed RuntimeRecord. threads is the worker-pool fan-out used
// for the deep-search phase (for iterations_total's thread-accounting
// term). It fails soft: if deep search produced no runs, it logs a warning
// and returns (ResultsSummary{}, false) rather than an error.
func GetSolverResultsSummary[T qumo.Real](r orchestrate.RuntimeRecord[T], threads int, eps float64, log *qlog.Logger) (ResultsSummary, bool) {
	if log == nil {
		log = qlog.Discard()
	}
	if len(r.DeepSearch.Results) == 0 {
		log.Warn("summary: deep search produced no runs")
		return ResultsSummary{}, false
	}
	if threads < 1 {
		threads = 1
	}

	best, _ := FindBest(r)

	k := r.DeepSearch.Setup.Len()
	numSamplesTotal := 0
	iterationsTotal := 0
	countsTotal := 0
	globalMin := math.Inf(1)
	for _, res := range r.DeepSearch.Results {
		if res.Best.Objective < globalMin {
			globalMin = res.Best.Objective
		}
	}
	for i, res := range r.DeepSearch.Results {
		numSamplesTotal += k * res.Repetitions

		iters := 0
		if i < len(r.DeepSearch.Iterations) {
			idx := (i + threads - 1) / threads
			if idx < len(r.DeepSearch.Iterations) {
				iters = r.DeepSearch.Iterations[idx]
			} else if len(r.DeepSearch.Iterations) > 0 {
				iters = r.DeepSearch.Iterations[len(r.DeepSearch.Iterations)-1]
			}
		}
		iterationsTotal += k * res.Repetitions * iters

		if k > 0 && res.Repetitions > 0 && res.Best.Objective <= globalMin {
			counts := qumo.CountMinEnergyHits(res.Measurements, res.Repetitions, k, eps)
			countsTotal += lo.Sum(counts)
		}
	}

	successRate := 0.0
	if numSamplesTotal > 0 {
		successRate = float64(countsTotal) / float64(numSamplesTotal)
	}

	duration := r.DeepSearch.Stop.Sub(r.DeepSearch.Start).Seconds()
	timePerSample := 0.0
	if numSamplesTotal > 0 {
		timePerSample = duration / float64(numSamplesTotal)
	}

	return ResultsSummary{
		ObjectiveBestFound: best.Objective,
		NumSamplesTotal:    numSamplesTotal,
		IterationsTotal:    iterationsTotal,
		CountsTotal:        countsTotal,
		SuccessRate:        successRate,
		TimePerSample:      timePerSample,
	}, true
}

// TimeToSolution implements spec.md 4.12's time_to_solution(p, t, target).
func TimeToSolution(p, t, target float64) float64 {
	return toSolution(p, t, target)
}

// NumOperationsToSolution implements num_operations_to_solution(p, ops,
// target), the same formula with t substituted by an operation count.
func NumOperationsToSolution(p, ops, target float64) float64 {
	return toSolution(p, ops, target)
}

func toSolution(p, units, target float64) float64 {
	switch {
	case p >= target:
		return units
	case p > 0:
		return units * math.Log(1-target) / math.Log(1-p)
	default:
		return math.Inf(1)
	}
}
