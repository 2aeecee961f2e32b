// Package configspace implements the hyperparameter ConfigurationSpace and
// the Setup it is sampled into: three closed intervals (annealing,
// gradient, momentum) sampled with a Sobol low-discrepancy sequence and
// expanded by a repetition count into per-trajectory vectors.
package configspace

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/aocsolver/qumo"
	"github.com/aocsolver/qumo/internal/sobolseq"
)

// Space is a ConfigurationSpace: three closed intervals constraining the
// annealing, gradient and momentum hyperparameters (spec.md 3). Momentum is
// additionally bounded below 1.
type Space struct {
	Annealing qumo.Interval
	Gradient  qumo.Interval
	Momentum  qumo.Interval
}

// NewSpace validates the three intervals, in particular that Momentum.Hi < 1.
func NewSpace(annealing, gradient, momentum qumo.Interval) (Space, error) {
	if momentum.Hi >= 1 {
		return Space{}, fmt.Errorf("%w: configspace: momentum_hi=%v must be < 1", qumo.ErrInvalidRange, momentum.Hi)
	}
	if annealing.Lo < 0 || gradient.Lo < 0 || momentum.Lo < 0 {
		return Space{}, fmt.Errorf("%w: configspace: intervals must be non-negative", qumo.ErrInvalidRange)
	}
	return Space{Annealing: annealing, Gradient: gradient, Momentum: momentum}, nil
}

// Setup is an immutable collection of K per-trajectory hyperparameter
// triples, plus the shared step size dt (spec.md 3).
type Setup struct {
	Annealing []float64
	Gradient  []float64
	Momentum  []float64
	Dt        float64
}

// Len returns the trajectory count K.
func (s Setup) Len() int { return len(s.Annealing) }

// Reorder returns a new Setup with each vector permuted by perm (perm[i] is
// the source index for destination i), used by the orchestrator between
// phases (spec.md 4.11 steps 9-10). The permutation must be stable with
// respect to the caller's sort, which this function does not itself enforce.
func (s Setup) Reorder(perm []int) Setup {
	out := Setup{
		Annealing: make([]float64, len(perm)),
		Gradient:  make([]float64, len(perm)),
		Momentum:  make([]float64, len(perm)),
		Dt:        s.Dt,
	}
	for i, p := range perm {
		out.Annealing[i] = s.Annealing[p]
		out.Gradient[i] = s.Gradient[p]
		out.Momentum[i] = s.Momentum[p]
	}
	return out
}

// Truncate returns the first k entries of s.
func (s Setup) Truncate(k int) Setup {
	if k > s.Len() {
		k = s.Len()
	}
	return Setup{
		Annealing: append([]float64(nil), s.Annealing[:k]...),
		Gradient:  append([]float64(nil), s.Gradient[:k]...),
		Momentum:  append([]float64(nil), s.Momentum[:k]...),
		Dt:        s.Dt,
	}
}

// Sample draws k Sobol-sequence triples from sp, skipping the first k
// points as a low-discrepancy warm-up, and returns a Setup with each triple
// repeated `repetitions` times consecutively (spec.md 4.8.1, 4.5 step 1).
func Sample(sp Space, k, repetitions int, dt float64) Setup {
	gen := sobolseq.New(3)
	gen.Skip(k)

	annealing := make([]float64, 0, k)
	gradient := make([]float64, 0, k)
	momentum := make([]float64, 0, k)
	for i := 0; i < k; i++ {
		p := gen.Next()
		annealing = append(annealing, lerp(sp.Annealing, p[0]))
		gradient = append(gradient, lerp(sp.Gradient, p[1]))
		momentum = append(momentum, lerp(sp.Momentum, p[2]))
	}

	return Setup{
		Annealing: repeatEach(annealing, repetitions),
		Gradient:  repeatEach(gradient, repetitions),
		Momentum:  repeatEach(momentum, repetitions),
		Dt:        dt,
	}
}

func lerp(iv qumo.Interval, t float64) float64 {
	return iv.Lo + t*(iv.Hi-iv.Lo)
}

// repeatEach expands vs by repeating each element `repetitions` times
// consecutively, via lo.FlatMap, matching spec.md 4.5 step 1's "repeat each
// triple repetitions times consecutively".
func repeatEach(vs []float64, repetitions int) []float64 {
	return lo.FlatMap(vs, func(v float64, _ int) []float64 {
		return lo.RepeatBy(repetitions, func(int) float64 { return v })
	})
}
