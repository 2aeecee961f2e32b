package qumo

import (
	"fmt"
	"math"
)

// CalculateInto computes, for each of the first len(out) columns of spins
// (an N x M matrix stored row-major, spins[i*m+j] = column j's i-th
// coordinate), the per-trajectory Hamiltonian
//
//	energies[j] = -1/2 * spins[:,j]^T Q spins[:,j] - h . spins[:,j]
//
// omitting the last term when h is nil. spins is truncated to the first
// len(out) columns when the workspace is wider than the measured batch, per
// spec.md 4.3.
func (p *WideProblem) CalculateInto(out []float64, spins []float64, m int) error {
	if m <= 0 {
		return fmt.Errorf("%w: energy.CalculateInto: m=%d", ErrInvalidShape, m)
	}
	if len(spins) != p.N*m {
		return fmt.Errorf("%w: energy.CalculateInto: spins has %d elements, want %d", ErrInvalidShape, len(spins), p.N*m)
	}
	if len(out) > m {
		return fmt.Errorf("%w: energy.CalculateInto: out has %d elements, exceeds batch width %d", ErrInvalidShape, len(out), m)
	}

	n := p.N
	for j := range out {
		var quad, linear float64
		for i := 0; i < n; i++ {
			si := spins[i*m+j]
			if si == 0 {
				continue
			}
			var qs float64
			row := p.Q[i*n : i*n+n]
			for k := 0; k < n; k++ {
				qs += row[k] * spins[k*m+j]
			}
			quad += si * qs
			if p.H != nil {
				linear += p.H[i] * si
			}
		}
		out[j] = -0.5*quad - linear
	}
	return nil
}

// Calculate is the value-returning counterpart of CalculateInto, evaluating
// all m columns of spins.
func (p *WideProblem) Calculate(spins []float64, m int) ([]float64, error) {
	out := make([]float64, m)
	if err := p.CalculateInto(out, spins, m); err != nil {
		return nil, err
	}
	return out, nil
}

// CountMinEnergyHits finds the global minimum across an R x K matrix of
// observations (row-major, R repetitions by K configurations) and returns,
// for each of the K columns, the count of entries within eps of that
// minimum. Ties at the global minimum are all counted (spec.md 9, Open
// Question 1).
func CountMinEnergyHits(measurements []float64, r, k int, eps float64) []int {
	counts := make([]int, k)
	if r == 0 || k == 0 {
		return counts
	}
	minVal := math.Inf(1)
	for _, v := range measurements {
		if v < minVal {
			minVal = v
		}
	}
	for row := 0; row < r; row++ {
		base := row * k
		for col := 0; col < k; col++ {
			if math.Abs(measurements[base+col]-minVal) <= eps {
				counts[col]++
			}
		}
	}
	return counts
}
