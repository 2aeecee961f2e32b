// Package jacobi implements the classical cyclic/threshold Jacobi
// eigenvalue algorithm for small dense symmetric matrices. Normalize calls it
// as a fallback whenever gonum's EigenSym fails to factorize or returns no
// eigenvalues; see SPEC_FULL.md 4.7 and DESIGN.md.
package jacobi

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotSymmetric is returned when the input is not symmetric within tol.
var ErrNotSymmetric = errors.New("jacobi: matrix is not symmetric")

// ErrDidNotConverge is returned if maxIter sweeps pass without the largest
// off-diagonal element dropping below tol.
var ErrDidNotConverge = errors.New("jacobi: eigen decomposition did not converge")

// Eigenvalues performs a classical Jacobi rotation sweep on the row-major
// n x n symmetric matrix a, returning its n eigenvalues (unordered). tol
// bounds both the symmetry check and the convergence threshold; maxIter
// caps the number of rotation sweeps.
func Eigenvalues(a []float64, n int, tol float64, maxIter int) ([]float64, error) {
	if len(a) != n*n {
		return nil, fmt.Errorf("jacobi: a has %d elements, want %d", len(a), n*n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(a[i*n+j]-a[j*n+i]) > tol {
				return nil, ErrNotSymmetric
			}
		}
	}

	if n <= 1 {
		out := make([]float64, n)
		copy(out, a)
		return out, nil
	}

	work := make([]float64, len(a))
	copy(work, a)
	at := func(i, j int) float64 { return work[i*n+j] }
	set := func(i, j int, v float64) { work[i*n+j] = v }

	iter := 0
	for ; iter < maxIter; iter++ {
		maxOff := 0.0
		p, q := 0, 1
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if off := math.Abs(at(i, j)); off > maxOff {
					maxOff = off
					p, q = i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		app, aqq, apq := at(p, p), at(q, q), at(p, q)
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq := at(i, p), at(i, q)
			np, nq := c*aip-s*aiq, s*aip+c*aiq
			set(i, p, np)
			set(p, i, np)
			set(i, q, nq)
			set(q, i, nq)
		}
		set(p, p, c*c*app-2*c*s*apq+s*s*aqq)
		set(q, q, s*s*app+2*c*s*apq+c*c*aqq)
		set(p, q, 0)
		set(q, p, 0)
	}

	if iter == maxIter {
		return nil, ErrDidNotConverge
	}

	eigs := make([]float64, n)
	for i := range eigs {
		eigs[i] = at(i, i)
	}
	return eigs, nil
}
