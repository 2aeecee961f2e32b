package qumo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Property 10 (spectral normalization fallback): if the eigenvalue engine
// returns an empty set, the solver proceeds with lambda=1 and does not
// raise. With n=0 there is no spectrum at all; Normalize returns lambda=1
// before calling any eigensolver.
func TestNormalizeFallsBackToUnitLambdaOnEmptySpectrum(t *testing.T) {
	q := &WideProblem{N: 0, Q: nil}

	lambda, err := Normalize(q, NormalizeOptions{})

	require.NoError(t, err)
	require.Equal(t, 1.0, lambda)
}

func TestNormalizeSameSignAveragesExtremes(t *testing.T) {
	// Q = diag(2,4): eigenvalues {2,4}, same sign -> (|2|+|4|)/2 = 3.
	n := 2
	q := make([]float64, n*n)
	q[0*n+0] = 2
	q[1*n+1] = 4
	wide := &WideProblem{N: n, Q: q}

	lambda, err := Normalize(wide, NormalizeOptions{})

	require.NoError(t, err)
	require.InDelta(t, 3.0, lambda, 1e-6)
}

func TestCombineOppositeSignPicksPositiveOrUnit(t *testing.T) {
	require.InDelta(t, 5.0, combine(5.0, -2.0), 1e-12)
	require.Equal(t, 1.0, combine(0.05, -2.0))
}
