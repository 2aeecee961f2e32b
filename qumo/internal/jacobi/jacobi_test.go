package jacobi

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEigenvaluesDiagonalMatrixIsItself(t *testing.T) {
	a := []float64{
		3, 0, 0,
		0, -1, 0,
		0, 0, 5,
	}

	values, err := Eigenvalues(a, 3, 1e-9, 100)
	require.NoError(t, err)

	sort.Float64s(values)
	require.InDeltaSlice(t, []float64{-1, 3, 5}, values, 1e-9)
}

func TestEigenvaluesKnownSymmetric2x2(t *testing.T) {
	// [[2,1],[1,2]] has eigenvalues 1 and 3.
	a := []float64{2, 1, 1, 2}

	values, err := Eigenvalues(a, 2, 1e-9, 100)
	require.NoError(t, err)

	sort.Float64s(values)
	require.InDeltaSlice(t, []float64{1, 3}, values, 1e-9)
}

func TestEigenvaluesRejectsAsymmetricInput(t *testing.T) {
	a := []float64{0, 1, 2, 0}
	_, err := Eigenvalues(a, 2, 1e-9, 100)
	require.ErrorIs(t, err, ErrNotSymmetric)
}

func TestEigenvaluesRejectsShapeMismatch(t *testing.T) {
	_, err := Eigenvalues([]float64{1, 2, 3}, 2, 1e-9, 100)
	require.Error(t, err)
}
