package qumo

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// E3: Scalar-QUMO 2x2. Q = [[0,w],[w,v]], w=4, v=5, binary-prefix=1,
// continuous index 1. ConvertToMixedIsing must produce Quadratic ==
// [[0,w/2],[w/2,v]], Field == [0,w], Offset == 0 (spec.md 6/8).
func TestConvertToMixedIsingScalarQUMO2x2(t *testing.T) {
	const w, v = 4.0, 5.0
	p, err := NewProblem[float64](2, 1, []float64{0, w, w, v}, nil)
	require.NoError(t, err)

	ising := ConvertToMixedIsing[float64](p)

	wantQuadratic := []float64{0, w / 2, w / 2, v}
	wantField := []float64{0, w}

	if diff := cmp.Diff(wantQuadratic, ising.Quadratic, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Quadratic mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantField, ising.Field, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Field mismatch (-want +got):\n%s", diff)
	}
	require.InDelta(t, 0, ising.Offset, 1e-12)
}

// All-binary square case reduces to the textbook QUBO-to-Ising identity:
// with h=nil and B=N, Field is driven entirely by each row's off-diagonal
// mass and Offset collects the folded-out constant.
func TestConvertToMixedIsingAllBinaryMatchesQUBOIdentity(t *testing.T) {
	q := []float64{
		0, 2, 1,
		2, 0, 3,
		1, 3, 0,
	}
	p, err := NewProblem[float64](3, 3, q, nil)
	require.NoError(t, err)

	ising := ConvertToMixedIsing[float64](p)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.25 * q[i*3+j]
			require.InDeltaf(t, want, ising.Quadratic[i*3+j], 1e-12, "Quadratic[%d,%d]", i, j)
		}
	}
	// Field_i = 0.5 * 2*(Q*beta)_i, beta = [0.5,0.5,0.5].
	for i := 0; i < 3; i++ {
		rowSum := q[i*3+0] + q[i*3+1] + q[i*3+2]
		want := 0.5 * rowSum
		require.InDeltaf(t, want, ising.Field[i], 1e-12, "Field[%d]", i)
	}
}

// Property 1 (symmetry preservation): ConvertToMixedIsing must not mutate
// the input Problem's Q.
func TestConvertToMixedIsingLeavesProblemUnchanged(t *testing.T) {
	q := []float64{0, 1, 1, 0}
	p, err := NewProblem[float64](2, 2, q, nil)
	require.NoError(t, err)
	before := append([]float64(nil), p.Q...)

	_ = ConvertToMixedIsing[float64](p)

	require.Equal(t, before, p.Q)
}

// Property 4 (energy evaluator symmetry): calculate(spins,Q,h) =
// -1/2 diag(spins^T Q spins) - h^T spins, within eps(T_eval)*||Q||*N.
func TestEnergyEvaluatorMatchesClosedForm(t *testing.T) {
	n := 3
	q := []float64{
		0, 1, 2,
		1, 0, 3,
		2, 3, 0,
	}
	h := []float64{0.5, -0.25, 1.0}
	wide := &WideProblem{N: n, Q: q, H: h}
	spins := []float64{1, -1, 1}

	got, err := wide.Calculate(spins, 1)
	require.NoError(t, err)

	var quad, linear float64
	for i := 0; i < n; i++ {
		var qs float64
		for k := 0; k < n; k++ {
			qs += q[i*n+k] * spins[k]
		}
		quad += spins[i] * qs
		linear += h[i] * spins[i]
	}
	want := -0.5*quad - linear

	normQ := 0.0
	for _, v := range q {
		normQ += v * v
	}
	normQ = math.Sqrt(normQ)
	eps := 1e-9 * normQ * float64(n)
	if eps == 0 {
		eps = 1e-9
	}
	require.InDelta(t, want, got[0], eps)
}

// Property 5 (sign non-linearity idempotence): apply(sign, apply(sign, x))
// == apply(sign, x).
func TestSignNonLinearityIdempotent(t *testing.T) {
	xs := []float64{-3, -0.5, 0, 0.5, 3, 100, -100}
	once := append([]float64(nil), xs...)
	Apply(Sign[float64], once)
	twice := append([]float64(nil), once...)
	Apply(Sign[float64], twice)

	require.Equal(t, once, twice)
}

// Property 6 (step-half correctness): apply(step_half,x)[i] == 1 iff
// x[i] > 0.5, else 0.
func TestStepHalfCorrectness(t *testing.T) {
	cases := []struct {
		x    float64
		want float64
	}{
		{0, 0}, {0.5, 0}, {0.50000001, 1}, {1, 1}, {-1, 0},
	}
	for _, c := range cases {
		got := StepHalf(c.x)
		require.Equalf(t, c.want, got, "StepHalf(%v)", c.x)
	}
}
