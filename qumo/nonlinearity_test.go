package qumo

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// E4 (sign-nonlinearity throughput): for N=5000, M=1024, random x in
// [-2,2], running apply(sign,x) twice yields identical output. The
// CPU/GPU cross-check in the original scenario is out of this core's
// scope (no GPU backend is implemented here; see DESIGN.md); this test
// covers the single-backend half of E4 that the core owns.
func TestSignApplyIdempotentAtE4Scale(t *testing.T) {
	const n, m = 5000, 1024
	rng := rand.New(rand.NewPCG(3, 4))
	x := make([]float64, n*m)
	for i := range x {
		x[i] = -2 + rng.Float64()*4
	}

	once := append([]float64(nil), x...)
	Apply(Sign[float64], once)
	twice := append([]float64(nil), once...)
	Apply(Sign[float64], twice)

	require.Equal(t, once, twice)
	for _, v := range once {
		require.Contains(t, []float64{-1, 0, 1}, v)
	}
}

func TestTanhMatchesMathTanh(t *testing.T) {
	require.InDelta(t, 0.0, Tanh(0.0), 1e-12)
	require.InDelta(t, 1.0, Tanh(50.0), 1e-9)
	require.InDelta(t, -1.0, Tanh(-50.0), 1e-9)
}

func TestNonLinearityRegistryLookup(t *testing.T) {
	f, ok := LookupNonLinearity("sign")
	require.True(t, ok)
	require.Equal(t, float32(1), f(2))

	_, ok = LookupNonLinearity("does-not-exist")
	require.False(t, ok)

	RegisterNonLinearity("custom", func(x float32) float32 { return x * 2 })
	f, ok = LookupNonLinearity("custom")
	require.True(t, ok)
	require.Equal(t, float32(6), f(3))
}
