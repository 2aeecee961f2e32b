package qumo

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// Property 2 (wall clamping): for all finite x and any (lo,hi) with lo<=hi,
// after project(x,lo,hi), lo <= x[i] <= hi for all i.
func TestWallProjectClampsIntoBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	w := NewWall[float64](-1, 1)

	for trial := 0; trial < 64; trial++ {
		x := make([]float64, 16)
		for i := range x {
			x[i] = -10 + rng.Float64()*20
		}
		w.Project(x)
		for i, v := range x {
			require.GreaterOrEqualf(t, v, w.Lower, "x[%d]", i)
			require.LessOrEqualf(t, v, w.Upper, "x[%d]", i)
		}
	}
}

// Property 3 (wall-on-clamp zeros momentum): after project(x,v,lo,hi),
// v[i] == 0 iff x[i] was projected to lo or hi.
func TestWallProjectWithMomentumZerosOnClamp(t *testing.T) {
	w := NewWall[float64](0, 1)
	x := []float64{-0.5, 0.3, 1.5, 0, 1, 0.999}
	momentum := []float64{0.9, 0.9, 0.9, 0.9, 0.9, 0.9}
	wantClamped := []bool{true, false, true, true, true, false}

	require.NoError(t, w.ProjectWithMomentum(x, momentum))

	for i, clamped := range wantClamped {
		if clamped {
			require.Equalf(t, 0.0, momentum[i], "momentum[%d] should be zeroed", i)
			require.Truef(t, x[i] == w.Lower || x[i] == w.Upper, "x[%d]=%v not at a bound", i, x[i])
		} else {
			require.NotEqualf(t, 0.0, momentum[i], "momentum[%d] should survive", i)
		}
	}
}

func TestWallProjectWithMomentumShapeMismatch(t *testing.T) {
	w := IsingWall[float64]()
	err := w.ProjectWithMomentum([]float64{0, 1}, []float64{0})
	require.ErrorIs(t, err, ErrInvalidShape)
}
