package configspace

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aocsolver/qumo"
)

func testSpace(t *testing.T) Space {
	t.Helper()
	sp, err := NewSpace(
		qumo.Interval{Lo: 0.01, Hi: 1},
		qumo.Interval{Lo: 0.01, Hi: 1},
		qumo.Interval{Lo: 0.95, Hi: 0.99},
	)
	require.NoError(t, err)
	return sp
}

func TestNewSpaceRejectsMomentumHiAtOrAboveOne(t *testing.T) {
	_, err := NewSpace(qumo.Interval{Lo: 0, Hi: 1}, qumo.Interval{Lo: 0, Hi: 1}, qumo.Interval{Lo: 0.9, Hi: 1})
	require.ErrorIs(t, err, qumo.ErrInvalidRange)
}

func TestSampleRepeatsEachTripleConsecutively(t *testing.T) {
	sp := testSpace(t)
	setup := Sample(sp, 4, 3, 0.5)

	require.Equal(t, 12, setup.Len())
	for base := 0; base < 12; base += 3 {
		for i := 1; i < 3; i++ {
			require.Equal(t, setup.Annealing[base], setup.Annealing[base+i])
			require.Equal(t, setup.Gradient[base], setup.Gradient[base+i])
			require.Equal(t, setup.Momentum[base], setup.Momentum[base+i])
		}
	}
	for _, v := range setup.Annealing {
		require.GreaterOrEqual(t, v, sp.Annealing.Lo)
		require.LessOrEqual(t, v, sp.Annealing.Hi)
	}
}

func TestSetupReorderPermutesAllVectorsTogether(t *testing.T) {
	setup := Setup{
		Annealing: []float64{0.1, 0.2, 0.3},
		Gradient:  []float64{1, 2, 3},
		Momentum:  []float64{0.9, 0.8, 0.7},
		Dt:        0.5,
	}

	reordered := setup.Reorder([]int{2, 0, 1})

	require.Equal(t, []float64{0.3, 0.1, 0.2}, reordered.Annealing)
	require.Equal(t, []float64{3, 1, 2}, reordered.Gradient)
	require.Equal(t, []float64{0.7, 0.9, 0.8}, reordered.Momentum)
	require.Equal(t, setup.Dt, reordered.Dt)
}

func TestSetupTruncateClampsToLen(t *testing.T) {
	setup := Setup{Annealing: []float64{1, 2, 3}, Gradient: []float64{1, 2, 3}, Momentum: []float64{1, 2, 3}}

	require.Equal(t, 2, setup.Truncate(2).Len())
	require.Equal(t, 3, setup.Truncate(10).Len())
}
