package sobolseq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextStaysWithinUnitInterval(t *testing.T) {
	g := New(3)
	for i := 0; i < 2048; i++ {
		p := g.Next()
		require.Len(t, p, 3)
		for _, v := range p {
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 1.0)
		}
	}
}

func TestSkipAdvancesSequenceDeterministically(t *testing.T) {
	a := New(2)
	a.Skip(10)
	got := a.Next()

	b := New(2)
	var want []float64
	for i := 0; i < 11; i++ {
		want = b.Next()
	}

	require.Equal(t, want, got)
}

func TestNewPanicsOutsideSupportedDims(t *testing.T) {
	require.Panics(t, func() { New(0) })
	require.Panics(t, func() { New(4) })
}
