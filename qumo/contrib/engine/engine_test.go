package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aocsolver/qumo"
)

type fakeCapability struct {
	name      string
	batchSize int
}

func (f fakeCapability) BackendHandle() any {
	return f
}

func (f fakeCapability) OptimalBatchSize(int) int {
	return f.batchSize
}

func (f fakeCapability) String() string {
	return f.name
}

func TestBestEngineReturnsErrNoEnginesWhenEmpty(t *testing.T) {
	r := &Registry{}
	_, err := r.BestEngine()
	require.ErrorIs(t, err, qumo.ErrNoEngines)
}

func TestBestEnginePicksHighestPriorityFirstOnTie(t *testing.T) {
	r := &Registry{}
	r.Register(fakeCapability{name: "low"}, 10)
	r.Register(fakeCapability{name: "high"}, 200)
	r.Register(fakeCapability{name: "tied-first"}, 200)

	best, err := r.BestEngine()
	require.NoError(t, err)
	require.Equal(t, "high", best.Capability.String())
}

func TestCurrentEngineDefaultsToBestEngine(t *testing.T) {
	r := &Registry{}
	r.Register(fakeCapability{name: "only"}, 5)

	cur, err := r.CurrentEngine()
	require.NoError(t, err)
	require.Equal(t, "only", cur.Capability.String())
}

func TestSetCurrentEngineOverridesSelection(t *testing.T) {
	r := &Registry{}
	r.Register(fakeCapability{name: "best"}, 1000)
	r.SetCurrentEngine(Engine{Capability: fakeCapability{name: "pinned"}, Priority: 1})

	cur, err := r.CurrentEngine()
	require.NoError(t, err)
	require.Equal(t, "pinned", cur.Capability.String())
}

func TestDefaultRegistryHasLocalCPU(t *testing.T) {
	best, err := Default.BestEngine()
	require.NoError(t, err)
	require.Equal(t, 1000, best.Priority)
	require.Equal(t, 100, best.Capability.OptimalBatchSize(123456))
}
