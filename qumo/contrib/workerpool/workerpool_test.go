package workerpool

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aocsolver/qumo"
	"github.com/stretchr/testify/require"
)

// E6 (cancellation promptness): run_for(fn=sleeping_loop, timeout=1s,
// threads=2); wall time must stay well under the loop's uncancelled total
// and both workers must report having observed cancellation.
func TestRunForCancelsPromptlyOnTimeout(t *testing.T) {
	start := time.Now()

	results, err := RunFor(context.Background(), 2, time.Second, func(ctx context.Context, worker int) (string, error) {
		for {
			select {
			case <-ctx.Done():
				return "cancelled", nil
			case <-time.After(10 * time.Millisecond):
			}
		}
	})

	elapsed := time.Since(start)
	require.NoError(t, err)
	require.LessOrEqual(t, elapsed, 1500*time.Millisecond)
	require.Len(t, results, 2)
	for i, r := range results {
		require.Equalf(t, "cancelled", r.Value, "worker %d", i)
	}
}

func TestRunForRejectsSubSecondTimeout(t *testing.T) {
	_, err := RunFor(context.Background(), 1, 500*time.Millisecond, func(ctx context.Context, worker int) (int, error) {
		return 0, nil
	})
	require.ErrorIs(t, err, qumo.ErrInvalidTimeout)
}

func TestRunForSurfacesFirstWorkerError(t *testing.T) {
	boom := errors.New("boom")
	_, err := RunFor(context.Background(), 3, time.Second, func(ctx context.Context, worker int) (int, error) {
		if worker == 1 {
			return 0, boom
		}
		return worker, nil
	})
	require.ErrorIs(t, err, boom)
}
