package deplete_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/bateman/deplete"
	"github.com/katalvlaran/bateman/sparse"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain guards every test in the package against leaked workers.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// regionRates fabricates n distinct per-region rate sets for decayCapture.
func regionRates(n int) []deplete.RateSet {
	out := make([]deplete.RateSet, n)
	for r := range out {
		out[r] = deplete.RateSet{"B": {0.01 * float64(r+1)}}
	}

	return out
}

// TestAssembleBatch_ParallelEquivalence: the coordinator's output matches
// sequential assembly entry for entry, in region order.
func TestAssembleBatch_ParallelEquivalence(t *testing.T) {
	c := decayCapture(t)
	regions := regionRates(32)

	sequential := make([]*sparse.CSR, len(regions))
	for r := range regions {
		m, err := deplete.Assemble(c, regions[r])
		require.NoError(t, err)
		sequential[r] = m
	}

	for _, workers := range []int{1, 2, 8} {
		parallel, err := deplete.AssembleBatch(context.Background(), c, regions,
			deplete.WithWorkers(workers))
		require.NoError(t, err)
		require.Len(t, parallel, len(regions))
		for r := range regions {
			require.True(t, sequential[r].Equal(parallel[r]),
				"workers=%d region=%d diverged", workers, r)
		}
	}
}

// TestAssembleBatch_OrderStability: distinct regions land in their own
// slots even when completion order scrambles.
func TestAssembleBatch_OrderStability(t *testing.T) {
	c := decayCapture(t)
	regions := regionRates(16)

	out, err := deplete.AssembleBatch(context.Background(), c, regions, deplete.WithWorkers(8))
	require.NoError(t, err)

	for r := range regions {
		v, err := out[r].At(1, 1)
		require.NoError(t, err)
		require.Equal(t, -0.01*float64(r+1), v, "slot %d holds another region's matrix", r)
	}
}

// TestAssembleBatch_RegionFailure: one bad region fails the whole batch,
// and the error names the offender.
func TestAssembleBatch_RegionFailure(t *testing.T) {
	c := decayCapture(t)
	regions := regionRates(8)
	regions[5] = deplete.RateSet{} // missing rates for B

	out, err := deplete.AssembleBatch(context.Background(), c, regions, deplete.WithWorkers(2))
	require.Nil(t, out, "no partial results on failure")
	require.ErrorIs(t, err, deplete.ErrRateShape)

	var re *deplete.RegionError
	require.ErrorAs(t, err, &re)
	require.Equal(t, 5, re.Region)
}

// TestAssembleBatch_ContextCancelled: a pre-cancelled context aborts the
// batch without results.
func TestAssembleBatch_ContextCancelled(t *testing.T) {
	c := decayCapture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := deplete.AssembleBatch(ctx, c, regionRates(64), deplete.WithWorkers(2))
	require.Nil(t, out)
	require.ErrorIs(t, err, context.Canceled)
}

// TestAssembleBatch_Empty: zero regions is a valid, empty batch.
func TestAssembleBatch_Empty(t *testing.T) {
	c := decayCapture(t)
	out, err := deplete.AssembleBatch(context.Background(), c, nil)
	require.NoError(t, err)
	require.Empty(t, out)
}

// TestAssembleBatch_Logger: the optional logger must not perturb results.
func TestAssembleBatch_Logger(t *testing.T) {
	c := decayCapture(t)
	regions := regionRates(4)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logged, err := deplete.AssembleBatch(context.Background(), c, regions,
		deplete.WithWorkers(2), deplete.WithLogger(logger))
	require.NoError(t, err)
	silent, err := deplete.AssembleBatch(context.Background(), c, regions)
	require.NoError(t, err)

	for r := range regions {
		require.True(t, logged[r].Equal(silent[r]), "region %d", r)
	}
}

// TestWithWorkers_PanicsBelowOne: a zero-width pool is a programmer error.
func TestWithWorkers_PanicsBelowOne(t *testing.T) {
	for _, n := range []int{0, -3} {
		require.Panics(t, func() { deplete.WithWorkers(n) }, "WithWorkers(%d)", n)
	}
}

// TestRegionError_Message pins the operator-facing formatting.
func TestRegionError_Message(t *testing.T) {
	err := &deplete.RegionError{Region: 3, Err: deplete.ErrRateShape}
	require.Equal(t,
		fmt.Sprintf("deplete: region 3: %v", deplete.ErrRateShape),
		err.Error())
	require.ErrorIs(t, err, deplete.ErrRateShape)
}
