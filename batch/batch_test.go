package batch_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minpress/batch"
	"github.com/katalvlaran/minpress/presses"
	"github.com/katalvlaran/minpress/puzzle"
	"github.com/katalvlaran/minpress/system"
)

const sample = `(0,1) (1,2) {2,3,1}
(0) {3,5}
(0) (0) {4}

(0,1) {2,3}
{}
(0) oops {1}
(7) {1}
`

func parseSample(t *testing.T) []puzzle.Line {
	t.Helper()
	lines, err := puzzle.ParseReader(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, lines, 7)

	return lines
}

func TestRun_OrderAndVerdicts(t *testing.T) {
	lines := parseSample(t)
	for _, workers := range []int{1, 2, 8} {
		out := batch.Run(context.Background(), lines, batch.Options{Workers: workers})
		require.Len(t, out, len(lines))

		for i, oc := range out {
			require.Equal(t, i+1, oc.Number, "workers=%d", workers)
		}
		require.Equal(t, presses.Optimal, out[0].Result.Status)
		require.Equal(t, 3, out[0].Result.Sum)
		require.Equal(t, presses.Infeasible, out[1].Result.Status)
		require.Equal(t, presses.Optimal, out[2].Result.Status)
		require.Equal(t, 4, out[2].Result.Sum)
		require.Equal(t, presses.Infeasible, out[3].Result.Status)
		require.Equal(t, presses.Optimal, out[4].Result.Status)
		require.Equal(t, 0, out[4].Result.Sum)
		require.ErrorIs(t, out[5].Err, puzzle.ErrUnexpectedToken)
		require.ErrorIs(t, out[6].Err, system.ErrPositionOutOfRange)
	}
}

func TestSummarize(t *testing.T) {
	lines := parseSample(t)
	out := batch.Run(context.Background(), lines, batch.DefaultOptions())

	got := batch.Summarize(out)
	want := batch.Summary{
		Total:      7,
		Optimal:    3,
		Infeasible: []int{2, 4},
		Failed:     []int{6, 7},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_BudgetMarksUndetermined(t *testing.T) {
	// Many free columns: branch-and-bound with a one-node budget cannot finish.
	lines, err := puzzle.ParseReader(strings.NewReader("(0) (0) (0) (0) (0) (0) (0) (0) {9}\n"))
	require.NoError(t, err)

	out := batch.Run(context.Background(), lines, batch.Options{
		Workers: 1,
		Solver:  []presses.Option{presses.WithStepLimit(1), presses.WithSeed(false)},
	})
	require.Equal(t, presses.BudgetExceeded, out[0].Result.Status)

	s := batch.Summarize(out)
	require.Equal(t, []int{1}, s.Undetermined)
	require.Zero(t, s.Total)
}

func TestRun_Empty(t *testing.T) {
	require.Empty(t, batch.Run(context.Background(), nil, batch.DefaultOptions()))
	require.Equal(t, batch.Summary{}, batch.Summarize(nil))
}
