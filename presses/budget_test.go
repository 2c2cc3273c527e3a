package presses

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minpress/system"
)

func mustBuild(t *testing.T, buttons [][]int, target []int) *system.LinearSystem {
	t.Helper()
	sys, err := system.Build(buttons, target)
	require.NoError(t, err)

	return sys
}

func TestMeter_StepLimitIsExact(t *testing.T) {
	o := DefaultOptions()
	o.StepLimit = 3
	mt := newMeter(context.Background(), o)

	require.False(t, mt.tick())
	require.False(t, mt.tick())
	require.False(t, mt.tick())
	require.True(t, mt.tick())
	require.True(t, mt.exhausted)
	require.True(t, mt.tick(), "exhaustion is sticky")
	require.EqualValues(t, 4, mt.steps)
}

func TestMeter_ContextSampled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	mt := newMeter(ctx, DefaultOptions())
	cancel()

	var i int
	for i = 1; i < checkEvery+1; i++ {
		require.False(t, mt.tick(), "step %d", i)
	}
	require.True(t, mt.tick(), "cancellation seen at the sampling step")
}

func TestMeter_Deadline(t *testing.T) {
	o := DefaultOptions()
	o.TimeLimit = time.Nanosecond
	mt := newMeter(context.Background(), o)
	time.Sleep(time.Millisecond)

	for !mt.tick() {
		require.LessOrEqual(t, mt.steps, int64(checkEvery+1))
	}
	require.True(t, mt.exhausted)
}

func TestIncumbent(t *testing.T) {
	in := newIncumbent(2)
	require.True(t, in.beats(1<<40))

	x := []int{3, 1}
	require.True(t, in.offer(4, x))
	x[0] = 99 // offer copies
	require.Equal(t, []int{3, 1}, in.x)

	require.False(t, in.offer(4, []int{2, 2}), "ties do not replace")
	require.False(t, in.offer(5, []int{5, 0}))
	require.True(t, in.offer(2, []int{1, 1}))
	require.Equal(t, 2, in.sum)

	require.True(t, in.beats(1))
	require.False(t, in.beats(2))
}

func TestGreedySeed(t *testing.T) {
	sys := mustBuild(t, [][]int{{0, 1}, {1, 2}}, []int{2, 3, 1})
	seed := greedySeed(sys)
	require.NotNil(t, seed)
	require.NoError(t, sys.Verify(seed))

	// No feasible greedy completion: coverage cannot reach position 1.
	require.Nil(t, greedySeed(mustBuild(t, [][]int{{0}}, []int{3, 5})))
}
