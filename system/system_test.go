package system_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minpress/matrix"
	"github.com/katalvlaran/minpress/system"
)

func TestBuild_NormalisesButtons(t *testing.T) {
	sys, err := system.Build([][]int{{2, 0, 2}, {}, {1}}, []int{1, 2, 3})
	require.NoError(t, err)

	require.Equal(t, 3, sys.Positions())
	require.Equal(t, 3, sys.NumButtons())
	want := []system.Button{
		{ID: 0, Positions: []int{0, 2}},
		{ID: 1, Positions: []int{}},
		{ID: 2, Positions: []int{1}},
	}
	if diff := cmp.Diff(want, sys.Buttons()); diff != "" {
		t.Errorf("buttons mismatch (-want +got):\n%s", diff)
	}
	require.True(t, sys.Covers(2, 0))
	require.False(t, sys.Covers(1, 0))
	require.True(t, sys.Button(0).Covers(2))
	require.False(t, sys.Button(1).Covers(0))
	require.Equal(t, 3, sys.MaxTarget())
	require.False(t, sys.IsZeroTarget())
}

func TestBuild_Errors(t *testing.T) {
	_, err := system.Build([][]int{{0, 3}}, []int{1, 1, 1})
	require.ErrorIs(t, err, system.ErrPositionOutOfRange)

	_, err = system.Build([][]int{{-1}}, []int{1})
	require.ErrorIs(t, err, system.ErrPositionOutOfRange)

	_, err = system.Build([][]int{{0}}, []int{1, -4})
	require.ErrorIs(t, err, system.ErrNegativeTarget)
	require.Contains(t, err.Error(), "target[1]=-4")
}

func TestBuild_Empty(t *testing.T) {
	sys, err := system.Build(nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0, sys.Positions())
	require.Equal(t, 0, sys.NumButtons())
	require.True(t, sys.IsZeroTarget())
	require.Equal(t, 0, sys.MaxTarget())
	require.NoError(t, sys.Verify(nil))
}

func TestTarget_IsACopy(t *testing.T) {
	sys, err := system.Build([][]int{{0}}, []int{5})
	require.NoError(t, err)
	b := sys.Target()
	b[0] = 99
	require.Equal(t, 5, sys.TargetAt(0))
}

func TestFromRows(t *testing.T) {
	sys, err := system.FromRows([][]int{
		{1, 0},
		{1, 1},
		{0, 1},
	}, []int{2, 3, 1})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, sys.Button(0).Positions)
	require.Equal(t, []int{1, 2}, sys.Button(1).Positions)

	_, err = system.FromRows([][]int{{1, 2}}, []int{1})
	require.ErrorIs(t, err, system.ErrNonBinaryEntry)

	_, err = system.FromRows([][]int{{1, 0}, {1}}, []int{1, 1})
	require.ErrorIs(t, err, system.ErrRaggedMatrix)

	_, err = system.FromRows([][]int{{1}}, []int{1, 1})
	require.ErrorIs(t, err, system.ErrLengthMismatch)
}

func TestAugmented(t *testing.T) {
	sys, err := system.Build([][]int{{0, 1}, {1, 2}}, []int{2, 3, 1})
	require.NoError(t, err)

	aug, err := sys.Augmented()
	require.NoError(t, err)
	want, err := matrix.NewDenseFromInts([][]int64{
		{1, 0, 2},
		{1, 1, 3},
		{0, 1, 1},
	})
	require.NoError(t, err)
	require.True(t, want.Equal(aug), "got\n%s", aug)
	require.NoError(t, matrix.ValidateBinary(aug, sys.NumButtons()))
}

func TestVerify(t *testing.T) {
	sys, err := system.Build([][]int{{0, 1}, {1, 2}}, []int{2, 3, 1})
	require.NoError(t, err)

	require.NoError(t, sys.Verify([]int{2, 1}))
	require.ErrorIs(t, sys.Verify([]int{1, 1}), system.ErrUnsatisfied)
	require.ErrorIs(t, sys.Verify([]int{2}), system.ErrLengthMismatch)
	require.ErrorIs(t, sys.Verify([]int{3, -1}), system.ErrNegativePress)

	got, err := sys.Apply([]int{1, 4})
	require.NoError(t, err)
	require.Equal(t, []int{1, 5, 4}, got)
	require.Equal(t, 5, system.Sum([]int{1, 4}))
}
