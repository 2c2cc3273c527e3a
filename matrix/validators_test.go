// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minpress/matrix"
)

func TestValidateBinary(t *testing.T) {
	t.Parallel()

	ok := mustInts(t, [][]int64{{1, 0, 7}, {0, 1, 9}})
	require.NoError(t, matrix.ValidateBinary(ok, 2))
	require.ErrorIs(t, matrix.ValidateBinary(ok, 3), matrix.ErrNonBinary)
	require.NoError(t, matrix.ValidateBinary(ok, 0))
	require.ErrorIs(t, matrix.ValidateBinary(ok, 4), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinary(nil, 0), matrix.ErrNilMatrix)

	neg := mustInts(t, [][]int64{{-1, 0}})
	require.ErrorIs(t, matrix.ValidateBinary(neg, 2), matrix.ErrNonBinary)

	half := ok.Clone()
	require.NoError(t, half.Set(0, 0, big.NewRat(1, 2)))
	require.ErrorIs(t, matrix.ValidateBinary(half, 2), matrix.ErrNonBinary)
}

func TestValidateAugmented(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateAugmented(nil), matrix.ErrNilMatrix)

	empty, err := matrix.NewDense(3, 0)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateAugmented(empty), matrix.ErrDimensionMismatch)

	rhsOnly, err := matrix.NewDense(0, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateAugmented(rhsOnly))
}

func TestValidateNonNegativeInts(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateNonNegativeInts(nil))
	require.NoError(t, matrix.ValidateNonNegativeInts([]int{0, 3}))
	err := matrix.ValidateNonNegativeInts([]int{1, -2})
	require.ErrorIs(t, err, matrix.ErrNegativeValue)
	require.Contains(t, err.Error(), "ValidateNonNegativeInts")
}
