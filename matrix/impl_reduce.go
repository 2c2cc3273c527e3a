// SPDX-License-Identifier: MIT
// Package matrix - exact Gauss–Jordan reduction of augmented systems.
//
// Reduce brings an augmented matrix [A | b] to reduced row-echelon form over
// the rationals. Every operation is exact (big.Rat); a value is zero iff its
// Sign() is 0 and integral iff IsInt() holds, so no epsilon is ever needed.
//
// Algorithm:
//  1. Work on a private clone (inputs are never mutated).
//  2. Scan coefficient columns left to right. For column j pick the first row
//     at or below the current rank with a non-zero entry; if none exists the
//     column is free and reserves no row.
//  3. Swap the selected row into position rank, scale it so the pivot is 1,
//     then eliminate column j from every other row (above and below).
//  4. After the scan any row r >= rank has an all-zero coefficient block; a
//     non-zero right-hand side there marks the system inconsistent.
//
// Complexity:
//   - Time O(rank · n · (m+1)) rational operations, Space O(n·(m+1)).

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping.
const (
	opReduce   = "Reduce"
	opFromInts = "NewDenseFromInts"
	opAccess   = "Reduced"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Reduced is the outcome of Reduce.
//
// Invariants:
//   - For each pivot column c with row r = PivotRow[c]: Mat[r][c] == 1 and
//     Mat[k][c] == 0 for every k != r.
//   - Rows r >= Rank have an all-zero coefficient block.
//   - PivotCols and Free partition [0, Vars) and are both ascending.
type Reduced struct {
	Mat          *Dense // RREF of [A | b]; last column is the right-hand side
	PivotRow     []int  // PivotRow[col] = row of the pivot, or -1 for free columns
	PivotCols    []int  // pivot columns in ascending order (PivotCols[r] owns row r)
	Free         []int  // free columns in ascending order
	Rank         int    // number of pivot rows
	Vars         int    // number of coefficient columns (m)
	Inconsistent bool   // some zero row has a non-zero right-hand side
}

// Reduce performs Gauss–Jordan elimination on a copy of aug.
//
// Inputs:
//   - aug: n×(m+1) augmented matrix; n and m may be zero.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (no right-hand side column).
func Reduce(aug *Dense) (*Reduced, error) {
	if err := ValidateAugmented(aug); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}

	var (
		w    = aug.Clone()
		rows = w.r
		vars = w.c - 1
		red  = &Reduced{
			Mat:       w,
			PivotRow:  make([]int, vars),
			PivotCols: make([]int, 0, vars),
			Free:      make([]int, 0, vars),
			Vars:      vars,
		}
		rank, col, r, sel int
		inv, f            big.Rat
	)
	for col = 0; col < vars; col++ {
		red.PivotRow[col] = -1
	}

	for col = 0; col < vars; col++ {
		if rank == rows {
			// No rows left to reserve: the rest of the columns are free.
			red.Free = append(red.Free, col)
			continue
		}
		sel = -1
		for r = rank; r < rows; r++ {
			if w.cell(r, col).Sign() != 0 {
				sel = r
				break
			}
		}
		if sel < 0 {
			red.Free = append(red.Free, col)
			continue
		}

		w.swapRows(rank, sel)
		inv.Inv(w.cell(rank, col))
		w.scaleRow(rank, col, &inv)
		for r = 0; r < rows; r++ {
			if r == rank || w.cell(r, col).Sign() == 0 {
				continue
			}
			f.Set(w.cell(r, col)) // copy: subRow rewrites this cell
			w.subRow(r, rank, col, &f)
		}

		red.PivotRow[col] = rank
		red.PivotCols = append(red.PivotCols, col)
		rank++
	}
	red.Rank = rank

	for r = rank; r < rows; r++ {
		if w.cell(r, vars).Sign() != 0 {
			red.Inconsistent = true
			break
		}
	}

	return red, nil
}

// Rows returns the number of rows (positions) in the reduced matrix.
func (rd *Reduced) Rows() int { return rd.Mat.r }

// Coeff returns a copy of the coefficient at (row, col).
func (rd *Reduced) Coeff(row, col int) (*big.Rat, error) {
	if col < 0 || col >= rd.Vars {
		return nil, matrixErrorf(opAccess, ErrOutOfRange)
	}

	return rd.Mat.At(row, col)
}

// PivotValue returns a copy of the right-hand side of row.
func (rd *Reduced) PivotValue(row int) (*big.Rat, error) {
	return rd.Mat.At(row, rd.Vars)
}

// IsIdentityBlock reports whether the pivot invariants hold: pivot columns
// form an identity sub-block and rows beyond Rank have zero coefficients.
// Complexity: O(n·m).
func (rd *Reduced) IsIdentityBlock() bool {
	var (
		m          = rd.Mat
		r, c, prow int
	)
	for _, c = range rd.PivotCols {
		prow = rd.PivotRow[c]
		for r = 0; r < m.r; r++ {
			x := m.cell(r, c)
			if r == prow {
				if !x.IsInt() || x.Num().Cmp(big.NewInt(1)) != 0 {
					return false
				}
			} else if x.Sign() != 0 {
				return false
			}
		}
	}
	for r = rd.Rank; r < m.r; r++ {
		for c = 0; c < rd.Vars; c++ {
			if m.cell(r, c).Sign() != 0 {
				return false
			}
		}
	}

	return true
}
