// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) of exact rationals & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep every value exact: cells are big.Rat, there is no float64 anywhere.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1) plus big.Rat copy; Clone: O(r*c).

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxSetInt = "SetInt" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of exact rationals.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value of big.Rat is 0, so a fresh buffer is a zero matrix.
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []big.Rat // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Zero rows or zero columns are legal: an instance with no positions or no
// buttons still has a well-defined augmented matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]big.Rat, rows*cols)}, nil
}

// NewDenseFromInts builds a Dense from a rectangular integer grid.
// An empty grid yields a 0×0 matrix.
//
// Errors:
//   - ErrDimensionMismatch for ragged input.
func NewDenseFromInts(grid [][]int64) (*Dense, error) {
	var rows, cols int
	rows = len(grid)
	if rows > 0 {
		cols = len(grid[0])
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < rows; i++ {
		if len(grid[i]) != cols {
			return nil, matrixErrorf(opFromInts, ErrDimensionMismatch)
		}
		for j = 0; j < cols; j++ {
			m.data[i*cols+j].SetInt64(grid[i][j])
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// cell returns a pointer into the buffer. Hot-path kernels only; no bounds check.
func (m *Dense) cell(row, col int) *big.Rat { return &m.data[row*m.c+col] }

// At returns a copy of the value at (row, col) or ErrOutOfRange.
// The caller owns the returned value; mutating it never touches the matrix.
func (m *Dense) At(row, col int) (*big.Rat, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxAt, row, col, err)
	}

	return new(big.Rat).Set(&m.data[off]), nil
}

// Set stores a copy of v at (row, col). A nil v stores zero.
func (m *Dense) Set(row, col int, v *big.Rat) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if v == nil {
		m.data[off].SetInt64(0)

		return nil
	}
	m.data[off].Set(v)

	return nil
}

// SetInt stores the integer v at (row, col).
func (m *Dense) SetInt(row, col int, v int64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSetInt, row, col, err)
	}
	m.data[off].SetInt64(v)

	return nil
}

// Clone returns a deep copy; mutations of the clone do not affect the original.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]big.Rat, len(m.data))
	for i := range m.data {
		cp[i].Set(&m.data[i])
	}

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and o have the same shape and identical values.
// Two nil matrices are equal.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(&o.data[i]) != 0 {
			return false
		}
	}

	return true
}

// swapRows exchanges rows a and b in place.
func (m *Dense) swapRows(a, b int) {
	if a == b {
		return
	}
	var (
		baseA = a * m.c
		baseB = b * m.c
		k     int
	)
	for k = 0; k < m.c; k++ {
		// A swap keeps each backing array owned by exactly one cell.
		m.data[baseA+k], m.data[baseB+k] = m.data[baseB+k], m.data[baseA+k]
	}
}

// scaleRow multiplies row i by s, starting at column from.
func (m *Dense) scaleRow(i, from int, s *big.Rat) {
	var (
		base = i * m.c
		k    int
	)
	for k = from; k < m.c; k++ {
		m.data[base+k].Mul(&m.data[base+k], s)
	}
}

// subRow performs dst -= f*src over columns [from, c).
// f must not alias any cell of dst.
func (m *Dense) subRow(dst, src, from int, f *big.Rat) {
	var (
		baseD = dst * m.c
		baseS = src * m.c
		k     int
		prod  big.Rat
	)
	for k = from; k < m.c; k++ {
		if m.data[baseS+k].Sign() == 0 {
			continue
		}
		prod.Mul(f, &m.data[baseS+k])
		m.data[baseD+k].Sub(&m.data[baseD+k], &prod)
	}
}

// String renders rows as lines of comma-separated rationals for diagnostics.
// Not for hot paths.
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[i*m.c+j].RatString())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
