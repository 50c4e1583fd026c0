// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row* return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a finite-only numeric policy on writes.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Add: O(1); Row scans: O(c); Clone/Equal: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxAdd    = "Add"    // method tag used in error wrappers
	ctxRow    = "Row"    // method tag used in row-scan wrappers
	ctxFromRs = "FromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w so callers keep matching with errors.Is.
//
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewSquare is shorthand for NewDense(n, n).
// Complexity: O(n²).
func NewSquare(n int) (*Dense, error) {
	return NewDense(n, n)
}

// FromRows builds a Dense from a rectangular literal, copying every value.
// Implementation:
//   - Stage 1: validate non-empty input and uniform row length.
//   - Stage 2: validate every value is finite.
//   - Stage 3: copy row by row into the flat buffer.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row),
//   - ErrDimensionMismatch (ragged rows),
//   - ErrNaNInf (non-finite value), wrapped with coordinates.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < m.r; i++ {
		if len(rows[i]) != m.c {
			return nil, denseErrorf(ctxFromRs, i, len(rows[i]), ErrDimensionMismatch)
		}
		for j = 0; j < m.c; j++ {
			if math.IsNaN(rows[i][j]) || math.IsInf(rows[i][j], 0) {
				return nil, denseErrorf(ctxFromRs, i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*m.c:(i+1)*m.c], rows[i])
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
//
// Complexity: O(1).
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

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel error.
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: reject NaN/±Inf.
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Add increments the cell at (row, col) by delta in place.
// It is the read-modify-write primitive used by incremental updates and is
// NOT safe for concurrent use on the same cell.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf if delta or the result is not finite.
//
// Complexity: O(1).
func (m *Dense) Add(row, col int, delta float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxAdd, row, col, err)
	}
	sum := m.data[off] + delta
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return denseErrorf(ctxAdd, row, col, ErrNaNInf)
	}
	m.data[off] = sum

	return nil
}

// rowSlice returns the backing slice of row i (no copy) or ErrOutOfRange.
func (m *Dense) rowSlice(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c], nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	src, err := m.rowSlice(i)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(src))
	copy(out, src)

	return out, nil
}

// RowArgMax returns the column index of the maximum value in row i.
// Ties resolve to the lowest column index ("first maximum"), so an all-zero
// row yields 0.
//
// Complexity: O(c).
func (m *Dense) RowArgMax(i int) (int, error) {
	src, err := m.rowSlice(i)
	if err != nil {
		return 0, err
	}

	var (
		best int
		j    int
	)
	for j = 1; j < len(src); j++ {
		if src[j] > src[best] { // strict: earlier column wins ties
			best = j
		}
	}

	return best, nil
}

// RowArgMaxAmong returns the first column in cols holding the maximum value
// of row i restricted to cols. cols must be non-empty and ascending for the
// lowest-index tie rule to hold.
//
// Errors:
//   - ErrOutOfRange for a bad row or any column outside [0, c),
//   - ErrDimensionMismatch when cols is empty.
//
// Complexity: O(len(cols)).
func (m *Dense) RowArgMaxAmong(i int, cols []int) (int, error) {
	src, err := m.rowSlice(i)
	if err != nil {
		return 0, err
	}
	if len(cols) == 0 {
		return 0, denseErrorf(ctxRow, i, 0, ErrDimensionMismatch)
	}

	var best, j int
	best = -1
	for _, j = range cols {
		if j < 0 || j >= m.c {
			return 0, denseErrorf(ctxRow, i, j, ErrOutOfRange)
		}
		if best < 0 || src[j] > src[best] {
			best = j
		}
	}

	return best, nil
}

// RowMax returns the maximum value in row i.
// Complexity: O(c).
func (m *Dense) RowMax(i int) (float64, error) {
	j, err := m.RowArgMax(i)
	if err != nil {
		return 0, err
	}

	return m.data[i*m.c+j], nil
}

// RowPositive lists, in ascending order, every column j with m[i][j] > 0.
// For a reward matrix these are the legal transitions out of state i.
//
// Complexity: O(c).
func (m *Dense) RowPositive(i int) ([]int, error) {
	src, err := m.rowSlice(i)
	if err != nil {
		return nil, err
	}

	out := make([]int, 0, len(src))
	var j int
	for j = 0; j < len(src); j++ {
		if src[j] > 0 {
			out = append(out, j)
		}
	}

	return out, nil
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether o has the same shape and bit-identical values.
// A nil argument is never equal.
//
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return false
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	var k int
	for k = range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Not for hot paths; intended for logs and debugging.
//
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
