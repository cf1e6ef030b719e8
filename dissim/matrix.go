// SPDX-License-Identifier: MIT
// File: matrix.go
// Role: labelled square integer matrix returned by Pairwise.
// Storage:
//   - row-major flat slice, len(data) == n*n, for cache-friendly fills.
// Copies:
//   - Labels(), Row() and ToSlice() return fresh slices.

package dissim

import "fmt"

// Matrix is a square, symmetric, zero-diagonal matrix of mismatch counts
// indexed by row labels.
type Matrix struct {
	n        int            // side length
	compared int            // number of compared columns (upper bound of every cell)
	labels   []string       // row/column labels, selection order
	index    map[string]int // label → position
	data     []int          // row-major n*n cells
}

// newMatrix allocates an n×n zero matrix labelled by labels (len n).
// Labels are assumed unique (they come from a validated table).
func newMatrix(labels []string, compared int) *Matrix {
	n := len(labels)
	index := make(map[string]int, n)
	for i, l := range labels {
		index[l] = i
	}

	return &Matrix{
		n:        n,
		compared: compared,
		labels:   append([]string(nil), labels...),
		index:    index,
		data:     make([]int, n*n),
	}
}

// Size returns the side length n.
func (m *Matrix) Size() int { return m.n }

// Compared returns the number of columns that were compared.
func (m *Matrix) Compared() int { return m.compared }

// Labels returns a copy of the row (and column) labels.
func (m *Matrix) Labels() []string { return append([]string(nil), m.labels...) }

// At returns the mismatch count between positional rows i and j.
// Errors: ErrOutOfRange.
func (m *Matrix) At(i, j int) (int, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}

// AtLabel returns the mismatch count between the rows labelled a and b.
// Errors: ErrOutOfRange when either label is unknown.
func (m *Matrix) AtLabel(a, b string) (int, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, fmt.Errorf("Matrix.AtLabel(%q,%q): %w", a, b, ErrOutOfRange)
	}
	j, ok := m.index[b]
	if !ok {
		return 0, fmt.Errorf("Matrix.AtLabel(%q,%q): %w", a, b, ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
func (m *Matrix) Row(i int) ([]int, error) {
	if i < 0 || i >= m.n {
		return nil, fmt.Errorf("Matrix.Row(%d): %w", i, ErrOutOfRange)
	}

	return append([]int(nil), m.data[i*m.n:(i+1)*m.n]...), nil
}

// ToSlice returns the matrix as a fresh [][]int.
// Complexity: O(n²).
func (m *Matrix) ToSlice() [][]int {
	out := make([][]int, m.n)
	for i := range out {
		out[i] = append([]int(nil), m.data[i*m.n:(i+1)*m.n]...)
	}

	return out
}

// setPair writes v at (i,j) and (j,i).
func (m *Matrix) setPair(i, j, v int) {
	m.data[i*m.n+j] = v
	m.data[j*m.n+i] = v
}
