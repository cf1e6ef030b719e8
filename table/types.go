// SPDX-License-Identifier: MIT
// Package table defines Table, the explicit labeled tabular snapshot consumed
// by the dissimilarity engine and the edge/node list builder.
//
// A Table is an ordered sequence of named columns of equal length plus a
// row-label sequence. Labels are unique within one table; when none are given
// the positional labels "0".."n-1" are used. Every constructor copies the
// caller's slices, and every accessor returns copies, so a Table never shares
// mutable state with its callers and is safe for concurrent reads.
//
// Errors:
//
//	ErrEmptyColumnName  - a column name is "".
//	ErrDuplicateColumn  - two columns share a name.
//	ErrDuplicateLabel   - two rows share a label.
//	ErrRaggedColumns    - columns (or rows) of unequal length.
//	ErrLabelCount       - len(labels) != number of rows.
//	ErrUnsupportedValue - a non-scalar cell.
//	ErrUnknownColumn    - a referenced column is absent.
//	ErrUnknownLabel     - a referenced row label is absent.
//	ErrOutOfRange       - positional index out of bounds.
package table

import "strconv"

// Method names used as error prefixes.
const (
	methodNew         = "New"
	methodFromColumns = "FromColumns"
	methodSelect      = "Select"
	methodColumn      = "Column"
	methodAt          = "At"
	methodRow         = "Row"
	methodRecord      = "Record"
)

// Table is an immutable, column-major snapshot of named scalar columns.
type Table struct {
	names   []string       // column order
	colIdx  map[string]int // column name → position
	labels  []string       // row order
	rowIdx  map[string]int // row label → position
	columns [][]Value      // columns[c][r]
}

// Option configures Table construction.
type Option func(*tableConfig)

type tableConfig struct {
	labels []string
}

// WithLabels sets explicit row labels. The slice is copied.
func WithLabels(labels []string) Option {
	cp := append([]string(nil), labels...)
	return func(c *tableConfig) { c.labels = cp }
}

// New builds a Table from row-major data: rows[i][j] is the cell of row i in
// column names[j].
//
// Implementation:
//   - Stage 1: validate column names.
//   - Stage 2: normalize every cell and transpose into column-major storage.
//   - Stage 3: resolve labels (explicit or positional) and index them.
//
// Errors: ErrEmptyColumnName, ErrDuplicateColumn, ErrRaggedColumns,
// ErrUnsupportedValue, ErrLabelCount, ErrDuplicateLabel.
//
// Complexity: O(rows·cols).
func New(names []string, rows [][]interface{}, opts ...Option) (*Table, error) {
	colIdx, err := indexColumns(methodNew, names)
	if err != nil {
		return nil, err
	}

	columns := make([][]Value, len(names))
	for c := range columns {
		columns[c] = make([]Value, len(rows))
	}
	for r, row := range rows {
		if len(row) != len(names) {
			return nil, tableErrorf(methodNew, ErrRaggedColumns, "row %d has %d cells, want %d", r, len(row), len(names))
		}
		for c, cell := range row {
			v, err := Normalize(cell)
			if err != nil {
				return nil, tableErrorf(methodNew, err, "row %d column %q", r, names[c])
			}
			columns[c][r] = v
		}
	}

	return finish(methodNew, names, colIdx, columns, len(rows), opts)
}

// FromColumns builds a Table from column-major data: cols[j] holds every cell
// of column names[j].
//
// Errors: same as New.
//
// Complexity: O(rows·cols).
func FromColumns(names []string, cols [][]interface{}, opts ...Option) (*Table, error) {
	colIdx, err := indexColumns(methodFromColumns, names)
	if err != nil {
		return nil, err
	}
	if len(cols) != len(names) {
		return nil, tableErrorf(methodFromColumns, ErrRaggedColumns, "%d columns for %d names", len(cols), len(names))
	}

	n := 0
	if len(cols) > 0 {
		n = len(cols[0])
	}
	columns := make([][]Value, len(names))
	for c, col := range cols {
		if len(col) != n {
			return nil, tableErrorf(methodFromColumns, ErrRaggedColumns, "column %q has %d cells, want %d", names[c], len(col), n)
		}
		columns[c] = make([]Value, n)
		for r, cell := range col {
			v, err := Normalize(cell)
			if err != nil {
				return nil, tableErrorf(methodFromColumns, err, "row %d column %q", r, names[c])
			}
			columns[c][r] = v
		}
	}

	return finish(methodFromColumns, names, colIdx, columns, n, opts)
}

// indexColumns validates names and returns the name → position index.
func indexColumns(method string, names []string) (map[string]int, error) {
	idx := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, tableErrorf(method, ErrEmptyColumnName, "position %d", i)
		}
		if _, dup := idx[name]; dup {
			return nil, tableErrorf(method, ErrDuplicateColumn, "%q", name)
		}
		idx[name] = i
	}

	return idx, nil
}

// finish resolves labels and assembles the Table.
func finish(method string, names []string, colIdx map[string]int, columns [][]Value, n int, opts []Option) (*Table, error) {
	var cfg tableConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	labels := cfg.labels
	if labels == nil {
		labels = positionalLabels(n)
	}
	if len(labels) != n {
		return nil, tableErrorf(method, ErrLabelCount, "%d labels for %d rows", len(labels), n)
	}
	rowIdx := make(map[string]int, n)
	for i, l := range labels {
		if _, dup := rowIdx[l]; dup {
			return nil, tableErrorf(method, ErrDuplicateLabel, "%q", l)
		}
		rowIdx[l] = i
	}

	return &Table{
		names:   append([]string(nil), names...),
		colIdx:  colIdx,
		labels:  labels,
		rowIdx:  rowIdx,
		columns: columns,
	}, nil
}

func positionalLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}

	return labels
}
