// SPDX-License-Identifier: MIT
// File: methods.go
// Role: read-only queries and sub-table selection.
// Determinism:
//   - Columns() and Labels() preserve construction order.
//   - Select preserves the caller's requested order for labels and columns.
// Copies:
//   - Every slice returned here is a fresh copy.

package table

// Field is one (column, value) pair of a row record.
type Field struct {
	Name  string
	Value Value
}

// NumRows returns the number of rows. Complexity: O(1).
func (t *Table) NumRows() int { return len(t.labels) }

// NumCols returns the number of columns. Complexity: O(1).
func (t *Table) NumCols() int { return len(t.names) }

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string { return append([]string(nil), t.names...) }

// Labels returns a copy of the row labels in order.
func (t *Table) Labels() []string { return append([]string(nil), t.labels...) }

// HasColumn reports whether name is a column of t.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.colIdx[name]
	return ok
}

// ColumnIndex returns the position of column name, or false if absent.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.colIdx[name]
	return i, ok
}

// LabelIndex returns the position of the row labelled label, or false if absent.
func (t *Table) LabelIndex(label string) (int, bool) {
	i, ok := t.rowIdx[label]
	return i, ok
}

// At returns the cell at positional (row, col).
// Errors: ErrOutOfRange.
func (t *Table) At(row, col int) (Value, error) {
	if row < 0 || row >= len(t.labels) || col < 0 || col >= len(t.names) {
		return nil, tableErrorf(methodAt, ErrOutOfRange, "(%d,%d) in %dx%d", row, col, len(t.labels), len(t.names))
	}

	return t.columns[col][row], nil
}

// Column returns a copy of every cell of the named column, in row order.
// Errors: ErrUnknownColumn.
func (t *Table) Column(name string) ([]Value, error) {
	c, ok := t.colIdx[name]
	if !ok {
		return nil, tableErrorf(methodColumn, ErrUnknownColumn, "%q", name)
	}

	return append([]Value(nil), t.columns[c]...), nil
}

// Row returns a copy of row i in column order.
// Errors: ErrOutOfRange.
func (t *Table) Row(i int) ([]Value, error) {
	if i < 0 || i >= len(t.labels) {
		return nil, tableErrorf(methodRow, ErrOutOfRange, "row %d of %d", i, len(t.labels))
	}
	row := make([]Value, len(t.names))
	for c := range t.columns {
		row[c] = t.columns[c][i]
	}

	return row, nil
}

// Record returns row i restricted to cols, as ordered (name, value) pairs in
// the order of cols. A nil cols selects every column.
//
// Errors: ErrOutOfRange, ErrUnknownColumn.
func (t *Table) Record(i int, cols []string) ([]Field, error) {
	if i < 0 || i >= len(t.labels) {
		return nil, tableErrorf(methodRecord, ErrOutOfRange, "row %d of %d", i, len(t.labels))
	}
	if cols == nil {
		cols = t.names
	}
	rec := make([]Field, 0, len(cols))
	for _, name := range cols {
		c, ok := t.colIdx[name]
		if !ok {
			return nil, tableErrorf(methodRecord, ErrUnknownColumn, "%q", name)
		}
		rec = append(rec, Field{Name: name, Value: t.columns[c][i]})
	}

	return rec, nil
}

// Select returns the sub-table made of the rows labelled labels and the
// columns cols, both in the requested order. A nil labels keeps every row in
// natural order; a nil cols keeps every column.
//
// Implementation:
//   - Stage 1: resolve every column name, then every label, to positions.
//   - Stage 2: gather cells into fresh column-major storage.
//
// Errors: ErrUnknownColumn, ErrUnknownLabel, ErrDuplicateColumn and
// ErrDuplicateLabel (when a selection repeats a name).
//
// Complexity: O(len(labels)·len(cols)).
func (t *Table) Select(labels, cols []string) (*Table, error) {
	if cols == nil {
		cols = t.names
	}
	if labels == nil {
		labels = t.labels
	}

	colPos := make([]int, len(cols))
	for j, name := range cols {
		c, ok := t.colIdx[name]
		if !ok {
			return nil, tableErrorf(methodSelect, ErrUnknownColumn, "%q", name)
		}
		colPos[j] = c
	}
	rowPos := make([]int, len(labels))
	for i, l := range labels {
		r, ok := t.rowIdx[l]
		if !ok {
			return nil, tableErrorf(methodSelect, ErrUnknownLabel, "%q", l)
		}
		rowPos[i] = r
	}

	colIdx, err := indexColumns(methodSelect, cols)
	if err != nil {
		return nil, err
	}
	columns := make([][]Value, len(cols))
	for j, c := range colPos {
		columns[j] = make([]Value, len(rowPos))
		for i, r := range rowPos {
			columns[j][i] = t.columns[c][r]
		}
	}

	return finish(methodSelect, cols, colIdx, columns, len(rowPos), []Option{WithLabels(labels)})
}
