// SPDX-License-Identifier: MIT
// Package: linkalike/table
//
// errors.go: sentinel errors for the table package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Context (offending name, label, position) is attached with %w at the
//     return site via tableErrorf, never baked into the sentinel.

package table

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyColumnName indicates a column was declared with an empty name.
	ErrEmptyColumnName = errors.New("table: empty column name")

	// ErrDuplicateColumn indicates two columns share the same name.
	ErrDuplicateColumn = errors.New("table: duplicate column name")

	// ErrDuplicateLabel indicates two rows share the same label.
	ErrDuplicateLabel = errors.New("table: duplicate row label")

	// ErrRaggedColumns indicates columns (or rows) of unequal length.
	ErrRaggedColumns = errors.New("table: columns have unequal length")

	// ErrLabelCount indicates the label sequence does not match the row count.
	ErrLabelCount = errors.New("table: label count does not match row count")

	// ErrUnsupportedValue indicates a cell holds a non-scalar Go value.
	ErrUnsupportedValue = errors.New("table: unsupported cell value")

	// ErrUnknownColumn indicates a referenced column does not exist.
	ErrUnknownColumn = errors.New("table: unknown column")

	// ErrUnknownLabel indicates a referenced row label does not exist.
	ErrUnknownLabel = errors.New("table: unknown row label")

	// ErrOutOfRange indicates a positional row or column index is out of bounds.
	ErrOutOfRange = errors.New("table: index out of range")
)

// tableErrorf prefixes err with the method name and a formatted detail,
// keeping err matchable through errors.Is.
func tableErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
