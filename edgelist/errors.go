// SPDX-License-Identifier: MIT

package edgelist

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownMetadataColumn indicates requested metadata columns are absent
	// from the table. The wrapped message names every offending column.
	ErrUnknownMetadataColumn = errors.New("edgelist: unknown metadata column")

	// ErrInvalidMetadataType indicates a metadata entry is not a column name
	// (an empty string).
	ErrInvalidMetadataType = errors.New("edgelist: metadata columns must be non-empty column names")

	// ErrUnknownColumn indicates a structural column (source, destination,
	// weight or node id) is absent from the table.
	ErrUnknownColumn = errors.New("edgelist: unknown column")

	// ErrReservedAttribute indicates a metadata column is literally named
	// "weight" while a different column is designated as the weight.
	ErrReservedAttribute = errors.New("edgelist: attribute key is reserved")

	// ErrNilTable indicates a nil *table.Table was passed.
	ErrNilTable = errors.New("edgelist: table is nil")
)

// edgelistErrorf prefixes err with the method name and a detail.
func edgelistErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", method, err, fmt.Sprintf(format, args...))
}

// quoteAll renders names as a bracketed, quoted list for error messages.
func quoteAll(names []string) string {
	q := make([]string, len(names))
	for i, n := range names {
		q[i] = fmt.Sprintf("%q", n)
	}

	return "[" + strings.Join(q, " ") + "]"
}
