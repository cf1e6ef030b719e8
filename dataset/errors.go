// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrEmptyInput indicates the input has no header record.
	ErrEmptyInput = errors.New("dataset: empty input")

	// ErrMalformedRecord indicates a record whose field count differs from the header.
	ErrMalformedRecord = errors.New("dataset: malformed record")

	// ErrUnknownLabelColumn indicates WithLabelColumn named an absent column.
	ErrUnknownLabelColumn = errors.New("dataset: unknown label column")
)
