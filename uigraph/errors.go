// SPDX-License-Identifier: MIT

package uigraph

import "errors"

var (
	// ErrInvalidFilter indicates a malformed recommendation filter
	// (nil predicate, or an empty id in an allow list).
	ErrInvalidFilter = errors.New("uigraph: invalid recommendation filter")

	// ErrInvalidConfig indicates a configuration with clashing column names.
	ErrInvalidConfig = errors.New("uigraph: invalid configuration")

	// ErrNilTable indicates the required interaction table is nil.
	ErrNilTable = errors.New("uigraph: interaction table is nil")
)
