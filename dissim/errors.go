// SPDX-License-Identifier: MIT

package dissim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSelection indicates that requested columns or row labels are
	// absent from the source table. The underlying table error is wrapped too.
	ErrInvalidSelection = errors.New("dissim: invalid selection")

	// ErrDuplicateSelection indicates that WithColumns or WithRows repeats a
	// name. The underlying table error is wrapped too.
	ErrDuplicateSelection = errors.New("dissim: duplicate name in selection")

	// ErrNilTable indicates a nil *table.Table was passed.
	ErrNilTable = errors.New("dissim: table is nil")

	// ErrOutOfRange indicates a Matrix index or label outside its bounds.
	ErrOutOfRange = errors.New("dissim: index out of range")
)

// dissimErrorf wraps err with the method name so errors.Is still matches.
func dissimErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
