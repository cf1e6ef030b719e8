// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"math"
)

// Value is a single scalar cell. After normalization it is always one of:
// nil (missing), string, bool, int64 or float64.
type Value = interface{}

// Normalize maps a Go scalar onto the canonical Value kinds.
// Sized integers widen to int64 and float32 widens to float64; unsigned
// integers that do not fit int64 are rejected with ErrUnsupportedValue, as is
// any non-scalar type (slices, maps, structs, pointers).
//
// Complexity: O(1).
func Normalize(v interface{}) (Value, error) {
	switch x := v.(type) {
	case nil, string, bool, int64, float64:
		return x, nil
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return nil, fmt.Errorf("%w: uint %d overflows int64", ErrUnsupportedValue, x)
		}
		return int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("%w: uint64 %d overflows int64", ErrUnsupportedValue, x)
		}
		return int64(x), nil
	case float32:
		return float64(x), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// Equal reports exact equality of two normalized cells.
// There is no coercion across kinds: int64(1) and float64(1) differ, and a
// value never equals a value of another kind. NaN equals nothing, including
// itself; nil equals nil.
func Equal(a, b Value) bool {
	return a == b
}
