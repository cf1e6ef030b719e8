// SPDX-License-Identifier: MIT

package uigraph

import (
	"fmt"

	"github.com/katalvlaran/linkalike/table"
)

// FilterKind tags the variant held by a Filter.
type FilterKind int

const (
	// FilterNone allows every item. It is the zero value.
	FilterNone FilterKind = iota
	// FilterPredicate allows items for which a function returns true.
	FilterPredicate
	// FilterAllowList allows items whose id appears in a fixed list.
	FilterAllowList
)

// String implements fmt.Stringer.
func (k FilterKind) String() string {
	switch k {
	case FilterNone:
		return "none"
	case FilterPredicate:
		return "predicate"
	case FilterAllowList:
		return "allow-list"
	default:
		return fmt.Sprintf("FilterKind(%d)", int(k))
	}
}

// Filter selects the items that may be recommended. Build one with
// PredicateFilter or AllowListFilter; the zero Filter allows everything.
type Filter struct {
	kind  FilterKind
	pred  func(table.Value) bool
	allow map[string]struct{}
}

// PredicateFilter allows exactly the items for which fn returns true.
// Errors: ErrInvalidFilter when fn is nil.
func PredicateFilter(fn func(item table.Value) bool) (Filter, error) {
	if fn == nil {
		return Filter{}, fmt.Errorf("PredicateFilter: nil function: %w", ErrInvalidFilter)
	}

	return Filter{kind: FilterPredicate, pred: fn}, nil
}

// AllowListFilter allows exactly the listed item ids. Ids are matched against
// the text form of an item value, so "42" matches both "42" and int64(42).
// Errors: ErrInvalidFilter when an id is empty.
func AllowListFilter(ids []string) (Filter, error) {
	allow := make(map[string]struct{}, len(ids))
	for i, id := range ids {
		if id == "" {
			return Filter{}, fmt.Errorf("AllowListFilter: empty id at position %d: %w", i, ErrInvalidFilter)
		}
		allow[id] = struct{}{}
	}

	return Filter{kind: FilterAllowList, allow: allow}, nil
}

// Kind returns the variant tag.
func (f Filter) Kind() FilterKind { return f.kind }

// Allows reports whether item may be recommended.
func (f Filter) Allows(item table.Value) bool {
	switch f.kind {
	case FilterPredicate:
		return f.pred(item)
	case FilterAllowList:
		if item == nil {
			return false
		}
		_, ok := f.allow[fmt.Sprint(item)]
		return ok
	default:
		return true
	}
}
