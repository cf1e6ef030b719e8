// SPDX-License-Identifier: MIT

package edgelist

import (
	"github.com/katalvlaran/linkalike/table"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// WeightKey is the canonical attribute key of the designated weight column.
const WeightKey = "weight"

// Attrs is an insertion-ordered attribute mapping.
type Attrs = orderedmap.OrderedMap[string, table.Value]

// NewAttrs returns an empty attribute mapping.
func NewAttrs() *Attrs { return orderedmap.New[string, table.Value]() }

// Edge is one (source, destination, attributes) tuple.
// Attrs is nil for unweighted edges.
type Edge struct {
	From  table.Value
	To    table.Value
	Attrs *Attrs
}

// Weighted reports whether e carries an attribute mapping.
func (e Edge) Weighted() bool { return e.Attrs != nil }

// Weight returns the "weight" attribute, if present.
func (e Edge) Weight() (table.Value, bool) {
	if e.Attrs == nil {
		return nil, false
	}

	return e.Attrs.Get(WeightKey)
}

// Node is one (id, attributes) tuple. Attrs is never nil.
type Node struct {
	ID    table.Value
	Attrs *Attrs
}

// Keys returns the attribute keys of a in insertion order. A nil a yields nil.
func Keys(a *Attrs) []string {
	if a == nil {
		return nil
	}
	keys := make([]string, 0, a.Len())
	for p := a.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}

	return keys
}

// Option configures MakeEdgeList.
type Option func(*edgeConfig)

type edgeConfig struct {
	weight string
	meta   []string
}

// WithWeight designates col as the weight column. Its value is exposed under
// WeightKey and comes first among the edge attributes.
func WithWeight(col string) Option {
	return func(c *edgeConfig) { c.weight = col }
}

// WithMeta selects metadata columns carried as edge attributes, in order.
// They are only attached to weighted edges.
func WithMeta(cols ...string) Option {
	cp := append([]string(nil), cols...)
	return func(c *edgeConfig) { c.meta = cp }
}
