// SPDX-License-Identifier: MIT
// File: edgelist.go
// Role: MakeEdgeList / MakeNodeList and their shared metadata validation.
// Determinism:
//   - one tuple per row, in row order.
//   - attribute order: "weight" first (edges only), then metadata in request order.

package edgelist

import (
	"github.com/katalvlaran/linkalike/table"
)

const (
	methodMakeEdgeList = "MakeEdgeList"
	methodMakeNodeList = "MakeNodeList"
)

// MakeEdgeList builds one Edge per row of t, from column from to column to.
//
// Implementation:
//   - Stage 1: validate metadata against t with from/to as structural columns.
//   - Stage 2: validate from, to and the weight column.
//   - Stage 3: if a weight column is set, drop it from the metadata, prepend it
//     under WeightKey, and attach the ordered attributes to every edge;
//     otherwise emit plain (from, to) pairs.
//
// Errors:
//   - ErrNilTable, ErrInvalidMetadataType, ErrUnknownMetadataColumn,
//     ErrReservedAttribute, ErrUnknownColumn.
//
// Complexity: O(rows·(1+len(meta))).
func MakeEdgeList(t *table.Table, from, to string, opts ...Option) ([]Edge, error) {
	if t == nil {
		return nil, edgelistErrorf(methodMakeEdgeList, ErrNilTable, "from %q to %q", from, to)
	}
	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	meta, err := validateMeta(methodMakeEdgeList, t, cfg.meta, from, to)
	if err != nil {
		return nil, err
	}
	fromCol, err := column(methodMakeEdgeList, t, from)
	if err != nil {
		return nil, err
	}
	toCol, err := column(methodMakeEdgeList, t, to)
	if err != nil {
		return nil, err
	}

	edges := make([]Edge, t.NumRows())
	if cfg.weight == "" {
		for i := range edges {
			edges[i] = Edge{From: fromCol[i], To: toCol[i]}
		}

		return edges, nil
	}

	weightCol, err := column(methodMakeEdgeList, t, cfg.weight)
	if err != nil {
		return nil, err
	}
	meta = without(meta, cfg.weight)
	for _, name := range meta {
		if name == WeightKey {
			return nil, edgelistErrorf(methodMakeEdgeList, ErrReservedAttribute, "metadata %q collides with weight column %q", name, cfg.weight)
		}
	}
	metaCols, err := columns(methodMakeEdgeList, t, meta)
	if err != nil {
		return nil, err
	}

	for i := range edges {
		attrs := NewAttrs()
		attrs.Set(WeightKey, weightCol[i])
		for k, name := range meta {
			attrs.Set(name, metaCols[k][i])
		}
		edges[i] = Edge{From: fromCol[i], To: toCol[i], Attrs: attrs}
	}

	return edges, nil
}

// MakeNodeList builds one Node per row of t, identified by column nodeCol and
// carrying the meta columns (in order) as attributes. nodeCol itself is never
// an attribute.
//
// Errors: ErrNilTable, ErrInvalidMetadataType, ErrUnknownMetadataColumn,
// ErrUnknownColumn.
//
// Complexity: O(rows·(1+len(meta))).
func MakeNodeList(t *table.Table, nodeCol string, meta []string) ([]Node, error) {
	if t == nil {
		return nil, edgelistErrorf(methodMakeNodeList, ErrNilTable, "node column %q", nodeCol)
	}
	meta, err := validateMeta(methodMakeNodeList, t, meta, nodeCol)
	if err != nil {
		return nil, err
	}
	ids, err := column(methodMakeNodeList, t, nodeCol)
	if err != nil {
		return nil, err
	}
	metaCols, err := columns(methodMakeNodeList, t, meta)
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, t.NumRows())
	for i := range nodes {
		attrs := NewAttrs()
		for k, name := range meta {
			attrs.Set(name, metaCols[k][i])
		}
		nodes[i] = Node{ID: ids[i], Attrs: attrs}
	}

	return nodes, nil
}

// validateMeta is the single validation routine shared by edge and node
// construction. It returns a fresh slice: structural names removed, repeats
// collapsed to their first occurrence, order otherwise preserved.
func validateMeta(method string, t *table.Table, meta []string, structural ...string) ([]string, error) {
	skip := make(map[string]struct{}, len(structural))
	for _, s := range structural {
		skip[s] = struct{}{}
	}

	out := make([]string, 0, len(meta))
	seen := make(map[string]struct{}, len(meta))
	var missing []string
	for i, name := range meta {
		if name == "" {
			return nil, edgelistErrorf(method, ErrInvalidMetadataType, "empty name at position %d", i)
		}
		if _, ok := skip[name]; ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if !t.HasColumn(name) {
			missing = append(missing, name)
			continue
		}
		out = append(out, name)
	}
	if len(missing) > 0 {
		return nil, edgelistErrorf(method, ErrUnknownMetadataColumn, "not found among table columns: %s", quoteAll(missing))
	}

	return out, nil
}

// column returns a copy of the named structural column.
func column(method string, t *table.Table, name string) ([]table.Value, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, edgelistErrorf(method, ErrUnknownColumn, "%q", name)
	}

	return col, nil
}

// columns returns copies of every named column, in order.
func columns(method string, t *table.Table, names []string) ([][]table.Value, error) {
	out := make([][]table.Value, len(names))
	for k, name := range names {
		col, err := column(method, t, name)
		if err != nil {
			return nil, err
		}
		out[k] = col
	}

	return out, nil
}

// without returns names minus every occurrence of drop.
func without(names []string, drop string) []string {
	out := names[:0:0]
	for _, n := range names {
		if n != drop {
			out = append(out, n)
		}
	}

	return out
}
