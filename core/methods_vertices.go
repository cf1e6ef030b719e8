// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: vertex lifecycle and queries.
// Determinism:
//   - Nodes() returns ids in first-insertion order.
// Concurrency:
//   - catalog under muVert; adjacency bootstrap under muEdgeAdj.

package core

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linkalike/edgelist"
	"github.com/katalvlaran/linkalike/table"
)

// validateID normalizes id and rejects nil, non-scalar and NaN ids.
func validateID(id table.Value) (table.Value, error) {
	if id == nil {
		return nil, ErrNilNodeID
	}
	v, err := table.Normalize(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidNodeID, err)
	}
	if f, ok := v.(float64); ok && math.IsNaN(f) {
		return nil, fmt.Errorf("%w: NaN", ErrInvalidNodeID)
	}

	return v, nil
}

// AddNode inserts id if missing and merges attrs into its attributes
// (later values win, first-insertion key order). attrs may be nil.
//
// Errors: ErrNilNodeID, ErrInvalidNodeID.
//
// Complexity: O(len(attrs)) amortized.
func (g *Graph) AddNode(id table.Value, attrs *edgelist.Attrs) error {
	id, err := validateID(id)
	if err != nil {
		return err
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, exists := g.vertices[id]
	if !exists {
		v = &Vertex{ID: id, Attrs: edgelist.NewAttrs()}
		g.vertices[id] = v
		g.nodeOrder = append(g.nodeOrder, id)

		g.muEdgeAdj.Lock()
		g.adjSet[id] = make(map[table.Value]struct{})
		g.muEdgeAdj.Unlock()
	}
	mergeAttrs(v.Attrs, attrs)

	return nil
}

// CheckNodes reports the first node id AddNode would reject, without
// touching any graph.
//
// Errors: ErrNilNodeID, ErrInvalidNodeID.
func CheckNodes(nodes []edgelist.Node) error {
	for i, n := range nodes {
		if _, err := validateID(n.ID); err != nil {
			return fmt.Errorf("CheckNodes: node %d: %w", i, err)
		}
	}

	return nil
}

// AddNodesFrom inserts every node in order. It stops at the first invalid id
// and reports its position; nodes before it remain inserted.
func (g *Graph) AddNodesFrom(nodes []edgelist.Node) error {
	for i, n := range nodes {
		if err := g.AddNode(n.ID, n.Attrs); err != nil {
			return fmt.Errorf("AddNodesFrom: node %d: %w", i, err)
		}
	}

	return nil
}

// HasNode reports whether id is a vertex of g.
func (g *Graph) HasNode(id table.Value) bool {
	id, err := validateID(id)
	if err != nil {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Node returns a snapshot of the vertex id (attributes copied).
// Errors: ErrNodeNotFound.
func (g *Graph) Node(id table.Value) (Vertex, error) {
	key, err := validateID(id)
	if err != nil {
		return Vertex{}, err
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[key]
	if !ok {
		return Vertex{}, fmt.Errorf("Node(%v): %w", id, ErrNodeNotFound)
	}

	return Vertex{ID: v.ID, Attrs: copyAttrs(v.Attrs)}, nil
}

// Nodes returns every vertex id in first-insertion order.
func (g *Graph) Nodes() []table.Value {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return append([]table.Value(nil), g.nodeOrder...)
}

// NodeCount returns the number of vertices.
func (g *Graph) NodeCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Neighbors returns the neighbours of id in edge-insertion order.
// Errors: ErrNodeNotFound.
func (g *Graph) Neighbors(id table.Value) ([]table.Value, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("Neighbors(%v): %w", id, ErrNodeNotFound)
	}
	key, _ := validateID(id)

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return append([]table.Value(nil), g.adjacency[key]...), nil
}

// Degree returns the number of edge endpoints at id; a self-loop counts twice.
// Errors: ErrNodeNotFound.
func (g *Graph) Degree(id table.Value) (int, error) {
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}
	key, _ := validateID(id)
	deg := len(nbrs)
	for _, n := range nbrs {
		if n == key {
			deg++
		}
	}

	return deg, nil
}

// mergeAttrs copies every pair of src into dst. src may be nil.
func mergeAttrs(dst, src *edgelist.Attrs) {
	if src == nil {
		return
	}
	for p := src.Oldest(); p != nil; p = p.Next() {
		dst.Set(p.Key, p.Value)
	}
}

// copyAttrs returns a fresh mapping with the pairs of a.
func copyAttrs(a *edgelist.Attrs) *edgelist.Attrs {
	out := edgelist.NewAttrs()
	mergeAttrs(out, a)

	return out
}
