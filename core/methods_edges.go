// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: edge lifecycle and queries.
// Determinism:
//   - Edges() returns edges in first-insertion order.
// Concurrency:
//   - endpoints are created via AddNode (muVert), then the edge catalog and
//     adjacency are updated under muEdgeAdj.

package core

import (
	"fmt"

	"github.com/katalvlaran/linkalike/edgelist"
	"github.com/katalvlaran/linkalike/table"
)

// AddEdge connects from and to, creating missing endpoints. If the edge
// already exists in either orientation, attrs are merged into it instead.
// attrs may be nil (unweighted edge).
//
// Steps:
//  1. Validate and ensure both endpoints via AddNode.
//  2. Under muEdgeAdj, look up (from,to) then (to,from).
//  3. Merge into the existing edge, or store a new one and link adjacency
//     both ways (once for a self-loop).
//
// Errors: ErrNilNodeID, ErrInvalidNodeID.
//
// Complexity: O(1 + len(attrs)) amortized.
func (g *Graph) AddEdge(from, to table.Value, attrs *edgelist.Attrs) error {
	u, err := validateID(from)
	if err != nil {
		return err
	}
	v, err := validateID(to)
	if err != nil {
		return err
	}
	if err = g.AddNode(u, nil); err != nil {
		return err
	}
	if err = g.AddNode(v, nil); err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if e := g.lookupEdge(u, v); e != nil {
		mergeAttrs(e.Attrs, attrs)
		return nil
	}

	key := edgeKey{from: u, to: v}
	e := &Edge{From: u, To: v, Attrs: edgelist.NewAttrs()}
	mergeAttrs(e.Attrs, attrs)
	g.edges[key] = e
	g.edgeOrder = append(g.edgeOrder, key)

	g.link(u, v)
	if u != v {
		g.link(v, u)
	}

	return nil
}

// CheckEdges reports the first edge whose endpoints AddEdge would reject.
// It touches no graph, so callers can validate several lists before
// inserting any of them.
//
// Errors: ErrNilNodeID, ErrInvalidNodeID.
func CheckEdges(edges []edgelist.Edge) error {
	for i, e := range edges {
		if _, err := validateID(e.From); err != nil {
			return fmt.Errorf("CheckEdges: edge %d: %w", i, err)
		}
		if _, err := validateID(e.To); err != nil {
			return fmt.Errorf("CheckEdges: edge %d: %w", i, err)
		}
	}

	return nil
}

// AddEdgesFrom inserts every edge in order, stopping at the first invalid
// endpoint; edges before it remain inserted. Use CheckEdges first when a
// partial insert is unacceptable.
func (g *Graph) AddEdgesFrom(edges []edgelist.Edge) error {
	for i, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Attrs); err != nil {
			return fmt.Errorf("AddEdgesFrom: edge %d: %w", i, err)
		}
	}

	return nil
}

// HasEdge reports whether u and v are adjacent (orientation-free).
func (g *Graph) HasEdge(u, v table.Value) bool {
	a, err := validateID(u)
	if err != nil {
		return false
	}
	b, err := validateID(v)
	if err != nil {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.lookupEdge(a, b) != nil
}

// EdgeAttrs returns a copy of the attributes of edge {u,v}.
// Errors: ErrEdgeNotFound.
func (g *Graph) EdgeAttrs(u, v table.Value) (*edgelist.Attrs, error) {
	a, errA := validateID(u)
	b, errB := validateID(v)
	if errA != nil || errB != nil {
		return nil, fmt.Errorf("EdgeAttrs(%v,%v): %w", u, v, ErrEdgeNotFound)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e := g.lookupEdge(a, b)
	if e == nil {
		return nil, fmt.Errorf("EdgeAttrs(%v,%v): %w", u, v, ErrEdgeNotFound)
	}

	return copyAttrs(e.Attrs), nil
}

// Edges returns snapshots of every edge in first-insertion order.
// Complexity: O(E·attrs).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, len(g.edgeOrder))
	for i, k := range g.edgeOrder {
		e := g.edges[k]
		out[i] = Edge{From: e.From, To: e.To, Attrs: copyAttrs(e.Attrs)}
	}

	return out
}

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// lookupEdge finds {u,v} in either orientation. Caller holds muEdgeAdj.
func (g *Graph) lookupEdge(u, v table.Value) *Edge {
	if e, ok := g.edges[edgeKey{from: u, to: v}]; ok {
		return e
	}
	if e, ok := g.edges[edgeKey{from: v, to: u}]; ok {
		return e
	}

	return nil
}

// link appends v to u's neighbour list. Caller holds muEdgeAdj.
func (g *Graph) link(u, v table.Value) {
	set := g.adjSet[u]
	if set == nil {
		set = make(map[table.Value]struct{})
		g.adjSet[u] = set
	}
	if _, ok := set[v]; ok {
		return
	}
	set[v] = struct{}{}
	g.adjacency[u] = append(g.adjacency[u], v)
}
