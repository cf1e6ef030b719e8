// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/linkalike/edgelist"
	"github.com/katalvlaran/linkalike/table"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilNodeID indicates a nil vertex id.
	ErrNilNodeID = errors.New("core: node id is nil")

	// ErrInvalidNodeID indicates a vertex id that is not a hashable scalar or is NaN.
	ErrInvalidNodeID = errors.New("core: invalid node id")

	// ErrNodeNotFound indicates an operation referenced a non-existent vertex.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Vertex is a node of the graph with its attribute mapping.
type Vertex struct {
	// ID is the unique identifier of the vertex.
	ID table.Value

	// Attrs holds merged node attributes in first-insertion order.
	Attrs *edgelist.Attrs
}

// Edge is an undirected connection. From/To keep the orientation of the
// first insertion.
type Edge struct {
	From  table.Value
	To    table.Value
	Attrs *edgelist.Attrs
}

// edgeKey identifies an edge by its first-inserted orientation.
type edgeKey struct {
	from, to table.Value
}

// Graph is the core in-memory undirected graph.
type Graph struct {
	muVert    sync.RWMutex // guards vertices and nodeOrder
	muEdgeAdj sync.RWMutex // guards edges, edgeOrder and adjacency

	vertices  map[table.Value]*Vertex
	nodeOrder []table.Value

	edges     map[edgeKey]*Edge
	edgeOrder []edgeKey

	// adjacency[u] lists neighbours of u in insertion order; adjSet mirrors it
	// for O(1) membership.
	adjacency map[table.Value][]table.Value
	adjSet    map[table.Value]map[table.Value]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[table.Value]*Vertex),
		edges:     make(map[edgeKey]*Edge),
		adjacency: make(map[table.Value][]table.Value),
		adjSet:    make(map[table.Value]map[table.Value]struct{}),
	}
}
