// Package core provides the in-memory, thread-safe graph container that
// user–item edge and node tuples are inserted into.
//
// Graph is an undirected simple graph in the spirit of a networkx Graph:
//
//   - vertices are keyed by scalar table values (string, int64, float64, bool);
//   - AddEdge auto-creates its endpoints;
//   - adding an existing edge (in either orientation) merges its attributes,
//     later values winning, and never creates a parallel edge;
//   - self-loops are allowed and count twice towards Degree;
//   - Nodes(), Edges() and Neighbors() enumerate in insertion order.
//
// Bulk ingestion mirrors add_nodes_from / add_edges_from:
//
//	AddNodesFrom([]edgelist.Node) error
//	AddEdgesFrom([]edgelist.Edge) error
//
// Concurrency: vertex catalog under muVert, edges and adjacency under
// muEdgeAdj. Lock order is always muVert → muEdgeAdj.
//
// Errors:
//
//	ErrNilNodeID     - a vertex id is nil.
//	ErrInvalidNodeID - a vertex id is not a hashable scalar, or is NaN.
//	ErrNodeNotFound  - a query referenced an absent vertex.
//	ErrEdgeNotFound  - a query referenced an absent edge.
package core
