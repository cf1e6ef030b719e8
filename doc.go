// Package linkalike builds bipartite user–item interaction graphs from
// tabular data, optionally augmented with user–user and item–item similarity
// edges derived from row dissimilarities.
//
// Everything is organized under small subpackages:
//
//	table/    - Table: labeled, immutable columns of scalar cells
//	dissim/   - all-pairs column-mismatch matrix (sequential or parallel)
//	edgelist/ - table → edge tuples (weight first) and node tuples
//	core/     - thread-safe undirected graph container (AddEdgesFrom, AddNodesFrom)
//	uigraph/  - user–item graph composer with a recommendation filter
//	dataset/  - delimited / gzip loaders, MovieLens 100k bundle
//	config/   - defaults → YAML → LINKALIKE_* environment settings
//
// Quick ASCII example: two users, two items, one user–user similarity edge.
//
//	u1 ─── i1 ─── u2
//	│ └─────────── │   (u1~u2, weight 0.75)
//	i2
//
// See examples/ for an end-to-end MovieLens pipeline.
package linkalike
