// Package uigraph composes a user–item interaction graph.
//
// A UIGraph drives edgelist into a core.Graph:
//
//   - AddEdges inserts interaction edges (user → item, optionally weighted by
//     a rating column) plus, when given, user–user and item–item similarity
//     edges read from tables with the canonical FROM, TO and SIMILARITY
//     columns (SIMILARITY becomes the edge "weight").
//   - AddNodes attaches user and item metadata as node attributes.
//
// OnlyRecommend restricts which items may be offered as recommendations. It
// is a closed choice between a predicate and an allow list; filtered items
// stay in the graph.
package uigraph
