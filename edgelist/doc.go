// Package edgelist converts tables into uniform graph-ingestion tuples.
//
// MakeEdgeList turns each row of an interaction or similarity table into an
// Edge (source, destination, attributes); MakeNodeList turns each row of a
// per-entity table into a Node (id, attributes). Both share one metadata
// validation step:
//
//   - a nil metadata list means "no metadata";
//   - entries naming a structural column (source/destination or node id) are
//     dropped, since those are not metadata;
//   - an empty name fails with ErrInvalidMetadataType;
//   - names absent from the table fail with ErrUnknownMetadataColumn, listing
//     every offending name, before any tuple is built.
//
// Weighted edges carry an insertion-ordered attribute map whose first key is
// always "weight" (the designated weight column, renamed), followed by the
// metadata columns in request order. Unweighted edges carry no attributes at
// all: Edge.Attrs is nil and the edge is a plain (source, destination) pair.
//
// Errors:
//   - ErrNilTable for a nil table;
//   - ErrUnknownColumn when a structural or weight column is absent;
//   - ErrInvalidMetadataType and ErrUnknownMetadataColumn from validation;
//   - ErrReservedAttribute when a metadata column is named "weight" while a
//     different column is the weight, since both would claim the same key.
//
// Output order always equals table row order. No deduplication is performed
// and cell values pass through unmodified.
package edgelist
