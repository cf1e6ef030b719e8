// Package dataset reads delimited text files into tables.
//
// The first record is the header. Each column's kind is inferred from its
// non-empty cells: int64 if all parse as integers, else float64 if all parse
// as floats, else string. Empty cells become nil. Files ending in ".gz" are
// decompressed transparently.
//
// MovieLens100K loads the three files of the MovieLens 100k bundle
// (interactions, users, items) from a directory.
package dataset
