// Package dissim computes all-pairs row dissimilarities over a table of
// categorical attributes.
//
// The dissimilarity of two rows is the number of compared columns on which
// their cells differ under exact equality (see table.Equal): there is no
// coercion across kinds, so int64(1) and float64(1) count as a mismatch.
//
// Pairwise returns a square Matrix that is
//
//   - symmetric:  M[i][j] == M[j][i],
//   - zero on the diagonal,
//   - bounded:    0 ≤ M[i][j] ≤ number of compared columns,
//   - labelled by the selected row labels, in selection order.
//
// Options:
//
//	WithColumns(cols...)  - compare only these columns (default: all).
//	WithRows(labels...)   - compare only these rows, in this order (default: all).
//	WithWorkers(n)        - fan the outer loop out over n goroutines.
//	WithProgress(fn)      - observe the outer loop; never changes the result.
//
// The parallel pass assigns each outer row i to exactly one goroutine, which
// writes only the cells (i, j>i) and their mirrors, so its output is
// bit-identical to the sequential pass.
//
// Complexity: O(n²·m) time, O(n²) space for n rows and m columns.
package dissim
