// SPDX-License-Identifier: MIT

package dissim

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/linkalike/table"
	"golang.org/x/sync/errgroup"
)

const (
	methodPairwise = "Pairwise"
)

// Pairwise computes the all-pairs mismatch-count matrix of t.
// It is PairwiseContext with context.Background().
func Pairwise(t *table.Table, opts ...Option) (*Matrix, error) {
	return PairwiseContext(context.Background(), t, opts...)
}

// PairwiseContext computes the all-pairs mismatch-count matrix of t.
//
// Implementation:
//   - Stage 1: resolve options and select the (rows × columns) sub-table;
//     unknown names fail with ErrInvalidSelection before any work. Zero
//     selected columns is valid and yields an all-zero matrix.
//   - Stage 2: copy the sub-table into row-major form.
//   - Stage 3: for every i, compare row i with every row j > i and write the
//     count symmetrically; sequentially or across WithWorkers goroutines.
//
// Errors:
//   - ErrNilTable, ErrInvalidSelection, ErrDuplicateSelection.
//   - ctx.Err() when ctx is cancelled before the pass completes.
//
// Determinism:
//   - The result does not depend on the worker count or progress callback.
//
// Complexity: O(n²·m) time, O(n² + n·m) space.
func PairwiseContext(ctx context.Context, t *table.Table, opts ...Option) (*Matrix, error) {
	if t == nil {
		return nil, dissimErrorf(methodPairwise, ErrNilTable)
	}
	o := gatherOptions(opts)

	var cols, labels []string
	if o.columnsSet {
		cols = o.columns
	}
	if o.rowsSet {
		labels = o.rows
	}
	sub, err := t.Select(labels, cols)
	if err != nil {
		if errors.Is(err, table.ErrDuplicateLabel) || errors.Is(err, table.ErrDuplicateColumn) {
			return nil, fmt.Errorf("%s: %w: %w", methodPairwise, ErrDuplicateSelection, err)
		}
		return nil, fmt.Errorf("%s: %w: %w", methodPairwise, ErrInvalidSelection, err)
	}

	rows := rowMajor(sub)
	m := newMatrix(sub.Labels(), sub.NumCols())
	report := serialProgress(o.progress, len(rows))

	if o.workers <= 1 {
		for i := range rows {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			fillRow(m, rows, i)
			report()
		}

		return m, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := range rows {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fillRow(m, rows, i)
			report()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return m, nil
}

// fillRow writes the mismatch counts between row i and every row j > i.
// Cells touched by different i never overlap.
func fillRow(m *Matrix, rows [][]table.Value, i int) {
	a := rows[i]
	for j := i + 1; j < len(rows); j++ {
		m.setPair(i, j, mismatches(a, rows[j]))
	}
}

// mismatches counts positions where a and b differ. len(a) == len(b).
func mismatches(a, b []table.Value) int {
	n := 0
	for k := range a {
		if !table.Equal(a[k], b[k]) {
			n++
		}
	}

	return n
}

// rowMajor copies every row of t into a [][]Value.
func rowMajor(t *table.Table) [][]table.Value {
	rows := make([][]table.Value, t.NumRows())
	for i := range rows {
		rows[i], _ = t.Row(i) // i is in range by construction
	}

	return rows
}

// serialProgress adapts fn into a goroutine-safe tick that reports
// monotonically increasing done counts. A nil fn yields a no-op.
func serialProgress(fn ProgressFunc, total int) func() {
	if fn == nil {
		return func() {}
	}
	var (
		mu   sync.Mutex
		done int
	)

	return func() {
		mu.Lock()
		defer mu.Unlock()
		done++
		fn(done, total)
	}
}
