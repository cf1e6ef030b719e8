// SPDX-License-Identifier: MIT

package dissim

// Defaults.
const (
	// DefaultWorkers runs the outer loop sequentially.
	DefaultWorkers = 1
)

const panicWorkersInvalid = "dissim: WithWorkers: n must be >= 0"

// ProgressFunc observes the outer loop: done rows out of total.
// In a parallel pass calls are serialized but done still increases by one
// per call.
type ProgressFunc func(done, total int)

// Option configures Pairwise.
type Option func(*options)

type options struct {
	columns    []string
	columnsSet bool
	rows       []string
	rowsSet    bool
	workers    int
	progress   ProgressFunc
}

// WithColumns restricts the comparison to cols. The slice is copied.
// Calling it with no names selects zero columns, so every count is 0.
// A repeated name fails with ErrDuplicateSelection.
func WithColumns(cols ...string) Option {
	cp := append([]string{}, cols...)
	return func(o *options) {
		o.columns = cp
		o.columnsSet = true
	}
}

// WithRows restricts the comparison to the rows labelled labels, in that
// order. The result matrix is labelled the same way. A repeated label fails
// with ErrDuplicateSelection.
func WithRows(labels ...string) Option {
	cp := append([]string{}, labels...)
	return func(o *options) {
		o.rows = cp
		o.rowsSet = true
	}
}

// WithWorkers sets the number of goroutines for the outer loop.
// 0 and 1 both mean sequential. Panics on negative n.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithProgress installs an observational progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) { o.progress = fn }
}

func gatherOptions(opts []Option) options {
	o := options{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
