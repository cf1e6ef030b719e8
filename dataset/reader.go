// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/linkalike/table"
	"github.com/klauspost/compress/gzip"
)

// DefaultSeparator is the field separator used when none is configured.
const DefaultSeparator = ','

// Option configures reading.
type Option func(*readConfig)

type readConfig struct {
	sep      rune
	labelCol string
}

// WithSeparator sets the field separator.
func WithSeparator(sep rune) Option {
	return func(c *readConfig) { c.sep = sep }
}

// WithLabelColumn uses column name as the row labels and drops it from the
// data columns. Its raw text must be unique per row.
func WithLabelColumn(name string) Option {
	return func(c *readConfig) { c.labelCol = name }
}

// ReadFile opens path and reads it with ReadDelimited, gunzipping when the
// name ends in ".gz".
func ReadFile(path string, opts ...Option) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	t, err := ReadDelimited(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}

	return t, nil
}

// ReadDelimited reads a header and records from r into a Table.
//
// Implementation:
//   - Stage 1: read the header and every record, checking field counts.
//   - Stage 2: split off the label column, if any.
//   - Stage 3: infer each column's kind and convert its cells.
//
// Errors: ErrEmptyInput, ErrMalformedRecord, ErrUnknownLabelColumn, and table
// construction errors (duplicate columns or labels).
func ReadDelimited(r io.Reader, opts ...Option) (*table.Table, error) {
	cfg := readConfig{sep: DefaultSeparator}
	for _, opt := range opts {
		opt(&cfg)
	}

	cr := csv.NewReader(r)
	cr.Comma = cfg.sep
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, err
	}

	raw := make([][]string, len(header))
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) != len(header) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d fields, want %d", ErrMalformedRecord, line, len(rec), len(header))
		}
		for c, cell := range rec {
			raw[c] = append(raw[c], cell)
		}
	}

	var tableOpts []table.Option
	names := header
	if cfg.labelCol != "" {
		pos := -1
		for i, h := range header {
			if h == cfg.labelCol {
				pos = i
				break
			}
		}
		if pos < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLabelColumn, cfg.labelCol)
		}
		labels := raw[pos]
		if labels == nil {
			labels = []string{}
		}
		tableOpts = append(tableOpts, table.WithLabels(labels))
		names = append(append([]string(nil), header[:pos]...), header[pos+1:]...)
		raw = append(raw[:pos:pos], raw[pos+1:]...)
	}

	cols := make([][]interface{}, len(raw))
	for c := range raw {
		cols[c] = inferColumn(raw[c])
	}

	return table.FromColumns(names, cols, tableOpts...)
}

// inferColumn converts cells to the narrowest kind every non-empty cell fits.
func inferColumn(cells []string) []interface{} {
	out := make([]interface{}, len(cells))
	if allParse(cells, isInt) {
		for i, s := range cells {
			if s != "" {
				out[i], _ = strconv.ParseInt(s, 10, 64)
			}
		}
		return out
	}
	if allParse(cells, isFloat) {
		for i, s := range cells {
			if s != "" {
				out[i], _ = strconv.ParseFloat(s, 64)
			}
		}
		return out
	}
	for i, s := range cells {
		if s != "" {
			out[i] = s
		}
	}

	return out
}

// allParse reports whether every non-empty cell satisfies ok. A column of
// only empty cells does not count as numeric.
func allParse(cells []string, ok func(string) bool) bool {
	seen := false
	for _, s := range cells {
		if s == "" {
			continue
		}
		if !ok(s) {
			return false
		}
		seen = true
	}

	return seen
}

func isInt(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

func isFloat(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
