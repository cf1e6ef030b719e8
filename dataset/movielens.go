// SPDX-License-Identifier: MIT

package dataset

import (
	"path/filepath"

	"github.com/katalvlaran/linkalike/table"
)

// MovieLens 100k bundle file names.
const (
	MovieLensDataFile = "ml_100k_data.gz"
	MovieLensUserFile = "ml_100k_user.gz"
	MovieLensItemFile = "ml_100k_item.gz"
)

// MovieLens100K loads the interactions (comma separated), users (comma
// separated) and items (pipe separated) of the MovieLens 100k bundle from dir.
// See https://grouplens.org/datasets/movielens/100k/.
func MovieLens100K(dir string) (interactions, users, items *table.Table, err error) {
	if interactions, err = ReadFile(filepath.Join(dir, MovieLensDataFile)); err != nil {
		return nil, nil, nil, err
	}
	if users, err = ReadFile(filepath.Join(dir, MovieLensUserFile)); err != nil {
		return nil, nil, nil, err
	}
	if items, err = ReadFile(filepath.Join(dir, MovieLensItemFile), WithSeparator('|')); err != nil {
		return nil, nil, nil, err
	}

	return interactions, users, items, nil
}
