// Copyright 2026 cofilter Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dataset

import (
	"math"

	"github.com/juju/errors"
	"gonum.org/v1/gonum/stat"
)

// Table is a rating matrix with rows and columns keyed by string ids.
// Missing entries are NaN, never zero.
type Table struct {
	rows   *Dict
	cols   *Dict
	values [][]float64
}

// NewTable creates an empty table with the given row and column ids.
func NewTable(rowIds, colIds []string) (*Table, error) {
	t := &Table{rows: NewDict(), cols: NewDict()}
	for _, id := range rowIds {
		if id == "" {
			return nil, errors.New("row id cannot be empty")
		}
		if _, exist := t.rows.Index(id); exist {
			return nil, errors.Errorf("duplicate row id %q", id)
		}
		t.rows.Add(id)
	}
	for _, id := range colIds {
		if id == "" {
			return nil, errors.New("column id cannot be empty")
		}
		if _, exist := t.cols.Index(id); exist {
			return nil, errors.Errorf("duplicate column id %q", id)
		}
		t.cols.Add(id)
	}
	t.values = make([][]float64, len(rowIds))
	for i := range t.values {
		t.values[i] = make([]float64, len(colIds))
		for j := range t.values[i] {
			t.values[i][j] = math.NaN()
		}
	}
	return t, nil
}

func (t *Table) CountRows() int {
	return t.rows.Count()
}

func (t *Table) CountColumns() int {
	return t.cols.Count()
}

func (t *Table) RowIds() []string {
	return t.rows.Ids()
}

func (t *Table) ColumnIds() []string {
	return t.cols.Ids()
}

func (t *Table) HasRow(id string) bool {
	_, ok := t.rows.Index(id)
	return ok
}

func (t *Table) HasColumn(id string) bool {
	_, ok := t.cols.Index(id)
	return ok
}

// Set stores a rating. The value must be finite.
func (t *Table) Set(row, col string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Errorf("rating for (%q, %q) must be finite", row, col)
	}
	i, ok := t.rows.Index(row)
	if !ok {
		return errors.NotFoundf("row %q", row)
	}
	j, ok := t.cols.Index(col)
	if !ok {
		return errors.NotFoundf("column %q", col)
	}
	t.values[i][j] = value
	return nil
}

// Get returns a rating. The second return value is false if the entry is
// missing or the ids are unknown.
func (t *Table) Get(row, col string) (float64, bool) {
	i, ok := t.rows.Index(row)
	if !ok {
		return 0, false
	}
	j, ok := t.cols.Index(col)
	if !ok {
		return 0, false
	}
	if math.IsNaN(t.values[i][j]) {
		return 0, false
	}
	return t.values[i][j], true
}

// Row returns the dense row vector with NaN marking missing entries.
// The returned slice is shared with the table.
func (t *Table) Row(id string) ([]float64, bool) {
	i, ok := t.rows.Index(id)
	if !ok {
		return nil, false
	}
	return t.values[i], true
}

// RowMean returns the arithmetic mean of the observed entries of a row.
func (t *Table) RowMean(id string) (float64, error) {
	row, ok := t.Row(id)
	if !ok {
		return 0, errors.NotFoundf("row %q", id)
	}
	observed := make([]float64, 0, len(row))
	for _, v := range row {
		if !math.IsNaN(v) {
			observed = append(observed, v)
		}
	}
	if len(observed) == 0 {
		return 0, errors.Errorf("row %q has no observed ratings", id)
	}
	return stat.Mean(observed, nil), nil
}

// RowMeans returns the mean of every row with at least one observed rating.
func (t *Table) RowMeans() map[string]float64 {
	means := make(map[string]float64, t.rows.Count())
	for _, id := range t.rows.Ids() {
		if mean, err := t.RowMean(id); err == nil {
			means[id] = mean
		}
	}
	return means
}

// GlobalMean returns the mean of all observed ratings.
func (t *Table) GlobalMean() (float64, error) {
	observed := make([]float64, 0, t.rows.Count()*t.cols.Count())
	for _, row := range t.values {
		for _, v := range row {
			if !math.IsNaN(v) {
				observed = append(observed, v)
			}
		}
	}
	if len(observed) == 0 {
		return 0, errors.New("table has no observed ratings")
	}
	return stat.Mean(observed, nil), nil
}
