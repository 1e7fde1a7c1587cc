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

// Package similarity computes pairwise similarity matrices over the rows of
// a rating table. Two missing-value conventions are in use and they are not
// interchangeable: cosine zero-fills missing entries, Pearson restricts each
// pair to the entries observed in both rows.
package similarity

import (
	"math"

	"github.com/cofilter-io/cofilter/dataset"
	"github.com/juju/errors"
)

// Func computes the similarity between a pair of rating vectors. Missing
// entries are NaN.
type Func func(a, b []float64) float64

// Matrix is a symmetric pairwise similarity matrix with unit diagonal.
// Entries for incomputable pairs are NaN.
type Matrix struct {
	dict   *dataset.Dict
	values [][]float64
}

// Ids returns the entity ids of the matrix in row order.
func (m *Matrix) Ids() []string {
	return m.dict.Ids()
}

// Has reports whether id is an entity of the matrix.
func (m *Matrix) Has(id string) bool {
	_, ok := m.dict.Index(id)
	return ok
}

// Get returns the similarity between two entities. The result is NaN when
// the pair has no defined similarity.
func (m *Matrix) Get(a, b string) (float64, error) {
	i, ok := m.dict.Index(a)
	if !ok {
		return 0, errors.NotFoundf("entity %q", a)
	}
	j, ok := m.dict.Index(b)
	if !ok {
		return 0, errors.NotFoundf("entity %q", b)
	}
	return m.values[i][j], nil
}

// Cosine computes the cosine similarity matrix over the rows of t with
// missing entries treated as zero.
func Cosine(t *dataset.Table) (*Matrix, error) {
	return pairwise(t, cosine)
}

// Pearson computes the Pearson correlation matrix over the rows of t.
// Each pair is restricted to the columns observed in both rows and the means
// are taken over that co-rated subset.
func Pearson(t *dataset.Table) (*Matrix, error) {
	return pairwise(t, pearson)
}

// CenteredCosine computes the cosine similarity matrix over mean-centered
// rows. Each row is centered by the mean of its observed entries before
// zero-filling, which turns missing entries into average ratings.
func CenteredCosine(t *dataset.Table) (*Matrix, error) {
	centered, err := centerRows(t)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return pairwise(centered, cosine)
}

func pairwise(t *dataset.Table, sim Func) (*Matrix, error) {
	ids := t.RowIds()
	if len(ids) == 0 {
		return nil, errors.New("table has no rows")
	}
	m := &Matrix{dict: dataset.NewDict(), values: make([][]float64, len(ids))}
	rows := make([][]float64, len(ids))
	for i, id := range ids {
		m.dict.Add(id)
		rows[i], _ = t.Row(id)
		m.values[i] = make([]float64, len(ids))
		m.values[i][i] = 1
	}
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			s := sim(rows[i], rows[j])
			m.values[i][j] = s
			m.values[j][i] = s
		}
	}
	return m, nil
}

func centerRows(t *dataset.Table) (*dataset.Table, error) {
	centered, err := dataset.NewTable(t.RowIds(), t.ColumnIds())
	if err != nil {
		return nil, errors.Trace(err)
	}
	for _, rowId := range t.RowIds() {
		mean, err := t.RowMean(rowId)
		if err != nil {
			// rows without observed ratings stay all-missing
			continue
		}
		for _, colId := range t.ColumnIds() {
			if value, ok := t.Get(rowId, colId); ok {
				if err := centered.Set(rowId, colId, value-mean); err != nil {
					return nil, errors.Trace(err)
				}
			}
		}
	}
	return centered, nil
}

// cosine is the zero-fill cosine kernel.
func cosine(a, b []float64) float64 {
	m, n, l := .0, .0, .0
	for i := range a {
		x, y := a[i], b[i]
		if math.IsNaN(x) {
			x = 0
		}
		if math.IsNaN(y) {
			y = 0
		}
		m += x * x
		n += y * y
		l += x * y
	}
	return l / (math.Sqrt(m) * math.Sqrt(n))
}

// pearson is the pairwise-complete Pearson kernel.
func pearson(a, b []float64) float64 {
	// means over co-rated entries
	count, sumA, sumB := .0, .0, .0
	for i := range a {
		if !math.IsNaN(a[i]) && !math.IsNaN(b[i]) {
			sumA += a[i]
			sumB += b[i]
			count++
		}
	}
	if count == 0 {
		return math.NaN()
	}
	meanA := sumA / count
	meanB := sumB / count
	// mean-centered cosine over the same entries
	m, n, l := .0, .0, .0
	for i := range a {
		if !math.IsNaN(a[i]) && !math.IsNaN(b[i]) {
			ratingA := a[i] - meanA
			ratingB := b[i] - meanB
			m += ratingA * ratingA
			n += ratingB * ratingB
			l += ratingA * ratingB
		}
	}
	return l / (math.Sqrt(m) * math.Sqrt(n))
}
