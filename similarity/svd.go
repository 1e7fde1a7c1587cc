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

package similarity

import (
	"fmt"
	"math"

	"github.com/cofilter-io/cofilter/dataset"
	"github.com/juju/errors"
	"gonum.org/v1/gonum/mat"
)

// TruncateSVD reduces the rows of t to rank latent factors through a thin
// singular value decomposition of the zero-filled rating matrix. The result
// keeps the original row ids with synthetic factor columns f1..f<rank> and is
// fully observed, so it can feed Cosine directly.
func TruncateSVD(t *dataset.Table, rank int) (*dataset.Table, error) {
	numRows, numCols := t.CountRows(), t.CountColumns()
	if rank < 1 {
		return nil, errors.Errorf("rank must be at least 1, got %d", rank)
	}
	if limit := min(numRows, numCols); rank > limit {
		return nil, errors.Errorf("rank %d exceeds matrix rank limit %d", rank, limit)
	}

	dense := mat.NewDense(numRows, numCols, nil)
	for i, rowId := range t.RowIds() {
		row, _ := t.Row(rowId)
		for j, value := range row {
			if math.IsNaN(value) {
				value = 0
			}
			dense.Set(i, j, value)
		}
	}

	var svd mat.SVD
	if !svd.Factorize(dense, mat.SVDThin) {
		return nil, errors.New("SVD factorization failed")
	}
	var u mat.Dense
	svd.UTo(&u)
	sigma := svd.Values(nil)

	factorIds := make([]string, rank)
	for j := range factorIds {
		factorIds[j] = fmt.Sprintf("f%d", j+1)
	}
	reduced, err := dataset.NewTable(t.RowIds(), factorIds)
	if err != nil {
		return nil, errors.Trace(err)
	}
	for i, rowId := range t.RowIds() {
		for j := 0; j < rank; j++ {
			if err := reduced.Set(rowId, factorIds[j], u.At(i, j)*sigma[j]); err != nil {
				return nil, errors.Trace(err)
			}
		}
	}
	return reduced, nil
}
