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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	table, err := NewTable([]string{"u1", "u2"}, []string{"i1", "i2", "i3"})
	assert.NoError(t, err)
	assert.Equal(t, 2, table.CountRows())
	assert.Equal(t, 3, table.CountColumns())
	assert.Equal(t, []string{"u1", "u2"}, table.RowIds())
	assert.Equal(t, []string{"i1", "i2", "i3"}, table.ColumnIds())
	assert.True(t, table.HasRow("u1"))
	assert.False(t, table.HasRow("i1"))
	assert.True(t, table.HasColumn("i3"))

	// duplicate ids
	_, err = NewTable([]string{"u1", "u1"}, []string{"i1"})
	assert.Error(t, err)
	_, err = NewTable([]string{"u1"}, []string{"i1", "i1"})
	assert.Error(t, err)
	_, err = NewTable([]string{""}, []string{"i1"})
	assert.Error(t, err)
}

func TestTableSetGet(t *testing.T) {
	table, err := NewTable([]string{"u1", "u2"}, []string{"i1", "i2"})
	assert.NoError(t, err)

	// missing by default
	_, ok := table.Get("u1", "i1")
	assert.False(t, ok)

	assert.NoError(t, table.Set("u1", "i1", 4))
	value, ok := table.Get("u1", "i1")
	assert.True(t, ok)
	assert.Equal(t, 4.0, value)

	// unknown ids
	assert.Error(t, table.Set("u3", "i1", 1))
	assert.Error(t, table.Set("u1", "i9", 1))
	_, ok = table.Get("u3", "i1")
	assert.False(t, ok)

	// non-finite values are rejected
	assert.Error(t, table.Set("u1", "i1", math.NaN()))
	assert.Error(t, table.Set("u1", "i1", math.Inf(1)))

	// NaN marks missing entries in the dense row
	row, ok := table.Row("u1")
	assert.True(t, ok)
	assert.Equal(t, 4.0, row[0])
	assert.True(t, math.IsNaN(row[1]))
}

func TestTableMeans(t *testing.T) {
	table, err := NewTable([]string{"u1", "u2", "u3"}, []string{"i1", "i2", "i3"})
	assert.NoError(t, err)
	assert.NoError(t, table.Set("u1", "i1", 1))
	assert.NoError(t, table.Set("u1", "i2", 2))
	assert.NoError(t, table.Set("u1", "i3", 3))
	assert.NoError(t, table.Set("u2", "i2", 5))

	mean, err := table.RowMean("u1")
	assert.NoError(t, err)
	assert.Equal(t, 2.0, mean)
	mean, err = table.RowMean("u2")
	assert.NoError(t, err)
	assert.Equal(t, 5.0, mean)

	// empty row and unknown row
	_, err = table.RowMean("u3")
	assert.Error(t, err)
	_, err = table.RowMean("u9")
	assert.Error(t, err)

	means := table.RowMeans()
	assert.Equal(t, map[string]float64{"u1": 2, "u2": 5}, means)

	globalMean, err := table.GlobalMean()
	assert.NoError(t, err)
	assert.Equal(t, 2.75, globalMean)

	empty, err := NewTable([]string{"u1"}, []string{"i1"})
	assert.NoError(t, err)
	_, err = empty.GlobalMean()
	assert.Error(t, err)
}
