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
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/juju/errors"
	"github.com/samber/lo"
)

// ReadCSV loads a rating table from a CSV file. The header row lists column
// ids (the first field is ignored), each following record starts with a row
// id, and empty fields mean "not rated".
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Trace(err)
	}
	if len(records) < 2 {
		return nil, errors.Errorf("%s: expected a header row and at least one rating row", path)
	}

	header := records[0]
	if len(header) < 2 {
		return nil, errors.Errorf("%s: expected at least one column id in the header", path)
	}
	colIds := lo.Map(header[1:], func(id string, _ int) string {
		return strings.TrimSpace(id)
	})
	seen := mapset.NewSet[string]()
	rowIds := make([]string, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(header) {
			return nil, errors.Errorf("%s: line %d has %d fields, expected %d",
				path, i+2, len(record), len(header))
		}
		id := strings.TrimSpace(record[0])
		if !seen.Add(id) {
			return nil, errors.Errorf("%s: duplicate row id %q", path, id)
		}
		rowIds = append(rowIds, id)
	}

	table, err := NewTable(rowIds, colIds)
	if err != nil {
		return nil, errors.Trace(err)
	}
	for _, record := range records[1:] {
		rowId := strings.TrimSpace(record[0])
		for j, field := range record[1:] {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Annotatef(err, "%s: rating (%q, %q)", path, rowId, colIds[j])
			}
			if err := table.Set(rowId, colIds[j], value); err != nil {
				return nil, errors.Trace(err)
			}
		}
	}
	return table, nil
}
