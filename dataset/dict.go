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

// Dict maps string ids to dense indices in insertion order.
type Dict struct {
	si map[string]int
	is []string
}

func NewDict() *Dict {
	return &Dict{si: map[string]int{}}
}

func (d *Dict) Count() int {
	return len(d.is)
}

// Add returns the index of s, inserting it if unseen.
func (d *Dict) Add(s string) (y int) {
	if y, ok := d.si[s]; ok {
		return y
	}
	y = len(d.is)
	d.si[s] = y
	d.is = append(d.is, s)
	return
}

// Index returns the index of s without inserting it.
func (d *Dict) Index(s string) (y int, ok bool) {
	y, ok = d.si[s]
	return
}

// String returns the id at index i.
func (d *Dict) String(i int) (s string, ok bool) {
	if i < 0 || i >= len(d.is) {
		return "", false
	}
	return d.is[i], true
}

// Ids returns all ids in insertion order. The returned slice is shared.
func (d *Dict) Ids() []string {
	return d.is
}
