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

package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopKFilter(t *testing.T) {
	filter := NewTopKFilter[string, float64](3)
	filter.Push("a", 0.1)
	filter.Push("b", 0.9)
	filter.Push("c", 0.5)
	filter.Push("d", 0.7)
	filter.Push("e", 0.3)
	items, weights := filter.PopAll()
	assert.Equal(t, []string{"b", "d", "c"}, items)
	assert.Equal(t, []float64{0.9, 0.7, 0.5}, weights)
}

func TestTopKFilterTies(t *testing.T) {
	// equal weights keep the smaller value
	filter := NewTopKFilter[string, float64](2)
	filter.Push("c", 0.5)
	filter.Push("a", 0.5)
	filter.Push("b", 0.5)
	items, weights := filter.PopAll()
	assert.Equal(t, []string{"a", "b"}, items)
	assert.Equal(t, []float64{0.5, 0.5}, weights)

	// insertion order must not matter
	filter = NewTopKFilter[string, float64](2)
	filter.Push("b", 0.5)
	filter.Push("c", 0.5)
	filter.Push("a", 0.5)
	items, _ = filter.PopAll()
	assert.Equal(t, []string{"a", "b"}, items)
}

func TestTopKFilterShort(t *testing.T) {
	filter := NewTopKFilter[string, float64](10)
	filter.Push("a", 0.2)
	filter.Push("b", 0.1)
	items, _ := filter.PopAll()
	assert.Equal(t, []string{"a", "b"}, items)
}
