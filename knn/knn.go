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

// Package knn predicts ratings by a similarity-weighted average over the k
// most similar neighbors that rated the queried item.
package knn

import (
	"math"

	"github.com/cofilter-io/cofilter/base/heap"
	"github.com/cofilter-io/cofilter/dataset"
	"github.com/cofilter-io/cofilter/similarity"
	"github.com/juju/errors"
)

var (
	// ErrUnknownEntity reports a target or item absent from the inputs.
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrNoEligibleNeighbors reports that no candidate neighbor has an
	// observed rating for the queried item.
	ErrNoEligibleNeighbors = errors.New("no eligible neighbors")
	// ErrDegenerateNormalization reports a zero sum of neighbor
	// similarities, which leaves the weighted average undefined.
	ErrDegenerateNormalization = errors.New("degenerate normalization")
)

// Policy decides what happens when a prediction has no defined value.
type Policy int

const (
	// FallbackNone surfaces ErrNoEligibleNeighbors and
	// ErrDegenerateNormalization to the caller.
	FallbackNone Policy = iota
	// FallbackGlobalMean returns the global mean of observed ratings
	// instead of failing.
	FallbackGlobalMean
)

// Options control a prediction.
type Options struct {
	// K is the neighborhood size. Must be at least 1. Neighbors are
	// ordered by descending similarity; equal similarities are broken by
	// ascending entity id.
	K int
	// Centered switches to deviation-from-mean prediction: neighbors
	// contribute their mean-centered ratings and the target's mean is
	// added to the result.
	Centered bool
	// Means optionally overrides the row means used when Centered is set.
	// Computed from the rating table when nil.
	Means map[string]float64
	// Fallback is the policy for undefined predictions.
	Fallback Policy
}

// Predict returns the predicted rating of item by target. It is a pure
// function of its inputs.
func Predict(ratings *dataset.Table, sims *similarity.Matrix, target, item string, opts Options) (float64, error) {
	if opts.K < 1 {
		return 0, errors.Errorf("neighborhood size must be at least 1, got %d", opts.K)
	}
	if !ratings.HasRow(target) || !sims.Has(target) {
		return 0, errors.Annotatef(ErrUnknownEntity, "target %q", target)
	}
	if !ratings.HasColumn(item) {
		return 0, errors.Annotatef(ErrUnknownEntity, "item %q", item)
	}

	means := opts.Means
	if opts.Centered && means == nil {
		means = ratings.RowMeans()
	}

	// top-k most similar entities with an observed rating for the item
	filter := heap.NewTopKFilter[string, float64](opts.K)
	for _, id := range ratings.RowIds() {
		if id == target || !sims.Has(id) {
			continue
		}
		if _, ok := ratings.Get(id, item); !ok {
			continue
		}
		s, err := sims.Get(target, id)
		if err != nil {
			return 0, errors.Trace(err)
		}
		if math.IsNaN(s) {
			continue
		}
		if opts.Centered {
			if _, ok := means[id]; !ok {
				continue
			}
		}
		filter.Push(id, s)
	}
	neighbors, weights := filter.PopAll()
	if len(neighbors) == 0 {
		return fallback(ratings, opts, errors.Annotatef(ErrNoEligibleNeighbors, "item %q", item))
	}

	var weightedSum, weightSum float64
	for i, id := range neighbors {
		value, _ := ratings.Get(id, item)
		if opts.Centered {
			value -= means[id]
		}
		weightedSum += weights[i] * value
		weightSum += weights[i]
	}
	if weightSum == 0 {
		return fallback(ratings, opts, errors.Annotatef(ErrDegenerateNormalization, "item %q", item))
	}

	prediction := weightedSum / weightSum
	if opts.Centered {
		targetMean, ok := means[target]
		if !ok {
			mean, err := ratings.RowMean(target)
			if err != nil {
				return 0, errors.Annotatef(err, "mean of target %q", target)
			}
			targetMean = mean
		}
		prediction += targetMean
	}
	return prediction, nil
}

func fallback(ratings *dataset.Table, opts Options, cause error) (float64, error) {
	if opts.Fallback == FallbackGlobalMean {
		mean, err := ratings.GlobalMean()
		if err != nil {
			return 0, errors.Trace(err)
		}
		return mean, nil
	}
	return 0, cause
}
