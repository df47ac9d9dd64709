/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Crosstab Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package pivot assembles cross-tabulated results from flat record
// collections: filter, group by row and column dimensions, aggregate value
// fields per bucket.
//
// The whole pipeline is one pure, synchronous, in-memory computation. The
// engine never copies or mutates its dataset; callers must not mutate the
// underlying collection while an invocation is in flight.
package pivot

import (
	"sort"

	"github.com/google/crosstab/core/filters"
	"github.com/google/crosstab/core/grouping"
	"github.com/google/crosstab/core/records"
)

// Engine computes pivot results over a fixed dataset. The available field
// set is captured from the first record at construction and drives
// configuration validation.
type Engine struct {
	dataset records.Dataset
	fields  []string
}

// New creates an engine over a dataset. The dataset is held by reference
// and never mutated.
func New(dataset records.Dataset) *Engine {
	return &Engine{
		dataset: dataset,
		fields:  dataset.FieldSet(),
	}
}

// Fields returns the dataset's known field names, sorted.
func (e *Engine) Fields() []string {
	return e.fields
}

// Len returns the number of records in the dataset.
func (e *Engine) Len() int {
	return len(e.dataset)
}

// Produce runs one pivot computation: filter, group, assemble. It is a pure
// function of the dataset, the config, and the conditions; repeated calls
// with the same inputs produce identical results.
//
// A config whose aggregate function is not one of the defined set is a
// configuration error and fails fast. Data-shape irregularities (missing
// fields, empty buckets) never fail; they resolve to defined defaults.
func (e *Engine) Produce(cfg Config, conds []filters.Condition) (*Result, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}
	filtered := filters.Apply(e.dataset, conds)
	g := grouping.Group(filtered, cfg.RowFields, cfg.ColumnFields)
	return assemble(g, cfg), nil
}

// UniqueValues returns the sorted distinct non-missing values of a field
// across the full, unfiltered dataset, as display strings. Intended for
// populating filter-value pickers.
func (e *Engine) UniqueValues(field string) []string {
	seen := make(map[string]bool)
	var result []string
	for _, rec := range e.dataset {
		v, ok := rec.Get(field)
		if !ok {
			continue
		}
		s := records.Format(v)
		if !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	sort.Strings(result)
	return result
}
