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

// Package records defines the flat record model the pivot engine operates on
// and the scalar coercion rules shared by filtering and aggregation.
package records

import "sort"

// Record maps a field name to a scalar cell value. Cell values are strings
// or numbers (float64 or int); a field that is absent from the map, or
// present with a nil value, is a missing value.
type Record map[string]any

// Dataset is an ordered sequence of records. All records are assumed to
// expose the same field set; this is not enforced. The engine never mutates
// a dataset and holds only a read reference to it.
type Dataset []Record

// Get returns the cell value for a field and whether it is present.
// A nil cell counts as missing.
func (r Record) Get(field string) (any, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Fields returns the sorted field names of a record.
func (r Record) Fields() []string {
	fields := make([]string, 0, len(r))
	for f := range r {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// FieldSet returns the known field names of a dataset, derived from its
// first record. An empty dataset has no known fields.
func (d Dataset) FieldSet() []string {
	if len(d) == 0 {
		return nil
	}
	return d[0].Fields()
}
