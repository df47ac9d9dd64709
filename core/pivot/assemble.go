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

package pivot

import (
	"github.com/google/crosstab/core/aggregates"
	"github.com/google/crosstab/core/grouping"
)

// Row maps a header label to the cell value for one result row.
type Row map[string]any

// Result is the assembled cross-tabulation. Headers list the row dimension
// labels followed by one "valueField_columnKey" label per value field and
// column key. RowKeys are in first-seen order; ColumnKeys are sorted
// ascending. Both are exposed for consumers that need raw dimension
// enumeration separate from the flattened header/row view.
type Result struct {
	Headers    []string
	Rows       []Row
	RowKeys    []grouping.Key
	ColumnKeys []grouping.Key
}

// assemble turns buckets into the header list and row list. Every (row key,
// column key, value field) combination implied by the observed row keys and
// the full column key set gets a cell; an empty bucket yields 0, never a
// missing cell.
func assemble(g *grouping.Grouping, cfg Config) *Result {
	rowKeys := g.RowKeys()
	colKeys := g.ColumnKeys()

	headers := make([]string, 0, len(cfg.RowFields)+len(cfg.ValueFields)*len(colKeys))
	headers = append(headers, cfg.RowFields...)
	for _, vf := range cfg.ValueFields {
		for _, ck := range colKeys {
			headers = append(headers, vf+"_"+ck.String())
		}
	}

	rows := make([]Row, 0, len(rowKeys))
	for _, rk := range rowKeys {
		row := make(Row, len(headers))

		// Row dimension values come straight from the retained key tuple,
		// assigned positionally to the configured row fields.
		parts := rk.Parts()
		for i, f := range cfg.RowFields {
			if i < len(parts) {
				row[f] = parts[i]
			}
		}

		for _, vf := range cfg.ValueFields {
			for _, ck := range colKeys {
				row[vf+"_"+ck.String()] = cell(g.Bucket(rk, ck), vf, cfg.Aggregate)
			}
		}
		rows = append(rows, row)
	}

	return &Result{
		Headers:    headers,
		Rows:       rows,
		RowKeys:    rowKeys,
		ColumnKeys: colKeys,
	}
}

// cell aggregates one value field over one bucket. Count counts the records
// in the bucket; every other function sees the non-missing values of the
// field in encounter order.
func cell(b *grouping.Bucket, valueField string, f aggregates.Func) any {
	if b == nil || len(b.Records) == 0 {
		return float64(0)
	}
	if f == aggregates.Count {
		return float64(len(b.Records))
	}
	values := make([]any, 0, len(b.Records))
	for _, rec := range b.Records {
		if v, ok := rec.Get(valueField); ok {
			values = append(values, v)
		}
	}
	return f.Reduce(values)
}
