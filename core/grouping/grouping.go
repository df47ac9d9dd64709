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

// Package grouping partitions filtered records into buckets keyed by a
// composite row dimension and a composite column dimension.
package grouping

import (
	"sort"

	"github.com/google/crosstab/core/records"
)

// Bucket is the subset of records sharing one (row key, column key) pair,
// in encounter order.
type Bucket struct {
	RowKey    Key
	ColumnKey Key
	Records   []records.Record
}

type rowGroup struct {
	key     Key
	buckets *orderedMap[string, *Bucket]
}

// Grouping is the result of partitioning a dataset along two axes.
// Row keys preserve first-seen order across the grouping pass; column keys
// are reported in ascending tuple order regardless of record order.
type Grouping struct {
	rows    *orderedMap[string, *rowGroup]
	colKeys map[string]Key
}

// Group partitions records by the given row and column dimension fields.
// An axis with no fields collapses into the single sentinel key. Zero
// records yield an empty grouping.
func Group(data records.Dataset, rowFields, colFields []string) *Grouping {
	g := &Grouping{
		rows:    newOrderedMap[string, *rowGroup](),
		colKeys: make(map[string]Key),
	}
	for _, rec := range data {
		rk := KeyOf(rec, rowFields)
		ck := KeyOf(rec, colFields)

		row, ok := g.rows.get(rk.id)
		if !ok {
			row = &rowGroup{key: rk, buckets: newOrderedMap[string, *Bucket]()}
			g.rows.set(rk.id, row)
		}
		bucket, ok := row.buckets.get(ck.id)
		if !ok {
			bucket = &Bucket{RowKey: rk, ColumnKey: ck}
			row.buckets.set(ck.id, bucket)
		}
		bucket.Records = append(bucket.Records, rec)
		g.colKeys[ck.id] = ck
	}
	return g
}

// RowKeys returns the row keys in first-seen order.
func (g *Grouping) RowKeys() []Key {
	keys := make([]Key, 0, g.rows.len())
	g.rows.rangeInOrder(func(_ string, row *rowGroup) bool {
		keys = append(keys, row.key)
		return true
	})
	return keys
}

// ColumnKeys returns the union of column keys across all rows, sorted
// ascending.
func (g *Grouping) ColumnKeys() []Key {
	keys := make([]Key, 0, len(g.colKeys))
	for _, k := range g.colKeys {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// Bucket returns the bucket for a (row key, column key) pair, or nil when
// no record fell into that intersection.
func (g *Grouping) Bucket(row, col Key) *Bucket {
	rg, ok := g.rows.get(row.id)
	if !ok {
		return nil
	}
	bucket, ok := rg.buckets.get(col.id)
	if !ok {
		return nil
	}
	return bucket
}

// Len returns the number of distinct row keys.
func (g *Grouping) Len() int {
	return g.rows.len()
}
