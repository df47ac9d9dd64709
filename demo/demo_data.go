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

// Package demo provides sample datasets for the demo server and examples.
package demo

import "github.com/google/crosstab/core/records"

// CreateSalesDataset returns a small sales dataset with regions, products,
// quarters, and two value fields.
func CreateSalesDataset() records.Dataset {
	rows := []struct {
		region  string
		product string
		quarter string
		sales   float64
		units   float64
	}{
		{"North", "Laptop", "Q1", 12000, 12},
		{"North", "Laptop", "Q2", 15000, 15},
		{"North", "Phone", "Q1", 8000, 20},
		{"North", "Phone", "Q2", 9500, 24},
		{"North", "Tablet", "Q1", 4000, 10},
		{"South", "Laptop", "Q1", 10000, 10},
		{"South", "Laptop", "Q2", 11000, 11},
		{"South", "Phone", "Q1", 7000, 18},
		{"South", "Tablet", "Q2", 5200, 13},
		{"East", "Laptop", "Q1", 9000, 9},
		{"East", "Phone", "Q2", 6400, 16},
		{"East", "Tablet", "Q1", 3600, 9},
		{"West", "Laptop", "Q2", 13000, 13},
		{"West", "Phone", "Q1", 7200, 18},
		{"West", "Tablet", "Q2", 4800, 12},
	}

	dataset := make(records.Dataset, 0, len(rows))
	for _, r := range rows {
		dataset = append(dataset, records.Record{
			"region":  r.region,
			"product": r.product,
			"quarter": r.quarter,
			"sales":   r.sales,
			"units":   r.units,
		})
	}
	return dataset
}
