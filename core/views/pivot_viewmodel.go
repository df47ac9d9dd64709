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

// Package views builds template view models from pivot results.
package views

import (
	"github.com/google/crosstab/core/aggregates"
	"github.com/google/crosstab/core/pivot"
	"github.com/google/crosstab/core/query"
	"github.com/google/safehtml"
)

// PivotViewModel contains one cross-tabulation formatted for template
// consumption.
type PivotViewModel struct {
	Title    string
	Headers  []string
	Rows     [][]string // display strings, one slice per result row
	RowCount int
	ColCount int

	Aggregate        string
	AggregateOptions []AggregateOption
	Filters          []FilterInfo
	Problems         []string // advisory configuration warnings
	CurrentURL       safehtml.URL
}

// AggregateOption is one selectable aggregate function.
type AggregateOption struct {
	Name     string
	Symbol   string
	URL      safehtml.URL
	Selected bool
}

// FilterInfo describes an active filter and the link that clears it.
type FilterInfo struct {
	Column    string
	Value     string
	RemoveURL safehtml.URL
}

// LandingViewModel backs the landing page.
type LandingViewModel struct {
	Title    string
	Subtitle string
	Views    []ViewInfo
}

// ViewInfo is one preset pivot view linked from the landing page.
type ViewInfo struct {
	Name        string
	Description string
	URL         safehtml.URL
}

// BuildPivotViewModel flattens a result and the surrounding query state
// into template data.
func BuildPivotViewModel(title string, res *pivot.Result, q *query.Query, problems []string) PivotViewModel {
	exported := pivot.ToRows(res)

	vm := PivotViewModel{
		Title:      title,
		Headers:    exported[0],
		Rows:       exported[1:],
		RowCount:   len(res.RowKeys),
		ColCount:   len(res.ColumnKeys),
		Aggregate:  q.Aggregate,
		Problems:   problems,
		CurrentURL: q.ToSafeURL(),
	}

	for _, name := range aggregates.Names() {
		f, err := aggregates.Parse(name)
		if err != nil {
			continue
		}
		vm.AggregateOptions = append(vm.AggregateOptions, AggregateOption{
			Name:     name,
			Symbol:   f.Symbol(),
			URL:      q.WithAggregate(name),
			Selected: name == q.Aggregate,
		})
	}

	for _, cond := range q.Conditions() {
		vm.Filters = append(vm.Filters, FilterInfo{
			Column:    cond.Column,
			Value:     q.Filters[cond.Column],
			RemoveURL: q.WithoutFilter(cond.Column),
		})
	}

	return vm
}
