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

// Package query maps pivot view state to and from URLs.
package query

import (
	"net/url"
	"strings"

	"github.com/google/crosstab/core/filters"
	"github.com/google/crosstab/core/pivot"
	"github.com/google/safehtml"
)

// Query represents the parsed state of a pivot view URL.
//
// Parameters:
//
//	rows=region,quarter      row dimension fields, ordered
//	cols=product             column dimension fields, ordered
//	values=sales,units       value fields, ordered
//	agg=sum                  aggregate function name
//	filter:region=North      filter condition (see operator prefixes below)
//
// Filter values may start with an operator prefix: "!" for not_equals,
// ">" and "<" for numeric comparisons, "~" for contains. A bare value
// filters for equality.
type Query struct {
	Path string

	RowFields    []string
	ColumnFields []string
	ValueFields  []string
	Aggregate    string
	Filters      map[string]string
}

// NewQuery creates a Query from a URL.
func NewQuery(u *url.URL) *Query {
	state := &Query{
		Path:      u.Path,
		Aggregate: "sum", // default
		Filters:   make(map[string]string),
	}

	q := u.Query()
	state.RowFields = splitList(q.Get("rows"))
	state.ColumnFields = splitList(q.Get("cols"))
	state.ValueFields = splitList(q.Get("values"))
	if agg := q.Get("agg"); agg != "" {
		state.Aggregate = agg
	}

	for key, values := range q {
		if strings.HasPrefix(key, "filter:") && len(values) > 0 {
			state.Filters[strings.TrimPrefix(key, "filter:")] = values[0]
		}
	}

	return state
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// Config converts the query into an engine configuration.
// An unknown aggregate name surfaces here.
func (s *Query) Config() (pivot.Config, error) {
	return pivot.NewConfig(s.RowFields, s.ColumnFields, s.ValueFields, s.Aggregate)
}

// Conditions converts the filter parameters into engine conditions, in
// column-name order for deterministic output.
func (s *Query) Conditions() []filters.Condition {
	if len(s.Filters) == 0 {
		return nil
	}
	columns := make([]string, 0, len(s.Filters))
	for col := range s.Filters {
		columns = append(columns, col)
	}
	sortStrings(columns)

	conds := make([]filters.Condition, 0, len(columns))
	for _, col := range columns {
		conds = append(conds, parseCondition(col, s.Filters[col]))
	}
	return conds
}

func parseCondition(column, value string) filters.Condition {
	op := filters.Equals
	switch {
	case strings.HasPrefix(value, "!"):
		op, value = filters.NotEquals, value[1:]
	case strings.HasPrefix(value, ">"):
		op, value = filters.GreaterThan, value[1:]
	case strings.HasPrefix(value, "<"):
		op, value = filters.LessThan, value[1:]
	case strings.HasPrefix(value, "~"):
		op, value = filters.Contains, value[1:]
	}
	return filters.Condition{Column: column, Operator: op, Value: value}
}

// Clone creates a deep copy of the Query.
func (s *Query) Clone() *Query {
	clone := &Query{
		Path:         s.Path,
		RowFields:    append([]string(nil), s.RowFields...),
		ColumnFields: append([]string(nil), s.ColumnFields...),
		ValueFields:  append([]string(nil), s.ValueFields...),
		Aggregate:    s.Aggregate,
		Filters:      make(map[string]string, len(s.Filters)),
	}
	for col, val := range s.Filters {
		clone.Filters[col] = val
	}
	return clone
}

// WithAggregate returns a URL with a different aggregate function.
func (s *Query) WithAggregate(agg string) safehtml.URL {
	newState := s.Clone()
	newState.Aggregate = agg
	return newState.ToSafeURL()
}

// WithFilter returns a URL with a filter set on the column.
func (s *Query) WithFilter(column, value string) safehtml.URL {
	newState := s.Clone()
	newState.Filters[column] = value
	return newState.ToSafeURL()
}

// WithoutFilter returns a URL with the column's filter removed.
func (s *Query) WithoutFilter(column string) safehtml.URL {
	newState := s.Clone()
	delete(newState.Filters, column)
	return newState.ToSafeURL()
}

// ToURL converts the Query back to a URL string.
func (s *Query) ToURL() string {
	u := &url.URL{Path: s.Path}

	q := u.Query()
	if len(s.RowFields) > 0 {
		q.Set("rows", strings.Join(s.RowFields, ","))
	}
	if len(s.ColumnFields) > 0 {
		q.Set("cols", strings.Join(s.ColumnFields, ","))
	}
	if len(s.ValueFields) > 0 {
		q.Set("values", strings.Join(s.ValueFields, ","))
	}
	q.Set("agg", s.Aggregate)
	for col, val := range s.Filters {
		if val != "" {
			q.Set("filter:"+col, val)
		}
	}

	u.RawQuery = q.Encode()
	return u.String()
}

// ToSafeURL converts the Query to a safehtml.URL.
func (s *Query) ToSafeURL() safehtml.URL {
	return safehtml.URLSanitized(s.ToURL())
}

func sortStrings(ss []string) {
	for i := 0; i < len(ss)-1; i++ {
		for j := i + 1; j < len(ss); j++ {
			if ss[i] > ss[j] {
				ss[i], ss[j] = ss[j], ss[i]
			}
		}
	}
}
