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

// Package filters applies ordered predicate lists to a dataset. Conditions
// are AND-combined; there is no OR or grouping.
package filters

import (
	"strings"

	"github.com/google/crosstab/core/records"
)

// Operator identifies a comparison rule for a filter condition.
type Operator string

const (
	Equals      Operator = "equals"
	NotEquals   Operator = "not_equals"
	GreaterThan Operator = "greater_than"
	LessThan    Operator = "less_than"
	Contains    Operator = "contains"
)

// Condition is a single column predicate.
type Condition struct {
	Column   string
	Operator Operator
	Value    any
}

// Apply returns the records matching every condition, in dataset order.
// An empty condition list returns the dataset unchanged.
func Apply(dataset records.Dataset, conds []Condition) records.Dataset {
	if len(conds) == 0 {
		return dataset
	}
	result := make(records.Dataset, 0, len(dataset))
	for _, rec := range dataset {
		if matchesAll(rec, conds) {
			result = append(result, rec)
		}
	}
	return result
}

func matchesAll(rec records.Record, conds []Condition) bool {
	for _, c := range conds {
		if !c.Matches(rec) {
			return false
		}
	}
	return true
}

// Matches reports whether a record satisfies the condition.
//
// Equality is loose (type-coercing). Numeric comparisons parse both sides as
// floating-point numbers and are false if either parse fails. Contains is a
// case-insensitive substring match on display strings. A record missing the
// filtered column satisfies equals only when the comparison value is also
// missing, and fails numeric and contains comparisons.
func (c Condition) Matches(rec records.Record) bool {
	cell, present := rec.Get(c.Column)

	switch c.Operator {
	case Equals:
		if !present {
			return c.Value == nil
		}
		return records.LooseEqual(cell, c.Value)
	case NotEquals:
		if !present {
			return c.Value != nil
		}
		return !records.LooseEqual(cell, c.Value)
	case GreaterThan:
		if !present {
			return false
		}
		a, oka := records.ToNumber(cell)
		b, okb := records.ToNumber(c.Value)
		return oka && okb && a > b
	case LessThan:
		if !present {
			return false
		}
		a, oka := records.ToNumber(cell)
		b, okb := records.ToNumber(c.Value)
		return oka && okb && a < b
	case Contains:
		if !present {
			return false
		}
		return strings.Contains(
			strings.ToLower(records.Format(cell)),
			strings.ToLower(records.Format(c.Value)),
		)
	default:
		return false
	}
}
