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

// Package aggregates provides the reduction rules applied to a bucket's
// values for one value field. The set of functions is closed: callers obtain
// a Func through Parse, which rejects unknown names up front, and Reduce
// dispatches by exhaustive switch rather than a string-keyed lookup.
package aggregates

import (
	"fmt"

	"github.com/google/crosstab/core/records"
)

// Func identifies an aggregate function.
type Func int

const (
	Sum Func = iota
	Avg
	Count
	Min
	Max
	First
	Last
)

// names is ordered to match the Func constants.
var names = []string{"sum", "avg", "count", "min", "max", "first", "last"}

// Parse converts an external function name into a Func.
// An unrecognized name is a configuration error, reported here rather than
// at aggregation time.
func Parse(name string) (Func, error) {
	for i, n := range names {
		if n == name {
			return Func(i), nil
		}
	}
	return 0, fmt.Errorf("unknown aggregate function %q", name)
}

// Names returns the supported aggregate function names.
func Names() []string {
	result := make([]string, len(names))
	copy(result, names)
	return result
}

// String returns the external name of the function.
func (f Func) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return names[f]
}

// Valid reports whether f is one of the defined functions.
func (f Func) Valid() bool {
	return f >= 0 && int(f) < len(names)
}

// Symbol returns a short display symbol for the function.
func (f Func) Symbol() string {
	switch f {
	case Sum:
		return "Σ"
	case Avg:
		return "μ"
	case Count:
		return "#"
	case Min:
		return "↓"
	case Max:
		return "↑"
	case First:
		return "⊢"
	case Last:
		return "⊣"
	default:
		return "?"
	}
}

// Reduce applies the function to a bucket's value list and returns the
// aggregated scalar.
//
// Sum, min, and max coerce every value to a number, with non-numeric values
// counting as 0. Avg divides the coerced sum by the total element count, so
// non-numeric entries still count toward the divisor. Count is the element
// count. First and last return the raw boundary elements unmodified. An
// empty value list reduces to 0 for every function.
func (f Func) Reduce(values []any) any {
	if len(values) == 0 {
		return float64(0)
	}
	switch f {
	case Sum:
		return sum(values)
	case Avg:
		return sum(values) / float64(len(values))
	case Count:
		return float64(len(values))
	case Min:
		m := records.Coerce(values[0])
		for _, v := range values[1:] {
			if n := records.Coerce(v); n < m {
				m = n
			}
		}
		return m
	case Max:
		m := records.Coerce(values[0])
		for _, v := range values[1:] {
			if n := records.Coerce(v); n > m {
				m = n
			}
		}
		return m
	case First:
		return values[0]
	case Last:
		return values[len(values)-1]
	default:
		return float64(0)
	}
}

func sum(values []any) float64 {
	var total float64
	for _, v := range values {
		total += records.Coerce(v)
	}
	return total
}
