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

package records

import (
	"fmt"
	"strconv"
	"strings"
)

// ToNumber parses a cell value as a floating-point number.
// It reports false for nil, non-numeric strings, and non-scalar values.
func ToNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Coerce parses a cell value as a number, coercing anything non-numeric to 0.
func Coerce(v any) float64 {
	f, ok := ToNumber(v)
	if !ok {
		return 0
	}
	return f
}

// Format returns the display string for a cell value. Numbers print without
// trailing zeros, missing values print as the empty string.
func Format(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		if s {
			return "true"
		}
		return "false"
	default:
		if f, ok := ToNumber(v); ok {
			return formatNumber(f)
		}
		return fmt.Sprintf("%v", v)
	}
}

// LooseEqual compares two cell values the way an interactive filter does:
// numerically when both sides parse as numbers, otherwise by display string.
// Two missing values are equal; a missing value never equals a present one.
func LooseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	fa, oka := ToNumber(a)
	fb, okb := ToNumber(b)
	if oka && okb {
		return fa == fb
	}
	return Format(a) == Format(b)
}

// formatNumber formats a float64 for display, using appropriate precision.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	formatted := strconv.FormatFloat(v, 'f', 2, 64)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimSuffix(formatted, ".")
	return formatted
}
