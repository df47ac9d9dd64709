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

import "fmt"

// ValidateConfig checks a configuration against the dataset's known field
// set and returns human-readable problems. It never fails the engine: the
// result is advisory, and Produce does not call it automatically.
func (e *Engine) ValidateConfig(cfg Config) []string {
	var errs []string

	if len(cfg.ValueFields) == 0 {
		errs = append(errs, "at least one value field is required")
	}
	if len(cfg.RowFields) == 0 && len(cfg.ColumnFields) == 0 {
		errs = append(errs, "at least one row or column field is required")
	}

	known := make(map[string]bool, len(e.fields))
	for _, f := range e.fields {
		known[f] = true
	}
	reported := make(map[string]bool)
	for _, fields := range [][]string{cfg.RowFields, cfg.ColumnFields, cfg.ValueFields} {
		for _, f := range fields {
			if !known[f] && !reported[f] {
				reported[f] = true
				errs = append(errs, fmt.Sprintf("field %q does not exist in the dataset", f))
			}
		}
	}
	return errs
}
