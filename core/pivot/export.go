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

import "github.com/google/crosstab/core/records"

// ToRows flattens a result into an array of arrays suitable for
// spreadsheet-style export. The first row is the header list; each
// subsequent row lists, per header, the display string of the row's value,
// or an empty string when the header is absent from the row mapping.
func ToRows(r *Result) [][]string {
	out := make([][]string, 0, len(r.Rows)+1)
	out = append(out, append([]string(nil), r.Headers...))
	for _, row := range r.Rows {
		line := make([]string, len(r.Headers))
		for i, h := range r.Headers {
			if v, ok := row[h]; ok {
				line[i] = records.Format(v)
			}
		}
		out = append(out, line)
	}
	return out
}
