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

package grouping

import (
	"strings"

	"github.com/google/crosstab/core/records"
)

// Sentinel is the key label used when an axis has no dimension fields.
// The axis still exists with exactly this one key.
const Sentinel = "Total"

// unitSep joins tuple parts into the internal map identity. The original
// tuple is retained on the key, so the separator never has to be split back
// out of a label.
const unitSep = "\x1f"

// Key identifies one distinct tuple of dimension values along an axis.
// Two records share a key iff their ordered dimension-field values are
// equal. The zero Key is not valid; use KeyOf.
type Key struct {
	id    string
	parts []string
}

// KeyOf builds the key for a record along the given dimension fields.
// Missing cells contribute an empty component. With no fields, every record
// collapses into the sentinel key.
func KeyOf(rec records.Record, fields []string) Key {
	if len(fields) == 0 {
		return Key{id: Sentinel}
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		v, _ := rec.Get(f)
		parts[i] = records.Format(v)
	}
	return Key{id: strings.Join(parts, unitSep), parts: parts}
}

// Parts returns the dimension values the key was built from, in field
// order. The sentinel key has no parts.
func (k Key) Parts() []string {
	return k.parts
}

// String returns the display label of the key: the dimension values joined
// with "_", or the sentinel.
func (k Key) String() string {
	if len(k.parts) == 0 {
		return Sentinel
	}
	return strings.Join(k.parts, "_")
}

// Less orders keys by element-wise comparison of their tuples.
func (k Key) Less(other Key) bool {
	a, b := k.parts, other.parts
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
