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

// Package datasources provides loaders that turn external data (CSV files,
// JSON documents) into record datasets for the pivot engine.
package datasources

import "github.com/google/crosstab/core/records"

// Loader is the interface that all dataset loaders implement.
// Built-in loaders cover "csv" and "json"; callers can register additional
// loaders for databases, APIs, or custom formats.
type Loader interface {
	// SourceType returns the type identifier used in config (e.g., "csv").
	SourceType() string

	// Load retrieves data and returns a Dataset.
	Load(config map[string]string) (records.Dataset, error)
}

// ByType builds a lookup of loaders keyed by source type.
func ByType(loaders ...Loader) map[string]Loader {
	result := make(map[string]Loader, len(loaders))
	for _, l := range loaders {
		result[l.SourceType()] = l
	}
	return result
}
