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

import (
	"fmt"

	"github.com/google/crosstab/core/aggregates"
)

// Config describes one pivot computation. It is a plain value passed into
// Produce; the engine keeps no configuration state between invocations.
// The order of RowFields, ColumnFields, and ValueFields is significant and
// determines key reconstruction and header order.
type Config struct {
	RowFields    []string
	ColumnFields []string
	ValueFields  []string
	Aggregate    aggregates.Func
}

// NewConfig builds a Config from external field lists and an aggregate
// function name. An unrecognized name is rejected here, before any
// computation runs.
func NewConfig(rowFields, columnFields, valueFields []string, aggregate string) (Config, error) {
	f, err := aggregates.Parse(aggregate)
	if err != nil {
		return Config{}, err
	}
	return Config{
		RowFields:    rowFields,
		ColumnFields: columnFields,
		ValueFields:  valueFields,
		Aggregate:    f,
	}, nil
}

// check rejects configurations that cannot be dispatched at all. Advisory
// sanity checking against the dataset schema lives in ValidateConfig.
func (c Config) check() error {
	if !c.Aggregate.Valid() {
		return fmt.Errorf("invalid aggregate function %d", int(c.Aggregate))
	}
	return nil
}
