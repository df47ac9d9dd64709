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
	"reflect"
	"testing"

	"github.com/google/crosstab/core/aggregates"
	"github.com/google/crosstab/core/filters"
	"github.com/google/crosstab/core/records"
)

func salesDataset() records.Dataset {
	return records.Dataset{
		{"region": "North", "product": "A", "sales": 100},
		{"region": "North", "product": "B", "sales": 200},
		{"region": "South", "product": "A", "sales": 150},
	}
}

func salesConfig(t *testing.T) Config {
	t.Helper()
	cfg, err := NewConfig([]string{"region"}, []string{"product"}, []string{"sales"}, "sum")
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	return cfg
}

func TestProduceSumCrossTab(t *testing.T) {
	e := New(salesDataset())
	res, err := e.Produce(salesConfig(t), nil)
	if err != nil {
		t.Fatalf("Produce failed: %v", err)
	}

	wantHeaders := []string{"region", "sales_A", "sales_B"}
	if !reflect.DeepEqual(res.Headers, wantHeaders) {
		t.Errorf("headers = %v, want %v", res.Headers, wantHeaders)
	}

	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Rows))
	}

	north := res.Rows[0]
	if north["region"] != "North" || north["sales_A"] != float64(100) || north["sales_B"] != float64(200) {
		t.Errorf("North row = %v", north)
	}

	// South has no product B: the cell exists and defaults to 0.
	south := res.Rows[1]
	if south["region"] != "South" || south["sales_A"] != float64(150) || south["sales_B"] != float64(0) {
		t.Errorf("South row = %v", south)
	}
}

func TestColumnKeysSortedRegardlessOfRecordOrder(t *testing.T) {
	reversed := records.Dataset{
		{"region": "South", "product": "C", "sales": 1},
		{"region": "North", "product": "A", "sales": 2},
		{"region": "North", "product": "B", "sales": 3},
	}
	e := New(reversed)
	res, err := e.Produce(salesConfig(t), nil)
	if err != nil {
		t.Fatalf("Produce failed: %v", err)
	}

	var labels []string
	for _, k := range res.ColumnKeys {
		labels = append(labels, k.String())
	}
	if !reflect.DeepEqual(labels, []string{"A", "B", "C"}) {
		t.Errorf("column keys = %v, want [A B C]", labels)
	}

	// Row keys stay in first-seen order.
	if res.RowKeys[0].String() != "South" || res.RowKeys[1].String() != "North" {
		t.Errorf("row keys = %v", res.RowKeys)
	}
}

func TestProduceWithFilter(t *testing.T) {
	e := New(salesDataset())
	res, err := e.Produce(salesConfig(t), []filters.Condition{
		{Column: "region", Operator: filters.Equals, Value: "North"},
	})
	if err != nil {
		t.Fatalf("Produce failed: %v", err)
	}
	if len(res.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(res.Rows))
	}
	if res.Rows[0]["region"] != "North" {
		t.Errorf("row = %v", res.Rows[0])
	}
}

func TestProduceFilterToNothingKeepsRowFieldHeaders(t *testing.T) {
	e := New(salesDataset())
	res, err := e.Produce(salesConfig(t), []filters.Condition{
		{Column: "region", Operator: filters.Equals, Value: "West"},
	})
	if err != nil {
		t.Fatalf("Produce failed: %v", err)
	}
	if !reflect.DeepEqual(res.Headers, []string{"region"}) {
		t.Errorf("headers = %v, want [region]", res.Headers)
	}
	if len(res.Rows) != 0 || len(res.RowKeys) != 0 || len(res.ColumnKeys) != 0 {
		t.Errorf("expected empty result, got %d rows", len(res.Rows))
	}
}

func TestProduceSentinelAxes(t *testing.T) {
	cfg, err := NewConfig(nil, nil, []string{"sales"}, "sum")
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	e := New(salesDataset())
	res, err := e.Produce(cfg, nil)
	if err != nil {
		t.Fatalf("Produce failed: %v", err)
	}
	if !reflect.DeepEqual(res.Headers, []string{"sales_Total"}) {
		t.Errorf("headers = %v, want [sales_Total]", res.Headers)
	}
	if len(res.Rows) != 1 || res.Rows[0]["sales_Total"] != float64(450) {
		t.Errorf("rows = %v", res.Rows)
	}
}

func TestCountCountsRecordsNotValues(t *testing.T) {
	data := records.Dataset{
		{"region": "North", "sales": 100},
		{"region": "North"}, // sales missing
		{"region": "North", "sales": "x"},
	}
	cfg, err := NewConfig([]string{"region"}, nil, []string{"sales"}, "count")
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	res, err := New(data).Produce(cfg, nil)
	if err != nil {
		t.Fatalf("Produce failed: %v", err)
	}
	if got := res.Rows[0]["sales_Total"]; got != float64(3) {
		t.Errorf("count = %v, want 3 (records in bucket, not present values)", got)
	}
}

func TestMissingValuesExcludedFromValueList(t *testing.T) {
	data := records.Dataset{
		{"region": "North", "sales": 10},
		{"region": "North"},
		{"region": "North", "sales": 20},
	}
	cfg, err := NewConfig([]string{"region"}, nil, []string{"sales"}, "last")
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	res, err := New(data).Produce(cfg, nil)
	if err != nil {
		t.Fatalf("Produce failed: %v", err)
	}
	if got := res.Rows[0]["sales_Total"]; got != 20 {
		t.Errorf("last = %v, want 20", got)
	}
}

func TestProduceIsIdempotent(t *testing.T) {
	e := New(salesDataset())
	cfg := salesConfig(t)
	first, err := e.Produce(cfg, nil)
	if err != nil {
		t.Fatalf("Produce failed: %v", err)
	}
	second, err := e.Produce(cfg, nil)
	if err != nil {
		t.Fatalf("Produce failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated invocations with unchanged inputs differ")
	}
}

func TestProduceRejectsInvalidAggregate(t *testing.T) {
	e := New(salesDataset())
	cfg := Config{ValueFields: []string{"sales"}, Aggregate: aggregates.Func(99)}
	if _, err := e.Produce(cfg, nil); err == nil {
		t.Error("expected error for out-of-range aggregate function")
	}
}

func TestUniqueValues(t *testing.T) {
	data := records.Dataset{
		{"region": "South"},
		{"region": "North"},
		{"region": "South"},
		{"other": "x"},
	}
	got := New(data).UniqueValues("region")
	if !reflect.DeepEqual(got, []string{"North", "South"}) {
		t.Errorf("UniqueValues = %v, want [North South]", got)
	}
}

func TestValidateConfig(t *testing.T) {
	e := New(salesDataset())

	// Both structural rules can fail at once.
	errs := e.ValidateConfig(Config{})
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}

	// One entry per unknown field, anywhere in the configuration.
	errs = e.ValidateConfig(Config{
		RowFields:    []string{"region", "bogus1"},
		ColumnFields: []string{"bogus2"},
		ValueFields:  []string{"sales"},
	})
	if len(errs) != 2 {
		t.Fatalf("expected 2 unknown-field errors, got %v", errs)
	}

	if errs := e.ValidateConfig(salesConfig(t)); len(errs) != 0 {
		t.Errorf("valid config reported errors: %v", errs)
	}
}

func TestToRows(t *testing.T) {
	e := New(salesDataset())
	res, err := e.Produce(salesConfig(t), nil)
	if err != nil {
		t.Fatalf("Produce failed: %v", err)
	}

	rows := ToRows(res)
	if !reflect.DeepEqual(rows[0], res.Headers) {
		t.Errorf("first export row = %v, want headers %v", rows[0], res.Headers)
	}
	want := [][]string{
		{"region", "sales_A", "sales_B"},
		{"North", "100", "200"},
		{"South", "150", "0"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("export = %v, want %v", rows, want)
	}
}

func TestToRowsAbsentHeaderIsEmptyString(t *testing.T) {
	r := &Result{
		Headers: []string{"a", "b"},
		Rows:    []Row{{"a": "x"}},
	}
	rows := ToRows(r)
	if rows[1][0] != "x" || rows[1][1] != "" {
		t.Errorf("export row = %v, want [x \"\"]", rows[1])
	}
}
